package channels

import (
	"errors"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramAdapter sends HTML-formatted messages through the Bot API. An empty
// destination targets the public broadcast channel (TELEGRAM_CHANNEL_ID).
type TelegramAdapter struct {
	bot         *tgbotapi.BotAPI
	broadcastID int64
}

func NewTelegramAdapter() (*TelegramAdapter, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN is not set")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	broadcastID, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHANNEL_ID"), 10, 64)
	return &TelegramAdapter{bot: bot, broadcastID: broadcastID}, nil
}

func (a *TelegramAdapter) Send(destination, text string) (bool, error) {
	chatID := a.broadcastID
	if destination != "" {
		id, err := strconv.ParseInt(destination, 10, 64)
		if err != nil {
			log.Printf("[telegram] invalid destination %q", destination)
			return false, nil
		}
		chatID = id
	}
	if chatID == 0 {
		// no broadcast channel configured or unconfirmed private chat
		return false, nil
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := a.bot.Send(msg); err != nil {
		log.Printf("[telegram] send to %d failed: %v", chatID, err)
		return false, nil
	}
	return true, nil
}
