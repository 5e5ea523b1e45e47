package channels

import (
	"strconv"

	"github.com/wesleycpo2/spacered-sub000/models"
)

// Selection binds a channel to the concrete destination for one user.
// An empty Telegram destination means the public broadcast channel.
type Selection struct {
	Channel     string `json:"channel"`
	Destination string `json:"destination"`
}

// Select picks the delivery channel for a user.
//
// BASE plan users always receive alerts on the public Telegram broadcast
// channel, no private chat required. PREMIUM users get WhatsApp when it is
// enabled and a number is on file, otherwise their private Telegram chat when
// enabled and confirmed. Anything else falls back to Telegram with whatever
// chat id is on file - possibly none, in which case delivery will fail. That
// fallback can target a chat that was never confirmed; kept as-is on purpose.
func Select(plan string, cfg *models.NotificationConfig) Selection {
	if plan != "PREMIUM" {
		return Selection{Channel: Telegram, Destination: ""}
	}
	if cfg != nil && cfg.WhatsappEnabled && cfg.WhatsappNumber != nil && *cfg.WhatsappNumber != "" {
		return Selection{Channel: Whatsapp, Destination: *cfg.WhatsappNumber}
	}
	if cfg != nil && cfg.TelegramEnabled && cfg.TelegramChatID != nil && *cfg.TelegramChatID != 0 {
		return Selection{Channel: Telegram, Destination: strconv.FormatInt(*cfg.TelegramChatID, 10)}
	}
	dest := "0"
	if cfg != nil && cfg.TelegramChatID != nil {
		dest = strconv.FormatInt(*cfg.TelegramChatID, 10)
	}
	return Selection{Channel: Telegram, Destination: dest}
}

// DestinationFor resolves the current destination for one specific channel,
// regardless of which channel Select would pick today. Used at send time,
// where the channel was fixed when the alert row was created: a config change
// in between must never hand another channel's destination to this adapter.
// ok is false when the channel has no usable destination anymore.
func DestinationFor(channel, plan string, cfg *models.NotificationConfig) (string, bool) {
	switch channel {
	case Whatsapp:
		if cfg != nil && cfg.WhatsappEnabled && cfg.WhatsappNumber != nil && *cfg.WhatsappNumber != "" {
			return *cfg.WhatsappNumber, true
		}
		return "", false
	case Telegram:
		if plan != "PREMIUM" {
			// broadcast channel
			return "", true
		}
		if cfg != nil && cfg.TelegramEnabled && cfg.TelegramChatID != nil && *cfg.TelegramChatID != 0 {
			return strconv.FormatInt(*cfg.TelegramChatID, 10), true
		}
		return "", false
	}
	return "", false
}
