package channels

import (
	"testing"

	"github.com/wesleycpo2/spacered-sub000/models"
)

func TestSelectBaseAlwaysBroadcast(t *testing.T) {
	chatID := int64(555)
	number := "81234567890"
	cfg := &models.NotificationConfig{
		WhatsappEnabled: true,
		WhatsappNumber:  &number,
		TelegramEnabled: true,
		TelegramChatID:  &chatID,
	}
	sel := Select("BASE", cfg)
	if sel.Channel != Telegram || sel.Destination != "" {
		t.Fatalf("BASE should broadcast on Telegram, got %+v", sel)
	}
}

func TestSelectPremiumWhatsAppWins(t *testing.T) {
	chatID := int64(555)
	number := "81234567890"
	cfg := &models.NotificationConfig{
		WhatsappEnabled: true,
		WhatsappNumber:  &number,
		TelegramEnabled: true,
		TelegramChatID:  &chatID,
	}
	sel := Select("PREMIUM", cfg)
	if sel.Channel != Whatsapp || sel.Destination != number {
		t.Fatalf("PREMIUM with WhatsApp on file should pick WhatsApp, got %+v", sel)
	}
}

func TestSelectPremiumPrivateTelegram(t *testing.T) {
	chatID := int64(555)
	cfg := &models.NotificationConfig{
		TelegramEnabled: true,
		TelegramChatID:  &chatID,
	}
	sel := Select("PREMIUM", cfg)
	if sel.Channel != Telegram || sel.Destination != "555" {
		t.Fatalf("PREMIUM without WhatsApp should pick private Telegram, got %+v", sel)
	}
}

func TestSelectPremiumWhatsAppDisabled(t *testing.T) {
	chatID := int64(555)
	number := "81234567890"
	cfg := &models.NotificationConfig{
		WhatsappEnabled: false,
		WhatsappNumber:  &number,
		TelegramEnabled: true,
		TelegramChatID:  &chatID,
	}
	sel := Select("PREMIUM", cfg)
	if sel.Channel != Telegram || sel.Destination != "555" {
		t.Fatalf("disabled WhatsApp should fall through to Telegram, got %+v", sel)
	}
}

func TestSelectPremiumFallbackWithoutChat(t *testing.T) {
	// No confirmed chat id on file: the fallback still targets Telegram with
	// destination "0", and delivery fails downstream.
	sel := Select("PREMIUM", &models.NotificationConfig{TelegramEnabled: true})
	if sel.Channel != Telegram || sel.Destination != "0" {
		t.Fatalf("fallback should be Telegram dest 0, got %+v", sel)
	}

	sel = Select("PREMIUM", nil)
	if sel.Channel != Telegram || sel.Destination != "0" {
		t.Fatalf("nil config fallback should be Telegram dest 0, got %+v", sel)
	}
}

func TestDestinationForWhatsAppDisabledAfterCreation(t *testing.T) {
	// Alert was created for WhatsApp; the user has since disabled WhatsApp but
	// still has a Telegram chat on file. The WhatsApp channel must report no
	// destination rather than leak the Telegram chat id to the WA gateway.
	chatID := int64(555)
	number := "81234567890"
	cfg := &models.NotificationConfig{
		WhatsappEnabled: false,
		WhatsappNumber:  &number,
		TelegramEnabled: true,
		TelegramChatID:  &chatID,
	}
	if dest, ok := DestinationFor(Whatsapp, "PREMIUM", cfg); ok {
		t.Fatalf("disabled WhatsApp should have no destination, got %q", dest)
	}

	cfg.WhatsappNumber = nil
	cfg.WhatsappEnabled = true
	if dest, ok := DestinationFor(Whatsapp, "PREMIUM", cfg); ok {
		t.Fatalf("WhatsApp without a number should have no destination, got %q", dest)
	}
}

func TestDestinationForWhatsApp(t *testing.T) {
	number := "81234567890"
	cfg := &models.NotificationConfig{WhatsappEnabled: true, WhatsappNumber: &number}
	dest, ok := DestinationFor(Whatsapp, "PREMIUM", cfg)
	if !ok || dest != number {
		t.Fatalf("got (%q, %v), want (%q, true)", dest, ok, number)
	}
}

func TestDestinationForTelegram(t *testing.T) {
	// BASE always maps to the broadcast channel.
	if dest, ok := DestinationFor(Telegram, "BASE", nil); !ok || dest != "" {
		t.Fatalf("BASE telegram: got (%q, %v), want broadcast", dest, ok)
	}

	chatID := int64(555)
	cfg := &models.NotificationConfig{TelegramEnabled: true, TelegramChatID: &chatID}
	if dest, ok := DestinationFor(Telegram, "PREMIUM", cfg); !ok || dest != "555" {
		t.Fatalf("PREMIUM telegram: got (%q, %v), want (555, true)", dest, ok)
	}

	// PREMIUM with no confirmed chat: no destination, unlike the creation-time
	// Select fallback.
	if dest, ok := DestinationFor(Telegram, "PREMIUM", &models.NotificationConfig{TelegramEnabled: true}); ok {
		t.Fatalf("PREMIUM telegram without chat should have no destination, got %q", dest)
	}

	if _, ok := DestinationFor("EMAIL", "PREMIUM", cfg); ok {
		t.Fatal("unknown channel should have no destination")
	}
}
