package channels

import "log"

// Notification channels.
const (
	Telegram = "TELEGRAM"
	Whatsapp = "WHATSAPP"
)

// Adapter delivers one rendered message to a destination. Ordinary delivery
// failure returns (false, nil); an error is reserved for configuration
// problems (missing token, unreachable gateway setup).
type Adapter interface {
	Send(destination, text string) (bool, error)
}

// Registry maps channel name to its configured adapter.
type Registry map[string]Adapter

// LogAdapter writes the message to the process log and reports success. It is
// used for local development when no channel credentials are configured.
type LogAdapter struct {
	Channel string
}

func (a *LogAdapter) Send(destination, text string) (bool, error) {
	log.Printf("[%s] (log only) to=%s len=%d", a.Channel, destination, len(text))
	return true, nil
}
