package models

import "time"

type NotificationConfig struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	TelegramEnabled bool      `gorm:"column:telegram_enabled;default:true" json:"telegram_enabled"`
	WhatsappEnabled bool      `gorm:"column:whatsapp_enabled;default:false" json:"whatsapp_enabled"`
	TelegramChatID  *int64    `gorm:"column:telegram_chat_id" json:"telegram_chat_id,omitempty"`
	WhatsappNumber  *string   `gorm:"column:whatsapp_number;size:20" json:"whatsapp_number,omitempty"`
	QuietHoursStart int       `gorm:"column:quiet_hours_start;default:-1" json:"quiet_hours_start"`
	QuietHoursEnd   int       `gorm:"column:quiet_hours_end;default:-1" json:"quiet_hours_end"`
	MaxAlertsPerDay int       `gorm:"column:max_alerts_per_day;default:0" json:"max_alerts_per_day"` // 0 = pakai batas plan
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (NotificationConfig) TableName() string {
	return "notification_configs"
}

// InQuietHours reports whether the given hour (0-23) falls inside the user's
// configured quiet window. Overnight windows (start > end, e.g. 22 -> 6) wrap
// past midnight. A start or end of -1, or start == end, disables the window.
func (c *NotificationConfig) InQuietHours(hour int) bool {
	start, end := c.QuietHoursStart, c.QuietHoursEnd
	if start < 0 || end < 0 || start == end {
		return false
	}
	if start > end {
		return hour >= start || hour < end
	}
	return hour >= start && hour < end
}
