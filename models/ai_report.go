package models

import "time"

// AiReport is an append-only summary produced by the LLM pass over recent signals.
type AiReport struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Model       string    `gorm:"size:100" json:"model"`
	SignalCount int       `gorm:"column:signal_count;default:0" json:"signal_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func (AiReport) TableName() string {
	return "ai_reports"
}
