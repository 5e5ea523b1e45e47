package models

import "time"

// TrendSignal is an append-only record of a detected hashtag/sound/video signal.
type TrendSignal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Type          string    `gorm:"type:enum('hashtag','sound','video');not null" json:"type"`
	Value         string    `gorm:"size:255;not null" json:"value"`
	Category      string    `gorm:"size:100" json:"category"`
	Region        string    `gorm:"size:10" json:"region"`
	GrowthPercent float64   `gorm:"column:growth_percent;type:decimal(8,2);default:0" json:"growth_percent"`
	CreatedAt     time.Time `json:"created_at"`
}

func (TrendSignal) TableName() string {
	return "trend_signals"
}
