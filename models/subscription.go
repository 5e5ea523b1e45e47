package models

import "time"

type Subscription struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Plan            string     `gorm:"type:enum('BASE','PREMIUM');default:'BASE'" json:"plan"`
	Status          string     `gorm:"type:enum('PENDING','ACTIVE','CANCELED','EXPIRED');default:'PENDING'" json:"status"`
	MaxAlertsPerDay int        `gorm:"column:max_alerts_per_day;default:5" json:"max_alerts_per_day"`
	MaxNiches       int        `gorm:"column:max_niches;default:0" json:"max_niches"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"-"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// IsActive reports whether the subscription currently grants access.
func (s *Subscription) IsActive() bool {
	if s.Status != "ACTIVE" {
		return false
	}
	if s.ExpiresAt != nil && time.Now().After(*s.ExpiresAt) {
		return false
	}
	return true
}

// PlanLimits returns the default (maxAlertsPerDay, maxNiches) for a plan.
// BASE users cannot subscribe to niches; they receive every qualifying alert instead.
func PlanLimits(plan string) (int, int) {
	if plan == "PREMIUM" {
		return 20, 10
	}
	return 5, 0
}
