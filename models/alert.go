package models

import "time"

type Alert struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID  uint       `gorm:"column:product_id;not null;index" json:"product_id"`
	Channel    string     `gorm:"type:enum('TELEGRAM','WHATSAPP');not null" json:"channel"`
	Status     string     `gorm:"type:enum('PENDING','SENT','FAILED');default:'PENDING';index" json:"status"`
	Message    string     `gorm:"type:text" json:"message"`
	RetryCount int        `gorm:"column:retry_count;default:0" json:"retry_count"`
	FailReason *string    `gorm:"column:fail_reason;size:255" json:"fail_reason,omitempty"`
	SentAt     *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"-"`

	// Relations
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Alert) TableName() string {
	return "alerts"
}
