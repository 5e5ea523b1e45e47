package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Number    string    `gorm:"size:20;uniqueIndex;not null" json:"number"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Status    string    `gorm:"type:enum('Active','Inactive','Suspend');default:'Active'" json:"status"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Subscription       *Subscription       `gorm:"foreignKey:UserID" json:"subscription,omitempty"`
	NotificationConfig *NotificationConfig `gorm:"foreignKey:UserID" json:"notification_config,omitempty"`
	Niches             []Niche             `gorm:"many2many:user_niches" json:"niches,omitempty"`
}

func (User) TableName() string {
	return "users"
}
