package models

import "time"

type Niche struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"-"`

	Users []User `gorm:"many2many:user_niches" json:"-"`
}

func (Niche) TableName() string {
	return "niches"
}
