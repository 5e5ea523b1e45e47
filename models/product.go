package models

import "time"

type Product struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	SourceURL     string     `gorm:"column:source_url;size:512" json:"source_url"`
	NicheID       *uint      `gorm:"column:niche_id;index" json:"niche_id,omitempty"`
	Views         int64      `gorm:"type:bigint;default:0" json:"views"`
	Likes         int64      `gorm:"type:bigint;default:0" json:"likes"`
	Comments      int64      `gorm:"type:bigint;default:0" json:"comments"`
	Shares        int64      `gorm:"type:bigint;default:0" json:"shares"`
	Sales         int64      `gorm:"type:bigint;default:0" json:"sales"`
	ViralScore    float64    `gorm:"column:viral_score;type:decimal(5,2);default:0" json:"viral_score"`
	Status        string     `gorm:"type:enum('MONITORING','VIRAL','DECLINED');default:'MONITORING'" json:"status"`
	IsActive      bool       `gorm:"column:is_active;default:true" json:"is_active"`
	LastScrapedAt *time.Time `gorm:"column:last_scraped_at" json:"last_scraped_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	Niche *Niche `gorm:"foreignKey:NicheID" json:"niche,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
