package models

import "time"

// Trend is an immutable point-in-time snapshot of a product's metrics together
// with the derived score and per-metric growth. Rows are never updated.
type Trend struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProductID      uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	Views          int64     `gorm:"type:bigint;default:0" json:"views"`
	Likes          int64     `gorm:"type:bigint;default:0" json:"likes"`
	Comments       int64     `gorm:"type:bigint;default:0" json:"comments"`
	Shares         int64     `gorm:"type:bigint;default:0" json:"shares"`
	Sales          int64     `gorm:"type:bigint;default:0" json:"sales"`
	ViralScore     float64   `gorm:"column:viral_score;type:decimal(5,2);default:0" json:"viral_score"`
	GrowthViews    float64   `gorm:"column:growth_views;type:decimal(8,2);default:0" json:"growth_views"`
	GrowthLikes    float64   `gorm:"column:growth_likes;type:decimal(8,2);default:0" json:"growth_likes"`
	GrowthComments float64   `gorm:"column:growth_comments;type:decimal(8,2);default:0" json:"growth_comments"`
	GrowthShares   float64   `gorm:"column:growth_shares;type:decimal(8,2);default:0" json:"growth_shares"`
	GrowthSales    float64   `gorm:"column:growth_sales;type:decimal(8,2);default:0" json:"growth_sales"`
	CreatedAt      time.Time `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Trend) TableName() string {
	return "trends"
}
