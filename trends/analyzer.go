package trends

import (
	"errors"
	"log"
	"time"

	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/scoring"

	"gorm.io/gorm"
)

// Analyzer recomputes the viral score, growth and status of products and
// writes immutable Trend snapshots.
type Analyzer struct {
	db *gorm.DB
	// Delay applied between items in a batch so downstream APIs are not
	// hammered. Not a concurrency mechanism.
	ItemDelay time.Duration
}

func NewAnalyzer(db *gorm.DB) *Analyzer {
	return &Analyzer{db: db, ItemDelay: 100 * time.Millisecond}
}

// AnalyzeProduct recomputes score, growth and status for one product, updates
// the product row and appends a Trend snapshot. The two writes are
// intentionally independent (no transaction): re-running the analysis
// recomputes both from current metrics, so a crash in between is recoverable.
func (a *Analyzer) AnalyzeProduct(p *models.Product) error {
	curr := scoring.Metrics{
		Views:    p.Views,
		Likes:    p.Likes,
		Comments: p.Comments,
		Shares:   p.Shares,
		Sales:    p.Sales,
	}

	growth := scoring.ZeroGrowth()
	var prev models.Trend
	err := a.db.Where("product_id = ?", p.ID).Order("created_at DESC").First(&prev).Error
	if err == nil {
		growth = scoring.CalculateGrowth(scoring.Metrics{
			Views:    prev.Views,
			Likes:    prev.Likes,
			Comments: prev.Comments,
			Shares:   prev.Shares,
			Sales:    prev.Sales,
		}, curr)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	score := scoring.ViralScore(curr)
	status := scoring.Classify(score, growth)
	now := time.Now()

	if err := a.db.Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"viral_score":     score,
		"status":          status,
		"last_scraped_at": now,
	}).Error; err != nil {
		return err
	}

	snapshot := models.Trend{
		ProductID:      p.ID,
		Views:          curr.Views,
		Likes:          curr.Likes,
		Comments:       curr.Comments,
		Shares:         curr.Shares,
		Sales:          curr.Sales,
		ViralScore:     score,
		GrowthViews:    growth.Views,
		GrowthLikes:    growth.Likes,
		GrowthComments: growth.Comments,
		GrowthShares:   growth.Shares,
		GrowthSales:    growth.Sales,
	}
	if err := a.db.Create(&snapshot).Error; err != nil {
		return err
	}

	p.ViralScore = score
	p.Status = status
	p.LastScrapedAt = &now
	return nil
}

// AnalyzeAll re-scores every active product. One failing product does not stop
// the batch; failures are logged and counted.
func (a *Analyzer) AnalyzeAll() (analyzed, failed int, err error) {
	var products []models.Product
	if err := a.db.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return 0, 0, err
	}
	for i := range products {
		if err := a.AnalyzeProduct(&products[i]); err != nil {
			log.Printf("[trends] analyze product %d gagal: %v", products[i].ID, err)
			failed++
		} else {
			analyzed++
		}
		if a.ItemDelay > 0 && i < len(products)-1 {
			time.Sleep(a.ItemDelay)
		}
	}
	return analyzed, failed, nil
}

// RecordSignal appends a TrendSignal row.
func (a *Analyzer) RecordSignal(sig *models.TrendSignal) error {
	return a.db.Create(sig).Error
}

// LatestSignals returns the most recent signals, newest first.
func (a *Analyzer) LatestSignals(limit int) ([]models.TrendSignal, error) {
	if limit <= 0 {
		limit = 50
	}
	var signals []models.TrendSignal
	err := a.db.Order("created_at DESC").Limit(limit).Find(&signals).Error
	return signals, err
}

// History returns the snapshot history for a product, newest first.
func (a *Analyzer) History(productID uint, limit int) ([]models.Trend, error) {
	if limit <= 0 {
		limit = 50
	}
	var trends []models.Trend
	err := a.db.Where("product_id = ?", productID).Order("created_at DESC").Limit(limit).Find(&trends).Error
	return trends, err
}
