package alerts

import (
	"log"
	"time"

	"github.com/wesleycpo2/spacered-sub000/channels"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/scoring"

	"gorm.io/gorm"
)

// Dispatcher creates pending alerts for eligible users and pushes them through
// the configured channel adapters.
type Dispatcher struct {
	db       *gorm.DB
	adapters channels.Registry

	// SendDelay spaces out sequential sends as a courtesy to the channel
	// APIs; RetryDelay is the longer spacing used on the retry pass.
	SendDelay     time.Duration
	RetryDelay    time.Duration
	MaxRetries    int
	RetentionDays int
}

func NewDispatcher(db *gorm.DB, adapters channels.Registry) *Dispatcher {
	return &Dispatcher{
		db:            db,
		adapters:      adapters,
		SendDelay:     500 * time.Millisecond,
		RetryDelay:    time.Second,
		MaxRetries:    3,
		RetentionDays: 30,
	}
}

// RunSummary aggregates the outcome of a full alert pass.
type RunSummary struct {
	Products int `json:"products"`
	Created  int `json:"created"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
}

// FindQualifyingProducts returns active products at or above the alert
// threshold that have not opened an alert round inside the dedup window,
// highest score first, capped at MaxProductsPerRun.
func (d *Dispatcher) FindQualifyingProducts() ([]models.Product, error) {
	cutoff := time.Now().Add(-DedupWindow)
	recent := d.db.Model(&models.Alert{}).Select("product_id").Where("created_at > ?", cutoff)

	var products []models.Product
	err := d.db.Preload("Niche").
		Where("is_active = ? AND viral_score >= ?", true, scoring.AlertThreshold).
		Where("id NOT IN (?)", recent).
		Order("viral_score DESC").
		Limit(MaxProductsPerRun).
		Find(&products).Error
	return products, err
}

// CreateAlerts creates PENDING alert rows for every eligible user of one
// product. The message body is rendered per channel at creation time.
func (d *Dispatcher) CreateAlerts(p *models.Product) (int, error) {
	var users []models.User
	err := d.db.Preload("Subscription").Preload("NotificationConfig").Preload("Niches").
		Joins("JOIN subscriptions ON subscriptions.user_id = users.id AND subscriptions.status = 'ACTIVE'").
		Where("users.status = 'Active'").
		Find(&users).Error
	if err != nil {
		return 0, err
	}

	nicheName := ""
	if p.Niche != nil {
		nicheName = p.Niche.Name
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	created := 0
	for i := range users {
		u := &users[i]

		var todayCount int64
		if err := d.db.Model(&models.Alert{}).
			Where("user_id = ? AND created_at >= ?", u.ID, startOfDay).
			Count(&todayCount).Error; err != nil {
			log.Printf("[dispatch] hitung alert harian user %d gagal: %v", u.ID, err)
			continue
		}
		if !Eligible(p, u, now, todayCount) {
			continue
		}

		sel := channels.Select(u.Subscription.Plan, u.NotificationConfig)
		var body string
		if sel.Channel == channels.Whatsapp {
			body = RenderWhatsApp(p, nicheName)
		} else {
			body = RenderTelegram(p, nicheName)
		}

		alert := models.Alert{
			UserID:    u.ID,
			ProductID: p.ID,
			Channel:   sel.Channel,
			Status:    "PENDING",
			Message:   body,
		}
		if err := d.db.Create(&alert).Error; err != nil {
			log.Printf("[dispatch] buat alert user %d produk %d gagal: %v", u.ID, p.ID, err)
			continue
		}
		created++
	}
	return created, nil
}

// SendPending pushes up to MaxDispatchPerRun pending alerts through their
// channel adapters sequentially. Returns (sent, failed) counts.
func (d *Dispatcher) SendPending() (int, int, error) {
	var pending []models.Alert
	err := d.db.Where("status = 'PENDING'").
		Order("created_at ASC").
		Limit(MaxDispatchPerRun).
		Find(&pending).Error
	if err != nil {
		return 0, 0, err
	}
	sent, failed := d.sendBatch(pending, d.SendDelay)
	return sent, failed, nil
}

// RetryFailed re-sends failed alerts that still have retry budget, with a
// longer inter-send delay. Alerts at the budget stay FAILED permanently.
// The budget is part of the query so exhausted rows never occupy slots in
// the per-run window.
func (d *Dispatcher) RetryFailed() (int, int, error) {
	var stale []models.Alert
	err := d.db.Where("status = 'FAILED' AND retry_count < ?", d.MaxRetries).
		Order("created_at ASC").
		Limit(MaxDispatchPerRun).
		Find(&stale).Error
	if err != nil {
		return 0, 0, err
	}
	sent, failed := d.sendBatch(Retryable(stale, d.MaxRetries), d.RetryDelay)
	return sent, failed, nil
}

// Retryable filters failed alerts that still have retry budget left. An alert
// with retry_count == maxRetries has exhausted its budget and stays FAILED.
func Retryable(batch []models.Alert, maxRetries int) []models.Alert {
	out := make([]models.Alert, 0, len(batch))
	for _, a := range batch {
		if a.RetryCount < maxRetries {
			out = append(out, a)
		}
	}
	return out
}

func (d *Dispatcher) sendBatch(batch []models.Alert, delay time.Duration) (sent, failed int) {
	for i := range batch {
		if d.sendOne(&batch[i]) {
			sent++
		} else {
			failed++
		}
		if delay > 0 && i < len(batch)-1 {
			time.Sleep(delay)
		}
	}
	return sent, failed
}

// sendOne resolves the destination from the user's current config and delivers
// the alert, recording the outcome on the row. The channel was fixed at
// creation; only the destination for that same channel is re-resolved, so a
// config change between creation and send (or retry) fails the alert instead
// of routing another channel's destination here.
func (d *Dispatcher) sendOne(alert *models.Alert) bool {
	adapter, ok := d.adapters[alert.Channel]
	if !ok {
		d.markFailed(alert, "channel tidak dikonfigurasi")
		return false
	}

	var user models.User
	if err := d.db.Preload("Subscription").Preload("NotificationConfig").
		First(&user, alert.UserID).Error; err != nil {
		d.markFailed(alert, "user tidak ditemukan")
		return false
	}
	plan := "BASE"
	if user.Subscription != nil {
		plan = user.Subscription.Plan
	}
	dest, ok := channels.DestinationFor(alert.Channel, plan, user.NotificationConfig)
	if !ok {
		d.markFailed(alert, "tujuan channel tidak tersedia")
		return false
	}

	ok, err := adapter.Send(dest, alert.Message)
	if err != nil {
		log.Printf("[dispatch] alert %d konfigurasi channel %s bermasalah: %v", alert.ID, alert.Channel, err)
		d.markFailed(alert, err.Error())
		return false
	}
	if !ok {
		d.markFailed(alert, "pengiriman gagal")
		return false
	}

	now := time.Now()
	if err := d.db.Model(&models.Alert{}).Where("id = ?", alert.ID).Updates(map[string]interface{}{
		"status":  "SENT",
		"sent_at": now,
	}).Error; err != nil {
		log.Printf("[dispatch] update alert %d gagal: %v", alert.ID, err)
	}
	return true
}

func (d *Dispatcher) markFailed(alert *models.Alert, reason string) {
	if err := d.db.Model(&models.Alert{}).Where("id = ?", alert.ID).Updates(map[string]interface{}{
		"status":      "FAILED",
		"fail_reason": reason,
		"retry_count": gorm.Expr("retry_count + 1"),
	}).Error; err != nil {
		log.Printf("[dispatch] tandai alert %d gagal: %v", alert.ID, err)
	}
}

// ProcessAll runs the full pipeline: find qualifying products, create alerts,
// send pending. One failing product does not stop the run.
func (d *Dispatcher) ProcessAll() (RunSummary, error) {
	var summary RunSummary

	products, err := d.FindQualifyingProducts()
	if err != nil {
		return summary, err
	}
	summary.Products = len(products)

	for i := range products {
		created, err := d.CreateAlerts(&products[i])
		if err != nil {
			log.Printf("[dispatch] buat alert produk %d gagal: %v", products[i].ID, err)
			continue
		}
		summary.Created += created
	}

	sent, failed, err := d.SendPending()
	if err != nil {
		return summary, err
	}
	summary.Sent = sent
	summary.Failed = failed
	return summary, nil
}

// CleanupOld purges SENT and FAILED alerts older than the retention window.
func (d *Dispatcher) CleanupOld() (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -d.RetentionDays)
	res := d.db.Where("status IN ('SENT','FAILED') AND created_at < ?", cutoff).
		Delete(&models.Alert{})
	return res.RowsAffected, res.Error
}
