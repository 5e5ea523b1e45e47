package alerts

import (
	"time"

	"github.com/wesleycpo2/spacered-sub000/models"
)

// Job-level backpressure limits for a single alert run.
const (
	MaxProductsPerRun = 50
	MaxDispatchPerRun = 100
	// DedupWindow prevents a product from opening a fresh alert round while a
	// previous round is still inside the trailing window.
	DedupWindow = 24 * time.Hour
)

// DailyCap resolves the effective per-day alert cap for a user: the
// notification config override when set, otherwise the plan limit.
func DailyCap(sub *models.Subscription, cfg *models.NotificationConfig) int {
	if cfg != nil && cfg.MaxAlertsPerDay > 0 {
		return cfg.MaxAlertsPerDay
	}
	if sub != nil {
		return sub.MaxAlertsPerDay
	}
	return 0
}

// Eligible decides whether one user should be alerted for one product.
// todayCount is the number of alerts already created for the user today.
//
// Rules, in order: the subscription must be ACTIVE; quiet hours silence
// everything; the daily cap bounds volume; BASE users then receive every
// qualifying product, while PREMIUM users only receive products in one of
// their subscribed niches.
func Eligible(p *models.Product, u *models.User, now time.Time, todayCount int64) bool {
	sub := u.Subscription
	if sub == nil || !sub.IsActive() {
		return false
	}
	if u.NotificationConfig != nil && u.NotificationConfig.InQuietHours(now.Hour()) {
		return false
	}
	if cap := DailyCap(sub, u.NotificationConfig); cap > 0 && todayCount >= int64(cap) {
		return false
	}
	if sub.Plan != "PREMIUM" {
		return true
	}
	if p.NicheID == nil {
		return false
	}
	for _, n := range u.Niches {
		if n.ID == *p.NicheID {
			return true
		}
	}
	return false
}
