package alerts

import (
	"testing"
	"time"

	"github.com/wesleycpo2/spacered-sub000/models"
)

func activeSub(plan string) *models.Subscription {
	maxAlerts, maxNiches := models.PlanLimits(plan)
	return &models.Subscription{
		Plan:            plan,
		Status:          "ACTIVE",
		MaxAlertsPerDay: maxAlerts,
		MaxNiches:       maxNiches,
	}
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 30, 0, 0, time.UTC)
}

func TestEligibleRequiresActiveSubscription(t *testing.T) {
	p := &models.Product{ID: 1}
	u := &models.User{ID: 1}
	if Eligible(p, u, at(12), 0) {
		t.Fatal("user without subscription should not be eligible")
	}

	u.Subscription = &models.Subscription{Plan: "BASE", Status: "PENDING", MaxAlertsPerDay: 5}
	if Eligible(p, u, at(12), 0) {
		t.Fatal("PENDING subscription should not be eligible")
	}

	expired := time.Now().Add(-time.Hour)
	u.Subscription = &models.Subscription{Plan: "BASE", Status: "ACTIVE", MaxAlertsPerDay: 5, ExpiresAt: &expired}
	if Eligible(p, u, at(12), 0) {
		t.Fatal("expired subscription should not be eligible")
	}
}

func TestEligibleBaseAlwaysMatches(t *testing.T) {
	nicheID := uint(7)
	p := &models.Product{ID: 1, NicheID: &nicheID}
	u := &models.User{ID: 1, Subscription: activeSub("BASE")}
	if !Eligible(p, u, at(12), 0) {
		t.Fatal("BASE user should receive every qualifying product")
	}

	// No niche on the product either.
	if !Eligible(&models.Product{ID: 2}, u, at(12), 0) {
		t.Fatal("BASE user should receive nicheless products too")
	}
}

func TestEligiblePremiumNicheMatch(t *testing.T) {
	nicheID := uint(7)
	p := &models.Product{ID: 1, NicheID: &nicheID}

	u := &models.User{ID: 1, Subscription: activeSub("PREMIUM")}
	if Eligible(p, u, at(12), 0) {
		t.Fatal("PREMIUM user without subscribed niches should not match")
	}

	u.Niches = []models.Niche{{ID: 3}, {ID: 7}}
	if !Eligible(p, u, at(12), 0) {
		t.Fatal("PREMIUM user with matching niche should be eligible")
	}

	u.Niches = []models.Niche{{ID: 3}}
	if Eligible(p, u, at(12), 0) {
		t.Fatal("PREMIUM user with mismatched niche should not be eligible")
	}

	if Eligible(&models.Product{ID: 2}, u, at(12), 0) {
		t.Fatal("PREMIUM user should never match a nicheless product")
	}
}

func TestEligibleQuietHours(t *testing.T) {
	u := &models.User{
		ID:           1,
		Subscription: activeSub("BASE"),
		NotificationConfig: &models.NotificationConfig{
			QuietHoursStart: 9,
			QuietHoursEnd:   17,
		},
	}
	p := &models.Product{ID: 1}

	if Eligible(p, u, at(12), 0) {
		t.Fatal("inside quiet hours should not be eligible")
	}
	if !Eligible(p, u, at(8), 0) {
		t.Fatal("before quiet hours should be eligible")
	}
	if !Eligible(p, u, at(17), 0) {
		t.Fatal("quiet hours end is exclusive")
	}
}

func TestEligibleQuietHoursOvernight(t *testing.T) {
	u := &models.User{
		ID:           1,
		Subscription: activeSub("BASE"),
		NotificationConfig: &models.NotificationConfig{
			QuietHoursStart: 22,
			QuietHoursEnd:   6,
		},
	}
	p := &models.Product{ID: 1}

	if Eligible(p, u, at(23), 0) {
		t.Fatal("23:00 is inside an overnight 22-6 window")
	}
	if Eligible(p, u, at(3), 0) {
		t.Fatal("03:00 is inside an overnight 22-6 window")
	}
	if !Eligible(p, u, at(7), 0) {
		t.Fatal("07:00 is outside an overnight 22-6 window")
	}
	if !Eligible(p, u, at(21), 0) {
		t.Fatal("21:00 is outside an overnight 22-6 window")
	}
}

func TestEligibleQuietHoursDisabled(t *testing.T) {
	u := &models.User{
		ID:           1,
		Subscription: activeSub("BASE"),
		NotificationConfig: &models.NotificationConfig{
			QuietHoursStart: -1,
			QuietHoursEnd:   -1,
		},
	}
	if !Eligible(&models.Product{ID: 1}, u, at(3), 0) {
		t.Fatal("disabled quiet hours should never silence alerts")
	}
}

func TestEligibleDailyCap(t *testing.T) {
	u := &models.User{ID: 1, Subscription: activeSub("BASE")} // cap 5
	p := &models.Product{ID: 1}

	if !Eligible(p, u, at(12), 4) {
		t.Fatal("below cap should be eligible")
	}
	if Eligible(p, u, at(12), 5) {
		t.Fatal("at cap should not be eligible")
	}

	// Config override beats the plan cap.
	u.NotificationConfig = &models.NotificationConfig{MaxAlertsPerDay: 2, QuietHoursStart: -1, QuietHoursEnd: -1}
	if Eligible(p, u, at(12), 2) {
		t.Fatal("config override cap should apply")
	}
	if !Eligible(p, u, at(12), 1) {
		t.Fatal("below overridden cap should be eligible")
	}
}

func TestDailyCap(t *testing.T) {
	sub := activeSub("PREMIUM")
	if got := DailyCap(sub, nil); got != 20 {
		t.Errorf("plan cap: got %d, want 20", got)
	}
	cfg := &models.NotificationConfig{MaxAlertsPerDay: 3}
	if got := DailyCap(sub, cfg); got != 3 {
		t.Errorf("override cap: got %d, want 3", got)
	}
	if got := DailyCap(nil, nil); got != 0 {
		t.Errorf("no subscription: got %d, want 0", got)
	}
}
