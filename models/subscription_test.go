package models

import (
	"testing"
	"time"
)

func TestSubscriptionIsActive(t *testing.T) {
	s := &Subscription{Status: "ACTIVE"}
	if !s.IsActive() {
		t.Fatal("ACTIVE without expiry should be active")
	}

	future := time.Now().Add(time.Hour)
	s.ExpiresAt = &future
	if !s.IsActive() {
		t.Fatal("ACTIVE with future expiry should be active")
	}

	past := time.Now().Add(-time.Hour)
	s.ExpiresAt = &past
	if s.IsActive() {
		t.Fatal("expired subscription should not be active")
	}

	for _, status := range []string{"PENDING", "CANCELED", "EXPIRED"} {
		s := &Subscription{Status: status}
		if s.IsActive() {
			t.Errorf("%s subscription should not be active", status)
		}
	}
}

func TestPlanLimits(t *testing.T) {
	alerts, niches := PlanLimits("PREMIUM")
	if alerts != 20 || niches != 10 {
		t.Errorf("PREMIUM limits: got (%d, %d), want (20, 10)", alerts, niches)
	}
	alerts, niches = PlanLimits("BASE")
	if alerts != 5 || niches != 0 {
		t.Errorf("BASE limits: got (%d, %d), want (5, 0)", alerts, niches)
	}
}

func TestInQuietHours(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		hour       int
		want       bool
	}{
		{"daytime inside", 9, 17, 12, true},
		{"daytime at start", 9, 17, 9, true},
		{"daytime at end", 9, 17, 17, false},
		{"daytime outside", 9, 17, 20, false},
		{"overnight late", 22, 6, 23, true},
		{"overnight early", 22, 6, 3, true},
		{"overnight at end", 22, 6, 6, false},
		{"overnight daytime", 22, 6, 12, false},
		{"disabled -1", -1, -1, 12, false},
		{"disabled equal", 8, 8, 8, false},
	}
	for _, tc := range cases {
		cfg := &NotificationConfig{QuietHoursStart: tc.start, QuietHoursEnd: tc.end}
		if got := cfg.InQuietHours(tc.hour); got != tc.want {
			t.Errorf("%s: InQuietHours(%d) with %d-%d = %v, want %v", tc.name, tc.hour, tc.start, tc.end, got, tc.want)
		}
	}
}
