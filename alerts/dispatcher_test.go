package alerts

import (
	"testing"

	"github.com/wesleycpo2/spacered-sub000/models"
)

func TestRetryableFiltersExhaustedBudget(t *testing.T) {
	batch := []models.Alert{
		{ID: 1, RetryCount: 0},
		{ID: 2, RetryCount: 2},
		{ID: 3, RetryCount: 3},
		{ID: 4, RetryCount: 5},
	}
	out := Retryable(batch, 3)
	if len(out) != 2 {
		t.Fatalf("got %d retryable alerts, want 2", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("wrong alerts kept: %d, %d", out[0].ID, out[1].ID)
	}
}

func TestRetryableEmpty(t *testing.T) {
	if out := Retryable(nil, 3); len(out) != 0 {
		t.Fatalf("nil batch should yield empty, got %d", len(out))
	}
	batch := []models.Alert{{ID: 1, RetryCount: 3}}
	if out := Retryable(batch, 3); len(out) != 0 {
		t.Fatalf("fully exhausted batch should yield empty, got %d", len(out))
	}
}

func TestRetryableExhaustedBacklogDoesNotHoldSlots(t *testing.T) {
	// A long backlog of budget-exhausted rows ahead of one retryable alert:
	// the filter must drop every exhausted row so newer alerts are reached.
	batch := make([]models.Alert, 0, MaxDispatchPerRun+1)
	for i := 0; i < MaxDispatchPerRun; i++ {
		batch = append(batch, models.Alert{ID: uint(i + 1), RetryCount: 3})
	}
	batch = append(batch, models.Alert{ID: 9999, RetryCount: 1})

	out := Retryable(batch, 3)
	if len(out) != 1 || out[0].ID != 9999 {
		t.Fatalf("exhausted backlog should be dropped entirely, got %d rows", len(out))
	}
}
