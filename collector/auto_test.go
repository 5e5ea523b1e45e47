package collector

import (
	"sync"
	"testing"
	"time"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func TestAutoCollectorIntervalClamp(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, DefaultInterval},
		{-time.Minute, DefaultInterval},
		{time.Minute, MinInterval},
		{MinInterval, MinInterval},
		{time.Hour, time.Hour},
	}
	for _, tc := range cases {
		c := NewAutoCollector(tc.in, newMemStore(), func() {})
		if got := c.Interval(); got != tc.want {
			t.Errorf("interval %s: got %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestAutoCollectorStartIdempotent(t *testing.T) {
	store := newMemStore()
	c := NewAutoCollector(time.Hour, store, func() {})
	defer c.Stop()

	if err := c.Start(); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := c.Start(); err != nil {
		t.Fatalf("second start should be a no-op: %v", err)
	}
	if !c.Status().Running {
		t.Fatal("collector should report running after Start")
	}
	if v, _ := store.Get(StateKey); v != "running" {
		t.Fatalf("persisted state: got %q, want running", v)
	}
}

func TestAutoCollectorStop(t *testing.T) {
	store := newMemStore()
	c := NewAutoCollector(time.Hour, store, func() {})

	if err := c.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if c.Status().Running {
		t.Fatal("collector should not report running after Stop")
	}
	if v, _ := store.Get(StateKey); v != "stopped" {
		t.Fatalf("persisted state: got %q, want stopped", v)
	}
	// Stop on a stopped collector is a no-op.
	if err := c.Stop(); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestAutoCollectorResume(t *testing.T) {
	store := newMemStore()

	// Nothing persisted: stays idle.
	c := NewAutoCollector(time.Hour, store, func() {})
	resumed, err := c.Resume()
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed || c.Status().Running {
		t.Fatal("resume without persisted state should not start the loop")
	}

	// Persisted running: arms on resume, as after a restart.
	store.Set(StateKey, "running")
	c2 := NewAutoCollector(time.Hour, store, func() {})
	defer c2.Stop()
	resumed, err = c2.Resume()
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !resumed || !c2.Status().Running {
		t.Fatal("resume with persisted running state should start the loop")
	}

	// Persisted stopped: stays idle.
	store2 := newMemStore()
	store2.Set(StateKey, "stopped")
	c3 := NewAutoCollector(time.Hour, store2, func() {})
	resumed, err = c3.Resume()
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed || c3.Status().Running {
		t.Fatal("resume with persisted stopped state should stay idle")
	}
}

func TestAutoCollectorTick(t *testing.T) {
	done := make(chan struct{}, 8)
	c := NewAutoCollector(time.Hour, newMemStore(), func() {
		done <- struct{}{}
	})
	// Drive the loop directly with a short interval; the public constructor
	// clamps to the 5 minute minimum.
	c.interval = 10 * time.Millisecond
	if err := c.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer c.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	if c.Status().Ticks < 1 {
		t.Fatalf("ticks: got %d, want >= 1", c.Status().Ticks)
	}
}
