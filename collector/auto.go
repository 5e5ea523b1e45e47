package collector

import (
	"log"
	"sync"
	"time"

	"github.com/wesleycpo2/spacered-sub000/models"

	"gorm.io/gorm"
)

const (
	// StateKey is the app_states row recording operator intent for the loop.
	StateKey = "auto_collector"

	MinInterval     = 5 * time.Minute
	DefaultInterval = 30 * time.Minute
)

// StateStore persists the desired running state so a restart neither silently
// resumes nor silently stays paused against operator intent.
type StateStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// DBStateStore backs StateStore with the app_states table.
type DBStateStore struct {
	DB *gorm.DB
}

func (s DBStateStore) Get(key string) (string, error) {
	return models.GetAppState(s.DB, key)
}

func (s DBStateStore) Set(key, value string) error {
	return models.SetAppState(s.DB, key, value)
}

// AutoCollector owns the single periodic timer that drives collection. At
// most one timer goroutine is active per instance; Start is idempotent.
type AutoCollector struct {
	mu       sync.Mutex
	running  bool
	stop     chan struct{}
	interval time.Duration
	store    StateStore
	run      func()
	lastRun  time.Time
	ticks    int
}

// NewAutoCollector builds the loop. A zero interval falls back to the
// default (30m); anything below the minimum (5m) is clamped up.
func NewAutoCollector(interval time.Duration, store StateStore, run func()) *AutoCollector {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if interval < MinInterval {
		interval = MinInterval
	}
	return &AutoCollector{interval: interval, store: store, run: run}
}

// Start arms the timer and persists the running state. Calling Start while
// already running is a no-op.
func (c *AutoCollector) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return nil
	}
	if err := c.store.Set(StateKey, "running"); err != nil {
		return err
	}
	c.stop = make(chan struct{})
	c.running = true
	go c.loop(c.stop)
	log.Printf("[auto-collector] aktif, interval %s", c.interval)
	return nil
}

// Stop persists the stopped state and prevents the next tick. An in-flight
// run completes; there is no cancellation of running work.
func (c *AutoCollector) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return nil
	}
	if err := c.store.Set(StateKey, "stopped"); err != nil {
		return err
	}
	close(c.stop)
	c.running = false
	log.Printf("[auto-collector] berhenti")
	return nil
}

// Resume arms the timer only when the persisted state says it was running
// before the restart. Returns whether the loop was started.
func (c *AutoCollector) Resume() (bool, error) {
	state, err := c.store.Get(StateKey)
	if err != nil {
		return false, err
	}
	if state != "running" {
		return false, nil
	}
	return true, c.Start()
}

func (c *AutoCollector) loop(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.lastRun = time.Now()
			c.ticks++
			c.mu.Unlock()
			c.run()
		case <-stop:
			return
		}
	}
}

// Status returns a snapshot of the loop state.
type Status struct {
	Running  bool      `json:"running"`
	Interval string    `json:"interval"`
	LastRun  time.Time `json:"last_run"`
	Ticks    int       `json:"ticks"`
}

func (c *AutoCollector) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Running:  c.running,
		Interval: c.interval.String(),
		LastRun:  c.lastRun,
		Ticks:    c.ticks,
	}
}

// Interval exposes the effective (clamped) interval.
func (c *AutoCollector) Interval() time.Duration {
	return c.interval
}
