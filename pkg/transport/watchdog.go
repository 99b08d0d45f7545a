package transport

import (
	"sync"
	"time"
)

// Watchdog constants.
const (
	// DefaultPingInterval is how often a TV sends ping requests.
	DefaultPingInterval = 5 * time.Second

	// DefaultMaxMissedPings is the number of silent intervals tolerated
	// before the link is considered dead.
	DefaultMaxMissedPings = 3
)

// WatchdogConfig configures a PingWatchdog.
type WatchdogConfig struct {
	// PingInterval is the expected interval between pings.
	PingInterval time.Duration

	// MaxMissedPings is the number of intervals without a ping that
	// trigger the timeout.
	MaxMissedPings int
}

// DefaultWatchdogConfig returns the default watchdog configuration.
func DefaultWatchdogConfig() WatchdogConfig {
	return WatchdogConfig{
		PingInterval:   DefaultPingInterval,
		MaxMissedPings: DefaultMaxMissedPings,
	}
}

// DetectionDelay is the longest silence tolerated.
func (c WatchdogConfig) DetectionDelay() time.Duration {
	return c.PingInterval * time.Duration(c.MaxMissedPings)
}

// PingWatchdog detects a dead remote connection. The TV drives liveness by
// pinging the client, so the watchdog only measures the silence between
// pings and calls onTimeout once when it gets too long.
type PingWatchdog struct {
	config    WatchdogConfig
	onTimeout func()

	mu       sync.Mutex
	timer    *time.Timer
	lastSeq  uint32
	lastSeen time.Time
	running  bool
	fired    bool
}

// NewPingWatchdog creates a stopped watchdog.
func NewPingWatchdog(config WatchdogConfig, onTimeout func()) *PingWatchdog {
	if config.PingInterval <= 0 {
		config.PingInterval = DefaultPingInterval
	}
	if config.MaxMissedPings <= 0 {
		config.MaxMissedPings = DefaultMaxMissedPings
	}
	return &PingWatchdog{config: config, onTimeout: onTimeout}
}

// Start arms the watchdog. Calling Start on a running watchdog is a no-op.
func (w *PingWatchdog) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true
	w.fired = false
	w.lastSeen = time.Now()
	w.timer = time.AfterFunc(w.config.DetectionDelay(), w.expire)
}

// Stop disarms the watchdog.
func (w *PingWatchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	w.timer.Stop()
}

// PingReceived records a ping and rearms the timer.
func (w *PingWatchdog) PingReceived(seq uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastSeq = seq
	w.lastSeen = time.Now()
	if w.running {
		w.timer.Reset(w.config.DetectionDelay())
	}
}

// LastPing returns the last ping sequence value and when it arrived.
func (w *PingWatchdog) LastPing() (uint32, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeq, w.lastSeen
}

// IsRunning reports whether the watchdog is armed.
func (w *PingWatchdog) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *PingWatchdog) expire() {
	w.mu.Lock()
	if !w.running || w.fired || time.Since(w.lastSeen) < w.config.DetectionDelay() {
		w.mu.Unlock()
		return
	}
	w.fired = true
	w.running = false
	cb := w.onTimeout
	w.mu.Unlock()

	if cb != nil {
		cb()
	}
}
