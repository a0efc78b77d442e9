package engine

import (
	"sync"
	"time"
)

// PausableClock measures simulation time as real time minus paused spans
type PausableClock struct {
	mu sync.Mutex

	source TimeProvider
	start  time.Time

	paused      bool
	pausedAt    time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a running clock on the given source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Elapsed returns unpaused time since the clock started
// Frozen at the pause point while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	end := pc.source.Now()
	if pc.paused {
		end = pc.pausedAt
	}
	return end.Sub(pc.start) - pc.totalPaused
}

// RealTime returns the source reading, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
}

func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.source.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time including any current pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}
