package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking
type PausableClock struct {
	mu sync.RWMutex

	// Real time source, injected for tests
	source TimeProvider

	// Base time tracking
	realStartTime time.Time // When clock was created (real time)
	gameStartTime time.Time // Game time epoch

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a new pausable clock reading real time from source
func NewPausableClock(source TimeProvider) *PausableClock {
	now := source.Now()
	return &PausableClock{
		source:        source,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: return frozen time at pause point
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Game elapsed = real elapsed - total paused time
	realElapsed := pc.source.Now().Sub(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns the source time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement, returns false if already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.Load() {
		return false
	}
	pc.pauseStartTime = pc.source.Now()
	pc.isPaused.Store(true)
	return true
}

// Resume continues game time advancement, returns false if not paused
func (pc *PausableClock) Resume() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.isPaused.Load() {
		return false
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused.Store(false)
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time, including the current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// GetCurrentPauseDuration returns duration of current pause (0 if not paused)
func (pc *PausableClock) GetCurrentPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if !pc.isPaused.Load() {
		return 0
	}
	return pc.source.Now().Sub(pc.pauseStartTime)
}
