package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for deterministic scheduling
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// AdvanceTicks pumps the scheduler once per interval, n times, and returns total ticks run
// Each step stays within the scheduler's catch-up window, so every interval yields one tick
func (m *MockTimeProvider) AdvanceTicks(cs *ClockScheduler, n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		m.Advance(cs.TickInterval())
		ran += cs.Pump()
	}
	return ran
}
