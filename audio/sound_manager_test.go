package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayWall()
	sm.PlayPaddle()
	sm.PlayBrick()
	sm.PlayLost()
	sm.PlayWon()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayBrick()
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected Cleanup to disable playback")
	}

	// Safe after cleanup
	sm.PlayWon()
}
