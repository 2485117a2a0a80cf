package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound effect tones and lengths
const (
	WallToneHz     = 440.0
	WallToneLen    = 35 * time.Millisecond
	PaddleToneHz   = 220.0
	PaddleToneLen  = 60 * time.Millisecond
	BrickToneHz    = 880.0
	BrickToneLen   = 90 * time.Millisecond
	LostBuzzHz     = 110.0
	LostBuzzLen    = 450 * time.Millisecond
	WonNoteLen     = 120 * time.Millisecond

	ToneAttack  = 3 * time.Millisecond
	ToneRelease = 20 * time.Millisecond
)

// Mix levels, linear 0.0-1.0
const (
	MasterVolume = 0.4
	BrickVolume  = 0.8
	BounceVolume = 0.5
)

// WonArpeggioHz is the victory jingle, played in order
var WonArpeggioHz = []float64{523.25, 659.25, 783.99, 1046.5}
