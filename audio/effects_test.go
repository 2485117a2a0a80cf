package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/breakout/parameter"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > int(sampleRate)*10 {
			t.Fatal("stream did not terminate")
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range waves {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tc.wave, sampleRate)
			n, peak := drain(t, osc)
			if want := sampleRate.N(50 * time.Millisecond); n != want {
				t.Errorf("Expected %d samples, got %d", want, n)
			}
			if peak > 1.0 {
				t.Errorf("Expected peak <= 1.0, got %f", peak)
			}
		})
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, sampleRate) // phase 0 square is a constant 1.0
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	mid := n / 2
	if buf[mid][0] != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", buf[mid][0])
	}
	if last := buf[n-1][0]; last <= 0 || last >= 0.01 {
		t.Errorf("Expected near-silent tail, got %f", last)
	}
}

func TestEffectLengths(t *testing.T) {
	tests := []struct {
		name  string
		build func(beep.SampleRate) beep.Streamer
		want  int
	}{
		{"wall", WallSound, sampleRate.N(parameter.WallToneLen)},
		{"paddle", PaddleSound, sampleRate.N(parameter.PaddleToneLen)},
		{"lost", LostSound, sampleRate.N(parameter.LostBuzzLen)},
		{"won", WonSound, len(parameter.WonArpeggioHz) * sampleRate.N(parameter.WonNoteLen)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, peak := drain(t, tc.build(sampleRate))
			if n != tc.want {
				t.Errorf("Expected %d samples, got %d", tc.want, n)
			}
			if peak > parameter.MasterVolume+1e-9 {
				t.Errorf("Expected peak within master volume, got %f", peak)
			}
		})
	}
}

func TestBrickSoundIsAudible(t *testing.T) {
	buf := make([][2]float64, sampleRate.N(parameter.BrickToneLen/2))
	n, _ := BrickSound(sampleRate).Stream(buf)
	if n == 0 {
		t.Fatal("Expected samples from brick sound")
	}
	peak := 0.0
	for i := 0; i < n; i++ {
		peak = math.Max(peak, math.Abs(buf[i][0]))
	}
	if peak == 0 {
		t.Error("Expected non-silent brick sound")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSine, sampleRate), 0)
	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}
