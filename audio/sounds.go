package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/breakout/parameter"
)

// WallSound is a short sine blip for side wall and ceiling bounces
func WallSound(rate beep.SampleRate) beep.Streamer {
	s := tone(parameter.WallToneHz, parameter.WallToneLen, WaveSine, rate, parameter.ToneAttack, parameter.ToneRelease)
	return newVolume(s, parameter.BounceVolume*parameter.MasterVolume)
}

// PaddleSound is a low square thud
func PaddleSound(rate beep.SampleRate) beep.Streamer {
	s := tone(parameter.PaddleToneHz, parameter.PaddleToneLen, WaveSquare, rate, parameter.ToneAttack, parameter.ToneRelease)
	return newVolume(s, parameter.BounceVolume*parameter.MasterVolume)
}

// BrickSound is a bell: fundamental plus an octave overtone with a faster release
func BrickSound(rate beep.SampleRate) beep.Streamer {
	fund := tone(parameter.BrickToneHz, parameter.BrickToneLen, WaveSine, rate, parameter.ToneAttack, parameter.BrickToneLen/2)
	over := tone(parameter.BrickToneHz*2, parameter.BrickToneLen, WaveSine, rate, parameter.ToneAttack, parameter.BrickToneLen*3/4)
	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, parameter.BrickVolume*parameter.MasterVolume)
}

// LostSound is a long falling saw buzz
func LostSound(rate beep.SampleRate) beep.Streamer {
	s := tone(parameter.LostBuzzHz, parameter.LostBuzzLen, WaveSaw, rate, parameter.ToneAttack, parameter.LostBuzzLen/2)
	return newVolume(s, parameter.MasterVolume)
}

// WonSound plays the victory arpeggio
func WonSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(parameter.WonArpeggioHz))
	for _, hz := range parameter.WonArpeggioHz {
		notes = append(notes, tone(hz, parameter.WonNoteLen, WaveSquare, rate, parameter.ToneAttack, parameter.ToneRelease))
	}
	return newVolume(beep.Seq(notes...), parameter.MasterVolume)
}
