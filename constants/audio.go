package constants

import "time"

// Eat Sound (two-partial bell)
const (
	EatSoundDuration           = 120 * time.Millisecond
	EatSoundAttack             = 4 * time.Millisecond
	EatSoundFundamentalRelease = 100 * time.Millisecond
	EatSoundOvertoneRelease    = 60 * time.Millisecond
)

// Crash Sound (harmonic buzz)
const (
	CrashSoundDuration = 350 * time.Millisecond
	CrashSoundFreq     = 110.0
)

// Pause Blip
const (
	PauseBlipDuration = 40 * time.Millisecond
	PauseBlipFreq     = 660.0
	ResumeBlipFreq    = 990.0
)

// Speaker
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)
