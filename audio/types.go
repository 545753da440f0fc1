package audio

import "github.com/lixenwraith/vi-snake/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat    SoundType = iota // Reward consumed
	SoundCrash                   // Wall or self collision
	SoundPause                   // Session paused
	SoundResume                  // Session resumed
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	case SoundPause:
		return "pause"
	case SoundResume:
		return "resume"
	}
	return "unknown"
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:    1.0,
			SoundCrash:  0.8,
			SoundPause:  0.4,
			SoundResume: 0.4,
		},
	}
}
