package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps; output stops after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a base-2 volume effect
// math.Log2(0) is -Inf, so zero volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short two-partial bell
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, constants.EatSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundFundamentalRelease, rate)

	// Octave up
	over := NewOscillator(1760.0, constants.EatSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateCrashSound generates a low harmonic buzz
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.CrashSoundDuration

	base := NewEnvelope(NewOscillator(constants.CrashSoundFreq, d, WaveSaw, rate), d, 10*time.Millisecond, d/2, rate)
	second := NewEnvelope(NewOscillator(constants.CrashSoundFreq*2, d, WaveSquare, rate), d, 10*time.Millisecond, d/2, rate)

	mixed := beep.Mix(
		newVolume(base, 0.5),
		newVolume(second, 0.15),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundCrash]*cfg.MasterVolume)
}

// CreateBlipSound generates a short sine blip; nil if freq is beyond Nyquist
func CreateBlipSound(cfg *AudioConfig, st SoundType, freq float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	blip := beep.Take(rate.N(constants.PauseBlipDuration), tone)
	shaped := NewEnvelope(blip, constants.PauseBlipDuration, 2*time.Millisecond, constants.PauseBlipDuration/2, rate)

	return newVolume(shaped, cfg.EffectVolumes[st]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundPause:
		return CreateBlipSound(cfg, SoundPause, constants.PauseBlipFreq)
	case SoundResume:
		return CreateBlipSound(cfg, SoundResume, constants.ResumeBlipFreq)
	default:
		return nil
	}
}
