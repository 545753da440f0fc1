package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays one-shot effects through a shared mixer
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:   cfg,
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize opens the speaker; disabled configs stay silent without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Enabled reports whether effects will be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues an effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEat plays the reward bell
func (sm *SoundManager) PlayEat() { sm.Play(SoundEat) }

// PlayCrash plays the collision buzz
func (sm *SoundManager) PlayCrash() { sm.Play(SoundCrash) }

// PlayPause plays the pause blip
func (sm *SoundManager) PlayPause() { sm.Play(SoundPause) }

// PlayResume plays the resume blip
func (sm *SoundManager) PlayResume() { sm.Play(SoundResume) }

// Cleanup silences the mixer and drops pending effects
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close on this path; clearing the mixer ends all output
	sm.initialized = false
}
