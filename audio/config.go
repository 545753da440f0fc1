package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/constants"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(constants.EnvPrefix + "AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(constants.EnvPrefix + "MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-effect volumes as JSON: {"eat":1.0,"crash":0.5}
	if effectVols := os.Getenv(constants.EnvPrefix + "SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(constants.EnvPrefix + "SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
