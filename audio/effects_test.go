package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not end within %d samples", limit)
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw}

	for _, w := range waves {
		osc := NewOscillator(440, 50*time.Millisecond, w, rate)
		n, peak := drain(t, osc, rate.N(time.Second))
		if n != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", w, n, rate.N(50*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", w, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", w, osc.Err())
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}

	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release not decaying: %f >= %f", buf[99][0], buf[90][0])
	}

	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted envelope returned %d, %v", n, ok)
	}
}

func TestSoundEffectsTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()
	limit := beep.SampleRate(cfg.SampleRate).N(2 * time.Second)

	for st := SoundType(0); st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, cfg)
			if s == nil {
				t.Fatal("nil streamer")
			}
			n, peak := drain(t, s, limit)
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if peak == 0 {
				t.Error("effect is silent at default volume")
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("unknown sound type should yield nil")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateEatSound(cfg), beep.SampleRate(cfg.SampleRate).N(time.Second))
	if peak != 0 {
		t.Errorf("peak = %f at zero volume, want 0", peak)
	}
}

func TestBlipAboveNyquist(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 1000
	if CreateBlipSound(cfg, SoundPause, 800) != nil {
		t.Error("blip above Nyquist should be nil")
	}
}
