package audio

import (
	"math"
	"testing"

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
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not end within %d samples", limit)
	return total, peak
}

func TestSoundEffectsAreFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for st := SoundType(0); st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, cfg)
			if s == nil {
				t.Fatal("Expected a streamer")
			}

			n, peak := drain(t, s, rate.N(SoundDuration(st))*2)
			want := rate.N(SoundDuration(st))
			if st == SoundDrop {
				// Two notes rounded separately
				if diff := n - want; diff < -1 || diff > 1 {
					t.Errorf("Expected ~%d samples, got %d", want, n)
				}
			} else if n != want {
				t.Errorf("Expected %d samples, got %d", want, n)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
			if peak > 1.0 {
				t.Errorf("Output clips: peak %f", peak)
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, GetSoundEffect(SoundReturn, cfg), 1<<20)
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, peak %f", peak)
	}
}

func TestUnknownSoundEffect(t *testing.T) {
	if GetSoundEffect(SoundType(99), DefaultAudioConfig()) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
	if SoundDuration(SoundType(99)) != 0 {
		t.Error("Expected zero duration for unknown sound")
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100_000_000, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100_000_000, 10_000_000, 10_000_000, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full level mid-sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= 0.2 {
		t.Errorf("Expected release near zero at end, got %f", buf[99][0])
	}
	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("Expected drained envelope, got n=%d ok=%v", n, ok)
	}
}
