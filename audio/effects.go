package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gatherer/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
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

// NewOscillator creates a wave of the given shape lasting duration
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep glides a sine from one frequency to another over its duration
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping and ends the stream after its duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
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
	if remaining := e.totalSamples - e.position; remaining < len(samples) {
		samples = samples[:max(remaining, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateHarvestSound generates a short woody knock
func CreateHarvestSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.HarvestSoundDuration

	knock := NewOscillator(180.0, d, WaveSine, rate)
	crack := NewOscillator(0, d, WaveNoise, rate)
	mixed := beep.Mix(newVolume(knock, 0.7), newVolume(crack, 0.2))
	shaped := NewEnvelope(mixed, d, constants.HarvestSoundAttack, constants.HarvestSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundHarvest]*cfg.MasterVolume)
}

// CreateDropSound generates a rising two-note chime
func CreateDropSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Notes above Nyquist fall back to the square oscillator
	tone := func(freq float64, d time.Duration) beep.Streamer {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			return sine
		}
		return NewOscillator(freq, d, WaveSquare, rate)
	}

	// E5 then A5
	n1 := NewEnvelope(tone(659.25, constants.DropSoundNote1Duration), constants.DropSoundNote1Duration,
		constants.DropSoundAttack, constants.DropSoundNote1Release, rate)
	n2 := NewEnvelope(tone(880.0, constants.DropSoundNote2Duration), constants.DropSoundNote2Duration,
		constants.DropSoundAttack, constants.DropSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundDrop]*cfg.MasterVolume)
}

// CreateReturnSound generates a downward glide
func CreateReturnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ReturnSoundDuration

	glide := NewSweep(520.0, 260.0, d, rate)
	shaped := NewEnvelope(glide, d, constants.ReturnSoundAttack, constants.ReturnSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundReturn]*cfg.MasterVolume)
}

// CreateBuzzSound generates a low saw buzz of duration d
func CreateBuzzSound(cfg *AudioConfig, st SoundType, freq float64, d time.Duration) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(freq, d, WaveSaw, rate)
	shaped := NewEnvelope(osc, d, constants.BuzzSoundAttack, constants.BuzzSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[st]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundHarvest:
		return CreateHarvestSound(cfg)
	case SoundDrop:
		return CreateDropSound(cfg)
	case SoundReturn:
		return CreateReturnSound(cfg)
	case SoundCancel:
		return CreateBuzzSound(cfg, SoundCancel, 140.0, constants.CancelSoundDuration)
	case SoundStranded:
		return CreateBuzzSound(cfg, SoundStranded, 90.0, constants.StrandedSoundDuration)
	default:
		return nil
	}
}

// SoundDuration returns the nominal length of soundType
func SoundDuration(soundType SoundType) time.Duration {
	switch soundType {
	case SoundHarvest:
		return constants.HarvestSoundDuration
	case SoundDrop:
		return constants.DropSoundNote1Duration + constants.DropSoundNote2Duration
	case SoundReturn:
		return constants.ReturnSoundDuration
	case SoundCancel:
		return constants.CancelSoundDuration
	case SoundStranded:
		return constants.StrandedSoundDuration
	default:
		return 0
	}
}
