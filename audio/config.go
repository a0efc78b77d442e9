package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/gatherer/constants"
)

// AudioConfig holds audio configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundHarvest:  0.6,
			SoundDrop:     1.0,
			SoundReturn:   0.7,
			SoundCancel:   0.5,
			SoundStranded: 0.8,
		},
	}
}

// Clone returns a deep copy
func (c *AudioConfig) Clone() *AudioConfig {
	out := *c
	out.EffectVolumes = make(map[SoundType]float64, len(c.EffectVolumes))
	for k, v := range c.EffectVolumes {
		out.EffectVolumes[k] = v
	}
	return &out
}

// ApplyEnv overrides cfg from GATHERER_* environment variables
// Malformed values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("GATHERER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("GATHERER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-effect volumes as a JSON object keyed by sound name
	if effectVols := os.Getenv("GATHERER_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("GATHERER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// LoadAudioConfig returns defaults with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
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
