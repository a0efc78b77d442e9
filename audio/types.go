package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundHarvest  SoundType = iota // Harvest cycle complete
	SoundDrop                      // Load merged into a stockpile
	SoundReturn                    // Full worker heading home
	SoundCancel                    // Pending task abandoned
	SoundStranded                  // Full worker with no stockpile
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundHarvest:  "harvest",
	SoundDrop:     "drop",
	SoundReturn:   "return",
	SoundCancel:   "cancel",
	SoundStranded: "stranded",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves a config name to its sound
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// ErrAudioDisabled is returned by Initialize when the config turns audio off
var ErrAudioDisabled = errors.New("audio disabled by configuration")
