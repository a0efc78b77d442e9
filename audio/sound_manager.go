package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gatherer/constants"
	"github.com/lixenwraith/gatherer/engine"
	"github.com/lixenwraith/gatherer/events"
)

// SoundManager plays world event cues through one beep mixer
// Every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	requested [soundTypeCount]atomic.Uint64
}

// NewSoundManager creates a manager for cfg, nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg.Clone(),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips the mute state and returns it
func (sm *SoundManager) ToggleMute() bool {
	for {
		cur := sm.muted.Load()
		if sm.muted.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Play queues one cue on the mixer
func (sm *SoundManager) Play(st SoundType) {
	if st < 0 || st >= soundTypeCount {
		return
	}
	sm.requested[st].Add(1)

	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Requested returns how many times st was asked for, played or not
func (sm *SoundManager) Requested(st SoundType) uint64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.requested[st].Load()
}

// eventSounds maps world events to their cue
var eventSounds = map[events.EventType]SoundType{
	events.EventHarvestComplete: SoundHarvest,
	events.EventDropComplete:    SoundDrop,
	events.EventReturnToBase:    SoundReturn,
	events.EventTaskCancelled:   SoundCancel,
	events.EventReturnStranded:  SoundStranded,
}

func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventHarvestComplete,
		events.EventDropComplete,
		events.EventReturnToBase,
		events.EventTaskCancelled,
		events.EventReturnStranded,
	}
}

// HandleEvent plays the cue bound to the event type
func (sm *SoundManager) HandleEvent(_ *engine.World, ev events.GameEvent) {
	st, ok := eventSounds[ev.Type]
	if !ok {
		return
	}
	sm.Play(st)
}
