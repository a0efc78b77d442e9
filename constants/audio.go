package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Harvest Sound Timing
const (
	HarvestSoundDuration = 90 * time.Millisecond
	HarvestSoundAttack   = 2 * time.Millisecond
	HarvestSoundRelease  = 70 * time.Millisecond
)

// Drop Sound Timing
const (
	DropSoundNote1Duration = 90 * time.Millisecond
	DropSoundNote2Duration = 240 * time.Millisecond
	DropSoundAttack        = 5 * time.Millisecond
	DropSoundNote1Release  = 40 * time.Millisecond
	DropSoundNote2Release  = 180 * time.Millisecond
)

// Return Sound Timing
const (
	ReturnSoundDuration = 250 * time.Millisecond
	ReturnSoundAttack   = 20 * time.Millisecond
	ReturnSoundRelease  = 120 * time.Millisecond
)

// Cancel and Stranded Sound Timing
const (
	CancelSoundDuration   = 60 * time.Millisecond
	StrandedSoundDuration = 200 * time.Millisecond
	BuzzSoundAttack       = 5 * time.Millisecond
	BuzzSoundRelease      = 30 * time.Millisecond
)
