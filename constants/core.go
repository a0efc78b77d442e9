package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// World Defaults
const (
	// WorldWidth and WorldHeight are the logical world size in pixels
	WorldWidth  = 800
	WorldHeight = 600

	// TreeCount is the number of resource nodes scattered at world init
	TreeCount = 10

	// EntitySize is the default width and height of every spawned entity
	EntitySize = 20
)
