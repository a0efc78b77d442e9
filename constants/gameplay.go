package constants

import "time"

// Resource Nodes
const (
	// TreeInitialAmount is the quantity a fresh tree holds
	TreeInitialAmount = 100

	// ResourceWood is the inventory kind produced by trees
	ResourceWood = "wood"
)

// Worker Defaults
const (
	// WorkerMoveSpeed is the travel speed in pixels per second
	WorkerMoveSpeed = 100.0

	// WorkerHarvestDuration is how long one harvest cycle blocks the worker
	WorkerHarvestDuration = 1000 * time.Millisecond

	// WorkerDropDuration is the fixed delay before a drop-off merges into the base
	WorkerDropDuration = 1000 * time.Millisecond

	// WorkerCapacity is the carried weight that triggers the return to base
	WorkerCapacity = 100

	// HarvestIncrement is the amount removed from a node per completed harvest
	HarvestIncrement = 10
)
