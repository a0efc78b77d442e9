package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventHarvestComplete marks a finished harvest cycle
	// Trigger: Worker harvest task fires | Payload: *TaskPayload
	EventHarvestComplete EventType = iota + 1

	// EventDropComplete marks a drop-off merged into a stockpile
	// Trigger: Worker drop task fires | Payload: *TaskPayload
	EventDropComplete

	// EventReturnToBase signals a full worker heading for the first stockpile
	// Trigger: Harvest completion at capacity | Payload: *TaskPayload (Target = stockpile)
	EventReturnToBase

	// EventReturnStranded signals a full worker with no stockpile to return to
	// Worker stays Idle with its load | Payload: *TaskPayload
	EventReturnStranded

	// EventTaskCancelled signals a pending task dropped by a new command
	// Payload: *TaskPayload (Amount = 0)
	EventTaskCancelled

	// EventNodeDepleted signals a resource node reaching zero remaining
	// Trigger: Harvest empties the node | Payload: *TaskPayload (Target = node)
	EventNodeDepleted
)

var eventNames = map[EventType]string{
	EventHarvestComplete: "HarvestComplete",
	EventDropComplete:    "DropComplete",
	EventReturnToBase:    "ReturnToBase",
	EventReturnStranded:  "ReturnStranded",
	EventTaskCancelled:   "TaskCancelled",
	EventNodeDepleted:    "NodeDepleted",
}

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	// At is the simulation clock reading when the event was pushed
	At        time.Duration
	Timestamp time.Time
}
