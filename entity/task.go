package entity

import "time"

// TaskOp is the deferred action a worker waits on
type TaskOp uint8

const (
	TaskHarvest TaskOp = iota + 1
	TaskDrop
)

func (op TaskOp) String() string {
	switch op {
	case TaskHarvest:
		return "harvest"
	case TaskDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Task is a pending completion held in a worker's single slot
// It fires once the simulation clock reaches DueAt
type Task struct {
	Owner  ID
	Op     TaskOp
	Target ID
	// Kind is the resource kind a harvest yields, captured when scheduled
	Kind  string
	DueAt time.Duration
}

func (t Task) Due(now time.Duration) bool {
	return now >= t.DueAt
}

// TaskRunner is implemented by entities owning a task slot
type TaskRunner interface {
	// RunDueTask completes the pending task if due, reporting whether one ran
	RunDueTask(w World) bool
}
