package events

// TaskPayload describes a worker task outcome
type TaskPayload struct {
	Worker uint64
	Target uint64
	Kind   string
	Amount int
}
