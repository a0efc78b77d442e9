package events

// Handler reacts to a subset of event types
// ctx is whatever the frame loop passes to DispatchAll, the world in practice
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// Router fans queued events out to handlers by type
// Handlers for one type run in registration order on the draining goroutine
type Router[T any] struct {
	byType  map[EventType][]Handler[T]
	queue   *EventQueue
	scratch []GameEvent
}

func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		byType:  make(map[EventType][]Handler[T]),
		queue:   queue,
		scratch: make([]GameEvent, 0, 32),
	}
}

// Register subscribes handler to each type it declares
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.byType[t] = append(r.byType[t], handler)
	}
}

// Dispatch delivers a single event without touching the queue
func (r *Router[T]) Dispatch(ctx T, ev GameEvent) {
	for _, h := range r.byType[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
}

// DispatchAll drains the queue and delivers events in push order
// Returns how many events were drained, handled or not
func (r *Router[T]) DispatchAll(ctx T) int {
	r.scratch = r.queue.ConsumeInto(r.scratch)
	for _, ev := range r.scratch {
		r.Dispatch(ctx, ev)
	}
	n := len(r.scratch)
	clear(r.scratch)
	return n
}
