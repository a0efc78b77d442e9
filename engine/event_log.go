package engine

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/gatherer/events"
)

// EventLogHandler records world events at debug level and counts them per type
type EventLogHandler struct {
	logger *slog.Logger
	counts [events.EventNodeDepleted + 1]atomic.Uint64
}

func NewEventLogHandler(logger *slog.Logger) *EventLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogHandler{logger: logger}
}

func (h *EventLogHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventHarvestComplete,
		events.EventDropComplete,
		events.EventReturnToBase,
		events.EventReturnStranded,
		events.EventTaskCancelled,
		events.EventNodeDepleted,
	}
}

func (h *EventLogHandler) HandleEvent(_ *World, ev events.GameEvent) {
	if int(ev.Type) >= 0 && int(ev.Type) < len(h.counts) {
		h.counts[ev.Type].Add(1)
	}

	attrs := []any{"event", ev.Type.String(), "sim_time", ev.At}
	if p, ok := ev.Payload.(*events.TaskPayload); ok {
		attrs = append(attrs, "worker", p.Worker, "target", p.Target, "amount", p.Amount)
		if p.Kind != "" {
			attrs = append(attrs, "kind", p.Kind)
		}
	}

	level := slog.LevelDebug
	if ev.Type == events.EventReturnStranded {
		level = slog.LevelWarn
	}
	h.logger.Log(context.Background(), level, "world event", attrs...)
}

// Count returns how many events of type t were handled
func (h *EventLogHandler) Count(t events.EventType) uint64 {
	if int(t) < 0 || int(t) >= len(h.counts) {
		return 0
	}
	return h.counts[t].Load()
}
