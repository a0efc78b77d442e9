package events

import (
	"sync/atomic"

	"github.com/lixenwraith/gatherer/constants"
)

// EventQueue is a fixed ring of game events with lock-free producers
//
// World logic pushes from the frame goroutine; Push stays safe from any goroutine.
// Only the frame loop drains. Each slot carries the sequence number (write
// position + 1) of the event last stored in it, so a drain only accepts a slot
// written for the position it is reading, never a half-written or older lap.
// When the ring is full the oldest unread event is overwritten and counted in Dropped.
type EventQueue struct {
	slots   [constants.EventQueueSize]GameEvent
	seq     [constants.EventQueueSize]atomic.Uint64
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, overwriting the oldest unread event on overflow
func (q *EventQueue) Push(ev GameEvent) {
	for {
		w := q.write.Load()
		if !q.write.CompareAndSwap(w, w+1) {
			continue
		}

		slot := w & constants.EventBufferMask
		q.seq[slot].Store(0) // in progress
		q.slots[slot] = ev
		q.seq[slot].Store(w + 1)

		r := q.read.Load()
		if w+1 > r && w+1-r > constants.EventQueueSize && q.read.CompareAndSwap(r, w+1-constants.EventQueueSize) {
			q.dropped.Add(w + 1 - constants.EventQueueSize - r)
		}
		return
	}
}

// ConsumeInto appends readable events to buf[:0] and returns it
// The frame loop passes the same buffer every tick to avoid per-frame allocation
func (q *EventQueue) ConsumeInto(buf []GameEvent) []GameEvent {
	buf = buf[:0]
	for {
		base := q.read.Load()
		w := q.write.Load()
		if w == base {
			return buf
		}

		// read lags when a producer lost its overflow CAS; skip to the oldest live slot
		r, n := base, w-base
		if n > constants.EventQueueSize {
			r = w - constants.EventQueueSize
			n = constants.EventQueueSize
		}

		start := len(buf)
		for i := uint64(0); i < n; i++ {
			pos := r + i
			slot := pos & constants.EventBufferMask
			if q.seq[slot].Load() != pos+1 {
				// producer still writing, resume next tick
				break
			}
			ev := q.slots[slot]
			if q.seq[slot].Load() != pos+1 {
				// overwritten by a newer lap while copying
				break
			}
			buf = append(buf, ev)
		}

		taken := uint64(len(buf) - start)
		if !q.read.CompareAndSwap(base, r+taken) {
			// a producer advanced read on overflow, copy again from the new position
			buf = buf[:start]
			continue
		}
		q.dropped.Add(r - base)
		return buf
	}
}

// Len returns the number of unread events, capped at the ring size
func (q *EventQueue) Len() int {
	n := q.write.Load() - q.read.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}

// Dropped returns how many events were overwritten before being read
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
