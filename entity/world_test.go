package entity

import (
	"time"

	"github.com/lixenwraith/gatherer/events"
)

// fakeWorld drives entities the same way the engine does: advance the clock,
// fire due tasks, then update in spawn order
type fakeWorld struct {
	now      time.Duration
	entities []Entity
	emitted  []events.GameEvent
	nextID   ID
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{}
}

func (f *fakeWorld) id() ID {
	f.nextID++
	return f.nextID
}

func (f *fakeWorld) tree(x, y float64, amount int) *ResourceNode {
	n := NewResourceNode(f.id(), At(x, y), "wood", amount)
	f.entities = append(f.entities, n)
	return n
}

func (f *fakeWorld) base(x, y float64) *Stockpile {
	s := NewStockpile(f.id(), At(x, y))
	f.entities = append(f.entities, s)
	return s
}

func (f *fakeWorld) worker(x, y float64, cfg WorkerConfig) *Worker {
	w := NewWorker(f.id(), At(x, y), cfg)
	f.entities = append(f.entities, w)
	return w
}

func (f *fakeWorld) remove(id ID) {
	for i, e := range f.entities {
		if e.ID() == id {
			f.entities = append(f.entities[:i], f.entities[i+1:]...)
			return
		}
	}
}

func (f *fakeWorld) Now() time.Duration {
	return f.now
}

func (f *fakeWorld) Lookup(id ID) (Entity, bool) {
	for _, e := range f.entities {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

func (f *fakeWorld) FirstStockpile() (*Stockpile, bool) {
	for _, e := range f.entities {
		if s, ok := e.(*Stockpile); ok {
			return s, true
		}
	}
	return nil, false
}

func (f *fakeWorld) Emit(t events.EventType, payload any) {
	f.emitted = append(f.emitted, events.GameEvent{Type: t, Payload: payload, At: f.now})
}

func (f *fakeWorld) step(dt float64) {
	f.now += time.Duration(dt * float64(time.Second))
	for _, e := range f.entities {
		if r, ok := e.(TaskRunner); ok {
			r.RunDueTask(f)
		}
	}
	for _, e := range f.entities {
		e.Update(f, dt)
	}
}

func (f *fakeWorld) count(t events.EventType) int {
	n := 0
	for _, ev := range f.emitted {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (f *fakeWorld) last(t events.EventType) *events.TaskPayload {
	for i := len(f.emitted) - 1; i >= 0; i-- {
		if f.emitted[i].Type == t {
			return f.emitted[i].Payload.(*events.TaskPayload)
		}
	}
	return nil
}
