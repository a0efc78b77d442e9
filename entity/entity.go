// Package entity holds the simulated objects of the world: resource nodes,
// stockpiles and the workers moving between them.
//
// Entities never reach into the world directly. Update and task completion
// receive a World view so lookups and notifications stay explicit.
package entity

import (
	"time"

	"github.com/lixenwraith/gatherer/constants"
	"github.com/lixenwraith/gatherer/events"
	"github.com/lixenwraith/gatherer/render"
	"github.com/lixenwraith/gatherer/vmath"
)

// ID identifies an entity within one world, zero is never assigned
type ID uint64

// Kind tags the concrete entity type
type Kind uint8

const (
	KindResource Kind = iota + 1
	KindStockpile
	KindWorker
)

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindStockpile:
		return "stockpile"
	case KindWorker:
		return "worker"
	default:
		return "unknown"
	}
}

// World is the simulation view available to entities
type World interface {
	// Now returns the simulation clock
	Now() time.Duration

	// Lookup resolves a live entity by id
	Lookup(id ID) (Entity, bool)

	// FirstStockpile returns the earliest spawned stockpile
	FirstStockpile() (*Stockpile, bool)

	// Emit queues a notification for the frame loop
	Emit(t events.EventType, payload any)
}

// Entity is the contract shared by everything placed in the world
type Entity interface {
	ID() ID
	Kind() Kind
	Position() vmath.Vec2F
	Size() vmath.Vec2F
	Selected() bool
	SetSelected(selected bool)

	// HitTest reports whether the point lies in the bounding box, edges inclusive
	HitTest(px, py float64) bool

	// Update advances the entity by dt seconds
	Update(w World, dt float64)

	render.Renderable
}

// Placement is the spawn geometry of an entity
type Placement struct {
	X, Y          float64
	Width, Height float64
}

// At places a default-sized entity at (x, y)
func At(x, y float64) Placement {
	return Placement{X: x, Y: y, Width: constants.EntitySize, Height: constants.EntitySize}
}

// Body carries the spatial and selection state every entity embeds
// Size is fixed at construction
type Body struct {
	id       ID
	pos      vmath.Vec2F
	size     vmath.Vec2F
	selected bool
}

func newBody(id ID, p Placement) Body {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = constants.EntitySize
	}
	if h <= 0 {
		h = constants.EntitySize
	}
	return Body{
		id:   id,
		pos:  vmath.V2F(p.X, p.Y),
		size: vmath.V2F(w, h),
	}
}

func (b *Body) ID() ID {
	return b.id
}

func (b *Body) Position() vmath.Vec2F {
	return b.pos
}

func (b *Body) Size() vmath.Vec2F {
	return b.size
}

func (b *Body) Selected() bool {
	return b.selected
}

func (b *Body) SetSelected(selected bool) {
	b.selected = selected
}

func (b *Body) HitTest(px, py float64) bool {
	return vmath.InRect(vmath.V2F(px, py), b.pos, b.size)
}

// Update is a no-op for passive entities
func (b *Body) Update(World, float64) {}

// Render draws nothing by default
func (b *Body) Render(render.Surface) {}
