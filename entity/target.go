package entity

import (
	"fmt"

	"github.com/lixenwraith/gatherer/vmath"
)

// TargetKind discriminates the Target variant
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetPoint
	TargetEntity
)

// Target is what a worker is heading for: nothing, a point, or an entity by id
// The zero value is TargetNone
type Target struct {
	kind       TargetKind
	point      vmath.Vec2F
	id         ID
	entityKind Kind
}

func NoTarget() Target {
	return Target{}
}

func PointTarget(x, y float64) Target {
	return Target{kind: TargetPoint, point: vmath.V2F(x, y)}
}

// EntityTarget references e weakly, nil yields TargetNone
func EntityTarget(e Entity) Target {
	if e == nil {
		return Target{}
	}
	return Target{kind: TargetEntity, id: e.ID(), entityKind: e.Kind()}
}

func (t Target) Kind() TargetKind {
	return t.kind
}

func (t Target) IsNone() bool {
	return t.kind == TargetNone
}

// EntityID is zero unless the target is an entity
func (t Target) EntityID() ID {
	return t.id
}

func (t Target) EntityKind() Kind {
	return t.entityKind
}

func (t Target) Point() vmath.Vec2F {
	return t.point
}

// Resolve returns the current target position
// False for TargetNone and for entities no longer in the world
func (t Target) Resolve(w World) (vmath.Vec2F, bool) {
	switch t.kind {
	case TargetPoint:
		return t.point, true
	case TargetEntity:
		e, ok := w.Lookup(t.id)
		if !ok {
			return vmath.Vec2F{}, false
		}
		return e.Position(), true
	default:
		return vmath.Vec2F{}, false
	}
}

func (t Target) String() string {
	switch t.kind {
	case TargetPoint:
		return fmt.Sprintf("point(%.0f,%.0f)", t.point.X, t.point.Y)
	case TargetEntity:
		return fmt.Sprintf("%s#%d", t.entityKind, t.id)
	default:
		return "none"
	}
}
