package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gatherer/engine"
	"github.com/lixenwraith/gatherer/entity"
)

// Hooks are host-level reactions to system intents, any may be nil
type Hooks struct {
	Pause  func() bool // returns the new paused state
	Mute   func() bool // returns the new muted state
	Resize func()
}

// Router applies parsed input to the world: selection and worker commands
type Router struct {
	world   *engine.World
	machine *Machine
	hooks   Hooks
}

func NewRouter(world *engine.World, machine *Machine, hooks Hooks) *Router {
	return &Router{
		world:   world,
		machine: machine,
		hooks:   hooks,
	}
}

// HandleEvent processes one tcell event, returning false when the host should quit
func (r *Router) HandleEvent(ev tcell.Event) bool {
	intent := r.machine.Process(ev)
	if intent == nil {
		return true
	}
	return r.Apply(*intent)
}

// Apply executes an intent, returning false on quit
func (r *Router) Apply(intent Intent) bool {
	switch intent.Type {
	case IntentQuit:
		return false
	case IntentCancel:
		r.Cancel()
	case IntentPrimaryClick:
		r.PrimaryClick(intent.X, intent.Y)
	case IntentSecondaryClick:
		r.SecondaryClick(intent.X, intent.Y)
	case IntentPause:
		if r.hooks.Pause != nil {
			paused := r.hooks.Pause()
			r.world.Logger().Info("pause", "paused", paused)
		}
	case IntentToggleMute:
		if r.hooks.Mute != nil {
			muted := r.hooks.Mute()
			r.world.Logger().Info("mute", "muted", muted)
		}
	case IntentResize:
		if r.hooks.Resize != nil {
			r.hooks.Resize()
		}
	}
	return true
}

// PrimaryClick selects the first entity under the point, or clears the selection
func (r *Router) PrimaryClick(x, y float64) {
	if hit, ok := r.world.HitTest(x, y); ok {
		r.world.Select(hit)
		return
	}
	r.world.Deselect()
}

// SecondaryClick commands the selected worker toward the hit entity or the point
// Any other selection is cleared
func (r *Router) SecondaryClick(x, y float64) {
	sel, ok := r.world.Selected()
	if !ok {
		return
	}

	wk, ok := sel.(*entity.Worker)
	if !ok {
		r.world.Deselect()
		return
	}

	target := entity.PointTarget(x, y)
	if hit, ok := r.world.HitTest(x, y); ok {
		target = entity.EntityTarget(hit)
	}
	r.world.Command(wk, target)
}

// Cancel clears the selection
func (r *Router) Cancel() {
	r.world.Deselect()
}
