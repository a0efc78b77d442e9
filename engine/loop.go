package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/gatherer/constants"
	"github.com/lixenwraith/gatherer/events"
	"github.com/lixenwraith/gatherer/render"
)

// Loop is the frame tick source driving one world onto one surface
type Loop struct {
	world   *World
	surface render.Surface
	clock   *PausableClock
	router  *events.Router[*World]

	last    time.Duration
	frames  uint64
	dropped uint64
}

func NewLoop(world *World, surface render.Surface, clock *PausableClock) *Loop {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	return &Loop{
		world:   world,
		surface: surface,
		clock:   clock,
		router:  events.NewRouter[*World](world.Events()),
	}
}

// Register subscribes a handler to events drained after each frame
func (l *Loop) Register(h events.Handler[*World]) {
	l.router.Register(h)
}

func (l *Loop) Clock() *PausableClock {
	return l.clock
}

func (l *Loop) World() *World {
	return l.world
}

// Frames returns the number of ticks run
func (l *Loop) Frames() uint64 {
	return l.frames
}

// TogglePause flips the clock and returns whether it is now paused
func (l *Loop) TogglePause() bool {
	paused := l.clock.Toggle()
	l.world.Logger().Debug("pause toggled", "paused", paused)
	return paused
}

// Tick runs one frame: update unless paused, render, present, dispatch events
// dt is the unpaused time since the previous tick and is not clamped
func (l *Loop) Tick() {
	elapsed := l.clock.Elapsed()
	dt := (elapsed - l.last).Seconds()
	l.last = elapsed
	l.frames++

	paused := l.clock.IsPaused()
	if !paused {
		if dt > 0 {
			l.world.SetFrameRate(int(math.Round(1 / dt)))
		}
		l.world.Update(dt)
	}

	l.world.Render(l.surface)
	if paused {
		l.surface.DrawText(constants.PausedX, constants.FPSLineY, constants.TextPaused, render.RgbPaused)
	}
	l.surface.Show()

	l.router.DispatchAll(l.world)

	if d := l.world.Events().Dropped(); d != l.dropped {
		l.world.Logger().Warn("event queue overflow", "dropped", d-l.dropped, "total", d)
		l.dropped = d
	}
}
