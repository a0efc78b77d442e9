package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gatherer/audio"
	"github.com/lixenwraith/gatherer/config"
	"github.com/lixenwraith/gatherer/engine"
	"github.com/lixenwraith/gatherer/input"
	"github.com/lixenwraith/gatherer/render"
)

var (
	configFlag = flag.String("config", "gatherer.yaml", "Path to YAML configuration (missing file uses defaults)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/gatherer.log")
)

// errQuit ends the frame loop on a user quit
var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gatherer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
		out = logFile
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	defer crashGuard(fini, "GATHERER CRASHED")

	screen.EnableMouse()
	screen.HideCursor()

	world := engine.NewWorld(
		engine.WithLogger(logger),
		engine.WithRemoveDepleted(cfg.World.RemoveDepleted),
	)
	world.Populate(cfg.Scenario())

	surface := render.NewScreenSurface(screen, cfg.Viewport())
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	loop := engine.NewLoop(world, surface, clock)
	loop.Register(engine.NewEventLogHandler(world.Logger()))

	sm := audio.NewSoundManager(cfg.AudioSettings())
	if err := sm.Initialize(); err != nil {
		world.Logger().Warn("audio unavailable, continuing without sound", "error", err)
	} else {
		defer sm.Cleanup()
	}
	loop.Register(sm)

	overrides, err := input.ParseKeyBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	machine := input.NewMachine(cfg.Viewport(), input.DefaultKeyTable().WithRunes(overrides))
	router := input.NewRouter(world, machine, input.Hooks{
		Pause:  loop.TogglePause,
		Mute:   sm.ToggleMute,
		Resize: screen.Sync,
	})

	world.Logger().Info("gatherer started",
		"entities", world.Len(),
		"fps", cfg.Display.FPS,
		"config", *configFlag,
	)

	g, ctx := errgroup.WithContext(context.Background())
	eventChan := make(chan tcell.Event, 256)

	// Poller only forwards; PollEvent returns nil once the screen is finalized
	g.Go(func() error {
		defer crashGuard(fini, "EVENT POLLER CRASHED")
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer crashGuard(fini, "GAME LOOP CRASHED")
		defer fini()
		return frameLoop(ctx, loop, router, eventChan, cfg.FrameInterval())
	})

	err = g.Wait()
	world.Logger().Info("gatherer stopped", "frames", loop.Frames())
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// frameLoop ticks the world at interval and applies input between frames
func frameLoop(ctx context.Context, loop *engine.Loop, router *input.Router, eventChan <-chan tcell.Event, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	loop.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !router.HandleEvent(ev) {
				return errQuit
			}
		case <-ticker.C:
			loop.Tick()
		}
	}
}

// crashGuard restores the terminal before reporting a panic
func crashGuard(fini func(), label string) {
	if r := recover(); r != nil {
		fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", label, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
