package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/gatherer/constants"
	"github.com/lixenwraith/gatherer/entity"
	"github.com/lixenwraith/gatherer/events"
	"github.com/lixenwraith/gatherer/render"
	"github.com/lixenwraith/gatherer/vmath"
)

var (
	ErrZeroID      = errors.New("entity id is zero")
	ErrDuplicateID = errors.New("entity id already spawned")
)

// World owns every entity, the selection and the simulation clock
//
// Entities are kept in spawn order, which is both the update order and the
// hit test priority. The selection is held by id so removal clears it.
// Not safe for concurrent use; the frame loop and input routing share one goroutine.
type World struct {
	entities []entity.Entity
	index    map[entity.ID]entity.Entity
	nextID   entity.ID

	selected entity.ID

	now time.Duration
	fps int

	events         *events.EventQueue
	removeDepleted bool

	runID  uuid.UUID
	logger *slog.Logger
}

// WorldOption configures a World at construction
type WorldOption func(*World)

// WithLogger sets the logger, tagged with the world run id
func WithLogger(l *slog.Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRemoveDepleted prunes exhausted resource nodes at the end of each update
func WithRemoveDepleted(enabled bool) WorldOption {
	return func(w *World) {
		w.removeDepleted = enabled
	}
}

func NewWorld(opts ...WorldOption) *World {
	w := &World{
		index:  make(map[entity.ID]entity.Entity),
		events: events.NewEventQueue(),
		runID:  uuid.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("run_id", w.runID.String())
	return w
}

// CreateEntity reserves the next entity id
func (w *World) CreateEntity() entity.ID {
	w.nextID++
	return w.nextID
}

// Spawn appends e to the world
func (w *World) Spawn(e entity.Entity) error {
	id := e.ID()
	if id == 0 {
		return ErrZeroID
	}
	if _, exists := w.index[id]; exists {
		return fmt.Errorf("spawn %s #%d: %w", e.Kind(), id, ErrDuplicateID)
	}
	if id > w.nextID {
		w.nextID = id
	}
	w.entities = append(w.entities, e)
	w.index[id] = e
	return nil
}

// SpawnTree, SpawnStockpile and SpawnWorker build with a fresh CreateEntity id.
// Spawn only fails on a zero or already used id, and Spawn keeps nextID at or
// above every spawned id, so their Spawn error is always nil.
func (w *World) SpawnTree(x, y float64, resourceKind string, amount int, size float64) *entity.ResourceNode {
	n := entity.NewResourceNode(w.CreateEntity(), sized(x, y, size), resourceKind, amount)
	_ = w.Spawn(n)
	return n
}

func (w *World) SpawnStockpile(x, y, size float64) *entity.Stockpile {
	s := entity.NewStockpile(w.CreateEntity(), sized(x, y, size))
	_ = w.Spawn(s)
	return s
}

func (w *World) SpawnWorker(x, y, size float64, cfg entity.WorkerConfig) *entity.Worker {
	wk := entity.NewWorker(w.CreateEntity(), sized(x, y, size), cfg)
	_ = w.Spawn(wk)
	return wk
}

func sized(x, y, size float64) entity.Placement {
	return entity.Placement{X: x, Y: y, Width: size, Height: size}
}

// Remove deletes an entity, clearing the selection if it pointed there
func (w *World) Remove(id entity.ID) bool {
	e, ok := w.index[id]
	if !ok {
		return false
	}
	delete(w.index, id)
	for i, cur := range w.entities {
		if cur.ID() == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
	if w.selected == id {
		w.selected = 0
	}
	w.logger.Debug("entity removed", "id", id, "kind", e.Kind())
	return true
}

// Entities returns the live entities in spawn order
// The slice is shared and must not be modified
func (w *World) Entities() []entity.Entity {
	return w.entities
}

func (w *World) Len() int {
	return len(w.entities)
}

func (w *World) Lookup(id entity.ID) (entity.Entity, bool) {
	e, ok := w.index[id]
	return e, ok
}

// FirstStockpile returns the earliest spawned stockpile
func (w *World) FirstStockpile() (*entity.Stockpile, bool) {
	for _, e := range w.entities {
		if s, ok := e.(*entity.Stockpile); ok {
			return s, true
		}
	}
	return nil, false
}

// Now returns the simulation clock
func (w *World) Now() time.Duration {
	return w.now
}

// Emit queues a game event stamped with both clocks
func (w *World) Emit(t events.EventType, payload any) {
	w.events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		At:        w.now,
		Timestamp: time.Now(),
	})
}

// Events exposes the queue drained by the frame loop
func (w *World) Events() *events.EventQueue {
	return w.events
}

func (w *World) RunID() uuid.UUID {
	return w.runID
}

func (w *World) Logger() *slog.Logger {
	return w.logger
}

func (w *World) SetFrameRate(fps int) {
	w.fps = fps
}

func (w *World) FrameRate() int {
	return w.fps
}

// Update advances the simulation by dt seconds
// Due tasks fire first, then entities update, both in spawn order
func (w *World) Update(dt float64) {
	w.now += time.Duration(dt * float64(time.Second))

	for _, e := range w.entities {
		if r, ok := e.(entity.TaskRunner); ok {
			r.RunDueTask(w)
		}
	}
	for _, e := range w.entities {
		e.Update(w, dt)
	}

	if w.removeDepleted {
		w.pruneDepleted()
	}
}

func (w *World) pruneDepleted() {
	var depleted []entity.ID
	for _, e := range w.entities {
		if n, ok := e.(*entity.ResourceNode); ok && n.Depleted() {
			depleted = append(depleted, n.ID())
		}
	}
	for _, id := range depleted {
		w.Remove(id)
	}
}

// Command redirects a worker, reporting any task it abandoned
func (w *World) Command(wk *entity.Worker, t entity.Target) {
	cancelled, had := wk.MoveTo(t)
	if had {
		w.Emit(events.EventTaskCancelled, &events.TaskPayload{
			Worker: uint64(wk.ID()),
			Target: uint64(cancelled.Target),
			Kind:   cancelled.Op.String(),
		})
	}
}

// Render draws entities in spawn order, then the overlay
// Reads state only
func (w *World) Render(s render.Surface) {
	s.Clear()
	for _, e := range w.entities {
		e.Render(s)
	}
	s.DrawText(constants.PanelX, constants.FPSLineY, fmt.Sprintf("FPS: %d", w.fps), render.RgbPanelText)
	w.renderPanel(s)
}

func (w *World) renderPanel(s render.Surface) {
	sel, ok := w.Selected()
	if !ok {
		return
	}

	var title string
	var lines []entity.Line
	switch e := sel.(type) {
	case *entity.Worker:
		title, lines = constants.TextWorkerInventory, e.Lines()
	case *entity.Stockpile:
		title, lines = constants.TextBaseInventory, e.Lines()
	default:
		return
	}

	s.DrawText(constants.PanelX, constants.PanelTitleY, title, render.RgbPanelText)
	if len(lines) == 0 {
		s.DrawText(constants.PanelX, constants.PanelFirstLineY, constants.TextEmpty, render.RgbPanelText)
		return
	}
	for i, l := range lines {
		y := float64(constants.PanelFirstLineY + i*constants.PanelLineHeight)
		s.DrawText(constants.PanelX, y, fmt.Sprintf("%s: %d", l.Kind, l.Amount), render.RgbPanelText)
	}
}

// HitTest returns the first entity in spawn order containing the point
func (w *World) HitTest(x, y float64) (entity.Entity, bool) {
	for _, e := range w.entities {
		if e.HitTest(x, y) {
			return e, true
		}
	}
	return nil, false
}

// Select makes e the only selected entity
func (w *World) Select(e entity.Entity) {
	w.Deselect()
	if e == nil {
		return
	}
	e.SetSelected(true)
	w.selected = e.ID()
}

// Deselect clears the selection, if any
func (w *World) Deselect() {
	if prev, ok := w.Selected(); ok {
		prev.SetSelected(false)
	}
	w.selected = 0
}

// Selected resolves the current selection
func (w *World) Selected() (entity.Entity, bool) {
	if w.selected == 0 {
		return nil, false
	}
	return w.Lookup(w.selected)
}

// Scenario is the initial layout of a world
type Scenario struct {
	Width, Height float64
	EntitySize    float64

	// Seed drives tree placement, zero picks a random seed
	Seed       uint64
	TreeCount  int
	TreeAmount int
	TreeKind   string

	Stockpiles []vmath.Vec2F
	Workers    []vmath.Vec2F
	Worker     entity.WorkerConfig
}

// DefaultScenario is one base, three workers and ten scattered trees
func DefaultScenario() Scenario {
	return Scenario{
		Width:      constants.WorldWidth,
		Height:     constants.WorldHeight,
		EntitySize: constants.EntitySize,
		TreeCount:  constants.TreeCount,
		TreeAmount: constants.TreeInitialAmount,
		TreeKind:   constants.ResourceWood,
		Stockpiles: []vmath.Vec2F{{X: 400, Y: 400}},
		Workers:    []vmath.Vec2F{{X: 100, Y: 100}, {X: 200, Y: 200}, {X: 300, Y: 300}},
		Worker:     entity.DefaultWorkerConfig(),
	}
}

// Populate spawns trees first, then stockpiles, then workers
func (w *World) Populate(sc Scenario) {
	seed := sc.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	for i := 0; i < sc.TreeCount; i++ {
		w.SpawnTree(rng.Float64()*sc.Width, rng.Float64()*sc.Height, sc.TreeKind, sc.TreeAmount, sc.EntitySize)
	}
	for _, p := range sc.Stockpiles {
		w.SpawnStockpile(p.X, p.Y, sc.EntitySize)
	}
	for _, p := range sc.Workers {
		w.SpawnWorker(p.X, p.Y, sc.EntitySize, sc.Worker)
	}

	w.logger.Info("world populated",
		"seed", seed,
		"trees", sc.TreeCount,
		"stockpiles", len(sc.Stockpiles),
		"workers", len(sc.Workers))
}
