package entity

import (
	"time"

	"github.com/lixenwraith/gatherer/constants"
	"github.com/lixenwraith/gatherer/events"
	"github.com/lixenwraith/gatherer/render"
	"github.com/lixenwraith/gatherer/vmath"
)

// TaskState is the worker's current activity
type TaskState uint8

const (
	StateIdle TaskState = iota
	StateMoving
	StateHarvesting
	StateDropping
)

func (s TaskState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateHarvesting:
		return "harvesting"
	case StateDropping:
		return "dropping"
	default:
		return "unknown"
	}
}

// WorkerConfig holds the tunables of a worker
type WorkerConfig struct {
	MoveSpeed       float64 // pixels per second
	HarvestDuration time.Duration
	DropDuration    time.Duration
	Capacity        int
	HarvestAmount   int
}

func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MoveSpeed:       constants.WorkerMoveSpeed,
		HarvestDuration: constants.WorkerHarvestDuration,
		DropDuration:    constants.WorkerDropDuration,
		Capacity:        constants.WorkerCapacity,
		HarvestAmount:   constants.HarvestIncrement,
	}
}

// normalize replaces out-of-range values with defaults
func (c WorkerConfig) normalize() WorkerConfig {
	def := DefaultWorkerConfig()
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = def.MoveSpeed
	}
	if c.Capacity <= 0 {
		c.Capacity = def.Capacity
	}
	if c.HarvestAmount <= 0 {
		c.HarvestAmount = def.HarvestAmount
	}
	if c.HarvestDuration < 0 {
		c.HarvestDuration = 0
	}
	if c.DropDuration < 0 {
		c.DropDuration = 0
	}
	return c
}

// Worker is the mobile unit running the gather loop
//
// Moving covers travel toward any target. Harvesting freezes the worker until
// its harvest task fires. Dropping keeps evaluating arrival but never schedules
// a second drop while one is pending.
type Worker struct {
	Body
	cfg       WorkerConfig
	target    Target
	state     TaskState
	pending   *Task
	inventory Inventory
	weight    int
}

func NewWorker(id ID, p Placement, cfg WorkerConfig) *Worker {
	return &Worker{
		Body: newBody(id, p),
		cfg:  cfg.normalize(),
	}
}

func (wk *Worker) Kind() Kind {
	return KindWorker
}

func (wk *Worker) State() TaskState {
	return wk.state
}

func (wk *Worker) Target() Target {
	return wk.target
}

func (wk *Worker) Config() WorkerConfig {
	return wk.cfg
}

// Weight returns the cached inventory total
func (wk *Worker) Weight() int {
	return wk.weight
}

func (wk *Worker) Capacity() int {
	return wk.cfg.Capacity
}

// Lines returns a copy of the carried inventory
func (wk *Worker) Lines() []Line {
	return wk.inventory.Lines()
}

// Pending returns a copy of the pending task
func (wk *Worker) Pending() (Task, bool) {
	if wk.pending == nil {
		return Task{}, false
	}
	return *wk.pending, true
}

// MoveTo retargets the worker and drops any pending task without running it
// Returns the cancelled task, if any
func (wk *Worker) MoveTo(t Target) (Task, bool) {
	cancelled, had := wk.Pending()
	wk.pending = nil
	wk.target = t
	wk.state = StateMoving
	return cancelled, had
}

// Handle directs the worker at an entity
func (wk *Worker) Handle(e Entity) (Task, bool) {
	return wk.MoveTo(EntityTarget(e))
}

func (wk *Worker) Update(w World, dt float64) {
	if wk.state == StateHarvesting || wk.target.IsNone() {
		return
	}

	dest, ok := wk.target.Resolve(w)
	if !ok {
		wk.stop()
		return
	}

	if vmath.V2FDist(wk.pos, dest) >= wk.size.X {
		wk.pos = vmath.V2FStep(wk.pos, dest, wk.cfg.MoveSpeed*dt)
		wk.state = StateMoving
		return
	}

	wk.arrive(w)
}

func (wk *Worker) arrive(w World) {
	if wk.target.Kind() != TargetEntity {
		wk.stop()
		return
	}
	switch wk.target.EntityKind() {
	case KindStockpile:
		wk.beginDrop(w)
	case KindResource:
		wk.beginHarvest(w)
	default:
		wk.stop()
	}
}

func (wk *Worker) beginDrop(w World) {
	if wk.inventory.IsEmpty() {
		wk.stop()
		return
	}
	if wk.pending != nil {
		return
	}
	wk.state = StateDropping
	wk.schedule(w, TaskDrop, "", wk.cfg.DropDuration)
}

func (wk *Worker) beginHarvest(w World) {
	node, ok := lookupAs[*ResourceNode](w, wk.target.EntityID())
	if !ok || node.Depleted() {
		wk.stop()
		return
	}
	wk.state = StateHarvesting
	wk.schedule(w, TaskHarvest, node.ResourceKind(), wk.cfg.HarvestDuration)
}

func (wk *Worker) schedule(w World, op TaskOp, kind string, d time.Duration) {
	wk.pending = &Task{
		Owner:  wk.id,
		Op:     op,
		Target: wk.target.EntityID(),
		Kind:   kind,
		DueAt:  w.Now() + d,
	}
}

func (wk *Worker) stop() {
	wk.target = NoTarget()
	wk.state = StateIdle
}

// RunDueTask fires the pending task once the simulation clock reaches it
func (wk *Worker) RunDueTask(w World) bool {
	if wk.pending == nil || !wk.pending.Due(w.Now()) {
		return false
	}
	task := *wk.pending
	wk.pending = nil

	switch task.Op {
	case TaskHarvest:
		wk.completeHarvest(w, task)
	case TaskDrop:
		wk.completeDrop(w, task)
	}
	return true
}

// completeHarvest credits the full increment; only the node's decrement is clamped
func (wk *Worker) completeHarvest(w World, task Task) {
	if node, ok := lookupAs[*ResourceNode](w, task.Target); ok {
		if removed := node.Harvest(wk.cfg.HarvestAmount); removed > 0 && node.Depleted() {
			w.Emit(events.EventNodeDepleted, wk.payload(task.Target, task.Kind, 0))
		}
	}

	wk.inventory.Add(task.Kind, wk.cfg.HarvestAmount)
	wk.weight = wk.inventory.Weight()
	wk.state = StateIdle
	w.Emit(events.EventHarvestComplete, wk.payload(task.Target, task.Kind, wk.cfg.HarvestAmount))

	if wk.weight < wk.cfg.Capacity {
		return
	}

	wk.target = NoTarget()
	base, ok := w.FirstStockpile()
	if !ok {
		w.Emit(events.EventReturnStranded, wk.payload(0, "", wk.weight))
		return
	}
	wk.MoveTo(EntityTarget(base))
	w.Emit(events.EventReturnToBase, wk.payload(base.ID(), "", wk.weight))
}

func (wk *Worker) completeDrop(w World, task Task) {
	wk.state = StateIdle
	base, ok := lookupAs[*Stockpile](w, task.Target)
	if !ok {
		return
	}
	amount := wk.weight
	base.Deposit(wk.inventory.Lines())
	wk.inventory.Clear()
	wk.weight = wk.inventory.Weight()
	w.Emit(events.EventDropComplete, wk.payload(base.ID(), "", amount))
}

func (wk *Worker) payload(target ID, kind string, amount int) *events.TaskPayload {
	return &events.TaskPayload{
		Worker: uint64(wk.id),
		Target: uint64(target),
		Kind:   kind,
		Amount: amount,
	}
}

func (wk *Worker) Render(s render.Surface) {
	s.FillRect(wk.pos.X, wk.pos.Y, wk.size.X, wk.size.Y, render.SelectionColor(wk.selected, render.RgbWorker))
	s.DrawText(wk.pos.X, wk.pos.Y-constants.LabelOffset, wk.state.String(), render.RgbLabel)
}

// lookupAs resolves id and asserts the concrete entity type
func lookupAs[T Entity](w World, id ID) (T, bool) {
	var zero T
	e, ok := w.Lookup(id)
	if !ok {
		return zero, false
	}
	typed, ok := e.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
