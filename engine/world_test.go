package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/gatherer/entity"
	"github.com/lixenwraith/gatherer/events"
	"github.com/lixenwraith/gatherer/render"
	"github.com/lixenwraith/gatherer/render/mocks"
)

func TestWorldSpawnAssignsIDsInOrder(t *testing.T) {
	w := NewWorld()
	tree := w.SpawnTree(10, 10, "wood", 100, 20)
	base := w.SpawnStockpile(400, 400, 20)
	wk := w.SpawnWorker(100, 100, 20, entity.DefaultWorkerConfig())

	assert.Equal(t, entity.ID(1), tree.ID())
	assert.Equal(t, entity.ID(2), base.ID())
	assert.Equal(t, entity.ID(3), wk.ID())
	require.Len(t, w.Entities(), 3)
	assert.Same(t, tree, w.Entities()[0])
}

func TestWorldSpawnRejectsBadIDs(t *testing.T) {
	w := NewWorld()
	assert.ErrorIs(t, w.Spawn(entity.NewTree(0, 0, 0)), ErrZeroID)

	require.NoError(t, w.Spawn(entity.NewTree(5, 0, 0)))
	err := w.Spawn(entity.NewStockpile(5, entity.At(0, 0)))
	assert.True(t, errors.Is(err, ErrDuplicateID))

	// Manual ids advance the allocator
	assert.Equal(t, entity.ID(6), w.CreateEntity())
}

func TestWorldSpawnHelpersNeverCollideWithManualIDs(t *testing.T) {
	w := NewWorld()
	tree := w.SpawnTree(0, 0, "wood", 100, 20)
	require.NoError(t, w.Spawn(entity.NewTree(40, 0, 0)))
	require.NoError(t, w.Spawn(entity.NewTree(7, 0, 0)))
	base := w.SpawnStockpile(400, 400, 20)
	wk := w.SpawnWorker(100, 100, 20, entity.DefaultWorkerConfig())

	assert.Equal(t, entity.ID(41), base.ID())
	assert.Equal(t, entity.ID(42), wk.ID())
	for _, e := range []entity.Entity{tree, base, wk} {
		got, ok := w.Lookup(e.ID())
		require.True(t, ok, "helper-spawned %s #%d missing", e.Kind(), e.ID())
		assert.Same(t, e, got)
	}
	assert.Equal(t, 5, w.Len())
}

func TestWorldHitTestFirstMatchWins(t *testing.T) {
	w := NewWorld()
	first := w.SpawnTree(100, 100, "wood", 100, 20)
	w.SpawnWorker(110, 110, 20, entity.DefaultWorkerConfig())

	hit, ok := w.HitTest(115, 115)
	require.True(t, ok)
	assert.Equal(t, first.ID(), hit.ID())

	_, ok = w.HitTest(500, 500)
	assert.False(t, ok)
}

func TestWorldSelectionIsExclusive(t *testing.T) {
	w := NewWorld()
	a := w.SpawnWorker(0, 0, 20, entity.DefaultWorkerConfig())
	b := w.SpawnStockpile(100, 100, 20)

	w.Select(a)
	w.Select(b)

	assert.False(t, a.Selected())
	assert.True(t, b.Selected())
	sel, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, b.ID(), sel.ID())

	w.Deselect()
	assert.False(t, b.Selected())
	_, ok = w.Selected()
	assert.False(t, ok)
}

func TestWorldRemoveClearsSelection(t *testing.T) {
	w := NewWorld()
	tree := w.SpawnTree(0, 0, "wood", 100, 20)
	w.Select(tree)

	assert.True(t, w.Remove(tree.ID()))
	assert.False(t, w.Remove(tree.ID()))
	_, ok := w.Selected()
	assert.False(t, ok)
	_, ok = w.Lookup(tree.ID())
	assert.False(t, ok)
	assert.Zero(t, w.Len())
}

func TestWorldFirstStockpileBySpawnOrder(t *testing.T) {
	w := NewWorld()
	_, ok := w.FirstStockpile()
	assert.False(t, ok)

	w.SpawnTree(0, 0, "wood", 100, 20)
	first := w.SpawnStockpile(500, 500, 20)
	w.SpawnStockpile(10, 10, 20)

	got, ok := w.FirstStockpile()
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestWorldUpdateAdvancesClockAndFiresTasks(t *testing.T) {
	w := NewWorld()
	tree := w.SpawnTree(0, 0, "wood", 100, 20)
	wk := w.SpawnWorker(0, 0, 20, entity.DefaultWorkerConfig())

	w.Command(wk, entity.EntityTarget(tree))
	w.Update(0.5)
	assert.Equal(t, 500*time.Millisecond, w.Now())
	assert.Equal(t, entity.StateHarvesting, wk.State())

	w.Update(0.5)
	assert.Equal(t, 100, tree.Remaining())
	w.Update(0.5)
	assert.Equal(t, 90, tree.Remaining())
	assert.Equal(t, 10, wk.Weight())

	evs := w.Events().ConsumeInto(nil)
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventHarvestComplete, evs[0].Type)
	assert.Equal(t, 1500*time.Millisecond, evs[0].At)
}

func TestWorldCommandEmitsCancellation(t *testing.T) {
	w := NewWorld()
	tree := w.SpawnTree(0, 0, "wood", 100, 20)
	wk := w.SpawnWorker(0, 0, 20, entity.DefaultWorkerConfig())

	w.Command(wk, entity.EntityTarget(tree))
	assert.Zero(t, w.Events().Len())

	w.Update(0.1)
	w.Command(wk, entity.PointTarget(300, 300))

	evs := w.Events().ConsumeInto(nil)
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventTaskCancelled, evs[0].Type)
	p := evs[0].Payload.(*events.TaskPayload)
	assert.Equal(t, uint64(tree.ID()), p.Target)
	assert.Equal(t, "harvest", p.Kind)
}

func TestWorldPrunesDepletedNodes(t *testing.T) {
	w := NewWorld(WithRemoveDepleted(true))
	tree := w.SpawnTree(0, 0, "wood", 10, 20)
	wk := w.SpawnWorker(0, 0, 20, entity.DefaultWorkerConfig())
	w.Select(tree)

	w.Command(wk, entity.EntityTarget(tree))
	for i := 0; i < 15; i++ {
		w.Update(0.1)
	}

	_, ok := w.Lookup(tree.ID())
	assert.False(t, ok)
	_, ok = w.Selected()
	assert.False(t, ok)
	assert.Equal(t, 10, wk.Weight())

	w.Update(0.1)
	assert.Equal(t, entity.StateIdle, wk.State())
	assert.True(t, wk.Target().IsNone())
}

func TestWorldLastIncrementCreditsEveryHarvester(t *testing.T) {
	w := NewWorld()
	tree := w.SpawnTree(0, 0, "wood", 10, 20)
	a := w.SpawnWorker(0, 0, 20, entity.DefaultWorkerConfig())
	b := w.SpawnWorker(0, 0, 20, entity.DefaultWorkerConfig())

	w.Command(a, entity.EntityTarget(tree))
	w.Command(b, entity.EntityTarget(tree))
	for i := 0; i < 20; i++ {
		w.Update(0.1)
	}

	assert.Zero(t, tree.Remaining())
	assert.Equal(t, 10, a.Weight())
	assert.Equal(t, 10, b.Weight())
}

func TestWorldKeepsDepletedNodesByDefault(t *testing.T) {
	w := NewWorld()
	tree := w.SpawnTree(0, 0, "wood", 0, 20)
	w.Update(0.1)

	_, ok := w.Lookup(tree.ID())
	assert.True(t, ok)
}

func TestWorldPopulateDefaultScenario(t *testing.T) {
	sc := DefaultScenario()
	sc.Seed = 42

	w := NewWorld()
	w.Populate(sc)

	ents := w.Entities()
	require.Len(t, ents, 14)
	for i := 0; i < 10; i++ {
		n, ok := ents[i].(*entity.ResourceNode)
		require.True(t, ok, "entity %d should be a tree", i)
		assert.Equal(t, 100, n.Remaining())
		assert.GreaterOrEqual(t, n.Position().X, 0.0)
		assert.Less(t, n.Position().X, 800.0)
		assert.GreaterOrEqual(t, n.Position().Y, 0.0)
		assert.Less(t, n.Position().Y, 600.0)
	}

	base, ok := ents[10].(*entity.Stockpile)
	require.True(t, ok)
	assert.Equal(t, 400.0, base.Position().X)

	for i, want := range []float64{100, 200, 300} {
		wk, ok := ents[11+i].(*entity.Worker)
		require.True(t, ok)
		assert.Equal(t, want, wk.Position().X)
		assert.Equal(t, want, wk.Position().Y)
	}

	// Same seed, same layout
	again := NewWorld()
	again.Populate(sc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, ents[i].Position(), again.Entities()[i].Position())
	}
}

func TestWorldRenderOrderAndOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	w := NewWorld()
	w.SpawnTree(10, 100, "wood", 100, 20)
	base := w.SpawnStockpile(400, 400, 20)
	base.Deposit([]entity.Line{{Kind: "wood", Amount: 30}, {Kind: "stone", Amount: 4}})
	w.Select(base)
	w.SetFrameRate(60)

	gomock.InOrder(
		surface.EXPECT().Clear(),
		surface.EXPECT().FillRect(10.0, 100.0, 20.0, 20.0, render.RgbTree),
		surface.EXPECT().DrawText(10.0, 80.0, "100", render.RgbLabel),
		surface.EXPECT().FillRect(400.0, 400.0, 20.0, 20.0, render.RgbSelected),
		surface.EXPECT().DrawText(10.0, 20.0, "FPS: 60", render.RgbPanelText),
		surface.EXPECT().DrawText(10.0, 40.0, "Base Inventory:", render.RgbPanelText),
		surface.EXPECT().DrawText(10.0, 60.0, "wood: 30", render.RgbPanelText),
		surface.EXPECT().DrawText(10.0, 80.0, "stone: 4", render.RgbPanelText),
	)
	w.Render(surface)
}

func TestWorldRenderEmptyWorkerPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	w := NewWorld()
	wk := w.SpawnWorker(100, 100, 20, entity.DefaultWorkerConfig())
	w.Select(wk)

	// Specific expectations first, gomock matches in declaration order
	surface.EXPECT().DrawText(10.0, 40.0, "Worker Inventory:", render.RgbPanelText)
	surface.EXPECT().DrawText(10.0, 60.0, "Empty", render.RgbPanelText)
	surface.EXPECT().Clear()
	surface.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().DrawText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	w.Render(surface)
}

func TestWorldRenderNoPanelForTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	w := NewWorld()
	tree := w.SpawnTree(100, 100, "wood", 100, 20)
	w.Select(tree)

	surface.EXPECT().Clear()
	surface.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	surface.EXPECT().DrawText(100.0, 80.0, "100", render.RgbLabel)
	surface.EXPECT().DrawText(10.0, 20.0, "FPS: 0", render.RgbPanelText)
	w.Render(surface)
}
