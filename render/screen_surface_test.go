package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestSurface(t *testing.T) (*ScreenSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)
	return NewScreenSurface(screen, NewViewport(10, 20)), screen
}

func TestScreenSurfaceFillRect(t *testing.T) {
	surface, screen := newTestSurface(t)
	surface.Clear()

	surface.FillRect(400, 400, 20, 20, RgbStockpile)

	for _, cx := range []int{40, 41} {
		_, _, style, _ := screen.GetContent(cx, 20)
		_, bg, _ := style.Decompose()
		if bg != RgbStockpile {
			t.Errorf("cell (%d,20): expected stockpile background, got %v", cx, bg)
		}
	}

	_, _, style, _ := screen.GetContent(42, 20)
	_, bg, _ := style.Decompose()
	if bg != RgbBackground {
		t.Errorf("cell (42,20) should be background, got %v", bg)
	}
}

func TestScreenSurfaceDrawTextKeepsBackground(t *testing.T) {
	surface, screen := newTestSurface(t)
	surface.Clear()

	surface.FillRect(100, 80, 40, 20, RgbTree)
	// Baseline at 100 lands on row 4, the row the box occupies
	surface.DrawText(100, 100, "ab", RgbLabel)

	r, _, style, _ := screen.GetContent(10, 4)
	if r != 'a' {
		t.Fatalf("expected 'a' at (10,4), got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != RgbLabel {
		t.Errorf("expected label foreground, got %v", fg)
	}
	if bg != RgbTree {
		t.Errorf("expected tree background kept under text, got %v", bg)
	}
}

func TestScreenSurfaceClipsOffscreen(t *testing.T) {
	surface, screen := newTestSurface(t)
	surface.Clear()

	// Partially offscreen draws must not panic and must write the visible part
	surface.FillRect(-15, -25, 40, 60, RgbWorker)
	surface.DrawText(790, 20, "overflow", RgbLabel)

	r, _, _, _ := screen.GetContent(79, 0)
	if r != 'o' {
		t.Errorf("expected first rune at last column, got %q", r)
	}
	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	if bg != RgbWorker {
		t.Errorf("expected visible part of box at (0,0), got %v", bg)
	}
}

func TestSelectionColor(t *testing.T) {
	if SelectionColor(true, RgbWorker) != RgbSelected {
		t.Error("selected entity should use highlight color")
	}
	if SelectionColor(false, RgbWorker) != RgbWorker {
		t.Error("unselected entity should use base color")
	}
}
