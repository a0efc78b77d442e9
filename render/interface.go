package render

import "github.com/gdamore/tcell/v2"

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface is the 2D drawing target. Coordinates are world pixels
// Only filled rectangles and text are assumed
type Surface interface {
	// Clear resets the whole surface to the background
	Clear()

	// FillRect paints the box at (x, y) with size (w, h)
	FillRect(x, y, w, h float64, color tcell.Color)

	// DrawText writes text with its baseline at y, starting at x
	DrawText(x, y float64, text string, color tcell.Color)

	// Show presents the frame
	Show()
}

// Renderable is implemented by anything that draws itself onto a Surface
// Render must not mutate simulation state
type Renderable interface {
	Render(s Surface)
}
