package render

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenSurface implements Surface on a tcell screen through a Viewport
// Drawing outside the screen bounds is clipped
type ScreenSurface struct {
	screen   tcell.Screen
	viewport Viewport
	base     tcell.Style
}

// NewScreenSurface wraps a tcell screen
func NewScreenSurface(screen tcell.Screen, viewport Viewport) *ScreenSurface {
	return &ScreenSurface{
		screen:   screen,
		viewport: viewport,
		base:     tcell.StyleDefault.Background(RgbBackground).Foreground(RgbLabel),
	}
}

// Viewport returns the pixel-to-cell mapping in use
func (s *ScreenSurface) Viewport() Viewport {
	return s.viewport
}

// Screen returns the underlying tcell screen
func (s *ScreenSurface) Screen() tcell.Screen {
	return s.screen
}

func (s *ScreenSurface) Clear() {
	s.screen.Fill(' ', s.base)
}

func (s *ScreenSurface) FillRect(x, y, w, h float64, color tcell.Color) {
	x0, y0, x1, y1 := s.viewport.RectCells(x, y, w, h)
	style := s.base.Background(color)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if s.inBounds(cx, cy) {
				s.screen.SetContent(cx, cy, ' ', nil, style)
			}
		}
	}
}

// DrawText writes on the row holding the pixel just above the baseline
// Existing cell backgrounds are kept so labels can sit on filled boxes
func (s *ScreenSurface) DrawText(x, y float64, text string, color tcell.Color) {
	cx, cy := s.viewport.CellAt(x, y-1)
	for _, r := range text {
		if s.inBounds(cx, cy) {
			_, _, existing, _ := s.screen.GetContent(cx, cy)
			_, bg, _ := existing.Decompose()
			s.screen.SetContent(cx, cy, r, nil, s.base.Foreground(color).Background(bg))
		}
		cx++
	}
}

func (s *ScreenSurface) Show() {
	s.screen.Show()
}

func (s *ScreenSurface) inBounds(cx, cy int) bool {
	w, h := s.screen.Size()
	return cx >= 0 && cy >= 0 && cx < w && cy < h
}
