package render

import (
	"github.com/gdamore/tcell/v2"
)

// Entity palette
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbTree       = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbStockpile  = tcell.NewRGBColor(0, 0, 255)     // Blue
	RgbWorker     = tcell.NewRGBColor(128, 128, 128) // Gray
	RgbSelected   = tcell.NewRGBColor(255, 255, 0)   // Yellow
)

// Overlay palette
var (
	RgbLabel     = tcell.NewRGBColor(255, 255, 255) // White
	RgbPanelText = tcell.NewRGBColor(255, 255, 255) // White
	RgbPaused    = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// SelectionColor returns the highlight color when selected, base otherwise
func SelectionColor(selected bool, base tcell.Color) tcell.Color {
	if selected {
		return RgbSelected
	}
	return base
}
