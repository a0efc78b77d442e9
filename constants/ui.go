package constants

// Display Layout (world pixels)
const (
	// CellWidth and CellHeight are the world pixels covered by one terminal cell
	CellWidth  = 10
	CellHeight = 20

	// LabelOffset lifts entity labels one text line above their box
	LabelOffset = 20

	// PanelX is the left edge of the overlay text column
	PanelX = 10

	// FPSLineY is the baseline of the frame rate indicator
	FPSLineY = 20

	// PausedX places the pause indicator on the frame rate line
	PausedX = 120

	// PanelTitleY is the inventory panel heading line
	PanelTitleY = 40

	// PanelFirstLineY and PanelLineHeight lay out inventory lines
	PanelFirstLineY = 60
	PanelLineHeight = 20
)

// Overlay Text
const (
	TextWorkerInventory = "Worker Inventory:"
	TextBaseInventory   = "Base Inventory:"
	TextEmpty           = "Empty"
	TextPaused          = "PAUSED"
)
