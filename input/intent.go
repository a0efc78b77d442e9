package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentCancel     // Esc, clears the selection
	IntentPause      // p
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Pointer intents carry world coordinates
	IntentPrimaryClick   // Left press: select or clear
	IntentSecondaryClick // Right press: command the selected worker
)

var intentNames = map[IntentType]string{
	IntentNone:           "none",
	IntentQuit:           "quit",
	IntentCancel:         "cancel",
	IntentPause:          "pause",
	IntentToggleMute:     "mute",
	IntentResize:         "resize",
	IntentPrimaryClick:   "primary",
	IntentSecondaryClick: "secondary",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is a parsed input event
type Intent struct {
	Type IntentType
	X, Y float64 // world pixels, pointer intents only
}
