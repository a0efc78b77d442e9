package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gatherer/render"
)

// Machine parses tcell events into intents
// Mouse buttons act on the press edge, held buttons and drags are ignored
type Machine struct {
	keyTable *KeyTable
	viewport render.Viewport
	buttons  tcell.ButtonMask
}

func NewMachine(viewport render.Viewport, keyTable *KeyTable) *Machine {
	if keyTable == nil {
		keyTable = DefaultKeyTable()
	}
	return &Machine{
		keyTable: keyTable,
		viewport: viewport,
	}
}

// Process returns the intent for ev, nil when the event means nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t := m.keyTable.Lookup(ev); t != IntentNone {
			return &Intent{Type: t}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons()
	pressed := buttons &^ m.buttons
	m.buttons = buttons

	var t IntentType
	switch {
	case pressed&tcell.ButtonPrimary != 0:
		t = IntentPrimaryClick
	case pressed&tcell.ButtonSecondary != 0:
		t = IntentSecondaryClick
	default:
		return nil
	}

	cx, cy := ev.Position()
	x, y := m.viewport.CellCenter(cx, cy)
	return &Intent{Type: t, X: x, Y: y}
}
