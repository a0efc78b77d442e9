package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Bindable actions by config name, "none" removes a binding
var actionNames = map[string]IntentType{
	"none":   IntentNone,
	"quit":   IntentQuit,
	"cancel": IntentCancel,
	"pause":  IntentPause,
	"mute":   IntentToggleMute,
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Esc, Ctrl+*)
	Keys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentCancel,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			'm': IntentToggleMute,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		Keys:  make(map[tcell.Key]IntentType, len(kt.Keys)),
		Runes: make(map[rune]IntentType, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		out.Keys[k] = v
	}
	for r, v := range kt.Runes {
		out.Runes[r] = v
	}
	return out
}

// Lookup resolves a key event to its bound intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// ParseKeyBindings turns rune → action name pairs into a rune override map
// Returns error on unknown action names or keys longer than one rune
func ParseKeyBindings(bindings map[string]string) (map[rune]IntentType, error) {
	out := make(map[rune]IntentType, len(bindings))
	for key, action := range bindings {
		r, err := resolveRune(key)
		if err != nil {
			return nil, err
		}
		intent, ok := actionNames[strings.ToLower(strings.TrimSpace(action))]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q", key, action)
		}
		out[r] = intent
	}
	return out, nil
}

// WithRunes returns a copy of kt with the overrides applied
// IntentNone entries delete the binding
func (kt *KeyTable) WithRunes(overrides map[rune]IntentType) *KeyTable {
	out := kt.Clone()
	for r, intent := range overrides {
		if intent == IntentNone {
			delete(out.Runes, r)
			continue
		}
		out.Runes[r] = intent
	}
	return out
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid key: %q (expected single character or alias)", s)
}
