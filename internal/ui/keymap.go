package ui

import (
	"github.com/oakwood-commons/cmdpal/internal/config"
)

// KeyAction is what a key press does to the palette.
type KeyAction int

const (
	KeyActionNone KeyAction = iota
	KeyActionNext
	KeyActionPrev
	KeyActionExecute
	KeyActionClose
)

func (a KeyAction) String() string {
	switch a {
	case KeyActionNext:
		return "next"
	case KeyActionPrev:
		return "prev"
	case KeyActionExecute:
		return "execute"
	case KeyActionClose:
		return "close"
	default:
		return "none"
	}
}

// KeyMap maps key names, as reported by tea.KeyPressMsg.String, to actions.
// Keys absent from the map go to the query input.
type KeyMap map[string]KeyAction

// DefaultKeyBindings are active in every key mode.
var DefaultKeyBindings = KeyMap{
	"down":      KeyActionNext,
	"tab":       KeyActionNext,
	"up":        KeyActionPrev,
	"shift+tab": KeyActionPrev,
	"enter":     KeyActionExecute,
	"esc":       KeyActionClose,
	"ctrl+c":    KeyActionClose,
}

// EmacsKeyBindings add the emacs line-motion keys.
var EmacsKeyBindings = KeyMap{
	"ctrl+n": KeyActionNext,
	"ctrl+p": KeyActionPrev,
	"ctrl+g": KeyActionClose,
}

// VimKeyBindings add insert-mode completion style keys. Plain j/k stay
// available for typing.
var VimKeyBindings = KeyMap{
	"ctrl+j": KeyActionNext,
	"ctrl+k": KeyActionPrev,
	"ctrl+n": KeyActionNext,
	"ctrl+p": KeyActionPrev,
	"ctrl+y": KeyActionExecute,
}

// KeyMapFor returns the bindings for mode layered over the defaults.
func KeyMapFor(mode config.KeyMode) KeyMap {
	km := make(KeyMap, len(DefaultKeyBindings)+len(VimKeyBindings))
	for k, a := range DefaultKeyBindings {
		km[k] = a
	}
	var extra KeyMap
	switch mode {
	case config.KeyModeEmacs:
		extra = EmacsKeyBindings
	case config.KeyModeVim:
		extra = VimKeyBindings
	}
	for k, a := range extra {
		km[k] = a
	}
	return km
}

// Lookup returns the action bound to key.
func (km KeyMap) Lookup(key string) KeyAction {
	return km[key]
}
