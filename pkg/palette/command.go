package palette

import (
	"fmt"
	"strings"
)

// ActionKind discriminates the Action variants.
type ActionKind int

const (
	// ActionNone is the zero Action; it cannot be invoked.
	ActionNone ActionKind = iota
	// ActionLiteral carries a host command line.
	ActionLiteral
	// ActionInvocable carries a zero-argument callback.
	ActionInvocable
)

// String returns the lowercase name of the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionLiteral:
		return "literal"
	case ActionInvocable:
		return "callback"
	default:
		return "none"
	}
}

// Action is what runs when a command is executed: either a command line for
// the host or a Go callback. The engine carries it without looking inside.
type Action struct {
	kind ActionKind
	line string
	fn   func() error
}

// Literal returns an Action that asks the host to run line.
func Literal(line string) Action {
	return Action{kind: ActionLiteral, line: line}
}

// Invocable returns an Action that calls fn with no arguments.
// A nil fn yields the zero Action.
func Invocable(fn func() error) Action {
	if fn == nil {
		return Action{}
	}
	return Action{kind: ActionInvocable, fn: fn}
}

// Kind reports which variant a holds.
func (a Action) Kind() ActionKind { return a.kind }

// Line returns the command line of a literal action, or "".
func (a Action) Line() string { return a.line }

// Callback returns the function of an invocable action, or nil.
func (a Action) Callback() func() error { return a.fn }

// IsZero reports whether a carries nothing to run.
func (a Action) IsZero() bool { return a.kind == ActionNone }

// String renders a for listings; callbacks have no textual form.
func (a Action) String() string {
	switch a.kind {
	case ActionLiteral:
		return a.line
	case ActionInvocable:
		return "<callback>"
	default:
		return ""
	}
}

// Command is a single launcher entry.
type Command struct {
	// Name is the primary search field and the key used by Remove.
	Name string
	// Description is shown for the selected command. Empty means absent.
	Description string
	// Category is searched and used for column alignment. Empty means absent.
	Category string
	// Icon is a cosmetic glyph drawn before the name when icons are enabled.
	Icon   string
	Action Action
}

// Validate checks the fields the engine relies on.
// Duplicate names are legal and are not checked here.
func (c Command) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCommand)
	}
	if c.Action.IsZero() {
		return fmt.Errorf("%w: %q has no action", ErrInvalidCommand, c.Name)
	}
	return nil
}
