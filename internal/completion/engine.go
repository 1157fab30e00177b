// Package completion suggests CEL tokens for `cmdpal list --where` shell
// completion.
package completion

import (
	"sort"
	"strings"
)

// Provider produces candidates for a partial expression.
type Provider interface {
	// Complete returns candidates that replace input entirely.
	Complete(input string) []Completion
}

// FunctionMetadata describes a function available to expressions.
type FunctionMetadata struct {
	Name      string
	Signature string // e.g. "string.startsWith(string) -> bool"
	IsMethod  bool   // called on a receiver
}

// Completion is a single suggestion.
type Completion struct {
	Text        string // full replacement for the input
	Description string
	Kind        CompletionKind
}

// CompletionKind indicates the type of completion.
type CompletionKind int

const (
	CompletionField CompletionKind = iota
	CompletionFunction
	CompletionVariable
)

func (k CompletionKind) String() string {
	switch k {
	case CompletionField:
		return "field"
	case CompletionFunction:
		return "function"
	case CompletionVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Engine wraps a Provider with ordering and de-duplication.
type Engine struct {
	provider Provider
}

// NewEngine creates a completion engine with the given provider.
func NewEngine(provider Provider) *Engine {
	return &Engine{provider: provider}
}

// Complete returns sorted, unique candidates for input.
func (e *Engine) Complete(input string) []Completion {
	raw := e.provider.Complete(input)
	seen := make(map[string]bool, len(raw))
	out := make([]Completion, 0, len(raw))
	for _, c := range raw {
		if seen[c.Text] {
			continue
		}
		seen[c.Text] = true
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// ShellCandidates formats completions the way cobra expects: the value,
// then a tab and the description.
func (e *Engine) ShellCandidates(input string) []string {
	comps := e.Complete(input)
	out := make([]string, len(comps))
	for i, c := range comps {
		if c.Description == "" {
			out[i] = c.Text
			continue
		}
		out[i] = c.Text + "\t" + strings.ReplaceAll(c.Description, "\t", " ")
	}
	return out
}
