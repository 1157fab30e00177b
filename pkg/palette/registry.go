package palette

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-logr/logr"
)

// Registry holds the command list shared by every session and by external
// integrations, plus the flag recording whether a palette is open.
//
// A Registry starts unconfigured. Configure installs a list; from then on Add
// and Remove mutate it. Readers always receive copies. All methods are safe
// for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	commands   []Command
	configured bool
	open       bool
	log        logr.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registry mutations.
func WithLogger(log logr.Logger) RegistryOption {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry returns an unconfigured registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{log: logr.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// Default returns the process-wide registry for integrations that want a
// single shared instance. It is created unconfigured on first use.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Configure replaces the command list. Each command is validated first; on
// error the previous state is left untouched.
func (r *Registry) Configure(cmds []Command) error {
	for i, c := range cmds {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = slices.Clone(cmds)
	if r.commands == nil {
		r.commands = []Command{}
	}
	r.configured = true
	r.log.V(1).Info("registry configured", "commands", len(r.commands))
	return nil
}

// Configured reports whether Configure has run.
func (r *Registry) Configured() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configured
}

// List returns a copy of the commands in insertion order. It is empty, never
// nil, before Configure.
func (r *Registry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// IsOpen reports whether a palette session is active.
func (r *Registry) IsOpen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.open
}

// SetOpen sets the open flag unconditionally.
func (r *Registry) SetOpen(open bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = open
}

// Add appends cmd. It fails with ErrNotConfigured before Configure so the
// command is never silently dropped.
func (r *Registry) Add(cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.configured {
		return fmt.Errorf("add %q: %w", cmd.Name, ErrNotConfigured)
	}
	r.commands = append(r.commands, cmd)
	r.log.V(1).Info("command added", "name", cmd.Name, "commands", len(r.commands))
	return nil
}

// Remove drops every command named name, keeping the order of the rest.
// Unknown names and an unconfigured registry are ignored.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.configured {
		return
	}
	before := len(r.commands)
	r.commands = slices.DeleteFunc(r.commands, func(c Command) bool {
		return c.Name == name
	})
	if removed := before - len(r.commands); removed > 0 {
		r.log.V(1).Info("commands removed", "name", name, "removed", removed)
	}
}

// acquire checks the open preconditions and sets the open flag in one step.
func (r *Registry) acquire() ([]Command, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case !r.configured:
		return nil, ErrSetupMissing
	case len(r.commands) == 0:
		return nil, ErrNoCommandsConfigured
	case r.open:
		return nil, ErrAlreadyOpen
	}
	r.open = true
	snapshot := make([]Command, len(r.commands))
	copy(snapshot, r.commands)
	r.log.V(1).Info("palette opened", "commands", len(snapshot))
	return snapshot, nil
}

func (r *Registry) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open {
		r.log.V(1).Info("palette closed")
	}
	r.open = false
}
