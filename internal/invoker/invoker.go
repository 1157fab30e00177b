// Package invoker runs the action of a chosen palette command.
package invoker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// ErrNoAction is returned for a command whose action is empty.
var ErrNoAction = errors.New("command has no action")

// Invoker executes actions. Literal actions run as a shell command line,
// callbacks are called in-process.
type Invoker struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Shell overrides the shell used for literal actions. The line is
	// passed as the argument after the shell's command flag.
	Shell []string

	log logr.Logger
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithLogger sets the logger used to record invocations.
func WithLogger(lgr logr.Logger) Option {
	return func(i *Invoker) { i.log = lgr }
}

// WithIO sets the standard streams of spawned shells.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(i *Invoker) {
		i.Stdin = in
		i.Stdout = out
		i.Stderr = errOut
	}
}

// WithShell sets the shell argv prefix, e.g. []string{"bash", "-c"}.
func WithShell(argv ...string) Option {
	return func(i *Invoker) { i.Shell = argv }
}

// New returns an Invoker wired to the process streams.
func New(opts ...Option) *Invoker {
	i := &Invoker{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// DefaultShell returns the shell argv prefix for the current platform:
// $SHELL -c (falling back to /bin/sh), or cmd /C on Windows.
func DefaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return []string{sh, "-c"}
	}
	return []string{"/bin/sh", "-c"}
}

// Invoke runs a. Shell commands are killed when ctx is cancelled.
func (i *Invoker) Invoke(ctx context.Context, a palette.Action) error {
	switch a.Kind() {
	case palette.ActionLiteral:
		return i.runLine(ctx, a.Line())
	case palette.ActionInvocable:
		i.log.V(1).Info("calling callback action")
		if err := a.Callback()(); err != nil {
			return fmt.Errorf("callback action: %w", err)
		}
		return nil
	case palette.ActionNone:
		return ErrNoAction
	default:
		return fmt.Errorf("unknown action kind %d", a.Kind())
	}
}

// InvokeCommand runs cmd's action, naming the command in errors.
func (i *Invoker) InvokeCommand(ctx context.Context, cmd palette.Command) error {
	i.log.Info("invoking command", "name", cmd.Name, "kind", cmd.Action.Kind().String())
	if err := i.Invoke(ctx, cmd.Action); err != nil {
		return fmt.Errorf("command %q: %w", cmd.Name, err)
	}
	return nil
}

func (i *Invoker) runLine(ctx context.Context, line string) error {
	argv := i.Shell
	if len(argv) == 0 {
		argv = DefaultShell()
	}
	args := append(append([]string(nil), argv[1:]...), line)
	c := exec.CommandContext(ctx, argv[0], args...)
	c.Stdin = i.Stdin
	c.Stdout = i.Stdout
	c.Stderr = i.Stderr

	i.log.V(1).Info("running shell action", "shell", argv[0], "line", line)
	if err := c.Run(); err != nil {
		return fmt.Errorf("run %q: %w", line, err)
	}
	return nil
}
