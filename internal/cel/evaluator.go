// Package cel evaluates CEL predicates over palette commands.
package cel

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// CommandVar is the variable a predicate uses to reach the command. The
// same value is also bound to "_".
const CommandVar = "cmd"

// Evaluator compiles predicates against a shared environment.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the standard extension libraries.
func NewEvaluator() (*Evaluator, error) {
	env, err := newStandardCELEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// GetEnvironment returns the CEL environment for introspection.
func (e *Evaluator) GetEnvironment() *cel.Env {
	return e.env
}

func newStandardCELEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	mapType := cel.MapType(cel.StringType, cel.StringType)
	allOpts := make([]cel.EnvOption, 0, 5+len(opts))
	allOpts = append(allOpts,
		cel.Variable(CommandVar, mapType),
		cel.Variable("_", mapType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Predicate is a compiled boolean expression over a command.
type Predicate struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks expr. The expression must yield a bool.
// Example: `cmd.category == "File" && cmd.name.startsWith("S")`.
func (e *Evaluator) Compile(expr string) (*Predicate, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(types.BoolType) {
		return nil, fmt.Errorf("expression %q must return bool, got %s", expr, ast.OutputType())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Predicate{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	return p.expr
}

// Match evaluates the predicate for cmd.
func (p *Predicate) Match(cmd palette.Command) (bool, error) {
	fields := CommandFields(cmd)
	out, _, err := p.prg.Eval(map[string]any{
		CommandVar: fields,
		"_":        fields,
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, not bool", p.expr, out.Value())
	}
	return b, nil
}

// Filter returns the commands for which the predicate holds, in order.
func (p *Predicate) Filter(cmds []palette.Command) ([]palette.Command, error) {
	out := make([]palette.Command, 0, len(cmds))
	for _, c := range cmds {
		ok, err := p.Match(c)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", c.Name, err)
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// CommandFields flattens cmd into the map a predicate sees. Every key is
// always present so expressions never fail on a missing field.
func CommandFields(cmd palette.Command) map[string]string {
	return map[string]string{
		"name":        cmd.Name,
		"description": cmd.Description,
		"category":    cmd.Category,
		"icon":        cmd.Icon,
		"kind":        cmd.Action.Kind().String(),
		"action":      cmd.Action.String(),
	}
}
