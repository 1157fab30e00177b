package completion

import (
	"sort"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/decls"
	"github.com/google/cel-go/common/types"

	celhelper "github.com/oakwood-commons/cmdpal/internal/cel"
	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// CELProvider completes command fields and functions of the predicate
// environment.
type CELProvider struct {
	functions []FunctionMetadata
	fields    []string
	variables []string
}

// NewCELProvider discovers functions from the predicate environment.
func NewCELProvider() (*CELProvider, error) {
	eval, err := celhelper.NewEvaluator()
	if err != nil {
		return nil, err
	}
	fields := make([]string, 0, 6)
	for k := range celhelper.CommandFields(palette.Command{}) {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return &CELProvider{
		functions: discoverFunctions(eval.GetEnvironment()),
		fields:    fields,
		variables: []string{celhelper.CommandVar, "_"},
	}, nil
}

// Functions returns the discovered functions sorted by name.
func (p *CELProvider) Functions() []FunctionMetadata {
	return p.functions
}

// Complete suggests the token under the end of input. After "cmd." it
// offers fields; after any other "." it offers methods; elsewhere it offers
// variables and global functions.
func (p *CELProvider) Complete(input string) []Completion {
	start := tokenStart(input)
	head, token := input[:start], input[start:]

	var out []Completion
	if dot := strings.LastIndex(token, "."); dot >= 0 {
		recv, partial := token[:dot], token[dot+1:]
		prefix := head + recv + "."
		if recv == celhelper.CommandVar || recv == "_" {
			for _, f := range p.fields {
				if strings.HasPrefix(f, partial) {
					out = append(out, Completion{Text: prefix + f, Description: "command " + f, Kind: CompletionField})
				}
			}
			return out
		}
		for _, fn := range p.functions {
			if fn.IsMethod && strings.HasPrefix(fn.Name, partial) {
				out = append(out, Completion{Text: prefix + fn.Name + "(", Description: FormatFunctionSignature(fn), Kind: CompletionFunction})
			}
		}
		return out
	}

	for _, v := range p.variables {
		if strings.HasPrefix(v, token) {
			out = append(out, Completion{Text: head + v, Description: "the command", Kind: CompletionVariable})
		}
	}
	for _, fn := range p.functions {
		if !fn.IsMethod && strings.HasPrefix(fn.Name, token) {
			out = append(out, Completion{Text: head + fn.Name + "(", Description: FormatFunctionSignature(fn), Kind: CompletionFunction})
		}
	}
	return out
}

// tokenStart returns the index where the trailing identifier path begins.
func tokenStart(s string) int {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c == '.' || c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			i--
			continue
		}
		break
	}
	return i
}

// discoverFunctions lists each non-operator function once, keeping the
// first overload's signature. A name with any member overload is a method.
func discoverFunctions(env *cel.Env) []FunctionMetadata {
	byName := make(map[string]*FunctionMetadata)
	for _, fn := range env.Functions() {
		if isOperator(fn.Name()) {
			continue
		}
		meta, ok := byName[fn.Name()]
		if !ok {
			meta = &FunctionMetadata{Name: fn.Name()}
			byName[fn.Name()] = meta
		}
		for _, o := range fn.OverloadDecls() {
			if meta.Signature == "" {
				meta.Signature = usageFromOverload(fn.Name(), o)
			}
			if o.IsMemberFunction() {
				meta.IsMethod = true
			}
		}
	}
	for _, m := range env.Macros() {
		if isOperator(m.Function()) {
			continue
		}
		if _, ok := byName[m.Function()]; !ok {
			byName[m.Function()] = &FunctionMetadata{Name: m.Function(), IsMethod: m.IsReceiverStyle()}
		}
	}

	out := make([]FunctionMetadata, 0, len(byName))
	for _, meta := range byName {
		out = append(out, *meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func isOperator(name string) bool {
	if strings.HasPrefix(name, "@") {
		return true
	}
	if strings.HasPrefix(name, "_") && strings.HasSuffix(name, "_") {
		return true
	}
	return name == "!_" || name == "-_"
}

func typeLabel(t *types.Type) string {
	if t == nil {
		return "any"
	}
	if name := t.DeclaredTypeName(); name != "" {
		return name
	}
	if name := t.TypeName(); name != "" {
		return name
	}
	return "any"
}

func formatParams(params []*types.Type) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typeLabel(p)
	}
	return strings.Join(parts, ", ")
}

func usageFromOverload(name string, o *decls.OverloadDecl) string {
	params := o.ArgTypes()
	var call string
	switch {
	case len(params) == 0:
		call = name + "()"
	case o.IsMemberFunction():
		call = typeLabel(params[0]) + "." + name + "(" + formatParams(params[1:]) + ")"
	default:
		call = name + "(" + formatParams(params) + ")"
	}
	if o.ResultType() == nil {
		return call
	}
	return call + " -> " + typeLabel(o.ResultType())
}
