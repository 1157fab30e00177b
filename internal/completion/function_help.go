package completion

// FormatFunctionSignature returns a display-ready signature for a function,
// falling back to name() if no signature is set.
func FormatFunctionSignature(fn FunctionMetadata) string {
	if fn.Signature != "" {
		return fn.Signature
	}
	return fn.Name + "()"
}
