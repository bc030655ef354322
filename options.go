package arbor

// DefaultMaxSteps is the number of nodes Eval visits before giving up, unless
// the MaxSteps option says otherwise.
const DefaultMaxSteps = 10_000

// EvalOptions determine how Eval walks a tree.
// See the functional definitions below for the meaning.
type EvalOptions struct {
	MaxSteps int
}

// EvalOption is a functional option for Eval.
type EvalOption func(f *EvalOptions)

// Given an array of EvalOption functions, apply their effect
// on the EvalOptions struct.
func applyEvalOptions(o *EvalOptions, opts ...EvalOption) {
	for _, opt := range opts {
		opt(o)
	}
}

// MaxSteps limits the number of nodes visited during one Eval call, including
// the root. Zero or a negative value removes the limit.
// Default: DefaultMaxSteps
func MaxSteps(n int) EvalOption {
	return func(f *EvalOptions) {
		f.MaxSteps = n
	}
}
