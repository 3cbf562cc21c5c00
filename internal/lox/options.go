package lox

const (
	// DefaultMaxNesting bounds the parser's recursion through groupings and
	// unary operators.
	DefaultMaxNesting = 256
	// DefaultMaxEvalDepth bounds the evaluator's recursion over a tree. Left
	// leaning binary chains are walked in a loop and don't count toward it.
	DefaultMaxEvalDepth = 1 << 16
)

// Options controls the limits of the parser and the evaluator.
type Options struct {
	// MaxNesting is the deepest chain of nested groupings and unary
	// operators the parser accepts (default DefaultMaxNesting).
	MaxNesting int
	// MaxEvalDepth is the deepest tree the evaluator walks, not counting the
	// left operands of binary chains (default DefaultMaxEvalDepth).
	MaxEvalDepth int
}

// normalize fills unset limits with their defaults.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{DefaultMaxNesting, DefaultMaxEvalDepth}
	}

	out := *o
	if out.MaxNesting <= 0 {
		out.MaxNesting = DefaultMaxNesting
	}
	if out.MaxEvalDepth <= 0 {
		out.MaxEvalDepth = DefaultMaxEvalDepth
	}

	return out
}
