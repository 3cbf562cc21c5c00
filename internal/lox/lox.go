package lox

import "errors"

// Evaluate runs the whole pipeline over source: it scans, parses and
// evaluates it. All lexical errors of the scan are joined together; parsing
// and evaluation stop at their first error.
func Evaluate(source string, opts *Options) (Value, error) {
	var lexErrs errorList
	tokens := NewScanner([]rune(source), &lexErrs).Scan()
	if lexErrs.HadError() {
		return nil, errors.Join(lexErrs...)
	}

	expr, err := NewParser(tokens, &lexErrs, opts).ParseExpr()
	if err != nil {
		return nil, err
	}
	return NewInterpreter(&lexErrs, opts).Evaluate(expr)
}

// errorList is a Reporter that keeps every error it receives. Only the scanner
// reports through it; the parser and evaluator return their errors.
type errorList []error

func (l *errorList) Report(err error)      { *l = append(*l, err) }
func (l *errorList) Reset()                { *l = nil }
func (l *errorList) HadError() bool        { return len(*l) != 0 }
func (l *errorList) HadRuntimeError() bool { return false }
