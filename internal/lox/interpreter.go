package lox

import (
	"fmt"
	"io"
)

// Interpreter exposes methods for evaluating the given Lox syntax tree. It
// keeps no state between evaluations so a single Interpreter can be shared by
// goroutines as long as its reporter is.
type Interpreter struct {
	reporter     Reporter
	maxEvalDepth int
}

func NewInterpreter(reporter Reporter, opts *Options) *Interpreter {
	o := opts.normalize()
	return &Interpreter{reporter, o.MaxEvalDepth}
}

// Interpret evaluates the tree and writes its rendered value to output, or
// reports the evaluation error.
func (in *Interpreter) Interpret(expr Expr, output io.Writer) {
	val, err := in.Evaluate(expr)
	if err != nil {
		in.reporter.Report(err)
		return
	}
	fmt.Fprintln(output, Stringify(val))
}

// Evaluate walks the tree and returns its value. The tree is never modified.
func (in *Interpreter) Evaluate(expr Expr) (Value, error) {
	ev := &evaluator{maxDepth: in.maxEvalDepth}
	return ev.eval(expr)
}

// evaluator implements ExprVisitor for a single evaluation.
type evaluator struct {
	depth    int
	maxDepth int
}

func (ev *evaluator) eval(expr Expr) (Value, error) {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > ev.maxDepth {
		return nil, NewTypeError(TooDeepTree, exprToken(expr))
	}

	val, err := expr.Accept(ev)
	if err != nil {
		return nil, err
	}
	return val.(Value), nil
}

func (ev *evaluator) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if expr.Value == nil {
		return Nil, nil
	}
	return expr.Value, nil
}

func (ev *evaluator) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return ev.eval(expr.Expression)
}

func (ev *evaluator) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprVal, err := ev.eval(expr.Expression)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		if b, ok := exprVal.(BoolValue); ok {
			return !b, nil
		}
		return nil, NewTypeError(ExpectedBoolean, expr.Op)
	case MINUS:
		if n, ok := exprVal.(NumberValue); ok {
			return -n, nil
		}
		return nil, NewTypeError(ExpectedNumber, expr.Op)
	}
	return nil, NewTypeError(UnsupportedOperator, expr.Op)
}

// VisitBinaryExpr evaluates both operands, left first, then dispatches on
// the pair of their kinds. The left spine of a chain such as 1 + 2 + 3 is
// folded in a loop, so only nesting on the right adds to the depth.
func (ev *evaluator) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	spine := []*BinaryExpr{expr}
	for {
		left, ok := spine[len(spine)-1].Left.(*BinaryExpr)
		if !ok {
			break
		}
		spine = append(spine, left)
	}

	acc, err := ev.eval(spine[len(spine)-1].Left)
	if err != nil {
		return nil, err
	}
	for i := len(spine) - 1; i >= 0; i-- {
		rhs, err := ev.eval(spine[i].Right)
		if err != nil {
			return nil, err
		}
		if acc, err = binary(spine[i].Op, acc, rhs); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func binary(op *Token, lhs, rhs Value) (Value, error) {
	if lhs.Kind() == NilKind || rhs.Kind() == NilKind {
		return nil, NewTypeError(NilOperand, op)
	}

	switch l := lhs.(type) {
	case NumberValue:
		if r, ok := rhs.(NumberValue); ok {
			return numberBinary(op, l, r)
		}
	case BoolValue:
		if r, ok := rhs.(BoolValue); ok {
			return boolBinary(op, l, r)
		}
	case StringValue:
		if r, ok := rhs.(StringValue); ok {
			return stringBinary(op, l, r)
		}
	default:
		panic(fmt.Sprintf("unreachable: unknown value kind %s", lhs.Kind()))
	}
	return nil, NewTypeError(MismatchedOperands, op)
}

func numberBinary(op *Token, l, r NumberValue) (Value, error) {
	switch op.Typ {
	case EQUAL_EQUAL:
		return BoolValue(l == r), nil
	case BANG_EQUAL:
		return BoolValue(l != r), nil
	case GREATER:
		return BoolValue(l > r), nil
	case GREATER_EQUAL:
		return BoolValue(l >= r), nil
	case LESS:
		return BoolValue(l < r), nil
	case LESS_EQUAL:
		return BoolValue(l <= r), nil
	case PLUS:
		return l + r, nil
	case MINUS:
		return l - r, nil
	case STAR:
		return l * r, nil
	case SLASH:
		return l / r, nil
	}
	return nil, NewTypeError(UnsupportedOperator, op)
}

func boolBinary(op *Token, l, r BoolValue) (Value, error) {
	switch op.Typ {
	case EQUAL_EQUAL:
		return BoolValue(l == r), nil
	case BANG_EQUAL:
		return BoolValue(l != r), nil
	}
	return nil, NewTypeError(UnsupportedOperator, op)
}

func stringBinary(op *Token, l, r StringValue) (Value, error) {
	switch op.Typ {
	case EQUAL_EQUAL:
		return BoolValue(l == r), nil
	case BANG_EQUAL:
		return BoolValue(l != r), nil
	case PLUS:
		return l + r, nil
	}
	return nil, NewTypeError(UnsupportedOperator, op)
}

// exprToken returns the operator of a node, if it has one.
func exprToken(expr Expr) *Token {
	switch e := expr.(type) {
	case *BinaryExpr:
		return e.Op
	case *UnaryExpr:
		return e.Op
	}
	return nil
}
