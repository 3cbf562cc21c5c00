package lox

import (
	"errors"
	"fmt"
)

var (
	// ErrLex is the stage sentinel of every LexError.
	ErrLex = errors.New("lex error")

	// ErrSyntax is the stage sentinel of every SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrType is the stage sentinel of every TypeError.
	ErrType = errors.New("type error")
)

// LexErrorKind enumerates the failures of the scanner.
type LexErrorKind uint8

const (
	UnterminatedString LexErrorKind = iota
	InvalidNumber
	UnexpectedCharacter
)

func (k LexErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidNumber:
		return "InvalidNumber"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	}
	return fmt.Sprintf("LexErrorKind(%d)", uint8(k))
}

// LexError wraps the error message returned by the scanner with additional
// information on where the error occured.
type LexError struct {
	Kind   LexErrorKind
	Line   int
	Lexeme string
}

// NewLexError creates a new scanner error
func NewLexError(kind LexErrorKind, line int, lexeme string) *LexError {
	return &LexError{kind, line, lexeme}
}

func (err *LexError) Error() string {
	var message string
	switch err.Kind {
	case UnterminatedString:
		message = "Unterminated string."
	case InvalidNumber:
		message = fmt.Sprintf("Invalid number '%s'.", err.Lexeme)
	default:
		message = fmt.Sprintf("Unexpected character '%s'.", err.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error: %s", err.Line, message)
}

func (err *LexError) Unwrap() error {
	return ErrLex
}

// SyntaxErrorKind enumerates the failures of the parser.
type SyntaxErrorKind uint8

const (
	ExpectedExpression SyntaxErrorKind = iota
	UnclosedGrouping
	TrailingInput
	TooDeepNesting
	InvalidLiteral
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case ExpectedExpression:
		return "ExpectedExpression"
	case UnclosedGrouping:
		return "UnclosedGrouping"
	case TrailingInput:
		return "TrailingInput"
	case TooDeepNesting:
		return "TooDeepNesting"
	case InvalidLiteral:
		return "InvalidLiteral"
	}
	return fmt.Sprintf("SyntaxErrorKind(%d)", uint8(k))
}

// SyntaxError carries the token at which the parser gave up.
type SyntaxError struct {
	Kind  SyntaxErrorKind
	Token *Token
}

// NewSyntaxError creates a new parser error
func NewSyntaxError(kind SyntaxErrorKind, token *Token) *SyntaxError {
	return &SyntaxError{kind, token}
}

func (err *SyntaxError) message() string {
	switch err.Kind {
	case ExpectedExpression:
		return "Expect expression."
	case UnclosedGrouping:
		return "Expect ')' after expression."
	case TrailingInput:
		return "Expect end of expression."
	case InvalidLiteral:
		return "Invalid literal."
	default:
		return "Expression nesting too deep."
	}
}

func (err *SyntaxError) Error() string {
	if err.Token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.Token.Line,
			err.message(),
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.Token.Line,
		err.Token.Lexeme,
		err.message(),
	)
}

func (err *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// TypeErrorKind enumerates the failures of the evaluator.
type TypeErrorKind uint8

const (
	ExpectedNumber TypeErrorKind = iota
	ExpectedBoolean
	NilOperand
	UnsupportedOperator
	MismatchedOperands
	TooDeepTree
)

func (k TypeErrorKind) String() string {
	switch k {
	case ExpectedNumber:
		return "ExpectedNumber"
	case ExpectedBoolean:
		return "ExpectedBoolean"
	case NilOperand:
		return "NilOperand"
	case UnsupportedOperator:
		return "UnsupportedOperator"
	case MismatchedOperands:
		return "MismatchedOperands"
	case TooDeepTree:
		return "TooDeepTree"
	}
	return fmt.Sprintf("TypeErrorKind(%d)", uint8(k))
}

// TypeError is raised while evaluating an operator whose operands do not
// have the required types. Token is the operator.
type TypeError struct {
	Kind  TypeErrorKind
	Token *Token
}

// NewTypeError creates a new evaluation error
func NewTypeError(kind TypeErrorKind, token *Token) *TypeError {
	return &TypeError{kind, token}
}

func (err *TypeError) message() string {
	switch err.Kind {
	case ExpectedNumber:
		return "Operand must be a number."
	case ExpectedBoolean:
		return "Operand must be a boolean."
	case NilOperand:
		return fmt.Sprintf("Operator '%s' is not defined on nil.", err.Token.Lexeme)
	case UnsupportedOperator:
		return fmt.Sprintf("Operator '%s' is not supported for these operands.", err.Token.Lexeme)
	case MismatchedOperands:
		return "Operands must be two numbers, two booleans or two strings."
	default:
		return "Expression too deep to evaluate."
	}
}

func (err *TypeError) Error() string {
	line := 0
	if err.Token != nil {
		line = err.Token.Line
	}
	return fmt.Sprintf("%s\n[line %d]", err.message(), line)
}

func (err *TypeError) Unwrap() error {
	return ErrType
}
