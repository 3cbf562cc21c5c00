package lox

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{[]*Token{
			NewToken(NUMBER, "3.14", 3.14, 1),
			tokEOF(1),
		},
			NewLiteralExpr(NumberValue(3.14))},

		{[]*Token{
			NewToken(STRING, "\"a string\"", "a string", 1),
			tokEOF(1),
		},
			NewLiteralExpr(StringValue("a string"))},

		{[]*Token{
			NewToken(TRUE, "true", nil, 1),
			tokEOF(1),
		},
			NewLiteralExpr(BoolValue(true))},

		{[]*Token{
			NewToken(FALSE, "false", nil, 1),
			tokEOF(1),
		},
			NewLiteralExpr(BoolValue(false))},

		{[]*Token{
			NewToken(NIL, "nil", nil, 1),
			tokEOF(1),
		},
			NewLiteralExpr(Nil)},

		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "3.14", 3.14, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			tokEOF(1),
		},
			NewGroupingExpr(NewLiteralExpr(NumberValue(3.14)))},

		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NIL, "nil", nil, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			tokEOF(1),
		},
			NewGroupingExpr(NewGroupingExpr(NewLiteralExpr(Nil)))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		parse := NewParser(tc.toks, report, nil)
		expr := parse.Parse()

		assert.False(report.HadError())
		assert.Equal(tc.expr, expr)
	}
}

func TestParseUnary(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{[]*Token{
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3.14", 3.14, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewLiteralExpr(NumberValue(3.14))),
		},
		{[]*Token{
			NewToken(BANG, "!", nil, 1),
			NewToken(TRUE, "true", nil, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(BANG, "!", nil, 1),
				NewLiteralExpr(BoolValue(true))),
		},
		{[]*Token{
			NewToken(MINUS, "-", nil, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3.14", 3.14, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(NumberValue(3.14)))),
		},
		{[]*Token{
			NewToken(BANG, "!", nil, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(TRUE, "true", nil, 1),
			tokEOF(1),
		},
			NewUnaryExpr(
				NewToken(BANG, "!", nil, 1),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(BoolValue(true)))),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		parse := NewParser(tc.toks, report, nil)
		expr := parse.Parse()

		assert.False(report.HadError())
		assert.Equal(tc.expr, expr)
	}
}

func TestParseLeftAssociative(t *testing.T) {
	ops := []struct {
		typ    TokenType
		lexeme string
	}{
		{EQUAL_EQUAL, "=="},
		{BANG_EQUAL, "!="},
		{GREATER, ">"},
		{GREATER_EQUAL, ">="},
		{LESS, "<"},
		{LESS_EQUAL, "<="},
		{MINUS, "-"},
		{PLUS, "+"},
		{SLASH, "/"},
		{STAR, "*"},
	}

	assert := assert.New(t)
	for _, op := range ops {
		toks := []*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(op.typ, op.lexeme, nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			NewToken(op.typ, op.lexeme, nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			tokEOF(1),
		}
		want := NewBinaryExpr(
			NewToken(op.typ, op.lexeme, nil, 1),
			NewBinaryExpr(
				NewToken(op.typ, op.lexeme, nil, 1),
				NewLiteralExpr(NumberValue(1)),
				NewLiteralExpr(NumberValue(2))),
			NewLiteralExpr(NumberValue(3)))

		report := newMockReporter()
		expr := NewParser(toks, report, nil).Parse()

		assert.False(report.HadError(), op.lexeme)
		assert.Equal(want, expr, op.lexeme)
	}
}

func TestParseOpPrecedence(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{[]*Token{
			NewToken(NUMBER, "2", 2.0, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 1),
				NewLiteralExpr(NumberValue(2)),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(NumberValue(3)))),
		},
		{[]*Token{
			NewToken(NUMBER, "6", 6.0, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewLiteralExpr(NumberValue(6)),
				NewBinaryExpr(
					NewToken(STAR, "*", nil, 1),
					NewLiteralExpr(NumberValue(3)),
					NewLiteralExpr(NumberValue(2)))),
		},
		{[]*Token{
			NewToken(NUMBER, "2", 2.0, 1),
			NewToken(LESS, "<", nil, 1),
			NewToken(NUMBER, "6", 6.0, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewToken(LESS, "<", nil, 1),
				NewLiteralExpr(NumberValue(2)),
				NewBinaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(NumberValue(6)),
					NewLiteralExpr(NumberValue(3)))),
		},
		{[]*Token{
			NewToken(FALSE, "false", nil, 1),
			NewToken(EQUAL_EQUAL, "==", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(LESS, "<", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewToken(EQUAL_EQUAL, "==", nil, 1),
				NewLiteralExpr(BoolValue(false)),
				NewBinaryExpr(
					NewToken(LESS, "<", nil, 1),
					NewLiteralExpr(NumberValue(3)),
					NewLiteralExpr(NumberValue(2)))),
		},
		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "6", 6.0, 1),
			NewToken(MINUS, "-", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 1),
				NewGroupingExpr(
					NewBinaryExpr(
						NewToken(MINUS, "-", nil, 1),
						NewLiteralExpr(NumberValue(6)),
						NewLiteralExpr(NumberValue(3)))),
				NewLiteralExpr(NumberValue(2))),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		parse := NewParser(tc.toks, report, nil)
		expr := parse.Parse()

		assert.False(report.HadError())
		assert.Equal(tc.expr, expr)
	}
}

func TestParseWithErrors(t *testing.T) {
	testCases := []struct {
		toks   []*Token
		errors []error
	}{
		{[]*Token{
			tokEOF(1),
		},
			[]error{NewSyntaxError(ExpectedExpression, tokEOF(1))}},
		{[]*Token{
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			NewToken(PLUS, "+", nil, 1),
			NewToken(NUMBER, "3", 3.0, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			tokEOF(1),
		},
			[]error{NewSyntaxError(UnclosedGrouping, tokEOF(1))}},
		{[]*Token{
			NewToken(STAR, "*", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			[]error{NewSyntaxError(ExpectedExpression, NewToken(STAR, "*", nil, 1))}},
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(STAR, "*", nil, 1),
			NewToken(PLUS, "+", nil, 1),
			NewToken(NUMBER, "2", 2.0, 1),
			tokEOF(1),
		},
			[]error{NewSyntaxError(ExpectedExpression, NewToken(PLUS, "+", nil, 1))}},
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(NUMBER, "2", 2.0, 2),
			tokEOF(2),
		},
			[]error{NewSyntaxError(TrailingInput, NewToken(NUMBER, "2", 2.0, 2))}},
		{[]*Token{
			NewToken(IDENTIFIER, "a", nil, 3),
			tokEOF(3),
		},
			[]error{NewSyntaxError(ExpectedExpression, NewToken(IDENTIFIER, "a", nil, 3))}},
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			tokEOF(1),
		},
			[]error{NewSyntaxError(TrailingInput, NewToken(RIGHT_PAREN, ")", nil, 1))}},
		{[]*Token{
			NewToken(NUMBER, "1", nil, 1),
			tokEOF(1),
		},
			[]error{NewSyntaxError(InvalidLiteral, NewToken(NUMBER, "1", nil, 1))}},
		{[]*Token{
			NewToken(NUMBER, "1", 1.0, 1),
			NewToken(PLUS, "+", nil, 1),
			NewToken(STRING, "\"a\"", 7, 1),
			tokEOF(1),
		},
			[]error{NewSyntaxError(InvalidLiteral, NewToken(STRING, "\"a\"", 7, 1))}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		var out strings.Builder
		report := NewSimpleReporter(&out)
		parse := NewParser(tc.toks, report, nil)
		expr := parse.Parse()

		var messages []string
		for _, e := range tc.errors {
			messages = append(messages, e.Error())
		}

		assert.Nil(expr)
		assert.Equal(fmt.Sprintf("%s\n", strings.Join(messages, "\n")), out.String())
		assert.True(report.HadError())
		assert.False(report.HadRuntimeError())
	}
}

func TestParseErrorMessages(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(
		"[line 1] Error at end: Expect ')' after expression.",
		NewSyntaxError(UnclosedGrouping, tokEOF(1)).Error(),
	)
	assert.Equal(
		"[line 2] Error at '2': Expect end of expression.",
		NewSyntaxError(TrailingInput, NewToken(NUMBER, "2", 2.0, 2)).Error(),
	)
	assert.Equal(
		"[line 1] Error at '\"a\"': Invalid literal.",
		NewSyntaxError(InvalidLiteral, NewToken(STRING, "\"a\"", nil, 1)).Error(),
	)
}

func TestParseNestingLimit(t *testing.T) {
	testCases := []struct {
		src  string
		kind SyntaxErrorKind
		ok   bool
	}{
		{strings.Repeat("(", 4) + "1" + strings.Repeat(")", 4), 0, true},
		{strings.Repeat("(", 5) + "1" + strings.Repeat(")", 5), TooDeepNesting, false},
		{strings.Repeat("-", 4) + "1", 0, true},
		{strings.Repeat("-", 5) + "1", TooDeepNesting, false},
		{"(-(-1))", 0, true},
		{"(-(-(1)))", TooDeepNesting, false},
		{"(1) + (2) + (3) + (4) + (5) + (6)", 0, true},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		toks := NewScanner([]rune(tc.src), report).Scan()
		expr, err := NewParser(toks, report, &Options{MaxNesting: 4}).ParseExpr()
		if tc.ok {
			assert.NoError(err, tc.src)
			assert.NotNil(expr, tc.src)
			continue
		}
		var syntaxErr *SyntaxError
		assert.ErrorAs(err, &syntaxErr, tc.src)
		assert.Equal(tc.kind, syntaxErr.Kind, tc.src)
		assert.Nil(expr, tc.src)
	}
}

func TestParseDeepInputDoesNotCrash(t *testing.T) {
	src := strings.Repeat("(", 100000) + "1" + strings.Repeat(")", 100000)
	report := newMockReporter()
	toks := NewScanner([]rune(src), report).Scan()
	_, err := NewParser(toks, report, nil).ParseExpr()

	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseAppendsMissingEOF(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	expr := NewParser(nil, report, nil).Parse()
	assert.Nil(expr)
	assert.Equal([]error{NewSyntaxError(ExpectedExpression, tokEOF(1))}, report.errors)

	report = newMockReporter()
	expr = NewParser([]*Token{NewToken(NUMBER, "7", 7.0, 3)}, report, nil).Parse()
	assert.False(report.HadError())
	assert.Equal(NewLiteralExpr(NumberValue(7)), expr)
}
