package lox

// Parser composes the syntax tree for the Lox language from the sequence of
// valid tokens that follow the following grammar rule.
//
// Grammar
//
//	expression --> equality ;
//	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
//	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
//	term       --> factor ( ( "-" | "+" ) factor )* ;
//	factor     --> unary ( ( "/" | "*" ) unary )* ;
//	unary      --> ( "!" | "-" ) unary
//	             | primary ;
//	primary    --> NUMBER | STRING
//	             | "true" | "false" | "nil"
//	             | "(" expression ")" ;
//
// The whole token sequence must be a single expression followed by EOF.
type Parser struct {
	current    int
	depth      int
	maxNesting int
	tokens     []*Token
	reporter   Reporter
}

// NewParser creates a new parser for the Lox language. A sequence that does
// not end with EOF gets one appended.
func NewParser(tokens []*Token, reporter Reporter, opts *Options) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Typ != EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], NewToken(EOF, "", nil, line))
	}
	o := opts.normalize()
	return &Parser{
		tokens:     tokens,
		reporter:   reporter,
		maxNesting: o.MaxNesting,
	}
}

// Parse returns the expression tree, or nil after reporting the first syntax
// error.
func (parser *Parser) Parse() Expr {
	expr, err := parser.ParseExpr()
	if err != nil {
		parser.reporter.Report(err)
		return nil
	}
	return expr
}

// ParseExpr is Parse without the reporter: it stops at the first syntax
// error and returns it.
func (parser *Parser) ParseExpr() (Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, NewSyntaxError(TrailingInput, parser.peek())
	}
	return expr, nil
}

// expression --> equality ;
func (parser *Parser) expression() (Expr, error) {
	return parser.equality()
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `comparison` if does not hits "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binary(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binary(parser.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.binary(parser.factor, MINUS, PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	return parser.binary(parser.unary, SLASH, STAR)
}

// binary folds `operand ( op operand )*` into a left-associative chain.
func (parser *Parser) binary(operand func() (Expr, error), ops ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(ops...) {
		op := parser.prev()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary | primary ;
func (parser *Parser) unary() (Expr, error) {
	if !parser.match(BANG, MINUS) {
		return parser.primary()
	}
	op := parser.prev()
	if err := parser.nest(op); err != nil {
		return nil, err
	}
	defer parser.unnest()

	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	return NewUnaryExpr(op, expr), nil
}

// primary --> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE) {
		return NewLiteralExpr(BoolValue(false)), nil
	}
	if parser.match(TRUE) {
		return NewLiteralExpr(BoolValue(true)), nil
	}
	if parser.match(NIL) {
		return NewLiteralExpr(Nil), nil
	}
	if parser.match(NUMBER) {
		n, ok := parser.prev().Literal.(float64)
		if !ok {
			return nil, NewSyntaxError(InvalidLiteral, parser.prev())
		}
		return NewLiteralExpr(NumberValue(n)), nil
	}
	if parser.match(STRING) {
		s, ok := parser.prev().Literal.(string)
		if !ok {
			return nil, NewSyntaxError(InvalidLiteral, parser.prev())
		}
		return NewLiteralExpr(StringValue(s)), nil
	}
	if parser.match(LEFT_PAREN) {
		if err := parser.nest(parser.prev()); err != nil {
			return nil, err
		}
		defer parser.unnest()

		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(RIGHT_PAREN, UnclosedGrouping); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	}
	return nil, NewSyntaxError(ExpectedExpression, parser.peek())
}

// nest records one more level of recursion and fails once it goes past the
// configured limit.
func (parser *Parser) nest(at *Token) error {
	parser.depth++
	if parser.depth > parser.maxNesting {
		parser.depth--
		return NewSyntaxError(TooDeepNesting, at)
	}
	return nil
}

func (parser *Parser) unnest() {
	parser.depth--
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, kind SyntaxErrorKind) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewSyntaxError(kind, parser.peek())
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
