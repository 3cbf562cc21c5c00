/*
Package lox scans, parses and evaluates Lox expressions.

Grammars

	expression --> equality ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> NUMBER | STRING
	             | "true" | "false" | "nil"
	             | "(" expression ")" ;

Each stage has its own error type. The scanner reports every *LexError and
keeps going, the parser stops at the first *SyntaxError and the evaluator
stops at the first *TypeError. Operators are only defined on operands of the
same kind:

	number  == != < <= > >= + - * /
	boolean == !=
	string  == != +

nil is not an operand of any binary operator, "-" needs a number and "!"
needs a boolean.
*/
package lox

//go:generate go run ../cmd/ast_codegen .
