package lox

import (
	"fmt"
	"strconv"
)

// AstPrinter renders a tree in a parenthesized prefix form, e.g.
// `(* (- 123) (group 45.67))`.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return printer.parenthesize("group", expr.Expression), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if s, ok := expr.Value.(StringValue); ok {
		return strconv.Quote(string(s)), nil
	}
	return Stringify(expr.Value), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Expression), nil
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	s := "(" + name
	for _, expr := range exprs {
		s += " " + printer.Print(expr)
	}
	return s + ")"
}
