package lox

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line     int
	start    int
	current  int
	source   []rune
	tokens   []*Token
	reporter Reporter
}

// NewScanner creates a new Lox token scanner
func NewScanner(source []rune, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. Lexical errors are sent to the reporter and scanning carries on
// with the next character.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '{':
			scanner.addToken(LEFT_BRACE, nil)
		case '}':
			scanner.addToken(RIGHT_BRACE, nil)
		case ',':
			scanner.addToken(COMMA, nil)
		case '.':
			scanner.addToken(DOT, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case ';':
			scanner.addToken(SEMICOLON, nil)
		case '*':
			scanner.addToken(STAR, nil)
		// Double character tokens
		case '!':
			scanner.addCompound('=', BANG_EQUAL, BANG)
		case '=':
			scanner.addCompound('=', EQUAL_EQUAL, EQUAL)
		case '<':
			scanner.addCompound('=', LESS_EQUAL, LESS)
		case '>':
			scanner.addCompound('=', GREATER_EQUAL, GREATER)
		// Long lexemes
		case '/':
			if scanner.match('/') {
				scanner.skipComment()
			} else {
				scanner.addToken(SLASH, nil)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(
					NewLexError(UnexpectedCharacter, scanner.line, string(r)),
				)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, scanner.line),
	)
	return scanner.tokens
}

// addCompound emits `long` when the next rune is `next`, otherwise `short`.
func (scanner *Scanner) addCompound(next rune, long, short TokenType) {
	if scanner.match(next) {
		scanner.addToken(long, nil)
	} else {
		scanner.addToken(short, nil)
	}
}

// skipComment discards the rest of the line, including its '\n'.
func (scanner *Scanner) skipComment() {
	for scanner.hasNext() {
		if scanner.advance() == '\n' {
			scanner.line++
			return
		}
	}
}

func (scanner *Scanner) scanString() {
	startLine := scanner.line
	var literal strings.Builder
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		r := scanner.advance()
		switch {
		case r == '\n':
			scanner.line++
			literal.WriteRune(r)
		case r == '\\' && scanner.hasNext():
			scanner.unescape(&literal)
		default:
			literal.WriteRune(r)
		}
	}

	if !scanner.hasNext() {
		scanner.reporter.Report(
			NewLexError(UnterminatedString, startLine, ""),
		)
		return
	}
	// consume '"'
	scanner.advance()
	tok := NewToken(
		STRING,
		string(scanner.source[scanner.start:scanner.current]),
		literal.String(),
		startLine,
	)
	scanner.tokens = append(scanner.tokens, tok)
}

// unescape writes the rune following a backslash. Unknown escapes are kept
// verbatim.
func (scanner *Scanner) unescape(literal *strings.Builder) {
	switch r := scanner.advance(); r {
	case '"', '\\':
		literal.WriteRune(r)
	case 'n':
		literal.WriteRune('\n')
	case 't':
		literal.WriteRune('\t')
	default:
		if r == '\n' {
			scanner.line++
		}
		literal.WriteRune('\\')
		literal.WriteRune(r)
	}
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		// go through continuous digits
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// out of range digit runs become +Inf, which ParseFloat already returns
	literal, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		scanner.reporter.Report(
			NewLexError(InvalidNumber, scanner.line, lexeme),
		)
		return
	}
	scanner.addToken(NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType, nil)
	} else {
		scanner.addToken(IDENTIFIER, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
