package lexer

import (
	"fmt"
	"strings"

	"github.com/sneedlang/sneed/source/settings"
	"github.com/sneedlang/sneed/source/token"
)

// Lexer turns source text into tokens. Malformed input gives an ILLEGAL token whose
// literal describes the problem.
type Lexer struct {
	runes  *RuneSupplier
	source string
	lineNo int
	tstart int
}

func NewLexer(source, input string) *Lexer {
	return &Lexer{runes: NewRuneSupplier([]rune(input)), source: source, lineNo: 1}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.lineNo, l.tstart = l.runes.Position()
	ch := l.runes.CurrentRune()
	switch {
	case l.runes.AtEnd():
		return l.MakeToken(token.EOF, "")
	case ch == '(':
		return l.NewToken(token.LPAREN, "(")
	case ch == ')':
		return l.NewToken(token.RPAREN, ")")
	case ch == '{':
		return l.NewToken(token.LBRACE, "{")
	case ch == '}':
		return l.NewToken(token.RBRACE, "}")
	case ch == ';':
		return l.readComment()
	case ch == '"':
		return l.readString()
	case IsDigit(ch) || ch == '-' && IsDigit(l.runes.PeekRune()):
		return l.readNumber()
	case IsSymbolRune(ch):
		return l.readSymbol()
	}
	return l.NewToken(token.ILLEGAL, fmt.Sprintf("unexpected character %q", ch))
}

// A number is an optional minus sign and then as many digits as there are. It ends
// at the first non-digit even if that could continue a symbol, so "12ab" is the
// number 12 followed by the symbol ab.
func (l *Lexer) readNumber() token.Token {
	var lit strings.Builder
	if l.runes.CurrentRune() == '-' {
		lit.WriteRune('-')
		l.runes.Next()
	}
	for !l.runes.AtEnd() && IsDigit(l.runes.CurrentRune()) {
		lit.WriteRune(l.runes.CurrentRune())
		l.runes.Next()
	}
	return l.MakeToken(token.NUMBER, lit.String())
}

func (l *Lexer) readSymbol() token.Token {
	var lit strings.Builder
	for !l.runes.AtEnd() && IsSymbolRune(l.runes.CurrentRune()) {
		lit.WriteRune(l.runes.CurrentRune())
		l.runes.Next()
	}
	return l.MakeToken(token.SYMBOL, lit.String())
}

// The literal of a string token is the text as written, quotes and escapes included.
func (l *Lexer) readString() token.Token {
	var lit strings.Builder
	lit.WriteRune('"')
	l.runes.Next()
	for !l.runes.AtEnd() {
		ch := l.runes.CurrentRune()
		lit.WriteRune(ch)
		l.runes.Next()
		switch ch {
		case '\\':
			if !l.runes.AtEnd() {
				lit.WriteRune(l.runes.CurrentRune())
				l.runes.Next()
			}
		case '"':
			return l.MakeToken(token.STRING, lit.String())
		}
	}
	return l.MakeToken(token.ILLEGAL, "unterminated string")
}

func (l *Lexer) readComment() token.Token {
	var lit strings.Builder
	for !l.runes.AtEnd() {
		ch := l.runes.CurrentRune()
		if ch == '\n' || ch == '\r' {
			break
		}
		lit.WriteRune(ch)
		l.runes.Next()
	}
	return l.MakeToken(token.COMMENT, lit.String())
}

func (l *Lexer) skipWhitespace() {
	for !l.runes.AtEnd() && IsWhitespace(l.runes.CurrentRune()) {
		l.runes.Next()
	}
}

// NewToken consumes the current rune and makes a token.
func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *Lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	if settings.SHOW_LEXER {
		fmt.Println(tokenType, st)
	}
	_, chNo := l.runes.Position()
	return token.Token{Type: tokenType, Literal: st, Source: l.source, Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo}
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// IsSymbolRune says whether ch can appear in a symbol.
func IsSymbolRune(ch rune) bool {
	return IsLetter(ch) || IsDigit(ch) || strings.ContainsRune(`_+-*/\=<>!&`, ch)
}

func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
