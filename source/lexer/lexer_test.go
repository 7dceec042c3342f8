package lexer

import (
	"testing"

	"github.com/sneedlang/sneed/source/token"
)

func TestTokens(t *testing.T) {
	input := `(def {x} 42) ; the answer
{+ - -5 12ab "a \"quoted\" word"}
&xs`
	items := []testItem{
		{token.LPAREN, "(", 1},
		{token.SYMBOL, "def", 1},
		{token.LBRACE, "{", 1},
		{token.SYMBOL, "x", 1},
		{token.RBRACE, "}", 1},
		{token.NUMBER, "42", 1},
		{token.RPAREN, ")", 1},
		{token.COMMENT, "; the answer", 1},
		{token.LBRACE, "{", 2},
		{token.SYMBOL, "+", 2},
		{token.SYMBOL, "-", 2},
		{token.NUMBER, "-5", 2},
		{token.NUMBER, "12", 2},
		{token.SYMBOL, "ab", 2},
		{token.STRING, `"a \"quoted\" word"`, 2},
		{token.RBRACE, "}", 2},
		{token.SYMBOL, "&xs", 3},
		{token.EOF, "", 3},
	}
	testLexingString(t, input, items)
}

func TestIllegal(t *testing.T) {
	items := []testItem{
		{token.SYMBOL, "a", 1},
		{token.ILLEGAL, `unexpected character '#'`, 1},
		{token.SYMBOL, "b", 1},
		{token.ILLEGAL, "unterminated string", 1},
	}
	testLexingString(t, `a # b "oops`, items)
}

func TestStringsSpanLines(t *testing.T) {
	items := []testItem{
		{token.STRING, "\"one\ntwo\"", 1},
		{token.NUMBER, "3", 2},
	}
	testLexingString(t, "\"one\ntwo\" 3", items)
}

type testItem struct {
	expectedType    token.TokenType
	expectedLiteral string
	expectedLine    int
}

func testLexingString(t *testing.T, input string, items []testItem) {
	l := NewLexer("dummy source", input)
	for i, tt := range items {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q with literal %q, got=%q with literal %q",
				i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong. expected=%d, got=%d",
				i, tt.expectedLine, tok.Line)
		}
	}
}
