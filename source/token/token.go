package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	NUMBER  = "number"
	STRING  = "string"
	SYMBOL  = "symbol"
	COMMENT = "comment"

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Source  string
}

// Closer gives the delimiter that closes an opening delimiter.
func Closer(t TokenType) TokenType {
	switch t {
	case LPAREN:
		return RPAREN
	case LBRACE:
		return RBRACE
	}
	return ILLEGAL
}
