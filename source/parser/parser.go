package parser

import (
	"fmt"

	"github.com/sneedlang/sneed/source/ast"
	"github.com/sneedlang/sneed/source/lexer"
	"github.com/sneedlang/sneed/source/settings"
	"github.com/sneedlang/sneed/source/token"
)

type TokenSupplier interface{ NextToken() token.Token }

// String dumps the tokens of a supplier, one to a line.
func String(t TokenSupplier) string {
	result := ""
	for tok := t.NextToken(); tok.Type != token.EOF; tok = t.NextToken() {
		result = result + fmt.Sprintf("%+v\n", tok)
	}
	return result
}

// Error is a syntax error. There is at most one per parse: we stop at the first.
type Error struct {
	Source string
	Line   int
	Col    int
	Msg    string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: error: %s", e.Source, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Source, e.Line, e.Col, e.Msg)
}

type Parser struct {
	tokens    TokenSupplier
	source    string
	curToken  token.Token
	peekToken token.Token
}

func New(source string, tokens TokenSupplier) *Parser {
	p := &Parser{tokens: tokens, source: source}
	p.NextToken()
	p.NextToken()
	return p
}

func (p *Parser) NextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.tokens.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// Parse reads everything the lexer has to give as a sequence of top-level forms.
func Parse(source, input string) (*ast.Root, error) {
	p := New(source, lexer.NewLexer(source, input))
	root, err := p.ParseRoot()
	if err != nil {
		return nil, err
	}
	if settings.SHOW_PARSER {
		fmt.Println(root.String())
	}
	return root, nil
}

func (p *Parser) ParseRoot() (*ast.Root, error) {
	root := &ast.Root{Token: p.curToken}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.RPAREN) || p.curTokenIs(token.RBRACE) {
			return nil, p.throw(p.curToken, "unexpected %q", p.curToken.Literal)
		}
		form, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		root.Forms = append(root.Forms, form)
	}
	return root, nil
}

// parseExpression parses the expression starting at the current token and leaves
// the parser on the token after it.
func (p *Parser) parseExpression() (ast.Node, error) {
	tok := p.curToken
	switch tok.Type {
	case token.NUMBER:
		p.NextToken()
		return &ast.NumberLiteral{Token: tok, Value: tok.Literal}, nil
	case token.STRING:
		p.NextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
	case token.SYMBOL:
		p.NextToken()
		return &ast.Symbol{Token: tok, Value: tok.Literal}, nil
	case token.COMMENT:
		p.NextToken()
		return &ast.Comment{Token: tok, Value: tok.Literal}, nil
	case token.LPAREN:
		cells, err := p.parseCells(tok)
		if err != nil {
			return nil, err
		}
		return &ast.SExpression{Token: tok, Cells: cells}, nil
	case token.LBRACE:
		cells, err := p.parseCells(tok)
		if err != nil {
			return nil, err
		}
		return &ast.QExpression{Token: tok, Cells: cells}, nil
	case token.ILLEGAL:
		return nil, p.throw(tok, "%s", tok.Literal)
	case token.EOF:
		return nil, p.throw(tok, "unexpected end of input")
	}
	return nil, p.throw(tok, "unexpected %q", tok.Literal)
}

// parseCells parses the contents of a list up to and including the closing delimiter.
func (p *Parser) parseCells(open token.Token) ([]ast.Node, error) {
	closer := token.Closer(open.Type)
	cells := []ast.Node{}
	p.NextToken()
	for !p.curTokenIs(closer) {
		switch p.curToken.Type {
		case token.EOF:
			return nil, p.throw(p.curToken, "expected %q to close %q opened at line %d, column %d",
				string(closer), open.Literal, open.Line, open.ChStart+1)
		case token.RPAREN, token.RBRACE:
			return nil, p.throw(p.curToken, "expected %q but got %q", string(closer), p.curToken.Literal)
		}
		cell, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	p.NextToken()
	return cells, nil
}

// Columns are reported counting from 1.
func (p *Parser) throw(tok token.Token, format string, args ...any) error {
	return &Error{Source: p.source, Line: tok.Line, Col: tok.ChStart + 1, Msg: fmt.Sprintf(format, args...)}
}
