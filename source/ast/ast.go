package ast

import (
	"bytes"

	"github.com/sneedlang/sneed/source/token"
)

// The base Node interface
type Node interface {
	Children() []Node
	GetToken() *token.Token
	String() string
}

// Nodes in alphabetical order.

type Comment struct {
	Token token.Token
	Value string
}

func (c *Comment) Children() []Node       { return []Node{} }
func (c *Comment) GetToken() *token.Token { return &c.Token }
func (c *Comment) String() string         { return c.Value }

type NumberLiteral struct {
	Token token.Token
	Value string // As written. Whether it fits in a number is for the reader to find out.
}

func (nl *NumberLiteral) Children() []Node       { return []Node{} }
func (nl *NumberLiteral) GetToken() *token.Token { return &nl.Token }
func (nl *NumberLiteral) String() string         { return nl.Value }

// A QExpression is the braced list { ... }.
type QExpression struct {
	Token token.Token // The opening brace.
	Cells []Node
}

func (qe *QExpression) Children() []Node       { return qe.Cells }
func (qe *QExpression) GetToken() *token.Token { return &qe.Token }
func (qe *QExpression) String() string         { return writeCells("{", qe.Cells, "}") }

// A Root holds the top-level forms of a line or a file.
type Root struct {
	Token token.Token
	Forms []Node
}

func (r *Root) Children() []Node       { return r.Forms }
func (r *Root) GetToken() *token.Token { return &r.Token }
func (r *Root) String() string         { return writeCells("", r.Forms, "") }

// An SExpression is the parenthesized list ( ... ).
type SExpression struct {
	Token token.Token // The opening parenthesis.
	Cells []Node
}

func (se *SExpression) Children() []Node       { return se.Cells }
func (se *SExpression) GetToken() *token.Token { return &se.Token }
func (se *SExpression) String() string         { return writeCells("(", se.Cells, ")") }

type StringLiteral struct {
	Token token.Token
	Value string // As written, with the quotes and with the escapes unresolved.
}

func (sl *StringLiteral) Children() []Node       { return []Node{} }
func (sl *StringLiteral) GetToken() *token.Token { return &sl.Token }
func (sl *StringLiteral) String() string         { return sl.Value }

type Symbol struct {
	Token token.Token
	Value string
}

func (s *Symbol) Children() []Node       { return []Node{} }
func (s *Symbol) GetToken() *token.Token { return &s.Token }
func (s *Symbol) String() string         { return s.Value }

// Comments are left out of the string, so that it reads back as the same program.
func writeCells(left string, cells []Node, right string) string {
	var out bytes.Buffer
	out.WriteString(left)
	sep := ""
	for _, c := range cells {
		if _, ok := c.(*Comment); ok {
			continue
		}
		out.WriteString(sep)
		out.WriteString(c.String())
		sep = " "
	}
	out.WriteString(right)
	return out.String()
}
