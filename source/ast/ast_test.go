package ast

import (
	"testing"
)

func TestString(t *testing.T) {
	tree := &Root{Forms: []Node{
		&Symbol{Value: "def"},
		&QExpression{Cells: []Node{&Symbol{Value: "x"}}},
		&Comment{Value: "; ignored"},
		&SExpression{Cells: []Node{
			&Symbol{Value: "+"},
			&NumberLiteral{Value: "-1"},
			&StringLiteral{Value: `"a\n"`},
		}},
		&SExpression{},
	}}
	want := `def {x} (+ -1 "a\n") ()`
	if got := tree.String(); got != want {
		t.Fatalf("wanted %s, got %s", want, got)
	}
	if len(tree.Children()) != 5 {
		t.Fatalf("wanted 5 children, got %d", len(tree.Children()))
	}
}
