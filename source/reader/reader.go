package reader

import (
	"fmt"
	"strconv"

	"github.com/sneedlang/sneed/source/ast"
	"github.com/sneedlang/sneed/source/err"
	"github.com/sneedlang/sneed/source/settings"
	"github.com/sneedlang/sneed/source/text"
	"github.com/sneedlang/sneed/source/values"
)

// Read turns a syntax tree into the value it denotes. The root and S-expressions
// become S-expressions, braces become Q-expressions, and comments are dropped. A
// number literal that won't fit in a number becomes an error value in its place;
// nothing else can go wrong.
func Read(node ast.Node) *values.Value {
	result := read(node)
	if settings.SHOW_READER {
		fmt.Println(result.String())
	}
	return result
}

func read(node ast.Node) *values.Value {
	switch node := node.(type) {
	case *ast.NumberLiteral:
		return readNumber(node.Value)
	case *ast.StringLiteral:
		return values.Str(text.Unescape(node.Value[1 : len(node.Value)-1]))
	case *ast.Symbol:
		return values.Sym(node.Value)
	case *ast.Root:
		return readCells(values.Sexpr(), node.Forms)
	case *ast.SExpression:
		return readCells(values.Sexpr(), node.Cells)
	case *ast.QExpression:
		return readCells(values.Qexpr(), node.Cells)
	}
	panic(fmt.Sprintf("reader: can't read node of type %T", node))
}

func readNumber(lit string) *values.Value {
	x, e := strconv.ParseInt(lit, 10, 64)
	if e != nil {
		return err.CreateErr("read/number", lit)
	}
	return values.Num(x)
}

func readCells(list *values.Value, cells []ast.Node) *values.Value {
	for _, cell := range cells {
		if _, ok := cell.(*ast.Comment); ok {
			continue
		}
		list.Add(read(cell))
	}
	return list
}
