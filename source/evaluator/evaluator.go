package evaluator

// This is basically your standard tree-walking evaluator. Values are owned by whoever
// holds them: Eval takes ownership of the value it is given and hands back one the
// caller owns.

import (
	"fmt"
	"io"

	"github.com/sneedlang/sneed/source/ast"
	"github.com/sneedlang/sneed/source/err"
	"github.com/sneedlang/sneed/source/parser"
	"github.com/sneedlang/sneed/source/reader"
	"github.com/sneedlang/sneed/source/settings"
	"github.com/sneedlang/sneed/source/values"
)

// Parser is what 'load' needs from the parser.
type Parser interface {
	ParseFile(path string) (*ast.Root, error)
}

// The evaluator itself is stateless, so the little state it needs is wrapped in a
// struct and passed around. Its bill of goods:
// * Out, where 'print' writes to and where 'load' reports errors.
// * The parser, for 'load'.
type Context struct {
	Out    io.Writer
	Parser Parser
}

func NewContext(out io.Writer, p Parser) *Context {
	return &Context{Out: out, Parser: p}
}

// Eval reduces v in env. Symbols are looked up, S-expressions are applied, and
// everything else evaluates to itself.
func (c *Context) Eval(env *values.Environment, v *values.Value) *values.Value {
	if settings.SHOW_EVALUATOR {
		fmt.Println("Evaluating", v.String())
	}
	switch v.T {
	case values.SYM:
		result, ok := env.Get(v.Sym)
		if !ok {
			return err.CreateErr("eval/sym/unbound", v.Sym)
		}
		return result
	case values.SEXPR:
		return c.evalSexpr(env, v)
	}
	return v
}

func (c *Context) evalSexpr(env *values.Environment, v *values.Value) *values.Value {
	for i, cell := range v.Cells {
		v.Cells[i] = c.Eval(env, cell)
		if v.Cells[i].T == values.ERR {
			// The children after the error are thrown away unevaluated.
			return v.Take(i)
		}
	}
	switch v.Len() {
	case 0:
		return v
	case 1:
		return v.Take(0)
	}
	fn := v.Pop(0)
	if fn.T != values.FUN {
		v.Delete()
		e := err.CreateErr("eval/sexpr/func", fn.TypeName())
		fn.Delete()
		return e
	}
	result := c.Call(env, fn, v)
	fn.Delete()
	return result
}

// EvalProgram evaluates each of the top-level forms of a program in env, in order,
// and returns the results. The program is consumed.
func (c *Context) EvalProgram(env *values.Environment, program *values.Value) []*values.Value {
	results := make([]*values.Value, 0, program.Len())
	for program.Len() > 0 {
		results = append(results, c.Eval(env, program.Pop(0)))
	}
	program.Delete()
	return results
}

// Do evaluates a line of input the way the REPL does: the whole line is one
// S-expression, so that '+ 1 2' means the same as '(+ 1 2)'. A line that doesn't
// parse gives the parser's error and is not evaluated.
func (c *Context) Do(env *values.Environment, source, line string) (*values.Value, error) {
	root, e := parser.Parse(source, line)
	if e != nil {
		return nil, e
	}
	return c.Eval(env, reader.Read(root)), nil
}
