package evaluator

import (
	"strings"

	"github.com/JohnCGriffin/overflow"

	"github.com/sneedlang/sneed/source/err"
	"github.com/sneedlang/sneed/source/reader"
	"github.com/sneedlang/sneed/source/values"
)

// AddBuiltins binds the builtin functions in env. They are methods on the context so
// that 'print' and 'load' can get at the output and the parser.
func (c *Context) AddBuiltins(env *values.Environment) {
	def := &values.Builtin{Name: "def", Fn: c.builtinDef}
	for _, b := range []*values.Builtin{
		{Name: "list", Fn: c.builtinList},
		{Name: "head", Fn: c.builtinHead},
		{Name: "tail", Fn: c.builtinTail},
		{Name: "eval", Fn: c.builtinEval},
		{Name: "join", Fn: c.builtinJoin},

		{Name: "+", Fn: c.builtinAdd},
		{Name: "-", Fn: c.builtinSub},
		{Name: "*", Fn: c.builtinMul},
		{Name: "/", Fn: c.builtinDiv},

		{Name: `\`, Fn: c.builtinLambda},
		def,
		{Name: "=", Fn: c.builtinPut},

		{Name: ">", Fn: c.builtinGt},
		{Name: "<", Fn: c.builtinLt},
		{Name: ">=", Fn: c.builtinGe},
		{Name: "<=", Fn: c.builtinLe},
		{Name: "==", Fn: c.builtinEq},
		{Name: "!=", Fn: c.builtinNe},
		{Name: "if", Fn: c.builtinIf},

		{Name: "print", Fn: c.builtinPrint},
		{Name: "error", Fn: c.builtinError},
		{Name: "load", Fn: c.builtinLoad},
	} {
		env.Put(b.Name, values.Fun(b))
	}
	// The old spelling. It is the same builtin, so it compares equal to 'def'.
	env.Put("doh", values.Fun(def))
}

// Argument checks. Each returns nil if all is well, and otherwise deletes the
// arguments and returns the error.

func checkCount(name string, args *values.Value, n int) *values.Value {
	if args.Len() != n {
		e := err.CreateErr("built/args/count", name, args.Len(), n)
		args.Delete()
		return e
	}
	return nil
}

func checkType(name string, args *values.Value, i int, t values.ValueType) *values.Value {
	if args.Cells[i].T != t {
		e := err.CreateErr("built/args/type", name, i, args.Cells[i].TypeName(), values.TypeName(t))
		args.Delete()
		return e
	}
	return nil
}

func checkNotEmpty(name string, args *values.Value, i int) *values.Value {
	if args.Cells[i].Len() == 0 {
		e := err.CreateErr("built/args/empty", name, i)
		args.Delete()
		return e
	}
	return nil
}

func checkAll(checks ...func() *values.Value) *values.Value {
	for _, check := range checks {
		if e := check(); e != nil {
			return e
		}
	}
	return nil
}

func boolToNum(b bool) *values.Value {
	if b {
		return values.Num(1)
	}
	return values.Num(0)
}

// List operations.

func (c *Context) builtinList(env *values.Environment, args *values.Value) *values.Value {
	args.T = values.QEXPR
	return args
}

func (c *Context) builtinHead(env *values.Environment, args *values.Value) *values.Value {
	if e := c.checkOneList("head", args); e != nil {
		return e
	}
	v := args.Take(0)
	for v.Len() > 1 {
		v.Pop(1).Delete()
	}
	return v
}

func (c *Context) builtinTail(env *values.Environment, args *values.Value) *values.Value {
	if e := c.checkOneList("tail", args); e != nil {
		return e
	}
	v := args.Take(0)
	v.Pop(0).Delete()
	return v
}

func (c *Context) checkOneList(name string, args *values.Value) *values.Value {
	return checkAll(
		func() *values.Value { return checkCount(name, args, 1) },
		func() *values.Value { return checkType(name, args, 0, values.QEXPR) },
		func() *values.Value { return checkNotEmpty(name, args, 0) },
	)
}

func (c *Context) builtinEval(env *values.Environment, args *values.Value) *values.Value {
	if e := checkCount("eval", args, 1); e != nil {
		return e
	}
	if e := checkType("eval", args, 0, values.QEXPR); e != nil {
		return e
	}
	x := args.Take(0)
	x.T = values.SEXPR
	return c.Eval(env, x)
}

func (c *Context) builtinJoin(env *values.Environment, args *values.Value) *values.Value {
	for i := range args.Cells {
		if e := checkType("join", args, i, values.QEXPR); e != nil {
			return e
		}
	}
	if args.Len() == 0 {
		return values.Qexpr()
	}
	x := args.Pop(0)
	for args.Len() > 0 {
		x = values.Join(x, args.Pop(0))
	}
	args.Delete()
	return x
}

// Arithmetic.

func (c *Context) builtinAdd(env *values.Environment, args *values.Value) *values.Value {
	return c.arithmetic("+", args)
}

func (c *Context) builtinSub(env *values.Environment, args *values.Value) *values.Value {
	return c.arithmetic("-", args)
}

func (c *Context) builtinMul(env *values.Environment, args *values.Value) *values.Value {
	return c.arithmetic("*", args)
}

func (c *Context) builtinDiv(env *values.Environment, args *values.Value) *values.Value {
	return c.arithmetic("/", args)
}

func (c *Context) arithmetic(op string, args *values.Value) *values.Value {
	for i := range args.Cells {
		if e := checkType(op, args, i, values.NUM); e != nil {
			return e
		}
	}
	if args.Len() == 0 {
		args.Delete()
		return err.CreateErr("built/args/none", op)
	}
	x := args.Pop(0)
	if op == "-" && args.Len() == 0 {
		negated, ok := overflow.Sub64(0, x.Num)
		if !ok {
			args.Delete()
			return err.CreateErr("built/overflow", op)
		}
		x.Num = negated
	}
	for args.Len() > 0 {
		y := args.Pop(0)
		var (
			result int64
			ok     bool
		)
		switch op {
		case "+":
			result, ok = overflow.Add64(x.Num, y.Num)
		case "-":
			result, ok = overflow.Sub64(x.Num, y.Num)
		case "*":
			result, ok = overflow.Mul64(x.Num, y.Num)
		case "/":
			if y.Num == 0 {
				args.Delete()
				return err.CreateErr("built/div/zero")
			}
			// Div64 also says no to a zero quotient of mixed sign, which is fine.
			result, ok = overflow.Div64(x.Num, y.Num)
			ok = ok || result == 0
		}
		if !ok {
			args.Delete()
			return err.CreateErr("built/overflow", op)
		}
		x.Num = result
	}
	args.Delete()
	return x
}

// Binding.

func (c *Context) builtinLambda(env *values.Environment, args *values.Value) *values.Value {
	if e := checkAll(
		func() *values.Value { return checkCount(`\`, args, 2) },
		func() *values.Value { return checkType(`\`, args, 0, values.QEXPR) },
		func() *values.Value { return checkType(`\`, args, 1, values.QEXPR) },
	); e != nil {
		return e
	}
	for _, formal := range args.Cells[0].Cells {
		if formal.T != values.SYM {
			e := err.CreateErr("built/lambda/formals", formal.TypeName())
			args.Delete()
			return e
		}
	}
	formals := args.Pop(0)
	body := args.Pop(0)
	args.Delete()
	return values.Lambda(formals, body)
}

func (c *Context) builtinDef(env *values.Environment, args *values.Value) *values.Value {
	return c.bind("def", env, args, env.Def)
}

func (c *Context) builtinPut(env *values.Environment, args *values.Value) *values.Value {
	return c.bind("=", env, args, env.Put)
}

func (c *Context) bind(name string, env *values.Environment, args *values.Value,
	put func(string, *values.Value)) *values.Value {
	if args.Len() == 0 {
		args.Delete()
		return err.CreateErr("built/var/none", name)
	}
	if e := checkType(name, args, 0, values.QEXPR); e != nil {
		return e
	}
	syms := args.Cells[0]
	for _, sym := range syms.Cells {
		if sym.T != values.SYM {
			e := err.CreateErr("built/var/symbols", name, sym.TypeName())
			args.Delete()
			return e
		}
	}
	if syms.Len() != args.Len()-1 {
		e := err.CreateErr("built/var/count", name, args.Len()-1, syms.Len())
		args.Delete()
		return e
	}
	for i, sym := range syms.Cells {
		put(sym.Sym, args.Cells[i+1])
	}
	args.Delete()
	return values.Sexpr()
}

// Comparison.

func (c *Context) builtinGt(env *values.Environment, args *values.Value) *values.Value {
	return c.order(">", args)
}

func (c *Context) builtinLt(env *values.Environment, args *values.Value) *values.Value {
	return c.order("<", args)
}

func (c *Context) builtinGe(env *values.Environment, args *values.Value) *values.Value {
	return c.order(">=", args)
}

func (c *Context) builtinLe(env *values.Environment, args *values.Value) *values.Value {
	return c.order("<=", args)
}

func (c *Context) order(op string, args *values.Value) *values.Value {
	if e := checkAll(
		func() *values.Value { return checkCount(op, args, 2) },
		func() *values.Value { return checkType(op, args, 0, values.NUM) },
		func() *values.Value { return checkType(op, args, 1, values.NUM) },
	); e != nil {
		return e
	}
	x, y := args.Cells[0].Num, args.Cells[1].Num
	args.Delete()
	switch op {
	case ">":
		return boolToNum(x > y)
	case "<":
		return boolToNum(x < y)
	case ">=":
		return boolToNum(x >= y)
	}
	return boolToNum(x <= y)
}

func (c *Context) builtinEq(env *values.Environment, args *values.Value) *values.Value {
	return c.compare("==", args)
}

func (c *Context) builtinNe(env *values.Environment, args *values.Value) *values.Value {
	return c.compare("!=", args)
}

func (c *Context) compare(op string, args *values.Value) *values.Value {
	if e := checkCount(op, args, 2); e != nil {
		return e
	}
	eq := values.Equal(args.Cells[0], args.Cells[1])
	args.Delete()
	if op == "==" {
		return boolToNum(eq)
	}
	return boolToNum(!eq)
}

// Only the chosen branch is evaluated.
func (c *Context) builtinIf(env *values.Environment, args *values.Value) *values.Value {
	if e := checkAll(
		func() *values.Value { return checkCount("if", args, 3) },
		func() *values.Value { return checkType("if", args, 0, values.NUM) },
		func() *values.Value { return checkType("if", args, 1, values.QEXPR) },
		func() *values.Value { return checkType("if", args, 2, values.QEXPR) },
	); e != nil {
		return e
	}
	var branch *values.Value
	if args.Cells[0].Num != 0 {
		branch = args.Pop(1)
	} else {
		branch = args.Pop(2)
	}
	args.Delete()
	branch.T = values.SEXPR
	return c.Eval(env, branch)
}

// Input and output.

func (c *Context) builtinPrint(env *values.Environment, args *values.Value) *values.Value {
	strs := make([]string, args.Len())
	for i, arg := range args.Cells {
		strs[i] = arg.String()
	}
	args.Delete()
	c.Out.Write([]byte(strings.Join(strs, " ") + "\n"))
	return values.Sexpr()
}

func (c *Context) builtinError(env *values.Environment, args *values.Value) *values.Value {
	if e := checkCount("error", args, 1); e != nil {
		return e
	}
	if e := checkType("error", args, 0, values.STR); e != nil {
		return e
	}
	msg := args.Cells[0].Str
	args.Delete()
	return err.CreateErr("built/error", msg)
}

// Loading a file evaluates each of its top-level forms in the calling environment.
// Errors among the results are printed rather than returned.
func (c *Context) builtinLoad(env *values.Environment, args *values.Value) *values.Value {
	if e := checkCount("load", args, 1); e != nil {
		return e
	}
	if e := checkType("load", args, 0, values.STR); e != nil {
		return e
	}
	path := args.Cells[0].Str
	args.Delete()
	root, e := c.Parser.ParseFile(path)
	if e != nil {
		return err.CreateErr("built/load", e.Error())
	}
	for _, result := range c.EvalProgram(env, reader.Read(root)) {
		if result.T == values.ERR {
			c.Out.Write([]byte(result.String() + "\n"))
		}
		result.Delete()
	}
	return values.Sexpr()
}
