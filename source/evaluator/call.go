package evaluator

import (
	"github.com/sneedlang/sneed/source/err"
	"github.com/sneedlang/sneed/source/values"
)

// The variadic marker. The formal after it is bound to a list of all the remaining
// arguments.
const VARIADIC = "&"

// The states of the binder that matches a closure's formals against its arguments.
type bindState int

const (
	bindNext      bindState = iota // Bind the next argument to the next formal.
	bindRest                       // Bind all the remaining arguments to the formal after '&'.
	bindExhausted                  // No arguments left: see if the formals are used up.
	bindSaturated                  // Every formal is bound, so evaluate the body.
	bindPartial                    // Formals are left over, so return a function wanting the rest.
)

// Call applies fn to args in the calling environment env. It consumes args and
// leaves fn to the caller; a closure comes back with its formals partly used up and
// its environment holding what was bound to them.
func (c *Context) Call(env *values.Environment, fn, args *values.Value) *values.Value {
	if fn.Builtin != nil {
		return fn.Builtin.Fn(env, args)
	}
	given, total := args.Len(), fn.Formals.Len()
	state := bindNext
	for {
		switch state {
		case bindNext:
			switch {
			case args.Len() == 0:
				state = bindExhausted
			case fn.Formals.Len() == 0:
				args.Delete()
				return err.CreateErr("call/arity", given, total)
			case fn.Formals.Cells[0].Sym == VARIADIC:
				state = bindRest
			default:
				formal := fn.Formals.Pop(0)
				fn.Env.Put(formal.Sym, args.Pop(0))
			}
		case bindRest:
			fn.Formals.Pop(0)
			if fn.Formals.Len() != 1 {
				args.Delete()
				return err.CreateErr("call/variadic/a")
			}
			formal := fn.Formals.Pop(0)
			args.T = values.QEXPR
			fn.Env.Put(formal.Sym, args)
			args = values.Sexpr()
			state = bindSaturated
		case bindExhausted:
			switch {
			case fn.Formals.Len() == 0:
				state = bindSaturated
			case fn.Formals.Cells[0].Sym != VARIADIC:
				state = bindPartial
			case fn.Formals.Len() != 2:
				args.Delete()
				return err.CreateErr("call/variadic/b")
			default:
				fn.Formals.Pop(0)
				formal := fn.Formals.Pop(0)
				fn.Env.Put(formal.Sym, values.Qexpr())
				state = bindSaturated
			}
		case bindSaturated:
			args.Delete()
			// The closure's own environment now hangs off the caller's, and it
			// stays that way until the next call.
			fn.Env.Ext = env
			body := fn.Body.Copy()
			body.T = values.SEXPR
			return c.Eval(fn.Env, body)
		case bindPartial:
			args.Delete()
			return fn.Copy()
		}
	}
}
