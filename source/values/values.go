package values

import "fmt"

type ValueType int

const (
	ERR ValueType = iota
	NUM
	SYM
	STR
	FUN
	SEXPR
	QEXPR
)

var typeNames = []string{"Error", "Number", "Symbol", "String", "Function", "S-Expression", "Q-Expression"}

// TypeName is the name of a type as it appears in error messages.
func TypeName(t ValueType) string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// ErrorKind classifies an error value. It is diagnostic only: two errors with the
// same message are equal whatever their kinds.
type ErrorKind int

const (
	UserError ErrorKind = iota
	UnboundSymbol
	TypeMismatch
	ArityError
	EmptyListError
	DivisionByZero
	FormatError
	MalformedNumber
	NotAFunction
	LoadError
	Overflow
)

var kindNames = []string{"UserError", "UnboundSymbol", "TypeMismatch", "ArityError", "EmptyListError",
	"DivisionByZero", "FormatError", "MalformedNumber", "NotAFunction", "LoadError", "Overflow"}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UnknownError"
}

// A BuiltinFunc owns args: it must either delete the list or hand it on in its result.
type BuiltinFunc func(env *Environment, args *Value) *Value

// Builtins are shared by pointer between every copy of the function value, and
// the pointer is their identity.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// A Value is a tagged union: which fields mean anything depends on T. Lists own
// their cells and closures own their environment, so a Value is never reachable
// from two places at once.
type Value struct {
	T ValueType

	Num     int64
	Err     string
	Kind    ErrorKind
	ErrorId string
	Sym     string
	Str     string

	// Functions. Builtin is nil for a closure.
	Builtin *Builtin
	Env     *Environment
	Formals *Value
	Body    *Value

	// S-expressions and Q-expressions.
	Cells []*Value
}

func Num(x int64) *Value {
	return &Value{T: NUM, Num: x}
}

func Str(s string) *Value {
	return &Value{T: STR, Str: s}
}

func Sym(s string) *Value {
	return &Value{T: SYM, Sym: s}
}

// Err makes an error value. Most callers should go through the catalogue in
// source/err, which supplies the kind and id.
func Err(kind ErrorKind, id string, format string, args ...any) *Value {
	return &Value{T: ERR, Kind: kind, ErrorId: id, Err: fmt.Sprintf(format, args...)}
}

func Fun(b *Builtin) *Value {
	return &Value{T: FUN, Builtin: b}
}

// Lambda takes ownership of formals and body and gives the closure a fresh
// environment of its own, with no enclosing environment until it is called.
func Lambda(formals, body *Value) *Value {
	return &Value{T: FUN, Env: NewEnvironment(), Formals: formals, Body: body}
}

func Sexpr() *Value {
	return &Value{T: SEXPR}
}

func Qexpr() *Value {
	return &Value{T: QEXPR}
}

func (v *Value) IsClosure() bool {
	return v.T == FUN && v.Builtin == nil
}

func (v *Value) TypeName() string {
	return TypeName(v.T)
}

func (v *Value) Len() int {
	return len(v.Cells)
}

// Add appends x to the list v and returns v.
func (v *Value) Add(x *Value) *Value {
	v.Cells = append(v.Cells, x)
	return v
}

// Pop removes the cell at index i and returns it, closing up the gap.
func (v *Value) Pop(i int) *Value {
	x := v.Cells[i]
	copy(v.Cells[i:], v.Cells[i+1:])
	v.Cells[len(v.Cells)-1] = nil
	v.Cells = v.Cells[:len(v.Cells)-1]
	return x
}

// Take pops the cell at index i and deletes what is left of v.
func (v *Value) Take(i int) *Value {
	x := v.Pop(i)
	v.Delete()
	return x
}

// Join drains y into x in order and deletes y.
func Join(x, y *Value) *Value {
	for y.Len() > 0 {
		x.Add(y.Pop(0))
	}
	y.Delete()
	return x
}

// Copy makes a deep copy. A closure's environment is copied too, keeping the
// same enclosing environment.
func (v *Value) Copy() *Value {
	x := &Value{T: v.T}
	switch v.T {
	case NUM:
		x.Num = v.Num
	case ERR:
		x.Err, x.Kind, x.ErrorId = v.Err, v.Kind, v.ErrorId
	case SYM:
		x.Sym = v.Sym
	case STR:
		x.Str = v.Str
	case FUN:
		if v.Builtin != nil {
			x.Builtin = v.Builtin
		} else {
			x.Env = v.Env.Copy()
			x.Formals = v.Formals.Copy()
			x.Body = v.Body.Copy()
		}
	case SEXPR, QEXPR:
		x.Cells = make([]*Value, len(v.Cells))
		for i, c := range v.Cells {
			x.Cells[i] = c.Copy()
		}
	default:
		panic(fmt.Sprintf("values: copy of unknown type %d", v.T))
	}
	return x
}

// Delete releases everything v owns. v must not be used afterwards.
func (v *Value) Delete() {
	switch v.T {
	case FUN:
		if v.Builtin == nil {
			v.Env.Delete()
			v.Formals.Delete()
			v.Body.Delete()
		}
		v.Builtin, v.Env, v.Formals, v.Body = nil, nil, nil, nil
	case SEXPR, QEXPR:
		for _, c := range v.Cells {
			c.Delete()
		}
		v.Cells = nil
	}
}

// Equal is structural. Values of different types are never equal, builtins are
// equal if they are the same builtin, and closures are compared by formals and
// body but not by environment.
func Equal(x, y *Value) bool {
	if x.T != y.T {
		return false
	}
	switch x.T {
	case NUM:
		return x.Num == y.Num
	case ERR:
		return x.Err == y.Err
	case SYM:
		return x.Sym == y.Sym
	case STR:
		return x.Str == y.Str
	case FUN:
		if x.Builtin != nil || y.Builtin != nil {
			return x.Builtin == y.Builtin
		}
		return Equal(x.Formals, y.Formals) && Equal(x.Body, y.Body)
	case SEXPR, QEXPR:
		if len(x.Cells) != len(y.Cells) {
			return false
		}
		for i := range x.Cells {
			if !Equal(x.Cells[i], y.Cells[i]) {
				return false
			}
		}
		return true
	}
	return false
}
