package err

import (
	"fmt"

	"github.com/sneedlang/sneed/source/values"
)

// A map from error identifiers to the kind of error and functions that supply the
// corresponding message and explanation.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Major categories are built, call, eval and read.
//
// Two otherwise identical errors raised in different places in the Go code should be
// given different identifiers, if only by suffixing /a, /b, etc, so that the
// explanation can say where things went wrong.

type ErrorCreator struct {
	Kind        values.ErrorKind
	Message     func(args ...any) string
	Explanation func() string
}

var ErrorCreatorMap = map[string]ErrorCreator{

	"built/args/count": {
		Kind: values.ArityError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v passed incorrect number of arguments. Got %v, Expected %v.", emph(args[0]), args[1], args[2])
		},
		Explanation: func() string {
			return "Builtins such as 'head', 'eval' and the comparisons take a fixed number of arguments. " +
				"Remember that a list written with braces counts as a single argument."
		},
	},

	"built/args/empty": {
		Kind: values.EmptyListError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v passed {} for argument %v.", emph(args[0]), args[1])
		},
		Explanation: func() string {
			return "There is no first element of the empty Q-expression, so 'head' and 'tail' have nothing " +
				"to work on. Check for {} before taking the head or tail of a list."
		},
	},

	"built/args/none": {
		Kind: values.ArityError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v passed no arguments.", emph(args[0]))
		},
		Explanation: func() string {
			return "The arithmetic builtins need at least one number to work on."
		},
	},

	"built/args/type": {
		Kind: values.TypeMismatch,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v passed incorrect type for argument %v. Got %v, Expected %v.",
				emph(args[0]), args[1], args[2], args[3])
		},
		Explanation: func() string {
			return "Each builtin checks the types of its arguments before it does anything. Arguments are counted from 0. " +
				"If you meant to pass code as data, wrap it in braces to make a Q-expression."
		},
	},

	"built/div/zero": {
		Kind: values.DivisionByZero,
		Message: func(args ...any) string {
			return "Division by zero."
		},
		Explanation: func() string {
			return "Because x * 0 == y * 0 for any numbers x and y, the result of dividing by zero is undefined: " +
				"there is no right answer, it's the wrong question."
		},
	},

	"built/error": {
		Kind: values.UserError,
		Message: func(args ...any) string {
			return args[0].(string)
		},
		Explanation: func() string {
			return "This error was raised by a call to the " + emph("error") + " builtin."
		},
	},

	"built/lambda/formals": {
		Kind: values.FormatError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Cannot define non-symbol. Got %v, Expected Symbol.", args[0])
		},
		Explanation: func() string {
			return "The first argument of " + emph(`\`) + " is the list of formal parameters, and every element of it " +
				"must be a symbol, as in " + emph(`(\ {x y} {+ x y})`) + "."
		},
	},

	"built/load": {
		Kind: values.LoadError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Could not load library %v", args[0])
		},
		Explanation: func() string {
			return "The file could not be read or parsed, so none of it was evaluated. The message above says why."
		},
	},

	"built/overflow": {
		Kind: values.Overflow,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v overflowed the range of a number.", emph(args[0]))
		},
		Explanation: func() string {
			return "Numbers are signed 64-bit integers, from -9223372036854775808 to 9223372036854775807. " +
				"The result of this operation would not fit."
		},
	},

	"built/var/count": {
		Kind: values.ArityError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v passed too many arguments for symbols. Got %v, Expected %v.", emph(args[0]), args[1], args[2])
		},
		Explanation: func() string {
			return "A definition needs exactly one value for each symbol in its list, as in " + emph("def {x y} 1 2") + "."
		},
	},

	"built/var/none": {
		Kind: values.ArityError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v passed no arguments.", emph(args[0]))
		},
		Explanation: func() string {
			return "A definition needs a Q-expression of symbols followed by one value for each of them."
		},
	},

	"built/var/symbols": {
		Kind: values.FormatError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function %v cannot define non-symbol. Got %v, Expected Symbol.", emph(args[0]), args[1])
		},
		Explanation: func() string {
			return "Only symbols can be given values. Every element of the list of names must be a symbol."
		},
	},

	"call/arity": {
		Kind: values.ArityError,
		Message: func(args ...any) string {
			return fmt.Sprintf("Function passed too many arguments. Got %v, Expected %v.", args[0], args[1])
		},
		Explanation: func() string {
			return "A function can be given fewer arguments than it has formal parameters, in which case you get back " +
				"a function waiting for the rest, but it can't be given more unless it collects them with " + emph("&") + "."
		},
	},

	"call/variadic/a": {
		Kind: values.FormatError,
		Message: func(args ...any) string {
			return "Function format invalid. Symbol '&' not followed by single symbol."
		},
		Explanation: func() string {
			return "The symbol " + emph("&") + " must be the second-to-last formal parameter, followed by exactly one symbol " +
				"which will be bound to the list of all remaining arguments, as in " + emph(`\ {x & xs} {xs}`) + "."
		},
	},

	"call/variadic/b": {
		Kind: values.FormatError,
		Message: func(args ...any) string {
			return "Function format invalid. Symbol '&' not followed by single symbol."
		},
		Explanation: func() string {
			return "The function was called with no arguments left for its " + emph("&") + " parameter, and then its " +
				"formal parameters turned out not to end in " + emph("& name") + "."
		},
	},

	"eval/sexpr/func": {
		Kind: values.NotAFunction,
		Message: func(args ...any) string {
			return fmt.Sprintf("S-Expression starts with incorrect type. Got %v, Expected Function.", args[0])
		},
		Explanation: func() string {
			return "When an S-expression with more than one element is evaluated, its first element is applied as a function " +
				"to the rest, so it has to evaluate to a function. If you meant a list of data, use braces instead of parentheses."
		},
	},

	"eval/sym/unbound": {
		Kind: values.UnboundSymbol,
		Message: func(args ...any) string {
			return fmt.Sprintf("Unbound Symbol %v", emph(args[0]))
		},
		Explanation: func() string {
			return "Nothing by that name has been defined in this scope or any scope enclosing it. " +
				"Use " + emph("def") + " to define something globally or " + emph("=") + " to define it locally."
		},
	},

	"read/number": {
		Kind: values.MalformedNumber,
		Message: func(args ...any) string {
			return fmt.Sprintf("Invalid number %v.", emph(args[0]))
		},
		Explanation: func() string {
			return "Numbers are signed 64-bit integers, from -9223372036854775808 to 9223372036854775807, and this one won't fit."
		},
	},
}

// CreateErr makes the error value with the given identifier.
func CreateErr(errorId string, args ...any) *values.Value {
	creator, ok := ErrorCreatorMap[errorId]
	if !ok {
		panic("err: unknown error identifier " + errorId)
	}
	return values.Err(creator.Kind, errorId, "%s", creator.Message(args...))
}

// Explain gives the explanation for an error value, or the empty string if it has none.
func Explain(v *values.Value) string {
	if v.T != values.ERR {
		return ""
	}
	creator, ok := ErrorCreatorMap[v.ErrorId]
	if !ok {
		return ""
	}
	return creator.Explanation()
}

func emph(s any) string {
	return fmt.Sprintf("'%v'", s)
}
