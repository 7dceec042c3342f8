package evaluator

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/sneedlang/sneed/source/parser"
	"github.com/sneedlang/sneed/source/reader"
	"github.com/sneedlang/sneed/source/values"
)

//go:embed prelude.sneed
var prelude string

const PRELUDE_SOURCE = "prelude"

// LoadPrelude defines the library functions written in the language itself. A
// prelude that doesn't parse or that evaluates to an error is a bug in this
// repository, and is reported as an ordinary Go error.
func (c *Context) LoadPrelude(env *values.Environment) error {
	root, e := parser.Parse(PRELUDE_SOURCE, prelude)
	if e != nil {
		return errors.Wrap(e, "can't parse prelude")
	}
	for _, result := range c.EvalProgram(env, reader.Read(root)) {
		if result.T == values.ERR {
			return errors.Errorf("error in prelude: %s", result.Err)
		}
	}
	return nil
}
