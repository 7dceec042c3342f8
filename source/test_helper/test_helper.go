package test_helper

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sneedlang/sneed/source/evaluator"
	"github.com/sneedlang/sneed/source/parser"
	"github.com/sneedlang/sneed/source/settings"
	"github.com/sneedlang/sneed/source/text"
	"github.com/sneedlang/sneed/source/values"
)

// Auxiliary types and functions for testing the evaluator.

type TestItem struct {
	Input string
	Want  string
}

// RunTest runs each test in a fresh global environment with the builtins and the
// prelude in it and, if filename is non-empty, the named file from the test-files
// directory of the package being tested loaded into it.
func RunTest(t *testing.T, filename string, tests []TestItem, F func(c *evaluator.Context, env *values.Environment, s string) (string, error)) {
	wd, _ := os.Getwd() // The working directory is the directory containing the package being tested.
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		c, env := NewSession()
		if filename != "" {
			c.Out.(*bytes.Buffer).Reset()
			v, _ := c.Do(env, "test", `load "`+text.Escape(wd+"/test-files/"+filename)+`"`)
			if v.T == values.ERR || c.Out.(*bytes.Buffer).Len() > 0 {
				t.Fatalf("There were errors loading the file %s: \n%s%s", filename, c.Out.(*bytes.Buffer).String(), v.String())
			}
		}
		got, e := F(c, env, test.Input)
		if e != nil {
			println(text.Red(test.Input))
			println("There were errors parsing the line: \n" + e.Error() + "\n")
		}
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// NewSession makes a context writing to a buffer and a global environment with
// the builtins and the prelude in it.
func NewSession() (*evaluator.Context, *values.Environment) {
	c := evaluator.NewContext(&bytes.Buffer{}, parser.NewFileParser())
	env := values.NewEnvironment()
	c.AddBuiltins(env)
	if err := c.LoadPrelude(env); err != nil {
		panic(err)
	}
	return c, env
}

// TestValues gives the rendered result of evaluating the line.
func TestValues(c *evaluator.Context, env *values.Environment, s string) (string, error) {
	v, e := c.Do(env, "test", s)
	if e != nil {
		return "", e
	}
	return v.String(), nil
}

// TestErrorKinds gives the kind of the error the line evaluates to.
func TestErrorKinds(c *evaluator.Context, env *values.Environment, s string) (string, error) {
	v, e := c.Do(env, "test", s)
	if e != nil {
		return "", e
	}
	if v.T != values.ERR {
		return "", errors.New("unexpected successful evaluation returned " + text.Emph(v.String()))
	}
	return v.Kind.String(), nil
}

// TestOutput gives what the line printed, with the last newline trimmed, followed
// by ' => ' and the rendered result.
func TestOutput(c *evaluator.Context, env *values.Environment, s string) (string, error) {
	out := c.Out.(*bytes.Buffer)
	out.Reset()
	v, e := c.Do(env, "test", s)
	if e != nil {
		return "", e
	}
	return strings.TrimSuffix(out.String(), "\n") + " => " + v.String(), nil
}
