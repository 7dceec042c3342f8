package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/lmorg/readline"

	"github.com/sneedlang/sneed/source/err"
	"github.com/sneedlang/sneed/source/evaluator"
	"github.com/sneedlang/sneed/source/lexer"
	"github.com/sneedlang/sneed/source/parser"
	"github.com/sneedlang/sneed/source/reader"
	"github.com/sneedlang/sneed/source/text"
	"github.com/sneedlang/sneed/source/values"
)

// The REPL reads a line, evaluates it in the global environment, and prints the
// result. Lines starting with a colon are commands to the REPL itself.
type REPL struct {
	c       *evaluator.Context
	env     *values.Environment
	out     io.Writer
	lastErr *values.Value // The last error to be printed, for ':why'.
}

func New(c *evaluator.Context, env *values.Environment, out io.Writer) *REPL {
	return &REPL{c: c, env: env, out: out}
}

func (r *REPL) Start(history readline.History) {
	rline := readline.NewInstance()
	rline.History = history
	rline.TabCompleter = r.Complete
	rline.SetPrompt(text.PROMPT)
	for {
		line, e := rline.Readline()
		if e == readline.CtrlC {
			continue
		}
		if e != nil { // Which includes readline.EOF.
			return
		}
		if r.Do(line) {
			return
		}
	}
}

// Do deals with one line of input and says whether it was the last.
func (r *REPL) Do(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ":") {
		return r.doCommand(line)
	}
	v, e := r.c.Do(r.env, "REPL input", line)
	if e != nil {
		r.writeString(text.Red(e.Error()) + "\n")
		return false
	}
	r.Print(v)
	return false
}

// Print writes out a result, remembering it if it is an error.
func (r *REPL) Print(v *values.Value) {
	if v.T == values.ERR {
		r.lastErr = v
		r.writeString(text.Red(v.String()) + "\n")
		return
	}
	r.writeString(v.String() + "\n")
}

func (r *REPL) doCommand(line string) bool {
	switch line {
	case ":quit", ":q":
		r.writeString(text.Cyan("Bye!") + "\n")
		return true
	case ":why":
		if r.lastErr == nil {
			r.writeString(text.BULLET + "There have been no errors.\n")
			return false
		}
		r.writeString("\n" + text.Red("Error: ") + r.lastErr.Err + "\n\n")
		r.writeString(text.Pretty(err.Explain(r.lastErr), len(text.BULLET_SPACING), 80) + "\n")
		r.lastErr = nil
	case ":env":
		names := r.env.Names()
		sort.Strings(names)
		r.writeString(text.Pretty(strings.Join(names, " "), len(text.BULLET_SPACING), 80) + "\n")
	case ":help", ":h":
		r.writeString(COMMANDS)
	default:
		r.writeString(text.Red("Unknown command "+text.Emph(line)+".") + " Try " + text.Emph(":help") + ".\n")
	}
	return false
}

const COMMANDS = "\n" + text.BULLET + ":why  explain the last error\n" +
	text.BULLET + ":env  list the global names\n" +
	text.BULLET + ":help show this\n" +
	text.BULLET + ":quit leave\n\n"

// Complete offers the global names that start with the symbol under the cursor.
func (r *REPL) Complete(line []rune, pos int, dtx readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	start := pos
	for start > 0 && lexer.IsSymbolRune(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	suggestions := []string{}
	if prefix != "" {
		names := r.env.Names()
		sort.Strings(names)
		for _, name := range names {
			if strings.HasPrefix(name, prefix) && name != prefix {
				suggestions = append(suggestions, name[len(prefix):])
			}
		}
	}
	return prefix, suggestions, nil, readline.TabDisplayGrid
}

// RunBatch reads the whole of in as one program and evaluates its top-level forms
// in order, as 'load' does with a file, printing any errors.
func RunBatch(c *evaluator.Context, env *values.Environment, in io.Reader, out io.Writer) error {
	data, e := io.ReadAll(in)
	if e != nil {
		return e
	}
	root, e := parser.Parse("standard input", string(data))
	if e != nil {
		return e
	}
	for _, result := range c.EvalProgram(env, reader.Read(root)) {
		if result.T == values.ERR {
			io.WriteString(out, result.String()+"\n")
		}
	}
	return nil
}

func (r *REPL) writeString(s string) {
	io.WriteString(r.out, s)
}
