package values

import (
	"strconv"
	"strings"

	"github.com/sneedlang/sneed/source/text"
)

func (v *Value) String() string {
	var out strings.Builder
	v.write(&out)
	return out.String()
}

func (v *Value) write(out *strings.Builder) {
	switch v.T {
	case NUM:
		out.WriteString(strconv.FormatInt(v.Num, 10))
	case ERR:
		out.WriteString("Error: " + v.Err)
	case SYM:
		out.WriteString(v.Sym)
	case STR:
		out.WriteString(`"` + text.Escape(v.Str) + `"`)
	case FUN:
		if v.Builtin != nil {
			out.WriteString("<builtin>")
			return
		}
		out.WriteString(`(\ `)
		v.Formals.write(out)
		out.WriteByte(' ')
		v.Body.write(out)
		out.WriteByte(')')
	case SEXPR:
		v.writeCells(out, '(', ')')
	case QEXPR:
		v.writeCells(out, '{', '}')
	}
}

func (v *Value) writeCells(out *strings.Builder, left, right byte) {
	out.WriteByte(left)
	for i, c := range v.Cells {
		if i > 0 {
			out.WriteByte(' ')
		}
		c.write(out)
	}
	out.WriteByte(right)
}
