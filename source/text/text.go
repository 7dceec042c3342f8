package text

// Text utilities shared by the printer, the REPL and error reporting: escaping,
// colours, and the banner.

import (
	"strings"

	"github.com/fatih/color"
)

const (
	VERSION        = "1.0.0"
	BULLET         = "  ▪ "
	BULLET_SPACING = "    " // I.e. whitespace the same width as BULLET.
	PROMPT         = "sneed> "
)

// The escapes resolved when a string literal is read and re-applied when it is printed.
var (
	escapeChars   = []rune{'\a', '\b', '\f', '\n', '\r', '\t', '\v', '\\', '\'', '"', 0}
	escapeStrings = []string{`\a`, `\b`, `\f`, `\n`, `\r`, `\t`, `\v`, `\\`, `\'`, `\"`, `\0`}
)

func Escape(s string) string {
	var out strings.Builder
	for _, ch := range s {
		i := indexRune(escapeChars, ch)
		if i < 0 {
			out.WriteRune(ch)
			continue
		}
		out.WriteString(escapeStrings[i])
	}
	return out.String()
}

// Unknown escape sequences are kept as written.
func Unescape(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			out.WriteByte(s[i])
			continue
		}
		j := indexString(escapeStrings, s[i:i+2])
		if j < 0 {
			out.WriteByte(s[i])
			continue
		}
		out.WriteRune(escapeChars[j])
		i++
	}
	return out.String()
}

func indexRune(rs []rune, r rune) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return -1
}

func indexString(ss []string, s string) int {
	for i, x := range ss {
		if x == s {
			return i
		}
	}
	return -1
}

func Emph(s string) string {
	return "'" + s + "'"
}

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func Red(s string) string {
	return red(s)
}

func Green(s string) string {
	return green(s)
}

func Yellow(s string) string {
	return yellow(s)
}

func Cyan(s string) string {
	return cyan(s)
}

// SetColor turns colouring on or off for everything in this package.
func SetColor(on bool) {
	color.NoColor = !on
}

func Logo() string {
	titleText := " The Sneed Programming Language, version " + VERSION + " "
	bar := strings.Repeat("═", len(titleText)/2)
	leftMargin := "  "
	heart := Red("♥")
	return "\n" +
		leftMargin + "╔" + bar + heart + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + heart + bar + "╝\n\n" +
		"Press Ctrl+c to exit, type " + Emph(":why") + " to explain the last error.\n\n"
}

const HELP = "\nUsage: sneed [flags] [file ...]\n\n" +
	"With no files, starts the REPL. Each file is loaded in turn into one global\n" +
	"environment and any errors are printed.\n\n" +
	"Flags are:\n\n"

// Pretty word-wraps s between the given margins.
func Pretty(s string, lMargin, rMargin int) string {
	width := rMargin - lMargin
	result := ""
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line != "" && len(line)+1+len(word) > width {
				result = result + strings.Repeat(" ", lMargin) + line + "\n"
				line = ""
			}
			if line != "" {
				line = line + " "
			}
			line = line + word
		}
		result = result + strings.Repeat(" ", lMargin) + line + "\n"
	}
	return result
}
