package text

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a\nb", `a\nb`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		{"tab\there", `tab\there`},
	}
	for _, test := range tests {
		if got := Escape(test.in); got != test.want {
			t.Fatalf("Escape(%q) = %q, want %q", test.in, got, test.want)
		}
		if got := Unescape(test.want); got != test.in {
			t.Fatalf("Unescape(%q) = %q, want %q", test.want, got, test.in)
		}
	}
}

func TestUnescapeKeepsUnknownSequences(t *testing.T) {
	if got := Unescape(`\q\`); got != `\q\` {
		t.Fatalf("got %q", got)
	}
}

func TestPretty(t *testing.T) {
	got := Pretty("one two three four", 2, 12)
	want := "  one two\n  three four\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
