package history

import (
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sneedlang/sneed/source/database"
)

func TestMemory(t *testing.T) {
	h := NewMemory()
	for i, line := range []string{"(+ 1 2)", "head {1 2}"} {
		n, err := h.Write(line)
		if err != nil || n != i+1 {
			t.Fatalf("write %d gave %d, %v", i, n, err)
		}
	}
	if h.Len() != 2 {
		t.Fatalf("wanted 2 lines, got %d", h.Len())
	}
	line, err := h.GetLine(1)
	if err != nil || line != "head {1 2}" {
		t.Fatalf("wanted the second line, got %q, %v", line, err)
	}
	if _, err := h.GetLine(2); err == nil {
		t.Fatal("expected an error reading past the end")
	}
	if !reflect.DeepEqual(h.Dump(), []string{"(+ 1 2)", "head {1 2}"}) {
		t.Fatalf("wrong dump: %v", h.Dump())
	}
}

func TestSQLSurvivesReopening(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "history.db")
	log := zerolog.New(io.Discard)
	first, err := OpenSQL("sqlite", dsn, 10, log)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"a", "b", "c"} {
		if _, err := first.Write(line); err != nil {
			t.Fatal(err)
		}
	}
	n, err := database.CountSession(first.db, "sqlite", first.Session)
	if err != nil || n != 3 {
		t.Fatalf("wanted 3 lines saved, got %d, %v", n, err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := OpenSQL("sqlite", dsn, 2, log)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if second.Session == first.Session {
		t.Fatal("sessions should differ")
	}
	if !reflect.DeepEqual(second.Dump(), []string{"b", "c"}) {
		t.Fatalf("wanted the last two lines, got %v", second.Dump())
	}
	second.Write("d")
	if line, _ := second.GetLine(2); line != "d" {
		t.Fatalf("wanted d, got %q", line)
	}
}

func TestOpenSQLBadDriver(t *testing.T) {
	if _, err := OpenSQL("nosuchdriver", "", 10, zerolog.New(io.Discard)); err == nil {
		t.Fatal("expected an error")
	}
}
