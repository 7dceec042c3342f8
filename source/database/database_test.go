package database

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"sqlite", "?"},
		{"mysql", "?"},
		{"firebirdsql", "?"},
		{"postgres", "$2"},
		{"oracle", ":2"},
		{"sqlserver", "@p2"},
	}
	for _, tt := range tests {
		if got := Placeholder(tt.driver, 2); got != tt.want {
			t.Fatalf("%s: wanted %s, got %s", tt.driver, tt.want, got)
		}
	}
}

func TestDrivers(t *testing.T) {
	for _, name := range []string{"sqlite", "mysql", "postgres", "sqlserver", "firebirdsql", "oracle"} {
		if !IsDriver(name) {
			t.Fatalf("%s should be a driver", name)
		}
	}
	if IsDriver("SQLite") {
		t.Fatal("display names aren't drivers")
	}
	if !strings.Contains(GetDriverOptions(), "SQL Server (--history-driver sqlserver)") {
		t.Fatalf("bad driver options:\n%s", GetDriverOptions())
	}
	if _, err := GetdB("dbase", ""); err == nil {
		t.Fatal("expected an error for an unknown driver")
	}
}

func TestHistoryTable(t *testing.T) {
	db, err := GetdB("sqlite", filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := CreateHistoryTable(db); err != nil {
		t.Fatal(err)
	}
	if err := CreateHistoryTable(db); err != nil {
		t.Fatalf("creating the table twice: %v", err)
	}
	for i, line := range []string{"one", "two", "three"} {
		if err := AddHistoryLine(db, "sqlite", "s1", int64(i), line); err != nil {
			t.Fatal(err)
		}
	}
	if err := AddHistoryLine(db, "sqlite", "s2", 3, "four"); err != nil {
		t.Fatal(err)
	}
	lines, err := GetHistory(db, 3)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(lines, ",") != "two,three,four" {
		t.Fatalf("wrong history: %v", lines)
	}
	n, err := CountSession(db, "sqlite", "s1")
	if err != nil || n != 3 {
		t.Fatalf("wanted 3 lines for s1, got %d (%v)", n, err)
	}
}
