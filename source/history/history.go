package history

// Both kinds of history satisfy readline.History, so the REPL can use either.

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lmorg/readline"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"src.elv.sh/pkg/persistent/vector"

	"github.com/sneedlang/sneed/source/database"
)

var (
	_ readline.History = (*Memory)(nil)
	_ readline.History = (*SQL)(nil)
)

// Memory is history that lasts as long as the process does.
type Memory struct {
	lines vector.Vector
}

func NewMemory() *Memory {
	return &Memory{lines: vector.Empty}
}

// Write appends a line and returns the new length of the history.
func (m *Memory) Write(s string) (int, error) {
	m.lines = m.lines.Conj(s)
	return m.lines.Len(), nil
}

func (m *Memory) GetLine(i int) (string, error) {
	line, ok := m.lines.Index(i)
	if !ok {
		return "", errors.Errorf("no line %d in history", i)
	}
	return line.(string), nil
}

func (m *Memory) Len() int {
	return m.lines.Len()
}

// Dump gives the lines, oldest first.
func (m *Memory) Dump() interface{} {
	result := make([]string, 0, m.lines.Len())
	for it := m.lines.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(string))
	}
	return result
}

// SQL is history kept in a database table, so that it lasts from one session to the
// next. It keeps the lines in memory as well, and only goes to the database to add
// one. A line that can't be saved is logged and kept in memory anyway.
type SQL struct {
	*Memory
	db      *sql.DB
	driver  string
	Session string
	stamp   int64
	log     zerolog.Logger
}

// OpenSQL opens the database, makes the table if it isn't there, and loads the
// latest lines of history from it, up to limit.
func OpenSQL(driver, dsn string, limit int, log zerolog.Logger) (*SQL, error) {
	db, err := database.GetdB(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := database.CreateHistoryTable(db); err != nil {
		db.Close()
		return nil, err
	}
	lines, err := database.GetHistory(db, limit)
	if err != nil {
		db.Close()
		return nil, err
	}
	h := &SQL{Memory: NewMemory(), db: db, driver: driver, Session: uuid.NewString(), log: log}
	for _, line := range lines {
		h.Memory.Write(line)
	}
	h.log.Debug().Str("driver", driver).Str("session", h.Session).Int("lines", len(lines)).Msg("opened history")
	return h, nil
}

func (h *SQL) Write(s string) (int, error) {
	stamp := time.Now().UnixNano()
	if stamp <= h.stamp {
		stamp = h.stamp + 1
	}
	h.stamp = stamp
	if err := database.AddHistoryLine(h.db, h.driver, h.Session, stamp, s); err != nil {
		h.log.Warn().Err(err).Str("session", h.Session).Msg("history line not saved")
	}
	return h.Memory.Write(s)
}

func (h *SQL) Close() error {
	return errors.Wrap(h.db.Close(), "can't close history")
}
