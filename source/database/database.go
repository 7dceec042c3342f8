package database

// The database is only used to keep the REPL's history, but any of the drivers below
// will do for that, so long as it understands CREATE TABLE IF NOT EXISTS.

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

// List of SQL drivers for when I want to import more: https://zchee.github.io/golang-wiki/SQLDrivers/

var (
	drivers = map[string]string{"Firebird SQL": "firebirdsql", "MariaDB": "mysql", "MySQL": "mysql",
		"Oracle": "oracle", "Postgres": "postgres", "SQL Server": "sqlserver", "SQLite": "sqlite"}
)

// IsDriver says whether name is the name of one of the drivers, as passed to sql.Open.
func IsDriver(name string) bool {
	for _, v := range drivers {
		if v == name {
			return true
		}
	}
	return false
}

func GetdB(driver, dsn string) (*sql.DB, error) {
	if !IsDriver(driver) {
		return nil, errors.Errorf("unknown SQL driver %q", driver)
	}
	sqlObj, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open %s database", driver)
	}
	if err := sqlObj.Ping(); err != nil {
		sqlObj.Close()
		return nil, errors.Wrapf(err, "can't reach %s database", driver)
	}
	return sqlObj, nil
}

func GetDriverOptions() string {
	result := "The following SQL drivers are available: \n\n"
	for _, k := range GetSortedDrivers() {
		result = result + fmt.Sprintf("  %v (--history-driver %v)\n", k, drivers[k])
	}
	return result
}

func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}

// Placeholder gives the nth (counting from 1) query parameter in the dialect of the driver.
func Placeholder(driver string, n int) string {
	switch driver {
	case "postgres":
		return "$" + strconv.Itoa(n)
	case "oracle":
		return ":" + strconv.Itoa(n)
	case "sqlserver":
		return "@p" + strconv.Itoa(n)
	}
	return "?"
}

const HISTORY_TABLE = "sneed_history"

func CreateHistoryTable(db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS ` + HISTORY_TABLE + ` (
    session varchar(36),
    stamp bigint,
    line varchar(4000))`
	_, err := db.Exec(query)
	return errors.Wrap(err, "can't create history table")
}

func AddHistoryLine(db *sql.DB, driver, session string, stamp int64, line string) error {
	query := fmt.Sprintf("INSERT INTO %s (session, stamp, line) VALUES (%s, %s, %s)", HISTORY_TABLE,
		Placeholder(driver, 1), Placeholder(driver, 2), Placeholder(driver, 3))
	_, err := db.Exec(query, session, stamp, line)
	return errors.Wrap(err, "can't add line to history")
}

// GetHistory returns at most limit of the latest lines of history, oldest first.
func GetHistory(db *sql.DB, limit int) ([]string, error) {
	rows, err := db.Query("SELECT line FROM " + HISTORY_TABLE + " ORDER BY stamp DESC")
	if err != nil {
		return nil, errors.Wrap(err, "can't read history")
	}
	defer rows.Close()
	lines := []string{}
	for rows.Next() && len(lines) < limit {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, errors.Wrap(err, "can't read history")
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "can't read history")
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// CountSession says how many lines of history the given session has added.
func CountSession(db *sql.DB, driver, session string) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM "+HISTORY_TABLE+" WHERE session = "+Placeholder(driver, 1), session).Scan(&n)
	return n, errors.Wrap(err, "can't count history")
}
