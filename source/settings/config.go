package settings

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dnephin/pflag"
	"github.com/pkg/errors"
)

// Config is what the command line and the environment say about how this run should go.
type Config struct {
	HistoryDriver string
	HistoryDSN    string
	NoHistory     bool
	NoPrelude     bool
	NoColor       bool
	Debug         bool
	Version       bool
	Help          bool
	Files         []string // The positional arguments, each of which is loaded in order.

	flags *pflag.FlagSet
}

// ParseConfig reads the arguments (not including the program name). Environment
// variables supply the history driver and DSN when the flags don't.
func ParseConfig(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	fs := pflag.NewFlagSet("sneed", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.HistoryDriver, "history-driver", "", "SQL driver for the REPL history: "+
		"sqlite, mysql, postgres, sqlserver, firebirdsql or oracle")
	fs.StringVar(&cfg.HistoryDSN, "history-dsn", "", "data source name for the REPL history")
	fs.BoolVar(&cfg.NoHistory, "no-history", false, "keep REPL history in memory only")
	fs.BoolVar(&cfg.NoPrelude, "no-prelude", false, "don't load the prelude")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "don't use colour in output")
	fs.BoolVar(&cfg.Debug, "debug", false, "log at debug level")
	fs.BoolVarP(&cfg.Version, "version", "v", false, "print the version and exit")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "print this help and exit")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "can't parse command line")
	}
	cfg.flags = fs
	cfg.Files = fs.Args()
	if cfg.HistoryDriver == "" {
		cfg.HistoryDriver = getenv("SNEED_HISTORY_DRIVER")
	}
	if cfg.HistoryDriver == "" {
		cfg.HistoryDriver = DEFAULT_HISTORY_DRIVER
	}
	if cfg.HistoryDSN == "" {
		cfg.HistoryDSN = getenv("SNEED_HISTORY_DSN")
	}
	return cfg, nil
}

// Usage is the flag summary printed by --help.
func (cfg *Config) Usage() string {
	if cfg.flags == nil {
		return ""
	}
	return cfg.flags.FlagUsages()
}

// DefaultHistoryDSN is where the sqlite history lives when no DSN is given.
func DefaultHistoryDSN() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "can't find home directory")
	}
	return filepath.Join(home, HISTORY_FILE), nil
}
