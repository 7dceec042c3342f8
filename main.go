//
// Sneed version 1.0.0
//
// A small Lisp: numbers, symbols, strings, S-expressions, Q-expressions and
// closures, with currying and variadic functions.
//

package main

import (
	"fmt"
	"os"

	"github.com/lmorg/readline"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/sneedlang/sneed/source/database"
	"github.com/sneedlang/sneed/source/evaluator"
	"github.com/sneedlang/sneed/source/history"
	"github.com/sneedlang/sneed/source/parser"
	"github.com/sneedlang/sneed/source/repl"
	"github.com/sneedlang/sneed/source/settings"
	"github.com/sneedlang/sneed/source/text"
	"github.com/sneedlang/sneed/source/values"
)

func main() {
	cfg, err := settings.ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, text.HELP)
		os.Exit(2)
	}
	if cfg.Help {
		fmt.Print(text.HELP + cfg.Usage() + "\n" + database.GetDriverOptions())
		return
	}
	if cfg.Version {
		fmt.Println("sneed version " + text.VERSION)
		return
	}
	text.SetColor(!cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd()))

	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor}).
		Level(level).With().Timestamp().Logger()

	c := evaluator.NewContext(os.Stdout, parser.NewFileParser())
	env := values.NewEnvironment()
	c.AddBuiltins(env)
	if !cfg.NoPrelude {
		if err := c.LoadPrelude(env); err != nil {
			log.Fatal().Err(err).Msg("can't load prelude")
		}
		log.Debug().Int("names", env.Len()).Msg("loaded prelude")
	}

	if len(cfg.Files) > 0 {
		load, _ := env.Get("load")
		for _, path := range cfg.Files {
			log.Debug().Str("file", path).Msg("loading")
			result := c.Call(env, load, values.Sexpr().Add(values.Str(path)))
			if result.T == values.ERR {
				fmt.Println(text.Red(result.String()))
			}
		}
		return
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := repl.RunBatch(c, env, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, text.Red(err.Error()))
			os.Exit(1)
		}
		return
	}

	fmt.Print(text.Logo())
	hist, closeHistory := openHistory(cfg, log)
	defer closeHistory()
	repl.New(c, env, os.Stdout).Start(hist)
}

// openHistory falls back to history in memory if the database can't be had.
func openHistory(cfg *settings.Config, log zerolog.Logger) (readline.History, func()) {
	if cfg.NoHistory {
		return history.NewMemory(), func() {}
	}
	dsn := cfg.HistoryDSN
	if dsn == "" && cfg.HistoryDriver == settings.DEFAULT_HISTORY_DRIVER {
		var err error
		dsn, err = settings.DefaultHistoryDSN()
		if err != nil {
			log.Warn().Err(err).Msg("keeping history in memory")
			return history.NewMemory(), func() {}
		}
	}
	if dsn == "" {
		log.Warn().Str("driver", cfg.HistoryDriver).Msg("no DSN for history, keeping it in memory")
		return history.NewMemory(), func() {}
	}
	h, err := history.OpenSQL(cfg.HistoryDriver, dsn, settings.HISTORY_LENGTH, log)
	if err != nil {
		log.Warn().Err(err).Msg("keeping history in memory")
		return history.NewMemory(), func() {}
	}
	return h, func() {
		if err := h.Close(); err != nil {
			log.Warn().Err(err).Msg("closing history")
		}
	}
}
