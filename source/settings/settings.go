// The constants here control which bits of the inner workings of the lexer, parser
// and evaluator are displayed for debugging purposes. In a release they must all be
// set to false.

package settings

const (
	// These do what it sounds like.
	SHOW_LEXER     = false
	SHOW_PARSER    = false
	SHOW_READER    = false
	SHOW_EVALUATOR = false

	SHOW_TESTS = true // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.

	PARSE_CACHE_SIZE = 64 // How many parsed files the file parser keeps.

	DEFAULT_HISTORY_DRIVER = "sqlite"
	HISTORY_FILE           = ".sneed_history.db" // Relative to the user's home directory.
	HISTORY_LENGTH         = 1000                // How many lines of history the REPL loads at start.
)
