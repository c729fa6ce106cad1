// Package logging configures claudio's diagnostic logger.
//
// User-facing output (the picker, the "Using project" line, doctor reports)
// goes to stdout via fmt; this logger carries debug and warning diagnostics
// on stderr so they never mix with output the delegate command may parse.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the default logger from a level name. Unknown names
// fall back to warn.
func Setup(level string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "claudio",
	})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}
	logger.SetLevel(parsed)
	log.SetDefault(logger)
}
