package logger

import corelogger "github.com/mgillet/paceplan/core/logger"

// Logger mirrors the core logger interface for convenience.
type Logger = corelogger.Logger

// New returns a Logger for the given component. The output format is
// selected via the APP_ENV environment variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}
