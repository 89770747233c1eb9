package wuikit

import "github.com/rs/zerolog"

// logger is silent until an application hands us its own logger.
var logger = zerolog.Nop()

// SetLogger sets the logger used for debug output of drag sessions, rounded
// region updates and input dialogs. Pass zerolog.Nop() to turn it off again.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logger returns the logger set with SetLogger.
func Logger() zerolog.Logger {
	return logger
}

func componentLogger(name string) *zerolog.Logger {
	l := logger.With().Str("component", name).Logger()
	return &l
}
