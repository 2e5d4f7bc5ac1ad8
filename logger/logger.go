// Package logger provides the process-wide logger used by the command line.
// Library packages never log; they return errors.
package logger

import (
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = New(os.Stderr)

// New returns a logger writing to out at warn level with the prefixed
// text formatter.
func New(out io.Writer) *logger.Logger {
	return &logger.Logger{
		Out:   out,
		Level: logger.WarnLevel,
		Hooks: make(logger.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			ForceFormatting: true,
		},
	}
}

// SetVerbose switches L between warn and debug level.
func SetVerbose(v bool) {
	if v {
		L.SetLevel(logger.DebugLevel)
		return
	}
	L.SetLevel(logger.WarnLevel)
}
