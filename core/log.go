package core

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewRunLogger returns a logger entry tagged with a fresh run id, so every
// trace line a single Sat call emits — across the evaluator and the
// fixed-point driver — can be correlated in aggregated log output.
func NewRunLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger()).WithField("run_id", uuid.NewString())
}

// SetLogLevel adjusts the package-wide default logger used by Sat when no
// explicit logger is supplied. Intended for the CLI's ALPHACTL_LOG_LEVEL.
func SetLogLevel(level logrus.Level) { logrus.SetLevel(level) }
