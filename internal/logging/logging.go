// Package logging hands out named loggers that share one verbosity switch.
package logging

import (
	"sync/atomic"

	"github.com/BrugadaSyndrome/bslogger"
)

var verbose atomic.Bool

// SetVerbose turns debug output on or off for loggers created afterwards.
func SetVerbose(v bool) { verbose.Store(v) }

// New returns a logger that prefixes its lines with name.
func New(name string) bslogger.Logger {
	if verbose.Load() {
		return bslogger.NewLogger(name, bslogger.All, nil)
	}
	return bslogger.NewLogger(name, bslogger.Normal, nil)
}
