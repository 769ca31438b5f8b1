package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
)

// PanicError is a panic raised inside a step, turned into an error so the
// backend can shut the window down instead of leaving it hung.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in render loop: %v", e.Value)
}

// guard wraps step so a panic is logged with its stack and returned.
func guard(logger bslogger.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			pe := &PanicError{Value: v, Stack: debug.Stack()}
			logger.Error(pe.Error())
			for _, line := range strings.Split(string(pe.Stack), "\n") {
				if line == "" {
					continue
				}
				logger.Debug(line)
			}
			err = pe
		}()
		return step()
	}
}
