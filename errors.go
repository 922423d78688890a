// FILE: lixenwraith/colog/errors.go
package colog

import (
	"fmt"
	"strings"
)

// fmtErrorf wraps fmt.Errorf, ensuring a consistent "colog: " prefix on
// every error this package originates, matching the teacher's fmtErrorf.
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "colog: ") {
		format = "colog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors joins two errors, tolerating either being nil.
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}
