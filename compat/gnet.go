// FILE: lixenwraith/colog/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/colog"
)

// Compile-time assertion that GnetAdapter satisfies gnet's own
// logging.Logger interface, not just a structurally identical one.
var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter satisfies gnet/v2's logging.Logger interface
// (Debugf/Infof/Warnf/Errorf/Fatalf) atop a colog.Logger.
type GnetAdapter struct {
	logger       *colog.Logger
	fatalHandler func(msg string)
}

// GnetOption customizes a GnetAdapter at construction.
type GnetOption func(*GnetAdapter)

// NewGnetAdapter wraps logger for use as a gnet logging.Logger.
func NewGnetAdapter(logger *colog.Logger, opts ...GnetOption) *GnetAdapter {
	a := &GnetAdapter{
		logger: logger,
		fatalHandler: func(string) {
			os.Exit(1)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithFatalHandler overrides the action taken after Fatalf logs and flushes.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) { a.fatalHandler = handler }
}

func (a *GnetAdapter) fields() *colog.FieldLogger {
	return a.logger.WithFields(map[string]any{"source": "gnet"})
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.fields().Debug(fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.fields().Info(fmt.Sprintf(format, args...))
}

// Warnf logs at warn level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.fields().Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.fields().Error(fmt.Sprintf(format, args...))
}

// Fatalf logs at error level, flushes, then invokes the fatal handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.fields().Error(msg)
	_ = a.logger.Flush()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
