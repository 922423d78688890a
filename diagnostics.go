// FILE: lixenwraith/colog/diagnostics.go
package colog

import (
	"sync"

	"go.uber.org/zap"
)

// ErrorHook is the shape of async.Config.OnError: it receives faults the
// async worker swallows, such as a Formatter or Sink panic recovered by
// async.Backend's safeFormat/safeWrite/safeFlush, or a Sink.Write error.
// The hook is optional and OnError has no default: with it nil, those
// faults are dropped. internalLog below is not wired to it.
type ErrorHook func(error)

var (
	diagOnce sync.Once
	diagLog  *zap.SugaredLogger
)

// internalLogger lazily builds a zap-backed diagnostics logger the first
// time it is needed, matching the teacher's internalLog helper but routed
// through the pack's structured-logging library rather than a hand-rolled
// fmt.Fprintf to stderr.
func internalLogger() *zap.SugaredLogger {
	diagOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		logger, err := cfg.Build()
		if err != nil {
			// zap itself failed to construct; fall back to a no-op logger
			// rather than letting a diagnostics failure become fatal.
			logger = zap.NewNop()
		}
		diagLog = logger.Sugar().Named("colog")
	})
	return diagLog
}

// internalLog reports a self-diagnostic event to stderr. It is used only by
// the root package's Logger (EnableAsync, and through internalWarn for
// dropped records and failed sink writes); the async backend does not call
// it.
func internalLog(msg string, keysAndValues ...any) {
	internalLogger().Infow(msg, keysAndValues...)
}

// internalWarn is internalLog's warn-level counterpart, used for faults
// that indicate a real problem (write failure, dropped record) rather than
// routine lifecycle noise.
func internalWarn(msg string, keysAndValues ...any) {
	internalLogger().Warnw(msg, keysAndValues...)
}
