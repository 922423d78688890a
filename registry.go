// FILE: lixenwraith/colog/registry.go
package colog

import "sync"

// Registry is a process-wide name-to-Logger directory, grounded on
// original_source/src/colog/registry.h/.cpp. A program typically uses the
// package-level DefaultRegistry rather than constructing its own, but an
// independent Registry is useful for tests that want isolation from other
// packages' loggers.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	def     *Logger
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// DefaultRegistry is the process-wide registry used by the package-level
// Get/GetDefault/SetDefault/FlushAll functions.
var DefaultRegistry = NewRegistry()

// Get returns the named logger, creating one from DefaultConfig if it
// doesn't exist yet.
func (r *Registry) Get(name string) (*Logger, error) {
	r.mu.RLock()
	if l, ok := r.loggers[name]; ok {
		r.mu.RUnlock()
		return l, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l, nil
	}
	l, err := NewLogger(name, DefaultConfig())
	if err != nil {
		return nil, err
	}
	r.loggers[name] = l
	return l, nil
}

// Register adds an already-constructed logger under its own name,
// overwriting any existing entry with that name.
func (r *Registry) Register(l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers[l.Name()] = l
}

// SetDefault designates l as the registry's default logger.
func (r *Registry) SetDefault(l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.def = l
}

// GetDefault returns the registry's default logger, creating one named
// "default" from DefaultConfig if none has been set.
func (r *Registry) GetDefault() (*Logger, error) {
	r.mu.RLock()
	if r.def != nil {
		d := r.def
		r.mu.RUnlock()
		return d, nil
	}
	r.mu.RUnlock()

	l, err := r.Get("default")
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.def == nil {
		r.def = l
	}
	d := r.def
	r.mu.Unlock()
	return d, nil
}

// FlushAll flushes every registered logger, combining any errors.
func (r *Registry) FlushAll() error {
	r.mu.RLock()
	loggers := make([]*Logger, 0, len(r.loggers))
	for _, l := range r.loggers {
		loggers = append(loggers, l)
	}
	r.mu.RUnlock()

	var err error
	for _, l := range loggers {
		if ferr := l.Flush(); ferr != nil {
			err = combineErrors(err, ferr)
		}
	}
	return err
}

// Drop removes the named logger from the registry.
func (r *Registry) Drop(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.loggers, name)
}

// DropAll removes every registered logger and clears the default.
func (r *Registry) DropAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = make(map[string]*Logger)
	r.def = nil
}

// Get returns the named logger from DefaultRegistry.
func Get(name string) (*Logger, error) { return DefaultRegistry.Get(name) }

// GetDefault returns DefaultRegistry's default logger.
func GetDefault() (*Logger, error) { return DefaultRegistry.GetDefault() }

// SetDefault designates l as DefaultRegistry's default logger.
func SetDefault(l *Logger) { DefaultRegistry.SetDefault(l) }

// FlushAll flushes every logger registered in DefaultRegistry.
func FlushAll() error { return DefaultRegistry.FlushAll() }
