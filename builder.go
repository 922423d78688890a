// FILE: lixenwraith/colog/builder.go
package colog

// Builder provides a fluent API for constructing a Logger, mirroring the
// teacher's builder.go.
type Builder struct {
	name string
	cfg  *Config
	err  error
}

// NewBuilder starts a Builder from the default configuration.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Name sets the logger's registry name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Build validates the accumulated configuration and constructs a Logger.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewLogger(b.name, b.cfg)
}

// Level sets the minimum level a record must meet to be dispatched.
func (b *Builder) Level(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// Format selects "text" or "json" output.
func (b *Builder) Format(format string) *Builder {
	b.cfg.Format = format
	return b
}

// Console enables console output to the given target ("stdout"/"stderr").
func (b *Builder) Console(target string) *Builder {
	b.cfg.EnableConsole = true
	b.cfg.ConsoleTarget = target
	return b
}

// File enables rotating file output in directory/name.extension.
func (b *Builder) File(directory, name, extension string) *Builder {
	b.cfg.EnableFile = true
	b.cfg.Directory = directory
	b.cfg.Name = name
	b.cfg.Extension = extension
	return b
}

// MaxSizeMB sets the rotation threshold for file output.
func (b *Builder) MaxSizeMB(mb int) *Builder {
	b.cfg.MaxSizeMB = mb
	return b
}
