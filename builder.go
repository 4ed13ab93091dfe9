package ctxlog

import "github.com/spf13/afero"

// Config for constructing a FileLogger (Factory data structure).
type Config struct {
	Destination Destination
	Opener      Opener
	Fs          afero.Fs // optional; defaults to afero.NewOsFs()
	Observers   []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithDestination(d Destination) *Builder {
	b.cfg.Destination = d
	return b
}

func (b *Builder) WithOpener(o Opener) *Builder {
	b.cfg.Opener = o
	return b
}

func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.cfg.Fs = fs
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the FileLogger (Factory + Builder).
func (b *Builder) Build() (*FileLogger, error) {
	if b.cfg.Destination == nil {
		return nil, ErrNoDestination
	}
	if b.cfg.Opener == nil {
		return nil, ErrNoOpener
	}
	cfg := b.cfg
	cfg.Observers = append([]Observer(nil), b.cfg.Observers...)
	return newFileLogger(cfg), nil
}
