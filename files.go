package ctxlog

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// FilePerm is requested for log files created by the bundled openers.
const FilePerm os.FileMode = 0o666

// OpenFile opens path on fs for appending, creating the file if needed. The
// parent directory must already exist; openers run after the Guarantor.
func OpenFile(fs afero.Fs, path string) (afero.File, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePerm)
}

// WriteTracker wraps the writer of a backend that reports write failures
// out of band (zap, zerolog) and keeps the first error for the caller.
type WriteTracker struct {
	w   io.Writer
	mu  sync.Mutex
	err error
}

// TrackWrites returns a WriteTracker over w.
func TrackWrites(w io.Writer) *WriteTracker {
	return &WriteTracker{w: w}
}

func (t *WriteTracker) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		t.mu.Lock()
		if t.err == nil {
			t.err = err
		}
		t.mu.Unlock()
	}
	return n, err
}

// Sync flushes w when it supports it.
func (t *WriteTracker) Sync() error {
	if s, ok := t.w.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// Close closes w when it is an io.Closer.
func (t *WriteTracker) Close() error {
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Take returns the recorded error, if any, and clears it.
func (t *WriteTracker) Take() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	err := t.err
	t.err = nil
	return err
}
