package ctxlog

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// DirPerm is requested for created log directories; the process umask still
// applies.
const DirPerm os.FileMode = 0o777

// Guarantor makes sure a log directory exists before anything is written
// into it. It only ever creates directories.
type Guarantor struct {
	fs  afero.Fs
	obs observers
}

// NewGuarantor returns a Guarantor on fs (the OS filesystem when nil).
func NewGuarantor(fs afero.Fs, obs ...Observer) *Guarantor {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Guarantor{fs: fs, obs: obs}
}

// Fs returns the filesystem the guarantor operates on.
func (g *Guarantor) Fs() afero.Fs { return g.fs }

// EnsureDirectory is a no-op when dir is already a directory; otherwise it
// creates dir and any missing parents. Losing a creation race to another
// writer counts as success.
func (g *Guarantor) EnsureDirectory(dir string) error {
	_, err := g.ensure(dir)
	return err
}

// ensure reports whether this call created dir.
func (g *Guarantor) ensure(dir string) (bool, error) {
	if dir == "" {
		g.obs.notify(EventFailed, dir, ErrEmptyDirectory)
		return false, ErrEmptyDirectory
	}
	if ok, _ := afero.IsDir(g.fs, dir); ok {
		return false, nil
	}

	if mkErr := g.fs.MkdirAll(dir, DirPerm); mkErr != nil {
		if ok, _ := afero.IsDir(g.fs, dir); ok {
			return false, nil
		}
		err := errors.Mark(errors.Wrapf(mkErr, "ctxlog: create log directory %q", dir), ErrCreateDirectory)
		g.obs.notify(EventFailed, dir, err)
		return false, err
	}

	// MkdirAll succeeds silently on some filesystems when dir names a file.
	if ok, _ := afero.IsDir(g.fs, dir); !ok {
		err := errors.Mark(errors.Newf("ctxlog: %q exists and is not a directory", dir), ErrCreateDirectory)
		g.obs.notify(EventFailed, dir, err)
		return false, err
	}

	g.obs.notify(EventDirectoryCreated, dir, nil)
	return true, nil
}
