package ctxlog

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// separators accepted at the end of a directory value.
const separators = "/" + string(os.PathSeparator)

// Resolver turns a Destination into a file path and, through its Guarantor,
// makes sure the directory of that path exists.
type Resolver struct {
	*Guarantor
}

// NewResolver returns a Resolver on fs (the OS filesystem when nil).
func NewResolver(fs afero.Fs, obs ...Observer) *Resolver {
	return &Resolver{Guarantor: NewGuarantor(fs, obs...)}
}

// Directory returns the directory d currently writes into.
func (r *Resolver) Directory(d Destination) (string, error) {
	dir := d.LogDirectory()
	if dir == "" {
		return "", ErrEmptyDirectory
	}
	return dir, nil
}

// ResolvePath queries d once for each hook and joins the answers.
func (r *Resolver) ResolvePath(d Destination) (string, error) {
	path, err := JoinPath(d.LogDirectory(), d.FileName())
	if err != nil {
		r.obs.notify(EventFailed, path, err)
		return "", err
	}
	r.obs.notify(EventResolved, path, nil)
	return path, nil
}

// PreparePath resolves the destination and ensures its directory, in that
// order. The path is only returned once the directory is known to exist.
func (r *Resolver) PreparePath(d Destination) (string, error) {
	path, _, err := r.prepare(d)
	return path, err
}

// prepare is PreparePath that also reports whether the directory had to be
// created.
func (r *Resolver) prepare(d Destination) (path string, created bool, err error) {
	dir := d.LogDirectory()
	path, err = JoinPath(dir, d.FileName())
	if err != nil {
		r.obs.notify(EventFailed, path, err)
		return "", false, err
	}
	r.obs.notify(EventResolved, path, nil)

	if created, err = r.ensure(dir); err != nil {
		return "", false, err
	}
	return path, created, nil
}

// JoinPath joins dir and file with exactly one separator, whatever trailing
// separators dir carries.
func JoinPath(dir, file string) (string, error) {
	switch {
	case dir == "":
		return "", ErrEmptyDirectory
	case file == "":
		return "", ErrEmptyFileName
	case strings.ContainsAny(file, separators):
		return "", ErrInvalidFileName
	}
	return strings.TrimRight(dir, separators) + string(os.PathSeparator) + file, nil
}
