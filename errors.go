package ctxlog

import "github.com/cockroachdb/errors"

var (
	ErrUnknownLevel    = errors.New("ctxlog: unknown level")
	ErrNoDestination   = errors.New("ctxlog: no destination configured")
	ErrNoOpener        = errors.New("ctxlog: no sink opener configured")
	ErrEmptyDirectory  = errors.New("ctxlog: destination returned an empty log directory")
	ErrEmptyFileName   = errors.New("ctxlog: destination returned an empty file name")
	ErrInvalidFileName = errors.New("ctxlog: file name must not contain a path separator")
	ErrCreateDirectory = errors.New("ctxlog: cannot create log directory")
	ErrOpenSink        = errors.New("ctxlog: cannot open log sink")
	ErrLoggerClosed    = errors.New("ctxlog: file logger is closed")
)
