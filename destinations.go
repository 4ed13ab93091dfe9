package ctxlog

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/trickstertwo/xclock"
)

// Static writes every record to the same file.
type Static struct {
	Dir  string
	File string
}

func (s Static) LogDirectory() string { return s.Dir }
func (s Static) FileName() string     { return s.File }

// DailyDirectory keeps one directory per day below Root, e.g.
// /var/log/app/2025/01/31/app.log.
type DailyDirectory struct {
	Root   string
	Layout string // time layout of the dated part; default "2006/01/02"
	File   string
	Clock  xclock.Clock // optional; defaults to xclock.Now
}

func (d DailyDirectory) LogDirectory() string {
	layout := d.Layout
	if layout == "" {
		layout = "2006/01/02"
	}
	if d.Root == "" {
		return ""
	}
	return filepath.Join(d.Root, filepath.FromSlash(now(d.Clock).Format(layout)))
}

func (d DailyDirectory) FileName() string { return d.File }

// DailyFile keeps a single directory with one dated file per day, e.g.
// /var/log/app/app-2025-01-31.log.
type DailyFile struct {
	Dir    string
	Prefix string
	Layout string // default "2006-01-02"
	Ext    string // default ".log"
	Clock  xclock.Clock
}

func (d DailyFile) LogDirectory() string { return d.Dir }

func (d DailyFile) FileName() string {
	layout := d.Layout
	if layout == "" {
		layout = "2006-01-02"
	}
	ext := d.Ext
	if ext == "" {
		ext = ".log"
	}
	stamp := now(d.Clock).Format(layout)
	if d.Prefix == "" {
		return stamp + ext
	}
	return d.Prefix + "-" + stamp + ext
}

// Scoped gives every scope (tenant, channel, job ...) its own directory below
// Root. Scope is consulted on each resolution.
type Scoped struct {
	Root  string
	File  string
	Scope func() string
}

// DefaultScope is used when Scope is nil or yields nothing usable.
const DefaultScope = "default"

func (s Scoped) LogDirectory() string {
	if s.Root == "" {
		return ""
	}
	scope := DefaultScope
	if s.Scope != nil {
		scope = sanitizeScope(s.Scope())
	}
	return filepath.Join(s.Root, scope)
}

func (s Scoped) FileName() string { return s.File }

// sanitizeScope keeps a scope to a single path element.
func sanitizeScope(scope string) string {
	scope = strings.Map(func(r rune) rune {
		if strings.ContainsRune(separators, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(scope))
	switch scope {
	case "", ".", "..":
		return DefaultScope
	}
	return scope
}

func now(c xclock.Clock) time.Time {
	if c == nil {
		return xclock.Now()
	}
	return c.Now()
}
