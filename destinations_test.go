package ctxlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock"
)

func freeze(t *testing.T, at time.Time) {
	t.Helper()
	xclock.SetDefault(xclock.NewFrozen(at))
}

func restoreClock(t *testing.T) {
	t.Helper()
	old := xclock.Default()
	t.Cleanup(func() { xclock.SetDefault(old) })
}

func TestDailyDirectory_RotatesWithSimulatedDate(t *testing.T) {
	restoreClock(t)

	d := DailyDirectory{Root: "/var/log/app", File: "app.log"}
	r := NewResolver(afero.NewMemMapFs())

	freeze(t, time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC))
	first, err := r.ResolvePath(d)
	require.NoError(t, err)

	freeze(t, time.Date(2025, 2, 1, 0, 0, 1, 0, time.UTC))
	second, err := r.ResolvePath(d)
	require.NoError(t, err)

	assert.Equal(t, filepath.FromSlash("/var/log/app/2025/01/31/app.log"), first)
	assert.Equal(t, filepath.FromSlash("/var/log/app/2025/02/01/app.log"), second)
}

func TestDailyDirectory_ExplicitClockAndLayout(t *testing.T) {
	t.Parallel()

	d := DailyDirectory{
		Root:   "/var/log/app/",
		Layout: "2006-01",
		File:   "app.log",
		Clock:  xclock.NewFrozen(time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)),
	}
	assert.Equal(t, filepath.FromSlash("/var/log/app/2030-02"), d.LogDirectory())
	assert.Equal(t, "app.log", d.FileName())
	assert.Empty(t, DailyDirectory{File: "app.log"}.LogDirectory())
}

func TestDailyFile_NamesFileByDate(t *testing.T) {
	t.Parallel()

	clock := xclock.NewFrozen(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	d := DailyFile{Dir: "/var/log/app", Prefix: "laravel", Clock: clock}
	assert.Equal(t, "/var/log/app", d.LogDirectory())
	assert.Equal(t, "laravel-2025-01-01.log", d.FileName())

	bare := DailyFile{Dir: "/var/log/app", Layout: "20060102", Ext: ".txt", Clock: clock}
	assert.Equal(t, "20250101.txt", bare.FileName())
}

func TestDailyFile_RotatesWithSimulatedDate(t *testing.T) {
	restoreClock(t)

	d := DailyFile{Dir: "/var/log/app", Prefix: "app"}
	freeze(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
	first := d.FileName()
	freeze(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	second := d.FileName()

	assert.Equal(t, "app-2025-03-09.log", first)
	assert.Equal(t, "app-2025-03-10.log", second)
}

func TestScoped_DirectoryPerScope(t *testing.T) {
	t.Parallel()

	scope := "tenant-a"
	d := Scoped{Root: "/var/log/app", File: "app.log", Scope: func() string { return scope }}

	assert.Equal(t, filepath.FromSlash("/var/log/app/tenant-a"), d.LogDirectory())
	scope = "tenant-b"
	assert.Equal(t, filepath.FromSlash("/var/log/app/tenant-b"), d.LogDirectory())
}

func TestScoped_SanitizesScope(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":          DefaultScope,
		"  ":        DefaultScope,
		".":         DefaultScope,
		"..":        DefaultScope,
		"../../etc": ".._.._etc",
		"a/b":       "a_b",
		"job-42":    "job-42",
	}
	for in, want := range cases {
		d := Scoped{Root: "/logs", File: "f.log", Scope: func() string { return in }}
		assert.Equal(t, filepath.Join("/logs", want), d.LogDirectory(), in)
	}
	assert.Equal(t, filepath.Join("/logs", DefaultScope), Scoped{Root: "/logs"}.LogDirectory())
	assert.Empty(t, Scoped{File: "f.log"}.LogDirectory())
}
