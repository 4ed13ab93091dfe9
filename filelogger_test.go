package ctxlog

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOpener opens stubSinks and remembers whether the directory of each
// path existed at open time.
type recordingOpener struct {
	fs      afero.Fs
	mu      sync.Mutex
	sinks   []*stubSink
	dirSeen []bool
	err     error
}

type stubSink struct {
	path   string
	mu     sync.Mutex
	lines  []stubCall
	closed bool
}

func (s *stubSink) Log(level Level, msg string, ctx Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("write to closed sink")
	}
	s.lines = append(s.lines, stubCall{Level: level, Msg: msg, Ctx: ctx})
	return nil
}

func (s *stubSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (o *recordingOpener) Open(path string) (Sink, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return nil, o.err
	}
	ok, _ := afero.IsDir(o.fs, filepath.Dir(path))
	o.dirSeen = append(o.dirSeen, ok)
	s := &stubSink{path: path}
	o.sinks = append(o.sinks, s)
	return s, nil
}

func TestBuilder_RequiresDestinationAndOpener(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder().WithOpener(&recordingOpener{}).Build()
	assert.True(t, errors.Is(err, ErrNoDestination))

	_, err = NewBuilder().WithDestination(Static{Dir: "/l", File: "f"}).Build()
	assert.True(t, errors.Is(err, ErrNoOpener))
}

func TestFileLogger_EnsuresDirectoryBeforeOpening(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	op := &recordingOpener{fs: fs}
	fl, err := NewBuilder().
		WithDestination(Static{Dir: "/var/log/app/", File: "app.log"}).
		WithOpener(op).
		WithFs(fs).
		Build()
	require.NoError(t, err)

	ctx := Context{"user": "u-1"}
	require.NoError(t, fl.Warning("disk almost full", ctx))
	require.NoError(t, fl.Info("second", nil))

	require.Len(t, op.sinks, 1, "same destination reuses the sink")
	assert.Equal(t, []bool{true}, op.dirSeen)
	assert.Equal(t, filepath.FromSlash("/var/log/app/app.log"), fl.Path())

	lines := op.sinks[0].lines
	require.Len(t, lines, 2)
	assert.Equal(t, LevelWarning, lines[0].Level)
	assert.Equal(t, "disk almost full", lines[0].Msg)
	assert.True(t, sameMap(ctx, lines[0].Ctx))
	assert.Equal(t, LevelInfo, lines[1].Level)

	require.NoError(t, fl.Close())
	assert.True(t, op.sinks[0].closed)
	assert.True(t, errors.Is(fl.Debug("after close", nil), ErrLoggerClosed))
	require.NoError(t, fl.Close())
}

func TestFileLogger_ClosedLoggerTouchesNothing(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	op := &recordingOpener{fs: fs}
	var events []Event
	fl, err := NewBuilder().
		WithDestination(Static{Dir: "/var/log/app", File: "app.log"}).
		WithOpener(op).
		WithFs(fs).
		AddObserver(ObserverFunc(func(e Event) { events = append(events, e) })).
		Build()
	require.NoError(t, err)
	require.NoError(t, fl.Close())

	assert.True(t, errors.Is(fl.Info("after close", nil), ErrLoggerClosed))
	exists, err := afero.DirExists(fs, "/var/log/app")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, op.sinks)
	assert.Empty(t, events)
}

func TestFileLogger_SwitchesSinkWhenDateChanges(t *testing.T) {
	restoreClock(t)

	fs := afero.NewMemMapFs()
	op := &recordingOpener{fs: fs}
	var kinds []EventKind
	fl, err := NewBuilder().
		WithDestination(DailyDirectory{Root: "/logs", File: "app.log"}).
		WithOpener(op).
		WithFs(fs).
		AddObserver(ObserverFunc(func(e Event) { kinds = append(kinds, e.Kind) })).
		Build()
	require.NoError(t, err)

	freeze(t, time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC))
	require.NoError(t, fl.Info("day one", nil))
	freeze(t, time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, fl.Info("day two", nil))

	require.Len(t, op.sinks, 2)
	assert.Equal(t, filepath.FromSlash("/logs/2025/01/31/app.log"), op.sinks[0].path)
	assert.Equal(t, filepath.FromSlash("/logs/2025/02/01/app.log"), op.sinks[1].path)
	assert.True(t, op.sinks[0].closed, "previous sink is retired")
	assert.False(t, op.sinks[1].closed)
	assert.Equal(t, []bool{true, true}, op.dirSeen)

	assert.Equal(t, []EventKind{
		EventResolved, EventDirectoryCreated, EventSinkOpened,
		EventResolved, EventDirectoryCreated, EventSinkOpened, EventSinkClosed,
	}, kinds)
}

func TestFileLogger_DirectoryFailureStopsTheWrite(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	op := &recordingOpener{fs: fs}
	fl, err := NewBuilder().
		WithDestination(Static{Dir: "/var/log/app", File: "app.log"}).
		WithOpener(op).
		WithFs(fs).
		Build()
	require.NoError(t, err)

	err = fl.Error("never written", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCreateDirectory))
	assert.Empty(t, op.sinks, "no sink may be opened for a missing directory")
	assert.Empty(t, fl.Path())
}

func TestFileLogger_OpenFailure(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	op := &recordingOpener{fs: fs, err: errors.New("too many open files")}
	fl, err := NewBuilder().
		WithDestination(Static{Dir: "/var/log/app", File: "app.log"}).
		WithOpener(op).
		WithFs(fs).
		Build()
	require.NoError(t, err)

	err = fl.Alert("x", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenSink))
	assert.Contains(t, err.Error(), "too many open files")
}

func TestFileLogger_EmptyFileNameFailsFast(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	op := &recordingOpener{fs: fs}
	fl, err := NewBuilder().
		WithDestination(Static{Dir: "/var/log/app"}).
		WithOpener(op).
		WithFs(fs).
		Build()
	require.NoError(t, err)

	assert.True(t, errors.Is(fl.Info("x", nil), ErrEmptyFileName))
	exists, err := afero.DirExists(fs, "/var/log/app")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileLogger_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	op := &recordingOpener{fs: fs}
	fl, err := NewBuilder().
		WithDestination(Static{Dir: "/var/log/app", File: "app.log"}).
		WithOpener(op).
		WithFs(fs).
		Build()
	require.NoError(t, err)

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				assert.NoError(t, fl.Debug("tick", nil))
			}
		}()
	}
	wg.Wait()

	require.Len(t, op.sinks, 1)
	assert.Len(t, op.sinks[0].lines, writers*perWriter)
}

// fileSink writes one line per record into a real file on fs.
type fileSink struct{ f afero.File }

func (s fileSink) Log(_ Level, msg string, _ Context) error {
	_, err := s.f.WriteString(msg + "\n")
	return err
}

func (s fileSink) Close() error { return s.f.Close() }

func fileOpener(fs afero.Fs) OpenerFunc {
	return func(path string) (Sink, error) {
		f, err := OpenFile(fs, path)
		if err != nil {
			return nil, err
		}
		return fileSink{f}, nil
	}
}

func TestFileLogger_ReopensWhenDirectoryIsRemoved(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs")
	fs := afero.NewOsFs()
	var kinds []EventKind
	var mu sync.Mutex
	fl, err := NewBuilder().
		WithDestination(Static{Dir: dir, File: "a.log"}).
		WithOpener(fileOpener(fs)).
		WithFs(fs).
		AddObserver(ObserverFunc(func(e Event) {
			mu.Lock()
			defer mu.Unlock()
			kinds = append(kinds, e.Kind)
		})).
		Build()
	require.NoError(t, err)
	defer fl.Close()

	require.NoError(t, fl.Info("before removal", nil))
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, fl.Info("after removal", nil))

	data, err := os.ReadFile(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	assert.Equal(t, "after removal\n", string(data))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventKind{
		EventResolved, EventDirectoryCreated, EventSinkOpened,
		EventResolved, EventDirectoryCreated, EventSinkOpened, EventSinkClosed,
	}, kinds)
}

func TestFileLogger_ObserverMayLogThroughTheSameLogger(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	op := &recordingOpener{fs: fs}
	var (
		fl   *FileLogger
		once sync.Once
	)
	fl, err := NewBuilder().
		WithDestination(Static{Dir: "/var/log/app", File: "app.log"}).
		WithOpener(op).
		WithFs(fs).
		AddObserver(ObserverFunc(func(e Event) {
			if e.Kind == EventSinkOpened {
				once.Do(func() { assert.NoError(t, fl.Notice("sink opened", nil)) })
			}
		})).
		Build()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- fl.Info("first", nil) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("write blocked while an observer logged through the same logger")
	}

	require.Len(t, op.sinks, 1)
	lines := op.sinks[0].lines
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Msg)
	assert.Equal(t, "sink opened", lines[1].Msg)
}
