package zerolog

import (
	"io"
	"os"

	"github.com/trickstertwo/ctxlog"
)

// Env:
//
//	CTXLOG_LEVEL   : debug|info|notice|warning|error|critical|alert|emergency (default info)
//	CTXLOG_CONSOLE : 1 enables ConsoleWriter (pretty output)
func init() {
	ctxlog.RegisterDefaultAdapterFactory(func(w io.Writer) ctxlog.Adapter {
		if w == nil {
			w = os.Stderr
		}
		level, err := ctxlog.ParseLevel(os.Getenv("CTXLOG_LEVEL"))
		if err != nil {
			level = ctxlog.LevelInfo
		}
		cfg := Config{
			MinLevel: level,
			Console:  os.Getenv("CTXLOG_CONSOLE") == "1",
		}
		return ctxlog.Leveled(New(newZerolog(w, cfg)))
	})
}
