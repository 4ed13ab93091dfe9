package zerolog

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/ctxlog"
)

func benchAdapter(b *testing.B, zl zerolog.Logger, level ctxlog.Level, ctx ctxlog.Context) {
	a := New(zl)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Log(level, "bench", ctx)
	}
}

func BenchmarkZerologAdapter_JSON_5Fields(b *testing.B) {
	ctx := ctxlog.Context{"a": "b", "i": 42, "ok": true, "f": 3.14, "svc": "api"}
	benchAdapter(b, zerolog.New(io.Discard), ctxlog.LevelInfo, ctx)
}

func BenchmarkZerologAdapter_Disabled(b *testing.B) {
	ctx := ctxlog.Context{"a": "b"}
	benchAdapter(b, zerolog.New(io.Discard).Level(zerolog.InfoLevel), ctxlog.LevelDebug, ctx)
}
