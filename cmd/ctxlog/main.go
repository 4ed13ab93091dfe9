// Command ctxlog writes records through a configured ctxlog FileLogger and
// inspects where they land.
package main

import (
	"os"

	"github.com/trickstertwo/ctxlog"
	_ "github.com/trickstertwo/ctxlog/adapter/zerolog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_ = ctxlog.Default().Error("ctxlog failed", ctxlog.Context{"error": err})
		os.Exit(1)
	}
}
