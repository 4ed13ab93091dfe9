package ctxlog

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Level mirrors slog numeric semantics and spreads the eight standard
// severities around it (Notice sits between Info and Warning, Critical, Alert
// and Emergency above Error).
type Level int

const (
	LevelDebug     Level = -4
	LevelInfo      Level = 0
	LevelNotice    Level = 2
	LevelWarning   Level = 4
	LevelError     Level = 8
	LevelCritical  Level = 10
	LevelAlert     Level = 12
	LevelEmergency Level = 14
)

var levels = []Level{
	LevelDebug,
	LevelInfo,
	LevelNotice,
	LevelWarning,
	LevelError,
	LevelCritical,
	LevelAlert,
	LevelEmergency,
}

// Levels returns every standard level in ascending severity.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelNotice:
		return "notice"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	case LevelAlert:
		return "alert"
	case LevelEmergency:
		return "emergency"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel is case-insensitive and accepts the common short aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "notice":
		return LevelNotice, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	case "critical", "crit":
		return LevelCritical, nil
	case "alert":
		return LevelAlert, nil
	case "emergency", "emerg":
		return LevelEmergency, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLevel, "%q", s)
	}
}
