package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

// Log formats.
const (
	LogFormatPretty = "pretty" // LogFormatPretty prints colored console lines.
	LogFormatText   = "text"   // LogFormatText prints slog key=value lines.
	LogFormatJSON   = "json"   // LogFormatJSON prints one JSON object per line.
)

// Log level names accepted in config and flags.
const (
	LogLevelStrDisabled = "NONE"
	LogLevelStrDebug    = "DEBUG"
	LogLevelStrInfo     = "INFO"
	LogLevelStrWarn     = "WARN"
	LogLevelStrError    = "ERROR"
)

// slogLevel maps a level name to a slog level. NONE maps to a level no
// record reaches.
func slogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case LogLevelStrDisabled, "":
		return slog.Level(100), nil
	case LogLevelStrDebug:
		return slog.LevelDebug, nil
	case LogLevelStrInfo:
		return slog.LevelInfo, nil
	case LogLevelStrWarn:
		return slog.LevelWarn, nil
	case LogLevelStrError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l >= slog.Level(100):
		return pterm.LogLevelDisabled
	case l >= slog.LevelError:
		return pterm.LogLevelError
	case l >= slog.LevelWarn:
		return pterm.LogLevelWarn
	case l >= slog.LevelInfo:
		return pterm.LogLevelInfo
	default:
		return pterm.LogLevelDebug
	}
}

// NewLogger creates a logger writing to w in the given format.
func NewLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := slogLevel(level)
	if err != nil {
		return nil, err
	}

	switch format {
	case LogFormatPretty, "":
		l := pterm.DefaultLogger
		l.Writer = w
		l.Level = ptermLevel(lvl)
		return slog.New(pterm.NewSlogHandler(&l)), nil
	case LogFormatText:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
