package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var (
	level = new(slog.LevelVar)
)

func init() {
	level.Set(slog.LevelWarn)
}

func GetLogger(name string) *slog.Logger {
	h := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		},
	)

	l := slog.New(h).With("logger", name)

	return l
}

// SetLogLevel applies to every logger handed out by GetLogger, including ones created earlier.
func SetLogLevel(name string) error {
	var l slog.Level

	err := l.UnmarshalText([]byte(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("invalid log level %#+v: %w", name, err)
	}

	level.Set(l)

	return nil
}
