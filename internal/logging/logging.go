// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Init installs a JSON slog handler on stderr at the given level. An
// unknown level falls back to info rather than failing the run.
func Init(level string) {
	var programLevel slog.Level
	if err := programLevel.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %s: %v, using info\n", level, err)
		programLevel = slog.LevelInfo
	}

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: programLevel,
	})
	slog.SetDefault(slog.New(h))
}
