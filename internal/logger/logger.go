package logger

import (
	"log/slog"
	"os"
)

// Log is shared process-wide; handlers use it for server-side error detail
// that must never reach the response body.
var Log *slog.Logger

func init() {
	Log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
