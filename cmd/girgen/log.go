package main

import (
	"log/slog"
	"os"
)

// verboseLogger is the Sink logger for -verbose runs: a plain text
// handler on stderr, so piped .d.ts output on stdout stays clean.
func verboseLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
