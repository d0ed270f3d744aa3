package services_test

import (
	"io"
	"log/slog"
)

// testLogger returns a logger whose output is discarded.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
