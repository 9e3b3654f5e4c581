// Package logging provides structured logging helpers for calwidget.
//
// All logging goes through log/slog. The helpers here keep attribute names
// consistent across the manager, the HTTP server and the CLI:
//
//	logger := logging.WithOperation(slog.Default(), "calendar.build")
//	logger.Info("built calendar widget",
//	    logging.Calendar("team"),
//	    logging.Status(logging.StatusSuccess))
//
// License keys must never be logged directly, use MaskSecret.
package logging
