// Package logger builds configured slog.Logger instances and provides the
// attribute helpers used across the module.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	)
//	log.Warn("check skipped", logger.Field("email"), logger.RuleName("unique"))
//
// The validation engine accepts any *slog.Logger; this package only makes
// constructing a consistent one convenient.
package logger
