package logger

import "log/slog"

// Error records a single error under the key "error". Nil errors produce
// an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// RuleName records the rule that produced a log line under the key "rule".
func RuleName(name string) slog.Attr {
	return slog.String("rule", name)
}

// Table records the table targeted by a database-backed check.
func Table(name string) slog.Attr {
	return slog.String("table", name)
}
