// Package log provides structured logging for the utility layer.
//
// Loggers are immutable: every With* method returns a copy, so a component
// can hold a named logger without affecting others.
//
//	logger := log.New().WithName("timex")
//	logger.Debug("range rejected", log.Field("message_key", key))
package log
