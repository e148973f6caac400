package domain

import "errors"

// Domain errors represent error conditions in the vizbridge domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("vizbridge: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("vizbridge: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("vizbridge: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("vizbridge: invalid configuration")

	// ErrUnknownZone is returned when a command references a zone that is
	// not registered. Other zones are unaffected.
	ErrUnknownZone = errors.New("vizbridge: unknown zone")

	// ErrUnknownCommand is returned for message envelopes whose type tag
	// has no registered handler.
	ErrUnknownCommand = errors.New("vizbridge: unknown command")
)
