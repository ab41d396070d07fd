package journal

import "errors"

// Sentinel errors for codec registration and replay.
var (
	ErrEmptyKind         = errors.New("empty action kind")
	ErrAlreadyRegistered = errors.New("kind already registered")
	ErrUnknownKind       = errors.New("no decoder registered for kind")
)
