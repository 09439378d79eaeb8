package domain

import "errors"

// ErrDelayOutOfRange is returned when a configured delay falls outside [MinDelay, MaxDelay].
var ErrDelayOutOfRange = errors.New("delay out of range")

// ErrInvalidConfig is returned when a configuration value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrSequenceTooLong is returned when a sequence exceeds the accepted length.
var ErrSequenceTooLong = errors.New("sequence too long")
