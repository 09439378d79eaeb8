package domain

import "time"

// Playback bounds exposed to the configuration surface.
const (
	MinDelay     = 100 * time.Millisecond
	MaxDelay     = 1000 * time.Millisecond
	DelayStep    = 100 * time.Millisecond
	DefaultDelay = 500 * time.Millisecond
)

// Input bounds used by the default normalizer and the random generator.
const (
	DefaultMaxLength    = 15
	DefaultRandomLength = 8
)

// Default input pair shown when no sequences are supplied.
const (
	DefaultFirst  = "ABCBDAB"
	DefaultSecond = "BDCABA"
)

// ClampDelay forces d into [MinDelay, MaxDelay].
func ClampDelay(d time.Duration) time.Duration {
	if d < MinDelay {
		return MinDelay
	}
	if d > MaxDelay {
		return MaxDelay
	}
	return d
}
