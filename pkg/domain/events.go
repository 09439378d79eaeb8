package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRecompute EventType = "recompute"
	EventStep      EventType = "step"
	EventReveal    EventType = "reveal"
	EventPlay      EventType = "play"
	EventPause     EventType = "pause"
	EventReset     EventType = "reset"
	EventDelay     EventType = "delay"
)

// Direction of a step.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RecomputeEvent is emitted after the engine ran on a new input pair.
type RecomputeEvent struct {
	EventBase
	A      string `json:"a"`
	B      string `json:"b"`
	Steps  int    `json:"steps"`
	Length int    `json:"length"`
	LCS    string `json:"lcs"`
}

// StepEvent represents one move of the playback cursor or the path flag.
type StepEvent struct {
	EventBase
	Direction Direction  `json:"direction"`
	Position  Position   `json:"position"`
	Fill      *FillEvent `json:"fill,omitempty"`
	Auto      bool       `json:"auto,omitempty"` // driven by auto-play
}

// PlaybackEvent covers play, pause, reset and delay changes.
type PlaybackEvent struct {
	EventBase
	Position Position      `json:"position"`
	Delay    time.Duration `json:"delay"`
}

// LifecycleHooks defines callbacks for visualizer observability.
type LifecycleHooks struct {
	OnRecompute func(context.Context, *RecomputeEvent)
	OnStep      func(context.Context, *StepEvent)
	OnReveal    func(context.Context, *StepEvent)
	OnPlayback  func(context.Context, *PlaybackEvent)
}
