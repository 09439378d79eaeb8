package runtime

import (
	"github.com/aretw0/lcsviz/pkg/domain"
)

// Controller holds the playback position over a fill-event timeline of
// fixed length. It has no timers; auto-play cadence is driven from outside
// through Tick.
//
// The zero value is a valid controller over an empty timeline.
type Controller struct {
	total    int
	cursor   int
	showPath bool
	playing  bool
}

// NewController returns a controller at its initial position for a
// timeline of total fill events.
func NewController(total int) Controller {
	if total < 0 {
		total = 0
	}
	return Controller{total: total}
}

// Total returns the number of fill events in the timeline.
func (c *Controller) Total() int {
	return c.total
}

// Position returns the current playback position.
func (c *Controller) Position() domain.Position {
	return domain.Position{
		Cursor:   c.cursor,
		ShowPath: c.showPath,
		Playing:  c.playing,
	}
}

// Terminal reports whether the timeline is exhausted and the path shown.
func (c *Controller) Terminal() bool {
	return c.total > 0 && c.cursor == c.lastIndex() && c.showPath
}

func (c *Controller) lastIndex() int {
	return c.total - 1
}

// StepForward advances the cursor by one event. From the last event it
// switches the path display on instead. It returns false when nothing
// changed.
func (c *Controller) StepForward() bool {
	switch {
	case c.total == 0:
		return false
	case c.cursor < c.lastIndex():
		c.cursor++
		return true
	case !c.showPath:
		c.showPath = true
		return true
	default:
		return false
	}
}

// StepBackward mirrors StepForward: it hides the path first, without
// moving the cursor, and otherwise moves the cursor back by one event.
func (c *Controller) StepBackward() bool {
	switch {
	case c.total == 0:
		return false
	case c.showPath:
		c.showPath = false
		return true
	case c.cursor > 0:
		c.cursor--
		return true
	default:
		return false
	}
}

// TogglePlay flips auto-play. At the terminal position it rewinds to the
// start and enables auto-play. On an empty timeline it does nothing.
// It returns the resulting auto-play flag.
func (c *Controller) TogglePlay() bool {
	if c.total == 0 {
		return false
	}
	if c.Terminal() {
		c.cursor = 0
		c.showPath = false
		c.playing = true
		return true
	}
	c.playing = !c.playing
	return c.playing
}

// Pause disables auto-play. It returns false if auto-play was already off.
func (c *Controller) Pause() bool {
	if !c.playing {
		return false
	}
	c.playing = false
	return true
}

// Reset returns to the first event with path display and auto-play off.
func (c *Controller) Reset() {
	c.cursor = 0
	c.showPath = false
	c.playing = false
}

// Tick performs one auto-play step. At the terminal position it disables
// auto-play instead of looping and returns false.
func (c *Controller) Tick() bool {
	if !c.playing {
		return false
	}
	if c.total == 0 || c.Terminal() {
		c.playing = false
		return false
	}
	return c.StepForward()
}

// OnSequencesChanged derives the engine result for a new input pair
// together with a controller reset to its initial position.
func OnSequencesChanged(a, b []rune) (domain.Result, Controller) {
	res := Compute(a, b)
	return res, NewController(res.Steps())
}
