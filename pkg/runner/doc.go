/*
Package runner implements the auto-play cadence of the LCS visualizer.

It acts as the bridge between the playback controller, which has no notion
of time, and a repeating ticker. The Player owns at most one outstanding
ticker: starting it again, changing its delay or stopping it always cancels
the previous one before anything new is armed.

# Key Components

  - Player: Arms, re-arms and disarms the repeating tick.
  - TickFunc: The callback invoked on every tick; returning false ends auto-play.
  - TickerFactory: Pluggable ticker source, real by default, manual in tests.

# Usage

	p := runner.NewPlayer(func(ctx context.Context) bool {
		return visualizer.Advance(ctx)
	}, runner.WithLogger(logger))

	p.Start(500 * time.Millisecond)
	defer p.Stop()
*/
package runner
