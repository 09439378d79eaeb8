// Package lcsviz is an interactive teaching visualizer for the Longest
// Common Subsequence dynamic-programming algorithm.
//
// It computes the LCS table for two short character sequences, exposes the
// order in which the cells were filled as a timeline that can be stepped
// through one cell at a time (or auto-played), and finally reveals the
// backtracked path that spells out the LCS.
//
// # Architecture
//
//	internal/runtime   pure engine (Compute) and playback Controller
//	pkg/domain         Result, FillEvent, PathEntry, Position, Frame
//	pkg/runner         auto-play Player with a single cancellable ticker
//	pkg/ports          FrameSink, the outbound port towards renderers
//	pkg/adapters       memory broadcaster, Redis publisher, HTTP and MCP surfaces
//
// The Visualizer type ties these together: it caches the engine result per
// input pair, resets playback whenever the pair changes, and publishes a
// Frame to every registered sink after each state change.
//
// # Usage
//
//	v := lcsviz.New("ABCBDAB", "BDCABA")
//	defer v.Close()
//
//	frame := v.StepForward(ctx)
//	fmt.Println(frame.Progress) // Step 2 of 42
package lcsviz
