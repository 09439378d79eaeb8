/*
Package domain contains the core data model of the LCS visualizer.

It defines the entities produced by the LCS engine and consumed by the
playback controller and every presentation adapter. This package is kept
pure and free of external dependencies like I/O or timers, following
Hexagonal Architecture principles.

# Key Entities

  - Result: The DP table, the fill-event timeline and the backtracked path.
  - FillEvent: One computed cell, tagged match or extend.
  - PathEntry: One matched character recovered during backtracking.
  - Position: The playback cursor and its path-display / auto-play flags.
  - Highlight: The cells a renderer should emphasize at a given instant.
  - Frame: A complete snapshot handed to renderers and frame sinks.
*/
package domain
