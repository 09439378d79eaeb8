/*
Package ports defines the driven ports (interfaces) of the visualizer.

These interfaces decouple the playback core from the surfaces that show it,
so the same Visualizer can feed a terminal, an SSE stream and a Redis
channel at once.

# Key Interfaces

  - FrameSink: receives a Frame after every state change.
  - FrameSource: delivers Frames published elsewhere (e.g. a Redis channel).
*/
package ports
