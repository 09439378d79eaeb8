package ports

import (
	"context"

	"github.com/aretw0/lcsviz/pkg/domain"
)

// FrameSink receives a snapshot after every visualizer state change.
// Publish is called outside the visualizer lock and must not call back
// into the visualizer synchronously.
type FrameSink interface {
	Publish(ctx context.Context, frame domain.Frame) error
}

// FrameSource yields frames published by a remote visualizer.
type FrameSource interface {
	// Subscribe returns a channel of frames and a function releasing the
	// subscription. The channel is closed once released or ctx is done.
	Subscribe(ctx context.Context) (<-chan domain.Frame, func(), error)
}

// FrameSinkFunc adapts a plain function to FrameSink.
type FrameSinkFunc func(ctx context.Context, frame domain.Frame) error

// Publish calls f.
func (f FrameSinkFunc) Publish(ctx context.Context, frame domain.Frame) error {
	return f(ctx, frame)
}
