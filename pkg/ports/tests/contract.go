package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/ports"
)

// FrameTransportContractTest is a reusable test suite that verifies a sink
// delivers published frames, in order and intact, to a source subscriber.
func FrameTransportContractTest(t *testing.T, sink ports.FrameSink, source ports.FrameSource) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frames, release, err := source.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer release()

	sent := []domain.Frame{
		{Seq: 1, A: "AB", B: "BA", Length: 1, LCS: "B", Position: domain.Position{Cursor: 0}},
		{Seq: 2, A: "AB", B: "BA", Length: 1, LCS: "B", Position: domain.Position{Cursor: 1}},
		{Seq: 3, A: "AB", B: "BA", Length: 1, LCS: "B", Position: domain.Position{Cursor: 3, ShowPath: true}},
	}

	// 1. Delivery in order
	t.Run("Publish_Delivers", func(t *testing.T) {
		for _, f := range sent {
			if err := sink.Publish(ctx, f); err != nil {
				t.Fatalf("publish seq %d: %v", f.Seq, err)
			}
		}
		for _, want := range sent {
			select {
			case got, ok := <-frames:
				if !ok {
					t.Fatalf("subscription closed before seq %d", want.Seq)
				}
				if got.Seq != want.Seq || got.Position != want.Position || got.LCS != want.LCS {
					t.Errorf("frame mismatch: got %+v, want %+v", got, want)
				}
			case <-ctx.Done():
				t.Fatalf("timed out waiting for seq %d", want.Seq)
			}
		}
	})

	// 2. Release closes the channel
	t.Run("Release_Closes", func(t *testing.T) {
		release()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case _, ok := <-frames:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("channel not closed after release")
			}
		}
	})
}
