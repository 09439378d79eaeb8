package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lcsviz/pkg/adapters/memory"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_Contract(t *testing.T) {
	b := memory.NewBroadcaster()
	tests.FrameTransportContractTest(t, b, b)
}

func TestBroadcaster_FanOut(t *testing.T) {
	b := memory.NewBroadcaster()
	ctx := context.Background()

	first, releaseFirst, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer releaseFirst()
	second, releaseSecond, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer releaseSecond()
	assert.Equal(t, 2, b.Subscribers())

	require.NoError(t, b.Publish(ctx, domain.Frame{Seq: 7}))
	assert.Equal(t, uint64(7), (<-first).Seq)
	assert.Equal(t, uint64(7), (<-second).Seq)

	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, uint64(7), last.Seq)
}

func TestBroadcaster_SlowSubscriberDrops(t *testing.T) {
	b := memory.NewBroadcaster(memory.WithBuffer(2))
	ctx := context.Background()

	ch, release, err := b.Subscribe(ctx)
	require.NoError(t, err)
	defer release()

	for i := 1; i <= 5; i++ {
		require.NoError(t, b.Publish(ctx, domain.Frame{Seq: uint64(i)}))
	}

	assert.Equal(t, uint64(3), b.Dropped())
	assert.Equal(t, uint64(1), (<-ch).Seq)
	assert.Equal(t, uint64(2), (<-ch).Seq)
}

func TestBroadcaster_ContextReleases(t *testing.T) {
	b := memory.NewBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())

	ch, release, err := b.Subscribe(ctx)
	require.NoError(t, err)
	cancel()

	assert.Eventually(t, func() bool { return b.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-ch
	assert.False(t, open)
	release()

	_, _, err = b.Subscribe(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBroadcaster_LastEmpty(t *testing.T) {
	_, ok := memory.NewBroadcaster().Last()
	assert.False(t, ok)
}
