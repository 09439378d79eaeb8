package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/lcsviz"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*Server, *lcsviz.Visualizer) {
	t.Helper()
	viz := lcsviz.New("ABCBDAB", "BDCABA")
	t.Cleanup(func() { _ = viz.Close() })
	return NewServer(viz, nil), viz
}

func TestHandleCompute(t *testing.T) {
	s, viz := newServer(t)
	ctx := context.Background()

	resp, err := s.handleCompute(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"first":  "AGGTAB",
		"second": "GXTXAYB",
	})
	require.NoError(t, err)
	assert.Equal(t, "GTAB", resp.LCS)
	assert.Equal(t, 4, resp.Length)
	assert.Equal(t, 42, resp.Steps)
	assert.Len(t, resp.Path, 4)
	assert.Len(t, resp.Table, 7)

	t.Run("Case Sensitive", func(t *testing.T) {
		resp, err := s.handleCompute(ctx, mcp.CallToolRequest{}, map[string]interface{}{"first": "abc", "second": "ABC"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Length)
	})

	t.Run("Leaves Visualizer Alone", func(t *testing.T) {
		assert.Equal(t, "BDAB", viz.Result().LCS)
	})

	t.Run("Missing Argument", func(t *testing.T) {
		_, err := s.handleCompute(ctx, mcp.CallToolRequest{}, map[string]interface{}{"first": "A"})
		assert.ErrorContains(t, err, "second")
	})
	t.Run("Too Long", func(t *testing.T) {
		long := strings.Repeat("A", domain.DefaultMaxLength+1)
		_, err := s.handleCompute(ctx, mcp.CallToolRequest{}, map[string]interface{}{"first": "AB", "second": long})
		assert.ErrorIs(t, err, domain.ErrSequenceTooLong)

		edge := strings.Repeat("Ñ", domain.DefaultMaxLength)
		resp, err := s.handleCompute(ctx, mcp.CallToolRequest{}, map[string]interface{}{"first": edge, "second": "Ñ"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Length, "limit counts characters, not bytes")
	})
}

func TestHandleSetSequences(t *testing.T) {
	s, viz := newServer(t)
	ctx := context.Background()

	resp, err := s.handleSetSequences(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"first":  "xmjyauz",
		"second": "mzjawxu",
	})
	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, "MJAU", resp.Frame.LCS)
	assert.Equal(t, "MJAU", viz.Result().LCS)

	resp, err = s.handleSetSequences(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"first":  "XMJYAUZ",
		"second": "MZJAWXU",
	})
	require.NoError(t, err)
	assert.False(t, resp.Changed)

	_, err = s.handleSetSequences(ctx, mcp.CallToolRequest{}, map[string]interface{}{"first": 3, "second": "A"})
	assert.Error(t, err)
}

func TestFrameTools(t *testing.T) {
	s, _ := newServer(t)
	ctx := context.Background()

	forward := s.frameHandler(s.viz.StepForward)
	backward := s.frameHandler(s.viz.StepBackward)
	reset := s.frameHandler(s.viz.Reset)

	resp, err := forward(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Step 2 of 42", resp.Progress)

	resp, err = forward(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Frame.Position.Cursor)

	resp, err = backward(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Frame.Position.Cursor)

	resp, err = reset(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Position{}, resp.Frame.Position)
	assert.Equal(t, "Step 1 of 42", resp.Progress)
}
