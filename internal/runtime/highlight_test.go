package runtime_test

import (
	"testing"

	"github.com/aretw0/lcsviz/internal/runtime"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight_CurrentEvent(t *testing.T) {
	res := runtime.Compute([]rune("ABCBDAB"), []rune("BDCABA"))

	h := runtime.Highlight(res, domain.Position{Cursor: 3})
	require.NotNil(t, h.Current)
	assert.Empty(t, h.Path)
	assert.Equal(t, res.Events[3], *h.Current)
	assert.Equal(t, domain.HighlightMatch, h.KindAt(1, 4))
	assert.Equal(t, domain.HighlightNone, h.KindAt(1, 3))

	h = runtime.Highlight(res, domain.Position{Cursor: 0})
	assert.Equal(t, domain.HighlightExtend, h.KindAt(1, 1))
}

func TestHighlight_Path(t *testing.T) {
	res := runtime.Compute([]rune("ABCBDAB"), []rune("BDCABA"))

	h := runtime.Highlight(res, domain.Position{Cursor: 41, ShowPath: true})
	assert.Nil(t, h.Current, "path display replaces the current event")
	assert.Equal(t, res.Path, h.Path)
	for _, p := range res.Path {
		assert.Equal(t, domain.HighlightPath, h.KindAt(p.I, p.J))
	}
	assert.Equal(t, domain.HighlightNone, h.KindAt(7, 6))

	h.Path[0].Char = "Z"
	assert.Equal(t, "B", res.Path[0].Char, "highlight must not alias the result")
}

func TestHighlight_Empty(t *testing.T) {
	res := runtime.Compute(nil, nil)

	h := runtime.Highlight(res, domain.Position{})
	assert.Nil(t, h.Current)
	assert.Empty(t, h.Path)
	assert.Equal(t, domain.HighlightNone, h.KindAt(0, 0))
}
