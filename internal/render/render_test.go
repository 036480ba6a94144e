package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/ashfall/internal/world"
)

func TestProjectionRoundTrip(t *testing.T) {
	for _, p := range []world.Pos{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 3, Y: 5}, {X: 12, Y: 12}, {X: 40, Y: 7}} {
		sx, sy := GridToScreen(float64(p.X), float64(p.Y))
		assert.Equal(t, p, ScreenToGrid(sx, sy), "round trip for %v", p)
	}
}

func TestProjectionAxes(t *testing.T) {
	// +x on the grid runs down-right on screen, +y runs down-left.
	x0, y0 := GridToScreen(0, 0)
	x1, y1 := GridToScreen(1, 0)
	assert.Greater(t, x1, x0)
	assert.Greater(t, y1, y0)

	x2, y2 := GridToScreen(0, 1)
	assert.Less(t, x2, x0)
	assert.Greater(t, y2, y0)

	// Opposite grid steps mirror horizontally at the same depth.
	assert.Equal(t, y1, y2)
	assert.Equal(t, x1-x0, x0-x2)
}

func TestScreenToGridPicksNearestCell(t *testing.T) {
	sx, sy := GridToScreen(4, 7)
	assert.Equal(t, world.Pos{X: 4, Y: 7}, ScreenToGrid(sx+3, sy+2), "clicks near a tile center resolve to it")
}
