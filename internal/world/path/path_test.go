package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/world"
)

// gridFrom builds a grid from rows of '.', '#' (solid), and '~' (water).
func gridFrom(rows ...string) *world.Grid {
	g := world.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			tile := world.Tile{Terrain: world.TerrainGrass}
			switch ch {
			case '#':
				tile = world.Tile{Terrain: world.TerrainWall, Collision: world.CollisionSolid}
			case '~':
				tile = world.Tile{Terrain: world.TerrainWater, Collision: world.CollisionWater}
			}
			g.Set(world.Pos{X: x, Y: y}, tile)
		}
	}
	return g
}

func routeCost(start world.Pos, route []world.Pos) float64 {
	cost := 0.0
	prev := start
	for _, p := range route {
		if p.X != prev.X && p.Y != prev.Y {
			cost += math.Sqrt2
		} else {
			cost += 1
		}
		prev = p
	}
	return cost
}

func TestIsWalkable(t *testing.T) {
	g := gridFrom(
		".#",
		"~.",
	)
	assert.True(t, IsWalkable(g, world.Pos{X: 0, Y: 0}))
	assert.False(t, IsWalkable(g, world.Pos{X: 1, Y: 0}), "solid tile")
	assert.False(t, IsWalkable(g, world.Pos{X: 0, Y: 1}), "water tile")
	assert.False(t, IsWalkable(g, world.Pos{X: -1, Y: 0}), "out of bounds")
	assert.False(t, IsWalkable(g, world.Pos{X: 0, Y: 2}), "out of bounds")
}

func TestFindPathTrivialCases(t *testing.T) {
	g := gridFrom(
		"..#",
		"...",
	)
	start := world.Pos{X: 0, Y: 0}

	assert.Empty(t, FindPath(g, start, start), "start == end")
	assert.Empty(t, FindPath(g, start, world.Pos{X: 2, Y: 0}), "end unwalkable")
	assert.Empty(t, FindPath(g, start, world.Pos{X: 9, Y: 9}), "end out of bounds")
}

func TestFindPathValidity(t *testing.T) {
	g := gridFrom(
		"....",
		".##.",
		".##.",
		"....",
	)
	start := world.Pos{X: 0, Y: 0}
	end := world.Pos{X: 3, Y: 3}

	route := FindPath(g, start, end)
	require.NotEmpty(t, route)

	prev := start
	for _, p := range route {
		assert.True(t, g.Walkable(p), "route cell %v walkable", p)
		dx, dy := p.X-prev.X, p.Y-prev.Y
		assert.LessOrEqual(t, dx*dx, 1)
		assert.LessOrEqual(t, dy*dy, 1)
		assert.NotEqual(t, prev, p)
		prev = p
	}
	assert.Equal(t, end, route[len(route)-1], "route ends at end")
	assert.NotEqual(t, start, route[0], "route excludes start")
}

func TestFindPathUnreachable(t *testing.T) {
	g := gridFrom(
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)
	route := FindPath(g, world.Pos{X: 0, Y: 0}, world.Pos{X: 2, Y: 2})
	assert.Empty(t, route, "ringed-off target yields no route")
}

func TestFindPathBudgetExhaustion(t *testing.T) {
	// A big open field with a sealed target: the search must give up
	// within the iteration budget instead of visiting every cell.
	g := world.NewGrid(200, 200)
	target := world.Pos{X: 100, Y: 100}
	for _, off := range neighborOffsets {
		g.Set(world.Pos{X: target.X + off[0], Y: target.Y + off[1]},
			world.Tile{Terrain: world.TerrainWall, Collision: world.CollisionSolid})
	}
	route := FindPath(g, world.Pos{X: 0, Y: 0}, target)
	assert.Empty(t, route)
}

func TestFindPathNoCornerClipping(t *testing.T) {
	// The only diagonal shortcut squeezes between two solid cells; the
	// route must go around instead.
	g := gridFrom(
		".#.",
		"#..",
		"...",
	)
	route := FindPath(g, world.Pos{X: 0, Y: 0}, world.Pos{X: 2, Y: 2})
	assert.Empty(t, route, "no route without clipping the corner")
}

func TestFindPathRoutesAroundWall(t *testing.T) {
	rows := make([]string, 10)
	for y := 0; y < 10; y++ {
		row := make([]byte, 10)
		for x := range row {
			row[x] = '.'
		}
		if y <= 8 {
			row[5] = '#'
		}
		rows[y] = string(row)
	}
	g := gridFrom(rows...)

	start := world.Pos{X: 0, Y: 0}
	end := world.Pos{X: 9, Y: 9}
	route := FindPath(g, start, end)
	require.NotEmpty(t, route)
	assert.Equal(t, end, route[len(route)-1])

	// Minimum achievable: 5 diagonals and 4 verticals to the corridor at
	// (5,9), then 4 horizontals.
	want := 5*math.Sqrt2 + 8
	assert.InDelta(t, want, routeCost(start, route), 1e-9)
}

func TestFindAdjacentTile(t *testing.T) {
	g := gridFrom(
		"...",
		".#.",
		"...",
	)
	target := world.Pos{X: 1, Y: 1}

	adj, ok := FindAdjacentTile(g, target, world.Pos{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, world.Pos{X: 0, Y: 0}, adj, "closest neighbor to origin")

	adj, ok = FindAdjacentTile(g, target, world.Pos{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, world.Pos{X: 2, Y: 2}, adj, "origin itself borders the target")
}

func TestFindAdjacentTileAllBlocked(t *testing.T) {
	g := gridFrom(
		"###",
		"#.#",
		"###",
	)
	_, ok := FindAdjacentTile(g, world.Pos{X: 1, Y: 1}, world.Pos{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestDirectionBetweenTable(t *testing.T) {
	from := world.Pos{X: 5, Y: 5}
	cases := []struct {
		dx, dy int
		want   entity.Direction
	}{
		{0, -1, entity.DirNorthEast},
		{1, -1, entity.DirEast},
		{1, 0, entity.DirSouthEast},
		{1, 1, entity.DirSouth},
		{0, 1, entity.DirSouthWest},
		{-1, 1, entity.DirWest},
		{-1, 0, entity.DirNorthWest},
		{-1, -1, entity.DirNorth},
	}
	for _, tc := range cases {
		to := world.Pos{X: from.X + tc.dx, Y: from.Y + tc.dy}
		assert.Equal(t, tc.want, DirectionBetween(from, to), "delta (%d,%d)", tc.dx, tc.dy)
	}

	assert.Equal(t, entity.DirNone, DirectionBetween(from, from), "zero delta")
	// Longer deltas normalize to the same table.
	assert.Equal(t, entity.DirSouth, DirectionBetween(from, world.Pos{X: 9, Y: 9}))
}
