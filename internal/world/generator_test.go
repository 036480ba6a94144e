package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	a := Generate(cfg, 12345)
	b := Generate(cfg, 12345)

	require.Equal(t, a.Width, b.Width)
	require.Equal(t, a.Height, b.Height)
	for y := 0; y < a.Height; y++ {
		assert.Equal(t, a.Tiles[y], b.Tiles[y], "row %d", y)
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	a := Generate(cfg, 1)
	b := Generate(cfg, 2)

	same := true
	for y := 0; y < a.Height && same; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Tiles[y][x] != b.Tiles[y][x] {
				same = false
				break
			}
		}
	}
	assert.False(t, same, "different seeds should not yield identical maps")
}

func TestGenerateCollisionMatchesTerrain(t *testing.T) {
	g := Generate(DefaultGeneratorConfig(), 7)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tile := g.Tiles[y][x]
			switch tile.Terrain {
			case TerrainWall:
				assert.Equal(t, CollisionSolid, tile.Collision)
			case TerrainWater:
				assert.Equal(t, CollisionWater, tile.Collision)
			default:
				assert.Equal(t, CollisionNone, tile.Collision)
			}
		}
	}
}

func TestFindOpenTile(t *testing.T) {
	g := NewGrid(5, 5)
	blocked := Pos{X: 2, Y: 2}
	g.Set(blocked, Tile{Terrain: TerrainWall, Collision: CollisionSolid})

	open := g.FindOpenTile(blocked)
	assert.True(t, g.Walkable(open))
	assert.NotEqual(t, blocked, open)

	free := Pos{X: 1, Y: 1}
	assert.Equal(t, free, g.FindOpenTile(free), "already-open tile returned as is")
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(Pos{1, 1}, Pos{1, 1}))
	assert.Equal(t, 7, Manhattan(Pos{0, 0}, Pos{3, 4}))
	assert.Equal(t, 7, Manhattan(Pos{3, 4}, Pos{0, 0}))
	assert.Equal(t, 5, Manhattan(Pos{-2, 0}, Pos{1, 2}))
}

func TestWalkableBounds(t *testing.T) {
	g := NewGrid(3, 3)
	assert.True(t, g.Walkable(Pos{0, 0}))
	assert.True(t, g.Walkable(Pos{2, 2}))
	assert.False(t, g.Walkable(Pos{3, 2}))
	assert.False(t, g.Walkable(Pos{-1, 0}))
}
