package world

import (
	"math/rand"
)

// GeneratorConfig tunes the procedural map generator.
type GeneratorConfig struct {
	Width     int
	Height    int
	Buildings int // ruined building shells to scatter
	Pools     int // water pools to scatter
}

// DefaultGeneratorConfig returns the settings used by the standard overworld.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:     48,
		Height:    48,
		Buildings: 6,
		Pools:     4,
	}
}

// Generate builds a grid from the given seed. The same seed always yields
// the same map.
func Generate(cfg GeneratorConfig, seed int64) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := NewGrid(cfg.Width, cfg.Height)

	scatterTerrain(g, rng)
	for i := 0; i < cfg.Pools; i++ {
		placePool(g, rng)
	}
	for i := 0; i < cfg.Buildings; i++ {
		placeBuilding(g, rng)
	}

	return g
}

// scatterTerrain varies the open ground between grass, dirt, and rubble.
func scatterTerrain(g *Grid, rng *rand.Rand) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			roll := rng.Float64()
			terrain := TerrainGrass
			switch {
			case roll < 0.15:
				terrain = TerrainDirt
			case roll < 0.22:
				terrain = TerrainRubble
			}
			g.Set(Pos{x, y}, Tile{Terrain: terrain, Collision: CollisionNone})
		}
	}
}

// placePool stamps a small irregular water pool.
func placePool(g *Grid, rng *rand.Rand) {
	cx := 2 + rng.Intn(g.Width-4)
	cy := 2 + rng.Intn(g.Height-4)
	radius := 1 + rng.Intn(2)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius+rng.Intn(2) {
				continue
			}
			p := Pos{cx + dx, cy + dy}
			if g.InBounds(p) {
				g.Set(p, Tile{Terrain: TerrainWater, Collision: CollisionWater})
			}
		}
	}
}

// placeBuilding stamps a solid-walled rectangular shell with a floor interior
// and a one-tile door gap punched into a random wall. Doors are the only
// collision holes; they are cut here at generation time, never at runtime.
func placeBuilding(g *Grid, rng *rand.Rand) {
	w := 4 + rng.Intn(4)
	h := 4 + rng.Intn(4)
	x0 := 1 + rng.Intn(maxInt(1, g.Width-w-2))
	y0 := 1 + rng.Intn(maxInt(1, g.Height-h-2))

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			p := Pos{x, y}
			onEdge := x == x0 || x == x0+w-1 || y == y0 || y == y0+h-1
			if onEdge {
				g.Set(p, Tile{Terrain: TerrainWall, Collision: CollisionSolid})
			} else {
				g.Set(p, Tile{Terrain: TerrainFloor, Collision: CollisionNone})
			}
		}
	}

	// Punch the door. Corners stay solid so the gap always opens into the
	// interior.
	switch rng.Intn(4) {
	case 0: // top
		g.Set(Pos{x0 + 1 + rng.Intn(w-2), y0}, Tile{Terrain: TerrainFloor, Collision: CollisionNone})
	case 1: // bottom
		g.Set(Pos{x0 + 1 + rng.Intn(w-2), y0 + h - 1}, Tile{Terrain: TerrainFloor, Collision: CollisionNone})
	case 2: // left
		g.Set(Pos{x0, y0 + 1 + rng.Intn(h-2)}, Tile{Terrain: TerrainFloor, Collision: CollisionNone})
	case 3: // right
		g.Set(Pos{x0 + w - 1, y0 + 1 + rng.Intn(h-2)}, Tile{Terrain: TerrainFloor, Collision: CollisionNone})
	}
}

// FindOpenTile returns a walkable position near the preferred one, spiraling
// outward until something open is found. Used to place spawns on maps where
// the preferred tile landed inside a building or pool.
func (g *Grid) FindOpenTile(preferred Pos) Pos {
	if g.Walkable(preferred) {
		return preferred
	}
	for radius := 1; radius < g.Width+g.Height; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				p := Pos{preferred.X + dx, preferred.Y + dy}
				if g.Walkable(p) {
					return p
				}
			}
		}
	}
	return preferred
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
