// Package world provides the tile grid the simulation runs on.
// A grid is built once by the map generator and is read-only afterwards;
// pathfinding, movement, and combat only query bounds and collision.
package world

// Collision classifies what blocks a tile.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionSolid
	CollisionWater
)

// Terrain tags a tile for rendering. The simulation ignores it.
type Terrain string

const (
	TerrainGrass  Terrain = "grass"
	TerrainDirt   Terrain = "dirt"
	TerrainRubble Terrain = "rubble"
	TerrainWater  Terrain = "water"
	TerrainWall   Terrain = "wall"
	TerrainFloor  Terrain = "floor"
)

// Pos identifies a tile by its grid coordinates.
type Pos struct {
	X, Y int
}

// Manhattan returns |dx| + |dy| between two positions.
func Manhattan(a, b Pos) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Tile is a single grid cell.
type Tile struct {
	Terrain   Terrain
	Collision Collision
}

// Grid is the static tile map. Indexed as Tiles[y][x].
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid creates a grid of the given size with all tiles open grass.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Terrain: TerrainGrass, Collision: CollisionNone}
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p. Callers must check InBounds first.
func (g *Grid) At(p Pos) Tile {
	return g.Tiles[p.Y][p.X]
}

// Set overwrites the tile at p. Only the map generator calls this.
func (g *Grid) Set(p Pos, t Tile) {
	g.Tiles[p.Y][p.X] = t
}

// Walkable reports whether p is in-bounds and free of collision.
func (g *Grid) Walkable(p Pos) bool {
	return g.InBounds(p) && g.Tiles[p.Y][p.X].Collision == CollisionNone
}
