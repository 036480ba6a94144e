// Package render draws the world in isometric projection: tiles back to
// front, then entities depth-sorted into the scene. Visual fidelity is not
// the point; correctness of projection and facing is.
package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/render/placeholders"
	"chosenoffset.com/ashfall/internal/world"
)

// Camera is the screen-space translation applied to the whole scene.
type Camera struct {
	X, Y float64
}

// GridToScreen projects fractional grid coordinates to screen coordinates.
// The grid axes are rotated 45 degrees against the screen: +x runs
// down-right, +y runs down-left.
func GridToScreen(gx, gy float64) (float64, float64) {
	sx := (gx - gy) * placeholders.TileWidth / 2
	sy := (gx + gy) * placeholders.TileHeight / 2
	return sx, sy
}

// ScreenToGrid inverts GridToScreen, returning the grid cell under a screen
// point.
func ScreenToGrid(sx, sy float64) world.Pos {
	fx := sx / (placeholders.TileWidth / 2)
	fy := sy / (placeholders.TileHeight / 2)
	gx := (fx + fy) / 2
	gy := (fy - fx) / 2
	return world.Pos{X: int(gx + 0.5), Y: int(gy + 0.5)}
}

// Renderer draws one frame of world state.
type Renderer struct {
	atlas *placeholders.Atlas
}

// NewRenderer creates a renderer over a generated atlas.
func NewRenderer(atlas *placeholders.Atlas) *Renderer {
	return &Renderer{atlas: atlas}
}

// Draw renders the grid and entities with the camera applied.
func (r *Renderer) Draw(screen *ebiten.Image, g *world.Grid, store *entity.Store, cam Camera) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tile := g.At(world.Pos{X: x, Y: y})
			img := r.atlas.Tiles[tile.Terrain]
			if img == nil {
				continue
			}
			sx, sy := GridToScreen(float64(x), float64(y))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(sx-placeholders.TileWidth/2-cam.X, sy-cam.Y)
			screen.DrawImage(img, op)
		}
	}

	ents := append([]*entity.Entity(nil), store.All()...)
	sort.SliceStable(ents, func(i, j int) bool {
		return depthOf(ents[i]) < depthOf(ents[j])
	})

	for _, e := range ents {
		img := r.atlas.Sprite(e.Sprite, e.Facing)
		gx, gy := interpolated(e)
		sx, sy := GridToScreen(gx, gy)
		op := &ebiten.DrawImageOptions{}
		if e.Dead {
			// Corpses lie flat.
			op.GeoM.Rotate(1.2)
			op.ColorScale.Scale(0.5, 0.5, 0.5, 1)
		}
		op.GeoM.Translate(
			sx-placeholders.SpriteSize/2-cam.X,
			sy-placeholders.SpriteSize+placeholders.TileHeight/2-cam.Y,
		)
		screen.DrawImage(img, op)
	}
}

// interpolated returns the fractional grid position of an entity mid-step.
func interpolated(e *entity.Entity) (float64, float64) {
	gx, gy := float64(e.Pos.X), float64(e.Pos.Y)
	if len(e.Route) > 0 {
		next := e.Route[0]
		gx += (float64(next.X) - gx) * e.Progress
		gy += (float64(next.Y) - gy) * e.Progress
	}
	return gx, gy
}

func depthOf(e *entity.Entity) float64 {
	gx, gy := interpolated(e)
	return gx + gy
}
