// Package placeholders generates every game asset procedurally at startup
// by drawing primitive shapes: terrain tiles, character sprites for all
// eight facings, and item icons. There is no external asset pipeline; what
// this package draws is what the game shows.
package placeholders

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/world"
)

// TileWidth and TileHeight are the footprint of one isometric tile diamond.
const (
	TileWidth  = 64
	TileHeight = 32
)

// SpriteSize is the square bounds of a character sprite.
const SpriteSize = 32

// IconSize is the square bounds of an item icon.
const IconSize = 24

// palette groups the colors used by the shape drawing below.
var palette = struct {
	Grass, Dirt, Rubble, Water, Wall, Floor color.RGBA

	PlayerBody, VillagerBody, TraderBody, RaiderBody color.RGBA
	Skin, FacingMark                                 color.RGBA

	WeaponIcon, ConsumableIcon, MiscIcon color.RGBA
}{
	Grass:  color.RGBA{74, 110, 60, 255},
	Dirt:   color.RGBA{120, 95, 70, 255},
	Rubble: color.RGBA{105, 100, 95, 255},
	Water:  color.RGBA{50, 90, 140, 255},
	Wall:   color.RGBA{140, 130, 120, 255},
	Floor:  color.RGBA{90, 82, 75, 255},

	PlayerBody:   color.RGBA{60, 120, 180, 255},
	VillagerBody: color.RGBA{150, 130, 80, 255},
	TraderBody:   color.RGBA{110, 90, 140, 255},
	RaiderBody:   color.RGBA{170, 60, 50, 255},
	Skin:         color.RGBA{220, 190, 160, 255},
	FacingMark:   color.RGBA{255, 255, 255, 255},

	WeaponIcon:     color.RGBA{200, 160, 60, 255},
	ConsumableIcon: color.RGBA{200, 70, 70, 255},
	MiscIcon:       color.RGBA{150, 150, 160, 255},
}

var spriteBodies = map[string]color.RGBA{
	"player":   palette.PlayerBody,
	"villager": palette.VillagerBody,
	"trader":   palette.TraderBody,
	"raider":   palette.RaiderBody,
}

// Atlas holds every generated image, keyed the way the renderer looks them
// up.
type Atlas struct {
	Tiles   map[world.Terrain]*ebiten.Image
	Sprites map[string]map[entity.Direction]*ebiten.Image
	Icons   map[string]*ebiten.Image
}

// Generate draws the full asset set. The raw pixel buffers are produced
// concurrently; the ebiten images are created on the calling goroutine.
func Generate(itemIDs []string) (*Atlas, error) {
	terrains := []world.Terrain{
		world.TerrainGrass, world.TerrainDirt, world.TerrainRubble,
		world.TerrainWater, world.TerrainWall, world.TerrainFloor,
	}

	tileRaw := make(map[world.Terrain]*image.RGBA, len(terrains))
	spriteRaw := make(map[string]map[entity.Direction]*image.RGBA, len(spriteBodies))
	iconRaw := make(map[string]*image.RGBA, len(itemIDs))

	var g errgroup.Group
	g.Go(func() error {
		for _, t := range terrains {
			tileRaw[t] = drawTile(t)
		}
		return nil
	})
	g.Go(func() error {
		for key, body := range spriteBodies {
			byDir := make(map[entity.Direction]*image.RGBA, len(entity.Directions))
			for _, dir := range entity.Directions {
				byDir[dir] = drawSprite(body, dir)
			}
			spriteRaw[key] = byDir
		}
		return nil
	})
	g.Go(func() error {
		for _, id := range itemIDs {
			iconRaw[id] = drawIcon(id)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	atlas := &Atlas{
		Tiles:   make(map[world.Terrain]*ebiten.Image, len(tileRaw)),
		Sprites: make(map[string]map[entity.Direction]*ebiten.Image, len(spriteRaw)),
		Icons:   make(map[string]*ebiten.Image, len(iconRaw)),
	}
	for t, img := range tileRaw {
		atlas.Tiles[t] = ebiten.NewImageFromImage(img)
	}
	for key, byDir := range spriteRaw {
		out := make(map[entity.Direction]*ebiten.Image, len(byDir))
		for dir, img := range byDir {
			out[dir] = ebiten.NewImageFromImage(img)
		}
		atlas.Sprites[key] = out
	}
	for id, img := range iconRaw {
		atlas.Icons[id] = ebiten.NewImageFromImage(img)
	}
	return atlas, nil
}

// Sprite returns the image for a sprite key and facing, falling back to the
// south frame and then to the raider frame so a bad key is visible instead
// of invisible.
func (a *Atlas) Sprite(key string, dir entity.Direction) *ebiten.Image {
	if byDir, ok := a.Sprites[key]; ok {
		if img, ok := byDir[dir]; ok {
			return img
		}
		return byDir[entity.DirSouth]
	}
	return a.Sprites["raider"][entity.DirSouth]
}

// drawTile fills an isometric diamond for the terrain, with light speckle
// so adjacent tiles do not merge visually.
func drawTile(t world.Terrain) *image.RGBA {
	base := palette.Grass
	switch t {
	case world.TerrainDirt:
		base = palette.Dirt
	case world.TerrainRubble:
		base = palette.Rubble
	case world.TerrainWater:
		base = palette.Water
	case world.TerrainWall:
		base = palette.Wall
	case world.TerrainFloor:
		base = palette.Floor
	}

	img := image.NewRGBA(image.Rect(0, 0, TileWidth, TileHeight))
	cx, cy := float64(TileWidth)/2, float64(TileHeight)/2
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			// Inside the diamond |dx|/halfW + |dy|/halfH <= 1.
			dx := math.Abs(float64(x)-cx+0.5) / cx
			dy := math.Abs(float64(y)-cy+0.5) / cy
			if dx+dy > 1 {
				continue
			}
			c := base
			if (x*7+y*13)%11 == 0 {
				c = shade(base, 14)
			}
			img.Set(x, y, c)
		}
	}

	// Walls get a raised light edge along the top of the diamond.
	if t == world.TerrainWall {
		for x := 0; x < TileWidth; x++ {
			for y := 0; y < TileHeight/3; y++ {
				if img.RGBAAt(x, y).A != 0 {
					img.Set(x, y, shade(base, 30))
					break
				}
			}
		}
	}
	return img
}

// drawSprite draws a simple body + head figure with a facing marker offset
// toward the direction the sprite looks.
func drawSprite(body color.RGBA, dir entity.Direction) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))

	// Body.
	fillRect(img, 10, 14, 22, 30, body)
	// Head.
	fillCircle(img, 16, 9, 5, palette.Skin)

	// Facing marker: a dot pushed toward the screen direction.
	angle := facingAngle(dir)
	mx := 16 + int(math.Round(6*math.Cos(angle)))
	my := 9 + int(math.Round(4*math.Sin(angle)))
	fillCircle(img, mx, my, 1, palette.FacingMark)

	return img
}

// facingAngle maps a screen direction to radians, screen-y down.
func facingAngle(dir entity.Direction) float64 {
	switch dir {
	case entity.DirEast:
		return 0
	case entity.DirSouthEast:
		return math.Pi / 4
	case entity.DirSouth:
		return math.Pi / 2
	case entity.DirSouthWest:
		return 3 * math.Pi / 4
	case entity.DirWest:
		return math.Pi
	case entity.DirNorthWest:
		return -3 * math.Pi / 4
	case entity.DirNorth:
		return -math.Pi / 2
	default: // DirNorthEast
		return -math.Pi / 4
	}
}

// drawIcon draws a per-item icon; weapons get a diagonal bar, consumables a
// cross, everything else a box.
func drawIcon(id string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	switch id {
	case "10mm_pistol", "pipe_rifle", "combat_knife", "baseball_bat":
		for i := 3; i < IconSize-3; i++ {
			img.Set(i, IconSize-1-i, palette.WeaponIcon)
			img.Set(i+1, IconSize-1-i, palette.WeaponIcon)
		}
	case "stimpak":
		fillRect(img, IconSize/2-1, 4, IconSize/2+1, IconSize-4, palette.ConsumableIcon)
		fillRect(img, 4, IconSize/2-1, IconSize-4, IconSize/2+1, palette.ConsumableIcon)
	default:
		fillRect(img, 5, 5, IconSize-5, IconSize-5, palette.MiscIcon)
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

func shade(c color.RGBA, delta int) color.RGBA {
	clamp := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{
		R: clamp(int(c.R) + delta),
		G: clamp(int(c.G) + delta),
		B: clamp(int(c.B) + delta),
		A: c.A,
	}
}
