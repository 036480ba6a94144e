package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/world"
)

func walker(route ...world.Pos) *entity.Entity {
	e := entity.New(entity.Descriptor{Name: "walker"})
	e.SetRoute(route)
	return e
}

func TestUpdateAdvancesProgressAndFacing(t *testing.T) {
	d := NewDriver() // 200ms per tile
	e := walker(world.Pos{X: 1, Y: 0})

	d.Update([]*entity.Entity{e}, 100)

	assert.InDelta(t, 0.5, e.Progress, 1e-9)
	assert.Equal(t, world.Pos{X: 0, Y: 0}, e.Pos, "still on the start cell")
	// Grid step (+1,0) renders as south-east on screen.
	assert.Equal(t, entity.DirSouthEast, e.Facing)
}

func TestUpdatePopsCellAndResetsProgress(t *testing.T) {
	d := NewDriver()
	e := walker(world.Pos{X: 1, Y: 0}, world.Pos{X: 1, Y: 1})

	d.Update([]*entity.Entity{e}, 250) // overshoots the first cell

	assert.Equal(t, world.Pos{X: 1, Y: 0}, e.Pos)
	assert.Zero(t, e.Progress, "overshoot is dropped, progress resets to exactly zero")
	require.Len(t, e.Route, 1)
	// Facing flips to the new leg immediately: grid step (0,+1) is
	// south-west on screen.
	assert.Equal(t, entity.DirSouthWest, e.Facing)
}

func TestUpdateFinishesRoute(t *testing.T) {
	d := NewDriver()
	var arrived *entity.Entity
	d.OnArrive = func(e *entity.Entity) { arrived = e }

	e := walker(world.Pos{X: 0, Y: 1})
	d.Update([]*entity.Entity{e}, 200)

	assert.Equal(t, world.Pos{X: 0, Y: 1}, e.Pos)
	assert.Empty(t, e.Route)
	assert.Zero(t, e.Progress)
	assert.Same(t, e, arrived)
}

func TestUpdateSkipsDeadAndIdle(t *testing.T) {
	d := NewDriver()

	dead := walker(world.Pos{X: 1, Y: 0})
	dead.Dead = true
	idle := entity.New(entity.Descriptor{Name: "idle"})

	d.Update([]*entity.Entity{dead, idle}, 500)

	assert.Equal(t, world.Pos{X: 0, Y: 0}, dead.Pos)
	assert.Zero(t, dead.Progress)
	assert.Equal(t, entity.DirSouth, idle.Facing, "idle facing untouched")
}

func TestUpdateIsFrameRateIndependent(t *testing.T) {
	coarse := walker(world.Pos{X: 1, Y: 1}, world.Pos{X: 2, Y: 2})
	fine := walker(world.Pos{X: 1, Y: 1}, world.Pos{X: 2, Y: 2})
	d := NewDriver()

	d.Update([]*entity.Entity{coarse}, 200)
	for i := 0; i < 8; i++ {
		d.Update([]*entity.Entity{fine}, 25)
	}

	assert.Equal(t, coarse.Pos, fine.Pos)
	assert.InDelta(t, coarse.Progress, fine.Progress, 1e-9)
}
