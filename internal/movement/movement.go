// Package movement advances entities along their queued routes one grid
// cell at a time, smoothing the traversal with a fractional progress value
// the renderer interpolates with.
package movement

import (
	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/world/path"
)

// DefaultSpeed is the walk rate in tiles per millisecond: one cell every
// 200ms regardless of frame rate.
const DefaultSpeed = 1.0 / 200.0

// Driver moves every routed entity each frame.
type Driver struct {
	// Speed is in tiles per millisecond.
	Speed float64

	// OnArrive, when set, fires after an entity finishes its whole route.
	OnArrive func(e *entity.Entity)
}

// NewDriver returns a driver at the default walk speed.
func NewDriver() *Driver {
	return &Driver{Speed: DefaultSpeed}
}

// Update advances every living entity with a pending route by dtMillis.
// The entity faces its next cell for the whole traversal leg; when progress
// reaches 1.0 the cell is popped into position, progress resets to exactly
// zero (overshoot is dropped), and the facing flips to the following cell
// immediately so the sprite never shows a stale direction for a frame.
func (d *Driver) Update(entities []*entity.Entity, dtMillis float64) {
	for _, e := range entities {
		if e.Dead || len(e.Route) == 0 {
			continue
		}

		e.Facing = path.DirectionBetween(e.Pos, e.Route[0])
		e.Progress += d.Speed * dtMillis

		if e.Progress >= 1.0 {
			e.Pos = e.Route[0]
			e.Route = e.Route[1:]
			e.Progress = 0

			if len(e.Route) > 0 {
				e.Facing = path.DirectionBetween(e.Pos, e.Route[0])
			} else if d.OnArrive != nil {
				d.OnArrive(e)
			}
		}
	}
}
