package entity

// Direction is a screen-space facing used to pick the rendered sprite
// orientation. The grid is drawn isometrically, so grid deltas and screen
// directions differ by a 45 degree rotation; the mapping lives in the
// pathfinding package.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
)

// Directions lists the eight real facings, clockwise from north.
var Directions = []Direction{
	DirNorth, DirNorthEast, DirEast, DirSouthEast,
	DirSouth, DirSouthWest, DirWest, DirNorthWest,
}

// String returns the compass abbreviation for the direction.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "N"
	case DirNorthEast:
		return "NE"
	case DirEast:
		return "E"
	case DirSouthEast:
		return "SE"
	case DirSouth:
		return "S"
	case DirSouthWest:
		return "SW"
	case DirWest:
		return "W"
	case DirNorthWest:
		return "NW"
	default:
		return "?"
	}
}
