// Package entity defines the characters that inhabit the world: the player
// and every NPC. Entities are created once at spawn time and mutated in
// place by the movement and combat systems; the dead persist as corpses
// holding their loot.
package entity

import (
	"chosenoffset.com/ashfall/internal/item"
	"chosenoffset.com/ashfall/internal/world"
)

// Stats is the ability and resource block for one entity.
type Stats struct {
	HP    int
	MaxHP int
	AP    int
	MaxAP int

	Strength     int
	Perception   int
	Endurance    int
	Charisma     int
	Intelligence int
	Agility      int
	Luck         int
}

// Entity is one character in the world.
type Entity struct {
	ID     string
	Name   string
	Sprite string

	Pos    world.Pos
	Facing Direction

	// Route is the remaining cells to walk, consumed front-first by the
	// movement driver. Progress is the fractional advance toward Route[0],
	// always in [0, 1).
	Route    []world.Pos
	Progress float64

	Stats     Stats
	Inventory *item.Inventory

	IsPlayer bool
	Hostile  bool
	Dead     bool

	// DialogueKey names the dialogue tree opened when the player talks to
	// this entity. Empty for entities with nothing to say.
	DialogueKey string
}

// Alive reports whether the entity can still act.
func (e *Entity) Alive() bool {
	return !e.Dead
}

// DistanceTo returns the Manhattan distance to another entity.
func (e *Entity) DistanceTo(other *Entity) int {
	return world.Manhattan(e.Pos, other.Pos)
}

// SetRoute replaces any in-progress traversal with a new route. Clearing the
// old route is a plain overwrite; partial progress toward the old next cell
// is discarded.
func (e *Entity) SetRoute(route []world.Pos) {
	e.Route = route
	e.Progress = 0
}

// ClearRoute cancels the current traversal.
func (e *Entity) ClearRoute() {
	e.Route = nil
	e.Progress = 0
}

// Moving reports whether the entity has route cells left to walk.
func (e *Entity) Moving() bool {
	return len(e.Route) > 0
}
