package entity

import "chosenoffset.com/ashfall/internal/world"

// Store holds every entity in the world in spawn order. The movement driver,
// combat controller, and renderer all operate on the same store; the fixed
// per-frame call order keeps them from stepping on each other.
type Store struct {
	order []*Entity
	byID  map[string]*Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*Entity)}
}

// Add registers an entity. Later adds with a duplicate id replace the
// lookup entry but the original keeps its slot in iteration order.
func (s *Store) Add(e *Entity) {
	s.order = append(s.order, e)
	s.byID[e.ID] = e
}

// ByID returns the entity with the given id, or nil.
func (s *Store) ByID(id string) *Entity {
	return s.byID[id]
}

// All returns every entity in spawn order, corpses included.
func (s *Store) All() []*Entity {
	return s.order
}

// Player returns the player entity, or nil if none was spawned.
func (s *Store) Player() *Entity {
	for _, e := range s.order {
		if e.IsPlayer {
			return e
		}
	}
	return nil
}

// At returns the living entity standing on p, or nil.
func (s *Store) At(p world.Pos) *Entity {
	for _, e := range s.order {
		if e.Alive() && e.Pos == p {
			return e
		}
	}
	return nil
}

// CorpseAt returns a dead entity lying on p, or nil. Used for looting.
func (s *Store) CorpseAt(p world.Pos) *Entity {
	for _, e := range s.order {
		if e.Dead && e.Pos == p {
			return e
		}
	}
	return nil
}

// LivingHostiles returns every living hostile entity.
func (s *Store) LivingHostiles() []*Entity {
	var out []*Entity
	for _, e := range s.order {
		if e.Alive() && e.Hostile {
			out = append(out, e)
		}
	}
	return out
}
