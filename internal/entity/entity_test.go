package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ashfall/internal/item"
	"chosenoffset.com/ashfall/internal/world"
)

func TestNewEntityDefaults(t *testing.T) {
	e := New(Descriptor{Name: "Mara", Sprite: "villager", X: 3, Y: 4})

	assert.NotEmpty(t, e.ID, "id generated when descriptor has none")
	assert.Equal(t, world.Pos{X: 3, Y: 4}, e.Pos)
	assert.Equal(t, DirSouth, e.Facing, "idle facing is south")
	assert.Empty(t, e.Route)
	assert.Zero(t, e.Progress)
	assert.False(t, e.Dead)

	assert.Equal(t, e.Stats.MaxHP, e.Stats.HP, "spawns at full HP")
	assert.Equal(t, e.Stats.MaxAP, e.Stats.AP, "spawns at full AP")
	assert.Equal(t, 5, e.Stats.Agility, "unset abilities take the baseline")
}

func TestNewEntityKeepsExplicitID(t *testing.T) {
	e := New(Descriptor{ID: "player", Name: "Wanderer", Player: true})
	assert.Equal(t, "player", e.ID)
	assert.True(t, e.IsPlayer)
}

func TestNewEntitySeedsInventory(t *testing.T) {
	e := New(Descriptor{
		Name: "Raider",
		Inventory: []item.Stack{
			{ItemID: "combat_knife", Count: 1, Equipped: true},
			{ItemID: "bottle_caps", Count: 12},
		},
	})
	assert.Equal(t, "combat_knife", e.Inventory.EquippedID())
	assert.Equal(t, 12, e.Inventory.Count("bottle_caps"))
}

func TestSetRouteOverwritesTraversal(t *testing.T) {
	e := New(Descriptor{Name: "walker"})
	e.SetRoute([]world.Pos{{X: 1, Y: 0}, {X: 2, Y: 0}})
	e.Progress = 0.7

	e.SetRoute([]world.Pos{{X: 0, Y: 1}})
	assert.Zero(t, e.Progress, "partial progress discarded on overwrite")
	require.Len(t, e.Route, 1)

	e.ClearRoute()
	assert.False(t, e.Moving())
}

func TestStoreLookups(t *testing.T) {
	s := NewStore()
	player := New(Descriptor{ID: "player", Name: "P", Player: true, X: 1, Y: 1})
	raider := New(Descriptor{ID: "r1", Name: "R", Hostile: true, X: 2, Y: 2})
	corpse := New(Descriptor{ID: "r2", Name: "C", Hostile: true, X: 3, Y: 3})
	corpse.Dead = true
	s.Add(player)
	s.Add(raider)
	s.Add(corpse)

	assert.Same(t, player, s.Player())
	assert.Same(t, raider, s.ByID("r1"))
	assert.Same(t, raider, s.At(world.Pos{X: 2, Y: 2}))
	assert.Nil(t, s.At(world.Pos{X: 3, Y: 3}), "corpses do not occupy tiles")
	assert.Same(t, corpse, s.CorpseAt(world.Pos{X: 3, Y: 3}))

	hostiles := s.LivingHostiles()
	require.Len(t, hostiles, 1)
	assert.Same(t, raider, hostiles[0])

	assert.Len(t, s.All(), 3, "corpses persist in the store")
}

func TestDistanceTo(t *testing.T) {
	a := New(Descriptor{Name: "a", X: 0, Y: 0})
	b := New(Descriptor{Name: "b", X: 3, Y: 4})
	assert.Equal(t, 7, a.DistanceTo(b))
	assert.Equal(t, 7, b.DistanceTo(a))
}
