package entity

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"chosenoffset.com/ashfall/internal/item"
	"chosenoffset.com/ashfall/internal/world"
)

// StatBlock is the spawn-data form of an entity's abilities. Zero values
// fall back to sensible baselines in New.
type StatBlock struct {
	MaxHP        int `json:"max_hp"`
	MaxAP        int `json:"max_ap"`
	Strength     int `json:"strength"`
	Perception   int `json:"perception"`
	Endurance    int `json:"endurance"`
	Charisma     int `json:"charisma"`
	Intelligence int `json:"intelligence"`
	Agility      int `json:"agility"`
	Luck         int `json:"luck"`
}

// Descriptor is one spawn entry: everything needed to create an entity.
type Descriptor struct {
	ID          string       `json:"id,omitempty"` // generated when empty
	Name        string       `json:"name"`
	Sprite      string       `json:"sprite"`
	X           int          `json:"x"`
	Y           int          `json:"y"`
	Player      bool         `json:"player,omitempty"`
	Hostile     bool         `json:"hostile,omitempty"`
	Stats       StatBlock    `json:"stats"`
	Inventory   []item.Stack `json:"inventory,omitempty"`
	DialogueKey string       `json:"dialogue,omitempty"`
}

// New creates an entity from a spawn descriptor. New entities start at full
// HP and AP, with an empty route and a south idle facing.
func New(desc Descriptor) *Entity {
	id := desc.ID
	if id == "" {
		id = uuid.NewString()
	}

	stats := Stats{
		MaxHP:        orDefault(desc.Stats.MaxHP, 30),
		MaxAP:        orDefault(desc.Stats.MaxAP, 8),
		Strength:     orDefault(desc.Stats.Strength, 5),
		Perception:   orDefault(desc.Stats.Perception, 5),
		Endurance:    orDefault(desc.Stats.Endurance, 5),
		Charisma:     orDefault(desc.Stats.Charisma, 5),
		Intelligence: orDefault(desc.Stats.Intelligence, 5),
		Agility:      orDefault(desc.Stats.Agility, 5),
		Luck:         orDefault(desc.Stats.Luck, 5),
	}
	stats.HP = stats.MaxHP
	stats.AP = stats.MaxAP

	return &Entity{
		ID:          id,
		Name:        desc.Name,
		Sprite:      desc.Sprite,
		Pos:         world.Pos{X: desc.X, Y: desc.Y},
		Facing:      DirSouth,
		Stats:       stats,
		Inventory:   item.NewInventory(desc.Inventory...),
		IsPlayer:    desc.Player,
		Hostile:     desc.Hostile,
		DialogueKey: desc.DialogueKey,
	}
}

// LoadDescriptors reads a spawn table from a JSON file and checks every
// referenced item id against the catalog, so bad spawn data is a startup
// error instead of a combat-time surprise.
func LoadDescriptors(path string, items *item.Library) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn table %s: %w", path, err)
	}

	var descs []Descriptor
	if err := json.Unmarshal(data, &descs); err != nil {
		return nil, fmt.Errorf("failed to parse spawn table %s: %w", path, err)
	}

	for _, d := range descs {
		var ids []string
		for _, s := range d.Inventory {
			ids = append(ids, s.ItemID)
		}
		if err := items.CheckKnown(ids); err != nil {
			return nil, fmt.Errorf("spawn %q: %w", d.Name, err)
		}
	}
	return descs, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
