// Package item provides the item catalog and per-entity inventories.
// Item definitions are data-driven JSON in the same style as the dialogue
// trees; the built-in defaults cover everything the standard spawn table
// references.
package item

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Kind groups items by what they are for.
type Kind string

const (
	KindWeapon     Kind = "weapon"
	KindConsumable Kind = "consumable"
	KindArmor      Kind = "armor"
	KindMisc       Kind = "misc"
)

// WeaponSpec is the fixed combat profile of a weapon: how much base damage
// it deals and how many action points one attack costs.
type WeaponSpec struct {
	Damage int `json:"damage"`
	APCost int `json:"ap_cost"`
}

// Unarmed is the fallback profile used when a combatant has no weapon
// equipped.
var Unarmed = WeaponSpec{Damage: 3, APCost: 2}

// Definition describes one item type.
type Definition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Kind        Kind        `json:"kind"`
	Weapon      *WeaponSpec `json:"weapon,omitempty"` // set iff Kind == KindWeapon
	HealAmount  int         `json:"heal_amount,omitempty"`
}

// Library is the validated item catalog. Lookup failures on equipped ids are
// caught once at startup, never silently papered over during combat.
type Library struct {
	defs map[string]*Definition
}

// DefaultLibrary returns the built-in item catalog.
func DefaultLibrary() *Library {
	lib := &Library{defs: make(map[string]*Definition)}
	for _, def := range []*Definition{
		{ID: "10mm_pistol", Name: "10mm Pistol", Kind: KindWeapon, Weapon: &WeaponSpec{Damage: 8, APCost: 4}},
		{ID: "pipe_rifle", Name: "Pipe Rifle", Kind: KindWeapon, Weapon: &WeaponSpec{Damage: 10, APCost: 5}},
		{ID: "combat_knife", Name: "Combat Knife", Kind: KindWeapon, Weapon: &WeaponSpec{Damage: 6, APCost: 3}},
		{ID: "baseball_bat", Name: "Baseball Bat", Kind: KindWeapon, Weapon: &WeaponSpec{Damage: 7, APCost: 3}},
		{ID: "stimpak", Name: "Stimpak", Kind: KindConsumable, HealAmount: 20},
		{ID: "leather_jacket", Name: "Leather Jacket", Kind: KindArmor},
		{ID: "bottle_caps", Name: "Bottle Caps", Kind: KindMisc},
		{ID: "scrap_metal", Name: "Scrap Metal", Kind: KindMisc},
	} {
		lib.defs[def.ID] = def
	}
	return lib
}

// LoadLibrary reads item definitions from a JSON file and merges them over
// the defaults. Definitions with an existing id replace the built-in one.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item library %s: %w", path, err)
	}

	var defs []*Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse item library %s: %w", path, err)
	}

	lib := DefaultLibrary()
	for _, def := range defs {
		if err := validate(def); err != nil {
			return nil, fmt.Errorf("invalid item in %s: %w", path, err)
		}
		lib.defs[def.ID] = def
	}
	return lib, nil
}

func validate(def *Definition) error {
	if def.ID == "" {
		return fmt.Errorf("item with empty id")
	}
	if def.Kind == KindWeapon && def.Weapon == nil {
		return fmt.Errorf("weapon %q has no combat profile", def.ID)
	}
	if def.Weapon != nil && (def.Weapon.Damage <= 0 || def.Weapon.APCost <= 0) {
		return fmt.Errorf("weapon %q has non-positive damage or AP cost", def.ID)
	}
	return nil
}

// Get returns the definition for an item id.
func (l *Library) Get(id string) (*Definition, bool) {
	def, ok := l.defs[id]
	return def, ok
}

// IDs returns every catalog id, sorted for deterministic iteration.
func (l *Library) IDs() []string {
	ids := make([]string, 0, len(l.defs))
	for id := range l.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Weapon returns the combat profile of a weapon item id.
func (l *Library) Weapon(id string) (WeaponSpec, bool) {
	def, ok := l.defs[id]
	if !ok || def.Weapon == nil {
		return WeaponSpec{}, false
	}
	return *def.Weapon, true
}

// CheckKnown verifies every id in the list exists in the catalog. Spawn
// loading calls this so a typo in spawn data fails at startup rather than
// mid-combat.
func (l *Library) CheckKnown(ids []string) error {
	for _, id := range ids {
		if _, ok := l.defs[id]; !ok {
			return fmt.Errorf("unknown item id %q", id)
		}
	}
	return nil
}
