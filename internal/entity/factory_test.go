package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ashfall/internal/item"
)

func writeSpawnFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spawns.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDescriptors(t *testing.T) {
	path := writeSpawnFile(t, `[
		{
			"name": "Mara", "sprite": "villager", "x": 3, "y": 4,
			"dialogue": "villager_greeting",
			"inventory": [{"item_id": "stimpak", "count": 2}]
		},
		{
			"name": "Raider", "sprite": "raider", "x": 10, "y": 10,
			"hostile": true, "stats": {"agility": 7},
			"inventory": [{"item_id": "combat_knife", "count": 1, "equipped": true}]
		}
	]`)

	descs, err := LoadDescriptors(path, item.DefaultLibrary())
	require.NoError(t, err)
	require.Len(t, descs, 2)

	assert.Equal(t, "Mara", descs[0].Name)
	assert.Equal(t, "villager_greeting", descs[0].DialogueKey)
	assert.True(t, descs[1].Hostile)
	assert.Equal(t, 7, descs[1].Stats.Agility)
	assert.True(t, descs[1].Inventory[0].Equipped)
}

func TestLoadDescriptorsRejectsUnknownItem(t *testing.T) {
	path := writeSpawnFile(t, `[
		{
			"name": "Raider", "sprite": "raider", "x": 1, "y": 1,
			"inventory": [{"item_id": "plasma_rifle", "count": 1}]
		}
	]`)

	_, err := LoadDescriptors(path, item.DefaultLibrary())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plasma_rifle")
}

func TestLoadDescriptorsRejectsMalformedJSON(t *testing.T) {
	path := writeSpawnFile(t, `{not json`)
	_, err := LoadDescriptors(path, item.DefaultLibrary())
	assert.Error(t, err)
}

func TestLoadDescriptorsMissingFile(t *testing.T) {
	_, err := LoadDescriptors(filepath.Join(t.TempDir(), "absent.json"), item.DefaultLibrary())
	assert.Error(t, err)
}
