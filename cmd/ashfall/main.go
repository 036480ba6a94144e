package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/ashfall/internal/audio"
	"chosenoffset.com/ashfall/internal/combat"
	"chosenoffset.com/ashfall/internal/config"
	"chosenoffset.com/ashfall/internal/dialogue"
	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/game"
	"chosenoffset.com/ashfall/internal/item"
	"chosenoffset.com/ashfall/internal/render/placeholders"
	"chosenoffset.com/ashfall/internal/world"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("generating world", "seed", seed, "size", cfg.World.Width)

	grid := world.Generate(world.GeneratorConfig{
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		Buildings: cfg.World.Buildings,
		Pools:     cfg.World.Pools,
	}, seed)

	items := item.DefaultLibrary()
	if _, err := os.Stat("data/items.json"); err == nil {
		items, err = item.LoadLibrary("data/items.json")
		if err != nil {
			slog.Error("item library load failed", "err", err)
			os.Exit(1)
		}
	}

	store := entity.NewStore()
	for _, desc := range defaultSpawns(grid) {
		store.Add(entity.New(desc))
	}
	if _, err := os.Stat("data/spawns.json"); err == nil {
		descs, err := entity.LoadDescriptors("data/spawns.json", items)
		if err != nil {
			slog.Error("spawn table load failed", "err", err)
			os.Exit(1)
		}
		for _, desc := range descs {
			desc.X, desc.Y = openAt(grid, desc.X, desc.Y)
			store.Add(entity.New(desc))
		}
	}

	atlas, err := placeholders.Generate(items.IDs())
	if err != nil {
		slog.Error("asset generation failed", "err", err)
		os.Exit(1)
	}

	sound, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		// No audio device is a shrug, not a crash.
		slog.Warn("audio unavailable", "err", err)
	}

	dlg := dialogue.NewEngine()
	if _, err := os.Stat("data/dialogue.json"); err == nil {
		if err := dlg.LoadTrees("data/dialogue.json"); err != nil {
			slog.Error("dialogue load failed", "err", err)
			os.Exit(1)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	ctrl := combat.NewController(grid, store, items, rng)

	g := game.New(cfg, grid, store, items, ctrl, dlg, atlas, sound)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("starting game")
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// defaultSpawns places the built-in cast: the player, two villagers, and a
// raider pack holding the loot the trader talks about.
func defaultSpawns(grid *world.Grid) []entity.Descriptor {
	px, py := openAt(grid, 6, 6)
	v1x, v1y := openAt(grid, 10, 8)
	v2x, v2y := openAt(grid, 9, 12)
	r1x, r1y := openAt(grid, 34, 30)
	r2x, r2y := openAt(grid, 36, 32)
	r3x, r3y := openAt(grid, 33, 34)

	return []entity.Descriptor{
		{
			ID: "player", Name: "Wanderer", Sprite: "player", X: px, Y: py, Player: true,
			Stats: entity.StatBlock{MaxHP: 40, MaxAP: 10, Strength: 6, Perception: 6, Endurance: 6, Charisma: 5, Intelligence: 6, Agility: 7, Luck: 5},
			Inventory: []item.Stack{
				{ItemID: "10mm_pistol", Count: 1, Equipped: true},
				{ItemID: "stimpak", Count: 2},
				{ItemID: "bottle_caps", Count: 25},
			},
		},
		{
			Name: "Mara", Sprite: "villager", X: v1x, Y: v1y, DialogueKey: "villager_greeting",
			Stats: entity.StatBlock{MaxHP: 25, MaxAP: 7},
		},
		{
			Name: "Silas", Sprite: "trader", X: v2x, Y: v2y, DialogueKey: "trader_greeting",
			Stats:     entity.StatBlock{MaxHP: 25, MaxAP: 7, Charisma: 8},
			Inventory: []item.Stack{{ItemID: "stimpak", Count: 3}, {ItemID: "scrap_metal", Count: 5}},
		},
		{
			Name: "Raider Thug", Sprite: "raider", X: r1x, Y: r1y, Hostile: true,
			Stats:     entity.StatBlock{MaxHP: 28, MaxAP: 8, Strength: 6, Agility: 6},
			Inventory: []item.Stack{{ItemID: "baseball_bat", Count: 1, Equipped: true}, {ItemID: "bottle_caps", Count: 8}},
		},
		{
			Name: "Raider Gunner", Sprite: "raider", X: r2x, Y: r2y, Hostile: true,
			Stats:     entity.StatBlock{MaxHP: 24, MaxAP: 9, Perception: 7, Agility: 8},
			Inventory: []item.Stack{{ItemID: "pipe_rifle", Count: 1, Equipped: true}},
		},
		{
			Name: "Raider Knifer", Sprite: "raider", X: r3x, Y: r3y, Hostile: true,
			Stats:     entity.StatBlock{MaxHP: 22, MaxAP: 10, Agility: 9},
			Inventory: []item.Stack{{ItemID: "combat_knife", Count: 1, Equipped: true}, {ItemID: "scrap_metal", Count: 2}},
		},
	}
}

func openAt(grid *world.Grid, x, y int) (int, int) {
	p := grid.FindOpenTile(world.Pos{X: x, Y: y})
	return p.X, p.Y
}
