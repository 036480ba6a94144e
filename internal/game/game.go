// Package game wires the simulation together under the ebiten loop. Each
// frame runs in a fixed order: movement update, then the combat decision
// for the active turn, then turn advancement. The order is the only
// synchronization the simulation has, so nothing here spawns goroutines.
package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/ashfall/internal/audio"
	"chosenoffset.com/ashfall/internal/combat"
	"chosenoffset.com/ashfall/internal/config"
	"chosenoffset.com/ashfall/internal/dialogue"
	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/item"
	"chosenoffset.com/ashfall/internal/movement"
	"chosenoffset.com/ashfall/internal/render"
	"chosenoffset.com/ashfall/internal/render/placeholders"
	"chosenoffset.com/ashfall/internal/ui/hud"
	"chosenoffset.com/ashfall/internal/world"
	"chosenoffset.com/ashfall/internal/world/path"
)

// Game owns all runtime state and implements ebiten.Game.
type Game struct {
	cfg config.Config

	grid     *world.Grid
	store    *entity.Store
	items    *item.Library
	driver   *movement.Driver
	combat   *combat.Controller
	dialogue *dialogue.Engine

	renderer *render.Renderer
	hud      *hud.HUD
	sound    *audio.Player
	camera   render.Camera
}

// New assembles a game from already-built collaborators.
func New(cfg config.Config, grid *world.Grid, store *entity.Store, items *item.Library,
	ctrl *combat.Controller, dlg *dialogue.Engine, atlas *placeholders.Atlas, sound *audio.Player) *Game {

	g := &Game{
		cfg:      cfg,
		grid:     grid,
		store:    store,
		items:    items,
		combat:   ctrl,
		dialogue: dlg,
		renderer: render.NewRenderer(atlas),
		hud:      hud.New(cfg.Window.Width, cfg.Window.Height),
		sound:    sound,
	}

	g.driver = movement.NewDriver()
	g.driver.Speed = 1.0 / cfg.Game.WalkMillisPerTile

	ctrl.OnMessage = g.hud.AddMessage
	ctrl.OnEntityDeath = func(e *entity.Entity) {
		g.sound.Play(audio.EffectDeath)
	}
	return g
}

// Update runs one simulation frame.
func (g *Game) Update() error {
	dtMillis := 1000.0 / float64(ebiten.TPS())

	// 1. Movement.
	g.driver.Update(g.store.All(), dtMillis)

	// 2. Combat decision for the active turn.
	g.updateCombat()

	// 3. Player input (dialogue swallows it while open).
	if g.dialogue.Active() {
		g.updateDialogueInput()
	} else {
		g.updateInput()
	}

	g.updateCamera()
	return nil
}

// updateCombat enters, drives, and exits combat mode.
func (g *Game) updateCombat() {
	player := g.store.Player()
	if player == nil {
		return
	}

	if !g.combat.InCombat() {
		for _, h := range g.store.LivingHostiles() {
			if world.Manhattan(h.Pos, player.Pos) <= combat.EngagementRange {
				g.dialogue.Close()
				g.combat.InitCombat()
				g.hud.AddMessage("Hostiles spotted! Combat begins.")
				slog.Info("combat started", "hostiles", len(g.store.LivingHostiles()))
				return
			}
		}
		return
	}

	// Exit conditions: the fight is over, or the queue degenerated with
	// everyone dead.
	if player.Dead || len(g.store.LivingHostiles()) == 0 {
		g.combat.EndCombat()
		if player.Dead {
			g.hud.AddMessage("You have died.")
		} else {
			g.hud.AddMessage("Combat over.")
		}
		return
	}

	cur := g.combat.Current()
	if cur == nil {
		// Active combatant died mid-round; skip forward.
		g.combat.NextTurn()
		return
	}
	if cur.IsPlayer {
		// Out of AP and done walking: the turn ends itself.
		if cur.Stats.AP <= 0 && !cur.Moving() {
			g.combat.NextTurn()
		}
		return
	}
	g.combat.AITurn(cur)
	g.combat.NextTurn()
}

// updateInput handles mouse and keyboard outside of dialogue.
func (g *Game) updateInput() {
	player := g.store.Player()
	if player == nil || player.Dead {
		return
	}

	if g.combat.InCombat() && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cur := g.combat.Current()
		if cur != nil && cur.IsPlayer {
			g.combat.NextTurn()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleWeapon(player)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.useHealingItem(player)
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	target := render.ScreenToGrid(float64(cx)+g.camera.X, float64(cy)+g.camera.Y)

	if g.combat.InCombat() {
		g.combatClick(player, target)
	} else {
		g.exploreClick(player, target)
	}
}

// exploreClick routes free-roam clicks: talk to an NPC, loot a corpse, or
// walk.
func (g *Game) exploreClick(player *entity.Entity, target world.Pos) {
	if other := g.store.At(target); other != nil && !other.IsPlayer {
		g.approachAndTalk(player, other)
		return
	}
	if corpse := g.store.CorpseAt(target); corpse != nil && world.Manhattan(player.Pos, target) <= 1 {
		g.lootCorpse(player, corpse)
		return
	}
	player.SetRoute(path.FindPath(g.grid, player.Pos, target))
}

// combatClick attacks a hostile or spends AP walking.
func (g *Game) combatClick(player *entity.Entity, target world.Pos) {
	cur := g.combat.Current()
	if cur == nil || !cur.IsPlayer || player.Moving() {
		return
	}

	if other := g.store.At(target); other != nil && other.Hostile {
		res := g.combat.Attack(player, other)
		switch {
		case res.Critical:
			g.sound.Play(audio.EffectCrit)
		case res.Hit:
			g.sound.Play(audio.EffectHit)
		default:
			g.sound.Play(audio.EffectMiss)
		}
		return
	}

	// Movement in combat costs 1 AP per cell; the route is clipped to
	// what the player can afford.
	route := path.FindPath(g.grid, player.Pos, target)
	if len(route) == 0 {
		return
	}
	if len(route) > player.Stats.AP {
		route = route[:player.Stats.AP]
	}
	player.Stats.AP -= len(route)
	player.SetRoute(route)
	g.sound.Play(audio.EffectStep)
}

// approachAndTalk walks the player next to an NPC and opens its dialogue.
func (g *Game) approachAndTalk(player *entity.Entity, npc *entity.Entity) {
	if npc.DialogueKey == "" {
		g.hud.AddMessage(npc.Name + " has nothing to say.")
		return
	}
	if world.Manhattan(player.Pos, npc.Pos) > 1 {
		adj, ok := path.FindAdjacentTile(g.grid, npc.Pos, player.Pos)
		if !ok {
			return
		}
		player.SetRoute(path.FindPath(g.grid, player.Pos, adj))
		return
	}
	player.Facing = path.DirectionBetween(player.Pos, npc.Pos)
	npc.Facing = path.DirectionBetween(npc.Pos, player.Pos)
	if err := g.dialogue.Start(npc.DialogueKey); err != nil {
		slog.Warn("dialogue failed", "npc", npc.Name, "err", err)
	}
}

func (g *Game) lootCorpse(player *entity.Entity, corpse *entity.Entity) {
	stacks := corpse.Inventory.Stacks()
	if len(stacks) == 0 {
		g.hud.AddMessage("Nothing left on " + corpse.Name + ".")
		return
	}
	corpse.Inventory.TransferAllTo(player.Inventory)
	g.hud.AddMessage("Looted " + corpse.Name + ".")
}

// healAPCost is the action-point price of using a healing item mid-combat.
const healAPCost = 3

// useHealingItem consumes the first held consumable with a heal value. Free
// while exploring; in combat it costs AP and only works on the player's
// turn.
func (g *Game) useHealingItem(player *entity.Entity) {
	var def *item.Definition
	for _, s := range player.Inventory.Stacks() {
		if d, ok := g.items.Get(s.ItemID); ok && d.Kind == item.KindConsumable && d.HealAmount > 0 {
			def = d
			break
		}
	}
	if def == nil {
		g.hud.AddMessage("Nothing to heal with.")
		return
	}
	if player.Stats.HP >= player.Stats.MaxHP {
		g.hud.AddMessage("Already at full health.")
		return
	}
	if g.combat.InCombat() {
		cur := g.combat.Current()
		if cur == nil || !cur.IsPlayer {
			return
		}
		if player.Stats.AP < healAPCost {
			g.hud.AddMessage("Not enough AP to use " + def.Name + ".")
			return
		}
		player.Stats.AP -= healAPCost
	}
	player.Inventory.Remove(def.ID, 1)
	player.Stats.HP += def.HealAmount
	if player.Stats.HP > player.Stats.MaxHP {
		player.Stats.HP = player.Stats.MaxHP
	}
	g.hud.AddMessage("Used " + def.Name + ".")
}

// cycleWeapon equips the next weapon stack in the player's inventory.
func (g *Game) cycleWeapon(player *entity.Entity) {
	var weapons []string
	current := -1
	for _, s := range player.Inventory.Stacks() {
		if _, ok := g.items.Weapon(s.ItemID); ok {
			if s.Equipped {
				current = len(weapons)
			}
			weapons = append(weapons, s.ItemID)
		}
	}
	if len(weapons) == 0 {
		return
	}
	player.Inventory.Equip(weapons[(current+1)%len(weapons)])
	g.hud.AddMessage("Equipped " + g.weaponName(player))
}

func (g *Game) updateDialogueInput() {
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.dialogue.Choose(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.dialogue.Close()
	}
}

// updateCamera centers on the player's interpolated position.
func (g *Game) updateCamera() {
	player := g.store.Player()
	if player == nil {
		return
	}
	gx, gy := float64(player.Pos.X), float64(player.Pos.Y)
	if len(player.Route) > 0 {
		next := player.Route[0]
		gx += (float64(next.X) - gx) * player.Progress
		gy += (float64(next.Y) - gy) * player.Progress
	}
	sx, sy := render.GridToScreen(gx, gy)
	g.camera.X = sx - float64(g.cfg.Window.Width)/2
	g.camera.Y = sy - float64(g.cfg.Window.Height)/2
}

func (g *Game) weaponName(player *entity.Entity) string {
	if player == nil {
		return ""
	}
	if id := player.Inventory.EquippedID(); id != "" {
		if def, ok := g.items.Get(id); ok && def.Weapon != nil {
			return def.Name
		}
	}
	return "Unarmed"
}

// Draw renders the frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.grid, g.store, g.camera)
	player := g.store.Player()
	g.hud.Draw(screen, player, g.combat.InCombat(), g.combat.Round(), g.weaponName(player), g.dialogue)
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
