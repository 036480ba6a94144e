// Package combat runs turn-based encounters: it builds the initiative
// queue, meters action points, resolves attacks, and drives the reactive
// policy for hostile NPCs.
package combat

import (
	"fmt"
	"math/rand"
	"sort"

	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/item"
	"chosenoffset.com/ashfall/internal/world"
	"chosenoffset.com/ashfall/internal/world/path"
)

// EngagementRange is the Manhattan distance at which a hostile stops
// repositioning and starts attacking.
const EngagementRange = 5

// stepAPCost is the action-point price of one repositioning step.
const stepAPCost = 1

// Result is the outcome of a single attack, consumed immediately by the
// caller for messaging and damage numbers.
type Result struct {
	Hit      bool
	Damage   int
	Critical bool
	Message  string
}

// Controller is the combat state machine. Outside combat the queue is
// empty; InitCombat builds it and NextTurn cycles it until the caller ends
// the encounter.
type Controller struct {
	grid  *world.Grid
	store *entity.Store
	items *item.Library
	rng   *rand.Rand

	queue  []string // entity ids in initiative order
	active int
	round  int

	// Callbacks for the presentation layer.
	OnMessage     func(msg string)
	OnEntityDeath func(e *entity.Entity)
}

// NewController creates a controller over the given world. The random
// source drives hit, damage-variance, and critical rolls; seed it for
// deterministic replays.
func NewController(grid *world.Grid, store *entity.Store, items *item.Library, rng *rand.Rand) *Controller {
	return &Controller{grid: grid, store: store, items: items, rng: rng}
}

// InCombat reports whether an encounter is running.
func (c *Controller) InCombat() bool {
	return len(c.queue) > 0
}

// Round returns the current round number, starting at 1.
func (c *Controller) Round() int {
	return c.round
}

// Queue returns a copy of the initiative order as entity ids.
func (c *Controller) Queue() []string {
	out := make([]string, len(c.queue))
	copy(out, c.queue)
	return out
}

// InitCombat builds the initiative queue from every living combatant (the
// player plus all hostiles), highest agility first with stable order on
// ties, resets everyone's AP to max, and hands the first turn to the head
// of the queue.
func (c *Controller) InitCombat() {
	c.queue = c.queue[:0]

	var fighters []*entity.Entity
	for _, e := range c.store.All() {
		if e.Alive() && (e.IsPlayer || e.Hostile) {
			fighters = append(fighters, e)
		}
	}
	sort.SliceStable(fighters, func(i, j int) bool {
		return fighters[i].Stats.Agility > fighters[j].Stats.Agility
	})

	for _, e := range fighters {
		e.Stats.AP = e.Stats.MaxAP
		e.ClearRoute()
		c.queue = append(c.queue, e.ID)
	}
	c.active = 0
	c.round = 1
}

// EndCombat tears down the encounter.
func (c *Controller) EndCombat() {
	c.queue = nil
	c.active = 0
	c.round = 0
}

// Current returns the entity whose turn it is, or nil when the queue is
// empty or everyone left in it is dead. A nil result mid-encounter is the
// degenerate all-dead state; the game loop reacts by ending combat.
func (c *Controller) Current() *entity.Entity {
	if len(c.queue) == 0 {
		return nil
	}
	e := c.store.ByID(c.queue[c.active])
	if e == nil || e.Dead {
		return nil
	}
	return e
}

// NextTurn advances the active index. Wrapping past the end starts a new
// round and refreshes AP to max for every living queued combatant. Dead
// combatants are skipped with a bounded walk over the queue, so a fully
// dead queue terminates instead of recursing.
func (c *Controller) NextTurn() {
	if len(c.queue) == 0 {
		return
	}
	for range c.queue {
		c.active++
		if c.active >= len(c.queue) {
			c.active = 0
			c.round++
			c.refreshAP()
		}
		e := c.store.ByID(c.queue[c.active])
		if e != nil && e.Alive() {
			return
		}
	}
	// Everyone in the queue is dead; Current() now reports nil.
}

func (c *Controller) refreshAP() {
	for _, id := range c.queue {
		if e := c.store.ByID(id); e != nil && e.Alive() {
			e.Stats.AP = e.Stats.MaxAP
		}
	}
}

// WeaponFor returns the combat profile of the attacker's equipped weapon,
// falling back to bare fists when nothing equipped is a weapon.
func (c *Controller) WeaponFor(e *entity.Entity) item.WeaponSpec {
	if id := e.Inventory.EquippedID(); id != "" {
		if spec, ok := c.items.Weapon(id); ok {
			return spec
		}
	}
	return item.Unarmed
}

// Attack resolves one attack. The AP cost is checked first and spent
// whether or not the attack connects. Hit chance is
// 0.7 + perception*0.03 - manhattan*0.05; damage is
// max(1, weapon + strength/3 + variance in [-2,+2]), doubled on a critical
// (chance luck*0.02). The target's HP floors at zero and death is marked
// here; loot transfer stays with the caller.
func (c *Controller) Attack(attacker, target *entity.Entity) Result {
	weapon := c.WeaponFor(attacker)

	if attacker.Stats.AP < weapon.APCost {
		return Result{Message: fmt.Sprintf("%s does not have enough AP to attack", attacker.Name)}
	}
	attacker.Stats.AP -= weapon.APCost

	dist := world.Manhattan(attacker.Pos, target.Pos)
	chance := 0.7 + float64(attacker.Stats.Perception)*0.03 - float64(dist)*0.05

	if c.rng.Float64() > chance {
		res := Result{Message: fmt.Sprintf("%s misses %s", attacker.Name, target.Name)}
		c.emit(res.Message)
		return res
	}

	damage := weapon.Damage + attacker.Stats.Strength/3 + (c.rng.Intn(5) - 2)
	if damage < 1 {
		damage = 1
	}
	crit := c.rng.Float64() < float64(attacker.Stats.Luck)*0.02
	if crit {
		damage *= 2
	}

	target.Stats.HP -= damage
	if target.Stats.HP <= 0 {
		target.Stats.HP = 0
		target.Dead = true
	}

	res := Result{Hit: true, Damage: damage, Critical: crit}
	if crit {
		res.Message = fmt.Sprintf("%s critically hits %s for %d damage!", attacker.Name, target.Name, damage)
	} else {
		res.Message = fmt.Sprintf("%s hits %s for %d damage", attacker.Name, target.Name, damage)
	}
	c.emit(res.Message)

	if target.Dead {
		c.emit(fmt.Sprintf("%s dies", target.Name))
		if c.OnEntityDeath != nil {
			c.OnEntityDeath(target)
		}
	}
	return res
}

// AITurn runs the reactive policy for one hostile NPC: within engagement
// range it dumps its remaining AP into attacks on the player, stopping
// early if the player dies; otherwise it takes a single greedy diagonal
// step toward the player for 1 AP. The step checks only its destination, no
// pathfinding, so a hostile can wedge against obstacles until the player
// moves back into line of approach.
func (c *Controller) AITurn(npc *entity.Entity) {
	if npc.Dead {
		return
	}
	player := c.store.Player()
	if player == nil || player.Dead {
		return
	}

	dist := world.Manhattan(npc.Pos, player.Pos)
	if dist <= EngagementRange {
		weapon := c.WeaponFor(npc)
		for npc.Stats.AP >= weapon.APCost && player.Alive() {
			c.Attack(npc, player)
		}
		return
	}

	if npc.Stats.AP < stepAPCost {
		return
	}
	dest := world.Pos{
		X: npc.Pos.X + sign(player.Pos.X-npc.Pos.X),
		Y: npc.Pos.Y + sign(player.Pos.Y-npc.Pos.Y),
	}
	if !path.IsWalkable(c.grid, dest) {
		return
	}
	npc.Facing = path.DirectionBetween(npc.Pos, dest)
	npc.Pos = dest
	npc.Stats.AP -= stepAPCost
}

func (c *Controller) emit(msg string) {
	if c.OnMessage != nil {
		c.OnMessage(msg)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
