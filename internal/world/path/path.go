// Package path provides grid routing for the simulation: walkability
// queries, A* route search, approach-tile selection, and the grid-to-screen
// facing table used by the isometric renderer.
package path

import (
	"container/heap"
	"math"

	"chosenoffset.com/ashfall/internal/entity"
	"chosenoffset.com/ashfall/internal/world"
)

// maxIterations bounds one FindPath call. Exhausting the budget means "no
// path found", never a hang; the cap only exists to limit per-call CPU on
// large or unreachable searches.
const maxIterations = 2000

const diagonalCost = math.Sqrt2

// neighborOffsets lists the 8-connected deltas, orthogonals first.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// IsWalkable reports whether p is in-bounds with no collision.
func IsWalkable(g *world.Grid, p world.Pos) bool {
	return g.Walkable(p)
}

// FindPath runs A* from start to end over 8-directional movement.
// Orthogonal steps cost 1, diagonal steps cost sqrt(2); the heuristic is
// Manhattan distance. A diagonal step additionally requires at least one of
// its two flanking orthogonal cells to be walkable, so routes cannot clip
// through the corner between two solid tiles.
//
// The returned route excludes start and includes end, in traversal order.
// It is empty when end is unwalkable, start equals end, no route exists, or
// the iteration budget runs out.
func FindPath(g *world.Grid, start, end world.Pos) []world.Pos {
	if !g.Walkable(end) || start == end {
		return nil
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{pos: start, h: float64(world.Manhattan(start, end))})

	closed := make(map[world.Pos]struct{}, 64)
	bestG := map[world.Pos]float64{start: 0}

	for i := 0; i < maxIterations; i++ {
		if open.Len() == 0 {
			return nil
		}
		current := heap.Pop(open).(*node)

		if current.pos == end {
			return rebuild(current)
		}
		if _, seen := closed[current.pos]; seen {
			continue
		}
		closed[current.pos] = struct{}{}

		for _, off := range neighborOffsets {
			next := world.Pos{X: current.pos.X + off[0], Y: current.pos.Y + off[1]}
			if !g.Walkable(next) {
				continue
			}
			if _, seen := closed[next]; seen {
				continue
			}

			cost := 1.0
			if off[0] != 0 && off[1] != 0 {
				// Diagonal: block the move when both flanking
				// orthogonal cells are solid.
				sideA := world.Pos{X: current.pos.X + off[0], Y: current.pos.Y}
				sideB := world.Pos{X: current.pos.X, Y: current.pos.Y + off[1]}
				if !g.Walkable(sideA) && !g.Walkable(sideB) {
					continue
				}
				cost = diagonalCost
			}

			gCost := current.g + cost
			if prev, ok := bestG[next]; ok && prev <= gCost {
				continue
			}
			bestG[next] = gCost
			heap.Push(open, &node{
				pos:    next,
				parent: current,
				g:      gCost,
				h:      float64(world.Manhattan(next, end)),
			})
		}
	}

	// Budget exhausted: fail open with "no path".
	return nil
}

// FindAdjacentTile returns the walkable 8-neighbor of target closest (by
// Manhattan distance) to origin. Used to approach an occupied tile, e.g. to
// stand next to an NPC for a conversation. The second return is false when
// every neighbor is blocked.
func FindAdjacentTile(g *world.Grid, target, origin world.Pos) (world.Pos, bool) {
	var best world.Pos
	bestDist := -1
	for _, off := range neighborOffsets {
		p := world.Pos{X: target.X + off[0], Y: target.Y + off[1]}
		if !g.Walkable(p) {
			continue
		}
		d := world.Manhattan(p, origin)
		if bestDist < 0 || d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, bestDist >= 0
}

// DirectionBetween derives the screen-space facing for a move from one grid
// cell toward another. The grid axes sit 45 degrees off the rendered screen
// axes, so a grid step of (0,-1) faces north-east on screen, not north. The
// mapping is a fixed table and must stay exact for sprite selection.
func DirectionBetween(from, to world.Pos) entity.Direction {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)

	switch [2]int{dx, dy} {
	case [2]int{0, -1}:
		return entity.DirNorthEast
	case [2]int{1, -1}:
		return entity.DirEast
	case [2]int{1, 0}:
		return entity.DirSouthEast
	case [2]int{1, 1}:
		return entity.DirSouth
	case [2]int{0, 1}:
		return entity.DirSouthWest
	case [2]int{-1, 1}:
		return entity.DirWest
	case [2]int{-1, 0}:
		return entity.DirNorthWest
	case [2]int{-1, -1}:
		return entity.DirNorth
	default:
		return entity.DirNone
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

func rebuild(goal *node) []world.Pos {
	var route []world.Pos
	for n := goal; n.parent != nil; n = n.parent {
		route = append(route, n.pos)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// node is one A* search entry.
type node struct {
	pos    world.Pos
	parent *node
	g, h   float64
	seq    int // insertion order, final tie-break
	index  int // heap index
}

func (n *node) f() float64 { return n.g + n.h }

// nodeHeap orders nodes by f, then h, then insertion order, which keeps the
// search deterministic across runs with equal-cost alternatives.
type nodeHeap struct {
	nodes []*node
	seq   int
}

func (h *nodeHeap) Len() int { return len(h.nodes) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].index = i
	h.nodes[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.seq = h.seq
	h.seq++
	n.index = len(h.nodes)
	h.nodes = append(h.nodes, n)
}

func (h *nodeHeap) Pop() any {
	old := h.nodes
	n := old[len(old)-1]
	old[len(old)-1] = nil
	h.nodes = old[:len(old)-1]
	return n
}
