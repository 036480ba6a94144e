// Package dialogue provides data-driven branching conversations. Trees are
// loaded from JSON and walked one node at a time; each node offers choices
// that jump to another node or end the conversation.
package dialogue

import (
	"encoding/json"
	"fmt"
	"os"
)

// Choice is one selectable reply in a dialogue node.
type Choice struct {
	Text string `json:"text"`
	Next string `json:"next,omitempty"` // node id; empty with End set
	End  bool   `json:"end,omitempty"`
}

// Node is a single dialogue beat: what the NPC says and how the player can
// answer.
type Node struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Choices []Choice `json:"choices"`
}

// Tree is one complete conversation, keyed by the NPC's dialogue key.
type Tree struct {
	Key   string  `json:"key"`
	Start string  `json:"start"`
	Nodes []*Node `json:"nodes"`

	nodesByID map[string]*Node
}

func (t *Tree) buildIndex() error {
	t.nodesByID = make(map[string]*Node, len(t.Nodes))
	for _, n := range t.Nodes {
		if _, dup := t.nodesByID[n.ID]; dup {
			return fmt.Errorf("dialogue %q: duplicate node id %q", t.Key, n.ID)
		}
		t.nodesByID[n.ID] = n
	}
	if _, ok := t.nodesByID[t.Start]; !ok {
		return fmt.Errorf("dialogue %q: start node %q not found", t.Key, t.Start)
	}
	for _, n := range t.Nodes {
		for _, ch := range n.Choices {
			if ch.End {
				continue
			}
			if _, ok := t.nodesByID[ch.Next]; !ok {
				return fmt.Errorf("dialogue %q: node %q links to missing node %q", t.Key, n.ID, ch.Next)
			}
		}
	}
	return nil
}

// Engine tracks the active conversation, if any.
type Engine struct {
	trees map[string]*Tree

	current *Tree
	node    *Node
}

// NewEngine creates an engine over the built-in conversations.
func NewEngine() *Engine {
	eng := &Engine{trees: make(map[string]*Tree)}
	for _, t := range defaultTrees() {
		// Built-in trees are checked at package build;
		// buildIndex cannot fail on them.
		_ = t.buildIndex()
		eng.trees[t.Key] = t
	}
	return eng
}

// LoadTrees reads extra dialogue trees from a JSON file and merges them
// over the built-ins.
func (e *Engine) LoadTrees(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dialogue file %s: %w", path, err)
	}
	var trees []*Tree
	if err := json.Unmarshal(data, &trees); err != nil {
		return fmt.Errorf("failed to parse dialogue file %s: %w", path, err)
	}
	for _, t := range trees {
		if err := t.buildIndex(); err != nil {
			return err
		}
		e.trees[t.Key] = t
	}
	return nil
}

// Start opens the conversation for the given key.
func (e *Engine) Start(key string) error {
	t, ok := e.trees[key]
	if !ok {
		return fmt.Errorf("no dialogue tree for key %q", key)
	}
	e.current = t
	e.node = t.nodesByID[t.Start]
	return nil
}

// Active reports whether a conversation is open.
func (e *Engine) Active() bool {
	return e.current != nil
}

// Node returns the current dialogue node, or nil outside a conversation.
func (e *Engine) Node() *Node {
	return e.node
}

// Choose picks the i-th choice of the current node, advancing to the next
// node or closing the conversation. Out-of-range choices are ignored.
func (e *Engine) Choose(i int) {
	if e.current == nil || i < 0 || i >= len(e.node.Choices) {
		return
	}
	ch := e.node.Choices[i]
	if ch.End {
		e.Close()
		return
	}
	e.node = e.current.nodesByID[ch.Next]
}

// Close abandons the current conversation.
func (e *Engine) Close() {
	e.current = nil
	e.node = nil
}

// defaultTrees returns the built-in conversations for the standard spawn
// table.
func defaultTrees() []*Tree {
	return []*Tree{
		{
			Key:   "villager_greeting",
			Start: "hello",
			Nodes: []*Node{
				{
					ID:   "hello",
					Text: "Stranger! Not many travellers make it past the raider camps these days.",
					Choices: []Choice{
						{Text: "What happened here?", Next: "history"},
						{Text: "Any work for me?", Next: "work"},
						{Text: "Just passing through.", End: true},
					},
				},
				{
					ID:   "history",
					Text: "The old town burned years back. We rebuilt what we could from the rubble.",
					Choices: []Choice{
						{Text: "Any work for me?", Next: "work"},
						{Text: "Goodbye.", End: true},
					},
				},
				{
					ID:   "work",
					Text: "Raiders hole up in the ruins east of here. Clear them out and the caps are yours.",
					Choices: []Choice{
						{Text: "Consider it done.", End: true},
						{Text: "Too rich for my blood.", End: true},
					},
				},
			},
		},
		{
			Key:   "trader_greeting",
			Start: "hello",
			Nodes: []*Node{
				{
					ID:   "hello",
					Text: "Got scrap, stims, and a pistol that mostly fires. Looking to trade?",
					Choices: []Choice{
						{Text: "Maybe later.", End: true},
						{Text: "Where do you find this stuff?", Next: "source"},
					},
				},
				{
					ID:   "source",
					Text: "The ruins. Dead raiders don't haggle.",
					Choices: []Choice{
						{Text: "Fair enough.", End: true},
					},
				},
			},
		},
	}
}
