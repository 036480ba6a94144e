package item

// Stack is one inventory entry: an item id, how many are held, and whether
// this stack is the equipped one.
type Stack struct {
	ItemID   string `json:"item_id"`
	Count    int    `json:"count"`
	Equipped bool   `json:"equipped,omitempty"`
}

// Inventory is an ordered list of stacks. Order is insertion order; stacks
// merge by item id. At most one stack is equipped at a time.
type Inventory struct {
	stacks []Stack
}

// NewInventory creates an inventory seeded with the given stacks. Seed
// stacks with matching ids are merged in order.
func NewInventory(seed ...Stack) *Inventory {
	inv := &Inventory{}
	for _, s := range seed {
		inv.Add(s.ItemID, s.Count)
		if s.Equipped {
			inv.Equip(s.ItemID)
		}
	}
	return inv
}

// Add merges count items into the stack for itemID, creating the stack if
// none exists. Non-positive counts are ignored.
func (inv *Inventory) Add(itemID string, count int) {
	if count <= 0 {
		return
	}
	for i := range inv.stacks {
		if inv.stacks[i].ItemID == itemID {
			inv.stacks[i].Count += count
			return
		}
	}
	inv.stacks = append(inv.stacks, Stack{ItemID: itemID, Count: count})
}

// Remove takes count items out of the stack for itemID. Removing more than
// held is rejected: it returns false and the inventory is untouched. A stack
// drained to zero is removed entirely.
func (inv *Inventory) Remove(itemID string, count int) bool {
	if count <= 0 {
		return false
	}
	for i := range inv.stacks {
		if inv.stacks[i].ItemID != itemID {
			continue
		}
		if inv.stacks[i].Count < count {
			return false
		}
		inv.stacks[i].Count -= count
		if inv.stacks[i].Count == 0 {
			inv.stacks = append(inv.stacks[:i], inv.stacks[i+1:]...)
		}
		return true
	}
	return false
}

// Count returns how many of itemID are held.
func (inv *Inventory) Count(itemID string) int {
	for i := range inv.stacks {
		if inv.stacks[i].ItemID == itemID {
			return inv.stacks[i].Count
		}
	}
	return 0
}

// Equip marks the stack for itemID as equipped and clears the flag on every
// other stack. Returns false if the item is not held.
func (inv *Inventory) Equip(itemID string) bool {
	found := false
	for i := range inv.stacks {
		if inv.stacks[i].ItemID == itemID {
			found = true
		}
	}
	if !found {
		return false
	}
	for i := range inv.stacks {
		inv.stacks[i].Equipped = inv.stacks[i].ItemID == itemID
	}
	return true
}

// Unequip clears the equipped flag on every stack.
func (inv *Inventory) Unequip() {
	for i := range inv.stacks {
		inv.stacks[i].Equipped = false
	}
}

// EquippedID returns the equipped item id, or "" if nothing is equipped.
func (inv *Inventory) EquippedID() string {
	for i := range inv.stacks {
		if inv.stacks[i].Equipped {
			return inv.stacks[i].ItemID
		}
	}
	return ""
}

// Stacks returns a copy of the stack list in order.
func (inv *Inventory) Stacks() []Stack {
	out := make([]Stack, len(inv.stacks))
	copy(out, inv.stacks)
	return out
}

// TransferAllTo moves every stack into another inventory, merging by item
// id. Used for looting corpses.
func (inv *Inventory) TransferAllTo(dst *Inventory) {
	for _, s := range inv.stacks {
		dst.Add(s.ItemID, s.Count)
	}
	inv.stacks = nil
}
