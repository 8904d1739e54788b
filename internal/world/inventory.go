package world

import (
	"sync"

	"github.com/ArmaRealms/ToolStats/internal/domain"
)

// Inventory is an in-memory player inventory. Items are stored and returned
// as copies, so callers never alias stored metadata.
type Inventory struct {
	mu       sync.RWMutex
	slots    [InventorySize]domain.Item
	armor    [domain.ArmorSlotCount]domain.Item
	heldSlot int
}

// NewInventory creates an empty inventory holding slot 0
func NewInventory() *Inventory {
	inv := &Inventory{}
	for i := range inv.slots {
		inv.slots[i] = domain.NewItem(domain.MaterialAir)
	}
	for i := range inv.armor {
		inv.armor[i] = domain.NewItem(domain.MaterialAir)
	}
	return inv
}

// HeldSlot returns the selected hotbar slot
func (i *Inventory) HeldSlot() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.heldSlot
}

// SetHeldSlot selects a hotbar slot. Out of range slots are ignored.
func (i *Inventory) SetHeldSlot(slot int) bool {
	if slot < 0 || slot >= HotbarSize {
		return false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.heldSlot = slot
	return true
}

// Item returns a copy of the item in a slot
func (i *Inventory) Item(slot int) (domain.Item, bool) {
	if slot < 0 || slot >= InventorySize {
		return domain.Item{}, false
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slots[slot].Clone(), true
}

// SetItem stores a copy of item in a slot
func (i *Inventory) SetItem(slot int, item domain.Item) bool {
	if slot < 0 || slot >= InventorySize {
		return false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.slots[slot] = item.Clone()
	return true
}

// HeldItem returns a copy of the item in the held slot
func (i *Inventory) HeldItem() domain.Item {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slots[i.heldSlot].Clone()
}

// Armor returns copies of the worn armor, indexed by domain.ArmorSlot
func (i *Inventory) Armor() []domain.Item {
	i.mu.RLock()
	defer i.mu.RUnlock()
	out := make([]domain.Item, len(i.armor))
	for n, it := range i.armor {
		out[n] = it.Clone()
	}
	return out
}

// SetArmor stores a copy of item in an armor slot
func (i *Inventory) SetArmor(slot domain.ArmorSlot, item domain.Item) bool {
	if slot < 0 || int(slot) >= domain.ArmorSlotCount {
		return false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.armor[slot] = item.Clone()
	return true
}
