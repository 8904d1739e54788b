package domain

import "fmt"

// Holder locates an item that a deferred mutation will replace. Resolve is
// called when the mutation runs, not when it is scheduled.
type Holder interface {
	// Resolve returns the item currently held, or ErrStaleTarget when the
	// holder is gone or now holds something unrelated.
	Resolve() (Item, error)
	Replace(item Item) error
	fmt.Stringer
}

// SlotHolder is a slot in a player's inventory
type SlotHolder struct {
	Player Player
	Slot   int
	Expect Material
}

func (h SlotHolder) Resolve() (Item, error) {
	if h.Player == nil || !h.Player.Valid() {
		return Item{}, ErrStaleTarget
	}
	it, ok := h.Player.Inventory().Item(h.Slot)
	if !ok || it.Material != h.Expect {
		return Item{}, ErrStaleTarget
	}
	return it, nil
}

func (h SlotHolder) Replace(item Item) error {
	if h.Player == nil || !h.Player.Valid() {
		return ErrStaleTarget
	}
	if !h.Player.Inventory().SetItem(h.Slot, item) {
		return ErrStaleTarget
	}
	return nil
}

func (h SlotHolder) String() string {
	if h.Player == nil {
		return fmt.Sprintf("slot %d", h.Slot)
	}
	return fmt.Sprintf("%s slot %d", h.Player.Name(), h.Slot)
}

// ArmorHolder is a worn armor slot
type ArmorHolder struct {
	Player Player
	Slot   ArmorSlot
	Expect Material
}

func (h ArmorHolder) Resolve() (Item, error) {
	if h.Player == nil || !h.Player.Valid() {
		return Item{}, ErrStaleTarget
	}
	armor := h.Player.Inventory().Armor()
	if int(h.Slot) < 0 || int(h.Slot) >= len(armor) {
		return Item{}, ErrStaleTarget
	}
	it := armor[h.Slot]
	if it.Material != h.Expect {
		return Item{}, ErrStaleTarget
	}
	return it, nil
}

func (h ArmorHolder) Replace(item Item) error {
	if h.Player == nil || !h.Player.Valid() {
		return ErrStaleTarget
	}
	if !h.Player.Inventory().SetArmor(h.Slot, item) {
		return ErrStaleTarget
	}
	return nil
}

func (h ArmorHolder) String() string {
	if h.Player == nil {
		return h.Slot.String()
	}
	return fmt.Sprintf("%s %s", h.Player.Name(), h.Slot)
}

// EntityHolder is the item embedded in a thrown weapon
type EntityHolder struct {
	Weapon ThrownWeapon
	Expect Material
}

func (h EntityHolder) Resolve() (Item, error) {
	if h.Weapon == nil || !h.Weapon.Valid() {
		return Item{}, ErrStaleTarget
	}
	it := h.Weapon.Item()
	if it.Material != h.Expect {
		return Item{}, ErrStaleTarget
	}
	return it, nil
}

func (h EntityHolder) Replace(item Item) error {
	if h.Weapon == nil || !h.Weapon.Valid() {
		return ErrStaleTarget
	}
	h.Weapon.SetItem(item)
	return nil
}

func (h EntityHolder) String() string {
	if h.Weapon == nil {
		return "thrown weapon"
	}
	return fmt.Sprintf("thrown weapon %s", h.Weapon.ID())
}
