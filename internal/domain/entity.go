package domain

import "github.com/google/uuid"

// GameMode is a player's game mode
type GameMode string

const (
	GameModeSurvival  GameMode = "SURVIVAL"
	GameModeAdventure GameMode = "ADVENTURE"
	GameModeCreative  GameMode = "CREATIVE"
	GameModeSpectator GameMode = "SPECTATOR"
)

// Interactive reports whether players in this mode accrue or inflict statistics.
// Creative and spectator never do.
func (g GameMode) Interactive() bool {
	return g != GameModeCreative && g != GameModeSpectator
}

// ArmorSlot indexes worn armor, in the host's armor-contents order
type ArmorSlot int

const (
	ArmorBoots ArmorSlot = iota
	ArmorLeggings
	ArmorChestplate
	ArmorHelmet
)

// ArmorSlotCount is the number of armor slots a player has
const ArmorSlotCount = 4

func (s ArmorSlot) String() string {
	switch s {
	case ArmorBoots:
		return "boots"
	case ArmorLeggings:
		return "leggings"
	case ArmorChestplate:
		return "chestplate"
	case ArmorHelmet:
		return "helmet"
	}
	return "unknown"
}

// Entity is anything the host world tracks by identifier
type Entity interface {
	ID() uuid.UUID
	// Valid is false once the host has removed the entity
	Valid() bool
}

// LivingEntity is an entity with health
type LivingEntity interface {
	Entity
	Health() float64
}

// Player is a living entity controlled by a user
type Player interface {
	LivingEntity
	Name() string
	GameMode() GameMode
	Inventory() Inventory
}

// Inventory is a player's item storage. Slot contents are looked up at call
// time; the tracker never keeps an Item it read from here across ticks.
type Inventory interface {
	HeldSlot() int
	Item(slot int) (Item, bool)
	SetItem(slot int, item Item) bool
	// Armor returns worn armor indexed by ArmorSlot; empty slots hold an empty Item
	Armor() []Item
	SetArmor(slot ArmorSlot, item Item) bool
}

// ThrownWeapon is a projectile entity carrying an embedded item (e.g. a trident)
type ThrownWeapon interface {
	Entity
	Item() Item
	SetItem(item Item)
}
