package world

// Inventory layout
const (
	// InventorySize is the number of storage slots, hotbar included
	InventorySize = 36
	// HotbarSize is the number of slots a player can hold from
	HotbarSize = 9
)

// Default entity values
const (
	DefaultPlayerHealth = 20.0
	DefaultMobHealth    = 20.0
)
