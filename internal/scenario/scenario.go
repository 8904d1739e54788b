package scenario

import "strconv"

// ActionType names what a scenario step does
type ActionType string

const (
	ActionHit      ActionType = "hit"
	ActionTick     ActionType = "tick"
	ActionSelect   ActionType = "select"
	ActionSetItem  ActionType = "set-item"
	ActionGameMode ActionType = "game-mode"
	ActionRemove   ActionType = "remove"
)

// Shapes of damage a hit step can deliver
const (
	ShapeByEntity = "by_entity"
	ShapeGeneric  = "generic"
	ShapeByBlock  = "by_block"
)

// Scenario is a scripted sequence of combat against an in-memory world
type Scenario struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Players     []PlayerSpec `yaml:"players,omitempty" json:"players,omitempty"`
	Mobs        []MobSpec    `yaml:"mobs,omitempty" json:"mobs,omitempty"`
	Objects     []ObjectSpec `yaml:"objects,omitempty" json:"objects,omitempty"`
	Thrown      []ThrownSpec `yaml:"thrown,omitempty" json:"thrown,omitempty"`
	Steps       []Step       `yaml:"steps" json:"steps"`
	Expect      []Assertion  `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// ItemSpec describes an item to place in the world
type ItemSpec struct {
	Material string `yaml:"material" json:"material"`
	// NoMeta builds an item that cannot carry metadata
	NoMeta bool      `yaml:"no-meta,omitempty" json:"no_meta,omitempty"`
	Lore   []string  `yaml:"lore,omitempty" json:"lore,omitempty"`
	Stats  StatsSpec `yaml:"stats,omitempty" json:"stats,omitempty"`
}

// StatsSpec seeds counters on an item
type StatsSpec struct {
	PlayerKills *int     `yaml:"player-kills,omitempty" json:"player_kills,omitempty"`
	MobKills    *int     `yaml:"mob-kills,omitempty" json:"mob_kills,omitempty"`
	ArmorDamage *float64 `yaml:"armor-damage,omitempty" json:"armor_damage,omitempty"`
}

// PlayerSpec describes a player and what they carry
type PlayerSpec struct {
	Name      string     `yaml:"name" json:"name"`
	GameMode  string     `yaml:"game-mode,omitempty" json:"game_mode,omitempty"`
	Health    float64    `yaml:"health,omitempty" json:"health,omitempty"`
	HeldSlot  int        `yaml:"held-slot,omitempty" json:"held_slot,omitempty"`
	Inventory []SlotSpec `yaml:"inventory,omitempty" json:"inventory,omitempty"`
	Armor     ArmorSpec  `yaml:"armor,omitempty" json:"armor,omitempty"`
}

// SlotSpec places an item in an inventory slot
type SlotSpec struct {
	Slot int      `yaml:"slot" json:"slot"`
	Item ItemSpec `yaml:"item" json:"item"`
}

// ArmorSpec is the worn armor of a player
type ArmorSpec struct {
	Boots      *ItemSpec `yaml:"boots,omitempty" json:"boots,omitempty"`
	Leggings   *ItemSpec `yaml:"leggings,omitempty" json:"leggings,omitempty"`
	Chestplate *ItemSpec `yaml:"chestplate,omitempty" json:"chestplate,omitempty"`
	Helmet     *ItemSpec `yaml:"helmet,omitempty" json:"helmet,omitempty"`
}

// MobSpec describes a non-player living entity
type MobSpec struct {
	ID     string  `yaml:"id" json:"id"`
	Kind   string  `yaml:"kind" json:"kind"`
	Health float64 `yaml:"health,omitempty" json:"health,omitempty"`
}

// ObjectSpec describes a non-living entity
type ObjectSpec struct {
	ID   string `yaml:"id" json:"id"`
	Kind string `yaml:"kind" json:"kind"`
}

// ThrownSpec describes a thrown weapon in flight
type ThrownSpec struct {
	ID      string   `yaml:"id" json:"id"`
	Thrower string   `yaml:"thrower,omitempty" json:"thrower,omitempty"`
	Item    ItemSpec `yaml:"item" json:"item"`
}

// Step is one action. Exactly one field is set.
type Step struct {
	Hit      *HitStep      `yaml:"hit,omitempty" json:"hit,omitempty"`
	Tick     int           `yaml:"tick,omitempty" json:"tick,omitempty"`
	Select   *SelectStep   `yaml:"select,omitempty" json:"select,omitempty"`
	SetItem  *SetItemStep  `yaml:"set-item,omitempty" json:"set_item,omitempty"`
	GameMode *GameModeStep `yaml:"game-mode,omitempty" json:"game_mode,omitempty"`
	Remove   string        `yaml:"remove,omitempty" json:"remove,omitempty"`
}

// Action reports which action the step performs
func (s Step) Action() ActionType {
	switch {
	case s.Hit != nil:
		return ActionHit
	case s.Select != nil:
		return ActionSelect
	case s.SetItem != nil:
		return ActionSetItem
	case s.GameMode != nil:
		return ActionGameMode
	case s.Remove != "":
		return ActionRemove
	case s.Tick > 0:
		return ActionTick
	}
	return ""
}

// HitStep delivers one damage event
type HitStep struct {
	Shape     string        `yaml:"shape" json:"shape"`
	Cause     string        `yaml:"cause,omitempty" json:"cause,omitempty"`
	Victim    string        `yaml:"victim" json:"victim"`
	Damage    float64       `yaml:"damage" json:"damage"`
	Attacker  *AttackerSpec `yaml:"attacker,omitempty" json:"attacker,omitempty"`
	Block     string        `yaml:"block,omitempty" json:"block,omitempty"`
	Cancelled bool          `yaml:"cancelled,omitempty" json:"cancelled,omitempty"`
}

// AttackerSpec names the responsible actor of a by_entity hit. Shooter set to
// the empty string is an arrow with no player behind it.
type AttackerSpec struct {
	Player  string  `yaml:"player,omitempty" json:"player,omitempty"`
	Thrown  string  `yaml:"thrown,omitempty" json:"thrown,omitempty"`
	Shooter *string `yaml:"shooter,omitempty" json:"shooter,omitempty"`
}

// SelectStep changes a player's held hotbar slot
type SelectStep struct {
	Player string `yaml:"player" json:"player"`
	Slot   int    `yaml:"slot" json:"slot"`
}

// SetItemStep replaces the contents of an inventory slot
type SetItemStep struct {
	Player string   `yaml:"player" json:"player"`
	Slot   int      `yaml:"slot" json:"slot"`
	Item   ItemSpec `yaml:"item" json:"item"`
}

// GameModeStep switches a player's game mode
type GameModeStep struct {
	Player string `yaml:"player" json:"player"`
	Mode   string `yaml:"mode" json:"mode"`
}

// Assertion is an expected final value of an item's statistic. The item is
// addressed by player and slot, player and armor piece, or thrown weapon id.
type Assertion struct {
	Player string   `yaml:"player,omitempty" json:"player,omitempty"`
	Slot   *int     `yaml:"slot,omitempty" json:"slot,omitempty"`
	Armor  string   `yaml:"armor,omitempty" json:"armor,omitempty"`
	Thrown string   `yaml:"thrown,omitempty" json:"thrown,omitempty"`
	Stat   string   `yaml:"stat" json:"stat"`
	Equals *float64 `yaml:"equals,omitempty" json:"equals,omitempty"`
	Lore   []string `yaml:"lore,omitempty" json:"lore,omitempty"`
	Reason string   `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Target describes the addressed item for messages
func (a Assertion) Target() string {
	switch {
	case a.Thrown != "":
		return "thrown/" + a.Thrown
	case a.Armor != "":
		return a.Player + "/armor/" + a.Armor
	case a.Slot != nil:
		return a.Player + "/slot/" + strconv.Itoa(*a.Slot)
	}
	return a.Player
}

// ScenarioSummary provides a brief overview of a scenario for listing
type ScenarioSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StepCount   int    `json:"step_count"`
	ExpectCount int    `json:"expect_count"`
}

// ToSummary converts a Scenario to a ScenarioSummary
func (s *Scenario) ToSummary() ScenarioSummary {
	return ScenarioSummary{
		Name:        s.Name,
		Description: s.Description,
		StepCount:   len(s.Steps),
		ExpectCount: len(s.Expect),
	}
}
