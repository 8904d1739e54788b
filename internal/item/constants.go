package item

import "github.com/ArmaRealms/ToolStats/internal/domain"

// Family groups materials that share description switches
type Family string

const (
	FamilyNone    Family = ""
	FamilySword   Family = "sword"
	FamilyAxe     Family = "axe"
	FamilyTrident Family = "trident"
	FamilyMace    Family = "mace"
	FamilyBow     Family = "bow"
	FamilyArmor   Family = "armor"
)

// Material name suffixes
const (
	SuffixSword      = "_SWORD"
	SuffixAxe        = "_AXE"
	SuffixHelmet     = "_HELMET"
	SuffixChestplate = "_CHESTPLATE"
	SuffixLeggings   = "_LEGGINGS"
	SuffixBoots      = "_BOOTS"
)

// Materials without a tier prefix
const (
	MaterialTrident  domain.Material = "TRIDENT"
	MaterialMace     domain.Material = "MACE"
	MaterialBow      domain.Material = "BOW"
	MaterialCrossbow domain.Material = "CROSSBOW"
)

// WeaponFamilies lists the families that can be credited with kills
var WeaponFamilies = []Family{FamilySword, FamilyAxe, FamilyTrident, FamilyMace, FamilyBow}
