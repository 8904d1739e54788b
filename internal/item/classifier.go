// Package item classifies materials into the weapon and armor families the
// tracker credits.
package item

import (
	"strings"

	"github.com/ArmaRealms/ToolStats/internal/domain"
)

// Classifier decides which materials count as melee weapons, bows and armor.
// The zero value is not usable; use NewClassifier.
type Classifier struct {
	extra map[domain.Material]Family
}

// Option customises a Classifier
type Option func(*Classifier)

// WithMaterial assigns a family to a material the naming rules don't cover,
// e.g. a modded weapon.
func WithMaterial(material domain.Material, family Family) Option {
	return func(c *Classifier) {
		c.extra[material] = family
	}
}

// NewClassifier creates a classifier with the vanilla naming rules
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{extra: make(map[domain.Material]Family)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Family returns the family of a material, or FamilyNone
func (c *Classifier) Family(material domain.Material) Family {
	if f, ok := c.extra[material]; ok {
		return f
	}

	switch material {
	case MaterialTrident:
		return FamilyTrident
	case MaterialMace:
		return FamilyMace
	case MaterialBow, MaterialCrossbow:
		return FamilyBow
	}

	name := strings.ToUpper(string(material))
	switch {
	case strings.HasSuffix(name, SuffixSword):
		return FamilySword
	case strings.HasSuffix(name, SuffixAxe) && !strings.HasSuffix(name, "PICKAXE"):
		return FamilyAxe
	case strings.HasSuffix(name, SuffixHelmet),
		strings.HasSuffix(name, SuffixChestplate),
		strings.HasSuffix(name, SuffixLeggings),
		strings.HasSuffix(name, SuffixBoots):
		return FamilyArmor
	}
	return FamilyNone
}

// IsMeleeWeapon reports whether a held item of this material can be credited with a kill
func (c *Classifier) IsMeleeWeapon(material domain.Material) bool {
	switch c.Family(material) {
	case FamilySword, FamilyAxe, FamilyTrident, FamilyMace:
		return true
	}
	return false
}

// IsBow reports whether the material is in the bow family (bow, crossbow)
func (c *Classifier) IsBow(material domain.Material) bool {
	return c.Family(material) == FamilyBow
}

// IsArmor reports whether the material is a wearable armor piece
func (c *Classifier) IsArmor(material domain.Material) bool {
	return c.Family(material) == FamilyArmor
}
