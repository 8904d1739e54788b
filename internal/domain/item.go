package domain

import (
	"fmt"
	"maps"
	"slices"
)

// Material identifies the type of an item, e.g. "DIAMOND_SWORD"
type Material string

// MaterialAir is the material of an empty slot
const MaterialAir Material = "AIR"

// Key is a namespaced metadata key
type Key struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Name      string `json:"name" yaml:"name"`
}

// String returns the key in "namespace:name" form
func (k Key) String() string {
	return k.Namespace + ":" + k.Name
}

// Meta is the metadata-capable part of an item: a typed key-value store plus
// an ordered description (lore). A nil Lore means the item has no description.
type Meta struct {
	Data map[Key]any
	Lore []string
}

// HasLore reports whether the item carries a description
func (m *Meta) HasLore() bool {
	return m != nil && m.Lore != nil
}

// Clone returns a deep copy of the metadata
func (m *Meta) Clone() *Meta {
	if m == nil {
		return nil
	}
	return &Meta{
		Data: maps.Clone(m.Data),
		Lore: slices.Clone(m.Lore),
	}
}

// Item is an equipment value. Items are treated as immutable: updates produce
// a new Item through Clone and are handed back to the holder.
//
// Meta is nil for items that cannot carry persisted metadata (e.g. AIR).
type Item struct {
	Material Material
	Amount   int
	Meta     *Meta
}

// NewItem creates a single item of the given material with empty metadata.
// AIR never carries metadata.
func NewItem(material Material) Item {
	it := Item{Material: material, Amount: 1}
	if material != MaterialAir && material != "" {
		it.Meta = &Meta{Data: map[Key]any{}}
	}
	return it
}

// IsEmpty reports whether the item represents an empty slot
func (i Item) IsEmpty() bool {
	return i.Material == "" || i.Material == MaterialAir
}

// Clone returns a copy of the item that shares no state with the original
func (i Item) Clone() Item {
	i.Meta = i.Meta.Clone()
	return i
}

// Lore returns a copy of the item's description, or nil when it has none
func (i Item) Lore() []string {
	if i.Meta == nil {
		return nil
	}
	return slices.Clone(i.Meta.Lore)
}

func (i Item) String() string {
	return fmt.Sprintf("ItemStack{%s x %d}", i.Material, i.Amount)
}
