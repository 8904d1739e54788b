package world

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ArmaRealms/ToolStats/internal/domain"
)

// base carries the identity and removal flag every entity shares
type base struct {
	mu    sync.RWMutex
	id    uuid.UUID
	valid bool
}

func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) Valid() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.valid
}

func (b *base) invalidate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valid = false
}

// Player is an in-memory player
type Player struct {
	base
	name     string
	mode     domain.GameMode
	health   float64
	contents *Inventory
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Health returns the player's current health
func (p *Player) Health() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.health
}

// SetHealth changes the player's health
func (p *Player) SetHealth(health float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.health = health
}

// GameMode returns the player's game mode
func (p *Player) GameMode() domain.GameMode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

// SetGameMode changes the player's game mode
func (p *Player) SetGameMode(mode domain.GameMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// Inventory returns the player's inventory
func (p *Player) Inventory() domain.Inventory {
	return p.contents
}

// Contents returns the concrete inventory, for hosts that need to arrange it
func (p *Player) Contents() *Inventory {
	return p.contents
}

// Mob is an in-memory non-player living entity
type Mob struct {
	base
	kind   string
	health float64
}

// Kind returns the mob's type name, e.g. "ZOMBIE"
func (m *Mob) Kind() string {
	return m.kind
}

// Health returns the mob's current health
func (m *Mob) Health() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.health
}

// SetHealth changes the mob's health
func (m *Mob) SetHealth(health float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.health = health
}

// Object is a non-living entity such as an armor stand or item frame
type Object struct {
	base
	kind string
}

// Kind returns the object's type name
func (o *Object) Kind() string {
	return o.kind
}

// ThrownWeapon is an in-memory thrown weapon carrying its own item
type ThrownWeapon struct {
	base
	item    domain.Item
	thrower *Player
}

// Item returns a copy of the embedded item
func (t *ThrownWeapon) Item() domain.Item {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.item.Clone()
}

// SetItem replaces the embedded item
func (t *ThrownWeapon) SetItem(item domain.Item) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.item = item.Clone()
}

// Thrower returns the player who threw the weapon, or nil
func (t *ThrownWeapon) Thrower() *Player {
	return t.thrower
}

var (
	_ domain.Player       = (*Player)(nil)
	_ domain.LivingEntity = (*Mob)(nil)
	_ domain.Entity       = (*Object)(nil)
	_ domain.ThrownWeapon = (*ThrownWeapon)(nil)
	_ domain.Inventory    = (*Inventory)(nil)
)
