package world

import (
	"github.com/ArmaRealms/ToolStats/internal/domain"
)

// Melee builds the event for a player striking victim directly. A nil
// attacker leaves the event's player unset rather than holding a typed nil.
func Melee(attacker *Player, victim domain.Entity, damage float64) domain.CombatEvent {
	striker := domain.PlayerAttacker{}
	if attacker != nil {
		striker.Player = attacker
	}
	return domain.CombatEvent{
		Cause:       domain.CauseEntityAttack,
		FinalDamage: damage,
		Victim:      victim,
		Attacker:    striker,
	}
}

// Throw builds the event for a thrown weapon hitting victim
func Throw(weapon *ThrownWeapon, victim domain.Entity, damage float64) domain.CombatEvent {
	attacker := domain.ThrownWeaponAttacker{Weapon: weapon}
	if weapon.thrower != nil {
		attacker.Thrower = weapon.thrower
	}
	return domain.CombatEvent{
		Cause:       domain.CauseProjectile,
		FinalDamage: damage,
		Victim:      victim,
		Attacker:    attacker,
	}
}

// Shoot builds the event for an arrow hitting victim. shooter may be nil for
// arrows not shot by a player.
func Shoot(shooter *Player, victim domain.Entity, damage float64) domain.CombatEvent {
	attacker := domain.ProjectileAttacker{}
	if shooter != nil {
		attacker.Shooter = shooter
	}
	return domain.CombatEvent{
		Cause:       domain.CauseProjectile,
		FinalDamage: damage,
		Victim:      victim,
		Attacker:    attacker,
	}
}

// Environmental builds a generic damage event with no attacker
func Environmental(victim domain.Entity, cause domain.DamageCause, damage float64) domain.CombatEvent {
	return domain.CombatEvent{
		Cause:       cause,
		FinalDamage: damage,
		Victim:      victim,
	}
}

// BlockDamage builds the event for a block hurting victim
func BlockDamage(victim domain.Entity, block domain.Material, cause domain.DamageCause, damage float64) domain.CombatEvent {
	return domain.CombatEvent{
		Cause:       cause,
		FinalDamage: damage,
		Victim:      victim,
		Block:       block,
	}
}

// ApplyDamage lowers the victim's health the way the host does once every
// handler has seen the event. It returns true when the victim died and was
// removed.
func (w *World) ApplyDamage(evt domain.CombatEvent) bool {
	if evt.Cancelled || evt.Victim == nil {
		return false
	}

	var remaining float64
	switch v := evt.Victim.(type) {
	case *Player:
		remaining = v.Health() - evt.FinalDamage
		v.SetHealth(max(remaining, 0))
	case *Mob:
		remaining = v.Health() - evt.FinalDamage
		v.SetHealth(max(remaining, 0))
	default:
		return false
	}

	if remaining > 0 {
		return false
	}
	return w.Remove(evt.Victim.ID())
}
