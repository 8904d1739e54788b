// Package attribution decides which item instances a combat event credits.
package attribution

import (
	"context"

	"github.com/google/uuid"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/logger"
)

// Classifier tells weapon and armor materials apart
type Classifier interface {
	IsMeleeWeapon(material domain.Material) bool
	IsBow(material domain.Material) bool
	IsArmor(material domain.Material) bool
}

// DeathTracker remembers which deaths already produced a kill obligation
type DeathTracker interface {
	Attributed(id uuid.UUID) bool
	MarkAttributed(id uuid.UUID)
}

// Obligation is one statistic update owed to one item. Amount is the damage
// to accumulate for armor-damage and unused for kill counters, which always
// advance by one.
type Obligation struct {
	Holder domain.Holder
	Kind   domain.StatKind
	Amount float64
}

// Resolver maps combat events to obligations
type Resolver struct {
	classifier Classifier
	deaths     DeathTracker
}

// NewResolver creates a resolver
func NewResolver(classifier Classifier, deaths DeathTracker) *Resolver {
	return &Resolver{classifier: classifier, deaths: deaths}
}

// Resolve returns every obligation the event creates: at most one kill
// obligation for the responsible weapon and one armor-damage obligation per
// armor piece the victim wears. Callers filter cancelled events and
// non-living victims beforehand.
func (r *Resolver) Resolve(ctx context.Context, evt domain.CombatEvent) []Obligation {
	if evt.Cause.Ignored() {
		logger.FromContext(ctx).Debug(LogMsgIgnoredCause, "cause", evt.Cause)
		return nil
	}
	if r.attackerPassive(evt.Attacker) {
		logger.FromContext(ctx).Debug(LogMsgNonInteractive, "role", "attacker")
		return nil
	}

	var out []Obligation
	if kill, ok := r.kill(ctx, evt); ok {
		out = append(out, kill)
	}
	return append(out, r.armor(ctx, evt)...)
}

// ResolveArmor returns only the armor-damage obligations. Events without an
// attacker never credit a weapon, so the generic and block paths use this.
func (r *Resolver) ResolveArmor(ctx context.Context, evt domain.CombatEvent) []Obligation {
	if evt.Cause.Ignored() {
		logger.FromContext(ctx).Debug(LogMsgIgnoredCause, "cause", evt.Cause)
		return nil
	}
	return r.armor(ctx, evt)
}

// kill resolves the weapon credited with a lethal hit
func (r *Resolver) kill(ctx context.Context, evt domain.CombatEvent) (Obligation, bool) {
	if evt.Attacker == nil || !evt.Lethal() {
		return Obligation{}, false
	}

	// Players keep their id across respawns, so only mob deaths are deduplicated
	victimID := evt.Victim.ID()
	_, victimIsPlayer := evt.PlayerVictim()
	if !victimIsPlayer && r.deaths.Attributed(victimID) {
		logger.FromContext(ctx).Debug(LogMsgDeathAlreadyAttributed, "victim", victimID)
		return Obligation{}, false
	}
	kind := domain.KillKind(victimIsPlayer)

	var holder domain.Holder
	switch a := evt.Attacker.(type) {
	case domain.PlayerAttacker:
		holder = r.heldItem(a.Player, r.classifier.IsMeleeWeapon)
	case domain.ThrownWeaponAttacker:
		holder = r.thrownItem(a.Weapon)
	case domain.ProjectileAttacker:
		// the bow currently held is credited, even if the player swapped
		// weapons after shooting
		holder = r.heldItem(a.Shooter, r.classifier.IsBow)
	}
	if holder == nil {
		return Obligation{}, false
	}

	if !victimIsPlayer {
		r.deaths.MarkAttributed(victimID)
	}
	logger.FromContext(ctx).Debug(LogMsgKillAttributed, "victim", victimID, "stat", kind, "holder", holder.String())
	return Obligation{Holder: holder, Kind: kind, Amount: 1}, true
}

// heldItem captures the held slot now so the update lands in the same slot
// even if the player changes selection before it runs
func (r *Resolver) heldItem(p domain.Player, eligible func(domain.Material) bool) domain.Holder {
	if p == nil || !p.Valid() || !p.GameMode().Interactive() {
		return nil
	}
	inv := p.Inventory()
	slot := inv.HeldSlot()
	held, ok := inv.Item(slot)
	if !ok || held.IsEmpty() || !eligible(held.Material) {
		return nil
	}
	return domain.SlotHolder{Player: p, Slot: slot, Expect: held.Material}
}

func (r *Resolver) thrownItem(w domain.ThrownWeapon) domain.Holder {
	if w == nil || !w.Valid() {
		return nil
	}
	embedded := w.Item()
	if embedded.IsEmpty() {
		return nil
	}
	return domain.EntityHolder{Weapon: w, Expect: embedded.Material}
}

// armor resolves one obligation per armor piece a player victim wears
func (r *Resolver) armor(ctx context.Context, evt domain.CombatEvent) []Obligation {
	victim, ok := evt.PlayerVictim()
	if !ok || !victim.Valid() {
		return nil
	}
	if !victim.GameMode().Interactive() {
		logger.FromContext(ctx).Debug(LogMsgNonInteractive, "role", "victim", "player", victim.Name())
		return nil
	}

	var out []Obligation
	for i, piece := range victim.Inventory().Armor() {
		if piece.IsEmpty() || !r.classifier.IsArmor(piece.Material) {
			continue
		}
		out = append(out, Obligation{
			Holder: domain.ArmorHolder{Player: victim, Slot: domain.ArmorSlot(i), Expect: piece.Material},
			Kind:   domain.StatArmorDamage,
			Amount: evt.FinalDamage,
		})
	}
	return out
}

// attackerPassive reports whether the responsible player is in a
// non-interactive game mode. Such players inflict no statistics at all,
// including on the victim's armor.
func (r *Resolver) attackerPassive(a domain.Attacker) bool {
	var p domain.Player
	switch a := a.(type) {
	case domain.PlayerAttacker:
		p = a.Player
	case domain.ThrownWeaponAttacker:
		p = a.Thrower
	case domain.ProjectileAttacker:
		p = a.Shooter
	}
	return p != nil && !p.GameMode().Interactive()
}
