package domain

// DamageCause is the host's reason for a damage event
type DamageCause string

const (
	CauseEntityAttack      DamageCause = "ENTITY_ATTACK"
	CauseEntitySweepAttack DamageCause = "ENTITY_SWEEP_ATTACK"
	CauseProjectile        DamageCause = "PROJECTILE"
	CauseFall              DamageCause = "FALL"
	CauseFire              DamageCause = "FIRE"
	CauseFireTick          DamageCause = "FIRE_TICK"
	CauseLava              DamageCause = "LAVA"
	CauseDrowning          DamageCause = "DROWNING"
	CauseBlockExplosion    DamageCause = "BLOCK_EXPLOSION"
	CauseEntityExplosion   DamageCause = "ENTITY_EXPLOSION"
	CauseContact           DamageCause = "CONTACT"
	CauseMagic             DamageCause = "MAGIC"
	CausePoison            DamageCause = "POISON"
	CauseWither            DamageCause = "WITHER"
	CauseThorns            DamageCause = "THORNS"
	CauseLightning         DamageCause = "LIGHTNING"
	CauseFallingBlock      DamageCause = "FALLING_BLOCK"
	CauseStarvation        DamageCause = "STARVATION"
	CauseSuffocation       DamageCause = "SUFFOCATION"
	CauseHotFloor          DamageCause = "HOT_FLOOR"
	CauseVoid              DamageCause = "VOID"
	CauseSuicide           DamageCause = "SUICIDE"
	CauseKill              DamageCause = "KILL"
	CauseCustom            DamageCause = "CUSTOM"
)

// Ignored reports whether the cause is excluded from all attribution:
// self-inflicted/administrative kills, the void, and plugin-issued custom damage.
func (c DamageCause) Ignored() bool {
	switch c {
	case CauseSuicide, CauseKill, CauseVoid, CauseCustom:
		return true
	}
	return false
}

// Attacker is the responsible actor of an entity-vs-entity hit. It is one of
// PlayerAttacker, ThrownWeaponAttacker or ProjectileAttacker.
type Attacker interface {
	attacker()
}

// PlayerAttacker is a player striking directly
type PlayerAttacker struct {
	Player Player
}

// ThrownWeaponAttacker is a thrown weapon entity carrying its own item.
// Thrower is nil when the thrower is not a player or is unknown.
type ThrownWeaponAttacker struct {
	Weapon  ThrownWeapon
	Thrower Player
}

// ProjectileAttacker is an arrow-like projectile. Shooter is nil when the
// projectile was not shot by a player.
type ProjectileAttacker struct {
	Shooter Player
}

func (PlayerAttacker) attacker()       {}
func (ThrownWeaponAttacker) attacker() {}
func (ProjectileAttacker) attacker()   {}

// CombatEvent describes a single damage occurrence as delivered by the host
type CombatEvent struct {
	Cause       DamageCause
	FinalDamage float64
	// Victim may be a non-living entity, which the tracker ignores
	Victim Entity
	// Attacker is nil for environmental and block-inflicted damage
	Attacker Attacker
	// Block is the damaging block for block-inflicted damage, if known
	Block     Material
	Cancelled bool
}

// LivingVictim returns the victim as a living entity
func (e CombatEvent) LivingVictim() (LivingEntity, bool) {
	if e.Victim == nil {
		return nil, false
	}
	living, ok := e.Victim.(LivingEntity)
	return living, ok
}

// Lethal reports whether this hit brings the victim to zero health or below
func (e CombatEvent) Lethal() bool {
	living, ok := e.LivingVictim()
	if !ok {
		return false
	}
	return living.Health()-e.FinalDamage <= 0
}

// PlayerVictim returns the victim as a player
func (e CombatEvent) PlayerVictim() (Player, bool) {
	if e.Victim == nil {
		return nil, false
	}
	p, ok := e.Victim.(Player)
	return p, ok
}
