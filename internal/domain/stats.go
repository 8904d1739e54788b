package domain

// StatKind names a counter tracked per item
type StatKind string

const (
	StatPlayerKills StatKind = "player-kills"
	StatMobKills    StatKind = "mob-kills"
	StatArmorDamage StatKind = "armor-damage"
)

// MetadataNamespace prefixes every metadata key written by the tracker
const MetadataNamespace = "toolstats"

// Placeholders substituted into description templates
const (
	PlaceholderKills  = "{kills}"
	PlaceholderDamage = "{damage}"
)

// StatKinds lists every tracked statistic
var StatKinds = []StatKind{StatPlayerKills, StatMobKills, StatArmorDamage}

// Valid reports whether k is a known statistic
func (k StatKind) Valid() bool {
	switch k {
	case StatPlayerKills, StatMobKills, StatArmorDamage:
		return true
	}
	return false
}

// Integral reports whether the statistic is stored as an integer counter.
// Armor damage is a fractional accumulator.
func (k StatKind) Integral() bool {
	return k != StatArmorDamage
}

// Key returns the metadata key the statistic is persisted under
func (k StatKind) Key() Key {
	return Key{Namespace: MetadataNamespace, Name: string(k)}
}

// Placeholder returns the template token replaced by the formatted value
func (k StatKind) Placeholder() string {
	if k == StatArmorDamage {
		return PlaceholderDamage
	}
	return PlaceholderKills
}

// KillKind picks the kill statistic credited for a victim
func KillKind(victimIsPlayer bool) StatKind {
	if victimIsPlayer {
		return StatPlayerKills
	}
	return StatMobKills
}

// StatUpdate describes one applied statistic change
type StatUpdate struct {
	Holder   string   `json:"holder"`
	Material Material `json:"material"`
	Stat     StatKind `json:"stat"`
	Value    float64  `json:"value"`
}
