package scenario

import (
	"fmt"
	"slices"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/stats"
	"github.com/ArmaRealms/ToolStats/internal/world"
)

// worldState is the world a scenario runs against, with its entities indexed
// by the names the document uses
type worldState struct {
	world    *world.World
	entities map[string]domain.Entity
	players  map[string]*world.Player
	thrown   map[string]*world.ThrownWeapon

	playerOrder []string
	thrownOrder []string
	ticks       int
}

func newWorldState() *worldState {
	return &worldState{
		world:    world.New(),
		entities: make(map[string]domain.Entity),
		players:  make(map[string]*world.Player),
		thrown:   make(map[string]*world.ThrownWeapon),
	}
}

func (s *worldState) claim(name string) error {
	if _, ok := s.entities[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, name)
	}
	return nil
}

func (s *worldState) player(name string) (*world.Player, error) {
	p, ok := s.players[name]
	if !ok {
		return nil, unknownEntity(name)
	}
	return p, nil
}

// populate spawns everything the scenario declares
func (s *worldState) populate(sc Scenario, codec *stats.Codec) error {
	for _, ps := range sc.Players {
		if err := s.claim(ps.Name); err != nil {
			return err
		}
		mode, err := parseGameMode(ps.GameMode)
		if err != nil {
			return err
		}

		p := s.world.SpawnPlayer(ps.Name, mode)
		if ps.Health > 0 {
			p.SetHealth(ps.Health)
		}
		inv := p.Contents()
		if !inv.SetHeldSlot(ps.HeldSlot) {
			return NewParameterError("held-slot", fmt.Sprintf(ErrMsgSlotOutOfRange, ps.HeldSlot))
		}
		for _, slot := range ps.Inventory {
			it, err := buildItem(slot.Item, codec)
			if err != nil {
				return err
			}
			if !inv.SetItem(slot.Slot, it) {
				return NewParameterError("slot", fmt.Sprintf(ErrMsgSlotOutOfRange, slot.Slot))
			}
		}
		for slot, spec := range ps.Armor.pieces() {
			if spec == nil {
				continue
			}
			it, err := buildItem(*spec, codec)
			if err != nil {
				return err
			}
			inv.SetArmor(domain.ArmorSlot(slot), it)
		}

		s.entities[ps.Name] = p
		s.players[ps.Name] = p
		s.playerOrder = append(s.playerOrder, ps.Name)
	}

	for _, ms := range sc.Mobs {
		if err := s.claim(ms.ID); err != nil {
			return err
		}
		health := ms.Health
		if health <= 0 {
			health = world.DefaultMobHealth
		}
		s.entities[ms.ID] = s.world.SpawnMob(ms.Kind, health)
	}

	for _, obj := range sc.Objects {
		if err := s.claim(obj.ID); err != nil {
			return err
		}
		s.entities[obj.ID] = s.world.SpawnObject(obj.Kind)
	}

	for _, ts := range sc.Thrown {
		if err := s.claim(ts.ID); err != nil {
			return err
		}
		var thrower *world.Player
		if ts.Thrower != "" {
			p, err := s.player(ts.Thrower)
			if err != nil {
				return err
			}
			thrower = p
		}
		it, err := buildItem(ts.Item, codec)
		if err != nil {
			return err
		}
		tw := s.world.SpawnThrownWeapon(it, thrower)
		s.entities[ts.ID] = tw
		s.thrown[ts.ID] = tw
		s.thrownOrder = append(s.thrownOrder, ts.ID)
	}

	return nil
}

// lookup returns the item an assertion addresses
func (s *worldState) lookup(a Assertion) (domain.Item, error) {
	if a.Thrown != "" {
		tw, ok := s.thrown[a.Thrown]
		if !ok {
			return domain.Item{}, unknownEntity(a.Thrown)
		}
		return tw.Item(), nil
	}

	p, err := s.player(a.Player)
	if err != nil {
		return domain.Item{}, err
	}
	inv := p.Contents()

	switch {
	case a.Armor != "":
		slot, err := parseArmorSlot(a.Armor)
		if err != nil {
			return domain.Item{}, err
		}
		return inv.Armor()[slot], nil
	case a.Slot != nil:
		it, ok := inv.Item(*a.Slot)
		if !ok {
			return domain.Item{}, NewParameterError("slot", fmt.Sprintf(ErrMsgSlotOutOfRange, *a.Slot))
		}
		return it, nil
	}
	return domain.Item{}, NewParameterError("expect", ErrMsgAssertionNoTarget)
}

func (a ArmorSpec) pieces() [domain.ArmorSlotCount]*ItemSpec {
	return [domain.ArmorSlotCount]*ItemSpec{
		domain.ArmorBoots:      a.Boots,
		domain.ArmorLeggings:   a.Leggings,
		domain.ArmorChestplate: a.Chestplate,
		domain.ArmorHelmet:     a.Helmet,
	}
}

func (s StatsSpec) empty() bool {
	return s.PlayerKills == nil && s.MobKills == nil && s.ArmorDamage == nil
}

// buildItem turns a spec into an item, seeding its counters through the codec
func buildItem(spec ItemSpec, codec *stats.Codec) (domain.Item, error) {
	it := domain.NewItem(domain.Material(spec.Material))
	if spec.NoMeta {
		it.Meta = nil
	}
	if it.Meta == nil {
		if spec.Lore != nil || !spec.Stats.empty() {
			return it, NewParameterError("no-meta", ErrMsgNoMetaWithData)
		}
		return it, nil
	}

	if spec.Lore != nil {
		it.Meta.Lore = slices.Clone(spec.Lore)
	}

	var err error
	if spec.Stats.PlayerKills != nil {
		if it, err = codec.SetInt(it, domain.StatPlayerKills, *spec.Stats.PlayerKills); err != nil {
			return it, err
		}
	}
	if spec.Stats.MobKills != nil {
		if it, err = codec.SetInt(it, domain.StatMobKills, *spec.Stats.MobKills); err != nil {
			return it, err
		}
	}
	if spec.Stats.ArmorDamage != nil {
		if it, err = codec.SetFloat(it, domain.StatArmorDamage, *spec.Stats.ArmorDamage); err != nil {
			return it, err
		}
	}
	return it, nil
}

func parseGameMode(s string) (domain.GameMode, error) {
	switch mode := domain.GameMode(s); mode {
	case "":
		return domain.GameModeSurvival, nil
	case domain.GameModeSurvival, domain.GameModeAdventure, domain.GameModeCreative, domain.GameModeSpectator:
		return mode, nil
	}
	return "", NewParameterError("game-mode", fmt.Sprintf(ErrMsgUnknownGameMode, s))
}

func parseArmorSlot(s string) (domain.ArmorSlot, error) {
	for slot := domain.ArmorBoots; slot <= domain.ArmorHelmet; slot++ {
		if slot.String() == s {
			return slot, nil
		}
	}
	return 0, NewParameterError("armor", fmt.Sprintf(ErrMsgUnknownArmorSlot, s))
}
