// Package scenario replays scripted combat against an in-memory world and
// reports the statistics each item ends up with.
package scenario

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/event"
	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/stats"
	"github.com/ArmaRealms/ToolStats/internal/world"
)

// Ticker runs the work queued for the next host tick
type Ticker interface {
	Tick(ctx context.Context) int
}

// Engine executes scenarios. Hits are published on the bus the tracker
// listens on; tick steps drive the tracker's scheduler.
type Engine struct {
	bus    event.Bus
	ticker Ticker
	codec  *stats.Codec
}

// NewEngine creates a new scenario execution engine
func NewEngine(bus event.Bus, ticker Ticker, codec *stats.Codec) *Engine {
	return &Engine{
		bus:    bus,
		ticker: ticker,
		codec:  codec,
	}
}

// Execute runs a scenario in a fresh world. Steps stop at the first failure;
// one more tick always runs afterwards so queued updates land before the
// assertions and the report are taken.
func (e *Engine) Execute(ctx context.Context, sc Scenario) (*ExecutionResult, error) {
	log := logger.FromContext(ctx)
	result := NewExecutionResult(sc.Name)
	log.Info(LogMsgScenarioStarted, "scenario", sc.Name, "steps", len(sc.Steps))

	state := newWorldState()
	if err := state.populate(sc, e.codec); err != nil {
		result.SetError(err)
		return result.finish(), err
	}

	for i, step := range sc.Steps {
		select {
		case <-ctx.Done():
			result.SetError(ctx.Err())
			return result.finish(), ctx.Err()
		default:
		}

		stepResult := e.executeStep(ctx, step, i, state)
		result.addStep(stepResult)

		if !stepResult.Success {
			log.Warn(LogMsgStepFailed, "step", i, "action", stepResult.Action, "error", stepResult.Error)
			break
		}
	}

	e.ticker.Tick(ctx)
	state.ticks++
	result.Ticks = state.ticks

	for _, a := range sc.Expect {
		ar := e.checkAssertion(ctx, a, state)
		if !ar.Passed {
			log.Warn(LogMsgAssertionFailed, "target", ar.Target, "stat", ar.Stat, "error", ar.Error)
		}
		result.addAssertion(ar)
	}

	result.Report = e.report(ctx, state)
	result.finish()
	log.Info(LogMsgScenarioCompleted, "scenario", sc.Name, "success", result.Success, "ticks", result.Ticks)

	return result, nil
}

// executeStep executes a single step
func (e *Engine) executeStep(ctx context.Context, step Step, index int, state *worldState) *StepResult {
	stepResult := newStepResult(index, step.Action())

	var err error
	switch step.Action() {
	case ActionHit:
		err = e.hit(ctx, *step.Hit, state, stepResult)
	case ActionTick:
		executed := 0
		for range step.Tick {
			executed += e.ticker.Tick(ctx)
			state.ticks++
		}
		stepResult.AddOutput("executed", executed)
	case ActionSelect:
		err = selectSlot(*step.Select, state)
	case ActionSetItem:
		err = e.setItem(*step.SetItem, state)
	case ActionGameMode:
		err = setGameMode(*step.GameMode, state)
	case ActionRemove:
		err = remove(step.Remove, state, stepResult)
	default:
		err = ErrInvalidAction
	}

	if err != nil {
		stepResult.fail(NewStepError(step, index, err))
	}
	return stepResult
}

// hit publishes one combat event, then applies its damage the way the host
// does once every listener has seen it
func (e *Engine) hit(ctx context.Context, h HitStep, state *worldState, out *StepResult) error {
	victim, ok := state.entities[h.Victim]
	if !ok {
		return unknownEntity(h.Victim)
	}

	evt, combat, err := combatEvent(h, victim, state)
	if err != nil {
		return err
	}

	if err := e.bus.Publish(ctx, evt); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	out.AddOutput("cause", string(combat.Cause))
	out.AddOutput("died", state.world.ApplyDamage(combat))
	return nil
}

// combatEvent builds the host event for a hit step
func combatEvent(h HitStep, victim domain.Entity, state *worldState) (event.Event, domain.CombatEvent, error) {
	var (
		combat domain.CombatEvent
		build  func(domain.CombatEvent) event.Event
	)

	switch h.Shape {
	case ShapeByEntity:
		if h.Attacker == nil {
			return event.Event{}, combat, NewParameterError("attacker", ErrMsgAttackerRequired)
		}
		var err error
		if combat, err = attack(*h.Attacker, victim, h.Damage, state); err != nil {
			return event.Event{}, combat, err
		}
		if h.Cause != "" {
			combat.Cause = domain.DamageCause(h.Cause)
		}
		build = event.NewEntityDamageByEntityEvent

	case ShapeGeneric:
		if h.Attacker != nil {
			return event.Event{}, combat, NewParameterError("attacker", fmt.Sprintf(ErrMsgAttackerNotAllowed, h.Shape))
		}
		combat = world.Environmental(victim, causeOr(h.Cause, DefaultGenericCause), h.Damage)
		build = event.NewEntityDamageEvent

	case ShapeByBlock:
		if h.Attacker != nil {
			return event.Event{}, combat, NewParameterError("attacker", fmt.Sprintf(ErrMsgAttackerNotAllowed, h.Shape))
		}
		combat = world.BlockDamage(victim, domain.Material(h.Block), causeOr(h.Cause, DefaultBlockCause), h.Damage)
		build = event.NewEntityDamageByBlockEvent

	default:
		return event.Event{}, combat, NewParameterError("shape", fmt.Sprintf(ErrMsgUnknownShape, h.Shape))
	}

	combat.Cancelled = h.Cancelled
	return build(combat), combat, nil
}

func attack(a AttackerSpec, victim domain.Entity, damage float64, state *worldState) (domain.CombatEvent, error) {
	switch {
	case a.Player != "":
		p, err := state.player(a.Player)
		if err != nil {
			return domain.CombatEvent{}, err
		}
		return world.Melee(p, victim, damage), nil

	case a.Thrown != "":
		tw, ok := state.thrown[a.Thrown]
		if !ok {
			return domain.CombatEvent{}, unknownEntity(a.Thrown)
		}
		return world.Throw(tw, victim, damage), nil

	case a.Shooter != nil:
		var shooter *world.Player
		if *a.Shooter != "" {
			p, err := state.player(*a.Shooter)
			if err != nil {
				return domain.CombatEvent{}, err
			}
			shooter = p
		}
		return world.Shoot(shooter, victim, damage), nil
	}
	return domain.CombatEvent{}, NewParameterError("attacker", ErrMsgAttackerEmpty)
}

func causeOr(cause string, fallback domain.DamageCause) domain.DamageCause {
	if cause == "" {
		return fallback
	}
	return domain.DamageCause(cause)
}

func selectSlot(s SelectStep, state *worldState) error {
	p, err := state.player(s.Player)
	if err != nil {
		return err
	}
	if !p.Contents().SetHeldSlot(s.Slot) {
		return NewParameterError("slot", fmt.Sprintf(ErrMsgSlotOutOfRange, s.Slot))
	}
	return nil
}

func (e *Engine) setItem(s SetItemStep, state *worldState) error {
	p, err := state.player(s.Player)
	if err != nil {
		return err
	}
	it, err := buildItem(s.Item, e.codec)
	if err != nil {
		return err
	}
	if !p.Contents().SetItem(s.Slot, it) {
		return NewParameterError("slot", fmt.Sprintf(ErrMsgSlotOutOfRange, s.Slot))
	}
	return nil
}

func setGameMode(s GameModeStep, state *worldState) error {
	p, err := state.player(s.Player)
	if err != nil {
		return err
	}
	mode, err := parseGameMode(s.Mode)
	if err != nil {
		return err
	}
	p.SetGameMode(mode)
	return nil
}

func remove(name string, state *worldState, out *StepResult) error {
	ent, ok := state.entities[name]
	if !ok {
		return unknownEntity(name)
	}
	out.AddOutput("removed", state.world.Remove(ent.ID()))
	return nil
}

// checkAssertion compares an item's final statistic and description with
// the expectation
func (e *Engine) checkAssertion(ctx context.Context, a Assertion, state *worldState) AssertionResult {
	result := AssertionResult{
		Target: a.Target(),
		Stat:   a.Stat,
		Reason: a.Reason,
		Passed: true,
	}

	fail := func(msg string) AssertionResult {
		result.Passed = false
		result.Error = msg
		return result
	}

	kind := domain.StatKind(a.Stat)
	if !kind.Valid() {
		return fail(fmt.Sprintf(ErrMsgUnknownStat, a.Stat))
	}

	it, err := state.lookup(a)
	if err != nil {
		return fail(err.Error())
	}

	var problems []string
	if a.Equals != nil {
		value, err := e.statValue(ctx, it, kind)
		if err != nil {
			return fail(err.Error())
		}
		result.Expected = *a.Equals
		result.Actual = value
		if math.Abs(value-*a.Equals) > floatTolerance {
			problems = append(problems, fmt.Sprintf(ErrMsgExpectedValue, *a.Equals, value))
		}
	}

	if a.Lore != nil {
		lore := it.Lore()
		if a.Equals == nil {
			result.Expected = a.Lore
			result.Actual = lore
		}
		if !slices.Equal(lore, a.Lore) {
			problems = append(problems, fmt.Sprintf(ErrMsgExpectedLore, a.Lore, lore))
		}
	}

	if len(problems) > 0 {
		return fail(strings.Join(problems, "; "))
	}
	return result
}

func (e *Engine) statValue(ctx context.Context, it domain.Item, kind domain.StatKind) (float64, error) {
	if kind.Integral() {
		n, err := e.codec.Int(ctx, it, kind)
		return float64(n), err
	}
	return e.codec.Float(ctx, it, kind)
}

// report captures every non-empty item the scenario's players and thrown
// weapons hold
func (e *Engine) report(ctx context.Context, state *worldState) *Report {
	r := &Report{Players: make([]PlayerReport, 0, len(state.playerOrder))}

	for _, name := range state.playerOrder {
		p := state.players[name]
		inv := p.Contents()
		pr := PlayerReport{Name: name, Removed: !p.Valid()}

		for slot := range world.InventorySize {
			it, _ := inv.Item(slot)
			if it.IsEmpty() {
				continue
			}
			pr.Inventory = append(pr.Inventory, e.itemReport(ctx, fmt.Sprintf("slot/%d", slot), it))
		}
		for slot, it := range inv.Armor() {
			if it.IsEmpty() {
				continue
			}
			pr.Armor = append(pr.Armor, e.itemReport(ctx, "armor/"+domain.ArmorSlot(slot).String(), it))
		}
		r.Players = append(r.Players, pr)
	}

	for _, id := range state.thrownOrder {
		r.Thrown = append(r.Thrown, e.itemReport(ctx, "thrown/"+id, state.thrown[id].Item()))
	}
	return r
}

func (e *Engine) itemReport(ctx context.Context, holder string, it domain.Item) ItemReport {
	rep := ItemReport{
		Holder:   holder,
		Material: string(it.Material),
		Lore:     it.Lore(),
	}
	if it.Meta == nil {
		return rep
	}
	for _, kind := range domain.StatKinds {
		if _, ok := it.Meta.Data[kind.Key()]; !ok {
			continue
		}
		value, err := e.statValue(ctx, it, kind)
		if err != nil {
			continue
		}
		if rep.Stats == nil {
			rep.Stats = make(map[string]float64, len(domain.StatKinds))
		}
		rep.Stats[string(kind)] = value
	}
	return rep
}
