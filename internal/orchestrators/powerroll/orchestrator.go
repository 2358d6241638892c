// Package powerroll rolls the power rolls of imported actors and keeps a
// short log of the results
package powerroll

//go:generate mockgen -destination=mock/mock_service.go -package=powerrollmock github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/powerroll Service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	actorbuilder "github.com/KirkDiggler/drawsteel-importer/internal/builders/actor"
	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/clock"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
	actorrepo "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor"
	"github.com/KirkDiggler/drawsteel-importer/internal/repositories/rolllog"
)

// BareFormula is rolled when neither an ability nor a formula is given.
const BareFormula = "2d10"

// Service defines the interface for power roll operations
type Service interface {
	// Roll makes a power roll for an actor, optionally for one of its abilities.
	// Returns errors.NotFound when the actor or ability does not exist
	// Returns errors.FailedPrecondition when the ability has no power roll
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)
}

// Config holds the dependencies for the power roll orchestrator
type Config struct {
	ActorRepo   actorrepo.Repository
	RollLogRepo rolllog.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Roller defaults to ToolkitRoller
	Roller Roller
	// LogTTL defaults to rolllog.DefaultTTL
	LogTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.LogTTL < 0 {
		vb.Field("LogTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo   actorrepo.Repository
	rollLogRepo rolllog.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	roller      Roller
	ttl         time.Duration
}

// NewOrchestrator creates a new power roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		actorRepo:   cfg.ActorRepo,
		rollLogRepo: cfg.RollLogRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		roller:      cfg.Roller,
		ttl:         cfg.LogTTL,
	}
	if o.roller == nil {
		o.roller = ToolkitRoller{}
	}
	if o.ttl == 0 {
		o.ttl = rolllog.DefaultTTL
	}
	return o, nil
}

// Roll makes a power roll and appends it to the actor's log
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	if input.Edges < 0 || input.Banes < 0 {
		return nil, errors.InvalidArgument("edges and banes cannot be negative")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	formula := input.Formula
	var item *drawsteel.Item
	if input.Ability != "" {
		item = findAbility(actor, input.Ability)
		if item == nil {
			return nil, errors.NotFoundf("ability %q not found", input.Ability).
				WithMeta("actor_id", input.ActorID)
		}
		if !hasPowerRoll(item) {
			return nil, errors.FailedPreconditionf("ability %q has no power roll", item.Name)
		}
		formula = item.System.Power.Roll.Formula
	}
	if formula == "" || drawsteel.IsRollDataFormula(formula) {
		formula = BareFormula
	}

	bonus, hasBonus, ok := FormulaBonus(formula)
	if !ok {
		return nil, errors.InvalidArgumentf("invalid power roll formula: %s", formula)
	}
	if !hasBonus && item != nil {
		bonus = characteristicBonus(actor, item.System.Power.Roll.Characteristics)
	}

	dice, err := o.roller.Roll2d10()
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	net := NetEdges(input.Edges, input.Banes)
	applied, total, tier := Resolve(dice, bonus, net)

	roll := rolllog.Roll{
		ID:       o.idGen.Generate(),
		Formula:  formula,
		Dice:     dice,
		Bonus:    applied,
		Total:    total,
		Tier:     tier,
		Net:      net,
		RolledAt: o.clock.Now().UTC(),
	}
	var effects []string
	if item != nil {
		roll.Ability = item.Name
		effects = tierEffects(item.System.Power.Effects, tier)
	}

	appended, err := o.rollLogRepo.Append(ctx, &rolllog.AppendInput{
		Owner: actor,
		Roll:  roll,
		TTL:   o.ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log roll")
	}

	slog.InfoContext(ctx, "power roll",
		"actor_id", input.ActorID,
		"ability", roll.Ability,
		"dice", dice,
		"total", total,
		"tier", tier,
		"roll_id", roll.ID)

	return &RollOutput{Roll: &roll, Effects: effects, Log: appended.Log}, nil
}

// GetRollLog retrieves an actor's recent rolls
func (o *orchestrator) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	out, err := o.rollLogRepo.Get(ctx, &rolllog.GetInput{Owner: actor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get roll log")
	}
	return &GetRollLogOutput{Log: out.Log}, nil
}

// ClearRollLog removes an actor's recent rolls
func (o *orchestrator) ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	out, err := o.rollLogRepo.Delete(ctx, &rolllog.DeleteInput{Owner: actor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete roll log")
	}

	slog.InfoContext(ctx, "roll log cleared",
		"actor_id", input.ActorID,
		"rolls_deleted", out.RollsDeleted)

	return &ClearRollLogOutput{RollsDeleted: out.RollsDeleted}, nil
}

func (o *orchestrator) loadActor(ctx context.Context, id string) (*drawsteel.Actor, error) {
	got, err := o.actorRepo.Get(ctx, &actorrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", id)
	}
	return got.Actor, nil
}

// hasPowerRoll reports whether any of the item's effect groups has tier data.
// Abilities without a power roll still carry an empty damage group.
func hasPowerRoll(item *drawsteel.Item) bool {
	if item.System.Power == nil {
		return false
	}
	for _, g := range item.System.Power.Effects {
		if g.HasTiers() {
			return true
		}
	}
	return false
}

// findAbility matches an ability item by dsid or case-insensitive name.
func findAbility(actor *drawsteel.Actor, ref string) *drawsteel.Item {
	dsid := actorbuilder.DSID(ref)
	for i := range actor.Items {
		item := &actor.Items[i]
		if item.Type != drawsteel.ItemTypeAbility {
			continue
		}
		if item.DSID == dsid || strings.EqualFold(item.Name, strings.TrimSpace(ref)) {
			return item
		}
	}
	return nil
}

// characteristicBonus is the best of the listed characteristics.
func characteristicBonus(actor *drawsteel.Actor, names []string) int {
	best, found := 0, false
	for _, name := range names {
		slot, ok := actor.System.Characteristics[drawsteel.Characteristic(name)]
		if !ok {
			continue
		}
		if !found || slot.Value > best {
			best, found = slot.Value, true
		}
	}
	return best
}

// tierEffects lists what each effect group does at tier, in group ID order.
func tierEffects(groups map[string]drawsteel.EffectGroup, tier int) []string {
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	key := drawsteel.TierKeyFor(tier)
	effects := []string{}
	for _, id := range ids {
		g := groups[id]
		var display string
		switch g.Type {
		case drawsteel.GroupDamage:
			if d, ok := g.Damage[key]; ok && d.Value != "" {
				display = damageDisplay(d)
			}
		case drawsteel.GroupApplied:
			display = g.Applied[key].Display
		case drawsteel.GroupForced:
			display = g.Forced[key].Display
		case drawsteel.GroupOther:
			display = g.Other[key].Display
		}
		if display != "" {
			effects = append(effects, display)
		}
	}
	return effects
}

func damageDisplay(d drawsteel.DamageTier) string {
	if len(d.Types) == 0 {
		return fmt.Sprintf("%s damage", d.Value)
	}
	return fmt.Sprintf("%s %s damage", d.Value, strings.Join(d.Types, " or "))
}
