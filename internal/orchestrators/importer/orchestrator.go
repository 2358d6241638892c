// Package importer runs the stat block pipeline: segmentation, header and
// block parsing, effect group assembly and actor building, and hands the
// result to the actor store.
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/importer Service

import (
	"context"
	"log/slog"
	"strings"

	actorbuilder "github.com/KirkDiggler/drawsteel-importer/internal/builders/actor"
	"github.com/KirkDiggler/drawsteel-importer/internal/builders/effectgroups"
	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/ability"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/conditions"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/header"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/malice"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/segment"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/tier"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/clock"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
	actorrepo "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

// DefaultFolder is where imported actors go when no folder is given.
const DefaultFolder = "Imported Monsters"

// Service defines the interface for stat block import operations
type Service interface {
	// ParseMonster runs the pipeline without storing anything.
	// Returns errors.InvalidArgument for empty text
	ParseMonster(ctx context.Context, input *ParseMonsterInput) (*ParseMonsterOutput, error)

	// ImportMonster parses a stat block and stores the resulting actor.
	// Returns errors.InvalidArgument for empty text
	// Returns errors.FailedPrecondition when no header block is found
	ImportMonster(ctx context.Context, input *ImportMonsterInput) (*ImportMonsterOutput, error)

	// ParseMalice parses malice ability text on its own.
	// Returns errors.InvalidArgument for empty text
	ParseMalice(ctx context.Context, input *ParseMaliceInput) (*ParseMaliceOutput, error)

	// GetActor loads a stored actor.
	GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error)

	// ListActors lists the stored actors of a folder.
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)
}

// Config holds the dependencies for the importer orchestrator
type Config struct {
	Dialect    *dialect.Dialect
	Vocabulary *vocab.Tables
	ActorRepo  actorrepo.Repository
	// IDGenerator names effect groups
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Icons defaults to the builder's stock table
	Icons      actorbuilder.IconLookup
	SourceBook string
	Folder     string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dialect == nil {
		vb.RequiredField("Dialect")
	}
	if c.Vocabulary == nil {
		vb.RequiredField("Vocabulary")
	}
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	dialect   *dialect.Dialect
	segmenter *segment.Segmenter
	headers   *header.Extractor
	tiers     *tier.Parser
	abilities *ability.Parser
	malice    *malice.Parser
	groups    *effectgroups.Assembler
	builder   *actorbuilder.Builder
	actorRepo actorrepo.Repository
	folder    string
}

// NewOrchestrator creates a new importer orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	normalizer := conditions.NewNormalizer(cfg.Vocabulary)

	segmenter, err := segment.NewSegmenter(&segment.Config{Dialect: cfg.Dialect, Vocabulary: cfg.Vocabulary})
	if err != nil {
		return nil, err
	}
	headers, err := header.NewExtractor(&header.Config{Vocabulary: cfg.Vocabulary})
	if err != nil {
		return nil, err
	}
	tiers, err := tier.NewParser(&tier.Config{Vocabulary: cfg.Vocabulary, Normalizer: normalizer})
	if err != nil {
		return nil, err
	}
	abilities, err := ability.NewParser(&ability.Config{Dialect: cfg.Dialect, Tiers: tiers, Normalizer: normalizer})
	if err != nil {
		return nil, err
	}
	maliceParser, err := malice.NewParser(&malice.Config{Dialect: cfg.Dialect, Tiers: tiers, Normalizer: normalizer})
	if err != nil {
		return nil, err
	}
	groups, err := effectgroups.NewAssembler(&effectgroups.Config{IDGenerator: cfg.IDGenerator})
	if err != nil {
		return nil, err
	}
	builder, err := actorbuilder.NewBuilder(&actorbuilder.Config{
		Clock:      cfg.Clock,
		Vocabulary: cfg.Vocabulary,
		Icons:      cfg.Icons,
		SourceBook: cfg.SourceBook,
	})
	if err != nil {
		return nil, err
	}

	folder := cfg.Folder
	if folder == "" {
		folder = DefaultFolder
	}

	return &orchestrator{
		dialect:   cfg.Dialect,
		segmenter: segmenter,
		headers:   headers,
		tiers:     tiers,
		abilities: abilities,
		malice:    maliceParser,
		groups:    groups,
		builder:   builder,
		actorRepo: cfg.ActorRepo,
		folder:    folder,
	}, nil
}

// ParseMonster runs the pipeline without storing anything.
func (o *orchestrator) ParseMonster(ctx context.Context, input *ParseMonsterInput) (*ParseMonsterOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, errors.InvalidArgument("stat block text is required")
	}

	out, _ := o.parse(ctx, input.Text, input.MaliceText)
	if out.Header != nil {
		out.Actor = o.build(out, o.folder)
	}
	return out, nil
}

// ImportMonster parses a stat block and stores the resulting actor.
func (o *orchestrator) ImportMonster(ctx context.Context, input *ImportMonsterInput) (*ImportMonsterOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, errors.InvalidArgument("stat block text is required")
	}

	parsed, blocks := o.parse(ctx, input.Text, input.MaliceText)
	if parsed.Header == nil {
		return nil, errors.FailedPrecondition("no monster header found").
			WithMeta("blocks", blocks).
			WithMeta("dialect", o.dialect.Name)
	}

	folder := input.Folder
	if folder == "" {
		folder = o.folder
	}

	saved, err := o.actorRepo.Save(ctx, &actorrepo.SaveInput{Actor: o.build(parsed, folder)})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save actor",
			"name", parsed.Header.Name,
			"folder", folder,
			"error", err.Error())
		return nil, errors.Wrap(err, "failed to save actor")
	}

	slog.InfoContext(ctx, "imported monster",
		"actor_id", saved.Actor.ID,
		"name", saved.Actor.Name,
		"folder", folder,
		"items", len(saved.Actor.Items),
		"notices", len(parsed.Notices))

	return &ImportMonsterOutput{Actor: saved.Actor, Notices: parsed.Notices}, nil
}

// ParseMalice parses malice ability text on its own.
func (o *orchestrator) ParseMalice(ctx context.Context, input *ParseMaliceInput) (*ParseMaliceOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, errors.InvalidArgument("malice text is required")
	}

	result := o.malice.Parse(input.Text)
	for _, a := range result.Abilities {
		o.assemble(a, input.Header)
	}
	logNotices(ctx, result.Notices)

	slog.DebugContext(ctx, "parsed malice",
		"creature", result.Creature,
		"abilities", len(result.Abilities))

	return &ParseMaliceOutput{
		Creature:  result.Creature,
		Abilities: result.Abilities,
		Notices:   result.Notices,
	}, nil
}

// GetActor loads a stored actor.
func (o *orchestrator) GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	out, err := o.actorRepo.Get(ctx, &actorrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ID)
	}
	return &GetActorOutput{Actor: out.Actor}, nil
}

// ListActors lists the stored actors of a folder.
func (o *orchestrator) ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error) {
	folder := o.folder
	if input != nil && input.Folder != "" {
		folder = input.Folder
	}

	out, err := o.actorRepo.ListByFolder(ctx, &actorrepo.ListByFolderInput{Folder: folder})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list actors in %s", folder)
	}
	return &ListActorsOutput{Actors: out.Actors}, nil
}

// parse runs segmentation and every block parser. It also returns the
// number of non-header blocks seen.
func (o *orchestrator) parse(ctx context.Context, text, maliceText string) (*ParseMonsterOutput, int) {
	segs := o.segmenter.Segment(text)
	out := &ParseMonsterOutput{
		Features:  []*drawsteel.Feature{},
		Abilities: []*drawsteel.Ability{},
		Malice:    []*drawsteel.Ability{},
	}

	if segs.HasHeader() {
		h, notices := o.headers.Parse(segs.Header)
		out.Header = h
		out.Notices = append(out.Notices, notices...)
	} else {
		out.Notices = append(out.Notices, drawsteel.Notice{
			Kind:  drawsteel.NoticeMissingHeader,
			Field: "header",
		})
	}

	for _, block := range segs.Blocks {
		switch ability.Classify(block) {
		case ability.BlockAbility:
			if a := o.abilities.Parse(block, out.Header); a != nil {
				o.assemble(a, out.Header)
				out.Abilities = append(out.Abilities, a)
			}
		default:
			if f := o.abilities.ParseFeature(block); f != nil {
				out.Features = append(out.Features, f)
			}
		}
	}

	if strings.TrimSpace(maliceText) != "" {
		result := o.malice.Parse(maliceText)
		for _, a := range result.Abilities {
			o.assemble(a, out.Header)
		}
		out.Malice = result.Abilities
		out.Notices = append(out.Notices, result.Notices...)
	}

	logNotices(ctx, out.Notices)

	name := ""
	if out.Header != nil {
		name = out.Header.Name
	}
	slog.DebugContext(ctx, "parsed stat block",
		"name", name,
		"dialect", o.dialect.Name,
		"blocks", len(segs.Blocks),
		"features", len(out.Features),
		"abilities", len(out.Abilities),
		"malice", len(out.Malice))

	return out, len(segs.Blocks)
}

// assemble fills an ability's effect groups. Every ability gets a damage
// group, empty when it has no power roll.
func (o *orchestrator) assemble(a *drawsteel.Ability, h *drawsteel.Header) {
	a.EffectGroups = o.groups.Assemble(a.Tiers, o.tiers.Potencies(), h.HighestOrDefault())
}

func (o *orchestrator) build(parsed *ParseMonsterOutput, folder string) *drawsteel.Actor {
	abilities := make([]*drawsteel.Ability, 0, len(parsed.Abilities)+len(parsed.Malice))
	abilities = append(abilities, parsed.Abilities...)
	abilities = append(abilities, parsed.Malice...)

	return o.builder.Build(&actorbuilder.BuildInput{
		Header:    parsed.Header,
		Features:  parsed.Features,
		Abilities: abilities,
		Folder:    folder,
	})
}

func logNotices(ctx context.Context, notices []drawsteel.Notice) {
	for _, n := range notices {
		slog.WarnContext(ctx, "stat block notice",
			"kind", n.Kind,
			"field", n.Field,
			"value", n.Value)
	}
}
