// Package v1alpha1 handles the importer grpc service interface
package v1alpha1

import (
	"context"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/powerroll"
)

// HandlerConfig holds dependencies for the importer handler
type HandlerConfig struct {
	ImporterService  importer.Service
	PowerRollService powerroll.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.ImporterService == nil {
		vb.RequiredField("ImporterService")
	}
	if c.PowerRollService == nil {
		vb.RequiredField("PowerRollService")
	}
	return vb.Build()
}

// Handler implements ImporterServiceServer
type Handler struct {
	importer  importer.Service
	powerRoll powerroll.Service
}

var _ ImporterServiceServer = (*Handler)(nil)

// NewHandler creates a new importer handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		importer:  cfg.ImporterService,
		powerRoll: cfg.PowerRollService,
	}, nil
}

// ParseMonster parses a stat block without storing it
func (h *Handler) ParseMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ParseMonsterRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("text is required"))
	}

	out, err := h.importer.ParseMonster(ctx, &importer.ParseMonsterInput{
		Text:       in.Text,
		MaliceText: in.MaliceText,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ParseMonsterResponse{
		Header:    out.Header,
		Features:  out.Features,
		Abilities: out.Abilities,
		Malice:    out.Malice,
		Notices:   notices(out.Notices),
		Actor:     out.Actor,
	})
}

// ImportMonster parses a stat block and stores the actor
func (h *Handler) ImportMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ImportMonsterRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("text is required"))
	}

	out, err := h.importer.ImportMonster(ctx, &importer.ImportMonsterInput{
		Text:       in.Text,
		MaliceText: in.MaliceText,
		Folder:     in.Folder,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ImportMonsterResponse{Actor: out.Actor, Notices: notices(out.Notices)})
}

// ParseMalice parses malice text on its own
func (h *Handler) ParseMalice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ParseMaliceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("text is required"))
	}

	out, err := h.importer.ParseMalice(ctx, &importer.ParseMaliceInput{Text: in.Text})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ParseMaliceResponse{
		Creature:  out.Creature,
		Abilities: out.Abilities,
		Notices:   notices(out.Notices),
	})
}

// GetActor loads a stored actor
func (h *Handler) GetActor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GetActorRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.importer.GetActor(ctx, &importer.GetActorInput{ID: in.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ActorResponse{Actor: out.Actor})
}

// ListActors lists the actors of a folder
func (h *Handler) ListActors(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListActorsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.importer.ListActors(ctx, &importer.ListActorsInput{Folder: in.Folder})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListActorsResponse{Actors: out.Actors})
}

// RollPower makes a power roll for a stored actor
func (h *Handler) RollPower(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RollPowerRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.powerRoll.Roll(ctx, &powerroll.RollInput{
		ActorID: in.ActorID,
		Ability: in.Ability,
		Formula: in.Formula,
		Edges:   in.Edges,
		Banes:   in.Banes,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	effects := out.Effects
	if effects == nil {
		effects = []string{}
	}
	return respond(&RollPowerResponse{
		Roll:      out.Roll,
		Effects:   effects,
		ExpiresAt: out.Log.ExpiresAt.Unix(),
	})
}

// GetRollLog returns an actor's recent power rolls
func (h *Handler) GetRollLog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RollLogRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.powerRoll.GetRollLog(ctx, &powerroll.GetRollLogInput{ActorID: in.ActorID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetRollLogResponse{
		Rolls:     out.Log.Rolls,
		CreatedAt: out.Log.CreatedAt.Unix(),
		ExpiresAt: out.Log.ExpiresAt.Unix(),
	})
}

// ClearRollLog removes an actor's recent power rolls
func (h *Handler) ClearRollLog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RollLogRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.powerRoll.ClearRollLog(ctx, &powerroll.ClearRollLogInput{ActorID: in.ActorID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ClearRollLogResponse{
		Message:      "Roll log cleared successfully",
		RollsCleared: out.RollsDeleted,
	})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func notices(n []drawsteel.Notice) []drawsteel.Notice {
	if n == nil {
		return []drawsteel.Notice{}
	}
	return n
}
