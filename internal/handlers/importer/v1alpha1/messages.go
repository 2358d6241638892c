package v1alpha1

import (
	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/repositories/rolllog"
)

// ParseMonsterRequest is the JSON body of ParseMonster
type ParseMonsterRequest struct {
	Text       string `json:"text"`
	MaliceText string `json:"maliceText,omitempty"`
}

// ParseMonsterResponse is the JSON body returned by ParseMonster
type ParseMonsterResponse struct {
	Header    *drawsteel.Header    `json:"header,omitempty"`
	Features  []*drawsteel.Feature `json:"features"`
	Abilities []*drawsteel.Ability `json:"abilities"`
	Malice    []*drawsteel.Ability `json:"malice"`
	Notices   []drawsteel.Notice   `json:"notices"`
	Actor     *drawsteel.Actor     `json:"actor,omitempty"`
}

// ImportMonsterRequest is the JSON body of ImportMonster
type ImportMonsterRequest struct {
	Text       string `json:"text"`
	MaliceText string `json:"maliceText,omitempty"`
	Folder     string `json:"folder,omitempty"`
}

// ImportMonsterResponse is the JSON body returned by ImportMonster
type ImportMonsterResponse struct {
	Actor   *drawsteel.Actor   `json:"actor"`
	Notices []drawsteel.Notice `json:"notices"`
}

// ParseMaliceRequest is the JSON body of ParseMalice
type ParseMaliceRequest struct {
	Text string `json:"text"`
}

// ParseMaliceResponse is the JSON body returned by ParseMalice
type ParseMaliceResponse struct {
	Creature  string               `json:"creature,omitempty"`
	Abilities []*drawsteel.Ability `json:"abilities"`
	Notices   []drawsteel.Notice   `json:"notices"`
}

// GetActorRequest is the JSON body of GetActor
type GetActorRequest struct {
	ID string `json:"id"`
}

// ActorResponse carries one actor
type ActorResponse struct {
	Actor *drawsteel.Actor `json:"actor"`
}

// ListActorsRequest is the JSON body of ListActors
type ListActorsRequest struct {
	Folder string `json:"folder,omitempty"`
}

// ListActorsResponse is the JSON body returned by ListActors
type ListActorsResponse struct {
	Actors []*drawsteel.Actor `json:"actors"`
}

// RollPowerRequest is the JSON body of RollPower
type RollPowerRequest struct {
	ActorID string `json:"actorId"`
	Ability string `json:"ability,omitempty"`
	Formula string `json:"formula,omitempty"`
	Edges   int    `json:"edges,omitempty"`
	Banes   int    `json:"banes,omitempty"`
}

// RollPowerResponse is the JSON body returned by RollPower
type RollPowerResponse struct {
	Roll      *rolllog.Roll `json:"roll"`
	Effects   []string      `json:"effects"`
	ExpiresAt int64         `json:"expiresAt"`
}

// RollLogRequest is the JSON body of GetRollLog and ClearRollLog
type RollLogRequest struct {
	ActorID string `json:"actorId"`
}

// GetRollLogResponse is the JSON body returned by GetRollLog
type GetRollLogResponse struct {
	Rolls     []rolllog.Roll `json:"rolls"`
	CreatedAt int64          `json:"createdAt"`
	ExpiresAt int64          `json:"expiresAt"`
}

// ClearRollLogResponse is the JSON body returned by ClearRollLog
type ClearRollLogResponse struct {
	Message      string `json:"message"`
	RollsCleared int    `json:"rollsCleared"`
}
