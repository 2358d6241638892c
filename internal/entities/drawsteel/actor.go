package drawsteel

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Item types
const (
	ItemTypeAbility = "ability"
	ItemTypeFeature = "feature"
)

// ActorTypeNPC is the only actor type produced by the importer.
const ActorTypeNPC = "npc"

// Actor is the record handed to the persistence collaborator.
type Actor struct {
	ID         string      `json:"id,omitempty"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Img        string      `json:"img"`
	Folder     string      `json:"folder,omitempty"`
	System     ActorSystem `json:"system"`
	Items      []Item      `json:"items"`
	ImportedAt time.Time   `json:"importedAt"`
}

// GetID returns the storage identity, empty until persisted
func (a *Actor) GetID() string {
	return a.ID
}

// GetType returns the entity type for rpg-toolkit
func (a *Actor) GetType() string {
	return a.Type
}

var _ core.Entity = (*Actor)(nil)

// ActorSystem is the game-system payload of an actor.
type ActorSystem struct {
	Stamina         Stamina                      `json:"stamina"`
	Characteristics map[Characteristic]ValueSlot `json:"characteristics"`
	Combat          Combat                       `json:"combat"`
	Movement        ActorMovement                `json:"movement"`
	Damage          ActorDamage                  `json:"damage"`
	Biography       Biography                    `json:"biography"`
	Source          Source                       `json:"source"`
	Negotiation     Negotiation                  `json:"negotiation"`
	Monster         Monster                      `json:"monster"`
}

// ValueSlot wraps a single numeric value.
type ValueSlot struct {
	Value int `json:"value"`
}

// Stamina is current, max and temporary stamina.
type Stamina struct {
	Value     int `json:"value"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// Combat holds save, size, stability and turns per round.
type Combat struct {
	Save      Save `json:"save"`
	Size      Size `json:"size"`
	Stability int  `json:"stability"`
	Turns     int  `json:"turns"`
}

// Save is the saving throw configuration.
type Save struct {
	Threshold int    `json:"threshold"`
	Bonus     string `json:"bonus"`
}

// Size is the creature size, with a letter only for size 1.
type Size struct {
	Value  int    `json:"value"`
	Letter string `json:"letter,omitempty"`
}

// ActorMovement is speed and movement modes.
type ActorMovement struct {
	Value     int      `json:"value"`
	Types     []string `json:"types"`
	Hover     bool     `json:"hover"`
	Disengage int      `json:"disengage"`
}

// ActorDamage holds immunity and weakness maps.
type ActorDamage struct {
	Immunities DamageMap `json:"immunities"`
	Weaknesses DamageMap `json:"weaknesses"`
}

// Biography is free text about the monster.
type Biography struct {
	Value    string `json:"value"`
	Director string `json:"director"`
}

// Source records where the stat block came from.
type Source struct {
	Book    string `json:"book"`
	Page    string `json:"page"`
	License string `json:"license"`
}

// Negotiation is the negotiation block, unused by monsters.
type Negotiation struct {
	Interest   int      `json:"interest"`
	Patience   int      `json:"patience"`
	Motivation []string `json:"motivations"`
	Pitfalls   []string `json:"pitfalls"`
}

// Monster is the monster-only metadata.
type Monster struct {
	FreeStrike   int      `json:"freeStrike"`
	Keywords     []string `json:"keywords"`
	Level        int      `json:"level"`
	EV           int      `json:"ev"`
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	WithCaptain  string   `json:"withCaptain,omitempty"`
}

// Item is an ability or feature embedded in the actor.
type Item struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Img     string         `json:"img"`
	DSID    string         `json:"_dsid"`
	System  ItemSystem     `json:"system"`
	Effects []StatusEffect `json:"effects"`
}

// ItemSystem is the game-system payload of an item. Ability-only fields are
// omitted for features.
type ItemSystem struct {
	Description   Description `json:"description"`
	Type          string      `json:"type,omitempty"`
	Category      string      `json:"category,omitempty"`
	Keywords      []string    `json:"keywords,omitempty"`
	Distance      *Distance   `json:"distance,omitempty"`
	Target        *Target     `json:"target,omitempty"`
	Trigger       string      `json:"trigger,omitempty"`
	Resource      *int        `json:"resource,omitempty"`
	Spend         *Spend      `json:"spend,omitempty"`
	Power         *Power      `json:"power,omitempty"`
	Effect        *Effect     `json:"effect,omitempty"`
	DamageDisplay string      `json:"damageDisplay,omitempty"`
}

// Description is an HTML description value.
type Description struct {
	Value string `json:"value"`
}

// Power is the power roll of an ability.
type Power struct {
	Roll    PowerRoll              `json:"roll"`
	Effects map[string]EffectGroup `json:"effects"`
}

// PowerRoll is the formula and the characteristics it may use.
type PowerRoll struct {
	Formula         string   `json:"formula"`
	Characteristics []string `json:"characteristics"`
}
