package drawsteel

import (
	"fmt"
	"strings"
)

// GroupType is the kind of an assembled effect group.
type GroupType string

// GroupType constants
const (
	GroupDamage  GroupType = "damage"
	GroupApplied GroupType = "applied"
	GroupForced  GroupType = "forced"
	GroupOther   GroupType = "other"
)

// TierKey indexes per-tier sub-records.
type TierKey string

// TierKey constants
const (
	Tier1 TierKey = "tier1"
	Tier2 TierKey = "tier2"
	Tier3 TierKey = "tier3"
)

// TierKeyFor returns the key for a 1-based tier number.
func TierKeyFor(tier int) TierKey {
	return TierKey(fmt.Sprintf("tier%d", tier))
}

// Potency is a value tag plus its governing characteristic.
type Potency struct {
	Value          string         `json:"value"`
	Characteristic Characteristic `json:"characteristic"`
}

// PotencyRef turns a potency tag such as "weak" into the roll data path
// "@potency.weak". Values that are already references pass through.
func PotencyRef(tag string) string {
	if tag == "" || strings.HasPrefix(tag, "@") {
		return tag
	}
	return "@potency." + tag
}

// DamageTier is one tier of a damage group.
type DamageTier struct {
	Value      string   `json:"value"`
	Types      []string `json:"types"`
	Properties []string `json:"properties"`
	Potency    Potency  `json:"potency"`
}

// AppliedEffect is the per-condition payload of an applied tier.
type AppliedEffect struct {
	Condition  string   `json:"condition"`
	End        string   `json:"end"`
	Properties []string `json:"properties"`
}

// AppliedTier is one tier of a condition group.
type AppliedTier struct {
	Display string                   `json:"display"`
	Potency Potency                  `json:"potency"`
	Effects map[string]AppliedEffect `json:"effects"`
}

// ForcedTier is one tier of a forced movement group.
type ForcedTier struct {
	Display    string   `json:"display"`
	Movement   []string `json:"movement"`
	Distance   int      `json:"distance"`
	Properties []string `json:"properties"`
	Potency    Potency  `json:"potency"`
}

// OtherTier is one tier of the narrative-only group.
type OtherTier struct {
	Display string `json:"display"`
}

// EffectGroup is the assembled, tier-indexed effect record.
type EffectGroup struct {
	ID      string                  `json:"_id"`
	Type    GroupType               `json:"type"`
	Name    string                  `json:"name"`
	Damage  map[TierKey]DamageTier  `json:"damage,omitempty"`
	Applied map[TierKey]AppliedTier `json:"applied,omitempty"`
	Forced  map[TierKey]ForcedTier  `json:"forced,omitempty"`
	Other   map[TierKey]OtherTier   `json:"other,omitempty"`
}

// HasTiers reports whether the group carries data for any tier.
func (g EffectGroup) HasTiers() bool {
	return len(g.Damage)+len(g.Applied)+len(g.Forced)+len(g.Other) > 0
}
