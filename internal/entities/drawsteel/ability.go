package drawsteel

import "strings"

// FormulaCharacteristic is the roll formula of an ability whose name line
// carries no dice: 2d10 plus the roll characteristic.
const FormulaCharacteristic = "@chr"

// IsRollDataFormula reports whether formula is a roll data reference such as
// "@chr" rather than dice notation.
func IsRollDataFormula(formula string) bool {
	return strings.HasPrefix(strings.TrimSpace(formula), "@")
}

// Distance is a parsed distance phrase. Unused parameters are nil.
type Distance struct {
	Type      DistanceType `json:"type"`
	Primary   *int         `json:"primary"`
	Secondary *int         `json:"secondary"`
	Tertiary  *int         `json:"tertiary"`
}

// Target is a parsed target phrase. A nil Value means unbounded.
type Target struct {
	Type  TargetType `json:"type"`
	Value *int       `json:"value"`
}

// Duration is the canonical end condition of an effect.
type Duration struct {
	End    string `json:"end"`
	Rounds *int   `json:"rounds"`
	Roll   string `json:"roll,omitempty"`
}

// ConditionEffect is a condition found in a tier clause.
type ConditionEffect struct {
	Name           string         `json:"name"`
	End            string         `json:"end"`
	SaveEnds       bool           `json:"saveEnds"`
	Potency        string         `json:"potency"`
	Characteristic Characteristic `json:"characteristic"`
	Custom         bool           `json:"custom"`
	Duration       Duration       `json:"duration"`
	Clause         string         `json:"clause"`
}

// Damage is the damage extracted from a tier.
type Damage struct {
	Value int      `json:"value"`
	Types []string `json:"types"`
}

// Movement is forced movement extracted from a tier.
type Movement struct {
	Name      string `json:"name"`
	Distance  int    `json:"distance"`
	Direction string `json:"direction,omitempty"`
}

// TierResult is the structured reading of one tier's text.
type TierResult struct {
	Tier       int               `json:"tier"`
	Text       string            `json:"text"`
	Potency    string            `json:"potency"`
	Damage     *Damage           `json:"damage,omitempty"`
	Movement   *Movement         `json:"movement,omitempty"`
	Conditions []ConditionEffect `json:"conditions,omitempty"`
	Narrative  string            `json:"narrative,omitempty"`
	RawClauses []string          `json:"rawClauses,omitempty"`
}

// Effect holds the HTML fragments around the power roll.
type Effect struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Spend is a resource spend attached to an ability.
type Spend struct {
	Text  string `json:"text"`
	Value *int   `json:"value"`
}

// StatusEffect is a persisted stub for a condition the virtual tabletop
// does not implement natively.
type StatusEffect struct {
	Name     string   `json:"name"`
	Img      string   `json:"img"`
	Duration Duration `json:"duration"`
	Statuses []string `json:"statuses"`
}

// Ability is one parsed ability block.
type Ability struct {
	Name          string         `json:"name"`
	Category      Category       `json:"category"`
	Keywords      []string       `json:"keywords"`
	Distance      Distance       `json:"distance"`
	Target        Target         `json:"target"`
	Tiers         [3]*TierResult `json:"tiers"`
	Effect        Effect         `json:"effect"`
	Resource      *int           `json:"resource"`
	Spend         Spend          `json:"spend"`
	Trigger       string         `json:"trigger"`
	Formula       string         `json:"formula"`
	DamageDisplay string         `json:"damageDisplay"`
	EffectGroups  []EffectGroup  `json:"effectGroups"`
	StatusEffects []StatusEffect `json:"statusEffects,omitempty"`

	// Characteristics are the roll characteristics, set for tiered abilities.
	Characteristics []Characteristic `json:"characteristics"`
}

// HasTiers reports whether any tier slot is filled.
func (a *Ability) HasTiers() bool {
	for _, t := range a.Tiers {
		if t != nil {
			return true
		}
	}
	return false
}

// Feature is a passive block: a name and HTML paragraphs.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      Effect `json:"effect"`
}
