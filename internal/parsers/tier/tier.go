// Package tier reads one power roll tier into damage, forced movement,
// conditions and leftover narrative.
//
// Extraction runs in a fixed order. Damage is taken first and cut out of the
// text, then forced movement, and whatever remains is split on ";" into
// clauses that are either condition clauses or narrative.
package tier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/conditions"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/textnorm"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

var (
	marker          = regexp.MustCompile(`^(?:[!@#✦★✸]|(?i:tier\s*[123]|t[123])\b\s*[:\-]?)\s*`)
	damagePattern   = regexp.MustCompile(`(?i)(\d+)\s*(\w+)?\s*damage`)
	movePattern     = regexp.MustCompile(`(?i)\b(?:(vertical|horizontal)\s+)?(push|pull|slide|shift)\s+(\d+)\b`)
	saveEndsPattern = regexp.MustCompile(`(?i)\(save ends\)`)
	triggerPattern  = regexp.MustCompile(`(?i)\b([marip])<\d+\]?`)
	conditionClause = regexp.MustCompile(`(?i)(?:\b(?:they|the target|target)\s+(?:are|is)\s+|\b[marip]<\d+\]?\s*)([a-z ,'\-]+?)(?:\s*\((?:save ends|eot)\))?$`)
	connective      = regexp.MustCompile(`(?i)^(?:and|or|then)\b\s*|\s*\b(?:and|or|then)$`)
)

// Config configures a Parser.
type Config struct {
	Vocabulary *vocab.Tables
	Normalizer *conditions.Normalizer
	// Potencies overrides the weak/average/strong tags when set; it must
	// have exactly three entries.
	Potencies []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Vocabulary == nil {
		vb.RequiredField("Vocabulary")
	}
	if c.Normalizer == nil {
		vb.RequiredField("Normalizer")
	}
	if c.Potencies != nil && len(c.Potencies) != 3 {
		vb.Fieldf("Potencies", "must have 3 entries, got %d", len(c.Potencies))
	}
	return vb.Build()
}

// Parser parses tier text.
type Parser struct {
	vocabulary *vocab.Tables
	normalizer *conditions.Normalizer
	potencies  [3]string
}

// NewParser creates a tier parser
func NewParser(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	p := &Parser{
		vocabulary: cfg.Vocabulary,
		normalizer: cfg.Normalizer,
		potencies:  drawsteel.DefaultPotencies(),
	}
	if cfg.Potencies != nil {
		copy(p.potencies[:], cfg.Potencies)
	}
	return p, nil
}

// Potencies returns the tags used for tiers 1..3.
func (p *Parser) Potencies() [3]string {
	return p.potencies
}

// StripMarker removes a leading tier glyph or T1/Tier 1 label.
func StripMarker(text string) string {
	return marker.ReplaceAllString(strings.TrimSpace(text), "")
}

// Parse reads tier text for the 1-based tier index. An index outside 1..3
// is clamped.
func (p *Parser) Parse(text string, tierIndex int) *drawsteel.TierResult {
	tierIndex = min(max(tierIndex, 1), 3)

	working := StripMarker(textnorm.Line(text))
	result := &drawsteel.TierResult{
		Tier:    tierIndex,
		Text:    working,
		Potency: p.potencies[tierIndex-1],
	}

	if loc := damagePattern.FindStringSubmatchIndex(working); loc != nil {
		value, _ := strconv.Atoi(working[loc[2]:loc[3]])
		dmg := &drawsteel.Damage{Value: value, Types: []string{}}
		if loc[4] >= 0 {
			kind := strings.ToLower(working[loc[4]:loc[5]])
			if kind != "damage" && p.vocabulary.IsDamageType(kind) {
				dmg.Types = append(dmg.Types, kind)
			}
		}
		result.Damage = dmg
		working = working[:loc[0]] + working[loc[1]:]
	}

	if m := movePattern.FindStringSubmatchIndex(working); m != nil {
		distance, _ := strconv.Atoi(working[m[6]:m[7]])
		mv := &drawsteel.Movement{
			Name:     strings.ToLower(working[m[4]:m[5]]),
			Distance: distance,
		}
		if m[2] >= 0 {
			mv.Direction = strings.ToLower(working[m[2]:m[3]])
		}
		result.Movement = mv
		working = working[:m[0]] + working[m[1]:]
	}

	var narrative []string
	for _, raw := range strings.Split(working, ";") {
		clause := cleanClause(raw)
		if clause == "" {
			continue
		}
		result.RawClauses = append(result.RawClauses, clause)

		if conds := p.conditionsIn(clause, result.Potency); len(conds) > 0 {
			result.Conditions = append(result.Conditions, conds...)
			continue
		}
		narrative = append(narrative, clause)
	}
	result.Narrative = strings.Join(narrative, " ")

	return result
}

func (p *Parser) conditionsIn(clause, potency string) []drawsteel.ConditionEffect {
	m := conditionClause.FindStringSubmatch(clause)
	if m == nil {
		return nil
	}

	saveEnds := saveEndsPattern.MatchString(clause)
	characteristic := drawsteel.CharacteristicNone
	if t := triggerPattern.FindStringSubmatch(clause); t != nil {
		characteristic = drawsteel.CharacteristicFromLetter(t[1])
	}
	end := ""
	if saveEnds {
		end = drawsteel.EndSave
	}

	var out []drawsteel.ConditionEffect
	for _, match := range p.normalizer.FindAll(m[1]) {
		out = append(out, drawsteel.ConditionEffect{
			Name:           match.Name,
			End:            end,
			SaveEnds:       saveEnds,
			Potency:        potency,
			Characteristic: characteristic,
			Custom:         !match.Supported,
			Duration:       conditions.ParseDuration(clause),
			Clause:         clause,
		})
	}
	return out
}

// cleanClause trims whitespace, trailing sentence punctuation and dangling
// connectives left behind after damage or movement was cut out.
func cleanClause(raw string) string {
	clause := strings.TrimSpace(raw)
	for {
		trimmed := strings.TrimSpace(strings.Trim(clause, ".,"))
		trimmed = strings.TrimSpace(connective.ReplaceAllString(trimmed, ""))
		if trimmed == clause {
			return clause
		}
		clause = trimmed
	}
}
