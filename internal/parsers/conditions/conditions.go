// Package conditions maps condition words and duration phrases in ability
// text to their canonical forms.
package conditions

import (
	"regexp"
	"sort"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

// Classification of a condition match
const (
	ClassApplied = "applied"
	ClassOther   = "other"
)

// StatusEffectImg is the image of custom condition stubs.
const StatusEffectImg = "icons/svg/downgrade.svg"

// Match is the result of scanning text for a condition.
type Match struct {
	Name      string `json:"name"`
	Class     string `json:"class"`
	SaveEnds  bool   `json:"saveEnds"`
	Supported bool   `json:"supported"`
}

// Found reports whether a condition was matched.
func (m Match) Found() bool {
	return m.Name != ""
}

var saveEnds = regexp.MustCompile(`(?i)\(?\s*save ends\s*\)?`)

// Normalizer recognizes conditions from an injected vocabulary.
type Normalizer struct {
	tables *vocab.Tables
	names  []string
}

// NewNormalizer creates a normalizer over tables' supported and custom
// conditions.
func NewNormalizer(tables *vocab.Tables) *Normalizer {
	return &Normalizer{tables: tables, names: tables.Conditions()}
}

// Parse returns the first vocabulary condition contained in text, checking
// supported conditions before custom ones. No match is ClassOther.
func (n *Normalizer) Parse(text string) Match {
	lower := strings.ToLower(text)
	for _, name := range n.names {
		if strings.Contains(lower, name) {
			return Match{
				Name:      name,
				Class:     ClassApplied,
				SaveEnds:  saveEnds.MatchString(lower),
				Supported: n.tables.IsSupportedCondition(name),
			}
		}
	}
	return Match{Class: ClassOther}
}

// FindAll returns every distinct condition in text, in order of appearance.
func (n *Normalizer) FindAll(text string) []Match {
	lower := strings.ToLower(text)
	save := saveEnds.MatchString(lower)

	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for _, name := range n.names {
		if pos := strings.Index(lower, name); pos >= 0 {
			hits = append(hits, hit{pos: pos, name: name})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	matches := make([]Match, 0, len(hits))
	for _, h := range hits {
		matches = append(matches, Match{
			Name:      h.name,
			Class:     ClassApplied,
			SaveEnds:  save,
			Supported: n.tables.IsSupportedCondition(h.name),
		})
	}
	return matches
}

// IsSupported reports whether name renders as an inline reference.
func (n *Normalizer) IsSupported(name string) bool {
	return n.tables.IsSupportedCondition(strings.ToLower(name))
}

// Names returns the recognized condition names, supported first.
func (n *Normalizer) Names() []string {
	return n.tables.Conditions()
}

// StatusEffects returns one stub per distinct custom condition across the
// tiers. Supported conditions are left to inline references.
func StatusEffects(tiers [3]*drawsteel.TierResult) []drawsteel.StatusEffect {
	var out []drawsteel.StatusEffect
	seen := make(map[string]bool)
	for _, tier := range tiers {
		if tier == nil {
			continue
		}
		for _, cond := range tier.Conditions {
			if !cond.Custom || seen[cond.Name] {
				continue
			}
			seen[cond.Name] = true
			out = append(out, drawsteel.StatusEffect{
				Name:     cond.Name,
				Img:      StatusEffectImg,
				Duration: cond.Duration,
				Statuses: []string{cond.Name},
			})
		}
	}
	return out
}
