// Package distance parses ability distance lines such as
// "4 cube within 20 Each enemy in the area" into a distance and a target.
package distance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/textnorm"
)

// Result is a parsed distance line.
type Result struct {
	Distance drawsteel.Distance `json:"distance"`
	Target   drawsteel.Target   `json:"target"`
}

var (
	timesGlyphs   = strings.NewReplacer("×", "x", "✕", "x", "⨉", "x", "╳", "x")
	targetTrigger = regexp.MustCompile(`(?i)\b(each|all|every|one|two|three|any)\b`)
	xSection      = regexp.MustCompile(`(?i)^(.*?)\s+x\s+([a-z].*)$`)
)

type template struct {
	re    *regexp.Regexp
	build func(m []string) drawsteel.Distance
}

// templates are tried in order against the lowercased distance phrase.
var templates = []template{
	{
		re: regexp.MustCompile(`^(\d+)(?:\s*x\s*(\d+))?\s*(cube|burst|line|cone)\s+within\s+(\d+)\b`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{
				Type:      drawsteel.DistanceType(m[3]),
				Primary:   atoi(m[1]),
				Secondary: atoi(m[2]),
				Tertiary:  atoi(m[4]),
			}
		},
	},
	{
		re: regexp.MustCompile(`^(\d+)\s+wall\s+within\s+(\d+)$`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{Type: drawsteel.DistanceWall, Primary: atoi(m[1]), Secondary: atoi(m[2])}
		},
	},
	{
		re: regexp.MustCompile(`^(\d+)\s*x\s*(\d+)\s+(\w+)\s+within\s+(\d+)\b`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{
				Type:      drawsteel.DistanceType(m[3]),
				Primary:   atoi(m[1]),
				Secondary: atoi(m[2]),
				Tertiary:  atoi(m[4]),
			}
		},
	},
	{
		re: regexp.MustCompile(`^(\d+)\s+cube\s+within\s+(\d+)$`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{Type: drawsteel.DistanceCube, Primary: atoi(m[1]), Tertiary: atoi(m[2])}
		},
	},
	{
		re: regexp.MustCompile(`^(\d+)\s+burst$`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{Type: drawsteel.DistanceBurst, Primary: atoi(m[1])}
		},
	},
	{
		re: regexp.MustCompile(`^(?:(\d+)\s+aura|aura\s+(\d+))$`),
		build: func(m []string) drawsteel.Distance {
			size := m[1]
			if size == "" {
				size = m[2]
			}
			return drawsteel.Distance{Type: drawsteel.DistanceAura, Primary: atoi(size)}
		},
	},
	{
		re: regexp.MustCompile(`^melee\s+(\d+)\s+or\s+ranged\s+(\d+)$`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{Type: drawsteel.DistanceMeleeRanged, Primary: atoi(m[1]), Secondary: atoi(m[2])}
		},
	},
	{
		re: regexp.MustCompile(`^(melee|ranged|reach)\s+(\d+)$`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{Type: drawsteel.DistanceType(m[1]), Primary: atoi(m[2])}
		},
	},
	{
		re: regexp.MustCompile(`^self$`),
		build: func([]string) drawsteel.Distance {
			return drawsteel.Distance{Type: drawsteel.DistanceSelf, Primary: atoi("0")}
		},
	},
	{
		re: regexp.MustCompile(`^(melee|ranged)$`),
		build: func(m []string) drawsteel.Distance {
			return drawsteel.Distance{Type: drawsteel.DistanceType(m[1]), Primary: atoi("0")}
		},
	},
}

// Parse splits line into its distance and target phrases and parses both.
// Unrecognized distances are special; a missing target is special with an
// unbounded count.
func Parse(line string) Result {
	raw := timesGlyphs.Replace(textnorm.Line(line))

	if strings.EqualFold(raw, "self self") {
		return Result{
			Distance: drawsteel.Distance{Type: drawsteel.DistanceSelf, Primary: atoi("0")},
			Target:   drawsteel.Target{Type: drawsteel.TargetSelf},
		}
	}

	distancePart, targetPart := split(raw)
	return Result{
		Distance: ParseDistance(distancePart),
		Target:   ParseTarget(targetPart),
	}
}

func split(raw string) (string, string) {
	if loc := targetTrigger.FindStringIndex(raw); loc != nil {
		return strings.TrimSpace(raw[:loc[0]]), strings.TrimSpace(raw[loc[0]:])
	}
	if m := xSection.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return raw, ""
}

// ParseDistance matches a bare distance phrase against the shape templates.
func ParseDistance(phrase string) drawsteel.Distance {
	phrase = strings.ToLower(strings.TrimSpace(timesGlyphs.Replace(phrase)))
	for _, t := range templates {
		if m := t.re.FindStringSubmatch(phrase); m != nil {
			return t.build(m)
		}
	}
	return drawsteel.Distance{Type: drawsteel.DistanceSpecial}
}

var numberWords = []struct {
	re    *regexp.Regexp
	value int
}{
	{regexp.MustCompile(`\bone\b`), 1},
	{regexp.MustCompile(`\btwo\b`), 2},
	{regexp.MustCompile(`\bthree\b`), 3},
	{regexp.MustCompile(`\bfour\b`), 4},
	{regexp.MustCompile(`\bfive\b`), 5},
	{regexp.MustCompile(`\bsix\b`), 6},
	{regexp.MustCompile(`\bseven\b`), 7},
	{regexp.MustCompile(`\beight\b`), 8},
	{regexp.MustCompile(`\bnine\b`), 9},
	{regexp.MustCompile(`\bten\b`), 10},
}

var unbounded = regexp.MustCompile(`\b(all|each|every)\b`)

// targetClasses are checked most specific first.
var targetClasses = []struct {
	re     *regexp.Regexp
	target drawsteel.TargetType
}{
	{regexp.MustCompile(`\bcreatures? or objects?\b`), drawsteel.TargetCreatureObject},
	{regexp.MustCompile(`\bself or (?:one )?(?:ally|allies)\b`), drawsteel.TargetSelfOrAlly},
	{regexp.MustCompile(`\bself or (?:one )?creatures?\b`), drawsteel.TargetSelfOrCreature},
	{regexp.MustCompile(`\bself (?:and )?(?:one )?(?:ally|allies)\b`), drawsteel.TargetSelfAlly},
	{regexp.MustCompile(`\bcreatures?\b`), drawsteel.TargetCreature},
	{regexp.MustCompile(`\bobjects?\b`), drawsteel.TargetObject},
	{regexp.MustCompile(`\benem(?:y|ies)\b`), drawsteel.TargetEnemy},
	{regexp.MustCompile(`\b(?:ally|allies)\b`), drawsteel.TargetAlly},
	{regexp.MustCompile(`\bself\b`), drawsteel.TargetSelf},
}

// ParseTarget reads an entity class and count from a target phrase.
func ParseTarget(phrase string) drawsteel.Target {
	lower := strings.ToLower(strings.TrimSpace(phrase))
	if lower == "" {
		return drawsteel.Target{Type: drawsteel.TargetSpecial}
	}

	target := drawsteel.Target{Type: drawsteel.TargetSpecial}
	for _, nw := range numberWords {
		if nw.re.MatchString(lower) {
			v := nw.value
			target.Value = &v
			break
		}
	}
	if unbounded.MatchString(lower) {
		target.Value = nil
	}

	for _, tc := range targetClasses {
		if tc.re.MatchString(lower) {
			target.Type = tc.target
			break
		}
	}
	return target
}

// atoi returns nil for an empty capture.
func atoi(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
