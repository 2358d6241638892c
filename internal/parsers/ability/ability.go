// Package ability parses the ability and feature blocks of a stat block.
//
// Classify picks the path for a block. Ability blocks go through a single
// dispatch loop over classified lines; tier text is handed to the tier
// parser and prose is buffered into enriched paragraphs.
package ability

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/conditions"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/distance"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/enrich"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/textnorm"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/tier"
)

var (
	formulaPattern  = regexp.MustCompile(`(\d+d\d+\s*\+\s*\d+)`)
	resourcePattern = regexp.MustCompile(`(?i)\b(\d+)\s+Malice\s*$`)
	nameNoise       = []*regexp.Regexp{
		regexp.MustCompile(`\d+d\d+(?:\s*[+-]\s*\d+)?`),
		regexp.MustCompile(`(?i)\bsignature ability\b`),
		regexp.MustCompile(`(?i)\b(?:free\s+)?triggered action\b`),
		regexp.MustCompile(`(?i)\bvillain action(?:\s*\d+)?\b`),
		regexp.MustCompile(`(?i)\bmain action\b`),
		regexp.MustCompile(`(?i)\bmaneuver\b`),
		regexp.MustCompile(`(?i)\b\d+\s*malice\b`),
	}
	categoryPhrase = regexp.MustCompile(`(?i)\b(?:free\s+)?(?:main action|triggered action|villain action(?:\s*\d+)?|maneuver|signature ability|reaction)\b`)
	listSeparator  = regexp.MustCompile(`[,;]`)
)

// categories are scanned in order; the first phrase found wins.
var categories = []struct {
	phrase   string
	category drawsteel.Category
}{
	{"free triggered action", drawsteel.CategoryFreeTriggered},
	{"main action", drawsteel.CategoryMain},
	{"triggered action", drawsteel.CategoryTriggered},
	{"villain action", drawsteel.CategoryVillain},
	{"maneuver", drawsteel.CategoryManeuver},
	{"signature ability", drawsteel.CategorySignature},
}

// Config configures a Parser.
type Config struct {
	Dialect    *dialect.Dialect
	Tiers      *tier.Parser
	Normalizer *conditions.Normalizer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dialect == nil {
		vb.RequiredField("Dialect")
	}
	if c.Tiers == nil {
		vb.RequiredField("Tiers")
	}
	if c.Normalizer == nil {
		vb.RequiredField("Normalizer")
	}
	return vb.Build()
}

// Parser parses ability and feature blocks.
type Parser struct {
	lines    *LineClassifier
	tiers    *tier.Parser
	injector *enrich.Injector
}

// NewParser creates an ability parser
func NewParser(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Parser{
		lines:    NewLineClassifier(cfg.Dialect),
		tiers:    cfg.Tiers,
		injector: enrich.NewInjector(cfg.Normalizer),
	}, nil
}

// Render enriches a prose fragment into one HTML paragraph with inline
// condition references.
func (p *Parser) Render(text string) string {
	return "<p>" + p.injector.Inject(enrich.Enrich(text)) + "</p>"
}

// Parse reads an ability block. header may be nil; the roll characteristic
// then falls back to might. An empty block yields nil.
func (p *Parser) Parse(block []string, header *drawsteel.Header) *drawsteel.Ability {
	lines := normalize(block)
	if len(lines) == 0 {
		return nil
	}

	a := &drawsteel.Ability{
		Category:        Category(lines),
		Keywords:        []string{},
		Distance:        drawsteel.Distance{Type: drawsteel.DistanceSpecial},
		Target:          drawsteel.Target{Type: drawsteel.TargetSpecial},
		Formula:         drawsteel.FormulaCharacteristic,
		Characteristics: []drawsteel.Characteristic{},
	}

	before := enrich.NewBuffer(p.Render)
	after := enrich.NewBuffer(p.Render)
	prose := before

	var (
		tierText    [3][]string
		openTier    int
		openTrigger bool
	)

	for i, raw := range lines {
		line := p.lines.Classify(i, raw)
		next, hasNext := "", i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}

		if line.Kind == LineNarrative && Continues(line.Text) {
			switch {
			case openTier > 0:
				tierText[openTier-1] = append(tierText[openTier-1], line.Text)
				continue
			case openTrigger:
				a.Trigger += " " + line.Text
				continue
			}
		}
		openTier, openTrigger = 0, false

		switch line.Kind {
		case LineHeader:
			parseNameLine(a, line.Text)
		case LineKeywords:
			a.Keywords = Keywords(line.Text)
		case LineDistance:
			r := distance.Parse(line.Text)
			a.Distance, a.Target = r.Distance, r.Target
		case LineTier:
			before.Flush()
			prose = after
			openTier = line.Tier
			tierText[line.Tier-1] = append(tierText[line.Tier-1], line.Text)
		case LineEffect:
			prose.Flush()
			prose.Add(line.Text, next, hasNext)
		case LineTrigger:
			a.Trigger = line.Text
			openTrigger = true
		case LineSpend:
			value := line.Value
			a.Spend = drawsteel.Spend{Value: &value}
			if line.Text != "" {
				a.Spend.Text = p.injector.Inject(enrich.Enrich(line.Text))
			}
		default:
			prose.Add(line.Text, next, hasNext)
		}
	}

	for i, parts := range tierText {
		if len(parts) == 0 {
			continue
		}
		a.Tiers[i] = p.tiers.Parse(strings.Join(parts, " "), i+1)
	}

	a.Effect = drawsteel.Effect{Before: before.HTML(), After: after.HTML()}
	a.DamageDisplay = DamageDisplay(a.Keywords)
	a.StatusEffects = conditions.StatusEffects(a.Tiers)
	if a.HasTiers() {
		a.Characteristics = []drawsteel.Characteristic{header.HighestOrDefault()}
	}
	return a
}

func parseNameLine(a *drawsteel.Ability, line string) {
	if m := formulaPattern.FindStringSubmatch(line); m != nil {
		a.Formula = m[1]
	}
	if m := resourcePattern.FindStringSubmatch(line); m != nil {
		n, _ := strconv.Atoi(m[1])
		a.Resource = &n
	}
	a.Name = Name(line)
}

// Name strips dice notation, costs and action-type tags from an ability's
// first line.
func Name(line string) string {
	for _, re := range nameNoise {
		line = re.ReplaceAllString(line, "")
	}
	return textnorm.Line(line)
}

// Category scans the whole block for an action-type phrase. Blocks without
// one are main actions.
func Category(lines []string) drawsteel.Category {
	joined := strings.ToLower(strings.Join(lines, " "))
	for _, c := range categories {
		if strings.Contains(joined, c.phrase) {
			return c.category
		}
	}
	return drawsteel.CategoryMain
}

// Keywords splits a keyword line, dropping the action-type phrase.
func Keywords(line string) []string {
	out := []string{}
	for _, part := range listSeparator.Split(categoryPhrase.ReplaceAllString(line, ""), -1) {
		if kw := strings.ToLower(strings.TrimSpace(part)); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// DamageDisplay picks how damage is presented from the keywords.
func DamageDisplay(keywords []string) string {
	for _, kw := range []string{"magic", "ranged", "weapon"} {
		if slices.Contains(keywords, kw) {
			return kw
		}
	}
	return "melee"
}

func normalize(block []string) []string {
	var out []string
	for _, line := range block {
		if line = textnorm.Line(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
