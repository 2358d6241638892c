// Package malice parses the malice (villain resource) ability text that is
// printed apart from a monster's stat block.
//
// The text is a list of abilities. Each one opens with a header line that
// carries its name and cost, optionally preceded by a "*" delimiter line,
// and is followed by narrative, an optional distance line, up to three tier
// lines and Effect: lines. The tier grammar is shared with regular
// abilities; only the markers and header shapes come from the dialect.
package malice

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/ability"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/conditions"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/distance"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/enrich"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/textnorm"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/tier"
)

var (
	featuresTitle = regexp.MustCompile(`(?i)^(\S+)\s+malice features$`)
	keywordLine   = regexp.MustCompile(`^[A-Z][a-z]+(?:,\s*[A-Z][a-z]+)*\s+(?i:main action|triggered action|reaction|maneuver)$`)
	effectLabel   = regexp.MustCompile(`(?i)^effect:\s*`)
	formula       = regexp.MustCompile(`\d+d\d+\s*\+\s*\d+`)
)

// Result is a parsed malice text.
type Result struct {
	// Creature is the creature type from a "<Type> Malice Features" title,
	// lowercased. Empty when the text has no title.
	Creature  string               `json:"creature,omitempty"`
	Abilities []*drawsteel.Ability `json:"abilities"`
	Notices   []drawsteel.Notice   `json:"notices,omitempty"`
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

// Parser parses malice text for one dialect.
type Parser struct {
	dialect  *dialect.Dialect
	tiers    *tier.Parser
	injector *enrich.Injector
}

// NewParser creates a malice parser
func NewParser(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Parser{
		dialect:  cfg.Dialect,
		tiers:    cfg.Tiers,
		injector: enrich.NewInjector(cfg.Normalizer),
	}, nil
}

func (p *Parser) render(text string) string {
	return "<p>" + p.injector.Inject(enrich.Enrich(text)) + "</p>"
}

// draft is the ability being read.
type draft struct {
	ability  *drawsteel.Ability
	cost     *int
	before   *enrich.Buffer
	after    *enrich.Buffer
	prose    *enrich.Buffer
	tierText [3][]string
	openTier int
	// lines read since the header
	seen int
}

// Parse reads every malice ability in raw. Lines before the first header
// are reported as notices and otherwise ignored.
func (p *Parser) Parse(raw string) *Result {
	var lines []string
	for _, line := range strings.Split(textnorm.PreservingLines(raw), "\n") {
		if line = textnorm.Line(line); line != "" {
			lines = append(lines, line)
		}
	}

	result := &Result{Abilities: []*drawsteel.Ability{}}
	var (
		current *draft
		// delimited is true at the start of the text and right after a
		// delimiter line.
		delimited = true
	)

	finish := func() {
		if current != nil {
			result.Abilities = append(result.Abilities, p.finish(current, result.Creature))
		}
		current = nil
	}

	for i, line := range lines {
		next, hasNext := "", i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}

		if i == 0 {
			if m := featuresTitle.FindStringSubmatch(line); m != nil {
				result.Creature = strings.ToLower(m[1])
				continue
			}
		}

		if line == p.dialect.Segmentation.Delimiter {
			finish()
			delimited = true
			continue
		}

		if current == nil || delimited || !p.dialect.MaliceDelimited {
			if name, cost, ok := p.dialect.MaliceHeader(line); ok {
				finish()
				current = p.start(name, cost)
				delimited = false
				continue
			}
		}
		delimited = false

		if current == nil {
			result.Notices = append(result.Notices, drawsteel.Notice{
				Kind:  drawsteel.NoticeMissingHeader,
				Field: "malice",
				Value: line,
			})
			continue
		}

		p.read(current, line, next, hasNext)
	}
	finish()

	return result
}

func (p *Parser) start(name string, cost *int) *draft {
	a := &drawsteel.Ability{
		Name:            ability.Name(name),
		Category:        drawsteel.CategoryMalice,
		Keywords:        []string{},
		Distance:        drawsteel.Distance{Type: drawsteel.DistanceSpecial},
		Target:          drawsteel.Target{Type: drawsteel.TargetSpecial},
		Resource:        cost,
		Formula:         formula.FindString(name),
		Characteristics: []drawsteel.Characteristic{},
	}
	if a.Name == "" {
		a.Name = name
	}

	d := &draft{
		ability: a,
		cost:    cost,
		before:  enrich.NewBuffer(p.render),
		after:   enrich.NewBuffer(p.render),
	}
	d.prose = d.before
	return d
}

func (p *Parser) read(d *draft, line, next string, hasNext bool) {
	d.seen++

	if d.seen == 1 && keywordLine.MatchString(line) {
		d.ability.Keywords = ability.Keywords(line)
		return
	}

	if prefix := p.dialect.DistancePrefix; prefix != "" && strings.HasPrefix(line, prefix) {
		d.prose.Flush()
		d.openTier = 0
		r := distance.Parse(strings.TrimPrefix(line, prefix))
		d.ability.Distance, d.ability.Target = r.Distance, r.Target
		return
	}

	if n, rest, ok := p.dialect.MaliceTier(line); ok {
		d.before.Flush()
		d.prose = d.after
		d.openTier = n
		d.tierText[n-1] = append(d.tierText[n-1], rest)
		return
	}

	if loc := effectLabel.FindStringIndex(line); loc != nil {
		d.openTier = 0
		d.prose.Flush()
		d.after.Add(line[loc[1]:], next, hasNext)
		return
	}

	if d.openTier > 0 && ability.Continues(line) {
		d.tierText[d.openTier-1] = append(d.tierText[d.openTier-1], line)
		return
	}
	d.openTier = 0
	d.prose.Add(line, next, hasNext)
}

func (p *Parser) finish(d *draft, creature string) *drawsteel.Ability {
	a := d.ability
	var rows []string
	for i, parts := range d.tierText {
		if len(parts) == 0 {
			continue
		}
		text := strings.Join(parts, " ")
		a.Tiers[i] = p.tiers.Parse(text, i+1)
		rows = append(rows, fmt.Sprintf(`<dt class="tier%d"><p>%s</p></dt><dd><p>%s</p></dd>`,
			i+1, p.dialect.TierLabels[i], p.injector.Inject(enrich.Enrich(text))))
	}

	before := d.before.HTML()
	if len(rows) > 0 {
		before += `<dl class="power-roll-display">` + strings.Join(rows, "") + `</dl>`
	}
	a.Effect = drawsteel.Effect{Before: before, After: d.after.HTML()}

	switch {
	case creature != "":
		a.Trigger = fmt.Sprintf("A %s starts its turn.", creature)
	case d.cost != nil:
		a.Trigger = fmt.Sprintf("Spend %d Malice.", *d.cost)
	}

	a.DamageDisplay = ability.DamageDisplay(a.Keywords)
	a.StatusEffects = conditions.StatusEffects(a.Tiers)
	return a
}
