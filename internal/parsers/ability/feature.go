package ability

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/enrich"
)

var (
	featureLabel = regexp.MustCompile(`\.\s*([A-Z][^:.]{0,50}):`)
	afterLabel   = regexp.MustCompile(`(?i)^After:\s*`)
)

// ParseFeature reads a feature block. The first line is the name; the
// rest is prose, with Effect: and After: sections routed to the effect
// fields. An empty block yields nil.
func (p *Parser) ParseFeature(block []string) *drawsteel.Feature {
	lines := normalize(block)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(strings.Trim(line, "*"))
	}
	lines = dropEmpty(lines)
	if len(lines) == 0 {
		return nil
	}

	f := &drawsteel.Feature{Name: lines[0]}

	identity := func(s string) string { return s }
	body := enrich.NewBuffer(identity)
	before := enrich.NewBuffer(p.Render)
	after := enrich.NewBuffer(p.Render)
	current := body

	rest := lines[1:]
	for i, line := range rest {
		next, hasNext := "", i+1 < len(rest)
		if hasNext {
			next = rest[i+1]
		}
		switch {
		case effectLabel.MatchString(line):
			current.Flush()
			current = before
			line = effectLabel.ReplaceAllString(line, "")
		case afterLabel.MatchString(line):
			current.Flush()
			current = after
			line = afterLabel.ReplaceAllString(line, "")
		}
		current.Add(line, next, hasNext)
	}

	f.Description = p.describe(f.Name, body.Paragraphs())
	f.Effect = drawsteel.Effect{Before: before.HTML(), After: after.HTML()}
	return f
}

// describe renders the description paragraphs. Inline labels such as
// "Solo Turns:" start their own paragraph, and the feature name leads the
// first one.
func (p *Parser) describe(name string, paragraphs []string) string {
	var pieces []string
	for _, para := range paragraphs {
		split := featureLabel.ReplaceAllString(para, ".\n\n$1:")
		for _, piece := range strings.Split(split, "\n\n") {
			if piece = strings.TrimSpace(piece); piece != "" {
				pieces = append(pieces, piece)
			}
		}
	}

	lead := "<strong>" + enrich.Enrich(name) + ".</strong>"
	if len(pieces) == 0 {
		return "<p>" + lead + "</p>"
	}

	var b strings.Builder
	for i, piece := range pieces {
		b.WriteString("<p>")
		if i == 0 {
			b.WriteString(lead + " ")
		}
		b.WriteString(p.injector.Inject(enrich.Enrich(piece)))
		b.WriteString("</p>")
	}
	return b.String()
}

func dropEmpty(lines []string) []string {
	out := lines[:0]
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
