// Package enrich rewrites ability narrative into HTML fragments with inline
// roll and condition references.
package enrich

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/conditions"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	damage     = regexp.MustCompile(`(?i)(\d+)\s*(\w+)?\s*damage`)
	testCall   = regexp.MustCompile(`(?i)\b(might|intuition|agility|reason|presence)\s+test\b`)
	threshold  = regexp.MustCompile(`(?i)\b([mirap])&lt;(\d+)\]`)
	markup     = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// Enrich rewrites a raw narrative fragment. It is not idempotent: damage
// references would be wrapped twice, so call it once per fragment.
func Enrich(text string) string {
	out := strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	out = markup.Replace(out)

	out = replaceSubmatch(damage, out, func(m []string) string {
		value, kind := m[1], strings.ToLower(m[2])
		if kind == "" || kind == "damage" {
			return fmt.Sprintf("[[/damage %s]] damage", value)
		}
		return fmt.Sprintf("[[/damage %s %s]] damage", value, kind)
	})

	out = replaceSubmatch(testCall, out, func(m []string) string {
		return fmt.Sprintf(`<span style="text-decoration:underline"><strong>%s test</strong></span>`, capitalize(m[1]))
	})

	out = replaceSubmatch(threshold, out, func(m []string) string {
		return strings.ToUpper(m[1]) + "&lt;" + m[2]
	})

	return out
}

// Paragraph wraps an enriched fragment in a paragraph element.
func Paragraph(text string) string {
	return "<p>" + Enrich(text) + "</p>"
}

// Injector turns supported condition names into inline apply references.
// A bracketed duration right after the name becomes the end token, e.g.
// "weakened (save ends)" -> "[[/apply weakened save]]".
type Injector struct {
	patterns []conditionPattern
}

type conditionPattern struct {
	name string
	re   *regexp.Regexp
}

// NewInjector compiles one pattern per supported condition.
func NewInjector(normalizer *conditions.Normalizer) *Injector {
	inj := &Injector{}
	for _, name := range normalizer.Names() {
		if !normalizer.IsSupported(name) {
			continue
		}
		inj.patterns = append(inj.patterns, conditionPattern{
			name: name,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b(?:\s*[\[(]([^\])]+)[\])])?`),
		})
	}
	return inj
}

// Inject rewrites condition mentions in text.
func (i *Injector) Inject(text string) string {
	out := text
	for _, p := range i.patterns {
		out = replaceSubmatch(p.re, out, func(m []string) string {
			if end := conditions.EnricherEnd(m[1]); m[1] != "" && end != "" {
				return fmt.Sprintf("[[/apply %s %s]]", p.name, end)
			}
			return fmt.Sprintf("[[/apply %s]]", p.name)
		})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// replaceSubmatch is ReplaceAllStringFunc with access to capture groups.
// Groups that did not participate are "".
func replaceSubmatch(re *regexp.Regexp, s string, fn func(m []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range matches {
		b.WriteString(s[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
