package ability

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
)

// LineKind tags a line of an ability block.
type LineKind int

// LineKind constants
const (
	LineNarrative LineKind = iota
	LineHeader
	LineKeywords
	LineDistance
	LineTier
	LineEffect
	LineTrigger
	LineSpend
)

var lineKindNames = map[LineKind]string{
	LineNarrative: "narrative",
	LineHeader:    "header",
	LineKeywords:  "keywords",
	LineDistance:  "distance",
	LineTier:      "tier",
	LineEffect:    "effect",
	LineTrigger:   "trigger",
	LineSpend:     "spend",
}

// String implements fmt.Stringer
func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Line is a classified line. Tier is set for LineTier; Value for LineSpend.
// Text has any marker or label removed.
type Line struct {
	Kind  LineKind
	Tier  int
	Value int
	Text  string
}

var (
	effectLabel  = regexp.MustCompile(`(?i)^Effect:\s*`)
	triggerLabel = regexp.MustCompile(`(?i)^Trigger:\s*`)
	spendLine    = regexp.MustCompile(`(?i)^(?:Spend\s+)?(\d+)\+?\s+Malice\b[:.]?\s*`)
)

// LineClassifier tags the lines of an ability block.
type LineClassifier struct {
	dialect *dialect.Dialect
}

// NewLineClassifier creates a classifier that prefers the markers of d and
// falls back to the markers of every dialect.
func NewLineClassifier(d *dialect.Dialect) *LineClassifier {
	return &LineClassifier{dialect: d}
}

// Classify tags the line at index. The first three lines of an ability are
// positional: name, keywords, distance.
func (c *LineClassifier) Classify(index int, line string) Line {
	line = strings.TrimSpace(line)
	switch index {
	case 0:
		return Line{Kind: LineHeader, Text: line}
	case 1:
		return Line{Kind: LineKeywords, Text: line}
	case 2:
		return Line{Kind: LineDistance, Text: line}
	}

	if tier, rest, ok := c.tier(line); ok {
		return Line{Kind: LineTier, Tier: tier, Text: rest}
	}
	if loc := effectLabel.FindStringIndex(line); loc != nil {
		return Line{Kind: LineEffect, Text: line[loc[1]:]}
	}
	if loc := triggerLabel.FindStringIndex(line); loc != nil {
		return Line{Kind: LineTrigger, Text: line[loc[1]:]}
	}
	if m := spendLine.FindStringSubmatchIndex(line); m != nil {
		value, _ := strconv.Atoi(line[m[2]:m[3]])
		return Line{Kind: LineSpend, Value: value, Text: line[m[1]:]}
	}
	return Line{Kind: LineNarrative, Text: line}
}

func (c *LineClassifier) tier(line string) (int, string, bool) {
	if c.dialect != nil {
		if tier, rest, ok := c.dialect.Tier(line); ok {
			return tier, rest, ok
		}
	}
	return dialect.AnyTier(line)
}

// Continues reports whether a narrative line carries on the previous
// line: it starts with a lowercase letter, a digit or "(".
func Continues(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLower(r) || unicode.IsDigit(r) || r == '('
}
