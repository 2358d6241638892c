// Package dialect describes the text formats a stat block can arrive in.
//
// The parsers share one grammar. What differs between the official book
// text, the pre-release packet and the review format is captured here as
// data: how blocks are delimited, which glyphs mark tiers, and how malice
// ability headers read.
package dialect

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
)

// Dialect names
const (
	NameOfficial   = "official"
	NamePreRelease = "prerelease"
	NameReview     = "review"
)

// Strategy selects how raw text is cut into blocks.
type Strategy int

const (
	// StrategySeparator splits only on a delimiter line with blank lines
	// on both sides.
	StrategySeparator Strategy = iota
	// StrategyBlankRuns splits on runs of blank lines, and also on a bare
	// delimiter line.
	StrategyBlankRuns
)

// String implements fmt.Stringer
func (s Strategy) String() string {
	switch s {
	case StrategySeparator:
		return "separator"
	case StrategyBlankRuns:
		return "blank-runs"
	default:
		return "unknown"
	}
}

// Segmentation configures block splitting.
type Segmentation struct {
	Strategy      Strategy
	MinBlankLines int
	Delimiter     string
}

// Dialect is the configuration handed to the shared parsers.
type Dialect struct {
	Name         string
	Segmentation Segmentation
	// TierMarkers lists the leading markers for tiers 1..3.
	TierMarkers [3][]string
	// MaliceTierMarkers are the markers used inside malice text.
	MaliceTierMarkers [3][]string
	// MaliceHeaders match a malice ability title line. Each pattern has a
	// "name" group and may have a "cost" group.
	MaliceHeaders []*regexp.Regexp
	// MaliceDelimited means a malice header only opens an ability at the
	// start of the text or right after a delimiter line.
	MaliceDelimited bool
	// DistancePrefix marks a distance line in malice text, if the dialect
	// uses one.
	DistancePrefix string
	// TierLabels are the roll ranges shown for tiers 1..3.
	TierLabels [3]string
}

var tierLabels = [3]string{"11 or less", "12-16", "17+"}

var builtin = []*Dialect{Official(), PreRelease(), Review()}

// Official is the format of the published rulebook PDFs.
func Official() *Dialect {
	return &Dialect{
		Name: NameOfficial,
		Segmentation: Segmentation{
			Strategy:      StrategyBlankRuns,
			MinBlankLines: 1,
			Delimiter:     "*",
		},
		TierMarkers:       [3][]string{{"!"}, {"@"}, {"#"}},
		MaliceTierMarkers: [3][]string{{"!"}, {"@"}, {"#"}},
		MaliceHeaders: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(?P<name>.+?)\s+(?P<cost>\d+)\s+malice$`),
		},
		MaliceDelimited: true,
		TierLabels:      tierLabels,
	}
}

// PreRelease is the format of the pre-release monster packet.
func PreRelease() *Dialect {
	return &Dialect{
		Name: NamePreRelease,
		Segmentation: Segmentation{
			Strategy:  StrategySeparator,
			Delimiter: "*",
		},
		TierMarkers:       [3][]string{{"✦"}, {"★"}, {"✸"}},
		MaliceTierMarkers: [3][]string{{"1", "á"}, {"2", "é"}, {"3", "í"}},
		MaliceHeaders: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^[a-z]\s+(?P<name>.+?)\s+(?P<cost>\d+)\s+malice$`),
			regexp.MustCompile(`(?i)^[a-z]\s+(?P<name>.+?)\s+signature ability$`),
		},
		DistancePrefix: "e ",
		TierLabels:     tierLabels,
	}
}

// Review is the plain-text format used for review copies, where tiers are
// written out as T1/T2/T3 or Tier 1/2/3.
func Review() *Dialect {
	return &Dialect{
		Name: NameReview,
		Segmentation: Segmentation{
			Strategy:  StrategySeparator,
			Delimiter: "*",
		},
		TierMarkers:       [3][]string{{"T1", "Tier 1"}, {"T2", "Tier 2"}, {"T3", "Tier 3"}},
		MaliceTierMarkers: [3][]string{{"T1", "Tier 1"}, {"T2", "Tier 2"}, {"T3", "Tier 3"}},
		MaliceHeaders: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(?P<name>.+?)\s+(?P<cost>\d+)\s+malice$`),
		},
		MaliceDelimited: true,
		TierLabels:      tierLabels,
	}
}

// Names returns the known dialect names.
func Names() []string {
	return []string{NameOfficial, NamePreRelease, NameReview}
}

// ByName returns the dialect registered under name.
func ByName(name string) (*Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameOfficial, "":
		return Official(), nil
	case NamePreRelease, "pre-release":
		return PreRelease(), nil
	case NameReview:
		return Review(), nil
	default:
		return nil, errors.InvalidArgumentf("unknown dialect %q", name).
			WithMeta("known", strings.Join(Names(), ","))
	}
}

// Tier reports which tier line starts with, and the text after the marker.
func (d *Dialect) Tier(line string) (int, string, bool) {
	return matchMarker(d.TierMarkers, line)
}

// MaliceTier is Tier for malice text.
func (d *Dialect) MaliceTier(line string) (int, string, bool) {
	return matchMarker(d.MaliceTierMarkers, line)
}

// MaliceHeader parses a malice title line. cost is nil when the header
// carries none (signature abilities).
func (d *Dialect) MaliceHeader(line string) (name string, cost *int, ok bool) {
	line = strings.TrimSpace(line)
	for _, re := range d.MaliceHeaders {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if i := re.SubexpIndex("name"); i >= 0 {
			name = strings.TrimSpace(m[i])
		}
		if i := re.SubexpIndex("cost"); i >= 0 && m[i] != "" {
			if n, err := strconv.Atoi(m[i]); err == nil {
				cost = &n
			}
		}
		return name, cost, true
	}
	return "", nil, false
}

// IsMaliceHeader reports whether line is a malice title line.
func (d *Dialect) IsMaliceHeader(line string) bool {
	_, _, ok := d.MaliceHeader(line)
	return ok
}

// AnyTier is Tier over the markers of every dialect, since all of them
// name the same three tiers.
func AnyTier(line string) (int, string, bool) {
	for _, d := range builtin {
		if tier, rest, ok := d.Tier(line); ok {
			return tier, rest, true
		}
	}
	return 0, "", false
}

func matchMarker(markers [3][]string, line string) (int, string, bool) {
	line = strings.TrimSpace(line)
	for i, set := range markers {
		for _, marker := range set {
			if rest, ok := cutMarker(line, marker); ok {
				return i + 1, rest, true
			}
		}
	}
	return 0, "", false
}

// cutMarker strips marker from the start of line. A marker made of letters
// or digits must be followed by a space, ':' or '-' so "12 damage" is not
// read as tier 1.
func cutMarker(line, marker string) (string, bool) {
	if len(line) < len(marker) || !strings.EqualFold(line[:len(marker)], marker) {
		return "", false
	}
	rest := line[len(marker):]

	last, _ := utf8.DecodeLastRuneInString(marker)
	if unicode.IsLetter(last) || unicode.IsDigit(last) {
		next, _ := utf8.DecodeRuneInString(rest)
		if rest == "" || !(unicode.IsSpace(next) || next == ':' || next == '-') {
			return "", false
		}
	}

	rest = strings.TrimLeft(rest, " \t:-")
	return strings.TrimSpace(rest), true
}
