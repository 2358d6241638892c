// Package textnorm cleans text copied out of rulebook PDFs.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// glyphs maps OCR ligatures and typographic punctuation to ASCII. It runs
// after NFKC folding, which already handles fi/fl ligatures, no-break
// spaces and dot leaders.
var glyphs = strings.NewReplacer(
	"\u019F", "ti", // Ɵ
	"\u01AB", "tt", // ƫ
	"\u01A9", "t", // Ʃ
	"\uFB01", "fi",
	"\uFB02", "fl",
	"\u014C", "o", // Ō
	"\u2212", "-",
	"\u2010", "-",
	"\u2011", "-",
	"\u2012", "-",
	"\u2013", "-",
	"\u2014", "-",
	"\u2015", "-",
	"\u2018", "'",
	"\u2019", "'",
	"\u201C", `"`,
	"\u201D", `"`,
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\v]+`)
	anySpace        = regexp.MustCompile(`\s+`)
)

func fold(s string) string {
	return glyphs.Replace(norm.NFKC.String(s))
}

// PreservingLines normalizes a whole stat block. Line breaks become "\n",
// horizontal whitespace collapses to one space and each line is trimmed.
// Blank lines are kept, since block boundaries depend on them.
func PreservingLines(s string) string {
	s = fold(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
	}
	return strings.Join(lines, "\n")
}

// Line normalizes a single field: every whitespace run, line breaks
// included, becomes one space.
func Line(s string) string {
	return strings.TrimSpace(anySpace.ReplaceAllString(fold(s), " "))
}

// Lines splits normalized text into its lines.
func Lines(s string) []string {
	return strings.Split(PreservingLines(s), "\n")
}

// NonEmptyLines returns the lines of s that are not blank.
func NonEmptyLines(s string) []string {
	var out []string
	for _, line := range Lines(s) {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
