package enrich

import (
	"regexp"
	"strings"
)

var (
	tierLine    = regexp.MustCompile(`^(?:[!@#✦★✸]\s*|[123áéí]\s+\d|(?i:t[123]|tier [123])\b)`)
	actionLine  = regexp.MustCompile(`^[A-Z][a-z]+(?:,\s*[A-Z][a-z]+)*\s+(?i:main action|triggered action|free triggered action|reaction|maneuver|free maneuver|villain action)$`)
	effectLine  = regexp.MustCompile(`^Effect:`)
	punctuation = regexp.MustCompile(`[.,!?;:"'()]`)
	terminal    = regexp.MustCompile(`[.!?]["']?$`)
)

// IsNarrativeLine guesses whether line is prose. Tier lines, keyword/action
// lines and Effect: lines are not; anything else needs punctuation. This is
// a heuristic and misclassifies some lines.
func IsNarrativeLine(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 2 {
		return false
	}
	if tierLine.MatchString(line) || actionLine.MatchString(line) || effectLine.MatchString(line) {
		return false
	}
	return punctuation.MatchString(line)
}

// Buffer joins wrapped narrative lines into paragraphs. A paragraph closes
// when the buffered text ends a sentence and the following line does not
// look like narrative.
type Buffer struct {
	render  func(string) string
	pending []string
	out     []string
}

// NewBuffer creates a buffer that renders paragraphs with render, or with
// Paragraph when render is nil.
func NewBuffer(render func(string) string) *Buffer {
	if render == nil {
		render = Paragraph
	}
	return &Buffer{render: render}
}

// Add buffers line. next is the following source line, if any.
func (b *Buffer) Add(line string, next string, hasNext bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	b.pending = append(b.pending, line)

	if !terminal.MatchString(line) {
		return
	}
	if hasNext && IsNarrativeLine(next) {
		return
	}
	b.Flush()
}

// Flush closes the pending paragraph, if any.
func (b *Buffer) Flush() {
	if len(b.pending) == 0 {
		return
	}
	b.out = append(b.out, b.render(strings.Join(b.pending, " ")))
	b.pending = nil
}

// Paragraphs flushes and returns every paragraph rendered so far.
func (b *Buffer) Paragraphs() []string {
	b.Flush()
	return b.out
}

// HTML flushes and returns the paragraphs concatenated.
func (b *Buffer) HTML() string {
	return strings.Join(b.Paragraphs(), "")
}

// Paragraphs runs every line through a fresh Buffer.
func Paragraphs(lines []string) []string {
	b := NewBuffer(nil)
	for i, line := range lines {
		hasNext := i+1 < len(lines)
		next := ""
		if hasNext {
			next = lines[i+1]
		}
		b.Add(line, next, hasNext)
	}
	return b.Paragraphs()
}
