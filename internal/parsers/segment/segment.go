// Package segment cuts a raw stat block into its header block and the
// feature/ability blocks that follow it.
package segment

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/textnorm"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

// Segments is the result of splitting one stat block.
type Segments struct {
	// Header holds the lines of the header block, nil when no block looked
	// like a header.
	Header []string
	// Blocks are the remaining non-empty blocks in source order.
	Blocks [][]string
}

// HasHeader reports whether a header block was found.
func (s *Segments) HasHeader() bool {
	return len(s.Header) > 0
}

// Config configures a Segmenter.
type Config struct {
	Dialect    *dialect.Dialect
	Vocabulary *vocab.Tables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dialect == nil {
		vb.RequiredField("Dialect")
	}
	if c.Vocabulary == nil {
		vb.RequiredField("Vocabulary")
	}
	return vb.Build()
}

// Segmenter splits raw text according to a dialect.
type Segmenter struct {
	segmentation dialect.Segmentation
	signature    []*regexp.Regexp
}

// NewSegmenter creates a segmenter
func NewSegmenter(cfg *Config) (*Segmenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ranks := append(cfg.Vocabulary.Organizations(), cfg.Vocabulary.Roles()...)
	for i, r := range ranks {
		ranks[i] = regexp.QuoteMeta(r)
	}

	return &Segmenter{
		segmentation: cfg.Dialect.Segmentation,
		signature: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bLevel\s+\d+\s+(?:` + strings.Join(ranks, "|") + `)\b`),
			regexp.MustCompile(`(?i)\bEV\s*\d+`),
			regexp.MustCompile(`(?i)\bMight\s+[+-]?\d+`),
			regexp.MustCompile(`(?i)\bImmunity:`),
			regexp.MustCompile(`(?i)\bWeakness:`),
		},
	}, nil
}

// Segment normalizes raw and splits it. The first block that carries a
// header signature becomes the header wherever it sits; every other block
// is kept in order.
func (s *Segmenter) Segment(raw string) *Segments {
	out := &Segments{}
	for _, block := range Split(textnorm.PreservingLines(raw), s.segmentation) {
		lines := nonEmpty(block)
		if len(lines) == 0 {
			continue
		}
		if out.Header == nil && s.IsHeader(lines) {
			out.Header = lines
			continue
		}
		out.Blocks = append(out.Blocks, lines)
	}
	return out
}

// IsHeader reports whether lines carry a header signature: a level and
// rank phrase, an EV marker, a characteristics line or resistances.
func (s *Segmenter) IsHeader(lines []string) bool {
	text := strings.Join(lines, "\n")
	for _, re := range s.signature {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Split cuts normalized text into raw blocks.
func Split(text string, seg dialect.Segmentation) []string {
	lines := strings.Split(text, "\n")
	delimiter := seg.Delimiter

	var (
		blocks  []string
		current []string
	)
	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}
		current = nil
	}

	switch seg.Strategy {
	case dialect.StrategyBlankRuns:
		minBlank := max(seg.MinBlankLines, 1)
		blank := 0
		for _, line := range lines {
			if delimiter != "" && line == delimiter {
				flush()
				blank = 0
				continue
			}
			if line == "" {
				blank++
				if blank == minBlank {
					flush()
				}
				continue
			}
			blank = 0
			current = append(current, line)
		}

	default:
		for i, line := range lines {
			if delimiter != "" && line == delimiter && isBlank(lines, i-1) && isBlank(lines, i+1) {
				flush()
				continue
			}
			current = append(current, line)
		}
	}

	flush()
	return blocks
}

// isBlank treats positions outside the text as blank so a delimiter on the
// first or last line still splits.
func isBlank(lines []string, i int) bool {
	return i < 0 || i >= len(lines) || lines[i] == ""
}

func nonEmpty(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
