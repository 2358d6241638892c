package ability

import (
	"regexp"
	"strings"
)

// BlockKind is the classification of a non-header block.
type BlockKind string

// BlockKind constants
const (
	BlockAbility BlockKind = "ability"
	BlockFeature BlockKind = "feature"
)

var (
	times        = strings.NewReplacer("×", "x", "✕", "x", "⨉", "x")
	bookDistance = []*regexp.Regexp{
		regexp.MustCompile(`^Melee\s+\d+`),
		regexp.MustCompile(`^Ranged\s+\d+`),
		regexp.MustCompile(`^Self\b`),
		regexp.MustCompile(`^\d+\s*cube\b`),
		regexp.MustCompile(`^\d+\s*x\s*\d+\s+line\b`),
	}
)

// Classify decides whether a block is an ability or a feature. A block is
// an ability only when it has at least three non-empty lines and the third
// one is a book-format distance line; anything else is a feature.
func Classify(lines []string) BlockKind {
	var nonEmpty []string
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			nonEmpty = append(nonEmpty, line)
		}
	}
	if len(nonEmpty) < 3 {
		return BlockFeature
	}
	if IsDistanceLine(nonEmpty[2]) {
		return BlockAbility
	}
	return BlockFeature
}

// IsDistanceLine reports whether line starts like a book distance line.
func IsDistanceLine(line string) bool {
	line = times.Replace(strings.TrimSpace(line))
	for _, re := range bookDistance {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
