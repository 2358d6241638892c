package conditions

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
)

// SaveRoll is the roll formula attached to save-ends durations.
const SaveRoll = "1d10 + @combat.save.bonus"

var (
	roundPhrase     = regexp.MustCompile(`until (?:the )?end of (?:the )?round`)
	turnPhrase      = regexp.MustCompile(`until (?:the )?end of (?:the |their |its |your )?(?:next )?turn|\(eot\)|\beot\b`)
	encounterPhrase = regexp.MustCompile(`until (?:the )?end of (?:the )?encounter|until .* disappears`)
)

func one() *int {
	n := 1
	return &n
}

// ParseDuration maps a duration phrase to its canonical end condition.
// Anything unrecognized lasts until the end of the turn.
func ParseDuration(text string) drawsteel.Duration {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "save ends"):
		return drawsteel.Duration{End: drawsteel.EndSave, Roll: SaveRoll}
	case roundPhrase.MatchString(lower):
		return drawsteel.Duration{End: drawsteel.EndRound, Rounds: one()}
	case turnPhrase.MatchString(lower):
		return drawsteel.Duration{End: drawsteel.EndTurn, Rounds: one()}
	case encounterPhrase.MatchString(lower):
		return drawsteel.Duration{End: drawsteel.EndEncounter}
	default:
		return drawsteel.Duration{End: drawsteel.EndTurn, Rounds: one()}
	}
}

// enricherEnds maps bracketed duration text to the end token used by
// inline apply references.
var enricherEnds = []struct {
	phrase string
	end    string
}{
	{"save ends", "save"},
	{"save", "save"},
	{"start of turn", "start"},
	{"until moved", "untilMoved"},
	{"until damaged", "untilDamaged"},
	{"end of round", "endRound"},
	{"end of encounter", "endEncounter"},
	{"end of turn", "end"},
	{"eot", "end"},
}

// EnricherEnd returns the inline reference end token for a bracketed
// duration, or "" when none applies.
func EnricherEnd(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, e := range enricherEnds {
		if strings.Contains(lower, e.phrase) {
			return e.end
		}
	}
	return ""
}
