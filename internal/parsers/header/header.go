// Package header extracts monster metadata from the header block.
//
// Each field has its own pattern and is searched for independently, so a
// field that fails to match keeps its zero value and the rest still parse.
package header

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/textnorm"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

var (
	levelPattern    = regexp.MustCompile(`(?i)\bLevel\s+(\d+)`)
	evPattern       = regexp.MustCompile(`(?i)\bEV\s*(\d+)`)
	mightPattern    = regexp.MustCompile(`(?i)\bMight\b`)
	statLine        = regexp.MustCompile(`^(\d+)([TSMLtsml])?\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s*$`)
	sizeLabel       = regexp.MustCompile(`(?i)\bSize\s+(\d+)\s*([TSML])?\b`)
	immunityPattern = regexp.MustCompile(`(?i)\bImmunit(?:y|ies):\s*(.*?)\s*(?:\bWeakness(?:es)?:|$)`)
	weaknessPattern = regexp.MustCompile(`(?i)\bWeakness(?:es)?:\s*(.*?)\s*(?:\bImmunit(?:y|ies):|$)`)
	movementPattern = regexp.MustCompile(`(?i)^Movement:\s*(.*)$`)
	captainPattern  = regexp.MustCompile(`(?i)\bWith Captain:\s*(.+)$`)
	resistEntry     = regexp.MustCompile(`^(.+?)\s+(\d+)$`)
	listSeparator   = regexp.MustCompile(`[,;]`)
)

var characteristicPatterns = map[drawsteel.Characteristic]*regexp.Regexp{
	drawsteel.CharacteristicMight:     regexp.MustCompile(`(?i)\bMight\s*([+-]?\d+)`),
	drawsteel.CharacteristicAgility:   regexp.MustCompile(`(?i)\bAgility\s*([+-]?\d+)`),
	drawsteel.CharacteristicReason:    regexp.MustCompile(`(?i)\bReason\s*([+-]?\d+)`),
	drawsteel.CharacteristicIntuition: regexp.MustCompile(`(?i)\bIntuition\s*([+-]?\d+)`),
	drawsteel.CharacteristicPresence:  regexp.MustCompile(`(?i)\bPresence\s*([+-]?\d+)`),
}

var labelled = []struct {
	re  *regexp.Regexp
	set func(h *drawsteel.Header, v int)
}{
	{regexp.MustCompile(`(?i)\bSpeed\s+(\d+)`), func(h *drawsteel.Header, v int) { h.Speed = v }},
	{regexp.MustCompile(`(?i)\bStamina\s+(\d+)`), func(h *drawsteel.Header, v int) { h.Stamina = v }},
	{regexp.MustCompile(`(?i)\bStability\s+(\d+)`), func(h *drawsteel.Header, v int) { h.Stability = v }},
	{regexp.MustCompile(`(?i)\bFree Strike\s+(\d+)`), func(h *drawsteel.Header, v int) { h.FreeStrike = v }},
}

// Config configures an Extractor.
type Config struct {
	Vocabulary *vocab.Tables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Vocabulary == nil {
		vb.RequiredField("Vocabulary")
	}
	return vb.Build()
}

// Extractor reads header blocks.
type Extractor struct {
	vocabulary *vocab.Tables
}

// NewExtractor creates a header extractor
func NewExtractor(cfg *Config) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Extractor{vocabulary: cfg.Vocabulary}, nil
}

// Parse extracts a header from the block's lines. Vocabulary misses are
// dropped and reported as notices. An empty block yields a nil header.
func (e *Extractor) Parse(block []string) (*drawsteel.Header, []drawsteel.Notice) {
	lines := make([]string, 0, len(block))
	for _, line := range block {
		if line = textnorm.Line(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, []drawsteel.Notice{{Kind: drawsteel.NoticeEmptyBlock, Field: "header"}}
	}

	h := &drawsteel.Header{
		MovementTypes: []string{},
		Keywords:      []string{},
		Immunities:    drawsteel.NewDamageMap(e.vocabulary.DamageTypes()),
		Weaknesses:    drawsteel.NewDamageMap(e.vocabulary.DamageTypes()),
	}
	var notices []drawsteel.Notice

	e.parseIdentity(h, lines)
	notices = append(notices, e.parseKeywords(h, lines)...)
	parseCharacteristics(h, lines)
	parseStats(h, lines)
	notices = append(notices, e.parseResistances(h, lines)...)
	notices = append(notices, e.parseMovement(h, lines)...)

	h.HighestCharacteristic = h.Characteristics.Highest()
	return h, notices
}

// parseIdentity reads "<name> Level <n> <organization> <role>".
func (e *Extractor) parseIdentity(h *drawsteel.Header, lines []string) {
	line, m := firstMatch(levelPattern, lines)
	if m == nil {
		return
	}
	h.Level, _ = strconv.Atoi(m[1])

	loc := levelPattern.FindStringIndex(line)
	h.Name = strings.TrimSpace(line[:loc[0]])

	tokens := strings.Fields(strings.ToLower(line[loc[1]:]))
	orgAt := -1
	for i, tok := range tokens {
		if e.vocabulary.IsOrganization(tok) {
			h.Organization = tok
			orgAt = i
			break
		}
	}
	// Minion, leader and solo are both ranks and roles. Prefer a role word
	// other than the one already used as the organization.
	for i, tok := range tokens {
		if i != orgAt && e.vocabulary.IsRole(tok) {
			h.Role = tok
			return
		}
	}
	if orgAt >= 0 && e.vocabulary.IsRole(tokens[orgAt]) {
		h.Role = tokens[orgAt]
	}
}

// parseKeywords reads "<keyword>, <keyword> EV <n>". Keywords are filtered
// against the ancestry vocabulary.
func (e *Extractor) parseKeywords(h *drawsteel.Header, lines []string) []drawsteel.Notice {
	line, m := firstMatch(evPattern, lines)
	if m == nil {
		return nil
	}
	h.EV, _ = strconv.Atoi(m[1])

	var notices []drawsteel.Notice
	before := line[:evPattern.FindStringIndex(line)[0]]
	for _, tok := range splitList(before) {
		kw := strings.ToLower(tok)
		switch {
		case e.vocabulary.IsAncestry(kw):
			h.Keywords = append(h.Keywords, kw)
		case e.vocabulary.IsCustomAncestry(kw):
			notices = append(notices, drawsteel.Notice{Kind: drawsteel.NoticeCustomAncestry, Field: "keywords", Value: kw})
		default:
			notices = append(notices, drawsteel.Notice{Kind: drawsteel.NoticeUnknownAncestry, Field: "keywords", Value: kw})
		}
	}
	return notices
}

func parseCharacteristics(h *drawsteel.Header, lines []string) {
	line, m := firstMatch(mightPattern, lines)
	if m == nil {
		return
	}
	value := func(ch drawsteel.Characteristic) int {
		if m := characteristicPatterns[ch].FindStringSubmatch(line); m != nil {
			v, _ := strconv.Atoi(m[1])
			return v
		}
		return 0
	}
	h.Characteristics = drawsteel.Characteristics{
		Might:     value(drawsteel.CharacteristicMight),
		Agility:   value(drawsteel.CharacteristicAgility),
		Reason:    value(drawsteel.CharacteristicReason),
		Intuition: value(drawsteel.CharacteristicIntuition),
		Presence:  value(drawsteel.CharacteristicPresence),
	}
}

// parseStats reads the "size speed stamina stability freeStrike" line. When
// it is missing, labelled values anywhere in the block are used instead.
func parseStats(h *drawsteel.Header, lines []string) {
	if _, m := firstMatch(statLine, lines); m != nil {
		h.Size, _ = strconv.Atoi(m[1])
		h.SizeLetter = strings.ToUpper(m[2])
		h.Speed, _ = strconv.Atoi(m[3])
		h.Stamina, _ = strconv.Atoi(m[4])
		h.Stability, _ = strconv.Atoi(m[5])
		h.FreeStrike, _ = strconv.Atoi(m[6])
	} else {
		if _, m := firstMatch(sizeLabel, lines); m != nil {
			h.Size, _ = strconv.Atoi(m[1])
			h.SizeLetter = strings.ToUpper(m[2])
		}
		for _, l := range labelled {
			if _, m := firstMatch(l.re, lines); m != nil {
				v, _ := strconv.Atoi(m[1])
				l.set(h, v)
			}
		}
	}

	if h.Size == 0 {
		h.Size = 1
	}
	if h.Size == 1 && h.SizeLetter == "" {
		h.SizeLetter = "M"
	}
}

func (e *Extractor) parseResistances(h *drawsteel.Header, lines []string) []drawsteel.Notice {
	var notices []drawsteel.Notice
	if _, m := firstMatch(immunityPattern, lines); m != nil {
		notices = append(notices, fillDamageMap(h.Immunities, "immunities", m[1])...)
	}
	if _, m := firstMatch(weaknessPattern, lines); m != nil {
		notices = append(notices, fillDamageMap(h.Weaknesses, "weaknesses", m[1])...)
	}
	return notices
}

// fillDamageMap writes "<type> <value>" entries into dm. A lone dash means
// none. Types without a slot are dropped with a notice.
func fillDamageMap(dm drawsteel.DamageMap, field, text string) []drawsteel.Notice {
	var notices []drawsteel.Notice
	for _, entry := range splitList(text) {
		if strings.Trim(entry, "-") == "" {
			continue
		}
		kind, value := entry, 0
		if m := resistEntry.FindStringSubmatch(entry); m != nil {
			kind = m[1]
			value, _ = strconv.Atoi(m[2])
		}
		kind = strings.ToLower(strings.TrimSpace(kind))
		if _, ok := dm[kind]; !ok {
			notices = append(notices, drawsteel.Notice{Kind: drawsteel.NoticeUnknownDamageType, Field: field, Value: kind})
			continue
		}
		dm[kind] = value
	}
	return notices
}

func (e *Extractor) parseMovement(h *drawsteel.Header, lines []string) []drawsteel.Notice {
	if _, m := firstMatch(captainPattern, lines); m != nil {
		h.WithCaptain = strings.TrimSpace(m[1])
	}

	_, m := firstMatch(movementPattern, lines)
	if m == nil {
		return nil
	}
	text := m[1]
	if loc := captainPattern.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	var notices []drawsteel.Notice
	for _, tok := range splitList(text) {
		mv := strings.ToLower(tok)
		if !e.vocabulary.IsMovement(mv) {
			notices = append(notices, drawsteel.Notice{Kind: drawsteel.NoticeUnknownMovement, Field: "movement", Value: mv})
			continue
		}
		h.MovementTypes = append(h.MovementTypes, mv)
	}
	return notices
}

func firstMatch(re *regexp.Regexp, lines []string) (string, []string) {
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			return line, m
		}
	}
	return "", nil
}

func splitList(text string) []string {
	var out []string
	for _, part := range listSeparator.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
