package powerroll

import (
	"regexp"
	"strconv"
	"strings"
)

// Tier thresholds on the power roll total.
const (
	Tier2Min = 12
	Tier3Min = 17

	// EdgeBonus is added per net edge and subtracted per net bane.
	EdgeBonus = 2

	// CriticalMin is the natural roll that always lands on tier 3.
	CriticalMin = 19
)

var bonusPattern = regexp.MustCompile(`(?i)^\s*2d10\s*(?:([+-])\s*(\d+))?\s*$`)

// TierFor maps a total to its tier: 11 or less is tier 1, 12 to 16 tier 2,
// 17 and up tier 3.
func TierFor(total int) int {
	switch {
	case total >= Tier3Min:
		return 3
	case total >= Tier2Min:
		return 2
	default:
		return 1
	}
}

// NetEdges cancels edges against banes and clamps the result to -2..2.
func NetEdges(edges, banes int) int {
	net := edges - banes
	if net > 2 {
		return 2
	}
	if net < -2 {
		return -2
	}
	return net
}

// Resolve turns dice, a characteristic bonus and net edges into the bonus
// actually applied, the total and the tier. A single edge or bane moves the
// total; a double one moves the tier instead. A natural 19 or 20 is tier 3.
func Resolve(dice []int, bonus, net int) (applied, total, tier int) {
	natural := 0
	for _, d := range dice {
		natural += d
	}

	applied = bonus
	switch net {
	case 1:
		applied += EdgeBonus
	case -1:
		applied -= EdgeBonus
	}

	total = natural + applied
	tier = TierFor(total)
	switch net {
	case 2:
		tier = min(tier+1, 3)
	case -2:
		tier = max(tier-1, 1)
	}
	if natural >= CriticalMin {
		tier = 3
	}
	return applied, total, tier
}

// FormulaBonus reads the flat bonus of a "2d10 + N" formula. ok is false
// when the formula is not a power roll.
func FormulaBonus(formula string) (bonus int, hasBonus, ok bool) {
	m := bonusPattern.FindStringSubmatch(strings.TrimSpace(formula))
	if m == nil {
		return 0, false, false
	}
	if m[2] == "" {
		return 0, false, true
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false, false
	}
	if m[1] == "-" {
		n = -n
	}
	return n, true, true
}
