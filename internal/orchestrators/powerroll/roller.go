package powerroll

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
)

// Roller rolls the two d10 of a power roll.
type Roller interface {
	Roll2d10() ([]int, error)
}

// ToolkitRoller rolls with rpg-toolkit.
type ToolkitRoller struct{}

// Roll2d10 rolls and returns both dice
func (ToolkitRoller) Roll2d10() ([]int, error) {
	roll, err := dice.NewRoll(2, 10)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice roll")
	}

	// Description format: "+2d10[3,4]=7"
	description := roll.GetDescription()
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil, errors.Internalf("unexpected roll description %q", description)
	}

	var values []int
	for _, part := range strings.Split(description[start+1:end], ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Internalf("unexpected die value %q", part)
		}
		values = append(values, v)
	}
	if len(values) != 2 {
		return nil, errors.Internalf("expected two dice, got %d", len(values))
	}
	if sum := values[0] + values[1]; sum != roll.GetValue() {
		return nil, errors.Internalf("dice %v do not add up to %d", values, roll.GetValue())
	}
	return values, nil
}

// Fixed returns the same dice every time.
type Fixed [2]int

// Roll2d10 returns the fixed dice
func (f Fixed) Roll2d10() ([]int, error) {
	return []int{f[0], f[1]}, nil
}
