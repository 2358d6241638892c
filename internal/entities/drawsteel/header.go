package drawsteel

// Characteristics are the five signed monster stats.
type Characteristics struct {
	Might     int `json:"might"`
	Agility   int `json:"agility"`
	Reason    int `json:"reason"`
	Intuition int `json:"intuition"`
	Presence  int `json:"presence"`
}

// Value returns the score for c, zero for CharacteristicNone.
func (c Characteristics) Value(ch Characteristic) int {
	switch ch {
	case CharacteristicMight:
		return c.Might
	case CharacteristicAgility:
		return c.Agility
	case CharacteristicReason:
		return c.Reason
	case CharacteristicIntuition:
		return c.Intuition
	case CharacteristicPresence:
		return c.Presence
	default:
		return 0
	}
}

// Highest returns the characteristic with the strictly greatest value.
// Ties keep the earlier characteristic in CharacteristicOrder, so an all-equal
// set resolves to might.
func (c Characteristics) Highest() Characteristic {
	order := CharacteristicOrder()
	best := order[0]
	for _, ch := range order[1:] {
		if c.Value(ch) > c.Value(best) {
			best = ch
		}
	}
	return best
}

// DamageMap maps damage type to a resistance value. Every slot of the
// vocabulary is present.
type DamageMap map[string]int

// NewDamageMap returns a map with every slot set to zero.
func NewDamageMap(slots []string) DamageMap {
	m := make(DamageMap, len(slots))
	for _, slot := range slots {
		m[slot] = 0
	}
	return m
}

// Header is the monster metadata pulled from the header block.
type Header struct {
	Name                  string          `json:"name"`
	Level                 int             `json:"level"`
	Role                  string          `json:"role"`
	Organization          string          `json:"organization"`
	Characteristics       Characteristics `json:"characteristics"`
	HighestCharacteristic Characteristic  `json:"highestCharacteristic"`
	Size                  int             `json:"size"`
	SizeLetter            string          `json:"sizeLetter"`
	Speed                 int             `json:"speed"`
	Stamina               int             `json:"stamina"`
	Stability             int             `json:"stability"`
	FreeStrike            int             `json:"freeStrike"`
	MovementTypes         []string        `json:"movementTypes"`
	WithCaptain           string          `json:"withCaptain,omitempty"`
	Immunities            DamageMap       `json:"immunities"`
	Weaknesses            DamageMap       `json:"weaknesses"`
	EV                    int             `json:"ev"`
	Keywords              []string        `json:"keywords"`
}

// HighestOrDefault is the fallback potency characteristic for consumers
// that may not have a header.
func (h *Header) HighestOrDefault() Characteristic {
	if h == nil || h.HighestCharacteristic == "" {
		return CharacteristicMight
	}
	return h.HighestCharacteristic
}
