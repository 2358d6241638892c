// Package drawsteel holds the records produced by the stat block pipeline.
package drawsteel

// Characteristic is one of the five monster characteristics.
type Characteristic string

// Characteristic constants
const (
	CharacteristicMight     Characteristic = "might"
	CharacteristicAgility   Characteristic = "agility"
	CharacteristicReason    Characteristic = "reason"
	CharacteristicIntuition Characteristic = "intuition"
	CharacteristicPresence  Characteristic = "presence"
	CharacteristicNone      Characteristic = "none"
)

// CharacteristicOrder is the fixed scan order used for tie-breaks.
func CharacteristicOrder() [5]Characteristic {
	return [5]Characteristic{
		CharacteristicMight,
		CharacteristicAgility,
		CharacteristicReason,
		CharacteristicIntuition,
		CharacteristicPresence,
	}
}

// CharacteristicFromLetter maps the m/a/r/i/p threshold shorthand.
func CharacteristicFromLetter(letter string) Characteristic {
	switch letter {
	case "m", "M":
		return CharacteristicMight
	case "a", "A":
		return CharacteristicAgility
	case "r", "R":
		return CharacteristicReason
	case "i", "I":
		return CharacteristicIntuition
	case "p", "P":
		return CharacteristicPresence
	default:
		return CharacteristicNone
	}
}

// Category is the resolved action type of an ability.
type Category string

// Category constants
const (
	CategoryMain          Category = "main"
	CategoryManeuver      Category = "maneuver"
	CategoryTriggered     Category = "triggered"
	CategoryFreeTriggered Category = "freeTriggered"
	CategoryVillain       Category = "villain"
	CategorySignature     Category = "signature"
	CategoryMalice        Category = "malice"
)

// DistanceType is the shape of an ability's distance.
type DistanceType string

// DistanceType constants
const (
	DistanceMelee       DistanceType = "melee"
	DistanceRanged      DistanceType = "ranged"
	DistanceMeleeRanged DistanceType = "meleeRanged"
	DistanceReach       DistanceType = "reach"
	DistanceSelf        DistanceType = "self"
	DistanceCube        DistanceType = "cube"
	DistanceBurst       DistanceType = "burst"
	DistanceLine        DistanceType = "line"
	DistanceCone        DistanceType = "cone"
	DistanceWall        DistanceType = "wall"
	DistanceAura        DistanceType = "aura"
	DistanceSpecial     DistanceType = "special"
)

// TargetType is the entity class an ability targets.
type TargetType string

// TargetType constants
const (
	TargetCreature       TargetType = "creature"
	TargetObject         TargetType = "object"
	TargetCreatureObject TargetType = "creatureObject"
	TargetEnemy          TargetType = "enemy"
	TargetAlly           TargetType = "ally"
	TargetSelfOrAlly     TargetType = "selfOrAlly"
	TargetSelfOrCreature TargetType = "selfOrCreature"
	TargetSelfAlly       TargetType = "selfAlly"
	TargetSelf           TargetType = "self"
	TargetSpecial        TargetType = "special"
)

// Potency tags for tiers 1..3.
const (
	PotencyWeak    = "weak"
	PotencyAverage = "average"
	PotencyStrong  = "strong"
)

// DefaultPotencies returns the weak/average/strong tags indexed by tier-1.
func DefaultPotencies() [3]string {
	return [3]string{PotencyWeak, PotencyAverage, PotencyStrong}
}

// Duration end types
const (
	EndSave      = "save"
	EndTurn      = "turn"
	EndRound     = "round"
	EndEncounter = "encounter"
)
