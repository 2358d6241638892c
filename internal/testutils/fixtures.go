package testutils

// Sample stat block text shared by orchestrator, handler and command tests.
const (
	// GoblinSniperText is an official dialect stat block with one feature
	// and one signature ability.
	GoblinSniperText = `Goblin Sniper Level 1 Horde Artillery
Goblin, Humanoid EV 3
1S 5 10 0 1
Movement: Climb
Might -2 Agility +2 Reason 0 Intuition 0 Presence -1

Crafty
The goblin doesn't provoke opportunity attacks.
*
Bow 2d10 + 2 Signature Ability
Ranged, Strike, Weapon Main action
Ranged 10 One creature
! 3 damage
@ 5 damage; A<1] they are slowed (save ends)
# 6 damage; push 2; A<2] they are bleeding (save ends)`

	// GoblinSneakText is a maneuver block without a power roll, to be
	// appended to a stat block.
	GoblinSneakText = `
*
Sneak
Magic Maneuver
Self
Effect: The goblin hides.`

	// GoblinSpearText is a melee ability whose name line has no dice, so its
	// roll uses the highest characteristic.
	GoblinSpearText = `
*
Spear Charge Signature Ability
Melee, Strike, Weapon Main action
Melee 1 One creature
! 3 damage
@ 5 damage
# 6 damage`

	// GoblinSniperName is the monster name in GoblinSniperText.
	GoblinSniperName = "Goblin Sniper"

	// GoblinMaliceText is official dialect malice text.
	GoblinMaliceText = `*
Swarm Tactics 3 Malice
Every goblin in the encounter shifts 2.
*
Rain of Arrows 2d10 + 2 5 Malice
! 2 damage
@ 4 damage
# 5 damage`

	// FeatureOnlyText has no header block.
	FeatureOnlyText = `Crafty
The goblin doesn't provoke opportunity attacks.

Nimble
It moves fast.`
)
