package actor

import (
	"fmt"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
)

// FallbackIcon is used when no lookup entry matches.
const FallbackIcon = "icons/svg/mystery-man.svg"

// IconKey identifies the image of an embedded item. Category is the
// ability category, or empty for features.
type IconKey struct {
	ItemType string
	Category string
}

// IconLookup resolves item images.
type IconLookup interface {
	Icon(key IconKey) string
}

// Icons is a table based IconLookup. A key with an unknown category falls
// back to the entry for its item type alone.
type Icons map[IconKey]string

// Icon implements IconLookup
func (i Icons) Icon(key IconKey) string {
	if img, ok := i[key]; ok {
		return img
	}
	if img, ok := i[IconKey{ItemType: key.ItemType}]; ok {
		return img
	}
	return FallbackIcon
}

// abilityIcons override the plain ability image per category.
var abilityIcons = map[drawsteel.Category]string{
	drawsteel.CategoryManeuver:      "icons/skills/movement/feet-winged-boots-brown.webp",
	drawsteel.CategoryTriggered:     "icons/magic/time/clock-stopwatch-white-blue.webp",
	drawsteel.CategoryFreeTriggered: "icons/magic/time/clock-stopwatch-white-blue.webp",
	drawsteel.CategoryVillain:       "icons/magic/death/skull-horned-worn-fire-blue.webp",
	drawsteel.CategoryMalice:        "icons/magic/unholy/silhouette-robe-evil-power.webp",
}

// DefaultIcons returns the stock images.
func DefaultIcons() Icons {
	icons := Icons{
		{ItemType: drawsteel.ItemTypeFeature}: "icons/svg/book.svg",
		{ItemType: drawsteel.ItemTypeAbility}: "icons/skills/melee/strike-polearm-glowing-white.webp",
	}
	for category, img := range abilityIcons {
		icons[IconKey{ItemType: drawsteel.ItemTypeAbility, Category: string(category)}] = img
	}
	return icons
}

// RoleImage is the actor portrait for a role. Minions share one image
// whatever their role.
func RoleImage(role, organization string) string {
	if organization == "minion" {
		role = "minion"
	}
	if role == "" {
		return FallbackIcon
	}
	return fmt.Sprintf("systems/draw-steel/assets/roles/%s.webp", role)
}
