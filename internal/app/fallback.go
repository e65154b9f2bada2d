package app

import "slopbowl-service/internal/domain"

// fallbackRoasts are the pre-authored triples served whenever live
// generation fails. Content is fixed so the failure path stays deterministic.
var fallbackRoasts = map[domain.Category]domain.Roast{
	domain.CategoryChipotle: {
		Category:     domain.CategoryChipotle,
		Roast:        "You're a foil-wrapped pragmatist who avoids uncomfortable eye contact.",
		SecretWeapon: "Lukewarm queso puddle",
		Blurb:        "Practical, unbothered, and efficient",
	},
	domain.CategorySweetgreen: {
		Category:     domain.CategorySweetgreen,
		Roast:        "You're a kale-driven idealist who schedules unnecessary meetings.",
		SecretWeapon: "Soggy grain residue",
		Blurb:        "Earnest, reflective, and conflicted",
	},
	domain.CategoryCava: {
		Category:     domain.CategoryCava,
		Roast:        "You're a harissa-drizzled opportunist who ignores passive-aggressive emails.",
		SecretWeapon: "Leaky tzatziki spillage",
		Blurb:        "Bold, social, and slightly chaotic",
	},
}

// FallbackRoast returns the static triple for a category.
func FallbackRoast(category domain.Category) domain.Roast {
	return fallbackRoasts[category]
}
