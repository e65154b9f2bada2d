package domain

// DefaultCatalogID names the built-in quiz.
const DefaultCatalogID = "corporateslopbowl"

// DefaultCatalog returns the built-in question set. It is used directly when
// no Postgres catalog is configured and as the seed for the catalogs table.
func DefaultCatalog() Catalog {
	return Catalog{
		ID: DefaultCatalogID,
		Questions: []Question{
			{
				ID:     "base",
				Label:  "Choose a base",
				Title:  "Which corporate archetype best describes you?",
				Weight: 3,
				Options: []Option{
					{ID: "soldier", Text: "The Soldier", Description: "Does what they're told. Never questions the roadmap.", Category: CategorySweetgreen},
					{ID: "coaster", Text: "The Coaster", Description: "Puts in the minimum viable effort.", Category: CategoryChipotle},
					{ID: "vampire", Text: "The Vampire", Description: "Lives in dark mode. Literally and emotionally.", Category: CategoryCava},
					{ID: "existentialist", Text: "The Existentialist", Description: "Questions the purpose of the stand-up. Daily.", Category: CategorySweetgreen},
					{ID: "lion", Text: "The Lion", Description: "Loudest and most incorrect in the room.", Category: CategoryCava},
				},
			},
			{
				ID:     "protein",
				Label:  "Add protein",
				Title:  "What's your corporate superpower?",
				Weight: 2,
				Options: []Option{
					{ID: "shapeshifting", Text: "Shapeshifting", Description: "Has a personality to match every Slack channel.", Category: CategoryChipotle},
					{ID: "xray", Text: "X-ray vision", Description: "Sees through it all. Says nothing.", Category: CategorySweetgreen},
					{ID: "snake", Text: "Snake charming", Description: "Makes terrible ideas sound strategic.", Category: CategoryCava},
					{ID: "strength", Text: "Super strength", Description: "Does the work of three. Paid as one.", Category: CategoryCava},
					{ID: "invisibility", Text: "Invisibility", Description: "Survives every reorg unnoticed.", Category: CategoryChipotle},
				},
			},
			{
				ID:     "toppings",
				Label:  "Toppings",
				Title:  "What is your corporate quirk?",
				Weight: 2,
				Options: []Option{
					{ID: "mansplaining", Text: "Mansplaining", Description: "Explains what everyone already knows. In detail.", Category: CategoryCava},
					{ID: "spine", Text: "Lacking a spine", Description: "Says 'sounds good' to everything.", Category: CategorySweetgreen},
					{ID: "nitpicking", Text: "Nitpicking", Description: "Fixates on the typo in a 40-page slide deck.", Category: CategoryChipotle},
					{ID: "interrupting", Text: "Interrupting", Description: "Finishes everyone's sentences. Incorrectly.", Category: CategoryCava},
					{ID: "circles", Text: "Talking in circles", Description: "Uses 50 words when 5 would do.", Category: CategoryChipotle},
				},
			},
			{
				ID:     "extras",
				Label:  "Extras",
				Title:  "When are you most extra at work?",
				Weight: 1,
				Options: []Option{
					{ID: "holiday", Text: "Company holiday party", Description: "Peaks at open bar. Regrets it by Monday.", Category: CategorySweetgreen},
					{ID: "allhands", Text: "All-hands Q&A", Description: "Has follow-up questions to their follow-up questions.", Category: CategoryChipotle},
					{ID: "oneone", Text: "One-on-ones", Description: "Turns every check-in into a therapy session.", Category: CategorySweetgreen},
					{ID: "icebreaker", Text: "The meeting icebreaker", Description: "Loses sleep over coming up with a fun fact.", Category: CategoryCava},
					{ID: "gossip", Text: "Lunchtime gossip", Description: "Has inside sources in every department.", Category: CategorySweetgreen},
				},
			},
		},
	}
}
