package openai

import (
	"fmt"
	"strings"

	"slopbowl-service/internal/app"
	"slopbowl-service/internal/domain"
)

// categoryVoice is the example vocabulary fed to the model per category.
type categoryVoice struct {
	modifiers     []string
	secretWeapons []string
}

var voices = map[domain.Category]categoryVoice{
	domain.CategoryChipotle: {
		modifiers: []string{
			"burrito-brained", "foil-wrapped", "guac-adjacent", "double-meat",
			"bowl-maximizing", "queso-dependent", "extra-rice", "lime-wedge",
		},
		secretWeapons: []string{
			"Extra guac", "Double-wrapped burrito", "Tabasco hoarding",
			"The online pickup shelf", "Free chips and queso", "Sofritas curiosity",
		},
	},
	domain.CategorySweetgreen: {
		modifiers: []string{
			"kale-driven", "harvest-bowl-coded", "locally-sourced", "warm-grain-based",
			"dressing-on-the-side", "plant-forward", "seasonal-menu-dependent", "crispy-rice-optimized",
		},
		secretWeapons: []string{
			"Heaping globs of dressing", "Warm grain bowls", "The Harvest Bowl",
			"Crispy rice", "Sweetpass subscription", "Miso-glazed everything",
		},
	},
	domain.CategoryCava: {
		modifiers: []string{
			"pita-chip-pilled", "harissa-drizzled", "feta-crumbled", "grain-bowl-adjacent",
			"tzatziki-based", "mediterranean-coded", "hummus-dependent", "spicy-lamb-optimized",
		},
		secretWeapons: []string{
			"Crazy feta", "Extra pita chips", "Harissa drizzle",
			"Triple hummus", "Spicy lamb meatballs", "Garlic dressing overflow",
		},
	},
}

// summaryLabels maps question IDs to the phrasing used in the choice summary.
var summaryLabels = map[string]string{
	"base":     "corporate archetype",
	"protein":  "superpower",
	"toppings": "quirk",
	"extras":   "when they're extra",
}

func buildPrompt(req app.GenerateRequest) string {
	voice := voices[req.Category]
	category := string(req.Category)

	choices := make([]string, 0, len(req.Answers))
	for _, a := range req.Answers {
		label := summaryLabels[a.QuestionID]
		if label == "" {
			label = a.QuestionID
		}
		choices = append(choices, label+": "+a.OptionID)
	}

	recentBlock := ""
	if len(req.Recent) > 0 {
		lines := make([]string, 0, len(req.Recent))
		for i, entry := range req.Recent {
			lines = append(lines, fmt.Sprintf("%d. Roast: %q | Secret weapon: %q", i+1, entry.Roast, entry.SecretWeapon))
		}
		recentBlock = fmt.Sprintf(`

IMPORTANT - Avoid repeating these recent outputs for %s:
%s

Do NOT reuse any of these roasts, modifiers, nouns, verbs, or secret weapons. Be completely different and original.`,
			category, strings.Join(lines, "\n"))
	}

	b := strings.Builder{}
	b.WriteString(`You are a satirical copywriter for CorporateSlopBowl.com, a personality test that assigns people a fast-casual restaurant identity. The tone is dry, observational, deadpan, and slightly judgmental but never cruel. Think corporate humor for tech workers who know what "all-hands" means.`)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("The user %q has been identified as: %s\n\n", req.Name, category))
	b.WriteString("Their quiz answers: " + strings.Join(choices, ", ") + "\n\n")
	b.WriteString(fmt.Sprintf("Example modifiers for %s: %s\n\n", category, strings.Join(voice.modifiers, ", ")))
	b.WriteString("Generate a roast in this EXACT format:\n")
	b.WriteString(`1. A sentence structured as: "You're a [modifier] [noun] who [verb] [adjective] [direct object]."` + "\n")
	b.WriteString(fmt.Sprintf("   - The modifier should be from or inspired but not directly-drawn by the list above, themed to %s\n", category))
	b.WriteString(`   - The noun should describe their personality (Examples: "idealist", "pragmatist", "optimist", "realist", "strategist"). Use the examples as inspiration but don't draw from them directly.` + "\n")
	b.WriteString("   - The verb should reflect workplace behavior\n")
	b.WriteString("   - The adjective should add color to the direct object\n")
	b.WriteString("   - The direct object should be a corporate trope\n")
	b.WriteString("   - Do NOT add a prepositional phrase - end the sentence after the direct object\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Be creative, funny, and random with your outputs\n")
	b.WriteString("- Reference their specific quiz choices subtly\n")
	b.WriteString("- The humor should feel like an observation, not a punchline\n")
	b.WriteString("- No exclamation points\n")
	b.WriteString("- The roast must be 12 words or fewer - keep it tight and punchy\n")
	b.WriteString(`- Secret weapon must be 4 words or fewer - make it gross/sloppy sounding (e.g., "Leaky dressing packets", "Soggy grain overflow", "Lukewarm queso puddle", "Wilted kale residue")`)
	b.WriteString(recentBlock)
	b.WriteString("\n\nAlso include:\n")
	b.WriteString(fmt.Sprintf("- A secret weapon (something commonly associated with %s, max 4 words, gross/sloppy sounding). Examples: %s\n", category, strings.Join(voice.secretWeapons, ", ")))
	b.WriteString(`- A personality blurb (3-4 words that summarize their vibe, like "Earnest, reflective, and conflicted" or "Loud, confident, and wrong")` + "\n\n")
	b.WriteString("Respond in JSON format:\n")
	b.WriteString(`{
  "roast": "Your roast sentence here",
  "secretWeapon": "Your secret weapon here",
  "blurb": "Your personality blurb here"
}`)
	return b.String()
}
