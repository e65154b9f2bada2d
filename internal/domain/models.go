package domain

// Category is one of the three fixed restaurant identities the quiz can assign.
type Category string

const (
	CategoryChipotle   Category = "Chipotle"
	CategorySweetgreen Category = "Sweetgreen"
	CategoryCava       Category = "Cava"
)

// Categories lists every category in enumeration order. Tie fallbacks and
// remainder distribution depend on this order being stable.
var Categories = []Category{CategoryChipotle, CategorySweetgreen, CategoryCava}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryChipotle, CategorySweetgreen, CategoryCava:
		return true
	}
	return false
}

// Option represents a possible answer for a question.
type Option struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
}

// Question models one quiz step; its weight is copied onto answers at selection time.
type Question struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Title   string   `json:"title"`
	Weight  int      `json:"weight"` // defaults to 1 if zero
	Options []Option `json:"options"`
}

// Catalog is the ordered question set for one quiz.
type Catalog struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// PrimaryQuestionID returns the ID of the tie-break question: the first
// question carrying the highest weight.
func (c Catalog) PrimaryQuestionID() string {
	id := ""
	best := 0
	for _, q := range c.Questions {
		w := q.Weight
		if w == 0 {
			w = 1
		}
		if w > best {
			best = w
			id = q.ID
		}
	}
	return id
}

// Answer is one selected option, with the question's weight copied in by the
// client at selection time. Scoring trusts these fields as submitted.
type Answer struct {
	QuestionID string   `json:"questionId"`
	OptionID   string   `json:"optionId"`
	Category   Category `json:"category"`
	Weight     int      `json:"weight"`
}

// ScoreVector accumulates weighted points per category for one submission.
type ScoreVector map[Category]int

// Total sums the vector across all categories.
func (v ScoreVector) Total() int {
	total := 0
	for _, c := range Categories {
		total += v[c]
	}
	return total
}

// Result is the outcome of scoring one submission.
type Result struct {
	Winner Category    `json:"winner"`
	Scores ScoreVector `json:"scores"`
}

// CategoryShare is one row of the normalized percentage display.
type CategoryShare struct {
	Category Category `json:"category"`
	Percent  int      `json:"percent"`
}

// Roast is the complete generated (or fallback) text triple for a result.
type Roast struct {
	Category     Category `json:"category"`
	Roast        string   `json:"roast"`
	SecretWeapon string   `json:"secretWeapon"`
	Blurb        string   `json:"blurb"`
}

// HistoryEntry is the reusable part of a past roast, kept per category to
// steer generation away from repetition.
type HistoryEntry struct {
	Roast        string `json:"roast"`
	SecretWeapon string `json:"secretWeapon"`
}
