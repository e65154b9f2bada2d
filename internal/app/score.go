package app

import "slopbowl-service/internal/domain"

// Score folds answers into a per-category weighted total. Weights are taken
// from the answers as submitted; there is no cross-check against the catalog.
func Score(answers []domain.Answer) domain.ScoreVector {
	scores := make(domain.ScoreVector, len(domain.Categories))
	for _, c := range domain.Categories {
		scores[c] = 0
	}
	for _, a := range answers {
		scores[a.Category] += a.Weight
	}
	return scores
}

// Winner picks the category with the highest score. Ties are broken by the
// answer to the primary question; whether that category is actually among the
// tied set is deliberately not checked, matching the shipped behavior. With
// no answers at all, the first category in enumeration order wins.
func Winner(scores domain.ScoreVector, answers []domain.Answer, primaryQuestionID string) domain.Category {
	max := scores[domain.Categories[0]]
	for _, c := range domain.Categories[1:] {
		if scores[c] > max {
			max = scores[c]
		}
	}

	tied := make([]domain.Category, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		if scores[c] == max {
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}

	for _, a := range answers {
		if a.QuestionID == primaryQuestionID {
			return a.Category
		}
	}
	return tied[0]
}
