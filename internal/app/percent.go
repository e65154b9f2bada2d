package app

import (
	"sort"

	"slopbowl-service/internal/domain"
)

// Percentages converts a score vector into integer percentages that sum to
// exactly 100, using largest-remainder rounding, then orders them for display
// with the declared winner first whenever it is tied at the top.
//
// The one-point transfer distorts the display but never changes the winner;
// it only keeps the declared winner from appearing below a category it tied
// with. A zero total yields all-zero shares and no transfer.
func Percentages(scores domain.ScoreVector, winner domain.Category) []domain.CategoryShare {
	total := scores.Total()

	shares := make([]domain.CategoryShare, 0, len(domain.Categories))
	remainders := make([]int, 0, len(domain.Categories))
	floorSum := 0
	for _, c := range domain.Categories {
		pct, rem := 0, 0
		if total > 0 {
			pct = scores[c] * 100 / total
			rem = scores[c] * 100 % total
		}
		shares = append(shares, domain.CategoryShare{Category: c, Percent: pct})
		remainders = append(remainders, rem)
		floorSum += pct
	}

	if total > 0 {
		// Hand out the rounding shortfall to the largest remainders,
		// enumeration order breaking remaining ties.
		order := []int{0, 1, 2}
		sort.SliceStable(order, func(i, j int) bool {
			return remainders[order[i]] > remainders[order[j]]
		})
		for i := 0; i < 100-floorSum; i++ {
			shares[order[i]].Percent++
		}
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percent > shares[j].Percent
	})

	if total == 0 {
		return shares
	}

	if shares[0].Category != winner {
		for i := 1; i < len(shares); i++ {
			if shares[i].Category == winner && shares[i].Percent == shares[0].Percent {
				shares[i].Percent++
				shares[0].Percent--
				sort.SliceStable(shares, func(i, j int) bool {
					return shares[i].Percent > shares[j].Percent
				})
				break
			}
		}
	} else if len(shares) > 1 && shares[0].Percent == shares[1].Percent {
		shares[0].Percent++
		shares[1].Percent--
	}

	return shares
}
