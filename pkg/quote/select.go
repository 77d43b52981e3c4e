package quote

import (
	"sort"

	"railroute/pkg/domain"
)

// SelectRecommendation picks the cheapest quote among those meeting the
// urgency deadline, falling back to the cheapest overall when none do.
// Ties go to the earlier quote in catalog order. The returned alternatives
// contain every other quote, sorted ascending by total cost (stable).
//
// Fails only on an empty input, which the catalog rules out in practice:
// at most one rail is excludable and the catalog has four.
func SelectRecommendation(quotes []Quote) (Quote, []Quote, error) {
	if len(quotes) == 0 {
		return Quote{}, nil, domain.ErrNoQuotes
	}

	candidates := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.MeetsUrgency {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		candidates = quotes
	}

	selected := candidates[0]
	for _, q := range candidates[1:] {
		if q.TotalCost < selected.TotalCost {
			selected = q
		}
	}

	alternatives := make([]Quote, 0, len(quotes)-1)
	for _, q := range quotes {
		if q.ID != selected.ID {
			alternatives = append(alternatives, q)
		}
	}
	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].TotalCost < alternatives[j].TotalCost
	})

	return selected, alternatives, nil
}
