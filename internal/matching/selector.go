package matching

import "github.com/jpp0ca/linkport/internal/domain"

// SelectBest scores every candidate and builds the verdict for original. Ties
// go to the earlier candidate. Up to two of the remaining candidates are kept
// as alternatives in their search order.
func SelectBest(original domain.Track, candidates []domain.Track) domain.Match {
	if len(candidates) == 0 {
		return domain.NotFound(original)
	}

	bestIdx := -1
	bestScore := 0.0
	for i, c := range candidates {
		if s := Score(original, c); bestIdx < 0 || s > bestScore {
			bestIdx, bestScore = i, s
		}
	}

	alternatives := make([]domain.Track, 0, domain.MaxAlternatives)
	for i, c := range candidates {
		if i == bestIdx {
			continue
		}
		if len(alternatives) == domain.MaxAlternatives {
			break
		}
		alternatives = append(alternatives, c)
	}

	best := candidates[bestIdx]
	return domain.Scored(
		original,
		domain.ScoredTrack{Track: best, Confidence: bestScore},
		alternatives,
		ClassifyVariant(best.Title, best.Artist),
	)
}
