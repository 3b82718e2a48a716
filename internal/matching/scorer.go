package matching

import "github.com/jpp0ca/linkport/internal/domain"

// Weights applied to title and artist similarity.
const (
	titleWeight  = 0.7
	artistWeight = 0.3
)

// Score returns the weighted confidence in [0,1] that candidate is the same
// song as original.
func Score(original, candidate domain.Track) float64 {
	titleScore := Similarity(original.Title, candidate.Title)
	artistScore := Similarity(original.Artist, candidate.Artist)
	return titleScore*titleWeight + artistScore*artistWeight
}
