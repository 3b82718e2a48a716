package matching

import (
	"strings"

	"github.com/jpp0ca/linkport/internal/domain"
)

// ClassifyVariant guesses what kind of release a candidate is from its title
// and artist. The checks are case-sensitive and the first hit wins.
func ClassifyVariant(title, artist string) domain.Variant {
	switch {
	case strings.Contains(title, "Remaster"):
		return domain.VariantRemastered
	case strings.Contains(title, "Live"):
		return domain.VariantLive
	case strings.Contains(title, "Acoustic"):
		return domain.VariantAcoustic
	case strings.Contains(title, "Cover"), strings.Contains(artist, "Cover"):
		return domain.VariantCover
	case strings.Contains(artist, "Topic"):
		return domain.VariantPlatformGenerated
	case strings.Contains(title, "Remix"):
		return domain.VariantRemix
	default:
		return domain.VariantNone
	}
}
