package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleTitles = []string{
	"",
	"As It Was",
	"as it was",
	"Stairway to Heaven",
	"Stairway to Heaven (Remaster)",
	"Creepin'",
	"Creepin",
	"Beyoncé",
	"Harry Styles - Topic",
	"Metro Boomin, The Weeknd, 21 Savage",
}

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range sampleTitles {
		assert.Equal(t, 1.0, Similarity(s, s), "similarity(%q, %q)", s, s)
	}
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("AS IT WAS", "as it was"))
}

func TestSimilarity_Symmetric(t *testing.T) {
	for _, a := range sampleTitles {
		for _, b := range sampleTitles {
			assert.Equal(t, Similarity(a, b), Similarity(b, a), "similarity(%q, %q)", a, b)
		}
	}
}

func TestSimilarity_Range(t *testing.T) {
	for _, a := range sampleTitles {
		for _, b := range sampleTitles {
			s := Similarity(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestSimilarity_Values(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"kitten", "sitting", 1 - 3.0/7.0},
		{"", "abc", 0},
		{"Creepin'", "Creepin", 1 - 1.0/8.0},
		{"Beyoncé", "Beyonce", 1 - 1.0/7.0},
		{"Stairway to Heaven", "Stairway to Heaven (Remaster)", 1 - 11.0/29.0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Similarity(c.a, c.b), 1e-9, "similarity(%q, %q)", c.a, c.b)
	}
}
