package domain

import (
	"encoding/json"
	"math"
)

// MatchStatus is the tri-state verdict for one original track.
type MatchStatus string

const (
	StatusMatched  MatchStatus = "matched"
	StatusPartial  MatchStatus = "partial"
	StatusNotFound MatchStatus = "not_found"
)

// Confidence thresholds. A score must be strictly greater than a threshold to
// reach its bucket.
const (
	MatchedThreshold = 0.9
	PartialThreshold = 0.7
)

// ClassifyConfidence maps a confidence score to a status.
func ClassifyConfidence(confidence float64) MatchStatus {
	switch {
	case confidence > MatchedThreshold:
		return StatusMatched
	case confidence > PartialThreshold:
		return StatusPartial
	default:
		return StatusNotFound
	}
}

// Variant describes the kind of release a candidate looks like. It is
// advisory only and never affects confidence or status.
type Variant string

const (
	VariantNone              Variant = "none"
	VariantRemastered        Variant = "remastered"
	VariantLive              Variant = "live"
	VariantAcoustic          Variant = "acoustic"
	VariantCover             Variant = "cover"
	VariantPlatformGenerated Variant = "platform_generated"
	VariantRemix             Variant = "remix"
)

func (v Variant) describe() string {
	switch v {
	case VariantRemastered:
		return "Found remastered version"
	case VariantLive:
		return "Found live version"
	case VariantAcoustic:
		return "Found acoustic version"
	case VariantCover:
		return "Found cover version"
	case VariantPlatformGenerated:
		return "Found auto-generated version"
	case VariantRemix:
		return "Found remix version"
	default:
		return "Similar song found with slight differences"
	}
}

// ScoredTrack is a candidate together with the confidence it was scored at.
type ScoredTrack struct {
	Track      Track   `json:"track"`
	Confidence float64 `json:"confidence"`
}

// MaxAlternatives bounds the runner-up candidates kept on a Match.
const MaxAlternatives = 2

// Match is the verdict for one original track. Its status is derived from the
// best candidate's confidence, so a Match can only be built through NotFound,
// Failed or Scored.
type Match struct {
	original     Track
	best         *ScoredTrack
	alternatives []Track
	variant      Variant
	err          string
}

// NotFound returns a Match for a track that had no candidates at all.
func NotFound(original Track) Match {
	return Match{original: original, variant: VariantNone}
}

// Failed returns a not_found Match for a track whose candidate lookup failed.
func Failed(original Track, err error) Match {
	m := NotFound(original)
	if err != nil {
		m.err = err.Error()
	}
	return m
}

// Scored returns a Match for the best-scoring candidate. The confidence is
// clamped to [0,1] and at most MaxAlternatives alternatives are kept.
func Scored(original Track, best ScoredTrack, alternatives []Track, variant Variant) Match {
	if math.IsNaN(best.Confidence) {
		best.Confidence = 0
	}
	best.Confidence = math.Max(0, math.Min(1, best.Confidence))

	if len(alternatives) > MaxAlternatives {
		alternatives = alternatives[:MaxAlternatives]
	}
	alts := make([]Track, len(alternatives))
	copy(alts, alternatives)

	if variant == "" {
		variant = VariantNone
	}
	return Match{original: original, best: &best, alternatives: alts, variant: variant}
}

// Original returns the source track this verdict is about.
func (m Match) Original() Track { return m.original }

// Status returns matched, partial or not_found.
func (m Match) Status() MatchStatus {
	if m.best == nil {
		return StatusNotFound
	}
	return ClassifyConfidence(m.best.Confidence)
}

// Matched returns the selected candidate. It is present iff the status is
// matched or partial.
func (m Match) Matched() (ScoredTrack, bool) {
	if m.Status() == StatusNotFound {
		return ScoredTrack{}, false
	}
	return *m.best, true
}

// Confidence returns the confidence of the selected candidate.
func (m Match) Confidence() (float64, bool) {
	st, ok := m.Matched()
	return st.Confidence, ok
}

// Rejected returns the best-scored candidate when it scored too low to be
// selected.
func (m Match) Rejected() (ScoredTrack, bool) {
	if m.best == nil || m.Status() != StatusNotFound {
		return ScoredTrack{}, false
	}
	return *m.best, true
}

// Alternatives returns up to two runner-up candidates in search order.
func (m Match) Alternatives() []Track {
	out := make([]Track, len(m.alternatives))
	copy(out, m.alternatives)
	return out
}

// Variant returns the release variant of the best candidate.
func (m Match) Variant() Variant {
	if m.variant == "" {
		return VariantNone
	}
	return m.variant
}

// Err returns the lookup failure text, if the candidate search failed.
func (m Match) Err() string { return m.err }

// Explanation returns a human-readable line describing the verdict.
func (m Match) Explanation() string {
	switch m.Status() {
	case StatusMatched:
		return "Exact or near-exact match found"
	case StatusPartial:
		return m.Variant().describe()
	default:
		return "No suitable match found on target platform"
	}
}

type matchJSON struct {
	OriginalTrack     Track        `json:"original_track"`
	MatchedTrack      *Track       `json:"matched_track,omitempty"`
	Confidence        *float64     `json:"confidence,omitempty"`
	Status            MatchStatus  `json:"status"`
	AlternativeTracks []Track      `json:"alternative_tracks"`
	BestCandidate     *ScoredTrack `json:"best_candidate,omitempty"`
	Variant           Variant      `json:"variant"`
	Explanation       string       `json:"explanation"`
	Error             string       `json:"error,omitempty"`
}

func (m Match) MarshalJSON() ([]byte, error) {
	out := matchJSON{
		OriginalTrack:     m.original,
		Status:            m.Status(),
		AlternativeTracks: m.Alternatives(),
		Variant:           m.Variant(),
		Explanation:       m.Explanation(),
		Error:             m.err,
	}
	if st, ok := m.Matched(); ok {
		out.MatchedTrack = &st.Track
		out.Confidence = &st.Confidence
	}
	if st, ok := m.Rejected(); ok {
		out.BestCandidate = &st
	}
	return json.Marshal(out)
}

func (m *Match) UnmarshalJSON(data []byte) error {
	var in matchJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*m = Match{
		original:     in.OriginalTrack,
		alternatives: in.AlternativeTracks,
		variant:      in.Variant,
		err:          in.Error,
	}
	switch {
	case in.MatchedTrack != nil && in.Confidence != nil:
		m.best = &ScoredTrack{Track: *in.MatchedTrack, Confidence: *in.Confidence}
	case in.BestCandidate != nil:
		best := *in.BestCandidate
		m.best = &best
	}
	if m.alternatives == nil {
		m.alternatives = []Track{}
	}
	return nil
}

// Stats are rollup counts over a MatchBatch.
type Stats struct {
	Total    int `json:"total"`
	Matched  int `json:"matched"`
	Partial  int `json:"partial"`
	NotFound int `json:"not_found"`
}

// MatchBatch is the ordered list of verdicts for a playlist, one per original
// track.
type MatchBatch []Match

// Stats counts the statuses in the batch.
func (b MatchBatch) Stats() Stats {
	s := Stats{Total: len(b)}
	for _, m := range b {
		switch m.Status() {
		case StatusMatched:
			s.Matched++
		case StatusPartial:
			s.Partial++
		default:
			s.NotFound++
		}
	}
	return s
}

// MatchedTracks returns the selected candidates of every matched or partial
// verdict, in playlist order.
func (b MatchBatch) MatchedTracks() []Track {
	tracks := make([]Track, 0, len(b))
	for _, m := range b {
		if st, ok := m.Matched(); ok {
			tracks = append(tracks, st.Track)
		}
	}
	return tracks
}
