// Package selection implements the weighted-random card selection algorithm:
// a mood-based weight table, a question relevance bonus and a per-card jitter
// feeding a single weighted sample over the fixed catalog.
package selection

import (
	"math/rand/v2"

	"github.com/arcanadaily/arcana-api/internal/domain"
)

// Selector picks one card from a fixed catalog for a given user context.
// It is safe for sequential reuse; the zero value is not usable.
type Selector struct {
	cards  []domain.Card
	params *Params
	rng    RNG
}

// NewSelector creates a Selector over the given catalog. A nil params uses
// the defaults; a nil rng uses the process-wide auto-seeded source.
func NewSelector(cards []domain.Card, params *Params, rng RNG) *Selector {
	if params == nil {
		params = NewDefaultParams()
	}
	if rng == nil {
		rng = stdRNG{}
	}
	return &Selector{cards: cards, params: params, rng: rng}
}

// Select returns one card for the context. It is total: an unrecognized mood
// or empty question degrades to neutral weighting, never an error. The jitter
// is drawn fresh per card per call so repeated calls with identical context
// still produce a genuine distribution across the whole catalog.
func (s *Selector) Select(ctx domain.UserContext) domain.Card {
	jitterSpan := s.params.JitterHigh - s.params.JitterLow

	weighted := make([]Weighted[domain.Card], len(s.cards))
	for i := range s.cards {
		card := s.cards[i]

		moodWeight := card.MoodWeight(ctx.Mood)
		questionBonus := QuestionRelevance(ctx.Question, card.Keywords, s.params)
		jitter := s.params.JitterLow + s.rng.Float64()*jitterSpan

		weighted[i] = Weighted[domain.Card]{
			Item:   card,
			Weight: moodWeight * questionBonus * jitter,
		}
	}

	return WeightedChoice(weighted, s.rng)
}

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Float64() float64 { return rand.Float64() }
