package selection

// Params defines all configurable parameters for the card selection algorithm.
// The defaults reproduce the production behavior; the values are exposed as
// parameters rather than constants so they can be tuned without code changes.
type Params struct {
	// JitterLow and JitterHigh bound the uniform random multiplier applied
	// to every card's weight on every selection. The jitter keeps the
	// highest-scoring card from being a near-deterministic pick.
	JitterLow  float64
	JitterHigh float64

	// SemanticMatchWeight is the contribution of one matched theme relative
	// to a direct keyword match.
	SemanticMatchWeight float64

	// MinTokenLength is the length at or below which question tokens are
	// discarded during normalization.
	MinTokenLength int
}

// NewDefaultParams returns the production defaults: ±30% jitter and semantic
// matches weighted at half a direct match.
func NewDefaultParams() *Params {
	return &Params{
		JitterLow:           0.7,
		JitterHigh:          1.3,
		SemanticMatchWeight: 0.5,
		MinTokenLength:      2,
	}
}
