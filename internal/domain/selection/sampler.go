package selection

// RNG is the source of randomness for selection. Float64 must return a
// uniformly distributed value in [0, 1). Injecting it keeps the algorithm
// deterministic under test.
type RNG interface {
	Float64() float64
}

// Weighted pairs an item with a non-negative selection weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedChoice returns exactly one item with probability proportional to
// its weight. Items must be non-empty. Zero-weight items are selectable only
// through the last-item fallback, which also guards against floating-point
// drift exhausting the walk.
func WeightedChoice[T any](items []Weighted[T], rng RNG) T {
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}

	remainder := rng.Float64() * total
	for _, it := range items {
		remainder -= it.Weight
		if remainder <= 0 {
			return it.Item
		}
	}

	return items[len(items)-1].Item
}
