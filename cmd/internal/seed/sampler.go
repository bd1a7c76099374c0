package seed

import (
	"errors"
	"math/rand"
)

// ErrInvalidWeight is returned when a weighted collection cannot be sampled
// from because its total weight is zero or negative.
var ErrInvalidWeight = errors.New("weighted choice requires a positive total weight")

// WeightedChoice picks one item with probability proportional to its weight.
//
// It draws a single uniform value over [0, total) and scans the cumulative
// sum; the first item whose cumulative weight reaches the draw wins, so a
// draw landing exactly on a boundary resolves to the upper item. The input
// slice is never mutated. The final return of the last item is a guard
// against floating-point edge effects, not a normal path.
func WeightedChoice[T any](r *rand.Rand, items []T, weight func(T) int) (T, error) {
	var zero T
	total := 0
	for _, item := range items {
		total += weight(item)
	}
	if total <= 0 {
		return zero, ErrInvalidWeight
	}

	draw := r.Float64() * float64(total)
	cumulative := 0
	for _, item := range items {
		cumulative += weight(item)
		if draw <= float64(cumulative) {
			return item, nil
		}
	}
	return items[len(items)-1], nil
}

// randBetween returns a uniform integer in [min, max], both inclusive.
func randBetween(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

// jitter returns a uniform offset in [-spread, +spread].
func jitter(r *rand.Rand, spread float64) float64 {
	return (r.Float64()*2 - 1) * spread
}
