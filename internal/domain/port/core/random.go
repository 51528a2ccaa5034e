package core

// RandomSource draws the pseudo-random amounts used by the pool generator
type RandomSource interface {
	// IntInRange returns a uniformly distributed integer in [min, max], both ends inclusive
	IntInRange(min, max int) int
}
