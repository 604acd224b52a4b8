package systems

// Rand is the random source used by every probabilistic rule.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Chance runs a Bernoulli trial that succeeds with probability p.
func Chance(r Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// RandRange returns a uniform integer in [lo, hi].
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// randSign returns -1 or +1 with equal probability.
func randSign(r Rand) int {
	if Chance(r, 0.5) {
		return 1
	}
	return -1
}

// mod returns positive modulo (Go's % can return negative).
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
