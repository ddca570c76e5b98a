package eea

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n.
// GCD panics if m or n is not positive.
func GCD(m, n int64) int64 {
	return Compute(m, n).GCD
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns s, t, d such that:
//
//	s*m + t*n == d == GCD(m, n)
//
// ExtGCD panics if m or n is not positive.
func ExtGCD(m, n int64) (s, t, d int64) {
	res := Compute(m, n)
	// Compute always records at least one step since n != 0
	last := res.Steps[len(res.Steps)-1]
	return last.T1, last.T, last.A
}

// ModInverse returns x in [0, m) such that a*x is congruent to 1 modulo m.
// ok is false if a and m are not coprime.
// ModInverse panics if a or m is not positive.
func ModInverse(a, m int64) (x int64, ok bool) {
	res := Compute(a, m)
	return res.Inverse, res.HasInverse
}
