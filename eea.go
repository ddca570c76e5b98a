// Package eea computes greatest common divisors and modular inverses with
// the Extended Euclidean Algorithm, keeping a trace of every step.
// See the Compute function and the Result type for details.
package eea

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Common errors returned by functions in this package.
var (
	ErrInvalidInteger = errors.New("please enter valid integers")
	ErrNotPositive    = errors.New("please enter positive integers")
)

// Step is one iteration of the algorithm, recorded after its updates.
//
// The fields are named after the columns of the trace table: A and B are the
// previous and current remainders, R is the next remainder (0 once B is 0),
// T1 and T2 are the coefficients of the first operand and T is the previous
// coefficient of the second operand.
type Step struct {
	Q  int64
	A  int64
	B  int64
	R  int64
	T1 int64
	T2 int64
	T  int64
}

// Result is the outcome of Compute.
//
// Inverse is meaningful only when HasInverse is true, which happens exactly
// when GCD is 1. The last element of Steps always has B == 0 and A == GCD.
type Result struct {
	A, B       int64
	GCD        int64
	Inverse    int64
	HasInverse bool
	Steps      []Step
}

// Try runs the Extended Euclidean Algorithm on a and b.
// Try returns an error if either a or b is not positive.
func Try(a, b int64) (Result, error) {
	if a <= 0 || b <= 0 {
		return Result{}, ErrNotPositive
	}
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	var steps []Step
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
		var next int64
		if r != 0 {
			next = oldR % r
		}
		steps = append(steps, Step{q, oldR, r, next, oldS, s, oldT})
	}
	res := Result{A: a, B: b, GCD: oldR, Steps: steps}
	if oldR == 1 {
		res.Inverse = floorMod(oldS, b)
		res.HasInverse = true
	}
	return res, nil
}

// Compute is like Try but panics if a or b is not positive.
func Compute(a, b int64) Result {
	res, err := Try(a, b)
	if err != nil {
		panic(err)
	}
	return res
}

// ParseInt parses one operand in base 10, ignoring surrounding whitespace.
// The error wraps ErrInvalidInteger or ErrNotPositive.
func ParseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInteger, err)
	}
	if n <= 0 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// Parse parses and validates both operands.
func Parse(a, b string) (int64, int64, error) {
	x, err := ParseInt(a)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing a: %w", err)
	}
	y, err := ParseInt(b)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing b: %w", err)
	}
	return x, y, nil
}

// IsValidInput reports whether a and b are both non-empty and parse to
// positive integers, i.e. whether Parse would succeed.
func IsValidInput(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	_, _, err := Parse(a, b)
	return err == nil
}

// floorMod returns x mod m in [0, m) for positive m.
func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
