package webapi

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// The arithmetic helpers below exist so the challenge's CI stage has
// something deterministic to test. They are not exposed over HTTP.

// Add returns a + b.
func Add(a, b int) int { return a + b }

// Subtract returns a - b.
func Subtract(a, b int) int { return a - b }

// Multiply returns a * b.
func Multiply(a, b int) int { return a * b }

// Divide returns a / b as a float64. Dividing by zero is a domain error,
// not a panic.
func Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return float64(a) / float64(b), nil
}
