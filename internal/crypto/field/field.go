package field

import (
	"errors"
	"math/big"
)

// ErrUninvertible is returned when a modular inverse is requested for a value
// that shares a factor with the modulus (zero included).
var ErrUninvertible = errors.New("field: value is not invertible")

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Mod returns x mod m normalized into [0, m-1], also for negative x.
func Mod(x, m *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, so the result is already non-negative for m > 0.
	return new(big.Int).Mod(x, m)
}

// Add returns (x + y) mod m.
func Add(x, y, m *big.Int) *big.Int {
	r := new(big.Int).Add(x, y)
	return r.Mod(r, m)
}

// Sub returns (x - y) mod m.
func Sub(x, y, m *big.Int) *big.Int {
	r := new(big.Int).Sub(x, y)
	return r.Mod(r, m)
}

// Mul returns (x * y) mod m.
func Mul(x, y, m *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Mod(r, m)
}

// Inverse returns y such that x*y = 1 (mod m), computed with the extended
// Euclidean algorithm. x may be negative or larger than m.
func Inverse(x, m *big.Int) (*big.Int, error) {
	if m.Cmp(one) <= 0 {
		return nil, ErrUninvertible
	}
	a := Mod(x, m)
	if a.Sign() == 0 {
		return nil, ErrUninvertible
	}

	// ModInverse returns nil when gcd(a, m) != 1.
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrUninvertible
	}
	return inv, nil
}

// IsZero reports whether x = 0 (mod m).
func IsZero(x, m *big.Int) bool {
	return Mod(x, m).Cmp(zero) == 0
}
