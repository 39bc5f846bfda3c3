package curves

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
)

var (
	// ErrInvalidCurve is returned by New for parameters that do not describe
	// a usable curve group.
	ErrInvalidCurve = errors.New("curves: invalid curve parameters")

	// ErrPointNotOnCurve is returned when a point fails the curve equation or
	// has coordinates outside [0, p-1].
	ErrPointNotOnCurve = errors.New("curves: point is not on the curve")
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Params holds the raw parameters of the curve y^2 = x^3 + ax + b over F_p
// with base point G of order N.
type Params struct {
	Name   string
	P      *big.Int // prime modulus of the field
	A, B   *big.Int // curve coefficients
	N      *big.Int // order of G
	Gx, Gy *big.Int // generator
}

// Curve is a validated, immutable curve context. It is safe for concurrent
// use.
type Curve struct {
	name string
	p    *big.Int
	a, b *big.Int
	n    *big.Int
	g    Point
}

// New validates params and returns the curve they describe. The modulus must
// be prime, the curve non-singular, G on the curve and N*G the point at
// infinity. A and B are reduced mod P.
func New(params Params) (*Curve, error) {
	if params.P == nil || params.A == nil || params.B == nil ||
		params.N == nil || params.Gx == nil || params.Gy == nil {
		return nil, fmt.Errorf("%w: missing parameter", ErrInvalidCurve)
	}
	// The short Weierstrass form needs characteristic other than 2 and 3.
	if params.P.Cmp(three) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be a prime greater than 3, got %s", ErrInvalidCurve, params.P)
	}
	if !params.P.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: modulus %s is not prime", ErrInvalidCurve, params.P)
	}
	if params.N.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: order must be at least 2", ErrInvalidCurve)
	}

	c := &Curve{
		name: params.Name,
		p:    new(big.Int).Set(params.P),
		a:    field.Mod(params.A, params.P),
		b:    field.Mod(params.B, params.P),
		n:    new(big.Int).Set(params.N),
	}

	// 4a^3 + 27b^2 != 0 (mod p)
	disc := new(big.Int).Exp(c.a, three, c.p)
	disc.Mul(disc, big.NewInt(4))
	b2 := new(big.Int).Mul(c.b, c.b)
	b2.Mul(b2, big.NewInt(27))
	disc.Add(disc, b2)
	if field.IsZero(disc, c.p) {
		return nil, fmt.Errorf("%w: curve is singular", ErrInvalidCurve)
	}

	g := NewPoint(params.Gx, params.Gy)
	if !c.IsOnCurve(g) {
		return nil, fmt.Errorf("%w: generator: %w", ErrInvalidCurve, ErrPointNotOnCurve)
	}
	c.g = g

	ng, err := c.ScalarMult(g, c.n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurve, err)
	}
	if !ng.IsInfinity() {
		return nil, fmt.Errorf("%w: N*G is not the point at infinity", ErrInvalidCurve)
	}

	return c, nil
}

// Name returns the curve name, which may be empty.
func (c *Curve) Name() string { return c.name }

// P returns the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns the reduced coefficient a.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the reduced coefficient b.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// N returns the order of the generator.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// Generator returns the base point G.
func (c *Curve) Generator() Point { return c.g }

// BitSize returns the bit length of the field modulus.
func (c *Curve) BitSize() int { return c.p.BitLen() }

// Params returns a copy of the curve parameters.
func (c *Curve) Params() Params {
	return Params{
		Name: c.name,
		P:    c.P(),
		A:    c.A(),
		B:    c.B(),
		N:    c.N(),
		Gx:   c.g.X(),
		Gy:   c.g.Y(),
	}
}

// polynomial returns x^3 + ax + b mod p.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.a)
	x3.Mul(x3, x)
	x3.Add(x3, c.b)
	return x3.Mod(x3, c.p)
}

// IsOnCurve reports whether p satisfies the curve equation with both
// coordinates in [0, p-1]. The point at infinity is on every curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}
	if pt.x.Sign() < 0 || pt.x.Cmp(c.p) >= 0 || pt.y.Sign() < 0 || pt.y.Cmp(c.p) >= 0 {
		return false
	}
	y2 := field.Mul(pt.y, pt.y, c.p)
	return c.polynomial(pt.x).Cmp(y2) == 0
}

// ValidatePublic checks that pt can be used as a public key or ephemeral key:
// on the curve and not the point at infinity.
func (c *Curve) ValidatePublic(pt Point) error {
	if pt.IsInfinity() {
		return fmt.Errorf("%w: point at infinity", ErrPointNotOnCurve)
	}
	if !c.IsOnCurve(pt) {
		return ErrPointNotOnCurve
	}
	return nil
}
