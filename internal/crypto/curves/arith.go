package curves

import (
	"errors"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
)

// Neg returns -p.
func (c *Curve) Neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return Point{
		x:      field.Mod(p.x, c.p),
		y:      field.Mod(new(big.Int).Neg(p.y), c.p),
		finite: true,
	}
}

// Add returns p + q in affine coordinates. Not constant time.
//
// The error is only possible for points that are not on the curve, where the
// chord or tangent denominator can fail to be invertible.
func (c *Curve) Add(p, q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	xp, yp := field.Mod(p.x, c.p), field.Mod(p.y, c.p)
	xq, yq := field.Mod(q.x, c.p), field.Mod(q.y, c.p)

	if xp.Cmp(xq) == 0 {
		if yp.Cmp(yq) == 0 {
			return c.double(xp, yp)
		}
		// Vertical chord: q = -p.
		return Infinity(), nil
	}

	// s = (yq - yp) / (xq - xp)
	inv, err := field.Inverse(field.Sub(xq, xp, c.p), c.p)
	if err != nil {
		return Point{}, err
	}
	s := field.Mul(field.Sub(yq, yp, c.p), inv, c.p)

	return c.finish(s, xp, yp, xq), nil
}

// Double returns 2p.
func (c *Curve) Double(p Point) (Point, error) {
	if p.IsInfinity() {
		return p, nil
	}
	return c.double(field.Mod(p.x, c.p), field.Mod(p.y, c.p))
}

func (c *Curve) double(x, y *big.Int) (Point, error) {
	// Points of order two have a vertical tangent.
	if y.Sign() == 0 {
		return Infinity(), nil
	}

	// s = (3x^2 + a) / 2y
	inv, err := field.Inverse(new(big.Int).Lsh(y, 1), c.p)
	if err != nil {
		return Point{}, err
	}
	num := new(big.Int).Mul(x, x)
	num.Mul(num, three)
	num.Add(num, c.a)
	s := field.Mul(num, inv, c.p)

	return c.finish(s, x, y, x), nil
}

// finish computes the sum from slope s:
// xr = s^2 - xp - xq, yr = s(xp - xr) - yp.
func (c *Curve) finish(s, xp, yp, xq *big.Int) Point {
	xr := new(big.Int).Mul(s, s)
	xr.Sub(xr, xp)
	xr.Sub(xr, xq)
	xr.Mod(xr, c.p)

	yr := new(big.Int).Sub(xp, xr)
	yr.Mul(yr, s)
	yr.Sub(yr, yp)
	yr.Mod(yr, c.p)

	return Point{x: xr, y: yr, finite: true}
}

var errNilScalar = errors.New("curves: nil scalar")

// ScalarMult returns k*p using right-to-left double-and-add. A negative k
// multiplies -p by |k|. The running time depends on the bits of k.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	if k == nil {
		return Point{}, errNilScalar
	}
	addend := p
	if k.Sign() < 0 {
		addend = c.Neg(p)
		k = new(big.Int).Neg(k)
	}

	result := Infinity()
	var err error
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result, err = c.Add(result, addend)
			if err != nil {
				return Point{}, err
			}
		}
		addend, err = c.Double(addend)
		if err != nil {
			return Point{}, err
		}
	}
	return result, nil
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(c.g, k)
}
