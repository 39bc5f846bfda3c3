package curves

import (
	"fmt"
	"math/big"
)

// Point is either the point at infinity or an affine point (x, y).
// The zero value is the point at infinity. Coordinates are never shared with
// callers, so a Point is immutable once built.
type Point struct {
	x, y   *big.Int
	finite bool
}

// Infinity returns the group identity.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). It does not check that the point
// lies on any curve; see Curve.IsOnCurve.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		finite: true,
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Coords returns copies of both coordinates and false for the point at
// infinity.
func (p Point) Coords() (x, y *big.Int, ok bool) {
	if !p.finite {
		return nil, nil, false
	}
	return p.X(), p.Y(), true
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.finite != q.finite {
		return false
	}
	if !p.finite {
		return true
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.finite {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
