package keys

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// ErrScalarOutOfRange is returned for a private scalar outside [1, n-1].
var ErrScalarOutOfRange = errors.New("keys: private scalar out of range")

var one = big.NewInt(1)

// Rand is the random source consumed by key generation. *random.Source
// implements it.
type Rand interface {
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi *big.Int) (*big.Int, error)
}

// PublicKey is a point Q = d*G on Curve.
type PublicKey struct {
	Curve *curves.Curve
	Q     curves.Point
}

// PrivateKey holds the scalar d in [1, n-1] and its public key.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// GenerateScalar draws a uniform scalar from [1, n-1].
func GenerateScalar(c *curves.Curve, rnd Rand) (*big.Int, error) {
	hi := c.N()
	hi.Sub(hi, one)
	d, err := rnd.IntRange(one, hi)
	if err != nil {
		return nil, fmt.Errorf("keys: draw scalar: %w", err)
	}
	return d, nil
}

// PublicPoint returns d*G after checking d is in [1, n-1].
func PublicPoint(c *curves.Curve, d *big.Int) (curves.Point, error) {
	if err := CheckScalar(c, d); err != nil {
		return curves.Point{}, err
	}
	q, err := c.ScalarBaseMult(d)
	if err != nil {
		return curves.Point{}, fmt.Errorf("keys: derive public point: %w", err)
	}
	return q, nil
}

// GenerateKey draws a new key pair.
func GenerateKey(c *curves.Curve, rnd Rand) (*PrivateKey, error) {
	d, err := GenerateScalar(c, rnd)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(c, d)
}

// NewPrivateKey builds the key pair for an existing scalar.
func NewPrivateKey(c *curves.Curve, d *big.Int) (*PrivateKey, error) {
	q, err := PublicPoint(c, d)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		PublicKey: PublicKey{Curve: c, Q: q},
		D:         new(big.Int).Set(d),
	}, nil
}

// NewPublicKey checks that q is a finite point on c.
func NewPublicKey(c *curves.Curve, q curves.Point) (*PublicKey, error) {
	if err := c.ValidatePublic(q); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return &PublicKey{Curve: c, Q: q}, nil
}

// Public returns the public half of k.
func (k *PrivateKey) Public() *PublicKey {
	return &k.PublicKey
}

// CheckScalar returns ErrScalarOutOfRange unless d is in [1, n-1].
func CheckScalar(c *curves.Curve, d *big.Int) error {
	if d == nil || d.Sign() <= 0 || d.Cmp(c.N()) >= 0 {
		return ErrScalarOutOfRange
	}
	return nil
}
