package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// fromStdParams converts elliptic.CurveParams, which carry no A coefficient,
// into Params with the given a.
func fromStdParams(p *elliptic.CurveParams, name string, a *big.Int) Params {
	return Params{
		Name: name,
		P:    new(big.Int).Set(p.P),
		A:    a,
		B:    new(big.Int).Set(p.B),
		N:    new(big.Int).Set(p.N),
		Gx:   new(big.Int).Set(p.Gx),
		Gy:   new(big.Int).Set(p.Gy),
	}
}

// nist builds a NIST prime curve, which all use a = -3.
func nist(c elliptic.Curve) func() *Curve {
	return sync.OnceValue(func() *Curve {
		p := c.Params()
		return mustNew(fromStdParams(p, p.Name, big.NewInt(-3)))
	})
}

var (
	secp256k1Curve = sync.OnceValue(func() *Curve {
		return mustNew(fromStdParams(secp256k1.S256().Params(), "secp256k1", big.NewInt(0)))
	})
	p224Curve = nist(elliptic.P224())
	p256Curve = nist(elliptic.P256())
	p384Curve = nist(elliptic.P384())
	p521Curve = nist(elliptic.P521())
)

func mustNew(params Params) *Curve {
	c, err := New(params)
	if err != nil {
		panic(fmt.Sprintf("curves: bad preset %s: %v", params.Name, err))
	}
	return c
}

// Secp256k1 returns the SEC 2 secp256k1 curve.
func Secp256k1() *Curve { return secp256k1Curve() }

// P224 returns NIST P-224.
func P224() *Curve { return p224Curve() }

// P256 returns NIST P-256.
func P256() *Curve { return p256Curve() }

// P384 returns NIST P-384.
func P384() *Curve { return p384Curve() }

// P521 returns NIST P-521.
func P521() *Curve { return p521Curve() }

// ByName looks up a preset by name. Matching ignores case, and "secp256r1"
// and "prime256v1" are accepted for P-256.
func ByName(name string) (*Curve, error) {
	switch strings.ToLower(name) {
	case "secp256k1":
		return Secp256k1(), nil
	case "p-224", "p224", "secp224r1":
		return P224(), nil
	case "p-256", "p256", "secp256r1", "prime256v1":
		return P256(), nil
	case "p-384", "p384", "secp384r1":
		return P384(), nil
	case "p-521", "p521", "secp521r1":
		return P521(), nil
	}
	return nil, fmt.Errorf("%w: unknown curve %q", ErrInvalidCurve, name)
}
