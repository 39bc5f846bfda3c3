// Package ecdsa signs and verifies messages with ECDSA over any curve built by
// package curves, hashing messages with the package sha256 engine.
//
// The message digest is used as an integer without reduction or truncation to
// the bit length of the group order. For curves whose order is at least 256
// bits this is the same as standard ECDSA over SHA-256; for shorter orders
// the signatures are not interoperable with FIPS 186 implementations.
package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/internal/crypto/keys"
	"github.com/smallyu/go-ecc/internal/crypto/sha256"
)

var (
	// ErrInvalidSignature is returned by Check when the verification equation
	// does not hold.
	ErrInvalidSignature = errors.New("ecdsa: invalid signature")

	// ErrDegenerateSignature is returned by Check for r or s outside
	// [1, n-1], and by Sign when no usable nonce was found.
	ErrDegenerateSignature = errors.New("ecdsa: degenerate signature")
)

// DefaultMaxAttempts bounds the number of nonces Sign draws before giving up.
const DefaultMaxAttempts = 64

// Signature is an ECDSA signature (r, s).
type Signature struct {
	R *big.Int
	S *big.Int
}

// SignOptions tunes Sign. The zero value uses DefaultMaxAttempts.
type SignOptions struct {
	MaxAttempts int

	// OnRetry, if set, is called each time a nonce is discarded.
	OnRetry func(attempt int, reason error)
}

// HashToInt returns SHA-256(msg) as a big-endian integer.
func HashToInt(msg []byte) *big.Int {
	return sha256.Sum256(msg).Int()
}

// Sign signs msg with priv, drawing nonces from rnd. A nonce is discarded and
// redrawn when it yields r = 0, s = 0 or is not invertible mod n.
func Sign(rnd keys.Rand, priv *keys.PrivateKey, msg []byte, opts *SignOptions) (*Signature, error) {
	if priv == nil || priv.Curve == nil {
		return nil, errors.New("ecdsa: nil private key")
	}
	c := priv.Curve
	if err := keys.CheckScalar(c, priv.D); err != nil {
		return nil, err
	}

	maxAttempts := DefaultMaxAttempts
	var onRetry func(int, error)
	if opts != nil {
		if opts.MaxAttempts > 0 {
			maxAttempts = opts.MaxAttempts
		}
		onRetry = opts.OnRetry
	}
	retry := func(attempt int, reason error) {
		if onRetry != nil {
			onRetry(attempt, reason)
		}
	}

	n := c.N()
	z := HashToInt(msg)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		k, err := keys.GenerateScalar(c, rnd)
		if err != nil {
			return nil, err
		}

		kInv, err := field.Inverse(k, n)
		if err != nil {
			retry(attempt, err)
			continue
		}

		R, err := c.ScalarBaseMult(k)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: nonce point: %w", err)
		}
		if R.IsInfinity() {
			retry(attempt, fmt.Errorf("%w: nonce point at infinity", ErrDegenerateSignature))
			continue
		}

		r := field.Mod(R.X(), n)
		if r.Sign() == 0 {
			retry(attempt, fmt.Errorf("%w: r is zero", ErrDegenerateSignature))
			continue
		}

		// s = k^-1 (z + r*d) mod n
		s := new(big.Int).Mul(r, priv.D)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			retry(attempt, fmt.Errorf("%w: s is zero", ErrDegenerateSignature))
			continue
		}

		return &Signature{R: r, S: s}, nil
	}

	return nil, fmt.Errorf("%w: no usable nonce in %d attempts", ErrDegenerateSignature, maxAttempts)
}

// Check verifies sig over msg against pub and returns the reason a signature
// is rejected. A public key off the curve wraps curves.ErrPointNotOnCurve.
func Check(pub *keys.PublicKey, msg []byte, sig *Signature) error {
	if pub == nil || pub.Curve == nil {
		return errors.New("ecdsa: nil public key")
	}
	c := pub.Curve
	n := c.N()

	if sig == nil || sig.R == nil || sig.S == nil {
		return fmt.Errorf("%w: missing component", ErrDegenerateSignature)
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 {
		return fmt.Errorf("%w: r out of range", ErrDegenerateSignature)
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return fmt.Errorf("%w: s out of range", ErrDegenerateSignature)
	}
	if err := c.ValidatePublic(pub.Q); err != nil {
		return fmt.Errorf("ecdsa: public key: %w", err)
	}

	z := HashToInt(msg)
	w, err := field.Inverse(sig.S, n)
	if err != nil {
		return fmt.Errorf("ecdsa: %w", err)
	}
	u1 := field.Mul(z, w, n)
	u2 := field.Mul(sig.R, w, n)

	p1, err := c.ScalarBaseMult(u1)
	if err != nil {
		return fmt.Errorf("ecdsa: %w", err)
	}
	p2, err := c.ScalarMult(pub.Q, u2)
	if err != nil {
		return fmt.Errorf("ecdsa: %w", err)
	}
	p, err := c.Add(p1, p2)
	if err != nil {
		return fmt.Errorf("ecdsa: %w", err)
	}

	if p.IsInfinity() {
		return ErrInvalidSignature
	}
	if field.Mod(p.X(), n).Cmp(sig.R) != 0 {
		return ErrInvalidSignature
	}
	return nil
}

// Verify reports whether sig is a valid signature of msg by pub.
func Verify(pub *keys.PublicKey, msg []byte, sig *Signature) bool {
	return Check(pub, msg, sig) == nil
}
