// Package ecies encrypts messages to a public key with an ephemeral
// Diffie-Hellman exchange.
//
// The keystream is the lowercase hexadecimal text of the shared
// x-coordinate, repeated to the message length, and the ciphertext is the
// plaintext XORed with it. There is no key derivation and no authentication:
// the scheme is kept for compatibility and must not be relied on for
// confidentiality or integrity.
package ecies

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/keys"
)

// ErrSharedPointAtInfinity is returned when the Diffie-Hellman product is the
// point at infinity, so no keystream exists.
var ErrSharedPointAtInfinity = errors.New("ecies: shared point at infinity")

// Ciphertext is the ephemeral public point R = k*G and the encrypted bytes.
type Ciphertext struct {
	Ephemeral curves.Point
	Data      []byte
}

// Encrypt encrypts msg to pub with an ephemeral key drawn from rnd.
func Encrypt(rnd keys.Rand, pub *keys.PublicKey, msg []byte) (*Ciphertext, error) {
	if pub == nil || pub.Curve == nil {
		return nil, errors.New("ecies: nil public key")
	}
	c := pub.Curve
	if err := c.ValidatePublic(pub.Q); err != nil {
		return nil, fmt.Errorf("ecies: recipient key: %w", err)
	}

	eph, err := keys.GenerateKey(c, rnd)
	if err != nil {
		return nil, fmt.Errorf("ecies: ephemeral key: %w", err)
	}

	data, err := apply(c, pub.Q, eph, msg)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{Ephemeral: eph.Q, Data: data}, nil
}

// Decrypt recovers the plaintext of ct with priv.
func Decrypt(priv *keys.PrivateKey, ct *Ciphertext) ([]byte, error) {
	if priv == nil || priv.Curve == nil {
		return nil, errors.New("ecies: nil private key")
	}
	if ct == nil {
		return nil, errors.New("ecies: nil ciphertext")
	}
	c := priv.Curve
	if err := keys.CheckScalar(c, priv.D); err != nil {
		return nil, err
	}
	if err := c.ValidatePublic(ct.Ephemeral); err != nil {
		return nil, fmt.Errorf("ecies: ephemeral point: %w", err)
	}
	return apply(c, ct.Ephemeral, priv, ct.Data)
}

// SharedPoint returns d*Q for the key pair priv and the peer point q.
func SharedPoint(c *curves.Curve, q curves.Point, priv *keys.PrivateKey) (curves.Point, error) {
	s, err := c.ScalarMult(q, priv.D)
	if err != nil {
		return curves.Point{}, fmt.Errorf("ecies: shared point: %w", err)
	}
	if s.IsInfinity() {
		return curves.Point{}, ErrSharedPointAtInfinity
	}
	return s, nil
}

// Keystream returns the hex text of the shared x-coordinate, cycled to n
// bytes.
func Keystream(shared curves.Point, n int) []byte {
	secret := []byte(shared.X().Text(16))
	defer zeroize(secret)

	ks := make([]byte, n)
	for i := range ks {
		ks[i] = secret[i%len(secret)]
	}
	return ks
}

func apply(c *curves.Curve, q curves.Point, priv *keys.PrivateKey, in []byte) ([]byte, error) {
	shared, err := SharedPoint(c, q, priv)
	if err != nil {
		return nil, err
	}

	ks := Keystream(shared, len(in))
	defer zeroize(ks)

	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[i] ^ ks[i]
	}
	return out, nil
}

func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Keep the stores from being eliminated (golang/go#33325).
	runtime.KeepAlive(buf)
}
