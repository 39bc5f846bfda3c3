package ecc

import (
	"context"
	"errors"
	"fmt"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecc/internal/crypto/ecies"
	"github.com/smallyu/go-ecc/internal/crypto/keys"
	"github.com/smallyu/go-ecc/internal/crypto/random"
	"github.com/smallyu/go-ecc/internal/crypto/sha256"
	"github.com/smallyu/go-ecc/pkg/logging"
)

// Context binds a validated curve to a random source. It is safe for
// concurrent use; random draws are serialized, so concurrent callers never
// share a nonce.
type Context struct {
	curve *curves.Curve
	rnd   *random.Source
	log   logging.Logger
	base  int

	maxAttempts int
}

// NewContext parses and validates params.
func NewContext(params CurveParams, opts ...Option) (*Context, error) {
	var (
		raw curves.Params
		err error
	)
	raw.Name = params.Name
	if raw.P, err = parseInt("p", params.P, false); err != nil {
		return nil, err
	}
	if raw.A, err = parseInt("a", params.A, true); err != nil {
		return nil, err
	}
	if raw.B, err = parseInt("b", params.B, true); err != nil {
		return nil, err
	}
	if raw.N, err = parseInt("n", params.N, false); err != nil {
		return nil, err
	}
	if raw.Gx, err = parseInt("g.x", params.G.X, false); err != nil {
		return nil, err
	}
	if raw.Gy, err = parseInt("g.y", params.G.Y, false); err != nil {
		return nil, err
	}

	c, err := curves.New(raw)
	if err != nil {
		return nil, err
	}
	return newContext(c, params.Seed, opts)
}

// NamedCurve returns a Context for a well-known curve: secp256k1, P-224,
// P-256, P-384 or P-521. seed follows the CurveParams.Seed rules.
func NamedCurve(name, seed string, opts ...Option) (*Context, error) {
	c, err := curves.ByName(name)
	if err != nil {
		return nil, err
	}
	return newContext(c, seed, opts)
}

func newContext(c *curves.Curve, seed string, opts []Option) (*Context, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.base != 10 && cfg.base != 16 {
		return nil, fmt.Errorf("%w: output base %d, want 10 or 16", ErrInvalidOption, cfg.base)
	}
	if cfg.maxAttempts < 1 {
		return nil, fmt.Errorf("%w: max sign attempts %d", ErrInvalidOption, cfg.maxAttempts)
	}

	var (
		rnd  *random.Source
		mode string
	)
	switch {
	case cfg.entropy != nil:
		rnd, mode = random.FromReader(cfg.entropy), "reader"
	case seed != "":
		s, err := parseUint64("seed", seed)
		if err != nil {
			return nil, err
		}
		rnd, mode = random.NewSeeded(s), "seeded"
	default:
		rnd, mode = random.NewSecure(), "secure"
	}

	x := &Context{
		curve:       c,
		rnd:         rnd,
		log:         logging.WithCurve(cfg.logger, c.Name(), c.BitSize()),
		base:        cfg.base,
		maxAttempts: cfg.maxAttempts,
	}
	x.log.Info(context.Background(), "curve context created", "random", mode)
	return x, nil
}

// Params returns the curve in text form, formatted in the output base. Seed
// is left empty.
func (x *Context) Params() CurveParams {
	p := x.curve.Params()
	return CurveParams{
		Name: p.Name,
		P:    formatInt(p.P, x.base),
		A:    formatInt(p.A, x.base),
		B:    formatInt(p.B, x.base),
		N:    formatInt(p.N, x.base),
		G:    PointText{X: formatInt(p.Gx, x.base), Y: formatInt(p.Gy, x.base)},
	}
}

// GeneratePrivateKey draws a private scalar from [1, n-1].
func (x *Context) GeneratePrivateKey() (string, error) {
	d, err := keys.GenerateScalar(x.curve, x.rnd)
	if err != nil {
		return "", err
	}
	x.log.Debug(context.Background(), "private key generated", logging.Redacted("scalar"))
	return formatInt(d, x.base), nil
}

// GeneratePublicKey returns d*G for the private scalar priv.
func (x *Context) GeneratePublicKey(priv string) (PointText, error) {
	k, err := x.privateKey(priv)
	if err != nil {
		return PointText{}, err
	}
	return formatPoint(k.Q, x.base), nil
}

// Sign signs SHA-256(msg) with priv.
func (x *Context) Sign(msg []byte, priv string) (SignatureText, error) {
	k, err := x.privateKey(priv)
	if err != nil {
		return SignatureText{}, err
	}

	ctx := context.Background()
	sig, err := ecdsa.Sign(x.rnd, k, msg, &ecdsa.SignOptions{
		MaxAttempts: x.maxAttempts,
		OnRetry: func(attempt int, reason error) {
			x.log.Debug(ctx, "nonce rejected", "attempt", attempt, "reason", reason)
		},
	})
	if err != nil {
		x.log.Warn(ctx, "signing failed", "error", err)
		return SignatureText{}, err
	}
	return SignatureText{R: formatInt(sig.R, x.base), S: formatInt(sig.S, x.base)}, nil
}

// Verify reports whether sig is a valid signature of msg by pub. A signature
// or key that parses but is rejected yields false with a nil error. Errors
// are returned for text that cannot be parsed (ErrMalformedInput) and, on
// curves whose order is not prime, for an s with no inverse mod n
// (ErrUninvertible).
func (x *Context) Verify(msg []byte, sig SignatureText, pub PointText) (bool, error) {
	s, err := parseSignature(sig)
	if err != nil {
		return false, err
	}
	q, err := parsePoint("public key", pub)
	if err != nil {
		return false, err
	}

	if err := ecdsa.Check(&keys.PublicKey{Curve: x.curve, Q: q}, msg, s); err != nil {
		if errors.Is(err, ErrUninvertible) {
			return false, err
		}
		x.log.Debug(context.Background(), "signature rejected", "reason", err)
		return false, nil
	}
	return true, nil
}

// Encrypt encrypts msg to pub.
func (x *Context) Encrypt(pub PointText, msg []byte) (CiphertextText, error) {
	q, err := parsePoint("public key", pub)
	if err != nil {
		return CiphertextText{}, err
	}

	ct, err := ecies.Encrypt(x.rnd, &keys.PublicKey{Curve: x.curve, Q: q}, msg)
	if err != nil {
		return CiphertextText{}, err
	}
	x.log.Debug(context.Background(), "message encrypted", "bytes", len(msg))
	return CiphertextText{Ephemeral: formatPoint(ct.Ephemeral, x.base), Data: ct.Data}, nil
}

// Decrypt decrypts ct with priv.
func (x *Context) Decrypt(priv string, ct CiphertextText) ([]byte, error) {
	k, err := x.privateKey(priv)
	if err != nil {
		return nil, err
	}
	r, err := parsePoint("ephemeral", ct.Ephemeral)
	if err != nil {
		return nil, err
	}

	msg, err := ecies.Decrypt(k, &ecies.Ciphertext{Ephemeral: r, Data: ct.Data})
	if err != nil {
		return nil, err
	}
	x.log.Debug(context.Background(), "message decrypted", "bytes", len(msg))
	return msg, nil
}

func (x *Context) privateKey(priv string) (*keys.PrivateKey, error) {
	d, err := parseInt("private key", priv, false)
	if err != nil {
		// The input is a secret; keep it out of the error text.
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Input = logging.Placeholder()
		}
		return nil, err
	}
	return keys.NewPrivateKey(x.curve, d)
}

// Hash returns SHA-256(data) and its lowercase hexadecimal form.
func Hash(data []byte) ([32]byte, string) {
	d := sha256.Sum256(data)
	return d, d.Hex()
}
