package ecc

import (
	"io"

	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecc/pkg/logging"
)

// CurveParams holds the text form of a curve and the random source
// configuration for a Context.
type CurveParams struct {
	Name string    // Optional label used in logs (e.g. "secp256k1")
	P    string    // Field modulus, an odd prime
	A    string    // Coefficient a, may be negative
	B    string    // Coefficient b, may be negative
	N    string    // Order of G
	G    PointText // Generator
	Seed string    // Empty selects crypto/rand, otherwise a 64-bit seed
}

type config struct {
	logger      logging.Logger
	entropy     io.Reader
	base        int
	maxAttempts int
}

func defaultConfig() config {
	return config{
		logger:      logging.New(nil),
		base:        10,
		maxAttempts: ecdsa.DefaultMaxAttempts,
	}
}

// Option configures a Context.
type Option func(*config)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = logging.Discard()
		}
		c.logger = l
	}
}

// WithEntropy draws every random value from r, overriding CurveParams.Seed.
func WithEntropy(r io.Reader) Option {
	return func(c *config) { c.entropy = r }
}

// WithOutputBase selects decimal (10) or 0x-prefixed hexadecimal (16) output.
func WithOutputBase(base int) Option {
	return func(c *config) { c.base = base }
}

// WithMaxSignAttempts bounds the nonces drawn per signature.
func WithMaxSignAttempts(n int) Option {
	return func(c *config) { c.maxAttempts = n }
}
