// Package random provides the uniform integer source used for private keys,
// signature nonces and ephemeral keys.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math/big"
	"math/rand/v2"
	"sync"

	"github.com/smallyu/go-ecc/internal/crypto/sha256"
)

// ErrEmptyRange is returned when a draw is requested from an empty range.
var ErrEmptyRange = errors.New("random: empty range")

var one = big.NewInt(1)

// Source draws uniformly distributed integers from an underlying byte stream.
// Draws are serialized, so one Source can be shared between goroutines
// without two callers ever reading the same bytes.
type Source struct {
	mu sync.Mutex
	r  io.Reader
}

// NewSeeded returns a deterministic Source. Two sources built from the same
// seed produce the same sequence of draws. The ChaCha8 key is the SHA-256 of
// the big-endian seed.
func NewSeeded(seed uint64) *Source {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seed)
	key := sha256.Sum256(b[:])
	return &Source{r: rand.NewChaCha8([32]byte(key))}
}

// NewSecure returns a Source backed by crypto/rand.
func NewSecure() *Source {
	return &Source{r: crand.Reader}
}

// FromReader returns a Source reading from r.
func FromReader(r io.Reader) *Source {
	return &Source{r: r}
}

// Int returns a uniform integer in [0, max).
func (s *Source) Int(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, ErrEmptyRange
	}

	bitLen := max.BitLen()
	b := make([]byte, (bitLen+7)/8)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Rejection sampling on the smallest byte string that covers max.
	for {
		if _, err := io.ReadFull(s.r, b); err != nil {
			return nil, err
		}
		if excess := len(b)*8 - bitLen; excess > 0 {
			b[0] &= byte(0xff >> excess)
		}
		k := new(big.Int).SetBytes(b)
		if k.Cmp(max) < 0 {
			return k, nil
		}
	}
}

// IntRange returns a uniform integer in [lo, hi].
func (s *Source) IntRange(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil || hi.Cmp(lo) < 0 {
		return nil, ErrEmptyRange
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, one)

	k, err := s.Int(width)
	if err != nil {
		return nil, err
	}
	return k.Add(k, lo), nil
}
