package ecc

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
)

// PointText is an affine point with integer text coordinates.
type PointText struct {
	X string
	Y string
}

// SignatureText is an ECDSA signature with integer text components.
type SignatureText struct {
	R string
	S string
}

// CiphertextText is an encrypted message: the ephemeral public point and the
// ciphertext bytes, which have the length of the plaintext.
type CiphertextText struct {
	Ephemeral PointText
	Data      []byte
}

// parseInt reads decimal text, or hexadecimal text with a 0x prefix. A
// leading minus sign is accepted only when signed is set.
func parseInt(field, s string, signed bool) (*big.Int, error) {
	in := s
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "-") {
		if !signed {
			return nil, newParseError(field, in, "negative value")
		}
		neg = true
		s = s[1:]
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return nil, newParseError(field, in, "empty number")
	}
	if s[0] == '+' || s[0] == '-' {
		return nil, newParseError(field, in, "misplaced sign")
	}

	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, newParseError(field, in, "not a base-"+strconv.Itoa(base)+" integer")
	}
	if neg {
		x.Neg(x)
	}
	return x, nil
}

// parseUint64 reads a non-negative integer that fits in 64 bits.
func parseUint64(field, s string) (uint64, error) {
	x, err := parseInt(field, s, false)
	if err != nil {
		return 0, err
	}
	if x.BitLen() > 64 {
		return 0, newParseError(field, s, "exceeds 64 bits")
	}
	return x.Uint64(), nil
}

func parsePoint(field string, p PointText) (curves.Point, error) {
	x, err := parseInt(field+".x", p.X, false)
	if err != nil {
		return curves.Point{}, err
	}
	y, err := parseInt(field+".y", p.Y, false)
	if err != nil {
		return curves.Point{}, err
	}
	return curves.NewPoint(x, y), nil
}

func parseSignature(sig SignatureText) (*ecdsa.Signature, error) {
	r, err := parseInt("signature.r", sig.R, false)
	if err != nil {
		return nil, err
	}
	s, err := parseInt("signature.s", sig.S, false)
	if err != nil {
		return nil, err
	}
	return &ecdsa.Signature{R: r, S: s}, nil
}

// formatInt writes x in decimal, or in hexadecimal with a 0x prefix.
func formatInt(x *big.Int, base int) string {
	if base == 16 {
		if x.Sign() < 0 {
			return "-0x" + new(big.Int).Neg(x).Text(16)
		}
		return "0x" + x.Text(16)
	}
	return x.Text(10)
}

func formatPoint(p curves.Point, base int) PointText {
	return PointText{X: formatInt(p.X(), base), Y: formatInt(p.Y(), base)}
}
