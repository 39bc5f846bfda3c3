// Package sha256 is a from-scratch SHA-256 (FIPS 180-4) used as the message
// hash of the signature engine and as a standalone digest.
package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"hash"
	"math/big"
)

const (
	// Size is the digest size in bytes.
	Size = 32
	// BlockSize is the compression block size in bytes.
	BlockSize = 64
)

// Digest is a SHA-256 output.
type Digest [Size]byte

// Hex returns the lowercase hexadecimal form of d.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Int interprets d as a big-endian unsigned integer.
func (d Digest) Int() *big.Int {
	return new(big.Int).SetBytes(d[:])
}

var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Pad returns msg followed by the SHA-256 padding: a 0x80 byte, zero bytes up
// to 56 mod 64, and the message length in bits as a big-endian uint64.
func Pad(msg []byte) []byte {
	size := len(msg)
	padded := make([]byte, ((size+9+BlockSize-1)/BlockSize)*BlockSize)
	copy(padded, msg)
	padded[size] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-8:], uint64(size)*8)
	return padded
}

// Sum256 returns the digest of data.
func Sum256(data []byte) Digest {
	h := initState
	block(&h, Pad(data))
	return output(&h)
}

func output(h *[8]uint32) Digest {
	var d Digest
	for i, v := range h {
		binary.BigEndian.PutUint32(d[4*i:], v)
	}
	return d
}

// digest is the streaming form. It buffers a partial block and pads on Sum.
type digest struct {
	h   [8]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a hash.Hash computing SHA-256.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = initState
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			block(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nn, nil
}

// Sum appends the digest of the data written so far to b. It does not change
// the underlying state.
func (d *digest) Sum(b []byte) []byte {
	c := *d
	sum := c.checkSum()
	return append(b, sum[:]...)
}

func (d *digest) checkSum() Digest {
	bitLen := d.len * 8

	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	var t uint64
	if d.len%BlockSize < 56 {
		t = 56 - d.len%BlockSize
	} else {
		t = BlockSize + 56 - d.len%BlockSize
	}
	binary.BigEndian.PutUint64(tmp[t:], bitLen)
	d.Write(tmp[:t+8])

	if d.nx != 0 {
		panic(errors.New("sha256: buffered bytes left after final block"))
	}
	return output(&d.h)
}
