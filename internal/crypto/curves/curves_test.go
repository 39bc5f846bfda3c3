package curves

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyCurve is y^2 = x^3 + 2x + 2 over F_17. The group is cyclic of order 19
// and generated by (5, 1).
func toyCurve(t testing.TB) *Curve {
	t.Helper()
	c, err := New(Params{
		Name: "toy17",
		P:    big.NewInt(17),
		A:    big.NewInt(2),
		B:    big.NewInt(2),
		N:    big.NewInt(19),
		Gx:   big.NewInt(5),
		Gy:   big.NewInt(1),
	})
	require.NoError(t, err)
	return c
}

func pt(x, y int64) Point {
	return NewPoint(big.NewInt(x), big.NewInt(y))
}

func bigFromString(t testing.TB, s string, base int) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, base)
	require.True(t, ok, "bad literal %s", s)
	return v
}

func TestNewValidation(t *testing.T) {
	valid := func() Params {
		return Params{
			P: big.NewInt(17), A: big.NewInt(2), B: big.NewInt(2),
			N: big.NewInt(19), Gx: big.NewInt(5), Gy: big.NewInt(1),
		}
	}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"missing modulus", func(p *Params) { p.P = nil }},
		{"composite modulus", func(p *Params) { p.P = big.NewInt(21) }},
		{"tiny modulus", func(p *Params) { p.P = big.NewInt(3) }},
		{"order too small", func(p *Params) { p.N = big.NewInt(1) }},
		{"wrong order", func(p *Params) { p.N = big.NewInt(18) }},
		{"generator off curve", func(p *Params) { p.Gy = big.NewInt(2) }},
		{"generator unreduced", func(p *Params) { p.Gx = big.NewInt(22) }},
		{"singular", func(p *Params) { p.A = big.NewInt(0); p.B = big.NewInt(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid()
			tt.mutate(&params)
			_, err := New(params)
			assert.ErrorIs(t, err, ErrInvalidCurve)
		})
	}

	t.Run("modulus messages", func(t *testing.T) {
		for _, m := range []int64{2, 3} {
			params := valid()
			params.P = big.NewInt(m)
			_, err := New(params)
			assert.ErrorContains(t, err, "modulus must be a prime greater than 3", "p=%d", m)
		}

		params := valid()
		params.P = big.NewInt(21)
		_, err := New(params)
		assert.ErrorContains(t, err, "modulus 21 is not prime")
	})

	t.Run("coefficients are reduced", func(t *testing.T) {
		params := valid()
		params.A = big.NewInt(2 - 17)
		params.B = big.NewInt(2 + 34)
		c, err := New(params)
		require.NoError(t, err)
		assert.Equal(t, int64(2), c.A().Int64())
		assert.Equal(t, int64(2), c.B().Int64())
	})
}

func TestAddIdentity(t *testing.T) {
	c := toyCurve(t)
	g := c.Generator()

	sum, err := c.Add(g, Infinity())
	require.NoError(t, err)
	assert.True(t, sum.Equal(g))

	sum, err = c.Add(Infinity(), g)
	require.NoError(t, err)
	assert.True(t, sum.Equal(g))

	sum, err = c.Add(Infinity(), Infinity())
	require.NoError(t, err)
	assert.True(t, sum.IsInfinity())
}

func TestAddKnownMultiples(t *testing.T) {
	c := toyCurve(t)
	g := c.Generator()

	// Multiples of (5, 1) on the toy curve.
	want := []Point{
		pt(5, 1), pt(6, 3), pt(10, 6), pt(3, 1), pt(9, 16), pt(16, 13),
		pt(0, 6), pt(13, 7), pt(7, 6), pt(7, 11), pt(13, 10), pt(0, 11),
		pt(16, 4), pt(9, 1), pt(3, 16), pt(10, 11), pt(6, 14), pt(5, 16),
	}

	acc := Infinity()
	for i, w := range want {
		var err error
		acc, err = c.Add(acc, g)
		require.NoError(t, err)
		assert.True(t, acc.Equal(w), "%dG = %s, want %s", i+1, acc, w)
		assert.True(t, c.IsOnCurve(acc))

		m, err := c.ScalarBaseMult(big.NewInt(int64(i + 1)))
		require.NoError(t, err)
		assert.True(t, m.Equal(w), "ScalarBaseMult(%d) = %s", i+1, m)
	}

	acc, err := c.Add(acc, g)
	require.NoError(t, err)
	assert.True(t, acc.IsInfinity(), "19G must be infinity")
}

func TestDoublingMatchesFormula(t *testing.T) {
	c := toyCurve(t)
	p := pt(6, 3)

	sum, err := c.Add(p, p)
	require.NoError(t, err)
	dbl, err := c.Double(p)
	require.NoError(t, err)
	assert.True(t, sum.Equal(dbl))

	// s = (3*36 + 2) / 6 = 110 * 6^-1 = 8 * 3 = 24 = 7 (mod 17)
	// x = 49 - 12 = 37 = 3, y = 7*(6-3) - 3 = 18 = 1
	assert.True(t, dbl.Equal(pt(3, 1)))
}

func TestVerticalChord(t *testing.T) {
	c := toyCurve(t)
	p := pt(7, 6)
	neg := c.Neg(p)
	assert.True(t, neg.Equal(pt(7, 11)))

	sum, err := c.Add(p, neg)
	require.NoError(t, err)
	assert.True(t, sum.IsInfinity())
}

func TestZeroZeroIsAFinitePoint(t *testing.T) {
	// y^2 = x^3 + x over F_23 contains (0, 0), a point of order two.
	c, err := New(Params{
		P: big.NewInt(23), A: big.NewInt(1), B: big.NewInt(0),
		N: big.NewInt(2), Gx: big.NewInt(0), Gy: big.NewInt(0),
	})
	require.NoError(t, err)

	g := c.Generator()
	assert.False(t, g.IsInfinity())
	assert.True(t, c.IsOnCurve(g))
	assert.False(t, g.Equal(Infinity()))

	sum, err := c.Add(Infinity(), g)
	require.NoError(t, err)
	assert.True(t, sum.Equal(g))

	dbl, err := c.Double(g)
	require.NoError(t, err)
	assert.True(t, dbl.IsInfinity())

	three, err := c.ScalarBaseMult(big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, three.Equal(g))
}

func TestScalarMultEdgeCases(t *testing.T) {
	c := toyCurve(t)
	g := c.Generator()

	zero, err := c.ScalarMult(g, big.NewInt(0))
	require.NoError(t, err)
	assert.True(t, zero.IsInfinity())

	inf, err := c.ScalarMult(Infinity(), big.NewInt(7))
	require.NoError(t, err)
	assert.True(t, inf.IsInfinity())

	neg, err := c.ScalarMult(g, big.NewInt(-1))
	require.NoError(t, err)
	assert.True(t, neg.Equal(pt(5, 16)))

	wrapped, err := c.ScalarMult(g, big.NewInt(19+4))
	require.NoError(t, err)
	four, err := c.ScalarMult(g, big.NewInt(4))
	require.NoError(t, err)
	assert.True(t, wrapped.Equal(four))

	_, err = c.ScalarMult(g, nil)
	assert.Error(t, err)
}

func TestAddOffCurveInputs(t *testing.T) {
	c := toyCurve(t)
	// Coordinates that only differ by p compare equal after reduction, so this
	// is a doubling and not a division by zero.
	a := pt(5, 1)
	b := pt(5+17, 1)
	sum, err := c.Add(a, b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(pt(6, 3)))
}

func TestIsOnCurve(t *testing.T) {
	c := toyCurve(t)
	assert.True(t, c.IsOnCurve(Infinity()))
	assert.True(t, c.IsOnCurve(pt(0, 6)))
	assert.False(t, c.IsOnCurve(pt(0, 7)))
	assert.False(t, c.IsOnCurve(pt(-12, 6)))
	assert.False(t, c.IsOnCurve(pt(5, 18)))

	assert.NoError(t, c.ValidatePublic(pt(0, 6)))
	assert.ErrorIs(t, c.ValidatePublic(Infinity()), ErrPointNotOnCurve)
	assert.ErrorIs(t, c.ValidatePublic(pt(1, 1)), ErrPointNotOnCurve)
}

func TestPointAccessorsCopy(t *testing.T) {
	x := big.NewInt(5)
	p := NewPoint(x, big.NewInt(1))
	x.SetInt64(99)
	assert.Equal(t, int64(5), p.X().Int64())

	px := p.X()
	px.SetInt64(42)
	assert.Equal(t, int64(5), p.X().Int64())

	_, _, ok := Infinity().Coords()
	assert.False(t, ok)
	assert.Nil(t, Infinity().X())
	assert.Equal(t, "Infinity", Infinity().String())
	assert.Equal(t, "(5, 1)", p.String())
}

func TestSecp256k1ScalarMultVectors(t *testing.T) {
	c := Secp256k1()

	tests := []struct {
		px, py, k, wx, wy string
	}{
		{
			px: "55066263022277343669578718895168534326250603453777594175500187360389116729240",
			py: "32670510020758816978083085130507043184471273380659243275938904335757337482424",
			k:  "9329907417039784576193289564026082738356516376004064111588951100120578211561",
			wx: "13255332944095317743365457951593438056358197283853040361054433460325789958939",
			wy: "19232106384549326684482202234590920947423692687234453473869945444749204252360",
		},
		{
			px: "54609349765814448718547960780397926716369689945570650172108049801429130973471",
			py: "87446463567624540407413009967735707937419667663481099986997902514538910950850",
			k:  "26469818958866652270687964108165471502529280030151630022280853366501018060089",
			wx: "10832260848141056500041504337524510254060096982033552532875360709844280160192",
			wy: "30181146142589002118874965738111095223489103249095720455546205218568118548357",
		},
	}

	for i, tt := range tests {
		p := NewPoint(bigFromString(t, tt.px, 10), bigFromString(t, tt.py, 10))
		require.True(t, c.IsOnCurve(p), "#%d input not on curve", i)

		got, err := c.ScalarMult(p, bigFromString(t, tt.k, 10))
		require.NoError(t, err)
		assert.Equal(t, tt.wx, got.X().String(), "#%d x", i)
		assert.Equal(t, tt.wy, got.Y().String(), "#%d y", i)
	}
}

func TestSecp256k1MatchesDecred(t *testing.T) {
	c := Secp256k1()
	ref := secp256k1.S256()

	scalars := []string{
		"1",
		"2",
		"e70686214fdd53e3d94704ad90015c324e130559fcdd5a1ef8a3e5a6d68d9079",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	}
	for _, s := range scalars {
		k := bigFromString(t, s, 16)
		got, err := c.ScalarBaseMult(k)
		require.NoError(t, err)

		wx, wy := ref.ScalarBaseMult(k.Bytes())
		assert.Equal(t, 0, wx.Cmp(got.X()), "k=%s", s)
		assert.Equal(t, 0, wy.Cmp(got.Y()), "k=%s", s)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"secp256k1", "P-224", "p256", "prime256v1", "P-384", "secp521r1"} {
		t.Run(name, func(t *testing.T) {
			c, err := ByName(name)
			require.NoError(t, err)

			ng, err := c.ScalarBaseMult(c.N())
			require.NoError(t, err)
			assert.True(t, ng.IsInfinity())

			params := c.Params()
			again, err := New(params)
			require.NoError(t, err)
			assert.True(t, again.Generator().Equal(c.Generator()))
		})
	}

	_, err := ByName("curve25519")
	assert.ErrorIs(t, err, ErrInvalidCurve)

	assert.Equal(t, 256, Secp256k1().BitSize())
	assert.Same(t, P256(), P256())
}
