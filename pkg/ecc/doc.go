// Package ecc is the text interface to the elliptic-curve primitives: curve
// construction, key generation, ECDSA signatures over SHA-256 and ECIES-style
// encryption on a short Weierstrass curve y^2 = x^3 + ax + b over F_p.
//
// Integers cross this boundary as text. Input is decimal, or hexadecimal with
// a 0x prefix; a leading zero never means octal. Output is decimal unless
// WithOutputBase(16) is given.
//
//	x, err := ecc.NamedCurve("secp256k1", "")
//	if err != nil {
//	    return err
//	}
//	priv, _ := x.GeneratePrivateKey()
//	pub, _ := x.GeneratePublicKey(priv)
//	sig, _ := x.Sign(msg, priv)
//	ok, _ := x.Verify(msg, sig, pub)
//
// The cipher XORs the message with the hex text of the shared x-coordinate.
// It provides neither real confidentiality nor integrity, and no operation
// runs in constant time.
package ecc
