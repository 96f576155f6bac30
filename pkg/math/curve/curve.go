// Package curve implements the prime order group used by the sharing and
// proof packages: secp256k1 points, scalars mod the group order, and the
// conversions between hash output, scalars and Diffie-Hellman secrets.
package curve

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// q is the order of the group, as a modulus for wide reductions.
	q *saferith.Modulus

	baseX secp256k1.FieldVal
	baseY secp256k1.FieldVal
)

// Order returns the order of the group as a saferith modulus.
func Order() *saferith.Modulus {
	return q
}

// FromHash converts a hash value to a Scalar.
//
// There is some disagreement about how this should be done.
// [NSA] suggests that this is done in the obvious
// manner, but [SECG] truncates the hash to the bit-length of the curve order
// first. We follow [SECG] because that's what OpenSSL does. Additionally,
// OpenSSL right shifts excess bits from the number if the hash is too large
// and we mirror that too.
//
// Taken from crypto/ecdsa.
func FromHash(h []byte) *Scalar {
	orderBits := q.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(h) > orderBytes {
		h = h[:orderBytes]
	}
	n := new(saferith.Nat).SetBytes(h)
	excess := len(h)*8 - orderBits
	if excess > 0 {
		n.Rsh(n, uint(excess), -1)
	}
	return NewScalar().SetNat(n)
}

func init() {
	qBytes, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	q = saferith.ModulusFromBytes(qBytes)

	Gx, _ := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	Gy, _ := hex.DecodeString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	baseX.SetByteSlice(Gx)
	baseY.SetByteSlice(Gy)
}
