package curve

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/taurusgroup/pvss/internal/params"
)

// Scalar is an element of ℤ_q, where q is the order of the group.
type Scalar struct {
	s secp256k1.ModNScalar
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// NewScalarUInt32 returns a new Scalar set to the small integer n.
func NewScalarUInt32(n uint32) *Scalar {
	var s Scalar
	s.s.SetInt(n)
	return &s
}

// NewScalarBigInt returns a new Scalar from a big.Int.
func NewScalarBigInt(n *big.Int) *Scalar {
	var s Scalar
	return s.SetBigInt(n)
}

// Add sets s = x + y mod q, and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.s.Add2(&x.s, &y.s)
	return s
}

// Subtract sets s = x - y mod q, and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	var yNeg secp256k1.ModNScalar
	yNeg.NegateVal(&y.s)
	s.s.Add2(&x.s, &yNeg)
	return s
}

// Negate sets s = -x mod q, and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.NegateVal(&x.s)
	return s
}

// Multiply sets s = x * y mod q, and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	s.s.Mul2(&x.s, &y.s)
	return s
}

// MultiplyAdd sets s = x * y + z mod q, and returns s.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Mul2(&x.s, &y.s)
	r.Add(&z.s)
	s.s.Set(&r)
	return s
}

// Invert sets s to the inverse of a nonzero scalar x, and returns s.
//
// If x is zero, Invert panics; a zero divisor is a precondition violation.
func (s *Scalar) Invert(x *Scalar) *Scalar {
	if x.IsZero() {
		panic("curve.Scalar.Invert: zero scalar")
	}
	s.s.InverseValNonConst(&x.s)
	return s
}

// Set sets s = x, and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	s.s.Set(&x.s)
	return s
}

// SetUInt32 sets s to the small integer n, and returns s.
func (s *Scalar) SetUInt32(n uint32) *Scalar {
	s.s.SetInt(n)
	return s
}

// SetBigInt sets s = x mod q, and returns s.
func (s *Scalar) SetBigInt(x *big.Int) *Scalar {
	var n big.Int
	n.Mod(x, orderBig())
	buf := make([]byte, params.BytesScalar)
	n.FillBytes(buf)
	s.s.SetByteSlice(buf)
	return s
}

// SetNat sets s = x mod q, and returns s.
func (s *Scalar) SetNat(x *saferith.Nat) *Scalar {
	reduced := new(saferith.Nat).Mod(x, q)
	buf := make([]byte, params.BytesScalar)
	s.s.SetByteSlice(reduced.FillBytes(buf))
	return s
}

// Equal returns true if s and t are equal.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equals(&t.s)
}

// IsZero returns true if s is zero.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Zero clears the scalar's memory and sets it to zero.
func (s *Scalar) Zero() {
	s.s.Zero()
}

// Act returns x•P, the scalar multiplication of P by s.
func (s *Scalar) Act(p *Point) *Point {
	var r Point
	return r.ScalarMult(s, p)
}

// ActOnBase returns s•G.
func (s *Scalar) ActOnBase() *Point {
	var r Point
	return r.ScalarBaseMult(s)
}

// Bytes returns the canonical 32 byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	buf := make([]byte, params.BytesScalar)
	s.s.PutBytesUnchecked(buf)
	return buf
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (s *Scalar) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (*Scalar) Domain() string {
	return "Scalar"
}

func orderBig() *big.Int {
	return new(big.Int).SetBytes(q.Bytes())
}
