package curve

import (
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/taurusgroup/pvss/internal/params"
)

// Point is an element of the group of prime order q.
type Point struct {
	p secp256k1.JacobianPoint
}

// NewIdentityPoint returns a point set to ∞.
func NewIdentityPoint() *Point {
	var v Point
	return &v
}

// NewBasePoint returns a point initialized to the group generator G.
func NewBasePoint() *Point {
	var v Point
	v.p.X.Set(&baseX)
	v.p.Y.Set(&baseY)
	v.p.Z.SetInt(1)
	return &v
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	v.p.Set(&u.p)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &q.p, &r)
	v.p.Set(&r)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	var qNeg Point
	qNeg.Negate(q)
	return v.Add(p, &qNeg)
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.Set(p)
	v.p.Y.Negate(1)
	v.p.Y.Normalize()
	return v
}

// ScalarMult sets v = x • q, and returns v.
func (v *Point) ScalarMult(x *Scalar, q *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&x.s, &q.p, &r)
	v.p.Set(&r)
	return v
}

// ScalarBaseMult sets v = x • G, where G is the group generator, and returns v.
func (v *Point) ScalarBaseMult(x *Scalar) *Point {
	secp256k1.ScalarBaseMultNonConst(&x.s, &v.p)
	return v
}

// Equal returns true if v is equivalent to u.
func (v *Point) Equal(u *Point) bool {
	if v.IsIdentity() || u.IsIdentity() {
		return v.IsIdentity() && u.IsIdentity()
	}
	v.toAffine()
	u.toAffine()
	return v.p.X.Equals(&u.p.X) && v.p.Y.Equals(&u.p.Y)
}

// IsIdentity returns true if the point is ∞.
func (v *Point) IsIdentity() bool {
	return (v.p.X.IsZero() && v.p.Y.IsZero()) || v.p.Z.IsZero()
}

// LinearCombination returns Σᵢ scalars[i] • points[i].
//
// Both slices must have the same length.
func LinearCombination(scalars []*Scalar, points []*Point) *Point {
	sum := NewIdentityPoint()
	var tmp Point
	for i := range scalars {
		tmp.ScalarMult(scalars[i], points[i])
		sum.Add(sum, &tmp)
	}
	return sum
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
// It writes the compressed point to w.
func (v *Point) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, params.BytesPoint)
	if err := v.marshalTo(buf); err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (*Point) Domain() string {
	return "Point"
}

func (v *Point) toAffine() *Point {
	if !v.p.Z.IsOne() {
		v.p.ToAffine()
	}
	return v
}
