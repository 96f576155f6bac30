// Package dleq implements non-interactive Chaum-Pedersen proofs of discrete
// logarithm equality, in single and parallel (batched) form.
//
// For a statement (g1, h1, g2, h2) the prover shows knowledge of a scalar x
// with h1 = x•g1 and h2 = x•g2, without revealing x. The verifier challenge
// is derived from the transcript of commitment points (Fiat-Shamir).
package dleq

import (
	"io"

	"github.com/taurusgroup/pvss/pkg/hash"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/math/sample"
)

// Statement is the public input (g1, h1, g2, h2) of a proof.
type Statement struct {
	G1, H1 *curve.Point
	G2, H2 *curve.Point
}

// Proof is a non-interactive proof of discrete logarithm equality.
type Proof struct {
	// C is the challenge derived from the commitment transcript.
	C *curve.Scalar
	// Z is the response w + C·x.
	Z *curve.Scalar
}

func (st *Statement) valid() bool {
	return st != nil && st.G1 != nil && st.H1 != nil && st.G2 != nil && st.H2 != nil
}

// challenge hashes the canonical encodings of the commitment points, in
// order, to a scalar.
func challenge(commitments ...*curve.Point) *curve.Scalar {
	h := hash.New()
	for _, a := range commitments {
		_ = h.WriteAny(a)
	}
	return curve.FromHash(h.Sum())
}

// Prove creates a proof for st with witness x, using the fresh random
// scalar w as commitment randomness. w must never be reused.
func Prove(w, x *curve.Scalar, st *Statement) *Proof {
	a1 := w.Act(st.G1)
	a2 := w.Act(st.G2)
	c := challenge(a1, a2)
	// z = w + c·x
	z := curve.NewScalar().MultiplyAdd(c, x, w)
	return &Proof{C: c, Z: z}
}

// NewProof creates a proof for st with witness x, sampling the commitment
// randomness from rand.
func NewProof(rand io.Reader, x *curve.Scalar, st *Statement) *Proof {
	return Prove(sample.Scalar(rand), x, st)
}

// Verify reports whether the proof holds for st. Malformed input is reported
// as false, never as an error.
func (p *Proof) Verify(st *Statement) bool {
	if p == nil || p.C == nil || p.Z == nil || !st.valid() {
		return false
	}
	a1 := recommit(p.C, p.Z, st.G1, st.H1)
	a2 := recommit(p.C, p.Z, st.G2, st.H2)
	return challenge(a1, a2).Equal(p.C)
}

// recommit recomputes the commitment point z•g - c•h, which equals w•g for a
// valid proof.
func recommit(c, z *curve.Scalar, g, h *curve.Point) *curve.Point {
	var zg, ch curve.Point
	zg.ScalarMult(z, g)
	ch.ScalarMult(c, h)
	return zg.Subtract(&zg, &ch)
}
