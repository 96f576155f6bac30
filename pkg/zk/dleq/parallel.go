package dleq

import (
	"io"

	"github.com/taurusgroup/pvss/pkg/hash"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/math/sample"
)

// ParallelProofs is a batched proof over several statements of the same
// shape. A single challenge binds the commitments of all statements, so the
// verifier processes one challenge value regardless of the batch size.
type ParallelProofs struct {
	C *curve.Scalar
	Z []*curve.Scalar
}

// ProveParallel creates a batched proof for the statements sts with witnesses
// xs, using the fresh random scalars ws as commitment randomness.
//
// The slices must all have the same length; a mismatch is a programmer error.
func ProveParallel(ws, xs []*curve.Scalar, sts []*Statement) *ParallelProofs {
	if len(ws) != len(xs) || len(xs) != len(sts) {
		panic("dleq.ProveParallel: mismatched lengths")
	}

	commitments := make([]*curve.Point, 0, 2*len(sts))
	for i, st := range sts {
		commitments = append(commitments, ws[i].Act(st.G1), ws[i].Act(st.G2))
	}
	c := challengeAll(commitments)

	zs := make([]*curve.Scalar, len(sts))
	for i := range zs {
		// zᵢ = wᵢ + c·xᵢ
		zs[i] = curve.NewScalar().MultiplyAdd(c, xs[i], ws[i])
	}
	return &ParallelProofs{C: c, Z: zs}
}

// NewParallelProofs creates a batched proof, sampling the commitment
// randomness from rand.
func NewParallelProofs(rand io.Reader, xs []*curve.Scalar, sts []*Statement) *ParallelProofs {
	ws := make([]*curve.Scalar, len(xs))
	for i := range ws {
		ws[i] = sample.Scalar(rand)
	}
	return ProveParallel(ws, xs, sts)
}

// Verify reports whether the batched proof holds for all statements.
// A length mismatch or malformed input is reported as false.
func (p *ParallelProofs) Verify(sts []*Statement) bool {
	if p == nil || p.C == nil || len(p.Z) != len(sts) {
		return false
	}
	commitments := make([]*curve.Point, 0, 2*len(sts))
	for i, st := range sts {
		if !st.valid() || p.Z[i] == nil {
			return false
		}
		commitments = append(commitments,
			recommit(p.C, p.Z[i], st.G1, st.H1),
			recommit(p.C, p.Z[i], st.G2, st.H2))
	}
	return challengeAll(commitments).Equal(p.C)
}

// challengeAll hashes a1₁‖a2₁‖a1₂‖a2₂‖… to a scalar.
func challengeAll(commitments []*curve.Point) *curve.Scalar {
	h := hash.New()
	for _, a := range commitments {
		_ = h.WriteAny(a)
	}
	return curve.FromHash(h.Sum())
}
