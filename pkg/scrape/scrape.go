// Package scrape implements the SCRAPE variant of publicly verifiable secret
// sharing over DDH.
//
// The protocol surface matches package pvss, with two differences: the dealer
// commits to the n evaluations h•p(i) instead of the t coefficients, and all
// encrypted shares are proven in a single batched DLEQ. Verification of the
// commitment vector uses a dual-code orthogonality test ("perp check"), so
// the verifier does O(n) group work instead of O(nt).
//
// The sharing polynomial has degree t-1; any t decrypted shares recover the
// secret.
package scrape

import (
	"errors"
	"io"

	"github.com/taurusgroup/pvss/internal/pool"
	"github.com/taurusgroup/pvss/pkg/keys"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/math/polynomial"
	"github.com/taurusgroup/pvss/pkg/math/sample"
	"github.com/taurusgroup/pvss/pkg/party"
	"github.com/taurusgroup/pvss/pkg/zk/dleq"
)

// ErrUnknownParticipant is returned by ReorderDecryptShares when a public key
// is absent from the participant list.
var ErrUnknownParticipant = errors.New("scrape: public key not in participant list")

// Escrow is the dealer-side bundle for one secret; see pvss.Escrow.
type Escrow struct {
	Threshold uint32
	// ExtraGen is the second generator h = r•G, fresh per escrow.
	ExtraGen *curve.Point
	// Secret is the public committed secret point G•p(0).
	Secret *curve.Point
	// Proof attests log_G(Secret) = log_h(h•p(0)).
	Proof *dleq.Proof

	poly *polynomial.Polynomial
}

// EncryptedShare is participant i's share encrypted to its public key:
// Eᵢ = sᵢ•PKᵢ. The matching proof lives in the batched ParallelProofs.
type EncryptedShare struct {
	E *curve.Point
}

// DecryptedShare is a decrypted share Sᵢ = G•sᵢ with a proof of correct
// decryption. The participant order is tracked separately; see
// ReorderDecryptShares.
type DecryptedShare struct {
	// S = xᵢ⁻¹•Eᵢ
	S *curve.Point
	// Proof attests log_G(PKᵢ) = log_S(Eᵢ) = xᵢ.
	Proof *dleq.Proof
}

// IndexedShare pairs a decrypted share with the ID recovered from the
// participant list.
type IndexedShare struct {
	ID    party.ID
	Share *DecryptedShare
}

// NewEscrow prepares a sharing with the given threshold; the polynomial has
// degree threshold-1. threshold must be at least 1.
func NewEscrow(rand io.Reader, threshold uint32) *Escrow {
	if threshold < 1 {
		panic("scrape.NewEscrow: threshold must be at least 1")
	}
	poly := polynomial.NewPolynomial(rand, threshold-1)
	extraGen := sample.Scalar(rand).ActOnBase()

	s0 := poly.Constant()
	secret := s0.ActOnBase()
	proof := dleq.NewProof(rand, s0, &dleq.Statement{
		G1: curve.NewBasePoint(), H1: secret,
		G2: extraGen, H2: s0.Act(extraGen),
	})

	return &Escrow{
		Threshold: threshold,
		ExtraGen:  extraGen,
		Secret:    secret,
		Proof:     proof,
		poly:      poly,
	}
}

// Wipe zeroes the polynomial's coefficient memory. The escrow must not be
// used to create shares afterwards.
func (e *Escrow) Wipe() {
	e.poly.Wipe()
}

// SharesCreate evaluates the polynomial at 1..n and returns the commitments
// Vᵢ = sᵢ•h, one batched proof over all statements (h, Vᵢ, PKᵢ, Eᵢ), and the
// encrypted shares Eᵢ = sᵢ•PKᵢ, all in participant order. pl may be nil.
func (e *Escrow) SharesCreate(rand io.Reader, participants party.Participants, pl *pool.Pool) ([]*curve.Point, *dleq.ParallelProofs, []*EncryptedShare) {
	n := len(participants)

	type evaluation struct {
		si   *curve.Scalar
		v, e *curve.Point
	}
	results := pl.Parallelize(n, func(i int) interface{} {
		si := e.poly.Evaluate(party.ID(i + 1).Scalar())
		return &evaluation{si: si, v: si.Act(e.ExtraGen), e: si.Act(participants[i])}
	})

	commitments := make([]*curve.Point, n)
	encrypted := make([]*EncryptedShare, n)
	witnesses := make([]*curve.Scalar, n)
	statements := make([]*dleq.Statement, n)
	for i, r := range results {
		ev := r.(*evaluation)
		commitments[i] = ev.v
		encrypted[i] = &EncryptedShare{E: ev.e}
		witnesses[i] = ev.si
		statements[i] = &dleq.Statement{G1: e.ExtraGen, H1: ev.v, G2: participants[i], H2: ev.e}
	}
	proofs := dleq.NewParallelProofs(rand, witnesses, statements)
	for _, w := range witnesses {
		w.Zero()
	}
	return commitments, proofs, encrypted
}

// VerifyEncryptedShares checks the batched DLEQ proof and then the perp-code
// orthogonality of the commitment vector. rand supplies the verifier's random
// dual codeword; pl may be nil.
//
// The perp check draws a random polynomial m of degree n-t-1 and verifies
// Σᵢ (vᵢ·m(i))•Vᵢ = 0 with vᵢ = Πⱼ≠ᵢ (i-j)⁻¹. Commitment vectors that are
// not evaluations of a degree < t polynomial pass with probability at most
// 1/q. For n = t the dual code is trivial and the check passes vacuously.
func VerifyEncryptedShares(rand io.Reader, extraGen *curve.Point, threshold uint32, commitments []*curve.Point, proofs *dleq.ParallelProofs, encrypted []*EncryptedShare, participants party.Participants, pl *pool.Pool) bool {
	n := len(participants)
	if len(commitments) != n || len(encrypted) != n || n == 0 {
		return false
	}
	statements := make([]*dleq.Statement, n)
	for i := range statements {
		if encrypted[i] == nil || encrypted[i].E == nil {
			return false
		}
		statements[i] = &dleq.Statement{G1: extraGen, H1: commitments[i], G2: participants[i], H2: encrypted[i].E}
	}
	if !proofs.Verify(statements) {
		return false
	}
	if uint32(n) <= threshold {
		// the code spans the whole space; the dual is trivial
		return true
	}

	m := polynomial.NewPolynomial(rand, uint32(n)-threshold-1)
	terms := pl.Parallelize(n, func(i int) interface{} {
		ci := dualWeight(i+1, n)
		ci.Multiply(ci, m.Evaluate(party.ID(i+1).Scalar()))
		return ci.Act(commitments[i])
	})
	sum := curve.NewIdentityPoint()
	for _, t := range terms {
		sum.Add(sum, t.(*curve.Point))
	}
	return sum.IsIdentity()
}

// dualWeight computes vᵢ = Πⱼ₌₁ⁿ,ⱼ≠ᵢ (i-j)⁻¹.
func dualWeight(i, n int) *curve.Scalar {
	product := curve.NewScalarUInt32(1)
	diff := curve.NewScalar()
	for j := 1; j <= n; j++ {
		if j == i {
			continue
		}
		diff.Subtract(curve.NewScalarUInt32(uint32(i)), curve.NewScalarUInt32(uint32(j)))
		product.Multiply(product, diff)
	}
	return product.Invert(product)
}

// ShareDecrypt decrypts the participant's share with its key pair and proves
// the decryption correct.
func ShareDecrypt(rand io.Reader, kp *keys.KeyPair, share *EncryptedShare) *DecryptedShare {
	xInv := curve.NewScalar().Invert(kp.Private)
	s := xInv.Act(share.E)
	proof := dleq.NewProof(rand, kp.Private, &dleq.Statement{
		G1: curve.NewBasePoint(), H1: kp.Public,
		G2: s, H2: share.E,
	})
	return &DecryptedShare{S: s, Proof: proof}
}

// VerifyDecryptedShare checks a decrypted share against the encrypted share
// it came from and the participant's public key.
func VerifyDecryptedShare(share *EncryptedShare, pk *curve.Point, dec *DecryptedShare) bool {
	if share == nil || dec == nil || dec.S == nil {
		return false
	}
	return dec.Proof.Verify(&dleq.Statement{
		G1: curve.NewBasePoint(), H1: pk,
		G2: dec.S, H2: share.E,
	})
}

// ReorderDecryptShares recovers each share's ID by looking up its public key
// in the participant list. The output keeps the order of the input, not the
// participant order. An absent key yields ErrUnknownParticipant.
func ReorderDecryptShares(participants party.Participants, pks []*curve.Point, decs []*DecryptedShare) ([]*IndexedShare, error) {
	if len(pks) != len(decs) {
		return nil, errors.New("scrape.ReorderDecryptShares: mismatched lengths")
	}
	indexed := make([]*IndexedShare, len(decs))
	for i, pk := range pks {
		id := participants.Index(pk)
		if id == 0 {
			return nil, ErrUnknownParticipant
		}
		indexed[i] = &IndexedShare{ID: id, Share: decs[i]}
	}
	return indexed, nil
}

// Recover interpolates the decrypted shares at zero, in the exponent,
// yielding G•p(0). The caller selects exactly threshold shares with distinct
// IDs; VerifySecret is the canonical check that recovery succeeded.
func Recover(shares []*IndexedShare) *curve.Point {
	ids := make([]party.ID, len(shares))
	for i, s := range shares {
		ids[i] = s.ID
	}
	coefficients := polynomial.Lagrange(ids)

	scalars := make([]*curve.Scalar, len(shares))
	points := make([]*curve.Point, len(shares))
	for i, s := range shares {
		scalars[i] = coefficients[s.ID]
		points[i] = s.Share.S
	}
	return curve.LinearCombination(scalars, points)
}

// VerifySecret checks the escrow proof against a (possibly recovered)
// secret. The commitment h•p(0) is re-interpolated from the first threshold
// evaluation commitments. Fewer commitments than the threshold is a
// precondition violation.
func VerifySecret(threshold uint32, extraGen *curve.Point, commitments []*curve.Point, secret *curve.Point, proof *dleq.Proof) bool {
	if uint32(len(commitments)) < threshold || threshold == 0 {
		panic("scrape.VerifySecret: not enough commitments")
	}
	ids := make([]party.ID, threshold)
	for i := range ids {
		ids[i] = party.ID(i + 1)
	}
	coefficients := polynomial.Lagrange(ids)
	scalars := make([]*curve.Scalar, threshold)
	points := make([]*curve.Point, threshold)
	for i, id := range ids {
		scalars[i] = coefficients[id]
		points[i] = commitments[i]
	}
	c0 := curve.LinearCombination(scalars, points)

	return proof.Verify(&dleq.Statement{
		G1: curve.NewBasePoint(), H1: secret,
		G2: extraGen, H2: c0,
	})
}
