// Package pvss implements Schoenmakers' publicly verifiable secret sharing.
//
// A dealer splits a group-element secret among n participants so that any
// t of them can reconstruct it. Distribution, decryption and reconstruction
// each carry a discrete-logarithm-equality proof that any third party can
// check without learning private information.
//
// The sharing polynomial has degree t-1 (t coefficients), so exactly t
// decrypted shares reconstruct the secret. Package scrape uses the same
// convention.
package pvss

import (
	"io"

	"github.com/taurusgroup/pvss/internal/pool"
	"github.com/taurusgroup/pvss/pkg/keys"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/math/polynomial"
	"github.com/taurusgroup/pvss/pkg/math/sample"
	"github.com/taurusgroup/pvss/pkg/party"
	"github.com/taurusgroup/pvss/pkg/zk/dleq"
)

// Escrow is the dealer-side bundle for one secret. It carries the generating
// polynomial and must not be reused across secrets; call Wipe once the
// commitments and shares have been produced.
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

// EncryptedShare is participant i's share encrypted to its public key,
// with a proof that it matches the dealer's commitments.
type EncryptedShare struct {
	ID party.ID
	// Y = sᵢ•PKᵢ
	Y *curve.Point
	// Proof attests log_h(Xᵢ) = log_PKᵢ(Y) = sᵢ.
	Proof *dleq.Proof
}

// DecryptedShare is participant i's decrypted share Sᵢ = G•sᵢ, with a proof
// of correct decryption.
type DecryptedShare struct {
	ID party.ID
	// S = xᵢ⁻¹•Y
	S *curve.Point
	// Proof attests log_G(PKᵢ) = log_S(Y) = xᵢ.
	Proof *dleq.Proof
}

// NewEscrow prepares a sharing with the given threshold: it generates the
// polynomial of degree threshold-1, picks the extra generator, and commits to
// the secret G•p(0).
//
// threshold must be at least 1.
func NewEscrow(rand io.Reader, threshold uint32) *Escrow {
	if threshold < 1 {
		panic("pvss.NewEscrow: threshold must be at least 1")
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

// Commitments returns the t coefficient commitments [h•a₀, …, h•aₜ₋₁].
func (e *Escrow) Commitments() []*curve.Point {
	return polynomial.NewPolynomialExponent(e.poly, e.ExtraGen).Coefficients()
}

// Wipe zeroes the polynomial's coefficient memory. The escrow must not be
// used to create shares afterwards.
func (e *Escrow) Wipe() {
	e.poly.Wipe()
}

// ShareCreate creates the encrypted share for the participant with the given
// id and public key.
func (e *Escrow) ShareCreate(rand io.Reader, id party.ID, pk *curve.Point) *EncryptedShare {
	si := e.poly.Evaluate(id.Scalar())
	y := si.Act(pk)
	xi := si.Act(e.ExtraGen)
	proof := dleq.NewProof(rand, si, &dleq.Statement{
		G1: e.ExtraGen, H1: xi,
		G2: pk, H2: y,
	})
	// the intermediate evaluation is key-equivalent material
	si.Zero()
	return &EncryptedShare{ID: id, Y: y, Proof: proof}
}

// SharesCreate creates one encrypted share per participant, in participant
// order. pl may be nil, in which case the shares are created sequentially.
func (e *Escrow) SharesCreate(rand io.Reader, participants party.Participants, pl *pool.Pool) []*EncryptedShare {
	lockedRand := pool.NewLockedReader(rand)
	results := pl.Parallelize(len(participants), func(i int) interface{} {
		return e.ShareCreate(lockedRand, party.ID(i+1), participants[i])
	})
	shares := make([]*EncryptedShare, len(results))
	for i, r := range results {
		shares[i] = r.(*EncryptedShare)
	}
	return shares
}

// CreateXi evaluates the committed polynomial at id, in the exponent:
// Xᵢ = Σⱼ Cⱼ•iʲ = h•p(i).
func CreateXi(id party.ID, commitments []*curve.Point) *curve.Point {
	return polynomial.FromCoefficients(commitments).Evaluate(id.Scalar())
}

// VerifyEncryptedShare checks a share against the dealer's commitments and
// the participant's public key.
func VerifyEncryptedShare(extraGen *curve.Point, commitments []*curve.Point, share *EncryptedShare, pk *curve.Point) bool {
	if share == nil || share.Y == nil {
		return false
	}
	xi := CreateXi(share.ID, commitments)
	return share.Proof.Verify(&dleq.Statement{
		G1: extraGen, H1: xi,
		G2: pk, H2: share.Y,
	})
}

// ShareDecrypt decrypts the participant's share with its key pair and proves
// the decryption correct.
func ShareDecrypt(rand io.Reader, kp *keys.KeyPair, share *EncryptedShare) *DecryptedShare {
	xInv := curve.NewScalar().Invert(kp.Private)
	s := xInv.Act(share.Y)
	proof := dleq.NewProof(rand, kp.Private, &dleq.Statement{
		G1: curve.NewBasePoint(), H1: kp.Public,
		G2: s, H2: share.Y,
	})
	return &DecryptedShare{ID: share.ID, S: s, Proof: proof}
}

// VerifyDecryptedShare checks a decrypted share against the encrypted share
// it came from and the participant's public key.
func VerifyDecryptedShare(share *EncryptedShare, pk *curve.Point, dec *DecryptedShare) bool {
	if share == nil || dec == nil || dec.S == nil {
		return false
	}
	return dec.Proof.Verify(&dleq.Statement{
		G1: curve.NewBasePoint(), H1: pk,
		G2: dec.S, H2: share.Y,
	})
}

// GetValidRecoveryShares filters the decrypted shares by
// VerifyDecryptedShare and returns the first threshold valid ones. Fewer are
// returned if not enough shares verify; callers must check the length.
//
// The three slices run in parallel: decs[i] is the decryption of shares[i]
// by the holder of pks[i].
func GetValidRecoveryShares(threshold uint32, shares []*EncryptedShare, pks []*curve.Point, decs []*DecryptedShare) []*DecryptedShare {
	valid := make([]*DecryptedShare, 0, threshold)
	for i := range decs {
		if uint32(len(valid)) == threshold {
			break
		}
		if VerifyDecryptedShare(shares[i], pks[i], decs[i]) {
			valid = append(valid, decs[i])
		}
	}
	return valid
}

// Recover interpolates the decrypted shares at zero, in the exponent,
// yielding G•p(0).
//
// The caller selects exactly threshold shares with distinct IDs; duplicate
// IDs are not detected, and they, like too few shares, yield a wrong secret.
// VerifySecret is the canonical check that recovery succeeded.
func Recover(shares []*DecryptedShare) *curve.Point {
	ids := make([]party.ID, len(shares))
	for i, s := range shares {
		ids[i] = s.ID
	}
	coefficients := polynomial.Lagrange(ids)

	scalars := make([]*curve.Scalar, len(shares))
	points := make([]*curve.Point, len(shares))
	for i, s := range shares {
		scalars[i] = coefficients[s.ID]
		points[i] = s.S
	}
	return curve.LinearCombination(scalars, points)
}

// VerifySecret checks the escrow proof against a (possibly recovered)
// secret: log_G(secret) = log_h(C₀).
//
// An empty commitment list is a precondition violation.
func VerifySecret(extraGen *curve.Point, commitments []*curve.Point, secret *curve.Point, proof *dleq.Proof) bool {
	if len(commitments) == 0 {
		panic("pvss.VerifySecret: empty commitments")
	}
	return proof.Verify(&dleq.Statement{
		G1: curve.NewBasePoint(), H1: secret,
		G2: extraGen, H2: commitments[0],
	})
}
