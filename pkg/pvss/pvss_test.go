package pvss

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/pvss/internal/pool"
	"github.com/taurusgroup/pvss/pkg/keys"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/party"
	"golang.org/x/sync/errgroup"
)

func setup(t *testing.T, n int) ([]*keys.KeyPair, party.Participants) {
	t.Helper()
	kps := make([]*keys.KeyPair, n)
	participants := make(party.Participants, n)
	for i := range kps {
		kps[i] = keys.Generate(rand.Reader)
		participants[i] = kps[i].Public
	}
	return kps, participants
}

// S1: escrow, distribute, decrypt a threshold of shares, recover.
func TestEndToEnd(t *testing.T) {
	kps, participants := setup(t, 3)

	escrow := NewEscrow(rand.Reader, 2)
	commitments := escrow.Commitments()
	require.Len(t, commitments, 2)
	shares := escrow.SharesCreate(rand.Reader, participants, nil)
	require.Len(t, shares, 3)

	for i, share := range shares {
		assert.EqualValues(t, i+1, share.ID)
		assert.True(t, VerifyEncryptedShare(escrow.ExtraGen, commitments, share, participants[i]))
	}

	dec1 := ShareDecrypt(rand.Reader, kps[0], shares[0])
	dec2 := ShareDecrypt(rand.Reader, kps[1], shares[1])
	assert.True(t, VerifyDecryptedShare(shares[0], participants[0], dec1))
	assert.True(t, VerifyDecryptedShare(shares[1], participants[1], dec2))

	secret := Recover([]*DecryptedShare{dec1, dec2})
	assert.True(t, secret.Equal(escrow.Secret))
	assert.True(t, VerifySecret(escrow.ExtraGen, commitments, secret, escrow.Proof))

	// the recovered point yields the same symmetric key material
	want, err := curve.PointToDhSecret(escrow.Secret)
	require.NoError(t, err)
	got, err := curve.PointToDhSecret(secret)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	escrow.Wipe()
}

// S2: recovering from fewer than t shares yields a wrong secret, caught by VerifySecret.
func TestRecoverBelowThreshold(t *testing.T) {
	kps, participants := setup(t, 3)

	escrow := NewEscrow(rand.Reader, 2)
	commitments := escrow.Commitments()
	shares := escrow.SharesCreate(rand.Reader, participants, nil)

	dec1 := ShareDecrypt(rand.Reader, kps[0], shares[0])
	secret := Recover([]*DecryptedShare{dec1})
	assert.False(t, secret.Equal(escrow.Secret))
	assert.False(t, VerifySecret(escrow.ExtraGen, commitments, secret, escrow.Proof))
}

// S3: tampering with one share must be caught, without affecting the others.
func TestVerifyEncryptedShareTamper(t *testing.T) {
	_, participants := setup(t, 3)

	escrow := NewEscrow(rand.Reader, 2)
	commitments := escrow.Commitments()
	shares := escrow.SharesCreate(rand.Reader, participants, nil)

	tampered := &EncryptedShare{
		ID:    shares[1].ID,
		Y:     curve.NewIdentityPoint().Add(shares[1].Y, curve.NewBasePoint()),
		Proof: shares[1].Proof,
	}
	assert.False(t, VerifyEncryptedShare(escrow.ExtraGen, commitments, tampered, participants[1]))
	assert.True(t, VerifyEncryptedShare(escrow.ExtraGen, commitments, shares[0], participants[0]))
	assert.True(t, VerifyEncryptedShare(escrow.ExtraGen, commitments, shares[2], participants[2]))

	// a proof transplanted from another share must not verify either
	transplanted := &EncryptedShare{ID: shares[1].ID, Y: shares[1].Y, Proof: shares[0].Proof}
	assert.False(t, VerifyEncryptedShare(escrow.ExtraGen, commitments, transplanted, participants[1]))
}

func TestVerifyDecryptedShareWrongKey(t *testing.T) {
	kps, participants := setup(t, 2)

	escrow := NewEscrow(rand.Reader, 1)
	shares := escrow.SharesCreate(rand.Reader, participants, nil)

	dec := ShareDecrypt(rand.Reader, kps[0], shares[0])
	assert.False(t, VerifyDecryptedShare(shares[0], participants[1], dec))
}

func TestGetValidRecoveryShares(t *testing.T) {
	kps, participants := setup(t, 4)

	escrow := NewEscrow(rand.Reader, 2)
	shares := escrow.SharesCreate(rand.Reader, participants, nil)

	decs := make([]*DecryptedShare, 4)
	for i := range decs {
		decs[i] = ShareDecrypt(rand.Reader, kps[i], shares[i])
	}
	// corrupt the first decryption
	decs[0] = &DecryptedShare{ID: decs[0].ID, S: curve.NewBasePoint(), Proof: decs[0].Proof}

	valid := GetValidRecoveryShares(2, shares, participants, decs)
	require.Len(t, valid, 2)
	assert.EqualValues(t, 2, valid[0].ID)
	assert.EqualValues(t, 3, valid[1].ID)

	secret := Recover(valid)
	assert.True(t, secret.Equal(escrow.Secret))

	// with everything corrupted, fewer than t shares come back
	bad := []*DecryptedShare{decs[0], decs[0], decs[0], decs[0]}
	assert.Len(t, GetValidRecoveryShares(2, shares, participants, bad), 0)
}

// Invariant 8: the recovered secret is independent of the chosen subset.
func TestRecoverSubsetInvariance(t *testing.T) {
	kps, participants := setup(t, 5)

	escrow := NewEscrow(rand.Reader, 3)
	shares := escrow.SharesCreate(rand.Reader, participants, nil)

	decs := make([]*DecryptedShare, 5)
	for i := range decs {
		decs[i] = ShareDecrypt(rand.Reader, kps[i], shares[i])
	}

	subsets := [][]int{{0, 1, 2}, {2, 3, 4}, {0, 2, 4}, {4, 1, 3}}
	for _, subset := range subsets {
		chosen := make([]*DecryptedShare, len(subset))
		for i, j := range subset {
			chosen[i] = decs[j]
		}
		assert.True(t, Recover(chosen).Equal(escrow.Secret))
	}
}

func TestSharesCreateWithPool(t *testing.T) {
	_, participants := setup(t, 8)
	pl := pool.NewPool(0)
	defer pl.TearDown()

	escrow := NewEscrow(rand.Reader, 3)
	commitments := escrow.Commitments()
	shares := escrow.SharesCreate(rand.Reader, participants, pl)
	require.Len(t, shares, 8)
	for i, share := range shares {
		assert.EqualValues(t, i+1, share.ID)
		assert.True(t, VerifyEncryptedShare(escrow.ExtraGen, commitments, share, participants[i]))
	}
}

// Decryption and verification on disjoint shares are safe to run concurrently.
func TestConcurrentDecrypt(t *testing.T) {
	kps, participants := setup(t, 6)

	escrow := NewEscrow(rand.Reader, 3)
	commitments := escrow.Commitments()
	shares := escrow.SharesCreate(rand.Reader, participants, nil)

	decs := make([]*DecryptedShare, 6)
	var g errgroup.Group
	for i := 0; i < 6; i++ {
		i := i
		g.Go(func() error {
			if !VerifyEncryptedShare(escrow.ExtraGen, commitments, shares[i], participants[i]) {
				return assert.AnError
			}
			decs[i] = ShareDecrypt(rand.Reader, kps[i], shares[i])
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := range decs {
		assert.True(t, VerifyDecryptedShare(shares[i], participants[i], decs[i]))
	}
	assert.True(t, Recover(decs[:3]).Equal(escrow.Secret))
}

func TestVerifySecretEmptyCommitmentsPanics(t *testing.T) {
	escrow := NewEscrow(rand.Reader, 2)
	assert.Panics(t, func() {
		VerifySecret(escrow.ExtraGen, nil, escrow.Secret, escrow.Proof)
	})
}

func TestThresholdOne(t *testing.T) {
	kps, participants := setup(t, 2)

	escrow := NewEscrow(rand.Reader, 1)
	commitments := escrow.Commitments()
	require.Len(t, commitments, 1)

	shares := escrow.SharesCreate(rand.Reader, participants, nil)
	dec := ShareDecrypt(rand.Reader, kps[1], shares[1])
	secret := Recover([]*DecryptedShare{dec})
	assert.True(t, secret.Equal(escrow.Secret))
	assert.True(t, VerifySecret(escrow.ExtraGen, commitments, secret, escrow.Proof))
}

func TestEncryptedShareMarshalRoundTrip(t *testing.T) {
	_, participants := setup(t, 3)

	escrow := NewEscrow(rand.Reader, 2)
	commitments := escrow.Commitments()
	shares := escrow.SharesCreate(rand.Reader, participants, nil)

	data, err := shares[1].MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 4+33+64)

	decoded := &EncryptedShare{}
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, shares[1].ID, decoded.ID)
	assert.True(t, VerifyEncryptedShare(escrow.ExtraGen, commitments, decoded, participants[1]))

	assert.Error(t, decoded.UnmarshalBinary(data[:50]))
}

func TestDecryptedShareMarshalRoundTrip(t *testing.T) {
	kps, participants := setup(t, 3)

	escrow := NewEscrow(rand.Reader, 2)
	shares := escrow.SharesCreate(rand.Reader, participants, nil)
	dec := ShareDecrypt(rand.Reader, kps[0], shares[0])

	data, err := dec.MarshalBinary()
	require.NoError(t, err)

	decoded := &DecryptedShare{}
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, dec.ID, decoded.ID)
	assert.True(t, VerifyDecryptedShare(shares[0], participants[0], decoded))
}
