package keys

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/pvss/pkg/math/sample"
)

func TestGenerate(t *testing.T) {
	kp := Generate(rand.Reader)
	require.NoError(t, kp.Validate())
	assert.True(t, kp.Private.ActOnBase().Equal(kp.Public))
}

func TestKeyPairMarshalRoundTrip(t *testing.T) {
	kp := Generate(rand.Reader)

	data, err := kp.MarshalBinary()
	require.NoError(t, err)

	var decoded KeyPair
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.True(t, kp.Private.Equal(decoded.Private))
	assert.True(t, kp.Public.Equal(decoded.Public))
}

func TestKeyPairUnmarshalRejectsMismatch(t *testing.T) {
	kp := Generate(rand.Reader)
	kp.Public = sample.Scalar(rand.Reader).ActOnBase()

	data, err := kp.MarshalBinary()
	require.NoError(t, err)

	var decoded KeyPair
	assert.Error(t, decoded.UnmarshalBinary(data), "mismatched key pair must not decode")
}

func TestKeyPairUnmarshalRejectsGarbage(t *testing.T) {
	var decoded KeyPair
	assert.Error(t, decoded.UnmarshalBinary([]byte("not cbor")))
}
