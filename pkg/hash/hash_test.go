package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDeterministic(t *testing.T) {
	h1 := New()
	require.NoError(t, h1.WriteAny([]byte("hello"), uint32(42)))
	h2 := New()
	require.NoError(t, h2.WriteAny([]byte("hello"), uint32(42)))
	assert.Equal(t, h1.Sum(), h2.Sum())
}

func TestHashDomainSeparation(t *testing.T) {
	h1 := New()
	require.NoError(t, h1.WriteAny(BytesWithDomain{TheDomain: "A", Bytes: []byte("x")}))
	h2 := New()
	require.NoError(t, h2.WriteAny(BytesWithDomain{TheDomain: "B", Bytes: []byte("x")}))
	assert.NotEqual(t, h1.Sum(), h2.Sum(), "same bytes under different domains must hash differently")
}

func TestHashOrderMatters(t *testing.T) {
	h1 := New()
	require.NoError(t, h1.WriteAny([]byte("a"), []byte("b")))
	h2 := New()
	require.NoError(t, h2.WriteAny([]byte("b"), []byte("a")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestHashClone(t *testing.T) {
	h := New()
	require.NoError(t, h.WriteAny([]byte("prefix")))

	clone := h.Clone()
	require.NoError(t, clone.WriteAny([]byte("suffix")))

	// the original state is unaffected by writes to the clone
	h2 := New()
	require.NoError(t, h2.WriteAny([]byte("prefix")))
	assert.Equal(t, h2.Sum(), h.Sum())
	assert.NotEqual(t, h.Sum(), clone.Sum())
}

func TestHashUnsupportedTypePanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = New().WriteAny(3.14)
	})
}
