// Package hash provides the transcript hash used to derive Fiat-Shamir
// challenges, with domain separation between the written values.
package hash

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/taurusgroup/pvss/internal/params"
	"github.com/zeebo/blake3"
)

// Hash is the hash function we use for deriving challenges, consuming the
// library's data types.
//
// Internally, this is a wrapper around blake3, but any hash function with an
// easily extendable output would work as well.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash struct with a fresh internal state.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length params.HashBytes resulting from the current
// hash state. If a different length is required, use
// io.ReadFull(hash.Digest(), out) instead.
func (hash *Hash) Sum() []byte {
	out := make([]byte, params.HashBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - uint32
//   - WriterToWithDomain
//
// This function applies its own domain separation for the first two types.
// The last type already knows its domain.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err := writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case uint32:
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], t)
			err := writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "uint32",
				Bytes:     buf[:],
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write uint32: %w", err)
			}
		case WriterToWithDomain:
			if err := writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write %s: %w", t.Domain(), err)
			}
		default:
			panic("hash.Hash: unsupported type")
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
