// Package party handles participant identifiers and ordered participant lists.
package party

import (
	"encoding/binary"
	"io"

	"github.com/taurusgroup/pvss/internal/params"
	"github.com/taurusgroup/pvss/pkg/math/curve"
)

// ID identifies a participant by its 1-based position in the participant list.
// It doubles as the evaluation point of the sharing polynomial, so 0 is never
// a valid ID.
type ID uint32

// Scalar returns the corresponding curve.Scalar.
func (id ID) Scalar() *curve.Scalar {
	return curve.NewScalarUInt32(uint32(id))
}

// Bytes returns the little-endian encoding of id.
func (id ID) Bytes() []byte {
	bytes := make([]byte, params.BytesShareID)
	binary.LittleEndian.PutUint32(bytes, uint32(id))
	return bytes
}

// FromBytes reads the first params.BytesShareID bytes of b as an ID.
func FromBytes(b []byte) ID {
	return ID(binary.LittleEndian.Uint32(b))
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (id ID) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(id.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (ID) Domain() string {
	return "ID"
}
