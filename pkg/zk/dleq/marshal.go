package dleq

import (
	"encoding/binary"
	"fmt"

	"github.com/taurusgroup/pvss/internal/params"
	"github.com/taurusgroup/pvss/pkg/math/curve"
)

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is challenge ‖ response.
func (p *Proof) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 2*params.BytesScalar)
	out = append(out, p.C.Bytes()...)
	out = append(out, p.Z.Bytes()...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Proof) UnmarshalBinary(data []byte) error {
	if len(data) != 2*params.BytesScalar {
		return fmt.Errorf("dleq.Proof.Unmarshal: invalid length %d", len(data))
	}
	c := curve.NewScalar()
	if err := c.UnmarshalBinary(data[:params.BytesScalar]); err != nil {
		return fmt.Errorf("dleq.Proof.Unmarshal: challenge: %w", err)
	}
	z := curve.NewScalar()
	if err := z.UnmarshalBinary(data[params.BytesScalar:]); err != nil {
		return fmt.Errorf("dleq.Proof.Unmarshal: response: %w", err)
	}
	p.C, p.Z = c, z
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is challenge ‖ u32-LE count ‖ responses.
func (p *ParallelProofs) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, params.BytesScalar+4+len(p.Z)*params.BytesScalar)
	out = append(out, p.C.Bytes()...)
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(p.Z)))
	out = append(out, count[:]...)
	for _, z := range p.Z {
		out = append(out, z.Bytes()...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *ParallelProofs) UnmarshalBinary(data []byte) error {
	if len(data) < params.BytesScalar+4 {
		return fmt.Errorf("dleq.ParallelProofs.Unmarshal: invalid length %d", len(data))
	}
	c := curve.NewScalar()
	if err := c.UnmarshalBinary(data[:params.BytesScalar]); err != nil {
		return fmt.Errorf("dleq.ParallelProofs.Unmarshal: challenge: %w", err)
	}
	data = data[params.BytesScalar:]
	count := binary.LittleEndian.Uint32(data)
	data = data[4:]
	if len(data) != int(count)*params.BytesScalar {
		return fmt.Errorf("dleq.ParallelProofs.Unmarshal: invalid length %d for %d responses", len(data), count)
	}
	zs := make([]*curve.Scalar, count)
	for i := range zs {
		zs[i] = curve.NewScalar()
		if err := zs[i].UnmarshalBinary(data[:params.BytesScalar]); err != nil {
			return fmt.Errorf("dleq.ParallelProofs.Unmarshal: response %d: %w", i, err)
		}
		data = data[params.BytesScalar:]
	}
	p.C, p.Z = c, zs
	return nil
}
