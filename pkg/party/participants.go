package party

import (
	"encoding/binary"
	"fmt"

	"github.com/taurusgroup/pvss/internal/params"
	"github.com/taurusgroup/pvss/pkg/math/curve"
)

// Participants is an ordered list of participant public keys.
//
// The position of a key determines the participant's ID: the key at index i
// belongs to the participant with ID i+1. The order must be stable across all
// protocol calls of a single instance.
type Participants []*curve.Point

// Index returns the ID of the participant holding pk, or 0 if pk is absent.
func (ps Participants) Index(pk *curve.Point) ID {
	for i, p := range ps {
		if p.Equal(pk) {
			return ID(i + 1)
		}
	}
	return 0
}

// IDs returns the IDs 1..n of all participants, in order.
func (ps Participants) IDs() []ID {
	ids := make([]ID, len(ps))
	for i := range ps {
		ids[i] = ID(i + 1)
	}
	return ids
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is a u32 little-endian count followed by compressed points.
func (ps Participants) MarshalBinary() ([]byte, error) {
	out := make([]byte, 4, 4+len(ps)*params.BytesPoint)
	binary.LittleEndian.PutUint32(out, uint32(len(ps)))
	for i, p := range ps {
		data, err := p.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("party.Participants.Marshal: key %d: %w", i+1, err)
		}
		out = append(out, data...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ps *Participants) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("party.Participants.Unmarshal: missing count")
	}
	count := binary.LittleEndian.Uint32(data)
	data = data[4:]
	if len(data) != int(count)*params.BytesPoint {
		return fmt.Errorf("party.Participants.Unmarshal: invalid length %d for %d keys", len(data), count)
	}
	out := make(Participants, count)
	for i := range out {
		out[i] = curve.NewIdentityPoint()
		if err := out[i].UnmarshalBinary(data[:params.BytesPoint]); err != nil {
			return fmt.Errorf("party.Participants.Unmarshal: key %d: %w", i+1, err)
		}
		data = data[params.BytesPoint:]
	}
	*ps = out
	return nil
}
