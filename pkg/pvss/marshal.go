package pvss

import (
	"fmt"

	"github.com/taurusgroup/pvss/internal/params"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/party"
	"github.com/taurusgroup/pvss/pkg/zk/dleq"
)

const shareSize = params.BytesShareID + params.BytesPoint + 2*params.BytesScalar

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is ShareId ‖ Point ‖ Proof.
func (s *EncryptedShare) MarshalBinary() ([]byte, error) {
	return marshalShare(s.ID, s.Y, s.Proof)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *EncryptedShare) UnmarshalBinary(data []byte) error {
	id, p, proof, err := unmarshalShare("pvss.EncryptedShare", data)
	if err != nil {
		return err
	}
	s.ID, s.Y, s.Proof = id, p, proof
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is ShareId ‖ Point ‖ Proof.
func (s *DecryptedShare) MarshalBinary() ([]byte, error) {
	return marshalShare(s.ID, s.S, s.Proof)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *DecryptedShare) UnmarshalBinary(data []byte) error {
	id, p, proof, err := unmarshalShare("pvss.DecryptedShare", data)
	if err != nil {
		return err
	}
	s.ID, s.S, s.Proof = id, p, proof
	return nil
}

func marshalShare(id party.ID, p *curve.Point, proof *dleq.Proof) ([]byte, error) {
	out := make([]byte, 0, shareSize)
	out = append(out, id.Bytes()...)
	point, err := p.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("pvss: marshal share %d: point: %w", id, err)
	}
	out = append(out, point...)
	proofData, err := proof.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("pvss: marshal share %d: proof: %w", id, err)
	}
	return append(out, proofData...), nil
}

func unmarshalShare(name string, data []byte) (party.ID, *curve.Point, *dleq.Proof, error) {
	if len(data) != shareSize {
		return 0, nil, nil, fmt.Errorf("%s.Unmarshal: invalid length %d", name, len(data))
	}
	id := party.FromBytes(data)
	data = data[params.BytesShareID:]
	p := curve.NewIdentityPoint()
	if err := p.UnmarshalBinary(data[:params.BytesPoint]); err != nil {
		return 0, nil, nil, fmt.Errorf("%s.Unmarshal: point: %w", name, err)
	}
	proof := &dleq.Proof{}
	if err := proof.UnmarshalBinary(data[params.BytesPoint:]); err != nil {
		return 0, nil, nil, fmt.Errorf("%s.Unmarshal: proof: %w", name, err)
	}
	return id, p, proof, nil
}
