package scrape

import (
	"fmt"

	"github.com/taurusgroup/pvss/internal/params"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/zk/dleq"
)

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is the bare compressed point Eᵢ.
func (s *EncryptedShare) MarshalBinary() ([]byte, error) {
	return s.E.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *EncryptedShare) UnmarshalBinary(data []byte) error {
	e := curve.NewIdentityPoint()
	if err := e.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("scrape.EncryptedShare.Unmarshal: point: %w", err)
	}
	s.E = e
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is Point ‖ Proof; the share's position is carried by the
// participant list, not the encoding.
func (s *DecryptedShare) MarshalBinary() ([]byte, error) {
	point, err := s.S.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("scrape.DecryptedShare.Marshal: point: %w", err)
	}
	proof, err := s.Proof.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("scrape.DecryptedShare.Marshal: proof: %w", err)
	}
	return append(point, proof...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *DecryptedShare) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesPoint+2*params.BytesScalar {
		return fmt.Errorf("scrape.DecryptedShare.Unmarshal: invalid length %d", len(data))
	}
	p := curve.NewIdentityPoint()
	if err := p.UnmarshalBinary(data[:params.BytesPoint]); err != nil {
		return fmt.Errorf("scrape.DecryptedShare.Unmarshal: point: %w", err)
	}
	proof := &dleq.Proof{}
	if err := proof.UnmarshalBinary(data[params.BytesPoint:]); err != nil {
		return fmt.Errorf("scrape.DecryptedShare.Unmarshal: proof: %w", err)
	}
	s.S, s.Proof = p, proof
	return nil
}
