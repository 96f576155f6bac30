// Package keys handles participant key pairs and their persistence.
package keys

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/math/sample"
)

// KeyPair is a participant's decryption key with its public counterpart.
// The invariant Public = Private•G always holds.
type KeyPair struct {
	Private *curve.Scalar
	Public  *curve.Point
}

// Generate creates a fresh key pair from rand.
func Generate(rand io.Reader) *KeyPair {
	x, X := sample.ScalarPointPair(rand)
	return &KeyPair{Private: x, Public: X}
}

// Validate checks the Public = Private•G invariant.
func (kp *KeyPair) Validate() error {
	if kp.Private == nil || kp.Public == nil {
		return errors.New("keys.KeyPair: missing component")
	}
	if kp.Private.IsZero() {
		return errors.New("keys.KeyPair: zero private key")
	}
	if !kp.Private.ActOnBase().Equal(kp.Public) {
		return errors.New("keys.KeyPair: public key does not match private key")
	}
	return nil
}

type keyPairMarshal struct {
	Private []byte
	Public  []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (kp *KeyPair) MarshalBinary() ([]byte, error) {
	public, err := kp.Public.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("keys.KeyPair.Marshal: public: %w", err)
	}
	return cbor.Marshal(&keyPairMarshal{
		Private: kp.Private.Bytes(),
		Public:  public,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (kp *KeyPair) UnmarshalBinary(data []byte) error {
	var km keyPairMarshal
	if err := cbor.Unmarshal(data, &km); err != nil {
		return fmt.Errorf("keys.KeyPair.Unmarshal: %w", err)
	}
	private := curve.NewScalar()
	if err := private.UnmarshalBinary(km.Private); err != nil {
		return fmt.Errorf("keys.KeyPair.Unmarshal: private: %w", err)
	}
	public := curve.NewIdentityPoint()
	if err := public.UnmarshalBinary(km.Public); err != nil {
		return fmt.Errorf("keys.KeyPair.Unmarshal: public: %w", err)
	}
	result := KeyPair{Private: private, Public: public}
	if err := result.Validate(); err != nil {
		return fmt.Errorf("keys.KeyPair.Unmarshal: %w", err)
	}
	*kp = result
	return nil
}
