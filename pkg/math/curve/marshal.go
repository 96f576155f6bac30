package curve

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/taurusgroup/pvss/internal/params"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesScalar {
		return fmt.Errorf("curve.Scalar.Unmarshal: invalid length %d", len(data))
	}
	var scalar secp256k1.ModNScalar
	if scalar.SetByteSlice(data) {
		return errors.New("curve.Scalar.Unmarshal: scalar was >= q")
	}
	s.s.Set(&scalar)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The encoding is the 33 byte compressed form of the point.
func (v *Point) MarshalBinary() ([]byte, error) {
	data := make([]byte, params.BytesPoint)
	if err := v.marshalTo(data); err != nil {
		return nil, err
	}
	return data, nil
}

func (v *Point) marshalTo(data []byte) error {
	if v.IsIdentity() {
		return errors.New("curve.Point.Marshal: tried to marshal identity")
	}
	v.toAffine()
	// 0x02 or 0x03 ∥ 32-byte x coordinate, compatible with Bitcoin.
	format := secp256k1.PubKeyFormatCompressedEven
	if v.p.Y.IsOdd() {
		format = secp256k1.PubKeyFormatCompressedOdd
	}
	data[0] = format
	v.p.X.PutBytesUnchecked(data[1:33])
	return nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Point) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesPoint {
		return fmt.Errorf("curve.Point.Unmarshal: invalid length %d", len(data))
	}
	format := data[0]
	if format != secp256k1.PubKeyFormatCompressedEven && format != secp256k1.PubKeyFormatCompressedOdd {
		return errors.New("curve.Point.Unmarshal: incorrect format byte")
	}

	var x, y secp256k1.FieldVal
	if overflow := x.SetByteSlice(data[1:33]); overflow {
		return errors.New("curve.Point.Unmarshal: invalid point: x >= field prime")
	}
	wantOddY := format == secp256k1.PubKeyFormatCompressedOdd
	if !secp256k1.DecompressY(&x, wantOddY, &y) {
		return errors.New("curve.Point.Unmarshal: invalid point: x not on the curve")
	}
	y.Normalize()
	v.p.X.Set(&x)
	v.p.Y.Set(&y)
	v.p.Z.SetInt(1)
	return nil
}

// String implements fmt.Stringer.
func (v *Point) String() string {
	if v == nil {
		return "nil"
	}
	if v.IsIdentity() {
		return "Point{Identity}"
	}
	data, _ := v.MarshalBinary()
	return fmt.Sprintf("Point{%x}", data)
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("Scalar{%x}", s.Bytes())
}
