// Package sample draws uniformly random values from an injected source of
// random bytes. The source must be cryptographically secure.
package sample

import (
	"fmt"
	"io"

	"github.com/taurusgroup/pvss/internal/params"
	"github.com/taurusgroup/pvss/pkg/math/curve"
)

const maxIterations = 255

// ErrMaxIterations is returned in a panic when sampling fails repeatedly.
var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Scalar returns a new nonzero *curve.Scalar, sampled by rejection.
func Scalar(rand io.Reader) *curve.Scalar {
	var s curve.Scalar
	buf := make([]byte, params.BytesScalar)
	for i := 0; i < maxIterations; i++ {
		mustReadBits(rand, buf)
		if err := s.UnmarshalBinary(buf); err != nil {
			continue
		}
		if s.IsZero() {
			continue
		}
		return &s
	}
	panic(ErrMaxIterations)
}

// ScalarPointPair returns a new scalar x with its associated point x•G.
func ScalarPointPair(rand io.Reader) (*curve.Scalar, *curve.Point) {
	s := Scalar(rand)
	return s, s.ActOnBase()
}
