package polynomial

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/pvss/pkg/math/curve"
)

func TestPolynomialDegree(t *testing.T) {
	poly := NewPolynomial(rand.Reader, 4)
	require.EqualValues(t, 4, poly.Degree())
	require.Len(t, poly.Coefficients(), 5)

	constant := NewPolynomial(rand.Reader, 0)
	require.EqualValues(t, 0, constant.Degree())
}

func TestPolynomialEvaluate(t *testing.T) {
	// f(X) = 1 + X²
	polynomial := &Polynomial{[]*curve.Scalar{
		curve.NewScalarUInt32(1),
		curve.NewScalarUInt32(0),
		curve.NewScalarUInt32(1),
	}}

	for index := 0; index < 100; index++ {
		x := mrand.Uint32()
		result := big.NewInt(int64(x))
		result.Mul(result, result)
		result.Add(result, big.NewInt(1))
		computedResult := polynomial.Evaluate(curve.NewScalarUInt32(x))
		expectedResult := curve.NewScalarBigInt(result)
		assert.True(t, expectedResult.Equal(computedResult))
	}
}

func TestPolynomialConstant(t *testing.T) {
	poly := NewPolynomial(rand.Reader, 3)
	assert.True(t, poly.Evaluate(curve.NewScalar()).Equal(poly.Constant()),
		"evaluating at zero must return the constant term")
}

func TestPolynomialWipe(t *testing.T) {
	poly := NewPolynomial(rand.Reader, 3)
	poly.Wipe()
	for _, c := range poly.Coefficients() {
		assert.True(t, c.IsZero())
	}
}
