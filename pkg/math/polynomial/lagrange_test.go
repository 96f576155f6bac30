package polynomial

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/party"
)

func TestLagrangeSumToOne(t *testing.T) {
	ids := []party.ID{1, 2, 3, 5, 8}
	coefficients := Lagrange(ids)
	sum := curve.NewScalar()
	for _, c := range coefficients {
		sum.Add(sum, c)
	}
	assert.True(t, sum.Equal(curve.NewScalarUInt32(1)))
}

func TestLagrangeInterpolatesAtZero(t *testing.T) {
	poly := NewPolynomial(rand.Reader, 2)
	ids := []party.ID{2, 4, 7}
	coefficients := Lagrange(ids)

	sum := curve.NewScalar()
	tmp := curve.NewScalar()
	for _, id := range ids {
		tmp.Multiply(coefficients[id], poly.Evaluate(id.Scalar()))
		sum.Add(sum, tmp)
	}
	assert.True(t, sum.Equal(poly.Constant()))
}
