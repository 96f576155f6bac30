// Package polynomial implements polynomials over the scalar field, their
// commitments "in the exponent", and Lagrange interpolation at zero.
package polynomial

import (
	"io"

	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/math/sample"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ.
//
// The coefficients, including the constant term, are key-equivalent secret
// material; call Wipe once the polynomial is no longer needed.
type Polynomial struct {
	coefficients []*curve.Scalar
}

// NewPolynomial generates a Polynomial with degree+1 uniformly random
// coefficients. The constant term a₀ is itself uniform.
func NewPolynomial(rand io.Reader, degree uint32) *Polynomial {
	var polynomial Polynomial
	polynomial.coefficients = make([]*curve.Scalar, degree+1)
	for i := range polynomial.coefficients {
		polynomial.coefficients[i] = sample.Scalar(rand)
	}
	return &polynomial
}

// Evaluate evaluates the polynomial at index using Horner's method.
func (p *Polynomial) Evaluate(index *curve.Scalar) *curve.Scalar {
	result := curve.NewScalar()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ·x + aₙ₋₁
		result.MultiplyAdd(result, index, p.coefficients[i])
	}
	return result
}

// Constant returns a reference to the constant coefficient a₀.
func (p *Polynomial) Constant() *curve.Scalar {
	return p.coefficients[0]
}

// Coefficients returns the coefficients [a₀, …, aₜ].
func (p *Polynomial) Coefficients() []*curve.Scalar {
	return p.coefficients
}

// Degree is the highest power of the Polynomial.
func (p *Polynomial) Degree() uint32 {
	return uint32(len(p.coefficients)) - 1
}

// Wipe zeroes the coefficient memory.
func (p *Polynomial) Wipe() {
	for _, c := range p.coefficients {
		c.Zero()
	}
}
