package polynomial

import (
	"github.com/taurusgroup/pvss/pkg/math/curve"
)

// Exponent represents a polynomial whose coefficients are group elements,
// typically h•aⱼ for the coefficients aⱼ of a Polynomial.
type Exponent struct {
	coefficients []*curve.Point
}

// NewPolynomialExponent commits to polynomial with respect to the base point
// base, producing F(X) = Σⱼ (base•aⱼ)·Xʲ.
func NewPolynomialExponent(polynomial *Polynomial, base *curve.Point) *Exponent {
	var p Exponent
	p.coefficients = make([]*curve.Point, len(polynomial.coefficients))
	for i := range p.coefficients {
		p.coefficients[i] = curve.NewIdentityPoint().ScalarMult(polynomial.coefficients[i], base)
	}
	return &p
}

// FromCoefficients wraps an existing commitment vector as an Exponent.
func FromCoefficients(points []*curve.Point) *Exponent {
	return &Exponent{coefficients: points}
}

// Evaluate computes Σⱼ Cⱼ•indexʲ with Horner's method in the exponent.
func (p *Exponent) Evaluate(index *curve.Scalar) *curve.Point {
	result := curve.NewIdentityPoint()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// Bₙ₋₁ = x•Bₙ + Aₙ₋₁
		result.ScalarMult(index, result)
		result.Add(result, p.coefficients[i])
	}
	return result
}

// Constant returns the constant coefficient of the polynomial in the exponent.
func (p *Exponent) Constant() *curve.Point {
	return p.coefficients[0]
}

// Coefficients returns the commitment vector.
func (p *Exponent) Coefficients() []*curve.Point {
	return p.coefficients
}

// Degree is the highest power of the polynomial.
func (p *Exponent) Degree() uint32 {
	return uint32(len(p.coefficients)) - 1
}

// Equal returns true if the two commitment vectors are equal.
func (p *Exponent) Equal(other *Exponent) bool {
	if len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(other.coefficients[i]) {
			return false
		}
	}
	return true
}
