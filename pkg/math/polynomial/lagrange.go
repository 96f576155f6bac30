package polynomial

import (
	"github.com/taurusgroup/pvss/pkg/math/curve"
	"github.com/taurusgroup/pvss/pkg/party"
)

// Lagrange returns the Lagrange coefficients at 0 for all parties in the
// interpolation domain.
//
// The domain must not contain zero or duplicate IDs. A zero ID makes the
// denominator vanish. Duplicate IDs are counted once in the denominators but
// repeatedly in the numerator, so the coefficients come out wrong.
//
// The following formulas are taken from
// https://en.wikipedia.org/wiki/Lagrange_polynomial
//
//	         x₀ ⋅⋅⋅ xₖ
//	lⱼ(0) = --------------------------------------------------
//	         xⱼ⋅(x₀ - xⱼ)⋅⋅⋅(xⱼ₋₁ - xⱼ)⋅(xⱼ₊₁ - xⱼ)⋅⋅⋅(xₖ - xⱼ)
func Lagrange(interpolationDomain []party.ID) map[party.ID]*curve.Scalar {
	// numerator = x₀ ⋅ … ⋅ xₖ
	numerator := curve.NewScalarUInt32(1)
	scalars := make(map[party.ID]*curve.Scalar, len(interpolationDomain))
	for _, id := range interpolationDomain {
		xi := id.Scalar()
		scalars[id] = xi
		numerator.Multiply(numerator, xi)
	}

	coefficients := make(map[party.ID]*curve.Scalar, len(interpolationDomain))
	for _, j := range interpolationDomain {
		coefficients[j] = lagrange(scalars, numerator, j)
	}
	return coefficients
}

func lagrange(interpolationDomain map[party.ID]*curve.Scalar, numerator *curve.Scalar, j party.ID) *curve.Scalar {
	xJ := interpolationDomain[j]
	tmp := curve.NewScalar()

	// denominator = xⱼ⋅(x₀ - xⱼ)⋅⋅⋅(xⱼ₋₁ - xⱼ)⋅(xⱼ₊₁ - xⱼ)⋅⋅⋅(xₖ - xⱼ)
	denominator := curve.NewScalarUInt32(1)
	for i, xI := range interpolationDomain {
		if i == j {
			denominator.Multiply(denominator, xJ)
			continue
		}
		// tmp = xᵢ - xⱼ
		tmp.Subtract(xI, xJ)
		denominator.Multiply(denominator, tmp)
	}

	// lⱼ = numerator/denominator
	lJ := curve.NewScalar().Invert(denominator)
	lJ.Multiply(lJ, numerator)
	return lJ
}
