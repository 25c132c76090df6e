// Package basis provides one-dimensional spectral basis descriptors used to
// compose tensor-product Galerkin spaces: orthogonal polynomial families,
// boundary-constrained (composite) variants expressed through sparse
// stencils, and periodic trigonometric families.
package basis

import (
	"github.com/notargets/gospectral/utils"
)

type Quadrature uint8

const (
	Gauss Quadrature = iota // Chebyshev-Gauss / Legendre-Gauss
	Lobatto
)

// Basis is a one-dimensional set of trial/test functions over a finite
// domain. The expansion size is fixed at construction.
type Basis interface {
	Modes() int    // number of expansion coefficients
	QuadSize() int // number of quadrature points
	Domain() (a, b float64)
	// PointsAndWeights returns quadrature points on the physical domain and
	// weights that include the affine Jacobian and the family weight
	// function.
	PointsAndWeights() (x, w utils.Vector)
}

// Dense marks a basis whose assembled one-axis matrices are dense (or
// banded), requiring a direct solve along that axis.
type Dense interface {
	Basis
	// Vandermonde evaluates the deriv'th derivative of each basis function
	// at the quadrature points, QuadSize x Modes, with domain scaling
	// applied.
	Vandermonde(deriv int) utils.Matrix
}

// Diagonal marks a periodic basis that diagonalizes constant-coefficient
// operators, so its axis can be eliminated mode by mode.
type Diagonal interface {
	Basis
	// Wavenumbers returns the mode wavenumbers in transform order; the
	// range is symmetric about zero.
	Wavenumbers() []float64
	// Term returns the bilinear factor a mode k contributes for trial
	// derivative order a and test derivative order b, including the mass
	// of the basis function pair.
	Term(a, b int, k float64) complex128
	// TransformMatrices returns the forward (Modes x QuadSize) and
	// backward (QuadSize x Modes) transform matrices, row-major.
	TransformMatrices() (fwd, bck []complex128)
}

// affine maps between a reference domain [ra,rb] and the physical [a,b].
type affine struct {
	a, b   float64
	ra, rb float64
}

func (af affine) toPhysical(r float64) float64 {
	return af.a + (af.b-af.a)*(r-af.ra)/(af.rb-af.ra)
}

// factor is d(reference)/d(physical), applied once per derivative order.
func (af affine) factor() float64 {
	return (af.rb - af.ra) / (af.b - af.a)
}

// jacobian is d(physical)/d(reference), applied to quadrature weights.
func (af affine) jacobian() float64 {
	return (af.b - af.a) / (af.rb - af.ra)
}
