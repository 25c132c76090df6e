// Package space composes one-dimensional bases into tensor-product Galerkin
// spaces, optionally over curvilinear coordinates, and provides the
// coefficient/quadrature array types with their forward and backward
// transforms.
package space

import (
	"fmt"
	"math"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/utils"
)

// TensorProductSpace is an ordered composition of per-axis bases. All axes
// but the last must be diagonal (Fourier); the last axis carries the dense
// one-axis matrices and is placed last so per-mode coefficient slices stay
// contiguous.
type TensorProductSpace struct {
	Bases  []basis.Basis
	Coords *CoordinateMap

	denseAxis int // -1 when every axis is diagonal
	shapePhys []int
	shapeSpec []int
	points    []utils.Vector
	weights   []utils.Vector
	fwdDense  utils.Matrix // M^-1 Phi^T W on the dense axis
	bckDense  utils.Matrix // Phi on the dense axis
	fwdDiag   [][]complex128
	bckDiag   [][]complex128
}

func NewTensorProductSpace(coords *CoordinateMap, bases ...basis.Basis) (sp *TensorProductSpace, err error) {
	var (
		dim = len(bases)
	)
	if dim == 0 {
		err = fmt.Errorf("a tensor product space needs at least one basis")
		return
	}
	if coords != nil && len(coords.Partials) != dim {
		err = fmt.Errorf("coordinate map has %d partials for a %d dimensional space",
			len(coords.Partials), dim)
		return
	}
	sp = &TensorProductSpace{
		Bases:     bases,
		Coords:    coords,
		denseAxis: -1,
		shapePhys: make([]int, dim),
		shapeSpec: make([]int, dim),
		points:    make([]utils.Vector, dim),
		weights:   make([]utils.Vector, dim),
		fwdDiag:   make([][]complex128, dim),
		bckDiag:   make([][]complex128, dim),
	}
	for axis, b := range bases {
		sp.shapePhys[axis] = b.QuadSize()
		sp.shapeSpec[axis] = b.Modes()
		sp.points[axis], sp.weights[axis] = b.PointsAndWeights()
		switch bb := b.(type) {
		case basis.Diagonal:
			sp.fwdDiag[axis], sp.bckDiag[axis] = bb.TransformMatrices()
		case basis.Dense:
			if axis != dim-1 {
				err = fmt.Errorf("non-diagonal basis on axis %d: the dense axis must be last", axis)
				return
			}
			sp.denseAxis = axis
			Phi := bb.Vandermonde(0)
			sp.bckDense = Phi
			WPhi := Phi.Copy()
			scaleRows(WPhi, sp.weights[axis].DataP)
			Mass := Phi.Transpose().Mul(WPhi)
			var MassInv utils.Matrix
			if MassInv, err = Mass.Inverse(); err != nil {
				err = fmt.Errorf("mass matrix on axis %d is singular: %w", axis, err)
				return
			}
			sp.fwdDense = MassInv.Mul(WPhi.Transpose())
		default:
			err = fmt.Errorf("basis on axis %d is neither diagonal nor dense", axis)
			return
		}
	}
	return
}

func (sp *TensorProductSpace) Dim() int         { return len(sp.Bases) }
func (sp *TensorProductSpace) DenseAxis() int   { return sp.denseAxis }
func (sp *TensorProductSpace) ShapeSpec() []int { return sp.shapeSpec }
func (sp *TensorProductSpace) ShapePhys() []int { return sp.shapePhys }

// DenseModes is the coefficient count along the dense axis, 1 when the
// space is fully diagonal.
func (sp *TensorProductSpace) DenseModes() int {
	if sp.denseAxis < 0 {
		return 1
	}
	return sp.shapeSpec[sp.denseAxis]
}

// DiagShape is the coefficient shape restricted to the diagonal axes.
func (sp *TensorProductSpace) DiagShape() (shape []int) {
	for axis, n := range sp.shapeSpec {
		if axis != sp.denseAxis {
			shape = append(shape, n)
		}
	}
	return
}

// Points returns the quadrature points of one axis.
func (sp *TensorProductSpace) Points(axis int) utils.Vector { return sp.points[axis] }

// Weights returns the quadrature weights of one axis.
func (sp *TensorProductSpace) Weights(axis int) utils.Vector { return sp.weights[axis] }

// DenseVandermonde evaluates the dense-axis basis derivative at the
// quadrature points.
func (sp *TensorProductSpace) DenseVandermonde(deriv int) utils.Matrix {
	if sp.denseAxis < 0 {
		panic("space has no dense axis")
	}
	return sp.Bases[sp.denseAxis].(basis.Dense).Vandermonde(deriv)
}

// SqrtDetG samples sqrt(det g) at the dense-axis quadrature points. The
// metric must not depend on the diagonal-axis coordinates; this is checked
// by sampling at shifted positions.
func (sp *TensorProductSpace) SqrtDetG() (sg []float64, err error) {
	prof, err := sp.MetricProfile()
	if err != nil {
		return
	}
	sg = prof.Sg
	return
}

// MetricProfile holds the contravariant metric and volume element sampled
// along the dense axis.
type MetricProfile struct {
	GInv []utils.Matrix // one per dense-axis quadrature point
	Sg   []float64
}

func (sp *TensorProductSpace) MetricProfile() (prof *MetricProfile, err error) {
	var (
		dim = sp.Dim()
	)
	if sp.Coords == nil {
		err = fmt.Errorf("space has no coordinate map")
		return
	}
	axis := sp.denseAxis
	if axis < 0 {
		axis = dim - 1
	}
	Q := sp.shapePhys[axis]
	prof = &MetricProfile{
		GInv: make([]utils.Matrix, Q),
		Sg:   make([]float64, Q),
	}
	u := make([]float64, dim)
	uShift := make([]float64, dim)
	for q := 0; q < Q; q++ {
		for ax := 0; ax < dim; ax++ {
			u[ax] = sp.points[ax].AtVec(0)
			uShift[ax] = sp.points[ax].AtVec(sp.shapePhys[ax] / 2)
		}
		u[axis] = sp.points[axis].AtVec(q)
		uShift[axis] = u[axis]
		var gInv, gInvShift utils.Matrix
		var sg, sgShift float64
		if gInv, sg, err = sp.Coords.InverseMetric(u); err != nil {
			return
		}
		if gInvShift, sgShift, err = sp.Coords.InverseMetric(uShift); err != nil {
			return
		}
		if math.Abs(sg-sgShift) > 1.e-10*(1+math.Abs(sg)) ||
			maxAbsDiff(gInv, gInvShift) > 1.e-10 {
			err = fmt.Errorf("metric depends on a diagonal-axis coordinate; only the last axis may carry metric variation")
			return
		}
		prof.GInv[q] = gInv
		prof.Sg[q] = sg
	}
	return
}

func maxAbsDiff(a, b utils.Matrix) (d float64) {
	for i, val := range a.DataP {
		if diff := math.Abs(val - b.DataP[i]); diff > d {
			d = diff
		}
	}
	return
}

func scaleRows(m utils.Matrix, s []float64) {
	var (
		nr, nc = m.Dims()
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			m.DataP[i*nc+j] *= s[i]
		}
	}
}
