// Package forms evaluates bilinear variational forms against tensor-product
// spaces, producing per-axis matrices tagged by their outer-product
// structure: dense matrices on the trailing axis, per-wavenumber diagonals
// on the Fourier axes.
package forms

import (
	"fmt"
	"math"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/space"
	"github.com/notargets/gospectral/utils"
)

// Term is one additive piece of a bilinear form: per-axis derivative
// orders for trial and test functions, an overall scale and an optional
// integration measure sampled at the dense-axis quadrature points.
type Term struct {
	Scale   complex128
	Derivs  [][2]int // per axis: (trial order, test order)
	Measure []float64
}

type Form []Term

// Add concatenates forms.
func (f Form) Add(g Form) Form {
	return append(append(Form{}, f...), g...)
}

// TPMatrix is the assembled tensor-product representation of one Term: an
// outer product of a dense matrix on the trailing axis with one diagonal
// per Fourier axis.
type TPMatrix struct {
	Scale complex128
	Diags [][]complex128 // per diagonal axis, in axis order
	A     utils.Matrix   // test modes x trial modes; empty when the space is fully diagonal
}

// ModeFactor is the scalar the diagonal axes contribute at the mode
// multi-index idx.
func (tp TPMatrix) ModeFactor(idx []int) (c complex128) {
	c = tp.Scale
	for d, m := range idx {
		c *= tp.Diags[d][m]
	}
	return
}

// Assemble evaluates the form against the trial and test spaces. The two
// spaces must share their diagonal-axis bases; the dense-axis bases may
// differ, e.g. for mixed velocity-pressure blocks.
func Assemble(trial, test *space.TensorProductSpace, form Form) (tp []TPMatrix, err error) {
	var (
		dim = trial.Dim()
	)
	if test.Dim() != dim {
		err = fmt.Errorf("trial space is %d dimensional, test space is %d dimensional", dim, test.Dim())
		return
	}
	for axis := 0; axis < dim; axis++ {
		if axis == trial.DenseAxis() {
			if test.DenseAxis() != axis {
				err = fmt.Errorf("trial and test spaces disagree on the dense axis")
				return
			}
			if trial.ShapePhys()[axis] != test.ShapePhys()[axis] {
				err = fmt.Errorf("trial and test spaces use different quadrature on axis %d", axis)
				return
			}
			continue
		}
		if trial.Bases[axis] != test.Bases[axis] {
			err = fmt.Errorf("diagonal axis %d must share one basis between trial and test", axis)
			return
		}
	}
	tp = make([]TPMatrix, 0, len(form))
	for _, term := range form {
		if len(term.Derivs) != dim {
			err = fmt.Errorf("term has %d axis entries for a %d dimensional space", len(term.Derivs), dim)
			return
		}
		one := TPMatrix{Scale: term.Scale}
		if one.Scale == 0 {
			one.Scale = 1
		}
		for axis := 0; axis < dim; axis++ {
			if axis == trial.DenseAxis() {
				one.A = denseMatrix(trial, test, term, axis)
				continue
			}
			b := trial.Bases[axis].(basis.Diagonal)
			ks := b.Wavenumbers()
			diag := make([]complex128, len(ks))
			for m, k := range ks {
				diag[m] = b.Term(term.Derivs[axis][0], term.Derivs[axis][1], k)
			}
			one.Diags = append(one.Diags, diag)
		}
		tp = append(tp, one)
	}
	return
}

func denseMatrix(trial, test *space.TensorProductSpace, term Term, axis int) utils.Matrix {
	var (
		Phi = trial.DenseVandermonde(term.Derivs[axis][0])
		B   = test.DenseVandermonde(term.Derivs[axis][1])
		wm  = append([]float64{}, test.Weights(axis).DataP...)
	)
	if term.Measure != nil {
		for q := range wm {
			wm[q] *= term.Measure[q]
		}
	}
	WPhi := Phi.Copy()
	nr, nc := WPhi.Dims()
	for q := 0; q < nr; q++ {
		for j := 0; j < nc; j++ {
			WPhi.DataP[q*nc+j] *= wm[q]
		}
	}
	return B.Transpose().Mul(WPhi)
}

// Mass returns the form (u, v), carrying the sqrt(det g) measure when the
// space has a coordinate map.
func Mass(sp *space.TensorProductSpace) (f Form, err error) {
	var (
		dim     = sp.Dim()
		measure []float64
	)
	if sp.Coords != nil {
		if measure, err = sp.SqrtDetG(); err != nil {
			return
		}
	}
	f = Form{{
		Scale:   1,
		Derivs:  make([][2]int, dim),
		Measure: measure,
	}}
	return
}

// GradGrad returns the form (grad u, grad v). Under a coordinate map the
// gradient contracts with the contravariant metric, so each axis pair
// (i, j) with a nonvanishing g^ij sqrt(g) contributes one term, including
// the mixed-derivative couplings of non-orthogonal coordinates.
func GradGrad(sp *space.TensorProductSpace) (f Form, err error) {
	var (
		dim = sp.Dim()
	)
	if sp.Coords == nil {
		for i := 0; i < dim; i++ {
			derivs := make([][2]int, dim)
			derivs[i] = [2]int{1, 1}
			f = append(f, Term{Scale: 1, Derivs: derivs})
		}
		return
	}
	var prof *space.MetricProfile
	if prof, err = sp.MetricProfile(); err != nil {
		return
	}
	Q := len(prof.Sg)
	// Drop metric entries at rounding level so orthogonal mappings do not
	// pick up spurious mixed terms.
	var gMax float64
	for q := 0; q < Q; q++ {
		for i := 0; i < dim; i++ {
			if v := math.Abs(prof.GInv[q].At(i, i) * prof.Sg[q]); v > gMax {
				gMax = v
			}
		}
	}
	cutoff := 1.e-13 * gMax
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			measure := make([]float64, Q)
			var nonzero bool
			for q := 0; q < Q; q++ {
				measure[q] = prof.GInv[q].At(i, j) * prof.Sg[q]
				if math.Abs(measure[q]) > cutoff {
					nonzero = true
				}
			}
			if !nonzero {
				continue
			}
			derivs := make([][2]int, dim)
			derivs[i][0] = 1
			derivs[j][1] = 1
			f = append(f, Term{Scale: 1, Derivs: derivs, Measure: measure})
		}
	}
	return
}

// MeanRow returns the linear functional u -> integral of u over the domain,
// restricted to the dense-axis trial modes. It serves as the zero-mean
// constraint row at the zero wavenumber.
func MeanRow(sp *space.TensorProductSpace) (row []float64) {
	var (
		axis = sp.DenseAxis()
		Phi  = sp.DenseVandermonde(0)
		w    = sp.Weights(axis)
	)
	_, modes := Phi.Dims()
	row = make([]float64, modes)
	for j := 0; j < modes; j++ {
		for q := 0; q < w.Len(); q++ {
			row[j] += w.AtVec(q) * Phi.At(q, j)
		}
	}
	return
}
