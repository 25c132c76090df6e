package space

import (
	"math"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/utils"
)

// Function is a spectral coefficient array over the space, one index per
// axis, stored row-major so the dense (last) axis is contiguous.
type Function struct {
	Sp    *TensorProductSpace
	DataP []complex128
}

// Array holds values of a field at the quadrature points in physical
// space.
type Array struct {
	Sp    *TensorProductSpace
	DataP []float64
}

func NewFunction(sp *TensorProductSpace) (f *Function) {
	f = &Function{
		Sp:    sp,
		DataP: make([]complex128, prod(sp.shapeSpec)),
	}
	return
}

func NewArray(sp *TensorProductSpace) (a *Array) {
	a = &Array{
		Sp:    sp,
		DataP: make([]float64, prod(sp.shapePhys)),
	}
	return
}

// Sample fills the array with fn evaluated at every quadrature point.
func (a *Array) Sample(fn func(u []float64) float64) *Array {
	var (
		sp    = a.Sp
		dim   = sp.Dim()
		shape = sp.shapePhys
		u     = make([]float64, dim)
		idx   = make([]int, dim)
	)
	for flat := range a.DataP {
		for ax := 0; ax < dim; ax++ {
			u[ax] = sp.points[ax].AtVec(idx[ax])
		}
		a.DataP[flat] = fn(u)
		increment(idx, shape)
	}
	return a
}

// Forward transforms quadrature values to spectral coefficients.
func (sp *TensorProductSpace) Forward(a *Array) (f *Function) {
	var (
		data  = make([]complex128, len(a.DataP))
		shape = append([]int{}, sp.shapePhys...)
	)
	for i, val := range a.DataP {
		data[i] = complex(val, 0)
	}
	for axis := range sp.Bases {
		data, shape = applyAxis(data, shape, axis, sp.forwardMatrix(axis), sp.shapeSpec[axis])
	}
	f = &Function{Sp: sp, DataP: data}
	return
}

// Backward transforms spectral coefficients to quadrature values.
func (sp *TensorProductSpace) Backward(f *Function) (a *Array) {
	var (
		data  = append([]complex128{}, f.DataP...)
		shape = append([]int{}, sp.shapeSpec...)
	)
	for axis := range sp.Bases {
		data, shape = applyAxis(data, shape, axis, sp.backwardMatrix(axis), sp.shapePhys[axis])
	}
	a = NewArray(sp)
	for i, val := range data {
		a.DataP[i] = real(val)
	}
	return
}

// ScalarProduct computes the weighted projection of a onto the test basis,
// the right hand side of a Galerkin system. measure, when non-nil, holds an
// extra integration measure sampled at the dense-axis quadrature points,
// e.g. sqrt(det g).
func (sp *TensorProductSpace) ScalarProduct(a *Array, measure []float64) (f *Function) {
	var (
		data  = make([]complex128, len(a.DataP))
		shape = append([]int{}, sp.shapePhys...)
	)
	for i, val := range a.DataP {
		data[i] = complex(val, 0)
	}
	for axis := range sp.Bases {
		var A []complex128
		if axis == sp.denseAxis {
			Phi := sp.DenseVandermonde(0)
			W := Phi.Copy()
			wm := append([]float64{}, sp.weights[axis].DataP...)
			if measure != nil {
				for q := range wm {
					wm[q] *= measure[q]
				}
			}
			scaleRows(W, wm)
			A = cmplxMat(W.Transpose())
		} else {
			// Fourier scalar product is the forward transform scaled by
			// the domain mass.
			mass := sp.Bases[axis].(basis.Diagonal).Term(0, 0, 0)
			A = make([]complex128, len(sp.fwdDiag[axis]))
			for i, val := range sp.fwdDiag[axis] {
				A[i] = mass * val
			}
		}
		data, shape = applyAxis(data, shape, axis, A, sp.shapeSpec[axis])
	}
	f = &Function{Sp: sp, DataP: data}
	return
}

func (sp *TensorProductSpace) forwardMatrix(axis int) []complex128 {
	if axis == sp.denseAxis {
		return cmplxMat(sp.fwdDense)
	}
	return sp.fwdDiag[axis]
}

func (sp *TensorProductSpace) backwardMatrix(axis int) []complex128 {
	if axis == sp.denseAxis {
		return cmplxMat(sp.bckDense)
	}
	return sp.bckDiag[axis]
}

// L2Norm is the quadrature-weighted L2 norm of the array, including the
// sqrt(det g) volume element under a coordinate map.
func (sp *TensorProductSpace) L2Norm(a *Array) (n float64) {
	var (
		dim   = sp.Dim()
		shape = sp.shapePhys
		idx   = make([]int, dim)
		sg    []float64
	)
	if sp.Coords != nil {
		var err error
		if sg, err = sp.SqrtDetG(); err != nil {
			panic(err)
		}
	}
	axis := sp.denseAxis
	if axis < 0 {
		axis = dim - 1
	}
	for _, val := range a.DataP {
		wq := 1.
		for ax := 0; ax < dim; ax++ {
			wq *= sp.weights[ax].AtVec(idx[ax])
		}
		if sg != nil {
			wq *= sg[idx[axis]]
		}
		n += val * val * wq
		increment(idx, shape)
	}
	n = math.Sqrt(n)
	return
}

// LinfNorm is the maximum absolute value over the quadrature grid.
func (sp *TensorProductSpace) LinfNorm(a *Array) (n float64) {
	for _, val := range a.DataP {
		if abs := math.Abs(val); abs > n {
			n = abs
		}
	}
	return
}

// Subtract subtracts b from the receiver in place.
func (a *Array) Subtract(b *Array) *Array {
	for i, val := range b.DataP {
		a.DataP[i] -= val
	}
	return a
}

// MaxImag reports the largest imaginary part magnitude, a round-off
// diagnostic after solving real problems in complex storage.
func (f *Function) MaxImag() (m float64) {
	for _, val := range f.DataP {
		if im := math.Abs(imag(val)); im > m {
			m = im
		}
	}
	return
}

func cmplxMat(m utils.Matrix) (A []complex128) {
	A = make([]complex128, len(m.DataP))
	for i, val := range m.DataP {
		A[i] = complex(val, 0)
	}
	return
}

// applyAxis contracts A (nOut x shape[axis], row-major) with the tensor
// along one axis.
func applyAxis(in []complex128, shape []int, axis int, A []complex128, nOut int) (out []complex128, outShape []int) {
	var (
		nIn   = shape[axis]
		outer = prod(shape[:axis])
		inner = prod(shape[axis+1:])
	)
	outShape = append([]int{}, shape...)
	outShape[axis] = nOut
	out = make([]complex128, outer*nOut*inner)
	for o := 0; o < outer; o++ {
		for k := 0; k < nOut; k++ {
			obase := (o*nOut + k) * inner
			for i := 0; i < nIn; i++ {
				a := A[k*nIn+i]
				if a == 0 {
					continue
				}
				base := (o*nIn + i) * inner
				for s := 0; s < inner; s++ {
					out[obase+s] += a * in[base+s]
				}
			}
		}
	}
	return
}

func prod(shape []int) (p int) {
	p = 1
	for _, n := range shape {
		p *= n
	}
	return
}

func increment(idx, shape []int) {
	for ax := len(idx) - 1; ax >= 0; ax-- {
		idx[ax]++
		if idx[ax] < shape[ax] {
			return
		}
		idx[ax] = 0
	}
}
