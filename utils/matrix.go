package utils

import (
	"bytes"
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M     *mat.Dense
	DataP []float64
	name  string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
	}
	return
}

func NewDiagMatrix(n int, diag []float64) (R Matrix) {
	R = NewMatrix(n, n)
	for i := 0; i < n; i++ {
		R.DataP[i*n+i] = diag[i]
	}
	return
}

func NewIdentityMatrix(n int) (R Matrix) {
	R = NewMatrix(n, n)
	for i := 0; i < n; i++ {
		R.DataP[i*n+i] = 1
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsEmpty() bool {
	return m.M == nil
}

func (m Matrix) IsScalar() bool {
	if m.IsEmpty() {
		return false
	}
	nr, nc := m.Dims()
	return nr == 1 && nc == 1
}

// Chainable methods, those that do not change the receiver return new storage
func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) {
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) MulDense(A mat.Matrix) (R Matrix) {
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A)
	return
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	for i, val := range A.DataP {
		m.DataP[i] += val
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	for i, val := range A.DataP {
		m.DataP[i] -= val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

func (m Matrix) AddScaled(a float64, A Matrix) Matrix { // Changes receiver
	for i, val := range A.DataP {
		m.DataP[i] += a * val
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m Matrix) ElMul(A Matrix) Matrix { // Changes receiver
	for i, val := range A.DataP {
		m.DataP[i] *= val
	}
	return m
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Row(i int) Vector {
	var (
		_, nc = m.M.Dims()
		vData = make([]float64, nc)
	)
	copy(vData, m.DataP[i*nc:(i+1)*nc])
	return NewVector(nc, vData)
}

func (m Matrix) Col(j int) Vector {
	var (
		nr, nc = m.M.Dims()
		vData  = make([]float64, nr)
	)
	for i := range vData {
		vData[i] = m.DataP[i*nc+j]
	}
	return NewVector(nr, vData)
}

func (m Matrix) SliceRows(I Index) (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(len(I), nc)
	for iNew, i := range I {
		if i > nr-1 || i < 0 {
			panic(fmt.Errorf("row index %d out of bounds, max = %d", i, nr-1))
		}
		R.M.SetRow(iNew, m.M.RawRowView(i))
	}
	return
}

func (m Matrix) SliceCols(I Index) (R Matrix) {
	var (
		nr, nc  = m.Dims()
		colData = make([]float64, nr)
	)
	R = NewMatrix(nr, len(I))
	for jNew, j := range I {
		if j > nc-1 || j < 0 {
			panic(fmt.Errorf("column index %d out of bounds, max = %d", j, nc-1))
		}
		for i := 0; i < nr; i++ {
			colData[i] = m.DataP[i*nc+j]
		}
		R.M.SetCol(jNew, colData)
	}
	return
}

func (m Matrix) MulVec(v Vector) (R Vector) {
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	copy(R.DataP, R.V.RawVector().Data)
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// LUSolve factors a copy of the receiver and solves m * x = b in place of b.
func (m Matrix) LUSolve(b Vector) (x Vector, err error) {
	var (
		nr, _ = m.Dims()
	)
	if b.Len() != nr {
		err = fmt.Errorf("dimension mismatch in LUSolve: system is %d, rhs is %d", nr, b.Len())
		return
	}
	LU := m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(LU.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to solve, matrix is singular")
		return
	}
	x = b.Copy()
	B := blas64.General{Rows: nr, Cols: 1, Stride: 1, Data: x.DataP}
	lapack64.Getrs(blas.NoTrans, LU.RawMatrix(), B, iPiv)
	return
}

func (m Matrix) Max() (max float64) {
	max = m.DataP[0]
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Min() (min float64) {
	min = m.DataP[0]
	for _, val := range m.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) SumRows() (V Vector) {
	var (
		nr, nc = m.Dims()
	)
	V = NewVector(nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			V.DataP[i] += m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) SumCols() (V Vector) {
	var (
		nr, nc = m.Dims()
	)
	V = NewVector(nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			V.DataP[j] += m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Print(msgI ...string) (out string) {
	var (
		name = m.name
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%s = \n%8.5f\n", name, mat.Formatted(m.M, mat.Squeeze())))
	return buf.String()
}
