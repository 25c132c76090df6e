package utils

import (
	"fmt"
)

// CMatrix is a dense complex matrix in row-major storage. It carries the
// per-wavenumber systems produced when Fourier axes are eliminated, where
// odd derivative counts introduce imaginary couplings.
type CMatrix struct {
	Nr, Nc int
	DataP  []complex128
}

func NewCMatrix(nr, nc int) (R CMatrix) {
	R = CMatrix{
		Nr:    nr,
		Nc:    nc,
		DataP: make([]complex128, nr*nc),
	}
	return
}

func (m CMatrix) Dims() (nr, nc int)       { return m.Nr, m.Nc }
func (m CMatrix) At(i, j int) complex128   { return m.DataP[i*m.Nc+j] }
func (m CMatrix) Set(i, j int, val complex128) CMatrix {
	m.DataP[i*m.Nc+j] = val
	return m
}

func (m CMatrix) IsEmpty() bool {
	return m.DataP == nil
}

// AddScaled accumulates alpha * A into the receiver, A real.
func (m CMatrix) AddScaled(alpha complex128, A Matrix) CMatrix {
	var (
		nr, nc = A.Dims()
	)
	if nr != m.Nr || nc != m.Nc {
		panic(fmt.Errorf("dimension mismatch in AddScaled: [%d,%d] vs [%d,%d]", m.Nr, m.Nc, nr, nc))
	}
	for i, val := range A.DataP {
		m.DataP[i] += alpha * complex(val, 0)
	}
	return m
}

func (m CMatrix) Scale(alpha complex128) CMatrix {
	for i := range m.DataP {
		m.DataP[i] *= alpha
	}
	return m
}

// SetRealRow overwrites row i with real values, used for scalar constraints.
func (m CMatrix) SetRealRow(i int, data []float64) CMatrix {
	if len(data) != m.Nc {
		panic(fmt.Errorf("row length %d does not match %d columns", len(data), m.Nc))
	}
	for j, val := range data {
		m.DataP[i*m.Nc+j] = complex(val, 0)
	}
	return m
}

// RealEmbed maps the complex system to the equivalent real one,
//   [ Re  -Im ]
//   [ Im   Re ]
// so that the real LU machinery solves it.
func (m CMatrix) RealEmbed() (R Matrix) {
	var (
		nr, nc = m.Nr, m.Nc
	)
	R = NewMatrix(2*nr, 2*nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			re, im := real(m.DataP[i*nc+j]), imag(m.DataP[i*nc+j])
			R.DataP[i*2*nc+j] = re
			R.DataP[i*2*nc+j+nc] = -im
			R.DataP[(i+nr)*2*nc+j] = im
			R.DataP[(i+nr)*2*nc+j+nc] = re
		}
	}
	return
}

// EmbedCVector stacks [Re; Im] of b into a real vector compatible with
// RealEmbed systems.
func EmbedCVector(b []complex128) (R Vector) {
	var (
		n = len(b)
	)
	R = NewVector(2 * n)
	for i, val := range b {
		R.DataP[i] = real(val)
		R.DataP[i+n] = imag(val)
	}
	return
}

// ExtractCVector recovers the complex vector from its [Re; Im] embedding.
func ExtractCVector(x Vector) (b []complex128) {
	var (
		n = x.Len() / 2
	)
	b = make([]complex128, n)
	for i := range b {
		b[i] = complex(x.DataP[i], x.DataP[i+n])
	}
	return
}
