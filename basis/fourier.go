package basis

import (
	"math"
	"math/cmplx"

	"github.com/notargets/gospectral/utils"
)

// Fourier is the periodic complex-exponential basis exp(i k x) over [a,b).
// Constant-coefficient operators are diagonal on it, so the axis can be
// eliminated wavenumber by wavenumber.
type Fourier struct {
	n  int
	af affine
}

func NewFourier(N int, domain ...[2]float64) *Fourier {
	af := affine{a: 0, b: 2 * math.Pi, ra: 0, rb: 2 * math.Pi}
	if len(domain) != 0 {
		af.a, af.b = domain[0][0], domain[0][1]
	}
	return &Fourier{
		n:  N,
		af: af,
	}
}

func (f *Fourier) Modes() int             { return f.n }
func (f *Fourier) QuadSize() int          { return f.n }
func (f *Fourier) Domain() (a, b float64) { return f.af.a, f.af.b }

func (f *Fourier) PointsAndWeights() (x, w utils.Vector) {
	var (
		N = f.n
		L = f.af.b - f.af.a
	)
	x, w = utils.NewVector(N), utils.NewVector(N)
	for j := 0; j < N; j++ {
		x.DataP[j] = f.af.a + L*float64(j)/float64(N)
		w.DataP[j] = L / float64(N)
	}
	return
}

// Wavenumbers returns the integer mode numbers in transform order, the
// range symmetric about zero.
func (f *Fourier) Wavenumbers() (k []float64) {
	var (
		N = f.n
	)
	k = make([]float64, N)
	for j := 0; j < N; j++ {
		if j <= (N-1)/2 {
			k[j] = float64(j)
		} else {
			k[j] = float64(j - N)
		}
	}
	return
}

// Term returns (i k~)^a (-i k~)^b L for trial derivative order a and test
// derivative order b, where k~ is the wavenumber scaled to the domain
// length L.
func (f *Fourier) Term(a, b int, k float64) (t complex128) {
	var (
		L  = f.af.b - f.af.a
		kk = k * 2 * math.Pi / L
	)
	t = complex(L, 0)
	ik := complex(0, kk)
	for i := 0; i < a; i++ {
		t *= ik
	}
	for i := 0; i < b; i++ {
		t *= -ik
	}
	return
}

func (f *Fourier) TransformMatrices() (fwd, bck []complex128) {
	var (
		N = f.n
		k = f.Wavenumbers()
	)
	fwd = make([]complex128, N*N)
	bck = make([]complex128, N*N)
	for j := 0; j < N; j++ {
		theta := 2 * math.Pi * float64(j) / float64(N)
		for m := 0; m < N; m++ {
			phase := cmplx.Exp(complex(0, k[m]*theta))
			fwd[m*N+j] = cmplx.Conj(phase) / complex(float64(N), 0)
			bck[j*N+m] = phase
		}
	}
	return
}
