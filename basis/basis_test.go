package basis

import (
	"math"
	"testing"

	"github.com/notargets/gospectral/utils"
	"github.com/stretchr/testify/assert"
)

func TestChebyshev(t *testing.T) {
	// Gauss points and weights on [-1,1]
	{
		N := 4
		cb := NewChebyshev(N, Gauss)
		x, w := cb.PointsAndWeights()
		for q := 0; q < N; q++ {
			assert.True(t, near(x.DataP[q], -math.Cos(math.Pi*(2*float64(q)+1)/(2*float64(N)))))
			assert.True(t, near(w.DataP[q], math.Pi/float64(N)))
		}
	}
	// Vandermonde columns are T_k; first derivative of T_2 is 4x
	{
		cb := NewChebyshev(6, Gauss)
		x, _ := cb.PointsAndWeights()
		V := cb.Vandermonde(0)
		dV := cb.Vandermonde(1)
		for q := 0; q < 6; q++ {
			xq := x.DataP[q]
			assert.True(t, near(V.At(q, 0), 1))
			assert.True(t, near(V.At(q, 1), xq))
			assert.True(t, near(V.At(q, 2), 2*xq*xq-1))
			assert.True(t, near(V.At(q, 3), 4*xq*xq*xq-3*xq))
			assert.True(t, near(dV.At(q, 2), 4*xq))
			assert.True(t, near(dV.At(q, 3), 12*xq*xq-3))
		}
	}
	// The Dirichlet composite vanishes at the Lobatto endpoints
	{
		N := 8
		cb := NewChebyshevDirichlet(N, Lobatto)
		assert.Equal(t, N-2, cb.Modes())
		V := cb.Vandermonde(0)
		for k := 0; k < cb.Modes(); k++ {
			assert.True(t, near(V.At(0, k), 0, 1.e-13))
			assert.True(t, near(V.At(N-1, k), 0, 1.e-13))
		}
	}
	// Neumann composite has zero slope at the endpoints
	{
		N := 8
		cb := NewChebyshevNeumann(N, Lobatto)
		dV := cb.Vandermonde(1)
		for k := 0; k < cb.Modes(); k++ {
			assert.True(t, near(dV.At(0, k), 0, 1.e-11))
			assert.True(t, near(dV.At(N-1, k), 0, 1.e-11))
		}
	}
	// Biharmonic composite vanishes with its slope at the endpoints
	{
		N := 10
		cb := NewChebyshevBiharmonic(N, Lobatto)
		assert.Equal(t, N-4, cb.Modes())
		V, dV := cb.Vandermonde(0), cb.Vandermonde(1)
		for k := 0; k < cb.Modes(); k++ {
			assert.True(t, near(V.At(0, k), 0, 1.e-12))
			assert.True(t, near(V.At(N-1, k), 0, 1.e-12))
			assert.True(t, near(dV.At(0, k), 0, 1.e-10))
			assert.True(t, near(dV.At(N-1, k), 0, 1.e-10))
		}
	}
	// Affine map to [0,2]: derivative picks up the chain rule factor
	{
		cb := NewChebyshev(5, Gauss, [2]float64{0, 2})
		x, _ := cb.PointsAndWeights()
		V, dV := cb.Vandermonde(0), cb.Vandermonde(1)
		for q := 0; q < 5; q++ {
			r := x.DataP[q] - 1 // reference coordinate
			assert.True(t, near(V.At(q, 1), r))
			assert.True(t, near(dV.At(q, 1), 1)) // d/dx (x-1) = 1
			assert.True(t, near(dV.At(q, 2), 4*r))
		}
	}
}

func TestLegendre(t *testing.T) {
	// Three point Gauss rule
	{
		lg := NewLegendre(3, Gauss)
		x, w := lg.PointsAndWeights()
		assert.True(t, nearVec(x.DataP, []float64{-math.Sqrt(3. / 5.), 0, math.Sqrt(3. / 5.)}, 1.e-12))
		assert.True(t, nearVec(w.DataP, []float64{5. / 9., 8. / 9., 5. / 9.}, 1.e-12))
	}
	// Lobatto rule includes the endpoints, weights sum to 2
	{
		lg := NewLegendre(5, Lobatto)
		x, w := lg.PointsAndWeights()
		assert.True(t, near(x.DataP[0], -1))
		assert.True(t, near(x.DataP[4], 1))
		var sum float64
		for _, val := range w.DataP {
			sum += val
		}
		assert.True(t, near(sum, 2, 1.e-12))
	}
	// Vandermonde columns are P_k
	{
		lg := NewLegendre(6, Gauss)
		x, _ := lg.PointsAndWeights()
		V, dV := lg.Vandermonde(0), lg.Vandermonde(1)
		for q := 0; q < 6; q++ {
			xq := x.DataP[q]
			assert.True(t, near(V.At(q, 0), 1))
			assert.True(t, near(V.At(q, 1), xq))
			assert.True(t, near(V.At(q, 2), 1.5*xq*xq-0.5))
			assert.True(t, near(dV.At(q, 2), 3*xq))
			assert.True(t, near(dV.At(q, 3), 7.5*xq*xq-1.5))
		}
	}
	// Dirichlet composite P_k - P_{k+2} vanishes at both endpoints
	{
		N := 8
		lg := NewLegendreDirichlet(N, Lobatto)
		assert.Equal(t, N-2, lg.Modes())
		V := lg.Vandermonde(0)
		for k := 0; k < lg.Modes(); k++ {
			assert.True(t, near(V.At(0, k), 0, 1.e-13))
			assert.True(t, near(V.At(N-1, k), 0, 1.e-13))
		}
	}
	// Truncation keeps the leading modes
	{
		lg := NewLegendre(8, Gauss).Truncate(5)
		assert.Equal(t, 5, lg.Modes())
		_, nc := lg.Vandermonde(0).Dims()
		assert.Equal(t, 5, nc)
	}
}

func TestFourier(t *testing.T) {
	// Wavenumbers come out in transform order
	{
		f := NewFourier(8)
		assert.True(t, nearVec(f.Wavenumbers(),
			[]float64{0, 1, 2, 3, -4, -3, -2, -1}, 1.e-15))
	}
	// Bilinear factors on [0,2pi)
	{
		f := NewFourier(8)
		L := 2 * math.Pi
		assert.True(t, near(real(f.Term(0, 0, 3)), L))
		assert.True(t, near(real(f.Term(1, 1, 3)), 9*L)) // (ik)(-ik) = k^2
		tm := f.Term(1, 0, 2)
		assert.True(t, near(real(tm), 0, 1.e-14))
		assert.True(t, near(imag(tm), 2*L))
	}
	// Domain scaling: on [0,1) the wavenumber scales by 2pi
	{
		f := NewFourier(4, [2]float64{0, 1})
		assert.True(t, near(real(f.Term(1, 1, 1)), 4*math.Pi*math.Pi))
	}
	// Forward transform of cos(x) puts 1/2 at k = +-1
	{
		N := 8
		f := NewFourier(N)
		fwd, _ := f.TransformMatrices()
		x, _ := f.PointsAndWeights()
		u := make([]complex128, N)
		for j := range u {
			u[j] = complex(math.Cos(x.DataP[j]), 0)
		}
		uh := make([]complex128, N)
		for m := 0; m < N; m++ {
			for j := 0; j < N; j++ {
				uh[m] += fwd[m*N+j] * u[j]
			}
		}
		assert.True(t, near(real(uh[1]), 0.5, 1.e-13))
		assert.True(t, near(real(uh[N-1]), 0.5, 1.e-13))
		assert.True(t, near(real(uh[0]), 0, 1.e-13))
	}
	// Backward inverts forward
	{
		N := 6
		f := NewFourier(N)
		fwd, bck := f.TransformMatrices()
		for i := 0; i < N; i++ {
			for j := 0; j < N; j++ {
				var sum complex128
				for m := 0; m < N; m++ {
					sum += bck[i*N+m] * fwd[m*N+j]
				}
				expect := complex(0, 0)
				if i == j {
					expect = 1
				}
				assert.True(t, near(real(sum), real(expect), 1.e-13))
				assert.True(t, near(imag(sum), 0, 1.e-13))
			}
		}
	}
}

func TestTrigonometric(t *testing.T) {
	// Column layout is {1, cos, sin, cos 2, sin 2, ...}
	{
		tb := NewTrigonometric(9)
		assert.Equal(t, 9, tb.Modes())
		x, _ := tb.PointsAndWeights()
		V, dV := tb.Vandermonde(0), tb.Vandermonde(1)
		for q := 0; q < 9; q++ {
			theta := x.DataP[q]
			assert.True(t, near(V.At(q, 0), 1))
			assert.True(t, near(V.At(q, 1), math.Cos(theta)))
			assert.True(t, near(V.At(q, 2), math.Sin(theta)))
			assert.True(t, near(V.At(q, 3), math.Cos(2*theta)))
			assert.True(t, near(dV.At(q, 1), -math.Sin(theta)))
			assert.True(t, near(dV.At(q, 4), 2*math.Cos(2*theta)))
		}
	}
	// Even quadrature size drops the Nyquist pair
	{
		tb := NewTrigonometric(8)
		assert.Equal(t, 7, tb.Modes())
	}
}

func TestJacobi(t *testing.T) {
	// Normalized P_0 is 1/sqrt(2)
	{
		p := JacobiP(utils.NewVector(3, []float64{-0.5, 0, 0.5}), 0, 0, 0)
		for _, val := range p {
			assert.True(t, near(val, 1/math.Sqrt2))
		}
	}
	// Gauss quadrature integrates polynomials of degree 2N-1 exactly
	{
		x, w := JacobiGQ(0, 0, 3) // 4 points, exact through degree 7
		var sum float64
		for q := 0; q < x.Len(); q++ {
			xq := x.DataP[q]
			sum += w.DataP[q] * (xq*xq*xq*xq*xq*xq + xq)
		}
		assert.True(t, near(sum, 2./7., 1.e-12))
	}
}

func nearVec(a, b []float64, tol float64) (l bool) {
	for i, val := range a {
		if !near(b[i], val, tol) {
			return false
		}
	}
	return true
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
