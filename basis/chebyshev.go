package basis

import (
	"math"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gospectral/utils"
)

// Chebyshev is the Chebyshev family over [a,b]: the orthogonal basis T_k or
// a boundary-constrained composite basis expressed through a stencil into
// T_k. Inner products are weighted by 1/sqrt(1-r^2) as usual for the
// family.
type Chebyshev struct {
	n, modes int
	quad     Quadrature
	af       affine
	stencil  *sparse.CSR // nil for the orthogonal basis
}

func NewChebyshev(N int, quad Quadrature, domain ...[2]float64) *Chebyshev {
	return &Chebyshev{
		n:     N,
		modes: N,
		quad:  quad,
		af:    polyAffine(domain),
	}
}

// NewChebyshevDirichlet builds the composite basis T_k - T_{k+2}, which
// vanishes at both endpoints.
func NewChebyshevDirichlet(N int, quad Quadrature, domain ...[2]float64) *Chebyshev {
	var (
		S = sparse.NewDOK(N, N-2)
	)
	for k := 0; k < N-2; k++ {
		S.Set(k, k, 1)
		S.Set(k+2, k, -1)
	}
	return &Chebyshev{
		n:       N,
		modes:   N - 2,
		quad:    quad,
		af:      polyAffine(domain),
		stencil: S.ToCSR(),
	}
}

// NewChebyshevNeumann builds the composite basis
// T_k - (k/(k+2))^2 T_{k+2}, whose derivative vanishes at both endpoints.
func NewChebyshevNeumann(N int, quad Quadrature, domain ...[2]float64) *Chebyshev {
	var (
		S = sparse.NewDOK(N, N-2)
	)
	for k := 0; k < N-2; k++ {
		fk := float64(k)
		S.Set(k, k, 1)
		S.Set(k+2, k, -utils.POW(fk/(fk+2), 2))
	}
	return &Chebyshev{
		n:       N,
		modes:   N - 2,
		quad:    quad,
		af:      polyAffine(domain),
		stencil: S.ToCSR(),
	}
}

// NewChebyshevBiharmonic builds the composite basis
// T_k - 2(k+2)/(k+3) T_{k+2} + (k+1)/(k+3) T_{k+4}, satisfying homogeneous
// Dirichlet and Neumann conditions at both endpoints.
func NewChebyshevBiharmonic(N int, quad Quadrature, domain ...[2]float64) *Chebyshev {
	var (
		S = sparse.NewDOK(N, N-4)
	)
	for k := 0; k < N-4; k++ {
		fk := float64(k)
		S.Set(k, k, 1)
		S.Set(k+2, k, -2*(fk+2)/(fk+3))
		S.Set(k+4, k, (fk+1)/(fk+3))
	}
	return &Chebyshev{
		n:       N,
		modes:   N - 4,
		quad:    quad,
		af:      polyAffine(domain),
		stencil: S.ToCSR(),
	}
}

// Truncate reduces the expansion to the first modes coefficients, used e.g.
// for a pressure space paired with boundary-constrained velocities.
func (c *Chebyshev) Truncate(modes int) *Chebyshev {
	if c.stencil != nil {
		panic("truncation applies to the orthogonal basis only")
	}
	if modes > c.n {
		modes = c.n
	}
	c.modes = modes
	return c
}

func (c *Chebyshev) Modes() int             { return c.modes }
func (c *Chebyshev) QuadSize() int          { return c.n }
func (c *Chebyshev) Domain() (a, b float64) { return c.af.a, c.af.b }

func (c *Chebyshev) PointsAndWeights() (x, w utils.Vector) {
	var (
		N = c.n
	)
	x, w = utils.NewVector(N), utils.NewVector(N)
	switch c.quad {
	case Gauss:
		for q := 0; q < N; q++ {
			x.DataP[q] = -math.Cos(math.Pi * (2*float64(q) + 1) / (2 * float64(N)))
			w.DataP[q] = math.Pi / float64(N)
		}
	case Lobatto:
		for q := 0; q < N; q++ {
			x.DataP[q] = -math.Cos(math.Pi * float64(q) / float64(N-1))
			w.DataP[q] = math.Pi / float64(N-1)
		}
		w.DataP[0] /= 2
		w.DataP[N-1] /= 2
	}
	for q := 0; q < N; q++ {
		x.DataP[q] = c.af.toPhysical(x.DataP[q])
		w.DataP[q] *= c.af.jacobian()
	}
	return
}

func (c *Chebyshev) Vandermonde(deriv int) (V utils.Matrix) {
	V = orthoChebVandermonde(c.n, c.quad, deriv, c.af)
	if c.stencil != nil {
		V = V.MulDense(c.stencil)
	} else if c.modes < c.n {
		V = V.SliceCols(utils.NewRange(0, c.modes-1))
	}
	return
}

func orthoChebVandermonde(N int, quad Quadrature, deriv int, af affine) (V utils.Matrix) {
	var (
		r    = make([]float64, N)
		dfac = utils.POW(af.factor(), deriv)
	)
	switch quad {
	case Gauss:
		for q := 0; q < N; q++ {
			r[q] = -math.Cos(math.Pi * (2*float64(q) + 1) / (2 * float64(N)))
		}
	case Lobatto:
		for q := 0; q < N; q++ {
			r[q] = -math.Cos(math.Pi * float64(q) / float64(N-1))
		}
	}
	V = utils.NewMatrix(N, N)
	col := make([]float64, N)
	for j := 0; j < N; j++ {
		cj := make([]float64, N)
		cj[j] = 1
		for d := 0; d < deriv; d++ {
			cj = chebDer(cj)
		}
		for q := 0; q < N; q++ {
			col[q] = chebEval(cj, r[q]) * dfac
		}
		V.SetCol(j, col)
	}
	return
}

// chebDer returns the Chebyshev coefficients of the derivative of the
// series with coefficients c.
func chebDer(c []float64) (der []float64) {
	var (
		n  = len(c)
		cc = append([]float64{}, c...)
	)
	der = make([]float64, n)
	for j := n - 1; j > 2; j-- {
		der[j-1] = 2 * float64(j) * cc[j]
		cc[j-2] += float64(j) * cc[j] / float64(j-2)
	}
	if n > 2 {
		der[1] = 4 * cc[2]
	}
	if n > 1 {
		der[0] = cc[1]
	}
	return
}

// chebEval evaluates a Chebyshev series at r by the three-term recurrence.
func chebEval(c []float64, r float64) (y float64) {
	var (
		tkm, tk = 1., r
	)
	y = c[0]
	if len(c) > 1 {
		y += c[1] * r
	}
	for k := 2; k < len(c); k++ {
		tkm, tk = tk, 2*r*tk-tkm
		y += c[k] * tk
	}
	return
}

func polyAffine(domain [][2]float64) affine {
	af := affine{a: -1, b: 1, ra: -1, rb: 1}
	if len(domain) != 0 {
		af.a, af.b = domain[0][0], domain[0][1]
	}
	return af
}
