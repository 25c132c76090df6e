package basis

import (
	"math"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gospectral/utils"
)

// Legendre is the Legendre family over [a,b]: the orthogonal basis P_k or a
// boundary-constrained composite basis expressed through a stencil into
// P_k. The family weight is one, so assembled forms are the plain L2
// Galerkin ones.
type Legendre struct {
	n, modes int
	quad     Quadrature
	af       affine
	stencil  *sparse.CSR // nil for the orthogonal basis
}

func NewLegendre(N int, quad Quadrature, domain ...[2]float64) *Legendre {
	return &Legendre{
		n:     N,
		modes: N,
		quad:  quad,
		af:    polyAffine(domain),
	}
}

// NewLegendreDirichlet builds the composite basis P_k - P_{k+2}, which
// vanishes at both endpoints.
func NewLegendreDirichlet(N int, quad Quadrature, domain ...[2]float64) *Legendre {
	var (
		S = sparse.NewDOK(N, N-2)
	)
	for k := 0; k < N-2; k++ {
		S.Set(k, k, 1)
		S.Set(k+2, k, -1)
	}
	return &Legendre{
		n:       N,
		modes:   N - 2,
		quad:    quad,
		af:      polyAffine(domain),
		stencil: S.ToCSR(),
	}
}

// Truncate reduces the expansion to the first modes coefficients.
func (l *Legendre) Truncate(modes int) *Legendre {
	if l.stencil != nil {
		panic("truncation applies to the orthogonal basis only")
	}
	if modes > l.n {
		modes = l.n
	}
	l.modes = modes
	return l
}

func (l *Legendre) Modes() int             { return l.modes }
func (l *Legendre) QuadSize() int          { return l.n }
func (l *Legendre) Domain() (a, b float64) { return l.af.a, l.af.b }

func (l *Legendre) PointsAndWeights() (x, w utils.Vector) {
	var (
		N = l.n
	)
	switch l.quad {
	case Gauss:
		x, w = JacobiGQ(0, 0, N-1)
	case Lobatto:
		x = JacobiGL(0, 0, N-1)
		w = utils.NewVector(N)
		// w_q = 2 / (N(N-1) P_{N-1}(x_q)^2), with the classical
		// normalization recovered from the orthonormal JacobiP.
		p := JacobiP(x, 0, 0, N-1)
		toClassical := 1. / math.Sqrt((2*float64(N-1)+1)/2)
		for q := 0; q < N; q++ {
			pc := p[q] * toClassical
			w.DataP[q] = 2. / (float64(N*(N-1)) * pc * pc)
		}
	}
	for q := 0; q < N; q++ {
		x.DataP[q] = l.af.toPhysical(x.DataP[q])
		w.DataP[q] *= l.af.jacobian()
	}
	return
}

func (l *Legendre) Vandermonde(deriv int) (V utils.Matrix) {
	var (
		N    = l.n
		dfac = utils.POW(l.af.factor(), deriv)
	)
	r := referenceNodes(l)
	V = utils.NewMatrix(N, N)
	col := make([]float64, N)
	for j := 0; j < N; j++ {
		cj := make([]float64, N)
		cj[j] = 1
		for d := 0; d < deriv; d++ {
			cj = legDer(cj)
		}
		for q := 0; q < N; q++ {
			col[q] = legEval(cj, r[q]) * dfac
		}
		V.SetCol(j, col)
	}
	if l.stencil != nil {
		V = V.MulDense(l.stencil)
	} else if l.modes < l.n {
		V = V.SliceCols(utils.NewRange(0, l.modes-1))
	}
	return
}

func referenceNodes(l *Legendre) (r []float64) {
	var x utils.Vector
	switch l.quad {
	case Gauss:
		x, _ = JacobiGQ(0, 0, l.n-1)
	case Lobatto:
		x = JacobiGL(0, 0, l.n-1)
	}
	return x.DataP
}

// legDer returns the Legendre coefficients of the derivative of the series
// with coefficients c, using P'_j = (2j-1) P_{j-1} + P'_{j-2}.
func legDer(c []float64) (der []float64) {
	var (
		n  = len(c)
		cc = append([]float64{}, c...)
	)
	der = make([]float64, n)
	for j := n - 1; j >= 1; j-- {
		der[j-1] += float64(2*j-1) * cc[j]
		if j >= 2 {
			cc[j-2] += cc[j]
		}
	}
	return
}

// legEval evaluates a Legendre series at r by the three-term recurrence.
func legEval(c []float64, r float64) (y float64) {
	var (
		pkm, pk = 1., r
	)
	y = c[0]
	if len(c) > 1 {
		y += c[1] * r
	}
	for k := 2; k < len(c); k++ {
		fk := float64(k)
		pkm, pk = pk, ((2*fk-1)*r*pk-(fk-1)*pkm)/fk
		y += c[k] * pk
	}
	return
}
