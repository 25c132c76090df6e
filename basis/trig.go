package basis

import (
	"math"

	"github.com/notargets/gospectral/utils"
)

// Trigonometric is the real periodic basis {1, cos(m x), sin(m x)} over
// [a,b). It serves periodic axes whose assembled matrices are dense, e.g.
// when a curvilinear metric couples the modes, keeping the one-axis
// matrices real.
type Trigonometric struct {
	n, modes int
	af       affine
}

func NewTrigonometric(N int, domain ...[2]float64) *Trigonometric {
	af := affine{a: 0, b: 2 * math.Pi, ra: 0, rb: 2 * math.Pi}
	if len(domain) != 0 {
		af.a, af.b = domain[0][0], domain[0][1]
	}
	// Highest resolvable pair stays below the Nyquist frequency of the
	// uniform quadrature grid.
	mMax := (N - 1) / 2
	if N%2 == 0 {
		mMax = (N - 2) / 2
	}
	return &Trigonometric{
		n:     N,
		modes: 2*mMax + 1,
		af:    af,
	}
}

func (t *Trigonometric) Modes() int             { return t.modes }
func (t *Trigonometric) QuadSize() int          { return t.n }
func (t *Trigonometric) Domain() (a, b float64) { return t.af.a, t.af.b }

func (t *Trigonometric) PointsAndWeights() (x, w utils.Vector) {
	var (
		N = t.n
		L = t.af.b - t.af.a
	)
	x, w = utils.NewVector(N), utils.NewVector(N)
	for j := 0; j < N; j++ {
		x.DataP[j] = t.af.a + L*float64(j)/float64(N)
		w.DataP[j] = L / float64(N)
	}
	return
}

func (t *Trigonometric) Vandermonde(deriv int) (V utils.Matrix) {
	var (
		N     = t.n
		L     = t.af.b - t.af.a
		scale = 2 * math.Pi / L
		shift = float64(deriv) * math.Pi / 2
	)
	V = utils.NewMatrix(N, t.modes)
	for q := 0; q < N; q++ {
		theta := 2 * math.Pi * float64(q) / float64(N)
		if deriv == 0 {
			V.Set(q, 0, 1)
		}
		for col := 1; col < t.modes; col++ {
			m := float64((col + 1) / 2)
			dfac := utils.POW(m*scale, deriv)
			if col%2 == 1 {
				V.Set(q, col, dfac*math.Cos(m*theta+shift))
			} else {
				V.Set(q, col, dfac*math.Sin(m*theta+shift))
			}
		}
	}
	return
}
