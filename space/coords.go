package space

import (
	"fmt"
	"math"

	"github.com/notargets/gospectral/utils"
)

// CoordinateMap carries a position vector as a function of the space's
// coordinates together with its analytic partial derivatives, enabling
// curvilinear metrics. The position vector may live in a higher-dimensional
// embedding space, e.g. a torus surface in R^3.
type CoordinateMap struct {
	Position func(u []float64) []float64
	Partials []func(u []float64) []float64 // one per coordinate, d Position / d u_i
}

// Metric returns the covariant metric tensor g_ij at u.
func (cm *CoordinateMap) Metric(u []float64) (g utils.Matrix) {
	var (
		dim = len(cm.Partials)
	)
	g = utils.NewMatrix(dim, dim)
	t := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		t[i] = cm.Partials[i](u)
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var dot float64
			for c := range t[i] {
				dot += t[i][c] * t[j][c]
			}
			g.Set(i, j, dot)
		}
	}
	return
}

// InverseMetric returns the contravariant metric g^ij and sqrt(det g) at u.
func (cm *CoordinateMap) InverseMetric(u []float64) (gInv utils.Matrix, sg float64, err error) {
	var (
		g   = cm.Metric(u)
		dim = len(cm.Partials)
	)
	det := determinant(g, dim)
	if det <= 0 {
		err = fmt.Errorf("metric is not positive definite at %v, det = %v", u, det)
		return
	}
	sg = math.Sqrt(det)
	if gInv, err = g.Inverse(); err != nil {
		err = fmt.Errorf("metric is singular at %v: %w", u, err)
	}
	return
}

func determinant(g utils.Matrix, dim int) (det float64) {
	switch dim {
	case 1:
		det = g.At(0, 0)
	case 2:
		det = g.At(0, 0)*g.At(1, 1) - g.At(0, 1)*g.At(1, 0)
	case 3:
		det = g.At(0, 0)*(g.At(1, 1)*g.At(2, 2)-g.At(1, 2)*g.At(2, 1)) -
			g.At(0, 1)*(g.At(1, 0)*g.At(2, 2)-g.At(1, 2)*g.At(2, 0)) +
			g.At(0, 2)*(g.At(1, 0)*g.At(2, 1)-g.At(1, 1)*g.At(2, 0))
	default:
		panic(fmt.Errorf("unsupported coordinate dimension %d", dim))
	}
	return
}
