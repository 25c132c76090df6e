package forms

import (
	"math"
	"testing"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/space"
	"github.com/stretchr/testify/assert"
)

func TestMass1D(t *testing.T) {
	// Legendre mass matrix is diagonal with entries 2/(2k+1)
	{
		sp, err := space.NewTensorProductSpace(nil, basis.NewLegendre(8, basis.Gauss))
		assert.NoError(t, err)
		f, err := Mass(sp)
		assert.NoError(t, err)
		tp, err := Assemble(sp, sp, f)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(tp))
		A := tp[0].A
		for k := 0; k < 8; k++ {
			for j := 0; j < 8; j++ {
				expect := 0.
				if k == j {
					expect = 2 / (2*float64(k) + 1)
				}
				assert.True(t, near(A.At(k, j), expect, 1.e-12))
			}
		}
	}
	// Chebyshev mass under the Chebyshev weight: pi for T_0, pi/2 above
	{
		sp, err := space.NewTensorProductSpace(nil, basis.NewChebyshev(8, basis.Gauss))
		assert.NoError(t, err)
		f, _ := Mass(sp)
		tp, err := Assemble(sp, sp, f)
		assert.NoError(t, err)
		A := tp[0].A
		assert.True(t, near(A.At(0, 0), math.Pi, 1.e-12))
		for k := 1; k < 8; k++ {
			assert.True(t, near(A.At(k, k), math.Pi/2, 1.e-12))
		}
	}
}

func TestStiffness1D(t *testing.T) {
	// Shen's composite Legendre basis diagonalizes the stiffness matrix,
	// (phi_k', phi_j') = (4k+6) delta_kj
	sp, err := space.NewTensorProductSpace(nil, basis.NewLegendreDirichlet(10, basis.Gauss))
	assert.NoError(t, err)
	f := Form{{Scale: 1, Derivs: [][2]int{{1, 1}}}}
	tp, err := Assemble(sp, sp, f)
	assert.NoError(t, err)
	A := tp[0].A
	for k := 0; k < 8; k++ {
		for j := 0; j < 8; j++ {
			expect := 0.
			if k == j {
				expect = 4*float64(k) + 6
			}
			assert.True(t, near(A.At(k, j), expect, 1.e-11))
		}
	}
}

func TestGradGrad2D(t *testing.T) {
	// Cartesian Fourier x Legendre: one term per axis, the Fourier factor
	// k^2 L on the first and the mass factor L on the second
	fx := basis.NewFourier(8)
	ly := basis.NewLegendreDirichlet(8, basis.Gauss)
	sp, err := space.NewTensorProductSpace(nil, fx, ly)
	assert.NoError(t, err)
	f, err := GradGrad(sp)
	assert.NoError(t, err)
	tp, err := Assemble(sp, sp, f)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(tp))
	var (
		L = 2 * math.Pi
		k = fx.Wavenumbers()
	)
	for m := range k {
		assert.True(t, near(real(tp[0].Diags[0][m]), k[m]*k[m]*L, 1.e-12))
		assert.True(t, near(real(tp[1].Diags[0][m]), L, 1.e-12))
	}
	// The dense factor of the first term is the composite mass matrix,
	// of the second the diagonal stiffness
	assert.True(t, near(tp[1].A.At(0, 0), 6, 1.e-11))
	assert.True(t, near(tp[1].A.At(1, 1), 10, 1.e-11))
	assert.True(t, near(tp[1].A.At(0, 1), 0, 1.e-11))
	// Composite mass: (phi_0, phi_0) = (P_0 - P_2, P_0 - P_2) = 2 + 2/5
	assert.True(t, near(tp[0].A.At(0, 0), 2+2./5., 1.e-12))
}

func TestMixedSpaces(t *testing.T) {
	// A divergence style block mixes the Dirichlet velocity space with a
	// shorter pressure space: (u', q) with q plain Legendre
	fx := basis.NewFourier(4)
	vz := basis.NewLegendreDirichlet(8, basis.Gauss)
	pz := basis.NewLegendre(8, basis.Gauss).Truncate(6)
	vel, err := space.NewTensorProductSpace(nil, fx, vz)
	assert.NoError(t, err)
	pres, err := space.NewTensorProductSpace(nil, fx, pz)
	assert.NoError(t, err)
	f := Form{{Scale: 1, Derivs: [][2]int{{0, 0}, {1, 0}}}}
	tp, err := Assemble(vel, pres, f)
	assert.NoError(t, err)
	nr, nc := tp[0].A.Dims()
	assert.Equal(t, 6, nr)
	assert.Equal(t, 6, nc)
	// (phi_0', P_1) = (d/dx (P_0 - P_2), P_1) = (-3x, x) = -2
	assert.True(t, near(tp[0].A.At(1, 0), -2, 1.e-12))
}

func TestMeanRow(t *testing.T) {
	// For a plain Legendre basis only the constant mode carries area
	sp, err := space.NewTensorProductSpace(nil, basis.NewLegendre(8, basis.Gauss))
	assert.NoError(t, err)
	row := MeanRow(sp)
	assert.True(t, near(row[0], 2, 1.e-13))
	for j := 1; j < len(row); j++ {
		assert.True(t, near(row[j], 0, 1.e-13))
	}
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
