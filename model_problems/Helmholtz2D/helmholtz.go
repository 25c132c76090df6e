package Helmholtz2D

import (
	"fmt"
	"math"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/forms"
	"github.com/notargets/gospectral/solver"
	"github.com/notargets/gospectral/space"
)

/*
Helmholtz solves
	alpha*u - div(grad(u)) = f
on the surface of a torus with major radius R and minor radius Rm,
parametrized by the toroidal angle phi and the poloidal angle theta. The
metric varies with theta only, so phi is carried by a complex Fourier basis
and theta by the real trigonometric basis on the dense axis.
*/
type Helmholtz struct {
	NPhi, NTheta int
	R, Rm        float64
	Alpha        float64
	Space        *space.TensorProductSpace
	U            *space.Array
}

func NewHelmholtz(NPhi, NTheta int, alpha float64) (c *Helmholtz) {
	var (
		R, Rm  = 3.0, 1.0
		twoPi  = [2]float64{0, 2 * math.Pi}
		phi    = basis.NewFourier(NPhi, twoPi)
		theta  = basis.NewTrigonometric(NTheta, twoPi)
		coords = &space.CoordinateMap{
			Position: func(u []float64) []float64 {
				b := R + Rm*math.Cos(u[1])
				return []float64{b * math.Cos(u[0]), b * math.Sin(u[0]), Rm * math.Sin(u[1])}
			},
			Partials: []func(u []float64) []float64{
				func(u []float64) []float64 {
					b := R + Rm*math.Cos(u[1])
					return []float64{-b * math.Sin(u[0]), b * math.Cos(u[0]), 0}
				},
				func(u []float64) []float64 {
					return []float64{
						-Rm * math.Sin(u[1]) * math.Cos(u[0]),
						-Rm * math.Sin(u[1]) * math.Sin(u[0]),
						Rm * math.Cos(u[1]),
					}
				},
			},
		}
		err error
	)
	c = &Helmholtz{
		NPhi:   NPhi,
		NTheta: NTheta,
		R:      R,
		Rm:     Rm,
		Alpha:  alpha,
	}
	if c.Space, err = space.NewTensorProductSpace(coords, phi, theta); err != nil {
		panic(err)
	}
	return
}

// UExact is smooth and periodic in both angles.
func (c *Helmholtz) UExact(phi, theta float64) float64 {
	return math.Sin(math.Cos(4*theta)) * math.Cos(4*phi)
}

// RHS applies alpha - LaplaceBeltrami to UExact analytically.
func (c *Helmholtz) RHS(phi, theta float64) float64 {
	var (
		b        = c.R + c.Rm*math.Cos(theta)
		db       = -c.Rm * math.Sin(theta)
		r2       = c.Rm * c.Rm
		s4t, c4t = math.Sin(4 * theta), math.Cos(4 * theta)
		S        = math.Sin(c4t)
		dS       = -4 * s4t * math.Cos(c4t)
		d2S      = -16*c4t*math.Cos(c4t) - 16*s4t*s4t*math.Sin(c4t)
		C        = math.Cos(4 * phi)
	)
	lap := (d2S/r2+db*dS/(r2*b))*C - 16*S*C/(b*b)
	return c.Alpha*S*C - lap
}

func (c *Helmholtz) Solve() (err error) {
	var (
		sp         = c.Space
		form, mass forms.Form
		sg         []float64
		fh         *space.Function
	)
	if form, err = forms.GradGrad(sp); err != nil {
		return
	}
	if mass, err = forms.Mass(sp); err != nil {
		return
	}
	for i := range mass {
		mass[i].Scale *= complex(c.Alpha, 0)
	}
	form = form.Add(mass)
	if sg, err = sp.SqrtDetG(); err != nil {
		return
	}
	b := space.NewArray(sp).Sample(func(u []float64) float64 {
		return c.RHS(u[0], u[1])
	})
	rhs := sp.ScalarProduct(b, sg)
	if fh, err = solver.Solve(sp, sp, form, rhs); err != nil {
		return
	}
	c.U = sp.Backward(fh)
	return
}

func (c *Helmholtz) Errors() (l2, linf float64) {
	var (
		sp = c.Space
	)
	diff := space.NewArray(sp).Sample(func(u []float64) float64 {
		return c.UExact(u[0], u[1])
	}).Subtract(c.U)
	l2, linf = sp.L2Norm(diff), sp.LinfNorm(diff)
	return
}

func (c *Helmholtz) Run() {
	var (
		err error
	)
	if err = c.Solve(); err != nil {
		panic(err)
	}
	l2, linf := c.Errors()
	fmt.Printf("Helmholtz on a torus, R = %g, r = %g, alpha = %g\n", c.R, c.Rm, c.Alpha)
	fmt.Printf("Fourier(phi) x Trigonometric(theta), %d x %d\n", c.NPhi, c.NTheta)
	fmt.Printf("L2 error   = %8.5e\n", l2)
	fmt.Printf("Linf error = %8.5e\n", linf)
}
