package PoissonCurv

import (
	"fmt"
	"math"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/forms"
	"github.com/notargets/gospectral/solver"
	"github.com/notargets/gospectral/space"
)

/*
Poisson solves
	-div(grad(u)) = f,  u = 0 on the radial boundaries
on a sheared annulus
	x = r*cos(psi + delta*r),  y = r*sin(psi + delta*r)
with r in [1,2] and psi periodic. The shear makes the metric non-orthogonal,
	g_psipsi = r^2,  g_rr = 1 + delta^2 r^2,  g_psir = delta r^2,
so the mixed term couples odd psi derivatives into the radial systems and
each Fourier mode solves a genuinely complex problem.
*/
type Poisson struct {
	NPsi, NR int
	Delta    float64
	Space    *space.TensorProductSpace
	U        *space.Array
}

func NewPoisson(NPsi, NR int, delta float64) (c *Poisson) {
	var (
		psi    = basis.NewFourier(NPsi, [2]float64{0, 2 * math.Pi})
		rad    = basis.NewLegendreDirichlet(NR, basis.Gauss, [2]float64{1, 2})
		coords = &space.CoordinateMap{
			Position: func(u []float64) []float64 {
				a := u[0] + delta*u[1]
				return []float64{u[1] * math.Cos(a), u[1] * math.Sin(a)}
			},
			Partials: []func(u []float64) []float64{
				func(u []float64) []float64 {
					a := u[0] + delta*u[1]
					return []float64{-u[1] * math.Sin(a), u[1] * math.Cos(a)}
				},
				func(u []float64) []float64 {
					a := u[0] + delta*u[1]
					return []float64{
						math.Cos(a) - u[1]*delta*math.Sin(a),
						math.Sin(a) + u[1]*delta*math.Cos(a),
					}
				},
			},
		}
		err error
	)
	c = &Poisson{
		NPsi:  NPsi,
		NR:    NR,
		Delta: delta,
	}
	if c.Space, err = space.NewTensorProductSpace(coords, psi, rad); err != nil {
		panic(err)
	}
	return
}

func (c *Poisson) UExact(psi, r float64) float64 {
	return math.Sin(math.Pi*(r-1)) * math.Cos(2*psi)
}

// RHS is -LaplaceBeltrami(UExact) expanded in the sheared coordinates. The
// mixed metric term contributes the sin(2 psi) component.
func (c *Poisson) RHS(psi, r float64) float64 {
	var (
		d  = c.Delta
		F  = math.Sin(math.Pi * (r - 1))
		dF = math.Pi * math.Cos(math.Pi*(r-1))
		pi = math.Pi
	)
	cosPart := -4*(1+d*d*r*r)/(r*r)*F - pi*pi*F + dF/r
	sinPart := 4*d*dF + 2*d*F/r
	return -(cosPart*math.Cos(2*psi) + sinPart*math.Sin(2*psi))
}

func (c *Poisson) Solve() (err error) {
	var (
		sp   = c.Space
		form forms.Form
		sg   []float64
		fh   *space.Function
	)
	if form, err = forms.GradGrad(sp); err != nil {
		return
	}
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

func (c *Poisson) Errors() (l2, linf float64) {
	var (
		sp = c.Space
	)
	diff := space.NewArray(sp).Sample(func(u []float64) float64 {
		return c.UExact(u[0], u[1])
	}).Subtract(c.U)
	l2, linf = sp.L2Norm(diff), sp.LinfNorm(diff)
	return
}

func (c *Poisson) Run() {
	var (
		err error
	)
	if err = c.Solve(); err != nil {
		panic(err)
	}
	l2, linf := c.Errors()
	fmt.Printf("Poisson on a sheared annulus, delta = %g\n", c.Delta)
	fmt.Printf("Fourier(psi) x Legendre Dirichlet(r), %d x %d\n", c.NPsi, c.NR)
	fmt.Printf("L2 error   = %8.5e\n", l2)
	fmt.Printf("Linf error = %8.5e\n", linf)
}
