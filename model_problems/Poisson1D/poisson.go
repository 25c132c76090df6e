package Poisson1D

import (
	"fmt"
	"math"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/forms"
	"github.com/notargets/gospectral/solver"
	"github.com/notargets/gospectral/space"
	"github.com/notargets/gospectral/utils"
)

/*
Poisson solves
	-u'' = f  on [-1,1],  u(-1) = u(1) = 0
with a Chebyshev Dirichlet composite basis. The weighted Chebyshev inner
product rules out integration by parts, so the operator is assembled in
strong form, -(u'', v)_w, against the same composite test space.
*/
type Poisson struct {
	N           int
	Trial, Test *space.TensorProductSpace
	UExact      func(x float64) float64
	RHS         func(x float64) float64
	U           *space.Array // numerical solution on the quadrature grid
}

func NewPoisson(N int) (c *Poisson) {
	var (
		trial = basis.NewChebyshevDirichlet(N, basis.Gauss)
		err   error
	)
	c = &Poisson{
		N: N,
		UExact: func(x float64) float64 {
			return math.Sin(2 * math.Pi * x)
		},
		RHS: func(x float64) float64 {
			return 4 * math.Pi * math.Pi * math.Sin(2*math.Pi*x)
		},
	}
	if c.Trial, err = space.NewTensorProductSpace(nil, trial); err != nil {
		panic(err)
	}
	c.Test = c.Trial
	return
}

func (c *Poisson) Solve() (err error) {
	var (
		sp   = c.Trial
		form = forms.Form{{Scale: -1, Derivs: [][2]int{{2, 0}}}}
		fh   *space.Function
	)
	b := space.NewArray(sp).Sample(func(u []float64) float64 {
		return c.RHS(u[0])
	})
	rhs := sp.ScalarProduct(b, nil)
	if fh, err = solver.Solve(c.Trial, c.Test, form, rhs); err != nil {
		return
	}
	c.U = sp.Backward(fh)
	return
}

func (c *Poisson) Errors() (l2, linf float64) {
	var (
		sp = c.Trial
	)
	diff := space.NewArray(sp).Sample(func(u []float64) float64 {
		return c.UExact(u[0])
	}).Subtract(c.U)
	l2, linf = sp.L2Norm(diff), sp.LinfNorm(diff)
	return
}

func (c *Poisson) Run(showGraph bool) {
	var (
		err error
	)
	if err = c.Solve(); err != nil {
		panic(err)
	}
	l2, linf := c.Errors()
	fmt.Printf("Poisson 1D, Chebyshev Dirichlet, N = %d\n", c.N)
	fmt.Printf("L2 error   = %8.5e\n", l2)
	fmt.Printf("Linf error = %8.5e\n", linf)
	if showGraph {
		c.plot()
	}
}

func (c *Poisson) plot() {
	var (
		sp = c.Trial
		x  = sp.Points(0)
	)
	exact := space.NewArray(sp).Sample(func(u []float64) float64 {
		return c.UExact(u[0])
	})
	utils.PlotCurves(x.DataP,
		[][]float64{c.U.DataP, exact.DataP},
		[]utils.ColorName{utils.Red, utils.Green})
}
