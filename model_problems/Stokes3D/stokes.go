package Stokes3D

import (
	"fmt"
	"math"

	"github.com/notargets/gospectral/basis"
	"github.com/notargets/gospectral/forms"
	"github.com/notargets/gospectral/solver"
	"github.com/notargets/gospectral/space"
)

/*
Stokes solves the coupled saddle point problem
	-div(grad(u)) + grad(p) = f
	 div(u)                 = h
in a channel, periodic in x and y with no-slip walls at z = +-1. The three
velocity components use a Legendre Dirichlet composite basis in z and the
pressure a plain Legendre basis two modes shorter, which keeps the block
system inf-sup stable. The pressure is only determined up to a constant, so
the constant divergence equation at the zero wavenumber pair is replaced by
a zero mean condition.
*/
type Stokes struct {
	N    int // modes per direction
	Vel  *space.TensorProductSpace
	Pres *space.TensorProductSpace
	U    [3]*space.Array
	P    *space.Array
}

func NewStokes(N int) (c *Stokes) {
	var (
		twoPi = [2]float64{0, 2 * math.Pi}
		fx    = basis.NewFourier(N, twoPi)
		fy    = basis.NewFourier(N, twoPi)
		vz    = basis.NewLegendreDirichlet(N, basis.Gauss)
		pz    = basis.NewLegendre(N, basis.Gauss).Truncate(N - 2)
		err   error
	)
	c = &Stokes{N: N}
	if c.Vel, err = space.NewTensorProductSpace(nil, fx, fy, vz); err != nil {
		panic(err)
	}
	if c.Pres, err = space.NewTensorProductSpace(nil, fx, fy, pz); err != nil {
		panic(err)
	}
	return
}

func (c *Stokes) UExact(i int, x, y, z float64) float64 {
	switch i {
	case 0:
		return math.Sin(2*y) * (1 - z*z)
	case 1:
		return math.Sin(2*x) * (1 - z*z)
	default:
		return math.Sin(2*z) * (1 - z*z)
	}
}

func (c *Stokes) PExact(x, y, z float64) float64 {
	return -0.1 * math.Sin(2*x) * math.Cos(4*y)
}

// Body force f = -Laplacian(UExact) + grad(PExact).
func (c *Stokes) Force(i int, x, y, z float64) float64 {
	switch i {
	case 0:
		return 4*math.Sin(2*y)*(1-z*z) + 2*math.Sin(2*y) -
			0.2*math.Cos(2*x)*math.Cos(4*y)
	case 1:
		return 4*math.Sin(2*x)*(1-z*z) + 2*math.Sin(2*x) +
			0.4*math.Sin(2*x)*math.Sin(4*y)
	default:
		return 4*math.Sin(2*z)*(1-z*z) + 8*z*math.Cos(2*z) + 2*math.Sin(2*z)
	}
}

// Div is div(UExact); the manufactured field is not solenoidal.
func (c *Stokes) Div(x, y, z float64) float64 {
	return 2*math.Cos(2*z)*(1-z*z) - 2*z*math.Sin(2*z)
}

func (c *Stokes) Solve() (err error) {
	var (
		trial = []*space.TensorProductSpace{c.Vel, c.Vel, c.Vel, c.Pres}
		bs    *solver.BlockSystem
	)
	if bs, err = solver.NewBlockSystem(trial, trial); err != nil {
		return
	}
	var lap forms.Form
	if lap, err = forms.GradGrad(c.Vel); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		if err = bs.SetBlock(i, i, lap); err != nil {
			return
		}
		// -(p, d v_i / d x_i) from integrating the pressure gradient by parts
		gradP := forms.Form{{Scale: -1, Derivs: derivsAxis(i, 0, 1)}}
		if err = bs.SetBlock(i, 3, gradP); err != nil {
			return
		}
		div := forms.Form{{Scale: 1, Derivs: derivsAxis(i, 1, 0)}}
		if err = bs.SetBlock(3, i, div); err != nil {
			return
		}
	}
	bs.AddConstraint(solver.Constraint{
		Component: 3,
		TestRow:   0,
		Row:       forms.MeanRow(c.Pres),
		Value:     0,
	})

	rhs := make([]*space.Function, 4)
	for i := 0; i < 3; i++ {
		i := i
		b := space.NewArray(c.Vel).Sample(func(u []float64) float64 {
			return c.Force(i, u[0], u[1], u[2])
		})
		rhs[i] = c.Vel.ScalarProduct(b, nil)
	}
	h := space.NewArray(c.Pres).Sample(func(u []float64) float64 {
		return c.Div(u[0], u[1], u[2])
	})
	rhs[3] = c.Pres.ScalarProduct(h, nil)

	var x []*space.Function
	if x, err = bs.Solve(rhs); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		c.U[i] = c.Vel.Backward(x[i])
	}
	c.P = c.Pres.Backward(x[3])
	return
}

func (c *Stokes) Errors() (l2 [4]float64) {
	for i := 0; i < 3; i++ {
		i := i
		diff := space.NewArray(c.Vel).Sample(func(u []float64) float64 {
			return c.UExact(i, u[0], u[1], u[2])
		}).Subtract(c.U[i])
		l2[i] = c.Vel.L2Norm(diff)
	}
	diff := space.NewArray(c.Pres).Sample(func(u []float64) float64 {
		return c.PExact(u[0], u[1], u[2])
	}).Subtract(c.P)
	l2[3] = c.Pres.L2Norm(diff)
	return
}

func (c *Stokes) Run() {
	var (
		err error
	)
	if err = c.Solve(); err != nil {
		panic(err)
	}
	l2 := c.Errors()
	fmt.Printf("Stokes channel flow, N = %d per direction\n", c.N)
	for i, name := range []string{"u", "v", "w", "p"} {
		fmt.Printf("L2 error %s = %8.5e\n", name, l2[i])
	}
}

func derivsAxis(axis, trial, test int) (d [][2]int) {
	d = make([][2]int, 3)
	d[axis] = [2]int{trial, test}
	return
}
