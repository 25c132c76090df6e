// Package solver eliminates the diagonal (Fourier) axes of an assembled
// Galerkin problem and solves one block system per wavenumber combination.
package solver

import (
	"fmt"

	"github.com/notargets/gospectral/forms"
	"github.com/notargets/gospectral/space"
	"github.com/notargets/gospectral/utils"
)

// Constraint pins a scalar functional of one unknown component, replacing
// one test equation at the zero-wavenumber block, e.g. a zero-mean
// pressure.
type Constraint struct {
	Component int
	TestRow   int
	Row       []float64 // functional over the component's dense trial modes
	Value     complex128
}

// BlockSystem couples several unknown components through per-pair
// tensor-product matrices. Every component must share the diagonal-axis
// bases; dense-axis expansions may differ per component.
type BlockSystem struct {
	trial, test []*space.TensorProductSpace
	blocks      [][]forms.Form
	assembled   [][][]forms.TPMatrix
	constraints []Constraint
}

func NewBlockSystem(trial, test []*space.TensorProductSpace) (bs *BlockSystem, err error) {
	var (
		nComp = len(trial)
	)
	if len(test) != nComp {
		err = fmt.Errorf("%d trial components but %d test components", nComp, len(test))
		return
	}
	if nComp == 0 {
		err = fmt.Errorf("block system needs at least one component")
		return
	}
	ref := trial[0].DiagShape()
	for _, sp := range append(append([]*space.TensorProductSpace{}, trial...), test...) {
		shape := sp.DiagShape()
		if len(shape) != len(ref) {
			err = fmt.Errorf("components disagree on the number of diagonal axes")
			return
		}
		for d, n := range shape {
			if n != ref[d] {
				err = fmt.Errorf("components disagree on diagonal axis %d: %d vs %d", d, ref[d], n)
				return
			}
		}
	}
	bs = &BlockSystem{
		trial: trial,
		test:  test,
	}
	bs.assembled = make([][][]forms.TPMatrix, nComp)
	for i := range bs.assembled {
		bs.assembled[i] = make([][]forms.TPMatrix, nComp)
	}
	return
}

// SetBlock assembles the form coupling trial component j into the test
// equations of component i.
func (bs *BlockSystem) SetBlock(i, j int, form forms.Form) (err error) {
	var (
		tp []forms.TPMatrix
	)
	if tp, err = forms.Assemble(bs.trial[j], bs.test[i], form); err != nil {
		return
	}
	bs.assembled[i][j] = tp
	return
}

func (bs *BlockSystem) AddConstraint(c Constraint) {
	bs.constraints = append(bs.constraints, c)
}

// Solve eliminates the diagonal axes and solves one block system per
// wavenumber multi-index. The right hand sides are scalar products on the
// test spaces; solutions come back as trial-space coefficient arrays.
func (bs *BlockSystem) Solve(rhs []*space.Function) (x []*space.Function, err error) {
	var (
		nComp     = len(bs.trial)
		diagShape = bs.trial[0].DiagShape()
		nCombos   = 1
	)
	if len(rhs) != nComp {
		err = fmt.Errorf("%d right hand sides for %d components", len(rhs), nComp)
		return
	}
	for _, n := range diagShape {
		nCombos *= n
	}
	x = make([]*space.Function, nComp)
	for j := range x {
		x[j] = space.NewFunction(bs.trial[j])
	}
	idx := make([]int, len(diagShape))
	for c := 0; c < nCombos; c++ {
		if err = bs.solveMode(c, idx, rhs, x); err != nil {
			return
		}
		incrementIdx(idx, diagShape)
	}
	return
}

func (bs *BlockSystem) solveMode(combo int, idx []int, rhs, x []*space.Function) (err error) {
	var (
		nComp    = len(bs.trial)
		bm       = utils.NewBlockMatrix(nComp, nComp)
		zeroMode = combo == 0 // index zero carries wavenumber zero on every axis
	)
	for i := 0; i < nComp; i++ {
		for j := 0; j < nComp; j++ {
			tp := bs.assembled[i][j]
			if tp == nil {
				continue
			}
			cell := utils.NewCMatrix(bs.test[i].DenseModes(), bs.trial[j].DenseModes())
			for _, one := range tp {
				coef := one.ModeFactor(idx)
				if one.A.IsEmpty() {
					cell.DataP[0] += coef
				} else {
					cell.AddScaled(coef, one.A)
				}
			}
			bm.SetBlock(i, j, cell)
		}
	}
	b := make([][]complex128, nComp)
	for i := 0; i < nComp; i++ {
		nd := bs.test[i].DenseModes()
		b[i] = append([]complex128{}, rhs[i].DataP[combo*nd:(combo+1)*nd]...)
	}
	if zeroMode {
		for _, con := range bs.constraints {
			bs.applyConstraint(bm, b, con)
		}
	}
	var xs [][]complex128
	if xs, err = bm.Solve(b); err != nil {
		err = fmt.Errorf("mode %v: %w", append([]int{}, idx...), err)
		return
	}
	for j := 0; j < nComp; j++ {
		nd := bs.trial[j].DenseModes()
		copy(x[j].DataP[combo*nd:(combo+1)*nd], xs[j])
	}
	return
}

func (bs *BlockSystem) applyConstraint(bm utils.BlockMatrix, b [][]complex128, con Constraint) {
	var (
		i = con.Component
	)
	for j := 0; j < len(bs.trial); j++ {
		cell := bm.M[i][j]
		if cell.IsEmpty() {
			if j != i {
				continue
			}
			cell = utils.NewCMatrix(bs.test[i].DenseModes(), bs.trial[i].DenseModes())
			bm.SetBlock(i, i, cell)
		}
		for jj := 0; jj < cell.Nc; jj++ {
			cell.Set(con.TestRow, jj, 0)
		}
	}
	bm.M[i][i].SetRealRow(con.TestRow, con.Row)
	b[i][con.TestRow] = con.Value
}

// Solve assembles and solves a single-unknown problem on one space pair.
func Solve(trial, test *space.TensorProductSpace, form forms.Form, rhs *space.Function,
	constraints ...Constraint) (x *space.Function, err error) {
	var (
		bs *BlockSystem
	)
	if bs, err = NewBlockSystem([]*space.TensorProductSpace{trial},
		[]*space.TensorProductSpace{test}); err != nil {
		return
	}
	if err = bs.SetBlock(0, 0, form); err != nil {
		return
	}
	for _, con := range constraints {
		bs.AddConstraint(con)
	}
	var xs []*space.Function
	if xs, err = bs.Solve([]*space.Function{rhs}); err != nil {
		return
	}
	x = xs[0]
	return
}

func incrementIdx(idx, shape []int) {
	for ax := len(idx) - 1; ax >= 0; ax-- {
		idx[ax]++
		if idx[ax] < shape[ax] {
			return
		}
		idx[ax] = 0
	}
}
