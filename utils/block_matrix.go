package utils

import (
	"bytes"
	"fmt"
)

// BlockMatrix holds the per-mode linear system of a coupled Galerkin
// problem. Each cell couples one (test component, trial component) pair and
// cells may be rectangular, e.g. divergence blocks mixing velocity and
// pressure expansions of different lengths. Empty cells are treated as zero.
type BlockMatrix struct {
	M      [][]CMatrix // First slice points to rows of matrices
	Nr, Nc int         // block rows, block columns
}

func NewBlockMatrix(Nr, Nc int) (R BlockMatrix) {
	R = BlockMatrix{
		Nr: Nr,
		Nc: Nc,
	}
	R.M = make([][]CMatrix, Nr)
	for n := range R.M {
		R.M[n] = make([]CMatrix, Nc)
	}
	return
}

func (bm BlockMatrix) SetBlock(i, j int, A CMatrix) {
	bm.M[i][j] = A
}

// Sizes returns the row height of each block row and column width of each
// block column, validating that all non-empty cells agree.
func (bm BlockMatrix) Sizes() (rows, cols []int, err error) {
	rows = make([]int, bm.Nr)
	cols = make([]int, bm.Nc)
	for i := 0; i < bm.Nr; i++ {
		for j := 0; j < bm.Nc; j++ {
			cell := bm.M[i][j]
			if cell.IsEmpty() {
				continue
			}
			if rows[i] == 0 {
				rows[i] = cell.Nr
			} else if rows[i] != cell.Nr {
				err = fmt.Errorf("inconsistent row count in block row %d: %d vs %d", i, rows[i], cell.Nr)
				return
			}
			if cols[j] == 0 {
				cols[j] = cell.Nc
			} else if cols[j] != cell.Nc {
				err = fmt.Errorf("inconsistent column count in block column %d: %d vs %d", j, cols[j], cell.Nc)
				return
			}
		}
	}
	for i, n := range rows {
		if n == 0 {
			err = fmt.Errorf("block row %d is entirely empty", i)
			return
		}
	}
	for j, n := range cols {
		if n == 0 {
			err = fmt.Errorf("block column %d is entirely empty", j)
			return
		}
	}
	return
}

// Flatten assembles the cells into one dense complex system.
func (bm BlockMatrix) Flatten() (R CMatrix, err error) {
	var (
		rows, cols []int
	)
	if rows, cols, err = bm.Sizes(); err != nil {
		return
	}
	var nrTot, ncTot int
	rowOff := make([]int, bm.Nr)
	colOff := make([]int, bm.Nc)
	for i, n := range rows {
		rowOff[i] = nrTot
		nrTot += n
	}
	for j, n := range cols {
		colOff[j] = ncTot
		ncTot += n
	}
	R = NewCMatrix(nrTot, ncTot)
	for i := 0; i < bm.Nr; i++ {
		for j := 0; j < bm.Nc; j++ {
			cell := bm.M[i][j]
			if cell.IsEmpty() {
				continue
			}
			for ii := 0; ii < cell.Nr; ii++ {
				for jj := 0; jj < cell.Nc; jj++ {
					R.DataP[(rowOff[i]+ii)*ncTot+colOff[j]+jj] = cell.DataP[ii*cell.Nc+jj]
				}
			}
		}
	}
	return
}

// Solve flattens the block system, embeds it as an equivalent real system
// and solves by LU for the stacked right hand side b, one slice per block
// row. The solution is returned split per block column.
func (bm BlockMatrix) Solve(b [][]complex128) (x [][]complex128, err error) {
	var (
		A CMatrix
	)
	if len(b) != bm.Nr {
		err = fmt.Errorf("rhs has %d block rows, system has %d", len(b), bm.Nr)
		return
	}
	if A, err = bm.Flatten(); err != nil {
		return
	}
	if A.Nr != A.Nc {
		err = fmt.Errorf("flattened block system is not square: [%d,%d]", A.Nr, A.Nc)
		return
	}
	bFlat := make([]complex128, 0, A.Nr)
	for _, bi := range b {
		bFlat = append(bFlat, bi...)
	}
	if len(bFlat) != A.Nr {
		err = fmt.Errorf("rhs length %d does not match system size %d", len(bFlat), A.Nr)
		return
	}
	var xEmb Vector
	if xEmb, err = A.RealEmbed().LUSolve(EmbedCVector(bFlat)); err != nil {
		return
	}
	xFlat := ExtractCVector(xEmb)
	_, cols, _ := bm.Sizes()
	x = make([][]complex128, bm.Nc)
	var off int
	for j, n := range cols {
		x[j] = xFlat[off : off+n]
		off += n
	}
	return
}

func (bm BlockMatrix) Print() (out string) {
	buf := bytes.Buffer{}
	for n, row := range bm.M {
		for m, cell := range row {
			if cell.IsEmpty() {
				buf.WriteString(fmt.Sprintf("[%d:%d] nil ", n, m))
			} else {
				buf.WriteString(fmt.Sprintf("[%d:%d] %dx%d ", n, m, cell.Nr, cell.Nc))
			}
		}
		buf.WriteString("\n")
	}
	return buf.String()
}
