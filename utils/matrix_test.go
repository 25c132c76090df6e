package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Chained operations
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		B := A.Copy().Transpose()
		assert.True(t, near(B.At(0, 1), 3))
		assert.True(t, near(A.At(0, 1), 2)) // A unchanged by the copy chain
		C := A.Mul(B)
		assert.True(t, nearVec(C.DataP, []float64{5, 11, 11, 25}, 1.e-12))
	}
	// Inverse and LU solve
	{
		A := NewMatrix(3, 3, []float64{
			2, 1, 0,
			1, 3, 1,
			0, 1, 2,
		})
		Ainv, err := A.Inverse()
		assert.NoError(t, err)
		I := A.Mul(Ainv)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				expect := 0.
				if i == j {
					expect = 1.
				}
				assert.True(t, near(I.At(i, j), expect, 1.e-12))
			}
		}
		x, err := A.LUSolve(NewVector(3, []float64{3, 5, 3}))
		assert.NoError(t, err)
		assert.True(t, nearVec(x.DataP, []float64{1, 1, 1}, 1.e-12))
	}
	// Row and column slicing
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.True(t, nearVec(A.Col(1).DataP, []float64{2, 5}, 1.e-15))
		assert.True(t, nearVec(A.SumRows().DataP, []float64{6, 15}, 1.e-15))
		assert.True(t, nearVec(A.SumCols().DataP, []float64{5, 7, 9}, 1.e-15))
	}
}

func TestCMatrix(t *testing.T) {
	// Real embedding solves a complex system: (1+i) x = 2, x = 1-i
	{
		A := NewCMatrix(1, 1)
		A.Set(0, 0, complex(1, 1))
		x, err := A.RealEmbed().LUSolve(EmbedCVector([]complex128{2}))
		assert.NoError(t, err)
		xc := ExtractCVector(x)
		assert.True(t, near(real(xc[0]), 1))
		assert.True(t, near(imag(xc[0]), -1))
	}
	// 2x2 complex system with known solution
	{
		A := NewCMatrix(2, 2)
		A.Set(0, 0, 2).Set(0, 1, complex(0, 1))
		A.Set(1, 0, complex(0, -1)).Set(1, 1, 3)
		// b = A * [1+i, 2]
		b := []complex128{complex(2, 3), complex(7, -1)}
		x, err := A.RealEmbed().LUSolve(EmbedCVector(b))
		assert.NoError(t, err)
		xc := ExtractCVector(x)
		assert.True(t, near(real(xc[0]), 1, 1.e-12))
		assert.True(t, near(imag(xc[0]), 1, 1.e-12))
		assert.True(t, near(real(xc[1]), 2, 1.e-12))
		assert.True(t, near(imag(xc[1]), 0, 1.e-12))
	}
	// AddScaled accumulates a scaled real matrix
	{
		A := NewCMatrix(2, 2)
		A.AddScaled(complex(0, 2), NewMatrix(2, 2, []float64{1, 0, 0, 1}))
		assert.True(t, near(imag(A.At(0, 0)), 2))
		assert.True(t, near(real(A.At(0, 0)), 0))
	}
}

func TestBlockMatrix(t *testing.T) {
	// Sizes validation rejects inconsistent cells
	{
		bm := NewBlockMatrix(2, 2)
		bm.SetBlock(0, 0, NewCMatrix(2, 2))
		bm.SetBlock(1, 1, NewCMatrix(3, 3))
		bm.SetBlock(1, 0, NewCMatrix(2, 2)) // wrong row height
		_, _, err := bm.Sizes()
		assert.Error(t, err)
	}
	// Empty block column is an error
	{
		bm := NewBlockMatrix(2, 2)
		bm.SetBlock(0, 0, NewCMatrix(2, 2))
		bm.SetBlock(1, 0, NewCMatrix(2, 2))
		_, _, err := bm.Sizes()
		assert.Error(t, err)
	}
	// Saddle point style system with a rectangular off diagonal block:
	//   [ I  B ] [u]   [b1]
	//   [ Bt 0 ] [p] = [b2]
	{
		bm := NewBlockMatrix(2, 2)
		eye := NewCMatrix(2, 2).Set(0, 0, 1).Set(1, 1, 1)
		B := NewCMatrix(2, 1).Set(0, 0, 1).Set(1, 0, 1)
		Bt := NewCMatrix(1, 2).Set(0, 0, 1).Set(0, 1, 1)
		bm.SetBlock(0, 0, eye)
		bm.SetBlock(0, 1, B)
		bm.SetBlock(1, 0, Bt)
		// u = [1, -1], p = 2: b1 = u + B p = [3, 1], b2 = u1 + u2 = 0
		x, err := bm.Solve([][]complex128{{3, 1}, {0}})
		assert.NoError(t, err)
		assert.True(t, near(real(x[0][0]), 1, 1.e-12))
		assert.True(t, near(real(x[0][1]), -1, 1.e-12))
		assert.True(t, near(real(x[1][0]), 2, 1.e-12))
	}
}

func TestMatrixHelpers(t *testing.T) {
	// Diagonal and identity constructors
	{
		D := NewDiagMatrix(3, []float64{1, 2, 3})
		assert.True(t, nearVec(D.DataP, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, 1.e-15))
		I := NewIdentityMatrix(2)
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		assert.True(t, nearVec(I.Mul(A).DataP, A.DataP, 1.e-15))
	}
	// IsScalar
	{
		assert.True(t, NewMatrix(1, 1).IsScalar())
		assert.False(t, NewMatrix(2, 1).IsScalar())
		var empty Matrix
		assert.False(t, empty.IsScalar())
	}
	// MulVec
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		v := A.MulVec(NewVector(3, []float64{1, 1, 1}))
		assert.True(t, nearVec(v.DataP, []float64{6, 15}, 1.e-15))
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, Index{0, 0, 0}, NewIndex(3))
	I := NewRange(2, 5)
	assert.Equal(t, Index{2, 3, 4, 5}, I)
	assert.Equal(t, Index{12, 13, 14, 15}, I.Add(10))
	assert.Equal(t, Index{4, 6, 8, 10}, I.Stride(2))
	assert.Equal(t, Index{5, 3}, I.Subset(Index{3, 1}))
}

func nearVec(a, b []float64, tol float64) (l bool) {
	for i, val := range a {
		if !near(b[i], val, tol) {
			return false
		}
	}
	return true
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
