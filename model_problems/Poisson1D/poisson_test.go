package Poisson1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoisson(t *testing.T) {
	c := NewPoisson(32)
	assert.NoError(t, c.Solve())
	l2, linf := c.Errors()
	assert.Less(t, l2, 1.e-10)
	assert.Less(t, linf, 1.e-10)
}

func TestPoissonConvergence(t *testing.T) {
	// Errors fall with resolution until rounding takes over
	var prev float64 = 1
	for _, n := range []int{8, 12, 16, 24} {
		c := NewPoisson(n)
		assert.NoError(t, c.Solve())
		_, linf := c.Errors()
		assert.Less(t, linf, prev)
		prev = linf
	}
	assert.Less(t, prev, 1.e-8)
}
