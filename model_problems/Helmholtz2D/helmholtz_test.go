package Helmholtz2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelmholtz(t *testing.T) {
	c := NewHelmholtz(16, 81, 1.0)
	assert.NoError(t, c.Solve())
	l2, linf := c.Errors()
	assert.Less(t, l2, 1.e-7)
	assert.Less(t, linf, 1.e-7)
}

func TestHelmholtzResolution(t *testing.T) {
	// The poloidal direction dominates the truncation error for this
	// solution; refining it drives the error down
	coarse := NewHelmholtz(16, 41, 1.0)
	assert.NoError(t, coarse.Solve())
	fine := NewHelmholtz(16, 61, 1.0)
	assert.NoError(t, fine.Solve())
	_, linfC := coarse.Errors()
	_, linfF := fine.Errors()
	assert.Less(t, linfF, linfC)
}
