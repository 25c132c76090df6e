package PoissonCurv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoissonAnnulus(t *testing.T) {
	c := NewPoisson(8, 24, 0.2)
	assert.NoError(t, c.Solve())
	l2, linf := c.Errors()
	assert.Less(t, l2, 1.e-9)
	assert.Less(t, linf, 1.e-9)
}

func TestPoissonAnnulusNoShear(t *testing.T) {
	// With delta = 0 the mapping is plain polar coordinates and the
	// solution still resolves to rounding level
	c := NewPoisson(8, 24, 0)
	assert.NoError(t, c.Solve())
	_, linf := c.Errors()
	assert.Less(t, linf, 1.e-9)
}
