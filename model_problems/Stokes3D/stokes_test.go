package Stokes3D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStokes(t *testing.T) {
	c := NewStokes(16)
	assert.NoError(t, c.Solve())
	l2 := c.Errors()
	for i := 0; i < 3; i++ {
		assert.Less(t, l2[i], 1.e-7)
	}
	assert.Less(t, l2[3], 1.e-6)
}
