package ntheory_test

import (
	"testing"

	"github.com/katalvlaran/econlab/ntheory"
	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	tests := []struct{ x, y, want int }{
		{10, 15, 5},
		{1, 0, 1},
		{0, 1, 1},
		{0, 0, 0},
		{-4, 6, 2},
		{17, 5, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ntheory.GCD(tc.x, tc.y), "GCD(%d, %d)", tc.x, tc.y)
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 30, ntheory.LCM(10, 15))
	assert.Equal(t, 0, ntheory.LCM(0, 0))
	assert.Equal(t, 0, ntheory.LCM(0, 7))
	assert.Equal(t, 12, ntheory.LCM(-4, 6))
}
