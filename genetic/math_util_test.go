package genetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdev(t *testing.T) {
	assert.Equal(t, 0.0, Stdev([]float64{5}))
	assert.InDelta(t, 1.0, Stdev([]float64{1, 2, 3}), 1e-12)
}

func TestMinMaxFloat(t *testing.T) {
	assert.True(t, math.IsInf(MaxFloat(nil), -1))
	assert.True(t, math.IsInf(MinFloat(nil), 1))
	assert.Equal(t, 3.0, MaxFloat([]float64{1, 3, 2}))
	assert.Equal(t, 1.0, MinFloat([]float64{2, 1, 3}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -1.0, clamp(-2, -1, 1))
	assert.Equal(t, 1.0, clamp(2, -1, 1))
	assert.Equal(t, 0.5, clamp(0.5, -1, 1))
}
