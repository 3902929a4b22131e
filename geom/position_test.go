package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_Distance(t *testing.T) {
	tests := map[string]struct {
		a, b     Position
		expected float64
	}{
		"same point":       {NewPosition(1, 1), NewPosition(1, 1), 0},
		"horizontal":       {NewPosition(0, 0), NewPosition(3, 0), 3},
		"3-4-5 triangle":   {NewPosition(0, 0), NewPosition(3, 4), 5},
		"negative coords":  {NewPosition(-2, -2), NewPosition(2, 2), math.Hypot(4, 4)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Distance(tc.a, tc.b), DefaultEpsilon)
		})
	}
}

func TestPosition_Unit(t *testing.T) {
	p, ok := NewPosition(3, 4).Unit()
	assert.True(t, ok)
	assert.InDelta(t, 1, p.Magnitude(), DefaultEpsilon)

	_, ok = NewPosition(0, 0).Unit()
	assert.False(t, ok, "zero vector has undefined direction")
}

func TestPosition_Perpendicular(t *testing.T) {
	p := NewPosition(1, 0).Perpendicular()
	assert.InDelta(t, 0, p.X, DefaultEpsilon)
	assert.InDelta(t, 1, p.Y, DefaultEpsilon)
}

func TestPosition_IsFinite(t *testing.T) {
	assert.True(t, NewPosition(1, 2).IsFinite())
	assert.False(t, NewPosition(math.NaN(), 0).IsFinite())
	assert.False(t, NewPosition(math.Inf(1), 0).IsFinite())
}

func TestLinearSum(t *testing.T) {
	got := LinearSum(
		Term{Coefficient: 0.5, Value: NewPosition(0, 0)},
		Term{Coefficient: 0.5, Value: NewPosition(10, 0)},
	)
	assert.InDelta(t, 5, got.X, DefaultEpsilon)
	assert.InDelta(t, 0, got.Y, DefaultEpsilon)
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(NewPosition(0, 0), NewPosition(10, 10))
	assert.Equal(t, NewPosition(5, 5), m)
}
