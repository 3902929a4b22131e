package sketch

import (
	"bytes"
	"testing"

	"github.com/kestrelcad/sketchsolve/constraint"
	"github.com/kestrelcad/sketchsolve/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	original := Sketch{
		Points: []PointEntry{
			{ID: "a", X: 1, Y: 2},
			{ID: "b", X: 3, Y: 4},
		},
		Constraints: []ConstraintSpec{
			{Kind: kindFixed, Point: "a", X: 1, Y: 2},
			{Kind: kindDistance, A: "a", B: "b", Length: 5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, original))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	require.Len(t, loaded.Points, 2)
	assert.Equal(t, original.Points[0].ID, loaded.Points[0].ID)
	assert.True(t, nearlyEqual(original.Points[0].X, loaded.Points[0].X))
	assert.True(t, nearlyEqual(original.Points[1].Y, loaded.Points[1].Y))
}

func TestToConstraints(t *testing.T) {
	s := Sketch{
		Constraints: []ConstraintSpec{
			{Kind: kindFixed, Point: "a", X: 0, Y: 0},
			{Kind: kindDistance, A: "a", B: "b", Length: 5},
			{Kind: "bogus"},
		},
	}
	cs, err := s.ToConstraints()
	require.Error(t, err)
	assert.Nil(t, cs)

	s.Constraints = s.Constraints[:2]
	cs, err = s.ToConstraints()
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, constraint.KindFixed, cs[0].Kind())
	assert.Equal(t, constraint.KindDistance, cs[1].Kind())
}

func TestPointsMap_PreservesOrder(t *testing.T) {
	s := Sketch{Points: []PointEntry{
		{ID: "z", X: 0, Y: 0},
		{ID: "a", X: 1, Y: 1},
	}}
	m := s.PointsMap()
	keys := m.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, constraint.PointID("z"), keys[0])
	assert.Equal(t, constraint.PointID("a"), keys[1])
}

func TestNewResult(t *testing.T) {
	s := Sketch{Points: []PointEntry{{ID: "p", X: 7, Y: 11}}}
	initial := s.PointsMap()
	solution, log := solve.Solve(initial, nil)

	order := make([]constraint.PointID, len(s.Points))
	for i, p := range s.Points {
		order[i] = p.ID
	}

	r := NewResult(order, solution, log)
	require.Len(t, r.Solution, 1)
	assert.Equal(t, constraint.PointID("p"), r.Solution[0].ID)
	assert.Equal(t, []string{"p"}, r.Arbitrary)
}
