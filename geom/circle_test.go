package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCircle_NormalizesNegativeRadius(t *testing.T) {
	c := NewCircle(NewPosition(0, 0), -5)
	assert.Equal(t, 5.0, c.Radius)
}

func TestIntersectCircleCircle(t *testing.T) {
	tests := map[string]struct {
		a, b         Circle
		wantRelation CircleCircleRelation
		wantPoints   int
	}{
		"same circle": {
			a:            NewCircle(NewPosition(0, 0), 5),
			b:            NewCircle(NewPosition(0, 0), 5),
			wantRelation: CirclesSame,
		},
		"concentric distinct radii": {
			a:            NewCircle(NewPosition(0, 0), 5),
			b:            NewCircle(NewPosition(0, 0), 8),
			wantRelation: CirclesConcentricDistinct,
		},
		"external tangent": {
			a:            NewCircle(NewPosition(0, 0), 3),
			b:            NewCircle(NewPosition(6, 0), 3),
			wantRelation: CirclesTangent,
			wantPoints:   1,
		},
		"internal tangent": {
			a:            NewCircle(NewPosition(0, 0), 5),
			b:            NewCircle(NewPosition(3, 0), 2),
			wantRelation: CirclesTangent,
			wantPoints:   1,
		},
		"two points": {
			a:            NewCircle(NewPosition(0, 0), 5),
			b:            NewCircle(NewPosition(6, 0), 5),
			wantRelation: CirclesTwoPoints,
			wantPoints:   2,
		},
		"disjoint, too far apart": {
			a:            NewCircle(NewPosition(0, 0), 1),
			b:            NewCircle(NewPosition(10, 0), 1),
			wantRelation: CirclesDisjoint,
		},
		"disjoint, one inside the other": {
			a:            NewCircle(NewPosition(0, 0), 10),
			b:            NewCircle(NewPosition(1, 0), 1),
			wantRelation: CirclesDisjoint,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rel, pts := IntersectCircleCircle(tc.a, tc.b)
			assert.Equal(t, tc.wantRelation, rel)
			assert.Len(t, pts, tc.wantPoints)
			for _, p := range pts {
				assert.InDelta(t, tc.a.Radius, Distance(p, tc.a.Center), 1e-6)
				assert.InDelta(t, tc.b.Radius, Distance(p, tc.b.Center), 1e-6)
			}

			// Commutative: a∩b and b∩a describe the same set of points.
			relSwap, ptsSwap := IntersectCircleCircle(tc.b, tc.a)
			assert.Equal(t, rel, relSwap)
			assert.Len(t, ptsSwap, len(pts))
		})
	}
}

func TestIntersectCircleLine(t *testing.T) {
	tests := map[string]struct {
		c            Circle
		l            Line
		wantRelation CircleLineRelation
		wantPoints   int
	}{
		"tangent from below": {
			c:            NewCircle(NewPosition(0, 0), 5),
			l:            NewLine(NewPosition(-1, 5), NewPosition(1, 5)),
			wantRelation: CircleLineTangent,
			wantPoints:   1,
		},
		"two points through chord": {
			c:            NewCircle(NewPosition(0, 0), 5),
			l:            NewLine(NewPosition(-10, 3), NewPosition(10, 3)),
			wantRelation: CircleLineTwoPoints,
			wantPoints:   2,
		},
		"through center": {
			c:            NewCircle(NewPosition(0, 0), 5),
			l:            NewLine(NewPosition(-10, 0), NewPosition(10, 0)),
			wantRelation: CircleLineDiameter,
			wantPoints:   2,
		},
		"no intersection": {
			c:            NewCircle(NewPosition(0, 0), 5),
			l:            NewLine(NewPosition(-1, 20), NewPosition(1, 20)),
			wantRelation: CircleLineNone,
			wantPoints:   0,
		},
		"degenerate line never intersects": {
			c:            NewCircle(NewPosition(0, 0), 5),
			l:            NewLine(NewPosition(1, 1), NewPosition(1, 1)),
			wantRelation: CircleLineNone,
			wantPoints:   0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rel, pts := IntersectCircleLine(tc.c, tc.l)
			assert.Equal(t, tc.wantRelation, rel)
			assert.Len(t, pts, tc.wantPoints)
			for _, p := range pts {
				assert.InDelta(t, tc.c.Radius, Distance(p, tc.c.Center), 1e-6)
				if d, ok := tc.l.DistanceToPoint(p); ok {
					assert.InDelta(t, 0, d, 1e-6)
				}
			}
		})
	}
}
