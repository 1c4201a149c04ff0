package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMirrorCrossing(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name     string
		from, to Point2D
		side     MirrorSide
		ok       bool
		want     Point2D
		wantT    float64
	}{
		{"through top", P(100, -75), P(100, 175), Top, true, P(100, 0), 0.3},
		{"through right", P(300, -75), P(100, 175), Right, true, P(200, 50), 0.5},
		{"top axis outside the wall", P(300, -75), P(100, 175), Top, false, Point2D{}, 0},
		{"parallel", P(0, 50), P(100, 50), Top, false, Point2D{}, 0},
		{"starts on the wall", P(100, 0), P(100, 175), Top, false, Point2D{}, 0},
		{"ends on the wall", P(100, 175), P(100, 0), Top, false, Point2D{}, 0},
		{"never reaches", P(100, 50), P(100, 150), Bottom, false, Point2D{}, 0},
		{"corner", P(-100, -100), P(100, 100), Top, true, P(0, 0), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			c, ok := FindMirrorCrossing(g, tt.from, tt.to, tt.side)
			assert.Equal(tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(tt.side, c.Side)
			assert.InDelta(tt.want.X, c.Point.X, 1e-9)
			assert.InDelta(tt.want.Y, c.Point.Y, 1e-9)
			assert.InDelta(tt.wantT, c.T, 1e-9)
		})
	}
}

func TestFindAllMirrorCrossings(t *testing.T) {
	assert := assert.New(t)
	g := DefaultGeometry()

	crossings := FindAllMirrorCrossings(g, P(-100, 100), P(300, 100), MirrorConfig{false, true, false, true})
	assert.Len(crossings, 2)
	assert.Equal(Left, crossings[0].Side)
	assert.Equal(Right, crossings[1].Side)
	assert.Less(crossings[0].T, crossings[1].T)

	// inactive walls are never reported
	crossings = FindAllMirrorCrossings(g, P(-100, 100), P(300, 100), MirrorConfig{false, true, false, false})
	assert.Len(crossings, 1)
	assert.Equal(Right, crossings[0].Side)

	// both walls at a corner, ties in side order
	crossings = FindAllMirrorCrossings(g, P(-100, -100), P(100, 100), MirrorConfig{true, true, true, true})
	assert.Len(crossings, 2)
	assert.Equal(Top, crossings[0].Side)
	assert.Equal(Left, crossings[1].Side)

	assert.Empty(FindAllMirrorCrossings(g, P(10, 10), P(190, 190), MirrorConfig{true, true, true, true}))
}

func TestFindCrossingsUpToBounce(t *testing.T) {
	assert := assert.New(t)
	g := DefaultGeometry()
	from, to := P(50, -50), P(0, 0.0005)

	// the CrossingEpsilon window hides a wall hit this close to the end
	assert.Empty(FindAllMirrorCrossings(g, from, to, MirrorConfig{true, false, false, false}))

	crossings := findCrossings(g, from, to, []MirrorSide{Top}, CrossingEpsilon, 1-bounceEpsilon)
	if assert.Len(crossings, 1) {
		assert.Equal(Top, crossings[0].Side)
		assert.InDelta(0, crossings[0].Point.X, 1e-3)
	}
}

func TestActiveExcept(t *testing.T) {
	assert := assert.New(t)
	m := MirrorConfig{true, true, false, true}

	assert.Equal([]MirrorSide{Right, Left}, activeExcept(m, []MirrorSide{Top}))
	assert.Equal([]MirrorSide{Right}, activeExcept(m, []MirrorSide{Top, Left}))
	assert.Equal([]MirrorSide{Top, Right, Left}, m.Active())
}
