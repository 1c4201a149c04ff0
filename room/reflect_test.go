package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflectAcrossMirror(t *testing.T) {
	g := DefaultGeometry()
	p := P(30, 40)
	tests := []struct {
		side MirrorSide
		want Point2D
	}{
		{Top, P(30, -40)},
		{Right, P(370, 40)},
		{Bottom, P(30, 360)},
		{Left, P(-30, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			assert := assert.New(t)
			got := ReflectAcrossMirror(g, p, tt.side)
			assert.Equal(tt.want, got)
			assert.Equal(p, ReflectAcrossMirror(g, got, tt.side))
		})
	}
}

func TestReflectImageTwice(t *testing.T) {
	g := DefaultGeometry()
	for _, side := range AllSides {
		image := realImage(Triangle, P(100, 75))
		once := image.Reflect(g, side)
		twice := once.Reflect(g, side)

		assert.NotEqual(t, image.Position, once.Position)
		assert.Equal(t, side.Horizontal(), once.FlippedY)
		assert.Equal(t, !side.Horizontal(), once.FlippedX)

		assert.Equal(t, image.Position, twice.Position)
		assert.False(t, twice.FlippedX)
		assert.False(t, twice.FlippedY)
		assert.Equal(t, []MirrorSide{side, side}, twice.Mirrors)
		assert.Equal(t, 2, twice.Depth)
	}
}

func TestReflectImageKeepsParentChain(t *testing.T) {
	assert := assert.New(t)
	g := DefaultGeometry()

	parent := realImage(Triangle, P(100, 75)).Reflect(g, Top)
	a := parent.Reflect(g, Left)
	b := parent.Reflect(g, Right)

	assert.Equal([]MirrorSide{Top}, parent.Mirrors)
	assert.Equal([]MirrorSide{Top, Left}, a.Mirrors)
	assert.Equal([]MirrorSide{Top, Right}, b.Mirrors)
	assert.Equal("triangle-d2-top-left", a.ID)
	assert.Equal("top → left", a.Label())

	last, ok := b.LastMirror()
	assert.True(ok)
	assert.Equal(Right, last)
	_, ok = realImage(Viewer, P(0, 0)).LastMirror()
	assert.False(ok)
}

func TestReflectRoomOrigin(t *testing.T) {
	assert := assert.New(t)
	g := RoomGeometry{Width: 300, Height: 200}

	assert.Equal(P(0, -200), reflectRoomOrigin(g, P(0, 0), Top))
	assert.Equal(P(0, 200), reflectRoomOrigin(g, P(0, 0), Bottom))
	assert.Equal(P(-300, 0), reflectRoomOrigin(g, P(0, 0), Left))
	assert.Equal(P(300, 0), reflectRoomOrigin(g, P(0, 0), Right))
	// a room two copies to the right
	assert.Equal(P(-300, 0), reflectRoomOrigin(g, P(600, 0), Right))

	for _, side := range AllSides {
		origin := P(600, -400)
		assert.Equal(origin, reflectRoomOrigin(g, reflectRoomOrigin(g, origin, side), side))
	}
}

func TestMirrorVector(t *testing.T) {
	assert := assert.New(t)
	v := P(3, -4)
	assert.Equal(P(3, 4), mirrorVector(v, Top))
	assert.Equal(P(3, 4), mirrorVector(v, Bottom))
	assert.Equal(P(-3, -4), mirrorVector(v, Left))
	assert.Equal(P(-3, -4), mirrorVector(v, Right))
}
