package room

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultWidth  = 200
	DefaultHeight = 200
)

var ErrInvalidGeometry = errors.New("invalid room geometry")

// RoomGeometry is the axis-aligned rectangle of the real room.
//
// The origin is the top-left corner. Walls lie at x=0, x=Width, y=0 and y=Height.
type RoomGeometry struct {
	Width  float64
	Height float64
}

// DefaultGeometry returns the 200x200 room used by the puzzle editor.
func DefaultGeometry() RoomGeometry {
	return RoomGeometry{Width: DefaultWidth, Height: DefaultHeight}
}

func (g RoomGeometry) Validate() error {
	valid := func(v float64) bool {
		return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
	}
	if !valid(g.Width) || !valid(g.Height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidGeometry, g.Width, g.Height)
	}
	return nil
}

// Bounds returns the room rectangle.
func (g RoomGeometry) Bounds() r2.Box {
	return r2.NewBox(0, 0, g.Width, g.Height)
}

// Contains reports whether p lies inside the room or on one of its walls.
func (g RoomGeometry) Contains(p Point2D) bool {
	return g.Bounds().Contains(p.Vec())
}

// Clamp moves p inside the room, keeping it at least padding away from every wall.
func (g RoomGeometry) Clamp(p Point2D, padding float64) Point2D {
	clamp := func(v, size float64) float64 {
		lo, hi := padding, size-padding
		if lo > hi {
			return size / 2
		}
		return math.Max(lo, math.Min(hi, v))
	}
	return Point2D{clamp(p.X, g.Width), clamp(p.Y, g.Height)}
}

// WallCoordinate returns the fixed coordinate of the wall on the given side:
// the y value for Top/Bottom and the x value for Left/Right.
func (g RoomGeometry) WallCoordinate(side MirrorSide) float64 {
	switch side {
	case Top:
		return 0
	case Bottom:
		return g.Height
	case Left:
		return 0
	case Right:
		return g.Width
	}
	panic(fmt.Sprintf("unknown mirror side %d", side))
}

// WallLength is the length of the wall on the given side.
func (g RoomGeometry) WallLength(side MirrorSide) float64 {
	if side.Horizontal() {
		return g.Width
	}
	return g.Height
}
