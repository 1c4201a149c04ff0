package room

import (
	"github.com/fogleman/pt/pt"
)

// V is a shorthand constructor for pt.Vector
func V(X, Y, Z float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: Z}
}

// To3D lifts p into the z=0 plane.
func (p Point2D) To3D() pt.Vector {
	return V(p.X, p.Y, 0)
}
