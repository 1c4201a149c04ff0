package room

import (
	"math"

	lin "github.com/sgreben/piecewiselinear"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// keyPrecision is the number of decimal places kept by Point2D.key.
const keyPrecision = 6

// Point2D is a position in the world frame of the real room.
//
// y grows downward: the Top wall is y=0 and the Bottom wall is y=H.
type Point2D struct {
	X, Y float64
}

// P is a shorthand constructor for Point2D
func P(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Vec converts the point to a gonum vector.
func (p Point2D) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func (p Point2D) Translate(x, y float64) Point2D {
	return Point2D{p.X + x, p.Y + y}
}

func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point2D) DistanceTo(q Point2D) float64 {
	return r2.Norm(r2.Sub(q.Vec(), p.Vec()))
}

// key rounds p for use as a map key. Reflection chains that land on the same
// spot by different routes can differ in the last few ulps.
func (p Point2D) key() Point2D {
	return Point2D{scalar.Round(p.X, keyPrecision), scalar.Round(p.Y, keyPrecision)}
}

type Path2D []Point2D

func (p Path2D) Translate(x, y float64) Path2D {
	translated := make(Path2D, len(p))
	for i, p := range p {
		translated[i] = p.Translate(x, y)
	}
	return translated
}

func (p Path2D) BoundingBox() (XMin, XMax, YMin, YMax float64) {
	if len(p) == 0 {
		return
	}
	XMin, XMax = p[0].X, p[0].X
	YMin, YMax = p[0].Y, p[0].Y
	for _, p := range p[1:] {
		XMin = math.Min(XMin, p.X)
		XMax = math.Max(XMax, p.X)
		YMin = math.Min(YMin, p.Y)
		YMax = math.Max(YMax, p.Y)
	}
	return
}

// segmentLengths returns the length of each leg of the path.
func (p Path2D) segmentLengths() []float64 {
	if len(p) < 2 {
		return nil
	}
	lengths := make([]float64, len(p)-1)
	for i := 0; i < len(p)-1; i++ {
		lengths[i] = p[i].DistanceTo(p[i+1])
	}
	return lengths
}

// Length is the total Euclidean length of all legs of the path.
func (p Path2D) Length() float64 {
	return floats.Sum(p.segmentLengths())
}

// PointAt returns the point at arc length s from the start of the path.
//
// s is clamped to [0, Length()].
func (p Path2D) PointAt(s float64) Point2D {
	switch len(p) {
	case 0:
		return Point2D{}
	case 1:
		return p[0]
	}
	// piecewiselinear needs strictly increasing X, so zero-length legs are skipped
	X := []float64{0}
	xs := []float64{p[0].X}
	ys := []float64{p[0].Y}
	total := 0.0
	for i, l := range p.segmentLengths() {
		if l == 0 {
			continue
		}
		total += l
		X = append(X, total)
		xs = append(xs, p[i+1].X)
		ys = append(ys, p[i+1].Y)
	}
	if len(X) == 1 {
		return p[0]
	}
	s = math.Max(0, math.Min(s, total))
	fx := lin.Function{X: X, Y: xs}
	fy := lin.Function{X: X, Y: ys}
	return Point2D{fx.At(s), fy.At(s)}
}
