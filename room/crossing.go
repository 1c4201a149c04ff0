package room

import (
	"math"
	"sort"
)

const (
	// Crossings closer than this (in segment parameter) to either end of a
	// segment are ignored so a bounce point is never counted twice.
	CrossingEpsilon = 0.001
	// Slack on the along-wall range check. Unfolded corner hits land a few
	// ulps outside the wall otherwise.
	wallTolerance = 1e-9
	// Once a leg ends on a bounce point, only crossings this close to that
	// point are discarded.
	bounceEpsilon = 1e-9
)

// Crossing is the point where a segment meets a mirror wall.
type Crossing struct {
	Point Point2D
	Side  MirrorSide
	// T is the segment parameter of the crossing: 0 at from, 1 at to.
	T float64
}

// FindMirrorCrossing intersects the segment from->to with the finite wall on side.
//
// It reports false when the segment runs parallel to the wall, when the crossing is
// within CrossingEpsilon of either endpoint, or when the line meets the wall's axis
// outside the wall itself.
func FindMirrorCrossing(g RoomGeometry, from, to Point2D, side MirrorSide) (Crossing, bool) {
	return findCrossing(g, from, to, side, CrossingEpsilon, 1-CrossingEpsilon)
}

// findCrossing accepts crossings with tMin < T < tMax.
func findCrossing(g RoomGeometry, from, to Point2D, side MirrorSide, tMin, tMax float64) (Crossing, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	wall := g.WallCoordinate(side)
	length := g.WallLength(side)

	var t, along float64
	if side.Horizontal() {
		if math.Abs(dy) <= CrossingEpsilon {
			return Crossing{}, false
		}
		t = (wall - from.Y) / dy
		along = from.X + t*dx
	} else {
		if math.Abs(dx) <= CrossingEpsilon {
			return Crossing{}, false
		}
		t = (wall - from.X) / dx
		along = from.Y + t*dy
	}

	if t <= tMin || t >= tMax {
		return Crossing{}, false
	}
	if along < -wallTolerance || along > length+wallTolerance {
		return Crossing{}, false
	}
	along = math.Max(0, math.Min(length, along))

	point := Point2D{along, wall}
	if !side.Horizontal() {
		point = Point2D{wall, along}
	}
	return Crossing{Point: point, Side: side, T: t}, true
}

// FindAllMirrorCrossings returns the crossings of from->to with every active mirror,
// sorted by T. Ties keep Top, Right, Bottom, Left order.
func FindAllMirrorCrossings(g RoomGeometry, from, to Point2D, mirrors MirrorConfig) []Crossing {
	return findCrossings(g, from, to, mirrors.Active(), CrossingEpsilon, 1-CrossingEpsilon)
}

func findCrossings(g RoomGeometry, from, to Point2D, sides []MirrorSide, tMin, tMax float64) []Crossing {
	crossings := []Crossing{}
	for _, side := range sides {
		if c, ok := findCrossing(g, from, to, side, tMin, tMax); ok {
			crossings = append(crossings, c)
		}
	}
	sort.SliceStable(crossings, func(i, j int) bool {
		return crossings[i].T < crossings[j].T
	})
	return crossings
}
