package room

import (
	"errors"
	"fmt"
)

// RayPath is the route light takes through the real room:
// source, each bounce in travel order, then the viewer.
type RayPath = Path2D

// cornerTolerance is how close two crossings must be to count as one corner hit.
const cornerTolerance = 1e-6

var ErrNoCrossings = errors.New("no mirror crossings between virtual image and viewer")

// bounce is a reflection point and the walls it reflected off.
// A corner hit reflects off two walls at once.
type bounce struct {
	point Point2D
	sides []MirrorSide
}

// ReconstructRayPath folds the straight sighting from image to viewer back into the
// real room and returns the multi-bounce path from realSource to viewer.
//
// It walks backwards from the viewer: the last mirror crossed before reaching the
// viewer is the final bounce, and mirroring the rest of the sighting across that
// wall leaves a shorter sighting to fold again.
//
// A depth-0 image yields the direct path. A depth>0 image whose sighting crosses no
// active mirror returns ErrNoCrossings. A folded path whose length differs from the
// sighting, or whose bounces break the law of reflection, returns a *PathLengthError
// or a *ReflectionLawError.
func ReconstructRayPath(g RoomGeometry, image VirtualImage, realSource, viewer Point2D, mirrors MirrorConfig) (RayPath, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if image.Depth == 0 {
		return RayPath{realSource, viewer}, nil
	}

	bounces := unfold(g, image, viewer, mirrors)
	if len(bounces) == 0 {
		return nil, fmt.Errorf("%s: %w", image.ID, ErrNoCrossings)
	}

	path := make(RayPath, 0, len(bounces)+2)
	path = append(path, realSource)
	for i := len(bounces) - 1; i >= 0; i-- {
		path = append(path, bounces[i].point)
	}
	path = append(path, viewer)

	if err := verifyPathLength(image, path, viewer); err != nil {
		return nil, err
	}
	if err := verifyReflectionLaw(image, path, bounces); err != nil {
		return nil, err
	}
	return path, nil
}

// unfold returns the bounces of the sighting from image to viewer, nearest the
// viewer first. It stops after image.Depth folds.
//
// The first leg ends at the viewer and uses the CrossingEpsilon window. Every
// later leg ends on the previous bounce, so the walls of that bounce are skipped
// and the other walls are searched right up to the bounce point. A sighting that
// grazes a corner hits both walls a fraction of a unit apart.
func unfold(g RoomGeometry, image VirtualImage, viewer Point2D, mirrors MirrorConfig) []bounce {
	bounces := []bounce{}
	start, end := image.Position, viewer
	sides, tMax := mirrors.Active(), 1-CrossingEpsilon
	for i := 0; i < image.Depth; i++ {
		crossings := findCrossings(g, start, end, sides, CrossingEpsilon, tMax)
		traceStep(image, start, end, crossings)
		if len(crossings) == 0 {
			break
		}

		last := crossings[len(crossings)-1]
		b := bounce{point: last.Point, sides: []MirrorSide{last.Side}}
		if len(crossings) > 1 {
			prev := crossings[len(crossings)-2]
			if prev.Point.DistanceTo(last.Point) < cornerTolerance {
				b.sides = append(b.sides, prev.Side)
			}
		}
		// a second wall met at the previous bounce point is the same corner
		if i > 0 && b.point.DistanceTo(end) < cornerTolerance {
			b.point = end
		}
		bounces = append(bounces, b)

		incoming := Point2D{b.point.X - start.X, b.point.Y - start.Y}
		for _, side := range b.sides {
			incoming = mirrorVector(incoming, side)
		}
		start = Point2D{b.point.X - incoming.X, b.point.Y - incoming.Y}
		end = b.point
		sides, tMax = activeExcept(mirrors, b.sides), 1-bounceEpsilon
	}
	return bounces
}

// activeExcept lists the active walls other than skip, in Top, Right, Bottom, Left order.
func activeExcept(mirrors MirrorConfig, skip []MirrorSide) []MirrorSide {
	for _, side := range skip {
		mirrors[side] = false
	}
	return mirrors.Active()
}
