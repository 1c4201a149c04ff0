package room

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// PathLengthTolerance is how far a folded path may drift from its straight sighting.
	PathLengthTolerance = 0.1
	directionEpsilon    = 1e-6
)

// PathLengthError reports a folded ray path that is not as long as the straight
// sighting it came from. It always points at a geometry bug.
type PathLengthError struct {
	ImageID string
	Path    RayPath
	// Folded is the length of Path; Virtual is the image-to-viewer distance.
	Folded  float64
	Virtual float64
}

func (e *PathLengthError) Error() string {
	return fmt.Sprintf("%s: folded path length %.4f does not match virtual distance %.4f (%d points)",
		e.ImageID, e.Folded, e.Virtual, len(e.Path))
}

// ReflectionLawError reports a bounce whose outgoing direction is not the mirror
// image of its incoming direction.
type ReflectionLawError struct {
	ImageID  string
	Bounce   Point2D
	Expected pt.Vector
	Actual   pt.Vector
}

func (e *ReflectionLawError) Error() string {
	return fmt.Sprintf("%s: bounce at (%.3f, %.3f) reflects toward {%.4f, %.4f}, expected {%.4f, %.4f}",
		e.ImageID, e.Bounce.X, e.Bounce.Y, e.Actual.X, e.Actual.Y, e.Expected.X, e.Expected.Y)
}

func verifyPathLength(image VirtualImage, path RayPath, viewer Point2D) error {
	folded := path.Length()
	virtual := image.Position.DistanceTo(viewer)
	if !scalar.EqualWithinAbs(folded, virtual, PathLengthTolerance) {
		return &PathLengthError{
			ImageID: image.ID,
			Path:    path,
			Folded:  folded,
			Virtual: virtual,
		}
	}
	return nil
}

func wallNormal(side MirrorSide) pt.Vector {
	if side.Horizontal() {
		return V(0, 1, 0)
	}
	return V(1, 0, 0)
}

// verifyReflectionLaw checks every bounce of path. bounces is in unfold order
// (nearest the viewer first), so path[i] pairs with bounces[len-i].
func verifyReflectionLaw(image VirtualImage, path RayPath, bounces []bounce) error {
	for i := 1; i < len(path)-1; i++ {
		b := bounces[len(bounces)-i]
		in := b.point.To3D().Sub(path[i-1].To3D())
		out := path[i+1].To3D().Sub(b.point.To3D())
		if in.Length() == 0 || out.Length() == 0 {
			continue
		}

		expected := in.Normalize()
		for _, side := range b.sides {
			n := wallNormal(side)
			expected = expected.Sub(n.MulScalar(2 * n.Dot(expected)))
		}
		actual := out.Normalize()
		if !scalar.EqualWithinAbs(expected.X, actual.X, directionEpsilon) ||
			!scalar.EqualWithinAbs(expected.Y, actual.Y, directionEpsilon) {
			return &ReflectionLawError{
				ImageID:  image.ID,
				Bounce:   b.point,
				Expected: expected,
				Actual:   actual,
			}
		}
	}
	return nil
}
