package room

import "fmt"

// SourceType identifies which real object a virtual image is a copy of.
type SourceType int

const (
	Triangle SourceType = iota
	Viewer
)

func (s SourceType) String() string {
	switch s {
	case Triangle:
		return "triangle"
	case Viewer:
		return "viewer"
	}
	return fmt.Sprintf("SourceType(%d)", int(s))
}

func ParseSourceType(name string) (SourceType, error) {
	switch name {
	case "triangle":
		return Triangle, nil
	case "viewer":
		return Viewer, nil
	}
	return 0, fmt.Errorf("unknown source type %q", name)
}

// Sources holds the two real objects placed in the room.
type Sources struct {
	Triangle Point2D
	Viewer   Point2D
}

// DefaultSources returns the starting positions of a new puzzle.
func DefaultSources() Sources {
	return Sources{
		Triangle: P(100, 75),
		Viewer:   P(100, 175),
	}
}

// Position returns the real position of the given object.
func (s Sources) Position(t SourceType) Point2D {
	if t == Viewer {
		return s.Viewer
	}
	return s.Triangle
}

// each calls fn for the triangle and then the viewer.
func (s Sources) each(fn func(SourceType, Point2D)) {
	fn(Triangle, s.Triangle)
	fn(Viewer, s.Viewer)
}
