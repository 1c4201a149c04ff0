package room

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const opacityFalloff = 0.3

var (
	ErrNegativeDepth = errors.New("max depth must be non-negative")
	ErrBadImageID    = errors.New("malformed virtual image id")
)

// VirtualImage is a mirror copy of the triangle or the viewer.
type VirtualImage struct {
	ID       string
	Source   SourceType
	Position Point2D
	// FlippedX and FlippedY are the parity of vertical and horizontal reflections.
	// They only change how the image is drawn.
	FlippedX bool
	FlippedY bool
	Depth    int
	Opacity  float64
	// Mirrors is the chain of walls the real object was reflected across, in order.
	Mirrors []MirrorSide
}

// VirtualRoom is a copy of the room as seen through a chain of reflections.
type VirtualRoom struct {
	// Position is the top-left corner of the copy in world coordinates.
	Position Point2D
	Mirrors  MirrorConfig
	Depth    int
	Opacity  float64
}

// Catalog is everything the generator produces for one mirror configuration.
type Catalog struct {
	Images []VirtualImage
	Rooms  []VirtualRoom
}

func opacityAt(depth int) float64 {
	return 1.0 - float64(depth)*opacityFalloff
}

// imageID renders the display label of an image, e.g. "triangle-d2-top-left".
func imageID(source SourceType, chain []MirrorSide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-d%d", source, len(chain))
	for _, side := range chain {
		b.WriteString("-")
		b.WriteString(side.String())
	}
	return b.String()
}

// ParseImageID splits an id like "triangle-d2-top-left" into its source and
// reflection chain. The depth must match the number of walls named.
func ParseImageID(id string) (SourceType, []MirrorSide, error) {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0, nil, fmt.Errorf("%w: %q", ErrBadImageID, id)
	}
	source, err := ParseSourceType(parts[0])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrBadImageID, err)
	}
	depth, err := strconv.Atoi(strings.TrimPrefix(parts[1], "d"))
	if err != nil || !strings.HasPrefix(parts[1], "d") {
		return 0, nil, fmt.Errorf("%w: %q has no depth", ErrBadImageID, id)
	}
	chain := make([]MirrorSide, 0, len(parts)-2)
	for _, name := range parts[2:] {
		side, err := ParseMirrorSide(name)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %w", ErrBadImageID, err)
		}
		chain = append(chain, side)
	}
	if depth != len(chain) {
		return 0, nil, fmt.Errorf("%w: %q is depth %d but names %d mirrors", ErrBadImageID, id, depth, len(chain))
	}
	return source, chain, nil
}

// Label is a human readable form of the reflection chain, e.g. "top → left".
func (v VirtualImage) Label() string {
	names := make([]string, len(v.Mirrors))
	for i, side := range v.Mirrors {
		names[i] = side.String()
	}
	return strings.Join(names, " → ")
}

// LastMirror is the wall of the final reflection in the chain.
func (v VirtualImage) LastMirror() (MirrorSide, bool) {
	if len(v.Mirrors) == 0 {
		return 0, false
	}
	return v.Mirrors[len(v.Mirrors)-1], true
}

// Reflect returns the image of v across side, one level deeper.
func (v VirtualImage) Reflect(g RoomGeometry, side MirrorSide) VirtualImage {
	chain := make([]MirrorSide, len(v.Mirrors), len(v.Mirrors)+1)
	copy(chain, v.Mirrors)
	chain = append(chain, side)

	r := VirtualImage{
		ID:       imageID(v.Source, chain),
		Source:   v.Source,
		Position: ReflectAcrossMirror(g, v.Position, side),
		FlippedX: v.FlippedX,
		FlippedY: v.FlippedY,
		Depth:    v.Depth + 1,
		Opacity:  opacityAt(v.Depth + 1),
		Mirrors:  chain,
	}
	if side.Horizontal() {
		r.FlippedY = !r.FlippedY
	} else {
		r.FlippedX = !r.FlippedX
	}
	return r
}

// realImage is the depth-0 record of a real object. It never appears in a Catalog.
func realImage(source SourceType, p Point2D) VirtualImage {
	return VirtualImage{
		ID:       imageID(source, nil),
		Source:   source,
		Position: p,
		Opacity:  1,
	}
}

// Reflect returns the copy of r mirrored across side of the real room, one level deeper.
func (r VirtualRoom) Reflect(g RoomGeometry, side MirrorSide) VirtualRoom {
	return VirtualRoom{
		Position: reflectRoomOrigin(g, r.Position, side),
		Mirrors:  r.Mirrors.Reflect(side),
		Depth:    r.Depth + 1,
		Opacity:  opacityAt(r.Depth + 1),
	}
}

// Bounds returns the four corners of the room copy.
func (r VirtualRoom) Bounds(g RoomGeometry) Path2D {
	x, y := r.Position.X, r.Position.Y
	return Path2D{
		{x, y},
		{x + g.Width, y},
		{x + g.Width, y + g.Height},
		{x, y + g.Height},
	}
}

type imageKey struct {
	source SourceType
	pos    Point2D
}

// GenerateVirtualImages applies the method of images to the real room up to maxDepth
// reflections.
//
// Rooms and images are both deduplicated by position rounded to 1e-6; the first
// chain to reach a position wins. The real room and the real objects seed the
// dedup sets, so chains that cancel out (top then top) or commute back onto an
// earlier image are dropped.
//
// Sources must lie strictly inside the room. A source sitting on an active wall
// is its own reflection across that wall, so its depth-1 image there is dropped.
func GenerateVirtualImages(g RoomGeometry, sources Sources, mirrors MirrorConfig, maxDepth int) (Catalog, error) {
	if err := g.Validate(); err != nil {
		return Catalog{}, err
	}
	if maxDepth < 0 {
		return Catalog{}, fmt.Errorf("%w: got %d", ErrNegativeDepth, maxDepth)
	}

	catalog := Catalog{
		Images: []VirtualImage{},
		Rooms:  []VirtualRoom{},
	}
	active := mirrors.Active()
	if maxDepth == 0 || len(active) == 0 {
		return catalog, nil
	}

	seenRooms := map[Point2D]bool{{}: true}
	seenImages := map[imageKey]bool{}
	prevImages := []VirtualImage{}
	sources.each(func(t SourceType, p Point2D) {
		seenImages[imageKey{t, p.key()}] = true
		prevImages = append(prevImages, realImage(t, p))
	})
	prevRooms := []VirtualRoom{{Mirrors: mirrors, Opacity: 1}}

	for depth := 1; depth <= maxDepth; depth++ {
		nextRooms := []VirtualRoom{}
		for _, prev := range prevRooms {
			for _, side := range active {
				room := prev.Reflect(g, side)
				if seenRooms[room.Position.key()] {
					continue
				}
				seenRooms[room.Position.key()] = true
				nextRooms = append(nextRooms, room)
			}
		}

		nextImages := []VirtualImage{}
		for _, prev := range prevImages {
			for _, side := range active {
				image := prev.Reflect(g, side)
				key := imageKey{image.Source, image.Position.key()}
				if seenImages[key] {
					continue
				}
				seenImages[key] = true
				nextImages = append(nextImages, image)
			}
		}

		catalog.Rooms = append(catalog.Rooms, nextRooms...)
		catalog.Images = append(catalog.Images, nextImages...)
		prevRooms, prevImages = nextRooms, nextImages
	}
	return catalog, nil
}

// Find returns the image with the given ID.
func (c Catalog) Find(id string) (VirtualImage, bool) {
	for _, image := range c.Images {
		if image.ID == id {
			return image, true
		}
	}
	return VirtualImage{}, false
}

// ImagesOf returns the images of one source, in generation order.
func (c Catalog) ImagesOf(source SourceType) []VirtualImage {
	images := []VirtualImage{}
	for _, image := range c.Images {
		if image.Source == source {
			images = append(images, image)
		}
	}
	return images
}

// AtDepth returns the images and rooms at exactly depth.
func (c Catalog) AtDepth(depth int) ([]VirtualImage, []VirtualRoom) {
	images := []VirtualImage{}
	for _, image := range c.Images {
		if image.Depth == depth {
			images = append(images, image)
		}
	}
	rooms := []VirtualRoom{}
	for _, room := range c.Rooms {
		if room.Depth == depth {
			rooms = append(rooms, room)
		}
	}
	return images, rooms
}
