package room

import (
	"fmt"
)

// Room is the real, depth-0 room: its size and which of its walls are mirrors.
type Room struct {
	Geometry RoomGeometry
	Mirrors  MirrorConfig
}

// NewRoom builds a Room from a caller-supplied [top, right, bottom, left] slice.
func NewRoom(geometry RoomGeometry, mirrors []bool) (Room, error) {
	if err := geometry.Validate(); err != nil {
		return Room{}, err
	}
	m, err := ParseMirrorConfig(mirrors)
	if err != nil {
		return Room{}, err
	}
	return Room{Geometry: geometry, Mirrors: m}, nil
}

// VirtualImages runs the method of images for this room.
func (r Room) VirtualImages(sources Sources, maxDepth int) (Catalog, error) {
	return GenerateVirtualImages(r.Geometry, sources, r.Mirrors, maxDepth)
}

// TraceRayPath reconstructs the real bounce path behind a virtual image.
func (r Room) TraceRayPath(image VirtualImage, realSource, viewer Point2D) (RayPath, error) {
	return ReconstructRayPath(r.Geometry, image, realSource, viewer, r.Mirrors)
}

// TraceImage reconstructs the path from the real copy of image's source to the viewer.
// For a viewer image that is the viewer seeing itself.
func (r Room) TraceImage(image VirtualImage, sources Sources) (RayPath, error) {
	return r.TraceRayPath(image, sources.Position(image.Source), sources.Viewer)
}

func (r Room) String() string {
	return fmt.Sprintf("%gx%g room, mirrors: %s", r.Geometry.Width, r.Geometry.Height, r.Mirrors)
}
