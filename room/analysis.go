package room

import (
	"fmt"
	"sort"
)

// Sighting is one virtual image as the viewer sees it, with the real path behind it.
type Sighting struct {
	Image VirtualImage
	Path  RayPath
	// Distance is the apparent distance from the viewer to the image, which is
	// also the length of Path.
	Distance float64
}

// Bounces is the number of reflection points on the path.
func (s Sighting) Bounces() int {
	return len(s.Path) - 2
}

// Sightings traces every triangle image in the catalog and returns them nearest first.
// Viewer images are skipped; light from them never reaches the viewer.
func Sightings(r Room, catalog Catalog, sources Sources) ([]Sighting, error) {
	sightings := []Sighting{}
	for _, image := range catalog.ImagesOf(Triangle) {
		path, err := r.TraceImage(image, sources)
		if err != nil {
			return nil, fmt.Errorf("tracing %s: %w", image.ID, err)
		}
		sightings = append(sightings, Sighting{
			Image:    image,
			Path:     path,
			Distance: image.Position.DistanceTo(sources.Viewer),
		})
	}
	sort.SliceStable(sightings, func(i, j int) bool {
		return sightings[i].Distance < sightings[j].Distance
	})
	return sightings, nil
}

// Nearest returns the closest sighting at each depth, keyed by depth.
func Nearest(sightings []Sighting) map[int]Sighting {
	nearest := map[int]Sighting{}
	for _, s := range sightings {
		if best, ok := nearest[s.Image.Depth]; !ok || s.Distance < best.Distance {
			nearest[s.Image.Depth] = s
		}
	}
	return nearest
}
