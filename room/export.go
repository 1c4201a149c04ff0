package room

import (
	"encoding/json"
	"fmt"
	"os"
)

type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name,omitempty"`
}

type ImageJSON struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Position PointJSON `json:"position"`
	FlippedX bool      `json:"flippedX"`
	FlippedY bool      `json:"flippedY"`
	Depth    int       `json:"depth"`
	Opacity  float64   `json:"opacity"`
	Mirrors  []string  `json:"mirrors"`
}

type RoomJSON struct {
	Position PointJSON `json:"position"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Mirrors  []string  `json:"mirrors"`
	Depth    int       `json:"depth"`
	Opacity  float64   `json:"opacity"`
}

type PathJSON struct {
	Points   []PointJSON `json:"points"`
	Distance float64     `json:"distance"`
	Color    string      `json:"color,omitempty"`
}

type TouchAreaJSON struct {
	ID       string    `json:"id"`
	Position PointJSON `json:"position"`
	Correct  bool      `json:"correct"`
	Radius   float64   `json:"radius"`
	Color    string    `json:"color,omitempty"`
}

// ExportJSON is the document written by SaveCatalogToJSON.
type ExportJSON struct {
	Images     []ImageJSON     `json:"images"`
	Rooms      []RoomJSON      `json:"rooms"`
	Paths      []PathJSON      `json:"paths,omitempty"`
	TouchAreas []TouchAreaJSON `json:"touchAreas,omitempty"`
}

// Conversion functions
func PointToJSON(p Point2D) PointJSON {
	return PointJSON{X: p.X, Y: p.Y}
}

func mirrorNames(sides []MirrorSide) []string {
	names := make([]string, len(sides))
	for i, side := range sides {
		names[i] = side.String()
	}
	return names
}

func ImageToJSON(v VirtualImage) ImageJSON {
	return ImageJSON{
		ID:       v.ID,
		Source:   v.Source.String(),
		Position: PointToJSON(v.Position),
		FlippedX: v.FlippedX,
		FlippedY: v.FlippedY,
		Depth:    v.Depth,
		Opacity:  v.Opacity,
		Mirrors:  mirrorNames(v.Mirrors),
	}
}

func RoomToJSON(g RoomGeometry, r VirtualRoom) RoomJSON {
	return RoomJSON{
		Position: PointToJSON(r.Position),
		Width:    g.Width,
		Height:   g.Height,
		Mirrors:  mirrorNames(r.Mirrors.Active()),
		Depth:    r.Depth,
		Opacity:  r.Opacity,
	}
}

func PathToJSON(p RayPath) PathJSON {
	points := make([]PointJSON, len(p))
	for i, v := range p {
		points[i] = PointToJSON(v)
	}
	if len(points) > 0 {
		points[0].Name = "source"
		points[len(points)-1].Name = "viewer"
	}
	return PathJSON{
		Points:   points,
		Distance: p.Length(),
		Color:    "#FFC107",
	}
}

func TouchAreaToJSON(t TouchArea) TouchAreaJSON {
	color := "#F44336"
	if t.Correct {
		color = "#4CAF50"
	}
	return TouchAreaJSON{
		ID:       t.ID,
		Position: PointToJSON(t.Position),
		Correct:  t.Correct,
		Radius:   t.Radius,
		Color:    color,
	}
}

// BuildExport converts a catalog, its traced paths and the puzzle's touch areas to
// their JSON form. Paths with fewer than two points are skipped.
func BuildExport(g RoomGeometry, catalog Catalog, paths []RayPath, areas []TouchArea) ExportJSON {
	export := ExportJSON{
		Images:     make([]ImageJSON, 0, len(catalog.Images)),
		Rooms:      make([]RoomJSON, 0, len(catalog.Rooms)),
		Paths:      make([]PathJSON, 0, len(paths)),
		TouchAreas: make([]TouchAreaJSON, 0, len(areas)),
	}
	for _, image := range catalog.Images {
		export.Images = append(export.Images, ImageToJSON(image))
	}
	for _, room := range catalog.Rooms {
		export.Rooms = append(export.Rooms, RoomToJSON(g, room))
	}
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		export.Paths = append(export.Paths, PathToJSON(path))
	}
	for _, area := range areas {
		export.TouchAreas = append(export.TouchAreas, TouchAreaToJSON(area))
	}
	return export
}

// SaveCatalogToJSON writes the catalog, ray paths and touch areas to a JSON file
func SaveCatalogToJSON(filename string, g RoomGeometry, catalog Catalog, paths []RayPath, areas []TouchArea) error {
	data, err := json.MarshalIndent(BuildExport(g, catalog, paths, areas), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling catalog: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
