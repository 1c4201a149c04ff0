package room

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fogleman/gg"
)

// Margin around the scene, in world units.
const viewMargin = 20

// Scene is everything a View can draw.
type Scene struct {
	Room       Room
	Sources    Sources
	Catalog    Catalog
	Paths      []RayPath
	TouchAreas []TouchArea
}

type View struct {
	Scene Scene
	XSize int
	YSize int
	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

func (scene Scene) BoundingBox() (XMin, XMax, YMin, YMax float64) {
	points := Path2D{}
	g := scene.Room.Geometry
	points = append(points, VirtualRoom{}.Bounds(g)...)
	for _, room := range scene.Catalog.Rooms {
		points = append(points, room.Bounds(g)...)
	}
	for _, img := range scene.Catalog.Images {
		points = append(points, img.Position)
	}
	for _, path := range scene.Paths {
		points = append(points, path...)
	}
	for _, area := range scene.TouchAreas {
		points = append(points,
			area.Position.Translate(-area.Radius, -area.Radius),
			area.Position.Translate(area.Radius, area.Radius))
	}
	XMin, XMax, YMin, YMax = points.BoundingBox()
	return XMin - viewMargin, XMax + viewMargin, YMin - viewMargin, YMax + viewMargin
}

func (view *View) computeScaleAndTranslation() {
	XMin, XMax, YMin, YMax := view.Scene.BoundingBox()
	view.xTranslate = -XMin
	view.yTranslate = -YMin
	XScale := float64(view.XSize) / (XMax - XMin)
	YScale := float64(view.YSize) / (YMax - YMin)
	view.scale = math.Min(XScale, YScale)
}

func (view *View) getScale() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.scale
}

func (view *View) getXTranslate() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.xTranslate
}

func (view *View) getYTranslate() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.yTranslate
}

func (view *View) translateAndScale(p Point2D) Point2D {
	return p.Translate(view.getXTranslate(), view.getYTranslate()).Scale(view.getScale())
}

// fade keeps deep copies faintly visible; opacity goes negative past depth 3.
func fade(opacity float64) float64 {
	return math.Max(0.05, math.Min(1, opacity))
}

func (view *View) drawRoom(c *gg.Context, room VirtualRoom, alpha float64) {
	corners := room.Bounds(view.Scene.Room.Geometry)
	// walls in MirrorSide order: top, right, bottom, left
	for i, side := range AllSides {
		p1 := view.translateAndScale(corners[i])
		p2 := view.translateAndScale(corners[(i+1)%4])
		if room.Mirrors.Has(side) {
			c.SetRGBA(74/255.0, 144/255.0, 226/255.0, alpha)
			c.SetLineWidth(4)
		} else {
			c.SetRGBA(153/255.0, 153/255.0, 153/255.0, alpha)
			c.SetLineWidth(1)
		}
		c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		c.Stroke()
	}
}

func (view *View) drawTriangle(c *gg.Context, p Point2D, flippedX, flippedY bool, alpha float64) {
	pos := view.translateAndScale(p)
	// point up by default; a vertical flip points it down and a horizontal flip mirrors the lean
	rotation := -math.Pi / 2
	if flippedY {
		rotation = math.Pi / 2
	}
	if flippedX {
		rotation = math.Pi - rotation + 0.2
	}
	c.DrawRegularPolygon(3, pos.X, pos.Y, 10*view.getScale(), rotation)
	c.SetRGBA(1, 107/255.0, 107/255.0, alpha)
	c.FillPreserve()
	c.SetRGBA(214/255.0, 48/255.0, 49/255.0, alpha)
	c.SetLineWidth(2)
	c.Stroke()
}

func (view *View) drawViewer(c *gg.Context, p Point2D, alpha float64) {
	pos := view.translateAndScale(p)
	c.DrawCircle(pos.X, pos.Y, 8*view.getScale())
	c.SetRGBA(1, 1, 1, alpha)
	c.FillPreserve()
	c.SetRGBA(0, 0, 0, alpha)
	c.SetLineWidth(2)
	c.Stroke()
	c.DrawCircle(pos.X, pos.Y, 3*view.getScale())
	c.SetRGBA(51/255.0, 51/255.0, 51/255.0, alpha)
	c.Fill()
}

func (view *View) drawPath(c *gg.Context, path RayPath) {
	if len(path) < 2 {
		return
	}
	c.SetRGBA(1, 193/255.0, 7/255.0, 1)
	c.SetLineWidth(2)
	for i := 0; i < len(path)-1; i++ {
		p1 := view.translateAndScale(path[i])
		p2 := view.translateAndScale(path[i+1])
		c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		c.Stroke()
	}
	for _, point := range path[1 : len(path)-1] {
		b := view.translateAndScale(point)
		c.DrawCircle(b.X, b.Y, 3)
		c.Fill()
	}
	// mark the direction of travel halfway along the ray
	mid := view.translateAndScale(path.PointAt(path.Length() / 2))
	ahead := view.translateAndScale(path.PointAt(path.Length()/2 + 1))
	angle := math.Atan2(ahead.Y-mid.Y, ahead.X-mid.X)
	c.DrawRegularPolygon(3, mid.X, mid.Y, 6, angle)
	c.Fill()
}

func (view *View) drawTouchArea(c *gg.Context, area TouchArea) {
	pos := view.translateAndScale(area.Position)
	c.DrawCircle(pos.X, pos.Y, area.Radius*view.getScale())
	if area.Correct {
		c.SetRGBA(76/255.0, 175/255.0, 80/255.0, 0.2)
	} else {
		c.SetRGBA(244/255.0, 67/255.0, 54/255.0, 0.2)
	}
	c.FillPreserve()
	c.SetLineWidth(1)
	c.Stroke()
}

// Render draws the virtual rooms, images, touch areas and ray paths of the scene.
func (view *View) Render() image.Image {
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// deepest first so nearer copies draw on top
	rooms := view.Scene.Catalog.Rooms
	for i := len(rooms) - 1; i >= 0; i-- {
		view.drawRoom(c, rooms[i], fade(rooms[i].Opacity))
	}
	view.drawRoom(c, VirtualRoom{Mirrors: view.Scene.Room.Mirrors}, 1)

	for _, area := range view.Scene.TouchAreas {
		view.drawTouchArea(c, area)
	}

	images := view.Scene.Catalog.Images
	for i := len(images) - 1; i >= 0; i-- {
		img := images[i]
		switch img.Source {
		case Triangle:
			view.drawTriangle(c, img.Position, img.FlippedX, img.FlippedY, fade(img.Opacity))
		case Viewer:
			view.drawViewer(c, img.Position, fade(img.Opacity))
		}
	}

	for _, path := range view.Scene.Paths {
		view.drawPath(c, path)
	}

	view.drawTriangle(c, view.Scene.Sources.Triangle, false, false, 1)
	view.drawViewer(c, view.Scene.Sources.Viewer, 1)
	return c.Image()
}

// Save renders the scene and writes it to filename as a PNG.
func (view *View) Save(filename string) error {
	if err := gg.SavePNG(filename, view.Render()); err != nil {
		return fmt.Errorf("saving view: %w", err)
	}
	return nil
}

// PlotSightings draws a bar chart of the apparent distance of each sighting.
func PlotSightings(X, Y int, sightings []Sighting) (image.Image, error) {
	p := plot.New()
	p.Title.Text = "Virtual image distances"
	p.X.Label.Text = "Virtual image"
	p.Y.Label.Text = "Apparent distance"

	values := make(plotter.Values, len(sightings))
	names := make([]string, len(sightings))
	for i, s := range sightings {
		values[i] = s.Distance
		names[i] = fmt.Sprintf("%s d%d", s.Image.Source, s.Image.Depth)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, fmt.Errorf("building bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	w, err := p.WriterTo(vg.Length(X), vg.Length(Y), "png")
	if err != nil {
		return nil, fmt.Errorf("rendering plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("rendering plot: %w", err)
	}
	return png.Decode(&buf)
}
