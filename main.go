package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/fogleman/gg"

	"github.com/jdginn/go-mirror-room/interact"
	goroom "github.com/jdginn/go-mirror-room/room"
	"github.com/jdginn/go-mirror-room/room/config"
	"github.com/jdginn/go-mirror-room/room/experiment"
)

var CLI struct {
	Images   ImagesCmd   `cmd:"" help:"List the virtual images of a puzzle"`
	Trace    TraceCmd    `cmd:"" help:"Reconstruct the ray path behind one virtual image"`
	Render   RenderCmd   `cmd:"" help:"Render a puzzle to a PNG"`
	Plot     PlotCmd     `cmd:"" help:"Plot the apparent distance of every virtual image"`
	Export   ExportCmd   `cmd:"" help:"Save a merged and normalised copy of a puzzle"`
	Validate ValidateCmd `cmd:"" help:"Check a puzzle file for errors"`
	Interact InteractCmd `cmd:"" help:"Browse virtual images in the terminal"`
}

// puzzle is a loaded config turned into core values.
type puzzle struct {
	cfg     *config.PuzzleConfig
	room    goroom.Room
	sources goroom.Sources
	areas   []goroom.TouchArea
	content goroom.Content
	catalog goroom.Catalog
}

func loadPuzzle(path string) (*puzzle, error) {
	cfg, err := config.LoadFromFile(path, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return nil, err
	}
	room, err := cfg.Room.Create()
	if err != nil {
		return nil, err
	}
	sources := cfg.Objects.Create()
	catalog, err := room.VirtualImages(sources, cfg.Simulation.MaxDepth)
	if err != nil {
		return nil, err
	}
	return &puzzle{
		cfg:     cfg,
		room:    room,
		sources: sources,
		areas:   cfg.TouchAreas.Create(),
		content: cfg.Content.Create(),
		catalog: catalog,
	}, nil
}

func (p *puzzle) view(paths []goroom.RayPath) goroom.View {
	return goroom.View{
		Scene: goroom.Scene{
			Room:       p.room,
			Sources:    p.sources,
			Catalog:    p.catalog,
			Paths:      paths,
			TouchAreas: p.areas,
		},
		XSize: p.cfg.Output.ImageSize,
		YSize: p.cfg.Output.ImageSize,
	}
}

type ImagesCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	JSON   string `name:"json" help:"also export the catalog and every ray path to this JSON file"`
}

func (c ImagesCmd) Run() error {
	p, err := loadPuzzle(c.Config)
	if err != nil {
		return err
	}

	fmt.Println(p.content.ProblemText)
	fmt.Printf("%s, max depth %d\n", p.room, p.cfg.Simulation.MaxDepth)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEPTH\tX\tY\tFLIPS\tOPACITY\tTOUCH AREAS")
	paths := make([]goroom.RayPath, 0, len(p.catalog.Images))
	for _, image := range p.catalog.Images {
		flips := ""
		if image.FlippedX {
			flips += "x"
		}
		if image.FlippedY {
			flips += "y"
		}
		covering := []string{}
		for _, area := range goroom.CoveringTouchAreas(p.areas, image) {
			covering = append(covering, area.ID)
		}
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%s\t%.2f\t%s\n",
			image.ID, image.Depth, image.Position.X, image.Position.Y, flips, image.Opacity, strings.Join(covering, ","))

		path, err := p.room.TraceImage(image, p.sources)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.JSON != "" {
		if err := goroom.SaveCatalogToJSON(c.JSON, p.room.Geometry, p.catalog, paths, p.areas); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", c.JSON)
	}
	return nil
}

type TraceCmd struct {
	Config  string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	ImageID string `arg:"" name:"image-id" help:"id of the virtual image, e.g. triangle-d2-top-left"`
}

func (c TraceCmd) Run() error {
	p, err := loadPuzzle(c.Config)
	if err != nil {
		return err
	}
	if _, _, err := goroom.ParseImageID(c.ImageID); err != nil {
		return err
	}
	image, ok := p.catalog.Find(c.ImageID)
	if !ok {
		return fmt.Errorf("no virtual image %q at max depth %d", c.ImageID, p.cfg.Simulation.MaxDepth)
	}

	path, err := p.room.TraceImage(image, p.sources)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", image.ID, image.Label())
	for i, point := range path {
		label := "bounce"
		switch i {
		case 0:
			label = "source"
		case len(path) - 1:
			label = "viewer"
		}
		fmt.Printf("  %-7s (%.3f, %.3f)\n", label, point.X, point.Y)
	}
	virtual := image.Position.DistanceTo(p.sources.Viewer)
	fmt.Printf("path length %.3f, virtual distance %.3f, difference %.2g\n", path.Length(), virtual, path.Length()-virtual)
	if last, ok := image.LastMirror(); ok {
		fmt.Printf("final bounce off the %s mirror\n", last)
	}
	fmt.Println(p.content.ExplanationText)
	return nil
}

type RenderCmd struct {
	Config string   `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	Image  []string `name:"image" help:"draw the ray path of these virtual images"`
}

func (c RenderCmd) Run() error {
	p, err := loadPuzzle(c.Config)
	if err != nil {
		return err
	}

	paths := []goroom.RayPath{}
	for _, id := range c.Image {
		image, ok := p.catalog.Find(id)
		if !ok {
			return fmt.Errorf("no virtual image %q", id)
		}
		path, err := p.room.TraceImage(image, p.sources)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	run, err := experiment.CreateRunDirectory(p.cfg.Output.Directory)
	if err != nil {
		return err
	}
	if err := run.CopyConfigFile(c.Config); err != nil {
		return err
	}
	view := p.view(paths)
	if err := view.Save(run.GetFilePath("scene.png")); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", run.GetFilePath("scene.png"))
	return nil
}

type PlotCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
}

func (c PlotCmd) Run() error {
	p, err := loadPuzzle(c.Config)
	if err != nil {
		return err
	}
	sightings, err := goroom.Sightings(p.room, p.catalog, p.sources)
	if err != nil {
		return err
	}
	if len(sightings) == 0 {
		fmt.Println("No virtual images to plot")
		return nil
	}

	size := p.cfg.Output.ImageSize
	im, err := goroom.PlotSightings(size, size*3/4, sightings)
	if err != nil {
		return err
	}
	run, err := experiment.CreateRunDirectory(p.cfg.Output.Directory)
	if err != nil {
		return err
	}
	if err := run.CopyConfigFile(c.Config); err != nil {
		return err
	}
	if err := gg.SavePNG(run.GetFilePath("sightings.png"), im); err != nil {
		return err
	}
	for depth, s := range goroom.Nearest(sightings) {
		fmt.Printf("nearest at depth %d: %s, %.2f away\n", depth, s.Image.ID, s.Distance)
	}
	fmt.Printf("Wrote %s\n", run.GetFilePath("sightings.png"))
	return nil
}

type ExportCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	Out    string `arg:"" name:"out" help:"where to write the normalised puzzle"`
}

func (c ExportCmd) Run() error {
	cfg, err := config.LoadFromFile(c.Config, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return err
	}
	// touch areas from the side file are now inline
	cfg.TouchAreas.FromFile = ""
	resolver := config.NewPathResolver(filepath.Dir(c.Out))
	cfg.Output.Directory = resolver.Relativize(cfg.Output.Directory)

	if err := config.SaveToFile(cfg, c.Out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (commit %s)\n", c.Out, cfg.Metadata.GitCommit)
	return nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
}

func (c ValidateCmd) Run() error {
	cfg, err := config.LoadFromFile(c.Config, config.LoadOptions{
		ResolvePaths: true,
		MergeFiles:   true,
	})
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Print(config.FormatValidationErrors(errs))
		return fmt.Errorf("%s has %d validation errors", c.Config, len(errs))
	}
	fmt.Printf("%s is valid\n", c.Config)
	return nil
}

type InteractCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file" type:"existingfile"`
	Output string `name:"output" default:"selected.png" help:"PNG re-rendered on every selection"`
}

func (c InteractCmd) Run() error {
	p, err := loadPuzzle(c.Config)
	if err != nil {
		return err
	}
	sightings, err := goroom.Sightings(p.room, p.catalog, p.sources)
	if err != nil {
		return err
	}
	return interact.Interact(p.view(nil), sightings, c.Output)
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
