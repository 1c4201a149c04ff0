package config

import (
	goroom "github.com/jdginn/go-mirror-room/room"
)

const (
	DefaultMaxDepth  = 3
	MaxDepthLimit    = 5
	DefaultImageSize = 800
	DefaultOutputDir = "renders"
)

// Default returns the configuration of a fresh puzzle: a 200x200 room with no
// mirrors and the objects in their starting positions.
func Default() *PuzzleConfig {
	src := goroom.DefaultSources()
	content := goroom.DefaultContent()
	return &PuzzleConfig{
		Room: Room{
			Width:  goroom.DefaultWidth,
			Height: goroom.DefaultHeight,
		},
		Objects: Objects{
			Triangle: [2]float64{src.Triangle.X, src.Triangle.Y},
			Viewer:   [2]float64{src.Viewer.X, src.Viewer.Y},
		},
		Simulation: Simulation{MaxDepth: DefaultMaxDepth},
		Content: Content{
			ProblemText:       content.ProblemText,
			ExplanationText:   content.ExplanationText,
			CorrectFeedback:   content.CorrectFeedback,
			IncorrectFeedback: content.IncorrectFeedback,
		},
		Output: Output{
			Directory: DefaultOutputDir,
			ImageSize: DefaultImageSize,
		},
	}
}
