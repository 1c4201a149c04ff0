package config

// PuzzleConfig represents the complete configuration for a mirror room puzzle
type PuzzleConfig struct {
	Metadata   Metadata   `yaml:"metadata"`
	Room       Room       `yaml:"room"`
	Objects    Objects    `yaml:"objects"`
	Simulation Simulation `yaml:"simulation"`
	TouchAreas TouchAreas `yaml:"touch_areas"`
	Content    Content    `yaml:"content"`
	Output     Output     `yaml:"output"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Room struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Mirrors Mirrors `yaml:"mirrors"`
}

type Mirrors struct {
	Top    bool `yaml:"top"`
	Right  bool `yaml:"right"`
	Bottom bool `yaml:"bottom"`
	Left   bool `yaml:"left"`
}

// Objects holds the real positions as [x, y] pairs in room coordinates.
type Objects struct {
	Triangle [2]float64 `yaml:"triangle"`
	Viewer   [2]float64 `yaml:"viewer"`
}

type Simulation struct {
	MaxDepth int `yaml:"max_depth"`
}

type TouchAreas struct {
	Inline   []TouchArea `yaml:"inline,omitempty"`
	FromFile string      `yaml:"from_file,omitempty"`
}

type TouchArea struct {
	ID       string     `yaml:"id" json:"id"`
	Position [2]float64 `yaml:"position" json:"position"`
	Correct  bool       `yaml:"correct" json:"correct"`
	Radius   float64    `yaml:"radius" json:"radius"`
}

type Content struct {
	ProblemText       string `yaml:"problem_text"`
	ExplanationText   string `yaml:"explanation_text"`
	CorrectFeedback   string `yaml:"correct_feedback"`
	IncorrectFeedback string `yaml:"incorrect_feedback"`
}

type Output struct {
	Directory string `yaml:"directory"`
	ImageSize int    `yaml:"image_size"` // pixels per side of rendered PNGs
}
