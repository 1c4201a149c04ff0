package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"silvered", "polished", "bright", "hazy", "clear", "tilted", "curved",
		"distant", "facing", "folded", "glassy", "hidden", "inverted", "lucid",
		"mirrored", "narrow", "opposite", "pale", "quiet", "reversed", "shining",
		"slanted", "still", "twin", "upside", "vivid", "wandering", "endless",
		"faint", "doubled", "nested", "parallel", "gleaming", "crystal", "bent",
	}

	nouns = []string{
		"mirror", "pane", "glint", "echo", "beam", "ray", "prism", "lens",
		"corner", "wall", "window", "hall", "corridor", "image", "twin",
		"triangle", "viewer", "glance", "shadow", "spark", "reflection", "gaze",
		"horizon", "lantern", "candle", "surface", "facet", "portal", "room",
	}

	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// GenerateRunName creates a memorable run identifier
// in the format "adjective-noun"
func GenerateRunName() string {
	adj := adjectives[rng.Intn(len(adjectives))]
	noun := nouns[rng.Intn(len(nouns))]
	return adj + "-" + noun
}

// GenerateRunID creates a unique run identifier by combining
// the memorable name with a timestamp
func GenerateRunID() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return GenerateRunName() + "-" + timestamp
}
