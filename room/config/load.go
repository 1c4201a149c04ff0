package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	goroom "github.com/jdginn/go-mirror-room/room"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a PuzzleConfig from a YAML file. Keys missing from the file
// keep the values from Default.
func LoadFromFile(path string, opts LoadOptions) (*PuzzleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		baseDir := filepath.Dir(path)
		resolver := NewPathResolver(baseDir)
		if err := config.ResolvePaths(resolver); err != nil {
			return nil, fmt.Errorf("resolving paths: %w", err)
		}
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}
	config.TouchAreas.applyDefaults()

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// SaveToFile saves a PuzzleConfig to a YAML file
func SaveToFile(config *PuzzleConfig, path string) error {
	// Update metadata before saving
	collector := NewMetadataCollector()
	collector.PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves all relative paths in the config against the config's directory
func (c *PuzzleConfig) ResolvePaths(resolver *PathResolver) error {
	if c.TouchAreas.FromFile != "" {
		if !resolver.FileExists(c.TouchAreas.FromFile) {
			return fmt.Errorf("touch areas file %q not found", c.TouchAreas.FromFile)
		}
		c.TouchAreas.FromFile = resolver.ResolvePath(c.TouchAreas.FromFile)
	}

	if c.Output.Directory != "" {
		c.Output.Directory = resolver.ResolvePath(c.Output.Directory)
	}

	return nil
}

func (ta *TouchAreas) applyDefaults() {
	for i := range ta.Inline {
		if ta.Inline[i].Radius == 0 {
			ta.Inline[i].Radius = goroom.DefaultTouchRadius
		}
	}
}
