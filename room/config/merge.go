package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeTouchAreas appends touch areas from FromFile whose id is not already inline
func (ta *TouchAreas) MergeTouchAreas() error {
	if ta.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(ta.FromFile)
	if err != nil {
		return fmt.Errorf("reading touch areas file: %w", err)
	}

	var fileAreas []TouchArea
	if err := json.Unmarshal(data, &fileAreas); err != nil {
		return fmt.Errorf("parsing touch areas file: %w", err)
	}

	// Inline entries take precedence
	for _, area := range fileAreas {
		if !ta.HasTouchArea(area.ID) {
			ta.Inline = append(ta.Inline, area)
		}
	}

	return nil
}

// HasTouchArea reports whether an inline touch area has the given id
func (ta *TouchAreas) HasTouchArea(id string) bool {
	for _, area := range ta.Inline {
		if area.ID == id {
			return true
		}
	}
	return false
}

// LoadAndMerge loads all external files and merges their contents
func (c *PuzzleConfig) LoadAndMerge() error {
	if err := c.TouchAreas.MergeTouchAreas(); err != nil {
		return fmt.Errorf("merging touch areas: %w", err)
	}
	return nil
}
