package config

import (
	"fmt"
	"sort"
	"strings"

	goroom "github.com/jdginn/go-mirror-room/room"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateInsideRoom(field string, p [2]float64, room Room) []ValidationError {
	if p[0] <= 0 || p[0] >= room.Width || p[1] <= 0 || p[1] >= room.Height {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("position (%v, %v) must be strictly inside the %vx%v room", p[0], p[1], room.Width, room.Height),
		}}
	}
	g := goroom.RoomGeometry{Width: room.Width, Height: room.Height}
	if g.Clamp(point(p), goroom.ObjectPadding) != point(p) {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("position (%v, %v) must be at least %v from every wall", p[0], p[1], goroom.ObjectPadding),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	order := []string{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}
	sort.Strings(order)

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *PuzzleConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Room.Validate()...)
	if len(errors) == 0 {
		errors = append(errors, c.Objects.Validate(c.Room)...)
	}
	errors = append(errors, c.Simulation.Validate()...)
	errors = append(errors, c.TouchAreas.Validate()...)
	errors = append(errors, c.Output.Validate()...)
	return errors
}

func (r *Room) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive("room.width", r.Width)...)
	errors = append(errors, validatePositive("room.height", r.Height)...)
	return errors
}

func (o *Objects) Validate(room Room) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateInsideRoom("objects.triangle", o.Triangle, room)...)
	errors = append(errors, validateInsideRoom("objects.viewer", o.Viewer, room)...)
	if o.Triangle == o.Viewer {
		errors = append(errors, ValidationError{
			Field:   "objects",
			Message: "triangle and viewer must not share a position",
		})
	}
	return errors
}

func (s *Simulation) Validate() []ValidationError {
	return validateInRange("simulation.max_depth", float64(s.MaxDepth), 0, MaxDepthLimit)
}

func (ta *TouchAreas) Validate() []ValidationError {
	var errors []ValidationError

	seen := map[string]bool{}
	for i, area := range ta.Inline {
		if area.ID == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("touch_areas.inline[%d].id", i),
				Message: "id is required",
			})
		} else if seen[area.ID] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("touch_areas.inline.%s", area.ID),
				Message: "duplicate id",
			})
		}
		seen[area.ID] = true
		errors = append(errors, validatePositive(fmt.Sprintf("touch_areas.inline[%d].radius", i), area.Radius)...)
	}

	return errors
}

func (o *Output) Validate() []ValidationError {
	return validatePositive("output.image_size", float64(o.ImageSize))
}
