package config

import (
	goroom "github.com/jdginn/go-mirror-room/room"
)

func point(p [2]float64) goroom.Point2D {
	return goroom.P(p[0], p[1])
}

func (m Mirrors) Create() goroom.MirrorConfig {
	return goroom.MirrorConfig{m.Top, m.Right, m.Bottom, m.Left}
}

func (r Room) Create() (goroom.Room, error) {
	mirrors := r.Mirrors.Create()
	return goroom.NewRoom(goroom.RoomGeometry{Width: r.Width, Height: r.Height}, mirrors[:])
}

func (o Objects) Create() goroom.Sources {
	return goroom.Sources{
		Triangle: point(o.Triangle),
		Viewer:   point(o.Viewer),
	}
}

func (t TouchArea) Create() goroom.TouchArea {
	return goroom.TouchArea{
		ID:       t.ID,
		Position: point(t.Position),
		Correct:  t.Correct,
		Radius:   t.Radius,
	}
}

// Create returns the inline touch areas; call LoadAndMerge first to include from_file.
func (ta TouchAreas) Create() []goroom.TouchArea {
	areas := make([]goroom.TouchArea, len(ta.Inline))
	for i, area := range ta.Inline {
		areas[i] = area.Create()
	}
	return areas
}

func (c Content) Create() goroom.Content {
	return goroom.Content{
		ProblemText:       c.ProblemText,
		ExplanationText:   c.ExplanationText,
		CorrectFeedback:   c.CorrectFeedback,
		IncorrectFeedback: c.IncorrectFeedback,
	}
}
