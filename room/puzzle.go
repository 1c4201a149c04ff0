package room

// DefaultTouchRadius is the radius of a touch area in world units.
const DefaultTouchRadius = 30

// ObjectPadding is how close the editor lets an object get to a wall.
const ObjectPadding = 20

// TouchArea is a circle the puzzle author marks as a right or wrong place to click.
type TouchArea struct {
	ID       string
	Position Point2D
	Correct  bool
	Radius   float64
}

// Contains reports whether p falls inside the touch area.
func (t TouchArea) Contains(p Point2D) bool {
	return t.Position.DistanceTo(p) <= t.Radius
}

// Content is the text shown alongside a puzzle.
type Content struct {
	ProblemText       string
	ExplanationText   string
	CorrectFeedback   string
	IncorrectFeedback string
}

func DefaultContent() Content {
	return Content{
		ProblemText:       "Click where you see reflections of the triangle",
		ExplanationText:   "Light bounces off mirrors to create virtual images. The virtual images appear at the same distance behind the mirror as the object is in front of it.",
		CorrectFeedback:   "Correct!",
		IncorrectFeedback: "Try again!",
	}
}

// CoveringTouchAreas returns the touch areas that contain the image's position.
func CoveringTouchAreas(areas []TouchArea, image VirtualImage) []TouchArea {
	covering := []TouchArea{}
	for _, area := range areas {
		if area.Contains(image.Position) {
			covering = append(covering, area)
		}
	}
	return covering
}
