//go:build verify_reflections
// +build verify_reflections

package room

import (
	"fmt"
)

func init() {
	fmt.Println("Unfold tracing enabled.")
}

func traceStep(image VirtualImage, start, end Point2D, crossings []Crossing) {
	fmt.Printf("%s: segment {%.3f, %.3f} -> {%.3f, %.3f}\n", image.ID, start.X, start.Y, end.X, end.Y)
	if len(crossings) == 0 {
		fmt.Printf("%s: no more crossings, reached real source leg\n", image.ID)
		return
	}
	for _, c := range crossings {
		fmt.Printf("%s:   crosses %s at {%.3f, %.3f} t=%.4f\n", image.ID, c.Side, c.Point.X, c.Point.Y, c.T)
	}
}
