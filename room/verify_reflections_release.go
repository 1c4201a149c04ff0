//go:build !verify_reflections
// +build !verify_reflections

package room

// traceStep prints each unfold step when built with -tags verify_reflections.
func traceStep(image VirtualImage, start, end Point2D, crossings []Crossing) {}
