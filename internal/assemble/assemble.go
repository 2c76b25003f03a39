// Package assemble is the terminal shape assembler (orienting outer
// loops CCW and holes CW), the dense-perforated fast path that
// short-circuits the general hierarchy machinery for
// heavily-perforated sheets, and the artifact-overlay filter that
// prunes spurious non-dominant shapes out of a multi-shape result.
// Orientation handling follows the CCW-shape/CW-hole convention:
// a loop is flipped by reversing its points after the first.
package assemble

import "zappem.net/pub/cad/contour/internal/model"

func orientCCW(pts []model.Point) []model.Point {
	if model.SignedArea(pts) < 0 {
		return model.Reversed(pts)
	}
	return append([]model.Point{}, pts...)
}

func orientCW(pts []model.Point) []model.Point {
	if model.SignedArea(pts) > 0 {
		return model.Reversed(pts)
	}
	return append([]model.Point{}, pts...)
}

// Assemble walks every non-skipped loop at even depth and emits a
// Shape with outer oriented CCW and every non-skipped odd-depth child
// oriented CW as a hole. Loops with fewer than 3 vertices after
// orientation are rejected.
func Assemble(arena *model.Arena) []model.Shape {
	var shapes []model.Shape
	for i, l := range arena.Loops {
		if l.Skip || l.Depth%2 != 0 {
			continue
		}
		outer := orientCCW(l.Open)
		if len(outer) < 3 {
			continue
		}
		var holes [][]model.Point
		for _, ci := range arena.ChildrenOf(i) {
			c := arena.Loops[ci]
			if c.Skip || c.Depth%2 == 0 {
				continue
			}
			hole := orientCW(c.Open)
			if len(hole) < 3 {
				continue
			}
			holes = append(holes, hole)
		}
		shapes = append(shapes, model.Shape{Outer: outer, Holes: holes})
	}
	return shapes
}

// DominantShape returns the index of the largest-area shape, or -1
// for an empty set.
func DominantShape(shapes []model.Shape) int {
	best := -1
	var bestArea float64
	for i, s := range shapes {
		if a := s.Area(); best < 0 || a > bestArea {
			best = i
			bestArea = a
		}
	}
	return best
}
