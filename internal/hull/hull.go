// Package hull provides an optional convex hull of all input points,
// injected as a synthetic outer loop, gated by "no likely outer
// exists" and "no strong container contour" checks, plus the
// fragmented-sheet alternative trigger. The hull itself is a standard
// Andrew monotone chain.
package hull

import (
	"sort"

	"zappem.net/pub/cad/contour/internal/model"
)

// ConvexHull returns the convex hull of pts in CCW order using the
// monotone chain algorithm. Collinear points on the chain are
// dropped. Returns nil when fewer than 3 distinct points are given.
func ConvexHull(pts []model.Point) []model.Point {
	uniq := dedupe(pts)
	if len(uniq) < 3 {
		return nil
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].X != uniq[j].X {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Y < uniq[j].Y
	})

	cross := func(o, a, b model.Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var lower, upper []model.Point
	for _, p := range uniq {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil
	}
	return hull
}

func dedupe(pts []model.Point) []model.Point {
	seen := map[model.Point]bool{}
	var out []model.Point
	for _, p := range pts {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// StrongContainer reports whether some loop in the arena contains at
// least min(HullContainerMinContained, n-1) of the other loops'
// interior samples, and has area at least
// max(HullContainerAreaMultiple*secondLargest,
// HullContainerAreaRatio*sourceBBoxArea).
func StrongContainer(arena *model.Arena, sourceBBoxArea float64, cfg model.Config) bool {
	idxs := arena.Active()
	n := len(idxs)
	if n < 2 {
		return false
	}
	need := cfg.HullContainerMinContained
	if n-1 < need {
		need = n - 1
	}

	areas := make([]float64, 0, n)
	for _, i := range idxs {
		areas = append(areas, arena.Loops[i].Area())
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(areas)))
	var second float64
	if len(areas) > 1 {
		second = areas[1]
	}

	for _, i := range idxs {
		li := arena.Loops[i]
		contained := 0
		for _, j := range idxs {
			if i == j {
				continue
			}
			lj := arena.Loops[j]
			if !lj.HasSample {
				continue
			}
			if li.BBox.Contains(lj.Sample) && model.PointInPolygonStrict(lj.Sample, li.Open) {
				contained++
			}
		}
		threshold := cfg.HullContainerAreaMultiple * second
		if floor := cfg.HullContainerAreaRatio * sourceBBoxArea; floor > threshold {
			threshold = floor
		}
		if contained >= need && li.Area() >= threshold {
			return true
		}
	}
	return false
}

// Gate reports whether the hull fallback should be injected: no
// existing loop has meaningful area, AND either the largest loop is
// tiny or there is no strong container contour.
func Gate(arena *model.Arena, sourceBBoxArea float64, cfg model.Config) bool {
	if !cfg.EnableHullFallback {
		return false
	}
	idxs := arena.Active()
	if len(idxs) == 0 {
		return true
	}
	var maxArea float64
	for _, i := range idxs {
		if a := arena.Loops[i].Area(); a > maxArea {
			maxArea = a
		}
	}
	if maxArea > cfg.HullNoOuterAreaRatio*sourceBBoxArea {
		return false
	}
	if maxArea <= cfg.HullMaxLoopAreaRatio*sourceBBoxArea {
		return true
	}
	return !StrongContainer(arena, sourceBBoxArea, cfg)
}

// FragmentedSheet reports whether the fragmented-sheet alternative
// trigger fires: at least 3 root loops all touch the source bbox
// within the touch tolerance, at least FragTinyCount tiny loops
// exist, and the largest root loop is still small relative to the
// source bbox.
func FragmentedSheet(arena *model.Arena, sourceBBox model.BBox, cfg model.Config) bool {
	idxs := arena.Active()
	sourceArea := sourceBBox.Area()
	if sourceArea <= 0 {
		return false
	}
	touchTol := cfg.FragTouchFloor
	if ms := sourceBBox.MinSide() * cfg.FragTouchFactor; ms > touchTol {
		touchTol = ms
	}

	rootsTouching := 0
	var largestRoot float64
	tinyCount := 0
	for _, i := range idxs {
		l := arena.Loops[i]
		if l.Parent == -1 {
			if touchesBBox(l.BBox, sourceBBox, touchTol) {
				rootsTouching++
			}
			if l.Area() > largestRoot {
				largestRoot = l.Area()
			}
		}
		if l.Area() <= cfg.FragTinyAreaRatio*sourceArea {
			tinyCount++
		}
	}
	return rootsTouching >= 3 && tinyCount >= cfg.FragTinyCount && largestRoot < cfg.FragLargestRootRatio*sourceArea
}

func touchesBBox(l, outer model.BBox, tol float64) bool {
	return abs(l.MinX-outer.MinX) <= tol || abs(l.MaxX-outer.MaxX) <= tol ||
		abs(l.MinY-outer.MinY) <= tol || abs(l.MaxY-outer.MaxY) <= tol
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
