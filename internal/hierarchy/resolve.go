package hierarchy

import "zappem.net/pub/cad/contour/internal/model"

// Resolve computes each loop's smallest-area enclosing parent: the
// candidate j with the least area(j) such that area(j) >
// area(i)+HierarchyAreaEpsilon, bbox(j) contains loop i's interior
// sample, and that sample is strictly inside j's closed point list.
// Parent is left at -1 when no enclosing loop exists. Depth is
// computed iteratively (repeated relaxation outward from the roots)
// rather than by recursion, to stay safe on flat/wide trees with many
// siblings.
func Resolve(arena *model.Arena, cfg model.Config) {
	idxs := arena.Active()
	samples := make([]model.Point, len(arena.Loops))
	hasSample := make([]bool, len(arena.Loops))
	for _, i := range idxs {
		l := arena.Loops[i]
		if p, ok := InteriorSample(l.Open); ok {
			samples[i] = p
			hasSample[i] = true
			l.Sample = p
			l.HasSample = true
		}
	}

	for _, i := range idxs {
		if !hasSample[i] {
			arena.Loops[i].Parent = -1
			continue
		}
		li := arena.Loops[i]
		bestJ := -1
		var bestArea float64
		for _, j := range idxs {
			if i == j {
				continue
			}
			lj := arena.Loops[j]
			if lj.Area() <= li.Area()+cfg.HierarchyAreaEpsilon {
				continue
			}
			if !lj.BBox.Contains(samples[i]) {
				continue
			}
			if !model.PointInPolygonStrict(samples[i], lj.Open) {
				continue
			}
			if bestJ < 0 || lj.Area() < bestArea {
				bestJ = j
				bestArea = lj.Area()
			}
		}
		li.Parent = bestJ
	}

	RecomputeDepths(arena)
}

// RecomputeDepths walks the parent links iteratively (each loop's
// depth is 1 + its parent's depth, roots at 0), resolved from the
// roots downward by repeated passes, without recursion, so
// arbitrarily flat/wide trees never grow the call stack.
func RecomputeDepths(arena *model.Arena) {
	n := len(arena.Loops)
	depth := make([]int, n)
	resolved := make([]bool, n)
	for i, l := range arena.Loops {
		if l.Parent < 0 {
			depth[i] = 0
			resolved[i] = true
		}
	}
	changed := true
	for changed {
		changed = false
		for i, l := range arena.Loops {
			if resolved[i] || l.Parent < 0 {
				continue
			}
			if resolved[l.Parent] {
				depth[i] = depth[l.Parent] + 1
				resolved[i] = true
				changed = true
			}
		}
	}
	for i, l := range arena.Loops {
		if resolved[i] {
			l.Depth = depth[i]
		} else {
			// a parent cycle would indicate a bug upstream; fall back
			// to root depth rather than loop forever.
			l.Depth = 0
			l.Parent = -1
		}
	}
}
