package hierarchy

import "zappem.net/pub/cad/contour/internal/model"

// insets returns the (left, right, bottom, top) offsets of child's
// bbox from parent's bbox; each is how far child's edge sits inside
// parent's edge on that side.
func insets(parent, child model.BBox) (left, right, bottom, top float64) {
	left = child.MinX - parent.MinX
	right = parent.MaxX - child.MaxX
	bottom = child.MinY - parent.MinY
	top = parent.MaxY - child.MaxY
	return
}

func minOf4(a, b, c, d float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if d < m {
		m = d
	}
	return m
}

func maxOf4(a, b, c, d float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	if d > m {
		m = d
	}
	return m
}

// isBorderOffset reports whether child sits as a near-uniform inset
// of parent: every inset is non-negative (within tolerance) and no
// larger than the configured border-thickness bound.
func isBorderOffset(parent, child model.BBox, cfg model.Config) bool {
	l, r, b, t := insets(parent, child)
	if minOf4(l, r, b, t) < -1e-4 {
		return false
	}
	w, h := parent.MaxX-parent.MinX, parent.MaxY-parent.MinY
	minSide := w
	if h < minSide {
		minSide = h
	}
	maxInset := cfg.InsetFloor
	if minSide*cfg.InsetFactor > maxInset {
		maxInset = minSide * cfg.InsetFactor
	}
	return maxOf4(l, r, b, t) <= maxInset
}

// shouldSkipAsPseudoHole recognizes two shapes of false hole: a
// dominant near-duplicate hole with many tiny
// siblings, or a near-uniform border offset with enough descendants
// or tiny siblings to mark it as a duplicated inset rather than a
// real cutout.
func shouldSkipAsPseudoHole(arena *model.Arena, parentIdx, childIdx int, cfg model.Config) bool {
	parent := arena.Loops[parentIdx]
	child := arena.Loops[childIdx]
	if parent.Area() <= 0 {
		return false
	}
	areaRatio := child.Area() / parent.Area()

	siblings := arena.ChildrenOf(parentIdx)
	tinyCount := 0
	for _, s := range siblings {
		if s == childIdx {
			continue
		}
		sl := arena.Loops[s]
		if sl.Area()/parent.Area() < cfg.TinyHoleAreaRatio {
			tinyCount++
		}
	}

	if areaRatio > cfg.PseudoHoleAreaRatioHigh && tinyCount >= cfg.PseudoHoleMinTinySiblingsA {
		return true
	}

	if isBorderOffset(parent.BBox, child.BBox, cfg) {
		descendants := len(arena.ChildrenOf(childIdx))
		if descendants >= cfg.PseudoHoleMinDescendants {
			return true
		}
		if tinyCount >= cfg.PseudoHoleMinTinySiblingsB {
			return true
		}
		if areaRatio > cfg.PseudoHoleAreaRatioB && tinyCount >= cfg.PseudoHoleMinTinySiblingsC {
			return true
		}
	}
	return false
}

// NormalizePseudoHoles iterates up to cfg.PseudoHoleMaxPasses times:
// for every even-depth loop P and odd-depth child C, when C should be
// skipped as a pseudo-hole, C's own children are re-parented to P and
// C is marked Parent=-1, Skip=true. Depths are recomputed after each
// pass so parity stays correct for the real cutouts.
func NormalizePseudoHoles(arena *model.Arena, cfg model.Config) {
	for pass := 0; pass < cfg.PseudoHoleMaxPasses; pass++ {
		changed := false
		for pIdx, p := range arena.Loops {
			if p.Skip || p.Depth%2 != 0 {
				continue
			}
			for _, cIdx := range arena.ChildrenOf(pIdx) {
				c := arena.Loops[cIdx]
				if c.Skip || c.Depth%2 == 0 {
					continue
				}
				if shouldSkipAsPseudoHole(arena, pIdx, cIdx, cfg) {
					for _, gcIdx := range arena.ChildrenOf(cIdx) {
						arena.Loops[gcIdx].Parent = pIdx
					}
					c.Parent = -1
					c.Skip = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
		RecomputeDepths(arena)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
