// Package compound detects and repairs compound (self-retracing)
// loops, a single closed path that traces a perimeter more than once
// and would paint half a hole solid under even-odd fill. Suspicious
// loops are re-fed through the loop extractor at a tighter epsilon and
// the resulting subloops are deduplicated by quantized center, keeping
// the largest-area representative per cell.
package compound

import (
	"sort"

	"zappem.net/pub/cad/contour/internal/loopgraph"
	"zappem.net/pub/cad/contour/internal/model"
)

// Suspicious reports whether a loop looks compound: either some
// non-adjacent vertex repeats within cfg.CompoundRepeatTol, or the
// ratio of |signed area| to bbox area falls outside the plausible
// band for a simple polygon.
func Suspicious(pts []model.Point, cfg model.Config) bool {
	if repeatsNonAdjacent(pts, cfg.CompoundRepeatTol) {
		return true
	}
	bbArea := model.BoundPoints(pts).Area()
	if bbArea <= 0 {
		return false
	}
	area := abs(model.SignedArea(pts))
	ratio := area / bbArea
	return ratio < cfg.CompoundAreaRatioMin || ratio > cfg.CompoundAreaRatioMax
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func repeatsNonAdjacent(pts []model.Point, tol float64) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent via wraparound
			}
			if pts[i].Dist(pts[j]) < tol {
				return true
			}
		}
	}
	return false
}

// Split re-extracts a suspicious loop's own segments at the compound
// epsilons in cfg.CompoundEpsilons, then deduplicates the resulting
// subloops by quantized center (largest area wins per cell), sorted
// by area descending. When no split is found the original loop is
// returned unchanged, as a single-element slice.
func Split(pts []model.Point, cfg model.Config) [][]model.Point {
	segs := make([]model.Segment, 0, len(pts))
	for i := 0; i < len(pts); i++ {
		segs = append(segs, model.Segment{A: pts[i], B: pts[(i+1)%len(pts)]})
	}

	var sub [][]model.Point
	for _, eps := range cfg.CompoundEpsilons {
		c2 := cfg
		c2.LoopEpsilons = []float64{eps}
		sub = loopgraph.Extract(segs, c2)
		if len(sub) > 1 {
			break
		}
	}
	if len(sub) < 2 {
		return [][]model.Point{pts}
	}

	type cand struct {
		pts    []model.Point
		center model.Point
		area   float64
	}
	cands := make([]cand, 0, len(sub))
	var minDims []float64
	for _, s := range sub {
		if len(s) < 3 {
			continue
		}
		bb := model.BoundPoints(s)
		minDims = append(minDims, bb.MinSide())
		center, ok := model.Centroid(s)
		if !ok {
			center = model.Mean(s)
		}
		cands = append(cands, cand{pts: s, center: center, area: abs(model.SignedArea(s))})
	}
	if len(cands) == 0 {
		return [][]model.Point{pts}
	}

	medianMinDim := median(minDims)
	quant := model.Clamp(medianMinDim*cfg.CompoundQuantFactor, cfg.CompoundQuantMin, cfg.CompoundQuantMax)

	type cell struct{ x, y int64 }
	best := map[cell]cand{}
	for _, c := range cands {
		ck := cell{x: int64(c.center.X / quant), y: int64(c.center.Y / quant)}
		if prev, ok := best[ck]; !ok || c.area > prev.area {
			best[ck] = c
		}
	}

	out := make([][]model.Point, 0, len(best))
	for _, c := range best {
		out = append(out, c.pts)
	}
	sort.Slice(out, func(i, j int) bool {
		return abs(model.SignedArea(out[i])) > abs(model.SignedArea(out[j]))
	})
	return out
}

func median(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	cp := append([]float64{}, vs...)
	sort.Float64s(cp)
	n := len(cp)
	if n%2 == 1 {
		return cp[n/2]
	}
	return (cp[n/2-1] + cp[n/2]) / 2
}
