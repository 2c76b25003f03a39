package assemble

import (
	"sort"

	"zappem.net/pub/cad/contour/internal/model"
)

// DenseFastPath recognizes heavily-perforated sheets. When the arena
// holds at least cfg.DenseLoopThreshold candidate loops, it looks for a
// single dominant outer with a dense cloud of small interior holes
// and, if the density requirements are met, emits one Shape directly
// -- short-circuiting the rest of the hierarchy/pseudo-hole/assembler
// pipeline. ok is false when the fast path does not apply, in which
// case the caller should run the general pipeline instead.
func DenseFastPath(arena *model.Arena, sourceBBoxArea float64, cfg model.Config) (model.Shape, bool) {
	idxs := arena.Active()
	if len(idxs) < cfg.DenseLoopThreshold {
		return model.Shape{}, false
	}

	outerIdx := -1
	var outerArea float64
	for _, i := range idxs {
		if a := arena.Loops[i].Area(); outerIdx < 0 || a > outerArea {
			outerIdx = i
			outerArea = a
		}
	}
	if outerIdx < 0 || outerArea < cfg.DenseOuterAreaRatio*sourceBBoxArea {
		return model.Shape{}, false
	}
	outer := arena.Loops[outerIdx]

	type cand struct {
		pts    []model.Point
		center model.Point
		area   float64
	}
	var children []cand
	var minDims []float64
	for _, i := range idxs {
		if i == outerIdx {
			continue
		}
		l := arena.Loops[i]
		if l.Area() > cfg.DenseChildAreaRatio*sourceBBoxArea {
			continue
		}
		sample, hasSample := l.Sample, l.HasSample
		if !hasSample {
			// the fast path runs before hierarchy resolution has set samples
			sample, hasSample = interiorSampleOf(l.Open)
		}
		if !hasSample || !outer.BBox.Contains(sample) || !model.PointInPolygonStrict(sample, outer.Open) {
			continue
		}
		center, ok := model.Centroid(l.Open)
		if !ok {
			center = model.Mean(l.Open)
		}
		children = append(children, cand{pts: l.Open, center: center, area: l.Area()})
		minDims = append(minDims, l.BBox.MinSide())
	}
	if len(children) < cfg.DenseMinChildren {
		return model.Shape{}, false
	}

	medianMinDim := median(minDims)
	quant := model.Clamp(medianMinDim*cfg.DenseQuantFactor, cfg.DenseQuantMin, cfg.DenseQuantMax)

	type cell struct{ x, y int64 }
	best := map[cell]cand{}
	for _, c := range children {
		ck := cell{x: int64(c.center.X / quant), y: int64(c.center.Y / quant)}
		if prev, ok := best[ck]; !ok || c.area > prev.area {
			best[ck] = c
		}
	}
	if len(best) < cfg.DenseMinDedupedHoles {
		return model.Shape{}, false
	}

	shape := model.Shape{Outer: orientCCW(outer.Open)}
	for _, c := range best {
		shape.Holes = append(shape.Holes, orientCW(c.pts))
	}
	return shape, true
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
