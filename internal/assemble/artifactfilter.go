package assemble

import "zappem.net/pub/cad/contour/internal/model"

// bboxOf returns the bounding box of an outer loop's points.
func bboxOf(pts []model.Point) model.BBox {
	return model.BoundPoints(pts)
}

func bboxOverlapFraction(a, b model.BBox) float64 {
	ix0, iy0 := max(a.MinX, b.MinX), max(a.MinY, b.MinY)
	ix1, iy1 := min(a.MaxX, b.MaxX), min(a.MaxY, b.MaxY)
	if ix1 <= ix0 || iy1 <= iy0 {
		return 0
	}
	inter := (ix1 - ix0) * (iy1 - iy0)
	bArea := b.Area()
	if bArea <= 0 {
		return 0
	}
	return inter / bArea
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// ArtifactOverlayFilter runs when several shapes were emitted and the
// dominant one looks like a dense perforated pattern: every
// non-dominant shape nested inside the dominant outer is tested
// against density/overlap rules and dropped if it fails. If
// everything that survives is nested inside the dominant shape and
// looks like filter/registration artwork rather than a separate part,
// the whole output collapses to the dominant shape alone.
func ArtifactOverlayFilter(shapes []model.Shape, sourceBBoxArea float64, cfg model.Config) []model.Shape {
	if len(shapes) < 2 {
		return shapes
	}
	domIdx := DominantShape(shapes)
	if domIdx < 0 {
		return shapes
	}
	dominant := shapes[domIdx]
	if len(dominant.Holes) < cfg.ArtifactDominantMinHoles || dominant.Area() < cfg.ArtifactDominantAreaRatio*sourceBBoxArea {
		return shapes
	}
	domBBox := bboxOf(dominant.Outer)
	domDensity := float64(len(dominant.Holes)) / dominant.Area()

	kept := []model.Shape{dominant}
	var others []model.Shape
	for i, s := range shapes {
		if i == domIdx {
			continue
		}
		sample, ok := interiorSampleOf(s.Outer)
		if !ok || !model.PointInPolygonStrict(sample, dominant.Outer) {
			kept = append(kept, s)
			others = append(others, s)
			continue
		}
		areaRatio := s.Area() / dominant.Area()
		if areaRatio < cfg.ArtifactAreaRatioMin || areaRatio > cfg.ArtifactAreaRatioMax {
			kept = append(kept, s)
			others = append(others, s)
			continue
		}
		density := 0.0
		if s.Area() > 0 {
			density = float64(len(s.Holes)) / s.Area()
		}
		densityRatio := 1.0
		if domDensity > 0 {
			densityRatio = density / domDensity
		}
		sparse := densityRatio < cfg.ArtifactDensityRatio || len(s.Holes) <= cfg.ArtifactMaxOwnHoles
		if !sparse {
			kept = append(kept, s)
			others = append(others, s)
			continue
		}
		overlap := bboxOverlapFraction(domBBox, bboxOf(s.Outer))
		qualifies := areaRatio >= cfg.ArtifactAreaRatioGate || overlap >= cfg.ArtifactBBoxOverlap || len(s.Holes) <= cfg.ArtifactSingleHoleGate
		if qualifies {
			continue // dropped: artifact/overlay
		}
		kept = append(kept, s)
		others = append(others, s)
	}

	if len(others) > 0 && len(dominant.Holes) >= cfg.ArtifactCollapseMinHoles {
		allNested := true
		anyCollapseCandidate := false
		for _, s := range others {
			sample, ok := interiorSampleOf(s.Outer)
			if !ok || !model.PointInPolygonStrict(sample, dominant.Outer) {
				allNested = false
				break
			}
			areaRatio := s.Area() / dominant.Area()
			density := 0.0
			if s.Area() > 0 {
				density = float64(len(s.Holes)) / s.Area()
			}
			densityRatio := 1.0
			if domDensity > 0 {
				densityRatio = density / domDensity
			}
			if areaRatio >= cfg.ArtifactCollapseAreaRatio && densityRatio < cfg.ArtifactCollapseDensityRatio {
				anyCollapseCandidate = true
			}
		}
		if allNested && anyCollapseCandidate {
			return []model.Shape{dominant}
		}
	}

	return kept
}

func interiorSampleOf(pts []model.Point) (model.Point, bool) {
	if c, ok := model.Centroid(pts); ok && model.PointInPolygonStrict(c, pts) {
		return c, true
	}
	m := model.Mean(pts)
	if model.PointInPolygonStrict(m, pts) {
		return m, true
	}
	return model.Point{}, false
}
