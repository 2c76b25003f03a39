package contour

import (
	"math"

	"zappem.net/pub/cad/contour/internal/assemble"
	"zappem.net/pub/cad/contour/internal/clean"
	"zappem.net/pub/cad/contour/internal/compound"
	"zappem.net/pub/cad/contour/internal/diag"
	"zappem.net/pub/cad/contour/internal/hierarchy"
	"zappem.net/pub/cad/contour/internal/hull"
	"zappem.net/pub/cad/contour/internal/loopgraph"
	"zappem.net/pub/cad/contour/internal/model"
	"zappem.net/pub/cad/contour/internal/primitive"
)

// epsilonDimension is the minimum normalized width/height a document
// may have before it is considered empty.
const epsilonDimension = 1e-9

// Run reconstructs a Document from a stream of raw primitives. The
// only error it ever returns is ErrEmptyDocument: every other
// degeneracy is discarded internally and recorded as a diagnostic on
// the returned Document instead.
func Run(prims []Primitive, cfg Config) (Document, error) {
	rec := diag.New()
	doc, err := runPipeline(prims, cfg, false, rec)
	if err != nil {
		return Document{}, err
	}
	if len(doc.Shapes) == 0 {
		rec.Record(model.NoClosedEntity, "")
		if retry, rerr := runPipeline(prims, cfg, true, rec); rerr == nil && len(retry.Shapes) > 0 {
			retry.Diagnostics = rec.Items()
			return retry, nil
		}
	}
	doc.Diagnostics = rec.Items()
	return doc, nil
}

// runPipeline executes one full pass of the pipeline. forceRaw skips
// the quick reparse scan and runs directly in raw LINE/ARC mode
// (cluster filtering disabled), which the caller uses for the
// NoClosedRegion retry path.
func runPipeline(prims []Primitive, cfg Config, forceRaw bool, rec *diag.Recorder) (Document, error) {
	contours := primitive.Normalize(prims, cfg)
	contours = clean.Dedup(contours, cfg)
	if len(contours) == 0 {
		return Document{}, ErrEmptyDocument
	}

	rawMode := forceRaw || quickScanRawMode(contours, cfg)
	if rawMode {
		rec.Record(model.ReparsedAsRawLineArc, "")
	}

	stitched, autoClosed := clean.Stitch(contours, cfg)
	if autoClosed {
		rec.Record(model.AutoClosedOpenPolylines, "")
	}
	if !rawMode {
		stitched = clean.ClusterFilter(stitched, cfg)
	}

	bb, ok := boundAllContours(stitched)
	if !ok {
		return Document{}, ErrEmptyDocument
	}
	width, height := bb.MaxX-bb.MinX, bb.MaxY-bb.MinY
	if width <= epsilonDimension || height <= epsilonDimension {
		return Document{}, ErrEmptyDocument
	}
	translated := translateContours(stitched, bb.MinX, bb.MinY)
	sourceBBox := model.BBox{MinX: 0, MinY: 0, MaxX: width, MaxY: height}
	sourceArea := sourceBBox.Area()

	allPoints := allContourPoints(translated)

	loopPts := collectLoops(translated, cfg)
	loopPts = splitCompoundLoops(loopPts, cfg)

	arena := model.NewArena(loopPts)

	if shape, ok := assemble.DenseFastPath(arena, sourceArea, cfg); ok {
		rec.Record(model.DenseFastPathTaken, "")
		return finishDocument(width, height, []model.Shape{shape}, allPoints), nil
	}

	hierarchy.Resolve(arena, cfg)

	if hull.FragmentedSheet(arena, sourceBBox, cfg) {
		arena = rebuildWithHullAndTinyLoops(arena, allPoints, sourceArea, cfg)
		hierarchy.Resolve(arena, cfg)
	} else if hull.Gate(arena, sourceArea, cfg) {
		if hullPts := hull.ConvexHull(allPoints); hullPts != nil {
			arena.Add(hullPts)
			hierarchy.Resolve(arena, cfg)
			rec.Record(model.UsedHullFallback, "")
		}
	}

	hierarchy.NormalizePseudoHoles(arena, cfg)

	shapes := assemble.Assemble(arena)
	shapes = assemble.ArtifactOverlayFilter(shapes, sourceArea, cfg)

	if len(shapes) == 0 {
		shapes = openContourFallbackShapes(translated)
	}

	return finishDocument(width, height, shapes, allPoints), nil
}

// quickScanRawMode implements the reparse-policy quick scan: raw
// LINE/ARC mode (cluster filtering disabled) triggers when at least
// ReparseMinOpenContours open contours survive and the largest closed
// contour's area is small relative to the overall bounding box. This
// preserves borders built entirely from LINE/ARC primitives that the
// cluster filter would otherwise discard as stray artwork.
func quickScanRawMode(contours []model.Contour, cfg model.Config) bool {
	bb, ok := boundAllContours(contours)
	if !ok {
		return false
	}
	area := bb.Area()
	if area <= 0 {
		return false
	}
	openCount := 0
	var maxClosedArea float64
	for _, c := range contours {
		if c.Closed {
			if a := c.Area(); a > maxClosedArea {
				maxClosedArea = a
			}
		} else {
			openCount++
		}
	}
	return openCount >= cfg.ReparseMinOpenContours && maxClosedArea < cfg.ReparseMaxClosedAreaRatio*area
}

func boundAllContours(contours []model.Contour) (model.BBox, bool) {
	pts := allContourPoints(contours)
	if len(pts) == 0 {
		return model.BBox{}, false
	}
	return model.BoundPoints(pts), true
}

func allContourPoints(contours []model.Contour) []model.Point {
	var pts []model.Point
	for _, c := range contours {
		pts = append(pts, c.Points...)
	}
	return pts
}

func translateContours(contours []model.Contour, dx, dy float64) []model.Contour {
	out := make([]model.Contour, len(contours))
	for i, c := range contours {
		pts := make([]model.Point, len(c.Points))
		for j, p := range c.Points {
			pts[j] = model.Point{X: p.X - dx, Y: p.Y - dy}
		}
		out[i] = model.Contour{Points: pts, Closed: c.Closed}
	}
	return out
}

// collectLoops separates already-closed contours (used directly as
// loop candidates) from open contours, which are decomposed into
// segments and fed to the loop extractor. When segment extraction
// finds nothing, it falls back to a single-tolerance open-contour
// stitch and keeps the chains that close.
func collectLoops(contours []model.Contour, cfg model.Config) [][]model.Point {
	var loops [][]model.Point
	var openContours []model.Contour
	for _, c := range contours {
		if c.Closed {
			loops = append(loops, c.Points)
		} else {
			openContours = append(openContours, c)
		}
	}
	if len(openContours) == 0 {
		return loops
	}

	var segments []model.Segment
	for _, c := range openContours {
		segments = append(segments, model.SegmentsFromContour(c)...)
	}
	extracted := loopgraph.Extract(segments, cfg)
	if len(extracted) > 0 {
		return append(loops, extracted...)
	}

	bb, ok := boundAllContours(openContours)
	if !ok {
		return loops
	}
	minSide := math.Max(1, bb.MinSide())
	tol := model.Clamp(minSide*cfg.StitchFallbackFactor, cfg.StitchFallbackMin, cfg.StitchFallbackMax)
	restitched, _ := clean.StitchAtTol(openContours, tol)
	for _, c := range restitched {
		if c.Closed {
			loops = append(loops, c.Points)
		}
	}
	return loops
}

func splitCompoundLoops(loopPts [][]model.Point, cfg model.Config) [][]model.Point {
	var out [][]model.Point
	for _, pts := range loopPts {
		if compound.Suspicious(pts, cfg) {
			out = append(out, compound.Split(pts, cfg)...)
		} else {
			out = append(out, pts)
		}
	}
	return out
}

// rebuildWithHullAndTinyLoops implements the fragmented-sheet
// alternative trigger: the loop set is replaced with the surviving
// tiny loops plus a convex hull of all input points, ready for a
// second hierarchy resolution pass.
func rebuildWithHullAndTinyLoops(arena *model.Arena, allPoints []model.Point, sourceArea float64, cfg model.Config) *model.Arena {
	var keep [][]model.Point
	for _, l := range arena.Loops {
		if l.Skip {
			continue
		}
		if l.Area() <= cfg.FragTinyAreaRatio*sourceArea {
			keep = append(keep, l.Open)
		}
	}
	if hullPts := hull.ConvexHull(allPoints); hullPts != nil {
		keep = append(keep, hullPts)
	}
	return model.NewArena(keep)
}

// openContourFallbackShapes is the last-resort NoClosedRegion
// recovery: emit one outer-only shape per closed contour that
// survived cleaning, with no holes, rather than an empty result.
func openContourFallbackShapes(contours []model.Contour) []model.Shape {
	var shapes []model.Shape
	for _, c := range contours {
		if !c.Closed || len(c.Points) < 3 {
			continue
		}
		outer := c.Points
		if model.SignedArea(outer) < 0 {
			outer = model.Reversed(outer)
		}
		shapes = append(shapes, model.Shape{Outer: outer})
	}
	return shapes
}

func finishDocument(width, height float64, shapes []model.Shape, allPoints []model.Point) Document {
	doc := Document{Width: width, Height: height, Shapes: shapes}
	if best := assemble.DominantShape(shapes); best >= 0 {
		doc.PrimarySelectionLoop = shapes[best].Outer
	} else if hullPts := hull.ConvexHull(allPoints); hullPts != nil {
		doc.PrimarySelectionLoop = hullPts
	}
	return doc
}
