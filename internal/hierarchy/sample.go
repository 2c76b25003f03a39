// Package hierarchy assigns each loop its smallest enclosing parent
// loop (depth parity gives outer/hole), and flattens pseudo-holes --
// odd-depth loops that are really a duplicated border offset of their
// parent rather than a genuine cutout.
package hierarchy

import "zappem.net/pub/cad/contour/internal/model"

// InteriorSample returns the first of these candidates that is
// strictly inside the loop: centroid, mean of vertices, midpoint of
// the first edge, first vertex. The last two lie on the boundary, so
// the strict test rejects them; in practice only the centroid or the
// vertex mean can succeed. ok is false when no candidate is strictly
// inside (for example an L-shape whose centroid and vertex mean both
// fall in its notch).
func InteriorSample(pts []model.Point) (model.Point, bool) {
	if c, ok := model.Centroid(pts); ok && model.PointInPolygonStrict(c, pts) {
		return c, true
	}
	if m := model.Mean(pts); model.PointInPolygonStrict(m, pts) {
		return m, true
	}
	if len(pts) >= 2 {
		mid := model.Point{X: (pts[0].X + pts[1].X) / 2, Y: (pts[0].Y + pts[1].Y) / 2}
		if model.PointInPolygonStrict(mid, pts) {
			return mid, true
		}
	}
	if len(pts) > 0 && model.PointInPolygonStrict(pts[0], pts) {
		return pts[0], true
	}
	return model.Point{}, false
}
