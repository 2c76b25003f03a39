// Package primitive converts typed DXF-style primitives (Line, Arc,
// Circle, Polyline-with-bulge, Spline) into a uniform set of
// model.Contour values, discretizing all curvature to line segments
// by a sagitta-based chord-tolerance step formula.
package primitive

import (
	"math"

	"zappem.net/pub/cad/contour/internal/model"
)

// Normalize converts a stream of primitives into contours, silently
// dropping any primitive that fails validation: InvalidPrimitive is
// dropped locally, never propagated.
func Normalize(prims []model.Primitive, cfg model.Config) []model.Contour {
	out := make([]model.Contour, 0, len(prims))
	for _, p := range prims {
		c, ok := normalizeOne(p, cfg)
		if ok {
			out = append(out, c)
		}
	}
	return out
}

func normalizeOne(p model.Primitive, cfg model.Config) (model.Contour, bool) {
	switch p.Kind {
	case model.KindLine:
		return lineContour(p)
	case model.KindArc:
		return arcContour(p, cfg)
	case model.KindCircle:
		return circleContour(p, cfg)
	case model.KindPolyline:
		return polylineContour(p, cfg)
	case model.KindSpline:
		return splineContour(p)
	default:
		return model.Contour{}, false
	}
}

func validPoints(pts ...model.Point) bool {
	for _, p := range pts {
		if !p.Finite() {
			return false
		}
	}
	return true
}

func lineContour(p model.Primitive) (model.Contour, bool) {
	if !validPoints(p.A, p.B) {
		return model.Contour{}, false
	}
	if p.A.Dist(p.B) < 1e-9 {
		return model.Contour{}, false
	}
	return model.Contour{Points: []model.Point{p.A, p.B}, Closed: false}, true
}

// arcSagitta returns the chord-error cap s for a given radius:
// s = min(max(ArcSagittaCap, ArcSagittaFloor), r*0.5).
func arcSagitta(r float64, cfg model.Config) float64 {
	sagittaCap := math.Max(cfg.ArcSagittaCap, cfg.ArcSagittaFloor)
	return math.Min(sagittaCap, r*0.5)
}

// arcStepCount returns the number of segments needed to discretize a
// sweep of |sweepDeg| degrees at radius r within sagitta s, clamped
// to [ArcMinSteps, ArcMaxSteps].
func arcStepCount(sweepDeg, r float64, cfg model.Config) int {
	s := arcSagitta(r, cfg)
	ratio := model.Clamp(1-s/r, -1, 1)
	stepAngle := 2 * math.Acos(ratio)
	minStep := cfg.ArcMinStepDeg * math.Pi / 180
	if stepAngle < minStep {
		stepAngle = minStep
	}
	sweepRad := math.Abs(sweepDeg) * math.Pi / 180
	n := int(math.Ceil(sweepRad / stepAngle))
	if n < cfg.ArcMinSteps {
		n = cfg.ArcMinSteps
	}
	if n > cfg.ArcMaxSteps {
		n = cfg.ArcMaxSteps
	}
	return n
}

func arcContour(p model.Primitive, cfg model.Config) (model.Contour, bool) {
	if p.Radius <= 0 || !validPoints(p.Center) {
		return model.Contour{}, false
	}
	sweep := p.EndDeg - p.StartDeg
	for sweep <= 0 {
		sweep += 360
	}
	n := arcStepCount(sweep, p.Radius, cfg)
	pts := make([]model.Point, 0, n+1)
	startRad := p.StartDeg * math.Pi / 180
	sweepRad := sweep * math.Pi / 180
	for i := 0; i <= n; i++ {
		t := startRad + sweepRad*float64(i)/float64(n)
		pts = append(pts, model.Point{
			X: p.Center.X + p.Radius*math.Cos(t),
			Y: p.Center.Y + p.Radius*math.Sin(t),
		})
	}
	if len(pts) < 2 {
		return model.Contour{}, false
	}
	closed := sweep >= 360-1e-9
	return model.Contour{Points: pts, Closed: closed}, true
}

// circleVertCount returns the number of vertices to discretize a
// circle of radius r into: CircleTypicalVerts is the baseline
// resolution for ordinary circles, refined upward only when the
// sagitta tolerance demands more steps than that for a large radius,
// then clamped to [CircleMinVerts, ArcMaxSteps].
func circleVertCount(r float64, cfg model.Config) int {
	s := arcSagitta(r, cfg)
	ratio := model.Clamp(1-s/r, -1, 1)
	stepAngle := 2 * math.Acos(ratio)
	n := int(math.Ceil(2 * math.Pi / stepAngle))
	if n < cfg.CircleTypicalVerts {
		n = cfg.CircleTypicalVerts
	}
	if n < cfg.CircleMinVerts {
		n = cfg.CircleMinVerts
	}
	if n > cfg.ArcMaxSteps {
		n = cfg.ArcMaxSteps
	}
	return n
}

func circleContour(p model.Primitive, cfg model.Config) (model.Contour, bool) {
	if p.Radius <= 0 || !validPoints(p.Center) {
		return model.Contour{}, false
	}
	n := circleVertCount(p.Radius, cfg)
	pts := make([]model.Point, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = model.Point{
			X: p.Center.X + p.Radius*math.Cos(t),
			Y: p.Center.Y + p.Radius*math.Sin(t),
		}
	}
	return model.Contour{Points: pts, Closed: true}, true
}

// bulgeArc discretizes the bulge segment between p1 and p2 (bulge b)
// into intermediate points (excluding p1, including p2), per the
// central-angle convention theta = 4*atan(b): radius =
// chord/(2*sin(theta/2)), with the center offset perpendicular to
// the chord from its midpoint, on the side given by sign(b).
func bulgeArc(p1, p2 model.Point, b float64, cfg model.Config) []model.Point {
	if math.Abs(b) < 1e-12 {
		return []model.Point{p2}
	}
	theta := 4 * math.Atan(b)
	chord := p1.Dist(p2)
	halfChord := chord / 2
	sinHalf := math.Sin(theta / 2)
	if math.Abs(sinHalf) < 1e-12 || chord < 1e-12 {
		return []model.Point{p2}
	}
	r := math.Abs(halfChord / sinHalf)
	apothem := math.Sqrt(math.Max(r*r-halfChord*halfChord, 0))

	mid := model.Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	length := math.Hypot(dx, dy)
	px, py := -dy/length, dx/length // unit perpendicular to the chord
	sign := 1.0
	if b < 0 {
		sign = -1.0
	}
	center := model.Point{
		X: mid.X + px*apothem*sign,
		Y: mid.Y + py*apothem*sign,
	}

	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	a2 := a1 + theta
	n := int(math.Ceil(math.Abs(theta) * r / math.Max(cfg.BulgeChordFloor, 0.05)))
	if n < 2 {
		n = 2
	}
	pts := make([]model.Point, 0, n)
	for i := 1; i <= n; i++ {
		t := a1 + (a2-a1)*float64(i)/float64(n)
		pts = append(pts, model.Point{
			X: center.X + r*math.Cos(t),
			Y: center.Y + r*math.Sin(t),
		})
	}
	pts[len(pts)-1] = p2 // endpoint preserved exactly
	return pts
}

func polylineContour(p model.Primitive, cfg model.Config) (model.Contour, bool) {
	if len(p.Vertices) < 2 {
		return model.Contour{}, false
	}
	for _, v := range p.Vertices {
		if !validPoints(v.P) {
			return model.Contour{}, false
		}
	}
	pts := []model.Point{p.Vertices[0].P}
	n := len(p.Vertices)
	last := n - 1
	if p.Closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := p.Vertices[i%n]
		b := p.Vertices[(i+1)%n]
		pts = append(pts, bulgeArc(a.P, b.P, a.Bulge, cfg)...)
	}
	if len(pts) < 2 {
		return model.Contour{}, false
	}
	closed := p.Closed || pts[0].Dist(pts[len(pts)-1]) < 1e-6
	if closed && pts[0].Dist(pts[len(pts)-1]) < 1e-6 && len(pts) > 1 {
		pts = pts[:len(pts)-1] // drop duplicated closing point, Closed flag implies it
	}
	return model.Contour{Points: pts, Closed: closed}, true
}

// splineContour polylines through the control points (falling back
// to fit points when fewer than 2 control points are given). No
// NURBS evaluation is performed -- this is an intentional accuracy
// loss in exchange for robustness.
func splineContour(p model.Primitive) (model.Contour, bool) {
	pts := p.ControlPoints
	if len(pts) < 2 {
		pts = p.FitPoints
	}
	if len(pts) < 2 {
		return model.Contour{}, false
	}
	for _, pt := range pts {
		if !validPoints(pt) {
			return model.Contour{}, false
		}
	}
	closed := p.Closed || pts[0].Dist(pts[len(pts)-1]) < 1e-6
	cp := make([]model.Point, len(pts))
	copy(cp, pts)
	if closed && cp[0].Dist(cp[len(cp)-1]) < 1e-6 {
		cp = cp[:len(cp)-1]
	}
	return model.Contour{Points: cp, Closed: closed}, true
}
