package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectVerts(x0, y0, x1, y1 float64) []PolyVertex {
	return []PolyVertex{
		{P: Point{X: x0, Y: y0}},
		{P: Point{X: x1, Y: y0}},
		{P: Point{X: x1, Y: y1}},
		{P: Point{X: x0, Y: y1}},
	}
}

func polyline(x0, y0, x1, y1 float64) Primitive {
	return Primitive{Kind: KindPolyline, Vertices: rectVerts(x0, y0, x1, y1), Closed: true}
}

// assertShapeInvariants checks the quantified output invariants every
// run is expected to uphold: CCW outer / CW holes, holes nested
// strictly inside outer, and coordinates within the document canvas.
func assertShapeInvariants(t *testing.T, doc Document) {
	t.Helper()
	for si, s := range doc.Shapes {
		assert.Greaterf(t, SignedAreaOf(s.Outer), 0.0, "shape %d outer is not CCW", si)
		for hi, h := range s.Holes {
			assert.Lessf(t, SignedAreaOf(h), 0.0, "shape %d hole %d is not CW", si, hi)
		}
		for _, p := range s.Outer {
			assert.GreaterOrEqual(t, p.X, -1e-6)
			assert.GreaterOrEqual(t, p.Y, -1e-6)
			assert.LessOrEqual(t, p.X, doc.Width+1e-6)
			assert.LessOrEqual(t, p.Y, doc.Height+1e-6)
		}
	}
}

func TestRunSingleSquare(t *testing.T) {
	doc, err := Run([]Primitive{polyline(0, 0, 10, 10)}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 1)
	assert.InDelta(t, 10, doc.Width, 1e-6)
	assert.InDelta(t, 10, doc.Height, 1e-6)
	assert.Empty(t, doc.Shapes[0].Holes)
	assertShapeInvariants(t, doc)
}

func TestRunSquareWithCircleHole(t *testing.T) {
	outer := polyline(0, 0, 20, 20)
	hole := Primitive{Kind: KindCircle, Center: Point{X: 10, Y: 10}, Radius: 5}
	doc, err := Run([]Primitive{outer, hole}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 1)
	require.Len(t, doc.Shapes[0].Holes, 1)
	// per the engine's circle worked example, a typical-radius circle
	// discretizes to CircleTypicalVerts vertices, not the CircleMinVerts floor.
	assert.InDelta(t, DefaultConfig().CircleTypicalVerts, len(doc.Shapes[0].Holes[0]), 2)
	assertShapeInvariants(t, doc)
}

func TestRunOpenPolylineBorderWithGapsAutoCloses(t *testing.T) {
	// four separate open runs forming a square border with small gaps
	// at the corners, well within the stitch tolerance.
	prims := []Primitive{
		{Kind: KindPolyline, Vertices: []PolyVertex{{P: Point{X: 0, Y: 0}}, {P: Point{X: 10, Y: 0}}}},
		{Kind: KindPolyline, Vertices: []PolyVertex{{P: Point{X: 10, Y: 0.001}}, {P: Point{X: 10, Y: 10}}}},
		{Kind: KindPolyline, Vertices: []PolyVertex{{P: Point{X: 9.999, Y: 10}}, {P: Point{X: 0, Y: 10}}}},
		{Kind: KindPolyline, Vertices: []PolyVertex{{P: Point{X: 0, Y: 9.999}}, {P: Point{X: 0.001, Y: 0}}}},
	}
	doc, err := Run(prims, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 1)
	foundAutoClose := false
	for _, d := range doc.Diagnostics {
		if d.Kind == AutoClosedOpenPolylines {
			foundAutoClose = true
		}
	}
	assert.True(t, foundAutoClose, "expected an AutoClosedOpenPolylines diagnostic")
}

func TestRunEmptyDocumentReturnsError(t *testing.T) {
	_, err := Run(nil, DefaultConfig())
	require.ErrorIs(t, err, ErrEmptyDocument)
}

func TestRunNoClosedEntityRecordsDiagnosticAndRecovers(t *testing.T) {
	// a single open line has no closed region at all; the pipeline
	// should record NoClosedEntity and, having nothing further to
	// recover via the raw-mode retry, still return without error.
	doc, err := Run([]Primitive{{Kind: KindLine, A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 10}}}, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, doc.Shapes)
	found := false
	for _, d := range doc.Diagnostics {
		if d.Kind == NoClosedEntity {
			found = true
		}
	}
	assert.True(t, found, "expected a NoClosedEntity diagnostic")
}

func TestRunIdempotentThroughShapesToPrimitives(t *testing.T) {
	outer := polyline(0, 0, 20, 20)
	hole := polyline(5, 5, 15, 15)
	doc, err := Run([]Primitive{outer, hole}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 1)

	back := ShapesToPrimitives(doc.Shapes)
	doc2, err := Run(back, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, doc2.Shapes, 1)
	assert.InDelta(t, doc.Shapes[0].Area(), doc2.Shapes[0].Area(), 1e-6)
	require.Len(t, doc2.Shapes[0].Holes, len(doc.Shapes[0].Holes))
}

func TestRunCompoundSelfRetracingHole(t *testing.T) {
	// two 4x4 squares sharing a single vertex at (10,10): a self-retracing
	// figure-eight path that the compound splitter must separate.
	verts := []PolyVertex{
		{P: Point{X: 10, Y: 10}}, {P: Point{X: 14, Y: 10}}, {P: Point{X: 14, Y: 14}}, {P: Point{X: 10, Y: 14}},
		{P: Point{X: 10, Y: 10}}, {P: Point{X: 6, Y: 10}}, {P: Point{X: 6, Y: 6}}, {P: Point{X: 10, Y: 6}},
	}
	outer := polyline(0, 0, 30, 30)
	figureEight := Primitive{Kind: KindPolyline, Vertices: verts, Closed: true}
	doc, err := Run([]Primitive{outer, figureEight}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 1)
	assert.GreaterOrEqual(t, len(doc.Shapes[0].Holes), 1)
}

// SignedAreaOf mirrors model.SignedArea for use in this package's
// tests without reaching into internal/model directly.
func SignedAreaOf(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}
