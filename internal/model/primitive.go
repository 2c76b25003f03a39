package model

// PrimitiveKind tags the variant held by a Primitive.
type PrimitiveKind int

const (
	KindLine PrimitiveKind = iota
	KindArc
	KindCircle
	KindPolyline
	KindSpline
)

// PolyVertex is one vertex of a Polyline primitive: a point plus an
// optional bulge encoding a circular arc to the next vertex.
type PolyVertex struct {
	P     Point
	Bulge float64
}

// Primitive is the tagged-union input contract from the DXF
// tokenizer. Only the fields relevant to Kind are populated; the
// tokenizer itself is out of scope for this engine.
type Primitive struct {
	Kind PrimitiveKind

	// Line
	A, B Point

	// Arc / Circle
	Center             Point
	Radius             float64
	StartDeg, EndDeg   float64

	// Polyline
	Vertices []PolyVertex
	Closed   bool

	// Spline
	ControlPoints []Point
	FitPoints     []Point
}
