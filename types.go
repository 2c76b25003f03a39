package contour

import "zappem.net/pub/cad/contour/internal/model"

// Public type aliases. The engine's real data model lives in
// internal/model so every pipeline-stage package can depend on it
// without an import cycle back through this package; callers of this
// module only ever need the names below.
type (
	Point          = model.Point
	Primitive      = model.Primitive
	PrimitiveKind  = model.PrimitiveKind
	PolyVertex     = model.PolyVertex
	Shape          = model.Shape
	Document       = model.Document
	Config         = model.Config
	Diagnostic     = model.Diagnostic
	DiagnosticKind = model.DiagnosticKind
)

const (
	KindLine     = model.KindLine
	KindArc      = model.KindArc
	KindCircle   = model.KindCircle
	KindPolyline = model.KindPolyline
	KindSpline   = model.KindSpline
)

const (
	NoClosedEntity          = model.NoClosedEntity
	AutoClosedOpenPolylines = model.AutoClosedOpenPolylines
	ReparsedAsRawLineArc    = model.ReparsedAsRawLineArc
	UsedHullFallback        = model.UsedHullFallback
	DenseFastPathTaken      = model.DenseFastPathTaken
)

var (
	// ErrEmptyDocument is the only error Run/RunBatch ever return to
	// the caller.
	ErrEmptyDocument = model.ErrEmptyDocument
)

// DefaultConfig returns the engine's fixed tolerance defaults.
func DefaultConfig() Config {
	return model.DefaultConfig()
}
