package model

// DiagnosticKind enumerates the issue codes the engine reports
// alongside its output. Diagnostics never alter the output contract;
// they are purely observational.
type DiagnosticKind int

const (
	NoClosedEntity DiagnosticKind = iota
	AutoClosedOpenPolylines
	ReparsedAsRawLineArc
	UsedHullFallback
	DenseFastPathTaken
)

func (k DiagnosticKind) String() string {
	switch k {
	case NoClosedEntity:
		return "NoClosedEntity"
	case AutoClosedOpenPolylines:
		return "AutoClosedOpenPolylines"
	case ReparsedAsRawLineArc:
		return "ReparsedAsRawLineArc"
	case UsedHullFallback:
		return "UsedHullFallback"
	case DenseFastPathTaken:
		return "DenseFastPathTaken"
	default:
		return "Unknown"
	}
}

// Diagnostic is one recorded issue, with an optional free-form detail
// string (e.g. a count or a loop index) for debugging.
type Diagnostic struct {
	Kind   DiagnosticKind
	Detail string
}
