package model

import "errors"

// The engine never panics on bad geometry; every stage signals
// rejection with a plain boolean (normalizeOne's (Contour{}, false),
// loop extraction's empty slice) and records a diagnostic on the
// Document instead of returning an error. ErrEmptyDocument is the one
// genuine failure that propagates to the caller, because there is no
// Document to attach a diagnostic to yet.
var (
	// ErrEmptyDocument is the only error Run/RunBatch ever return to
	// the caller: zero valid contours survived, or the normalized
	// canvas has non-positive width or height.
	ErrEmptyDocument = errors.New("model: empty document")
)
