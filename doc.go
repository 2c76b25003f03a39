// Package contour reconstructs planar shapes-with-holes from the raw
// geometric primitives of a DXF-style CAD drawing. It stitches open
// polylines into closed loops, resolves a nesting hierarchy under the
// even/odd fill rule, repairs self-retracing (compound) loops,
// flattens duplicated border offsets, and emits the resulting
// polygon-with-holes shapes ready for downstream extrusion. Mesh
// extrusion, rendering, the DXF tokenizer itself, and any UI/HTTP
// surface are out of scope.
package contour
