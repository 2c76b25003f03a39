package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"zappem.net/pub/cad/contour"
)

// vertexSpec is one (point, bulge) pair of a polyline primitive.
type vertexSpec struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Bulge float64 `toml:"bulge"`
}

// pointSpec is a bare 2D point, used for spline control/fit points.
type pointSpec struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// primitiveSpec is the flat, human-editable TOML encoding of a
// contour.Primitive. Only the fields relevant to Kind need be set;
// the rest are ignored.
type primitiveSpec struct {
	Kind string `toml:"kind"`

	AX float64 `toml:"ax"`
	AY float64 `toml:"ay"`
	BX float64 `toml:"bx"`
	BY float64 `toml:"by"`

	CX       float64 `toml:"cx"`
	CY       float64 `toml:"cy"`
	Radius   float64 `toml:"radius"`
	StartDeg float64 `toml:"start_deg"`
	EndDeg   float64 `toml:"end_deg"`

	Vertices []vertexSpec `toml:"vertices"`
	Closed   bool         `toml:"closed"`

	ControlPoints []pointSpec `toml:"control_points"`
	FitPoints     []pointSpec `toml:"fit_points"`
}

// drawingFile is the top-level shape of an input TOML document: a
// flat list of primitives, in the ENTITIES order the tokenizer would
// have emitted them.
type drawingFile struct {
	Primitives []primitiveSpec `toml:"primitives"`
}

func loadDrawing(path string) ([]contour.Primitive, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading drawing file: %w", err)
	}
	var df drawingFile
	if err := toml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("parsing drawing file: %w", err)
	}
	out := make([]contour.Primitive, 0, len(df.Primitives))
	for i, spec := range df.Primitives {
		p, err := spec.toPrimitive()
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (s primitiveSpec) toPrimitive() (contour.Primitive, error) {
	switch s.Kind {
	case "line":
		return contour.Primitive{
			Kind: contour.KindLine,
			A:    contour.Point{X: s.AX, Y: s.AY},
			B:    contour.Point{X: s.BX, Y: s.BY},
		}, nil
	case "arc":
		return contour.Primitive{
			Kind:     contour.KindArc,
			Center:   contour.Point{X: s.CX, Y: s.CY},
			Radius:   s.Radius,
			StartDeg: s.StartDeg,
			EndDeg:   s.EndDeg,
		}, nil
	case "circle":
		return contour.Primitive{
			Kind:   contour.KindCircle,
			Center: contour.Point{X: s.CX, Y: s.CY},
			Radius: s.Radius,
		}, nil
	case "polyline":
		verts := make([]contour.PolyVertex, len(s.Vertices))
		for i, v := range s.Vertices {
			verts[i] = contour.PolyVertex{P: contour.Point{X: v.X, Y: v.Y}, Bulge: v.Bulge}
		}
		return contour.Primitive{Kind: contour.KindPolyline, Vertices: verts, Closed: s.Closed}, nil
	case "spline":
		cps := make([]contour.Point, len(s.ControlPoints))
		for i, p := range s.ControlPoints {
			cps[i] = contour.Point{X: p.X, Y: p.Y}
		}
		fps := make([]contour.Point, len(s.FitPoints))
		for i, p := range s.FitPoints {
			fps[i] = contour.Point{X: p.X, Y: p.Y}
		}
		return contour.Primitive{Kind: contour.KindSpline, ControlPoints: cps, FitPoints: fps, Closed: s.Closed}, nil
	default:
		return contour.Primitive{}, fmt.Errorf("unknown primitive kind %q", s.Kind)
	}
}
