package loopgraph

import (
	"testing"

	"zappem.net/pub/cad/contour/internal/model"
)

func square(x0, y0, side float64) []model.Segment {
	p := func(x, y float64) model.Point { return model.Point{X: x0 + x, Y: y0 + y} }
	corners := []model.Point{p(0, 0), p(side, 0), p(side, side), p(0, side)}
	var segs []model.Segment
	for i := range corners {
		segs = append(segs, model.Segment{A: corners[i], B: corners[(i+1)%len(corners)]})
	}
	return segs
}

func TestExtractSingleLoop(t *testing.T) {
	cfg := model.DefaultConfig()
	loops := Extract(square(0, 0, 4), cfg)
	if len(loops) != 1 {
		t.Fatalf("Extract() returned %d loops, want 1", len(loops))
	}
	if len(loops[0]) != 4 {
		t.Errorf("loop has %d points, want 4", len(loops[0]))
	}
	if got := model.SignedArea(loops[0]); got != 16 && got != -16 {
		t.Errorf("loop area = %v, want +/-16", got)
	}
}

func TestExtractTwoDisjointLoops(t *testing.T) {
	cfg := model.DefaultConfig()
	segs := append(square(0, 0, 2), square(10, 10, 2)...)
	loops := Extract(segs, cfg)
	if len(loops) != 2 {
		t.Fatalf("Extract() returned %d loops, want 2", len(loops))
	}
}

func TestExtractOpenChainProducesNoLoop(t *testing.T) {
	cfg := model.DefaultConfig()
	segs := []model.Segment{
		{A: model.Point{X: 0, Y: 0}, B: model.Point{X: 1, Y: 0}},
		{A: model.Point{X: 1, Y: 0}, B: model.Point{X: 1, Y: 1}},
	}
	if loops := Extract(segs, cfg); loops != nil {
		t.Fatalf("Extract() on an open chain returned %d loops, want none", len(loops))
	}
}

func TestExtractToleratesSmallGapAtCoarserEpsilon(t *testing.T) {
	cfg := model.DefaultConfig()
	segs := []model.Segment{
		{A: model.Point{X: 0, Y: 0}, B: model.Point{X: 4, Y: 0}},
		{A: model.Point{X: 4, Y: 0}, B: model.Point{X: 4, Y: 4}},
		{A: model.Point{X: 4, Y: 4}, B: model.Point{X: 0, Y: 4}},
		// gap of 0.02: closes under the coarsest epsilon (5e-2) but not the finest (1e-4)
		{A: model.Point{X: 0.02, Y: 4}, B: model.Point{X: 0, Y: 0}},
	}
	loops := Extract(segs, cfg)
	if len(loops) != 1 {
		t.Fatalf("Extract() with a small quantization gap returned %d loops, want 1", len(loops))
	}
}
