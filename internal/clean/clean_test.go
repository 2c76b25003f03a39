package clean

import (
	"testing"

	"zappem.net/pub/cad/contour/internal/model"
)

func TestDedupCollapsesNearDuplicates(t *testing.T) {
	cfg := model.DefaultConfig()
	contours := []model.Contour{
		{
			Points: []model.Point{
				{X: 0, Y: 0}, {X: 0, Y: 0.0000001}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
			},
			Closed: true,
		},
	}
	out := Dedup(contours, cfg)
	if len(out) != 1 {
		t.Fatalf("Dedup() returned %d contours, want 1", len(out))
	}
	if len(out[0].Points) != 4 {
		t.Errorf("Dedup() kept %d points, want 4 (near-duplicate collapsed)", len(out[0].Points))
	}
}

func TestDedupDropsTinyClosedContour(t *testing.T) {
	cfg := model.DefaultConfig()
	tiny := []model.Point{{X: 0, Y: 0}, {X: 0.001, Y: 0}, {X: 0.001, Y: 0.001}}
	out := Dedup([]model.Contour{{Points: tiny, Closed: true}}, cfg)
	if len(out) != 0 {
		t.Fatalf("Dedup() kept a contour below MinClosedContourLen, want it dropped")
	}
}

func TestDedupDropsShortOpenContour(t *testing.T) {
	cfg := model.DefaultConfig()
	out := Dedup([]model.Contour{{Points: []model.Point{{X: 0, Y: 0}}, Closed: false}}, cfg)
	if len(out) != 0 {
		t.Fatalf("Dedup() kept a single-point open contour, want it dropped")
	}
}

func TestStitchJoinsFourOpenRuns(t *testing.T) {
	cfg := model.DefaultConfig()
	contours := []model.Contour{
		{Points: []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, Closed: false},
		{Points: []model.Point{{X: 10, Y: 0.01}, {X: 10, Y: 10}}, Closed: false},
		{Points: []model.Point{{X: 10, Y: 10}, {X: 0, Y: 10}}, Closed: false},
		{Points: []model.Point{{X: 0.01, Y: 10}, {X: 0, Y: 0}}, Closed: false},
	}
	out, autoClosed := Stitch(contours, cfg)
	if !autoClosed {
		t.Fatalf("Stitch() reported autoClosed = false, want true")
	}
	if len(out) != 1 || !out[0].Closed {
		t.Fatalf("Stitch() = %+v, want a single closed loop", out)
	}
}

func TestStitchLeavesClosedContoursUntouched(t *testing.T) {
	cfg := model.DefaultConfig()
	square := model.Contour{Points: []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, Closed: true}
	out, autoClosed := Stitch([]model.Contour{square}, cfg)
	if autoClosed {
		t.Errorf("Stitch() reported autoClosed = true for an already-closed contour")
	}
	if len(out) != 1 || !out[0].Closed {
		t.Fatalf("Stitch() altered a closed contour: %+v", out)
	}
}

func TestStitchAtTolUsesSingleTolerance(t *testing.T) {
	contours := []model.Contour{
		{Points: []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, Closed: false},
		{Points: []model.Point{{X: 1, Y: 0}, {X: 1, Y: 1}}, Closed: false},
		{Points: []model.Point{{X: 1, Y: 1}, {X: 0, Y: 0.05}}, Closed: false},
	}
	out, autoClosed := StitchAtTol(contours, 0.1)
	if !autoClosed {
		t.Fatalf("StitchAtTol() did not close a chain within tolerance")
	}
	if len(out) != 1 || !out[0].Closed {
		t.Fatalf("StitchAtTol() = %+v, want a single closed loop", out)
	}
}

func TestClusterFilterKeepsSoleCluster(t *testing.T) {
	cfg := model.DefaultConfig()
	square := model.Contour{Points: []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, Closed: true}
	out := ClusterFilter([]model.Contour{square}, cfg)
	if len(out) != 1 {
		t.Fatalf("ClusterFilter() with one contour returned %d, want passthrough of 1", len(out))
	}
}

func TestClusterFilterDropsFarDetachedSpeck(t *testing.T) {
	cfg := model.DefaultConfig()
	main := model.Contour{
		Points: []model.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}},
		Closed: true,
	}
	speck := model.Contour{
		Points: []model.Point{{X: 1000, Y: 1000}, {X: 1001, Y: 1000}, {X: 1001, Y: 1001}},
		Closed: true,
	}
	out := ClusterFilter([]model.Contour{main, speck}, cfg)
	if len(out) != 1 {
		t.Fatalf("ClusterFilter() returned %d contours, want the dominant cluster only (1)", len(out))
	}
	if out[0].Points[1].X != 100 {
		t.Errorf("ClusterFilter() kept the wrong cluster: %+v", out[0])
	}
}
