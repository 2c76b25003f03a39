// Package clean performs per-contour dedup and degeneracy dropping,
// continuity stitching of open polylines into closed loops, and a
// cluster filter that keeps only the dominant connected cluster of
// contours when several disjoint groups exist: collapse near-duplicate
// points first, then reconnect open runs by endpoint proximity.
package clean

import (
	"math"
	"sort"

	"zappem.net/pub/cad/contour/internal/model"
)

// Dedup drops consecutive duplicate points within cfg.DedupTolerance,
// and discards contours that end up degenerate: closed contours
// shorter than MinClosedContourLen or with fewer than
// MinClosedContourPts points, and open contours with fewer than 2
// points.
func Dedup(contours []model.Contour, cfg model.Config) []model.Contour {
	out := make([]model.Contour, 0, len(contours))
	for _, c := range contours {
		pts := dedupPoints(c.Points, cfg.DedupTolerance)
		if c.Closed && len(pts) > 1 && pts[0].Dist(pts[len(pts)-1]) < cfg.DedupTolerance {
			pts = pts[:len(pts)-1]
		}
		nc := model.Contour{Points: pts, Closed: c.Closed}
		if nc.Closed {
			if len(pts) < cfg.MinClosedContourPts {
				continue
			}
			if nc.Length() <= cfg.MinClosedContourLen {
				continue
			}
		} else if len(pts) < 2 {
			continue
		}
		out = append(out, nc)
	}
	return out
}

func dedupPoints(pts []model.Point, tol float64) []model.Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]model.Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.Dist(out[len(out)-1]) >= tol {
			out = append(out, p)
		}
	}
	return out
}

// boundAll returns the bounding box spanning all points of all
// contours.
func boundAll(contours []model.Contour) (model.BBox, bool) {
	var all []model.Point
	for _, c := range contours {
		all = append(all, c.Points...)
	}
	if len(all) == 0 {
		return model.BBox{}, false
	}
	return model.BoundPoints(all), true
}

// Stitch performs the continuity-stitching pass: it extends each open
// contour by greedily attaching the nearest-endpoint unused open
// contour (trying all four end-to-end/reversed combinations)
// whenever the gap is within joinTol, and closes a chain whose first
// and last points land within closeTol. Closed contours pass through
// untouched.
func Stitch(contours []model.Contour, cfg model.Config) ([]model.Contour, bool) {
	bb, ok := boundAll(contours)
	if !ok {
		return contours, false
	}
	minSide := math.Max(1, bb.MinSide())
	joinTol := model.Clamp(minSide*cfg.JoinTolFactor, cfg.JoinTolMin, cfg.JoinTolMax)
	closeTol := math.Max(joinTol*cfg.CloseTolFactor, cfg.CloseTolMin)
	return stitchAt(contours, joinTol, closeTol)
}

// StitchAtTol re-runs the same greedy endpoint-joining stitcher used
// by Stitch, but at a single caller-supplied tolerance used for both
// the join and close gates. This is the loop extractor's fallback
// path, invoked when segment-graph extraction finds no loops at all.
func StitchAtTol(contours []model.Contour, tol float64) ([]model.Contour, bool) {
	return stitchAt(contours, tol, tol)
}

func stitchAt(contours []model.Contour, joinTol, closeTol float64) ([]model.Contour, bool) {
	var closed []model.Contour
	var pool [][]model.Point
	for _, c := range contours {
		if c.Closed {
			closed = append(closed, c)
		} else {
			pool = append(pool, append([]model.Point{}, c.Points...))
		}
	}

	used := make([]bool, len(pool))
	var stitched []model.Contour
	autoClosed := false
	for i := range pool {
		if used[i] {
			continue
		}
		used[i] = true
		chain := append([]model.Point{}, pool[i]...)
		for {
			bestIdx, bestGap := -1, joinTol
			bestReverseOther := false
			bestPrepend := false
			for j := range pool {
				if used[j] {
					continue
				}
				cands := []struct {
					gap       float64
					prepend   bool
					reverse   bool
				}{
					{chain[len(chain)-1].Dist(pool[j][0]), false, false},
					{chain[len(chain)-1].Dist(pool[j][len(pool[j])-1]), false, true},
					{chain[0].Dist(pool[j][len(pool[j])-1]), true, false},
					{chain[0].Dist(pool[j][0]), true, true},
				}
				for _, cand := range cands {
					if cand.gap <= bestGap {
						bestGap = cand.gap
						bestIdx = j
						bestPrepend = cand.prepend
						bestReverseOther = cand.reverse
					}
				}
			}
			if bestIdx < 0 {
				break
			}
			used[bestIdx] = true
			other := append([]model.Point{}, pool[bestIdx]...)
			if bestReverseOther {
				reverseInPlace(other)
			}
			if bestPrepend {
				chain = append(append([]model.Point{}, other...), chain...)
			} else {
				chain = append(chain, other...)
			}
		}
		if len(chain) >= 3 && chain[0].Dist(chain[len(chain)-1]) <= closeTol {
			stitched = append(stitched, model.Contour{Points: chain[:len(chain)-1], Closed: true})
			autoClosed = true
		} else {
			stitched = append(stitched, model.Contour{Points: chain, Closed: false})
		}
	}

	return append(closed, stitched...), autoClosed
}

func reverseInPlace(pts []model.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// clusterScore is length * sqrt(area) of a group of contours, the
// heuristic used to rank candidate detached geometry clusters.
func clusterScore(group []model.Contour) (score, area float64) {
	var totalLen float64
	var pts []model.Point
	for _, c := range group {
		totalLen += c.Length()
		pts = append(pts, c.Points...)
	}
	if len(pts) > 0 {
		area = model.BoundPoints(pts).Area()
	}
	score = totalLen * math.Sqrt(area)
	return
}

// ClusterFilter groups contours into connected clusters by
// bounding-box proximity (within joinGap) and keeps only the
// dominant cluster when it is decisively larger than the runner-up
// by both a score and an area test. Otherwise all contours are kept.
func ClusterFilter(contours []model.Contour, cfg model.Config) []model.Contour {
	if len(contours) < 2 {
		return contours
	}
	bb, ok := boundAll(contours)
	if !ok {
		return contours
	}
	minSide := math.Max(1, bb.MinSide())
	joinGap := model.Clamp(minSide*cfg.ClusterGapFactor, cfg.ClusterGapMin, cfg.ClusterGapMax)

	boxes := make([]model.BBox, len(contours))
	for i, c := range contours {
		boxes[i] = model.BoundPoints(c.Points)
	}

	parent := make([]int, len(contours))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for i := range contours {
		for j := i + 1; j < len(contours); j++ {
			if boxes[i].Overlaps(boxes[j], joinGap) {
				union(i, j)
			}
		}
	}

	groups := map[int][]int{}
	for i := range contours {
		r := find(i)
		groups[r] = append(groups[r], i)
	}
	if len(groups) < 2 {
		return contours
	}

	type cluster struct {
		idxs  []int
		score float64
		area  float64
	}
	var clusters []cluster
	for _, idxs := range groups {
		group := make([]model.Contour, len(idxs))
		for k, i := range idxs {
			group[k] = contours[i]
		}
		score, area := clusterScore(group)
		clusters = append(clusters, cluster{idxs: idxs, score: score, area: area})
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i].score > clusters[j].score })

	main := clusters[0]
	alt := clusters[1]
	overallArea := bb.Area()

	keepOnlyMain := (main.score > alt.score*cfg.ClusterScoreRatio && main.area > alt.area*cfg.ClusterAreaRatio) ||
		(overallArea > main.area*cfg.ClusterOverallAreaRatio && main.score > alt.score*cfg.ClusterOverallScoreRatio)

	if !keepOnlyMain {
		return contours
	}
	out := make([]model.Contour, len(main.idxs))
	for k, i := range main.idxs {
		out[k] = contours[i]
	}
	return out
}
