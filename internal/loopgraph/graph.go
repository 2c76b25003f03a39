// Package loopgraph reconstructs closed loops from a soup of open
// segments via an undirected multigraph keyed on quantized endpoints,
// tried at three progressively coarser snapping tolerances. The
// adjacency representation -- parallel edge/used arrays plus a
// key->indices map -- keeps no back-pointers, only indices.
package loopgraph

import (
	"fmt"

	"zappem.net/pub/cad/contour/internal/model"
)

type key struct {
	x, y int64
}

func quantize(p model.Point, eps float64) key {
	return key{x: int64(roundTo(p.X, eps)), y: int64(roundTo(p.Y, eps))}
}

func roundTo(v, eps float64) float64 {
	if eps <= 0 {
		return v
	}
	q := v / eps
	if q >= 0 {
		return float64(int64(q + 0.5))
	}
	return float64(int64(q - 0.5))
}

// edge is one segment plus the quantized keys of its endpoints at the
// epsilon currently in use.
type edge struct {
	a, b   model.Point
	ka, kb key
}

// Extract tries the loop extraction graph at each epsilon in
// cfg.LoopEpsilons in turn, stopping at the first epsilon that
// produces at least one loop. Each returned loop is its openPts
// sequence (closing edge implicit). Returns nil when no epsilon
// yields a loop.
func Extract(segments []model.Segment, cfg model.Config) [][]model.Point {
	for _, eps := range cfg.LoopEpsilons {
		loops := extractAtEpsilon(segments, eps)
		if len(loops) > 0 {
			return loops
		}
	}
	return nil
}

func extractAtEpsilon(segments []model.Segment, eps float64) [][]model.Point {
	edges := make([]edge, 0, len(segments))
	adjacency := map[key][]int{}
	for _, s := range segments {
		ka, kb := quantize(s.A, eps), quantize(s.B, eps)
		if ka == kb {
			continue // degenerate after quantization
		}
		idx := len(edges)
		edges = append(edges, edge{a: s.A, b: s.B, ka: ka, kb: kb})
		adjacency[ka] = append(adjacency[ka], idx)
		adjacency[kb] = append(adjacency[kb], idx)
	}

	used := make([]bool, len(edges))
	var loops [][]model.Point

	for start := range edges {
		if used[start] {
			continue
		}
		loop := walk(start, edges, adjacency, used)
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// walk follows unused edges from startIdx, preferring a next edge
// whose far key differs from the previous key (avoiding an immediate
// backtrack along the same edge), until it returns to the starting
// key or runs out of unused edges at the current vertex. A walk that
// dead-ends before returning to its start is an open chain, not a
// loop: it yields nil, and the edges it consumed stay marked used.
func walk(startIdx int, edges []edge, adjacency map[key][]int, used []bool) []model.Point {
	used[startIdx] = true
	startKey := edges[startIdx].ka
	prevKey := startKey
	curKey := edges[startIdx].kb
	pts := []model.Point{edges[startIdx].a}
	if edges[startIdx].ka != edges[startIdx].kb {
		pts = append(pts, edges[startIdx].b)
	}

	for curKey != startKey {
		candidates := adjacency[curKey]
		chosen := -1
		for _, ci := range candidates {
			if used[ci] {
				continue
			}
			other := otherKey(edges[ci], curKey)
			if other != prevKey {
				chosen = ci
				break
			}
		}
		if chosen < 0 {
			for _, ci := range candidates {
				if !used[ci] {
					chosen = ci
					break
				}
			}
		}
		if chosen < 0 {
			break // dead end
		}
		used[chosen] = true
		nextKey := otherKey(edges[chosen], curKey)
		nextPoint := pointAt(edges[chosen], nextKey, curKey)
		pts = append(pts, nextPoint)
		prevKey = curKey
		curKey = nextKey
	}
	if curKey != startKey {
		return nil
	}

	if len(pts) > 1 && pts[len(pts)-1].Dist(pts[0]) < 1e-9 {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func otherKey(e edge, from key) key {
	if e.ka == from {
		return e.kb
	}
	return e.ka
}

// pointAt returns the endpoint of e whose key is "to", reached from
// vertex "from".
func pointAt(e edge, to, from key) model.Point {
	if e.kb == to {
		return e.b
	}
	if e.ka == to {
		return e.a
	}
	// both endpoints share a key (shouldn't normally happen); fall
	// back to the far point from "from".
	if e.ka == from {
		return e.b
	}
	return e.a
}

// String helps debugging loop extraction failures in tests.
func (k key) String() string {
	return fmt.Sprintf("(%d,%d)", k.x, k.y)
}
