package contour

import (
	"sync"

	"github.com/google/uuid"

	"zappem.net/pub/cad/contour/internal/model"
)

// BatchJob is one document's worth of input primitives submitted to
// RunBatch.
type BatchJob struct {
	Primitives []Primitive
	Config     Config
}

// BatchResult pairs a job's outcome with a generated run ID, useful
// for correlating a result back to a diagnostic trace or log line
// once results are reordered or processed asynchronously downstream.
type BatchResult struct {
	RunID string
	Doc   Document
	Err   error
}

// RunBatch processes independent documents concurrently, one
// goroutine per job up to workers. Each worker owns its own
// allocations and the engine keeps no shared mutable state, so
// documents never interfere with one another; only the bounded
// worker count is shared. Results are returned in the same order as
// jobs, regardless of completion order.
//
// A bounded channel of worker slots plus a WaitGroup is used here
// instead of golang.org/x/sync/errgroup: RunBatch's contract (every
// job always produces a result, never a fail-fast abort) does not fit
// errgroup's cancel-on-first-error model.
func RunBatch(jobs []BatchJob, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]BatchResult, len(jobs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, job BatchJob) {
			defer wg.Done()
			defer func() { <-sem }()
			doc, err := Run(job.Primitives, job.Config)
			results[i] = BatchResult{RunID: uuid.New().String(), Doc: doc, Err: err}
		}(i, job)
	}
	wg.Wait()
	return results
}

// ShapesToPrimitives lifts a Document's emitted shapes back into
// closed Polyline primitives (bulge 0 throughout), the input form
// Run accepts. Feeding the result back through Run is the standard
// idempotence check: outer loops and holes should reconstruct into
// the same shapes up to vertex-order rotation.
func ShapesToPrimitives(shapes []Shape) []Primitive {
	var out []Primitive
	for _, s := range shapes {
		out = append(out, polylineFromLoop(s.Outer))
		for _, h := range s.Holes {
			out = append(out, polylineFromLoop(h))
		}
	}
	return out
}

func polylineFromLoop(pts []model.Point) Primitive {
	verts := make([]PolyVertex, len(pts))
	for i, p := range pts {
		verts[i] = PolyVertex{P: p}
	}
	return Primitive{Kind: KindPolyline, Vertices: verts, Closed: true}
}
