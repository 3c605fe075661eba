package attempt

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/examforge/examforge-backend/internal/scoring"
)

// scoreAll runs the engine over every item of an attempt. The engine is
// pure, so items are scored concurrently; the per-item fan-out also keeps
// large assessments flat on submit latency. Items the learner never
// answered still get scored (zero) so MaxScore reflects the whole
// assessment.
//
// Returns the per-item results, the awarded and maximum totals, and
// whether any item awaits manual grading.
func scoreAll(ctx context.Context, items map[string]scoring.Item, responses map[string]scoring.Response) (map[string]ItemResult, float64, float64, bool) {
	results := make(map[string]ItemResult, len(items))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for id, item := range items {
		id, item := id, item
		g.Go(func() error {
			var resp *scoring.Response
			if r, ok := responses[id]; ok {
				resp = &r
			}
			res := scoring.Score(item, resp)
			mu.Lock()
			results[id] = ItemResult{Result: res}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // scorers never fail

	var score, max float64
	pending := false
	for _, ir := range results {
		score += ir.Awarded()
		max += ir.MaxScore
		if ir.NeedsManual {
			pending = true
		}
	}
	return results, score, max, pending
}
