// Package scoring is the deterministic item-scoring engine. Every scorer is
// a pure function from (item config, response) to a Result: no I/O, no
// shared state, safe to call concurrently. Malformed input degrades to
// "no credit"; nothing here panics or returns an error.
package scoring

// Score routes an item to its kind's scorer. The switch is exhaustive over
// the closed Kind set; adding a kind means adding a case here. A kind the
// engine cannot score (free-text kinds, unknown tags) comes back flagged
// NeedsManual with the item's authored points as MaxScore. A missing config
// for a scorable kind yields a zero result rather than an error.
func Score(item Item, resp *Response) Result {
	switch item.Kind {
	case KindMCQ, KindTrueFalse:
		if item.Choice == nil {
			return Result{}
		}
		return ScoreChoice(*item.Choice, resp)
	case KindFillBlank:
		if item.FillBlank == nil {
			return Result{}
		}
		return ScoreFillBlank(*item.FillBlank, resp)
	case KindMatching:
		if item.Matching == nil {
			return Result{}
		}
		return ScoreMatching(*item.Matching, resp)
	case KindOrdering:
		if item.Ordering == nil {
			return Result{}
		}
		return ScoreOrdering(*item.Ordering, resp)
	case KindNumeric:
		if item.Numeric == nil {
			return Result{}
		}
		return ScoreNumeric(*item.Numeric, resp)
	case KindHotspot:
		if item.Hotspot == nil {
			return Result{}
		}
		return ScoreHotspot(*item.Hotspot, resp)
	case KindDragDrop:
		if item.DragDrop == nil {
			return Result{}
		}
		return ScoreDragDrop(*item.DragDrop, resp)
	case KindShortAnswer, KindEssay, KindScenario:
		return Result{MaxScore: item.Points, NeedsManual: true}
	default:
		return Result{MaxScore: item.Points, NeedsManual: true}
	}
}

// MaxScore reports the item's maximum score without a response. It depends
// only on the item configuration.
func MaxScore(item Item) float64 {
	return Score(item, nil).MaxScore
}
