package scoring

// Result is the outcome of scoring a single item response.
//
// Score and MaxScore satisfy 0 <= Score <= MaxScore for every item kind and
// every response, including nil responses. MaxScore depends only on the item
// configuration, never on the response; MaxScore == 0 is a valid result
// (e.g. an ordering item with an empty correct order) and callers must guard
// their own divisions.
type Result struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`

	// NeedsManual marks kinds the engine does not score (short answer,
	// essay, scenario task). Score is 0 until a grader intervenes.
	NeedsManual bool `json:"needs_manual,omitempty"`

	// Deferred marks an ordering item routed to an external evaluator.
	// Score is 0 but the submission is NOT known to be incorrect;
	// analytics must not count deferred results against the learner.
	Deferred bool `json:"deferred,omitempty"`
}
