package scoring

import "testing"

func sampleItems() map[string]Item {
	return map[string]Item{
		"mcq": {Kind: KindMCQ, Choice: &ChoiceConfig{AnswerMode: AnswerMultiple, CorrectIndexes: []int{0, 2}}},
		"true_false": {Kind: KindTrueFalse, Choice: &ChoiceConfig{AnswerMode: AnswerSingle, CorrectIndexes: []int{0}}},
		"fill_blank": {Kind: KindFillBlank, FillBlank: &FillBlankConfig{Mode: ModePartial, Blanks: []Blank{
			{Acceptable: []AnswerMatcher{{Type: "exact", Value: "sky"}}},
		}}},
		"matching": {Kind: KindMatching, Matching: &MatchingConfig{Mode: ModePartial, Prompts: []MatchPrompt{
			{ID: "p1", CorrectTargetID: "t1"},
		}}},
		"ordering": {Kind: KindOrdering, Ordering: &OrderingConfig{Mode: ModePartialPairs, CorrectOrder: []string{"a", "b", "c"}}},
		"numeric":  {Kind: KindNumeric, Numeric: &NumericConfig{Validation: NumericValidation{Mode: "range", Min: 0, Max: 1}}},
		"hotspot": {Kind: KindHotspot, Hotspot: &HotspotConfig{Mode: ModePartial, Hotspots: []Hotspot{
			{ID: "h1", Points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		}}},
		"drag_drop": {Kind: KindDragDrop, DragDrop: &DragDropConfig{Mode: ModePerToken, TokenIDs: []string{"t1"}, Zones: []Zone{
			{ID: "z1", Evaluation: ZoneSet, CorrectTokenIDs: []string{"t1"}},
		}}},
	}
}

// Missing responses score zero and never error, for every kind.
func TestScore_NilResponseScoresZero(t *testing.T) {
	for name, item := range sampleItems() {
		t.Run(name, func(t *testing.T) {
			got := Score(item, nil)
			if got.Score != 0 {
				t.Fatalf("nil response must score 0, got %v", got.Score)
			}
			if got.Score < 0 || got.Score > got.MaxScore {
				t.Fatalf("invariant violated: 0 <= %v <= %v", got.Score, got.MaxScore)
			}
		})
	}
}

// Scoring is a pure function: same input, same output, every time.
func TestScore_Idempotent(t *testing.T) {
	item := sampleItems()["ordering"]
	resp := &Response{Order: []string{"c", "a", "b"}}
	first := Score(item, resp)
	for i := 0; i < 100; i++ {
		if got := Score(item, resp); got != first {
			t.Fatalf("iteration %d: got %+v, want %+v", i, got, first)
		}
	}
	assertResult(t, first, 1, 3)
}

func TestScore_ManualKinds(t *testing.T) {
	for _, kind := range []Kind{KindShortAnswer, KindEssay, KindScenario} {
		t.Run(string(kind), func(t *testing.T) {
			got := Score(Item{Kind: kind, Points: 5}, &Response{Text: "a considered essay"})
			assertResult(t, got, 0, 5)
			if !got.NeedsManual {
				t.Fatal("free-text kinds must be flagged NeedsManual")
			}
		})
	}
}

func TestScore_UnknownKind(t *testing.T) {
	got := Score(Item{Kind: Kind("interpretive_dance"), Points: 2}, nil)
	assertResult(t, got, 0, 2)
	if !got.NeedsManual {
		t.Fatal("unknown kinds route to manual grading")
	}
}

func TestScore_MissingConfig(t *testing.T) {
	// a scorable kind without its config degrades to {0,0}, not a panic
	for _, kind := range []Kind{KindMCQ, KindFillBlank, KindMatching, KindOrdering, KindNumeric, KindHotspot, KindDragDrop} {
		t.Run(string(kind), func(t *testing.T) {
			assertResult(t, Score(Item{Kind: kind}, &Response{}), 0, 0)
		})
	}
}

func TestMaxScore_IgnoresResponse(t *testing.T) {
	for name, item := range sampleItems() {
		t.Run(name, func(t *testing.T) {
			if MaxScore(item) != Score(item, nil).MaxScore {
				t.Fatal("MaxScore must equal the response-free score's MaxScore")
			}
		})
	}
}
