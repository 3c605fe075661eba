package scoring

import "testing"

func assertResult(t *testing.T, got Result, score, max float64) {
	t.Helper()
	if got.Score != score {
		t.Fatalf("expected score=%v, got=%v", score, got.Score)
	}
	if got.MaxScore != max {
		t.Fatalf("expected max_score=%v, got=%v", max, got.MaxScore)
	}
	if got.Score < 0 || got.Score > got.MaxScore {
		t.Fatalf("invariant violated: 0 <= %v <= %v", got.Score, got.MaxScore)
	}
}

func TestScoreChoice(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ChoiceConfig
		selected []int
		score    float64
	}{
		{"single correct", ChoiceConfig{AnswerMode: AnswerSingle, CorrectIndexes: []int{2}}, []int{2}, 1},
		{"single wrong", ChoiceConfig{AnswerMode: AnswerSingle, CorrectIndexes: []int{2}}, []int{1}, 0},
		{"multi order-insensitive", ChoiceConfig{AnswerMode: AnswerMultiple, CorrectIndexes: []int{0, 1}}, []int{1, 0}, 1},
		{"multi missing one", ChoiceConfig{AnswerMode: AnswerMultiple, CorrectIndexes: []int{0, 1}}, []int{0}, 0},
		{"multi extra one", ChoiceConfig{AnswerMode: AnswerMultiple, CorrectIndexes: []int{0, 1}}, []int{0, 1, 2}, 0},
		{"duplicates collapse", ChoiceConfig{AnswerMode: AnswerMultiple, CorrectIndexes: []int{0, 1}}, []int{1, 1, 0, 0}, 1},
		{"unsorted key", ChoiceConfig{AnswerMode: AnswerMultiple, CorrectIndexes: []int{3, 1, 2}}, []int{1, 2, 3}, 1},
		{"empty selection", ChoiceConfig{AnswerMode: AnswerSingle, CorrectIndexes: []int{0}}, nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreChoice(tc.cfg, &Response{SelectedIndexes: tc.selected})
			assertResult(t, got, tc.score, 1)
		})
	}
}

func TestScoreChoice_NilResponse(t *testing.T) {
	got := ScoreChoice(ChoiceConfig{AnswerMode: AnswerSingle, CorrectIndexes: []int{0}}, nil)
	assertResult(t, got, 0, 1)
}

func TestScoreChoice_TrueFalseSharesLogic(t *testing.T) {
	// true/false is mcq specialized to two choices; same code path
	item := Item{Kind: KindTrueFalse, Choice: &ChoiceConfig{AnswerMode: AnswerSingle, CorrectIndexes: []int{1}}}
	assertResult(t, Score(item, &Response{SelectedIndexes: []int{1}}), 1, 1)
	assertResult(t, Score(item, &Response{SelectedIndexes: []int{0}}), 0, 1)
}
