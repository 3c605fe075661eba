package scoring

import "testing"

func TestScoreMatching(t *testing.T) {
	cfg := MatchingConfig{
		Mode: ModePartial,
		Prompts: []MatchPrompt{
			{ID: "p1", CorrectTargetID: "t1"},
			{ID: "p2", CorrectTargetID: "t2"},
			{ID: "p3", CorrectTargetID: "t3"},
		},
	}

	tests := []struct {
		name  string
		pairs []MatchedPair
		score float64
	}{
		{"all correct", []MatchedPair{{"p1", "t1"}, {"p2", "t2"}, {"p3", "t3"}}, 3},
		{"one swapped", []MatchedPair{{"p1", "t2"}, {"p2", "t1"}, {"p3", "t3"}}, 1},
		{"first write wins on duplicates", []MatchedPair{{"p1", "t9"}, {"p1", "t1"}, {"p2", "t2"}}, 1},
		{"unknown prompt ignored", []MatchedPair{{"px", "t1"}, {"p2", "t2"}}, 1},
		{"empty", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertResult(t, ScoreMatching(cfg, &Response{Pairs: tc.pairs}), tc.score, 3)
		})
	}
}

func TestScoreMatching_AllMode(t *testing.T) {
	cfg := MatchingConfig{
		Mode: ModeAll,
		Prompts: []MatchPrompt{
			{ID: "p1", CorrectTargetID: "t1"},
			{ID: "p2", CorrectTargetID: "t2"},
		},
	}
	assertResult(t, ScoreMatching(cfg, &Response{Pairs: []MatchedPair{{"p1", "t1"}, {"p2", "t2"}}}), 1, 1)
	assertResult(t, ScoreMatching(cfg, &Response{Pairs: []MatchedPair{{"p1", "t1"}}}), 0, 1)
	assertResult(t, ScoreMatching(cfg, nil), 0, 1)
}

func TestScoreMatching_NoPrompts(t *testing.T) {
	assertResult(t, ScoreMatching(MatchingConfig{Mode: ModeAll}, &Response{}), 0, 0)
	assertResult(t, ScoreMatching(MatchingConfig{Mode: ModePartial}, &Response{}), 0, 0)
}
