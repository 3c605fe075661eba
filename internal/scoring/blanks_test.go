package scoring

import "testing"

func exact(v string) AnswerMatcher { return AnswerMatcher{Type: "exact", Value: v} }

func TestScoreFillBlank_Partial(t *testing.T) {
	cfg := FillBlankConfig{
		Mode: ModePartial,
		Blanks: []Blank{
			{Acceptable: []AnswerMatcher{exact("sky")}},
			{Acceptable: []AnswerMatcher{exact("sea"), exact("ocean")}},
			{Acceptable: []AnswerMatcher{{Type: "regex", Pattern: "^gr(a|e)y$"}}},
		},
	}

	tests := []struct {
		name  string
		texts []string
		score float64
	}{
		{"all correct", []string{"SKY", "ocean", "grey"}, 3},
		{"second acceptable answer", []string{"sky", "sea", "gray"}, 3},
		{"one wrong", []string{"sky", "land", "grey"}, 2},
		{"short response scores by position", []string{"sky"}, 1},
		{"empty entries never match", []string{"", "", ""}, 0},
		{"nil response", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var resp *Response
			if tc.texts != nil {
				resp = &Response{BlankTexts: tc.texts}
			}
			assertResult(t, ScoreFillBlank(cfg, resp), tc.score, 3)
		})
	}
}

func TestScoreFillBlank_All(t *testing.T) {
	cfg := FillBlankConfig{
		Mode: ModeAll,
		Blanks: []Blank{
			{Acceptable: []AnswerMatcher{exact("red")}},
			{Acceptable: []AnswerMatcher{exact("blue")}},
		},
	}
	assertResult(t, ScoreFillBlank(cfg, &Response{BlankTexts: []string{"red", "blue"}}), 1, 1)
	assertResult(t, ScoreFillBlank(cfg, &Response{BlankTexts: []string{"red", "green"}}), 0, 1)
	assertResult(t, ScoreFillBlank(cfg, nil), 0, 1)
}

func TestScoreFillBlank_NoBlanks(t *testing.T) {
	// all mode with zero blanks is incorrect by definition, not vacuously right
	assertResult(t, ScoreFillBlank(FillBlankConfig{Mode: ModeAll}, &Response{}), 0, 1)
	assertResult(t, ScoreFillBlank(FillBlankConfig{Mode: ModePartial}, &Response{}), 0, 0)
}
