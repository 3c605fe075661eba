package scoring

import "testing"

func TestMatchAnswer_Exact(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		matcher   AnswerMatcher
		want      bool
	}{
		{"case-insensitive default", "SKY", AnswerMatcher{Type: "exact", Value: "sky"}, true},
		{"case-insensitive reverse", "sky", AnswerMatcher{Type: "exact", Value: "SKY"}, true},
		{"accent-insensitive", "CAFÉ", AnswerMatcher{Type: "exact", Value: "café"}, true},
		{"accent stripped vs plain", "cafe", AnswerMatcher{Type: "exact", Value: "café"}, true},
		{"case-sensitive match", "Sky", AnswerMatcher{Type: "exact", Value: "Sky", CaseSensitive: true}, true},
		{"case-sensitive mismatch", "sky", AnswerMatcher{Type: "exact", Value: "Sky", CaseSensitive: true}, false},
		{"different word", "sea", AnswerMatcher{Type: "exact", Value: "sky"}, false},
		{"empty candidate never matches", "", AnswerMatcher{Type: "exact", Value: ""}, false},
		{"whitespace-only candidate", "   ", AnswerMatcher{Type: "exact", Value: ""}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchAnswer(tc.candidate, tc.matcher); got != tc.want {
				t.Fatalf("matchAnswer(%q)=%v, want %v", tc.candidate, got, tc.want)
			}
		})
	}
}

func TestMatchAnswer_Regex(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		matcher   AnswerMatcher
		want      bool
	}{
		{"default i flag", "BLUE", AnswerMatcher{Type: "regex", Pattern: "^blue$"}, true},
		{"explicit empty still i", "Blue", AnswerMatcher{Type: "regex", Pattern: "^blue$", Flags: ""}, true},
		{"case-sensitive via flags", "BLUE", AnswerMatcher{Type: "regex", Pattern: "^blue$", Flags: "g"}, false},
		{"unanchored substring", "deep blue sea", AnswerMatcher{Type: "regex", Pattern: "blue"}, true},
		{"alternation", "sky-blue", AnswerMatcher{Type: "regex", Pattern: "^(sky|navy)-blue$"}, true},
		{"malformed pattern is no match", "anything", AnswerMatcher{Type: "regex", Pattern: "[unclosed"}, false},
		{"empty pattern is no match", "anything", AnswerMatcher{Type: "regex", Pattern: ""}, false},
		{"empty candidate never matches", "", AnswerMatcher{Type: "regex", Pattern: ".*"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchAnswer(tc.candidate, tc.matcher); got != tc.want {
				t.Fatalf("matchAnswer(%q)=%v, want %v", tc.candidate, got, tc.want)
			}
		})
	}
}
