package bank

import (
	"testing"

	"github.com/examforge/examforge-backend/internal/scoring"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name string
		item Item
		ok   bool
	}{
		{
			"valid mcq",
			Item{Title: "Capitals", Kind: scoring.KindMCQ, Config: scoring.Item{
				Choice: &scoring.ChoiceConfig{AnswerMode: scoring.AnswerSingle, CorrectIndexes: []int{1}},
			}},
			true,
		},
		{
			"missing config",
			Item{Title: "Capitals", Kind: scoring.KindMCQ},
			false,
		},
		{
			"bad answer mode",
			Item{Title: "Capitals", Kind: scoring.KindMCQ, Config: scoring.Item{
				Choice: &scoring.ChoiceConfig{AnswerMode: "triple"},
			}},
			false,
		},
		{
			"unknown kind",
			Item{Title: "X", Kind: scoring.Kind("haiku")},
			false,
		},
		{
			"bad difficulty",
			Item{Title: "X", Kind: scoring.KindEssay, Difficulty: "brutal"},
			false,
		},
		{
			"essay needs no config",
			Item{Title: "Reflect", Kind: scoring.KindEssay},
			true,
		},
		{
			"hotspot polygon too small",
			Item{Title: "Map", Kind: scoring.KindHotspot, Config: scoring.Item{
				Hotspot: &scoring.HotspotConfig{Mode: scoring.ModePartial, Hotspots: []scoring.Hotspot{
					{ID: "h1", Points: []scoring.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
				}},
			}},
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestItemSanitize(t *testing.T) {
	it := Item{
		Title: "Mixed",
		Kind:  scoring.KindMatching,
		Config: scoring.Item{
			Kind: scoring.KindMatching,
			Matching: &scoring.MatchingConfig{
				Mode: scoring.ModePartial,
				Prompts: []scoring.MatchPrompt{
					{ID: "p1", CorrectTargetID: "t1"},
					{ID: "p2", CorrectTargetID: "t2"},
				},
			},
		},
	}
	clean := it.Sanitize()
	if len(clean.Config.Matching.Prompts) != 2 {
		t.Fatal("prompt structure must survive sanitizing")
	}
	for _, p := range clean.Config.Matching.Prompts {
		if p.CorrectTargetID != "" {
			t.Fatalf("answer key leaked for prompt %q", p.ID)
		}
	}
	// original untouched
	if it.Config.Matching.Prompts[0].CorrectTargetID != "t1" {
		t.Fatal("sanitize must not mutate the source item")
	}
}

func TestItemSanitize_Hotspot(t *testing.T) {
	it := Item{
		Title: "Map",
		Kind:  scoring.KindHotspot,
		Config: scoring.Item{
			Kind: scoring.KindHotspot,
			Hotspot: &scoring.HotspotConfig{
				Mode: scoring.ModeAll,
				Hotspots: []scoring.Hotspot{
					{ID: "h1", Points: []scoring.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
				},
			},
		},
	}
	clean := it.Sanitize()
	if clean.Config.Hotspot.Hotspots != nil {
		t.Fatal("hotspot polygons are answer-key material")
	}
}
