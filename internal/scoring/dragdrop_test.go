package scoring

import "testing"

func place(zone, token string, pos int) Placement {
	return Placement{ZoneID: zone, TokenID: token, Position: &pos}
}

func orderedCfg(mode string) DragDropConfig {
	return DragDropConfig{
		Mode:     mode,
		TokenIDs: []string{"t1", "t2", "t3"},
		Zones: []Zone{
			{ID: "z1", Evaluation: ZoneOrdered, CorrectTokenIDs: []string{"t1", "t2"}},
		},
	}
}

func TestScoreDragDrop_OrderedPerToken(t *testing.T) {
	cfg := orderedCfg(ModePerToken)

	// both positions wrong: 0 of 2
	got := ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t2", 0), place("z1", "t1", 1),
	}})
	assertResult(t, got, 0, 2)

	// both positions right: 2 of 2
	got = ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t1", 0), place("z1", "t2", 1),
	}})
	assertResult(t, got, 2, 2)

	// position values drive order, not submission order
	got = ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t2", 5), place("z1", "t1", 2),
	}})
	assertResult(t, got, 2, 2)

	// missing positions sort last
	got = ScoreDragDrop(cfg, &Response{Placements: []Placement{
		{ZoneID: "z1", TokenID: "t1"}, place("z1", "t2", 3),
	}})
	assertResult(t, got, 0, 2) // sorted: t2, t1 — both indexes wrong
}

func TestScoreDragDrop_OrderedAllMode(t *testing.T) {
	cfg := orderedCfg(ModeAll)
	assertResult(t, ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t1", 0), place("z1", "t2", 1),
	}}), 1, 1)
	// extra token breaks exact sequence equality
	assertResult(t, ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t1", 0), place("z1", "t2", 1), place("z1", "t3", 2),
	}}), 0, 1)
	// prefix alone is not enough
	assertResult(t, ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t1", 0),
	}}), 0, 1)
}

func TestScoreDragDrop_SetZones(t *testing.T) {
	cfg := DragDropConfig{
		Mode:     ModePerZone,
		TokenIDs: []string{"t1", "t2", "t3", "t4"},
		Zones: []Zone{
			{ID: "z1", Evaluation: ZoneSet, CorrectTokenIDs: []string{"t1", "t2"}},
			{ID: "z2", Evaluation: ZoneSet, CorrectTokenIDs: []string{"t3"}},
		},
	}

	tests := []struct {
		name       string
		placements []Placement
		score      float64
	}{
		{"both zones exact", []Placement{place("z1", "t2", 0), place("z1", "t1", 1), place("z2", "t3", 0)}, 2},
		{"extra token spoils set", []Placement{place("z1", "t1", 0), place("z1", "t2", 1), place("z1", "t4", 2), place("z2", "t3", 0)}, 1},
		{"missing token spoils set", []Placement{place("z1", "t1", 0), place("z2", "t3", 0)}, 1},
		{"order irrelevant for sets", []Placement{place("z1", "t2", 9), place("z1", "t1", 0), place("z2", "t3", 4)}, 2},
		{"empty", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertResult(t, ScoreDragDrop(cfg, &Response{Placements: tc.placements}), tc.score, 2)
		})
	}
}

func TestScoreDragDrop_SetPerToken(t *testing.T) {
	cfg := DragDropConfig{
		Mode:     ModePerToken,
		TokenIDs: []string{"t1", "t2", "t3"},
		Zones: []Zone{
			{ID: "z1", Evaluation: ZoneSet, CorrectTokenIDs: []string{"t1", "t2"}},
		},
	}
	// one correct, one extra: membership credit, extras not penalized here
	got := ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t1", 0), place("z1", "t3", 1),
	}})
	assertResult(t, got, 1, 2)
}

func TestScoreDragDrop_UnknownRefsFiltered(t *testing.T) {
	cfg := orderedCfg(ModePerToken)
	got := ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("zX", "t1", 0),  // unknown zone
		place("z1", "tX", 0),  // unknown token
		place("z1", "t1", 0),  // valid
		place("z1", "t2", 1),  // valid
	}})
	assertResult(t, got, 2, 2)
}

func TestScoreDragDrop_MaxTokensTruncation(t *testing.T) {
	cfg := DragDropConfig{
		Mode:     ModePerZone,
		TokenIDs: []string{"t1", "t2", "t3"},
		Zones: []Zone{
			{ID: "z1", Evaluation: ZoneOrdered, MaxTokens: intPtr(2), CorrectTokenIDs: []string{"t1", "t2"}},
		},
	}
	// three placements; ordered zones sort by position first, then truncate,
	// so the out-of-range t3 falls off and the zone is correct
	got := ScoreDragDrop(cfg, &Response{Placements: []Placement{
		place("z1", "t3", 9), place("z1", "t1", 0), place("z1", "t2", 1),
	}})
	assertResult(t, got, 1, 1)
}

func TestScoreDragDrop_NoZones(t *testing.T) {
	got := ScoreDragDrop(DragDropConfig{Mode: ModeAll}, &Response{})
	assertResult(t, got, 0, 0)
}
