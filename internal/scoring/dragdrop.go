package scoring

import (
	"math"
	"sort"
)

// ScoreDragDrop grades token placements into zones. Placements naming an
// unknown zone or unknown token are dropped up front. Each zone is
// evaluated independently as "set" (exact token-id set equality) or
// "ordered" (position-sorted sequence equality); zones with MaxTokens
// truncate their placements, ordered zones after position sorting.
//
// Aggregation follows the item mode: "all" is binary over all zones,
// "per_zone" counts correct zones, "per_token" sums per-token credit
// (index-aligned for ordered zones, membership for set zones) out of the
// total correct-token count. Zero zones yield {0,0}.
func ScoreDragDrop(cfg DragDropConfig, resp *Response) Result {
	if len(cfg.Zones) == 0 {
		return Result{}
	}

	knownZones := make(map[string]struct{}, len(cfg.Zones))
	for _, z := range cfg.Zones {
		knownZones[z.ID] = struct{}{}
	}
	knownTokens := make(map[string]struct{}, len(cfg.TokenIDs))
	for _, t := range cfg.TokenIDs {
		knownTokens[t] = struct{}{}
	}

	byZone := map[string][]Placement{}
	if resp != nil {
		for _, pl := range resp.Placements {
			if _, ok := knownZones[pl.ZoneID]; !ok {
				continue
			}
			if _, ok := knownTokens[pl.TokenID]; !ok {
				continue
			}
			byZone[pl.ZoneID] = append(byZone[pl.ZoneID], pl)
		}
	}

	correctZones := 0
	tokenCredit := 0
	tokenMax := 0
	for _, z := range cfg.Zones {
		ok, credit := scoreZone(z, byZone[z.ID])
		if ok {
			correctZones++
		}
		tokenCredit += credit
		tokenMax += len(z.CorrectTokenIDs)
	}

	switch cfg.Mode {
	case ModePerZone:
		return Result{Score: float64(correctZones), MaxScore: float64(len(cfg.Zones))}
	case ModePerToken:
		return Result{Score: float64(tokenCredit), MaxScore: float64(tokenMax)}
	default: // all
		res := Result{MaxScore: 1}
		if correctZones == len(cfg.Zones) {
			res.Score = 1
		}
		return res
	}
}

// scoreZone returns whether the zone is wholly correct plus its per-token
// credit.
func scoreZone(z Zone, placements []Placement) (bool, int) {
	if z.Evaluation == ZoneOrdered {
		ordered := make([]Placement, len(placements))
		copy(ordered, placements)
		sort.SliceStable(ordered, func(i, j int) bool {
			return positionOf(ordered[i]) < positionOf(ordered[j])
		})
		if z.MaxTokens != nil && len(ordered) > *z.MaxTokens {
			ordered = ordered[:*z.MaxTokens]
		}

		credit := 0
		for i, pl := range ordered {
			if i < len(z.CorrectTokenIDs) && pl.TokenID == z.CorrectTokenIDs[i] {
				credit++
			}
		}
		correct := len(ordered) == len(z.CorrectTokenIDs) && credit == len(z.CorrectTokenIDs)
		return correct, credit
	}

	// set evaluation
	trimmed := placements
	if z.MaxTokens != nil && len(trimmed) > *z.MaxTokens {
		trimmed = trimmed[:*z.MaxTokens]
	}
	submitted := make(map[string]struct{}, len(trimmed))
	for _, pl := range trimmed {
		submitted[pl.TokenID] = struct{}{}
	}
	want := make(map[string]struct{}, len(z.CorrectTokenIDs))
	credit := 0
	for _, id := range z.CorrectTokenIDs {
		want[id] = struct{}{}
		if _, ok := submitted[id]; ok {
			credit++
		}
	}
	correct := len(submitted) == len(want) && credit == len(want)
	return correct, credit
}

// positionOf sorts placements without a position after every positioned one.
func positionOf(pl Placement) int {
	if pl.Position == nil {
		return math.MaxInt
	}
	return *pl.Position
}
