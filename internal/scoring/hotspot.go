package scoring

// ScoreHotspot grades point selections against polygon regions. The
// selection budget is min(hotspotCount, max(1, maxSelections)) with
// maxSelections defaulting to the hotspot count; submissions past the
// budget are ignored, not penalized. Each considered point matches the
// first containing hotspot, deduplicated by hotspot id. Mode "partial"
// scores matched regions out of the budget; mode "all" is binary and
// requires every hotspot matched. Zero hotspots yield {0,0}.
func ScoreHotspot(cfg HotspotConfig, resp *Response) Result {
	n := len(cfg.Hotspots)
	if n == 0 {
		return Result{}
	}
	budget := n
	if cfg.MaxSelections != nil {
		budget = *cfg.MaxSelections
	}
	if budget < 1 {
		budget = 1
	}
	if budget > n {
		budget = n
	}

	var points []Point
	if resp != nil {
		points = resp.Points
	}
	if len(points) > budget {
		points = points[:budget]
	}

	matched := make(map[string]struct{}, budget)
	for _, p := range points {
		for _, h := range cfg.Hotspots {
			if pointInPolygon(p, h.Points) {
				matched[h.ID] = struct{}{}
				break
			}
		}
	}

	if cfg.Mode == ModeAll {
		res := Result{MaxScore: 1}
		if len(matched) == n {
			res.Score = 1
		}
		return res
	}
	return Result{Score: float64(len(matched)), MaxScore: float64(budget)}
}
