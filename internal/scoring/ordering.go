package scoring

// ScoreOrdering grades sequence items. Mode "all" requires the submission
// to equal the correct order exactly, length included. Mode "partial_pairs"
// decomposes the correct order into its n·(n−1)/2 (earlier, later) pairs
// and credits each pair whose two elements both appear in the submission
// with earlier at a strictly smaller index; absent elements earn nothing.
//
// A configured CustomEvaluatorID defers the item to an external evaluator:
// the result keeps the mode's normal MaxScore, scores 0, and carries the
// Deferred flag so callers do not read it as "incorrect".
func ScoreOrdering(cfg OrderingConfig, resp *Response) Result {
	n := len(cfg.CorrectOrder)
	var res Result
	if cfg.Mode == ModePartialPairs {
		res.MaxScore = float64(n * (n - 1) / 2)
	} else if n > 0 {
		res.MaxScore = 1
	}

	if cfg.CustomEvaluatorID != "" {
		res.Deferred = true
		return res
	}

	var submitted []string
	if resp != nil {
		submitted = resp.Order
	}

	if cfg.Mode == ModePartialPairs {
		pos := make(map[string]int, len(submitted))
		for i, id := range submitted {
			if _, ok := pos[id]; !ok {
				pos[id] = i
			}
		}
		credited := 0
		for i := 0; i < n; i++ {
			pi, okI := pos[cfg.CorrectOrder[i]]
			if !okI {
				continue
			}
			for j := i + 1; j < n; j++ {
				if pj, okJ := pos[cfg.CorrectOrder[j]]; okJ && pi < pj {
					credited++
				}
			}
		}
		res.Score = float64(credited)
		return res
	}

	if n == 0 || len(submitted) != n {
		return res
	}
	for i := range submitted {
		if submitted[i] != cfg.CorrectOrder[i] {
			return res
		}
	}
	res.Score = 1
	return res
}
