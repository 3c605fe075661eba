package scoring

// ScoreMatching grades prompt→target pairings. Duplicate submissions for a
// prompt resolve first-write-wins. Mode "partial" counts correct prompts;
// mode "all" is binary over all prompts with MaxScore 1 when the item has
// at least one prompt, 0 otherwise.
func ScoreMatching(cfg MatchingConfig, resp *Response) Result {
	chosen := map[string]string{}
	if resp != nil {
		for _, p := range resp.Pairs {
			if _, ok := chosen[p.PromptID]; !ok {
				chosen[p.PromptID] = p.TargetID
			}
		}
	}
	correct := 0
	for _, pr := range cfg.Prompts {
		if t, ok := chosen[pr.ID]; ok && t == pr.CorrectTargetID {
			correct++
		}
	}
	if cfg.Mode == ModeAll {
		var res Result
		if len(cfg.Prompts) > 0 {
			res.MaxScore = 1
			if correct == len(cfg.Prompts) {
				res.Score = 1
			}
		}
		return res
	}
	return Result{Score: float64(correct), MaxScore: float64(len(cfg.Prompts))}
}
