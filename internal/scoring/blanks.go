package scoring

// ScoreFillBlank grades blanks by position: response entry i is tested
// against blank i's acceptable answers, and the blank earns credit if any
// matcher succeeds. Mode "partial" counts correct blanks out of the total;
// mode "all" is binary and requires every blank correct (and at least one
// blank). Missing or empty entries never match.
func ScoreFillBlank(cfg FillBlankConfig, resp *Response) Result {
	total := len(cfg.Blanks)
	correct := 0
	for i, b := range cfg.Blanks {
		var text string
		if resp != nil && i < len(resp.BlankTexts) {
			text = resp.BlankTexts[i]
		}
		for _, m := range b.Acceptable {
			if matchAnswer(text, m) {
				correct++
				break
			}
		}
	}
	if cfg.Mode == ModeAll {
		res := Result{MaxScore: 1}
		if total > 0 && correct == total {
			res.Score = 1
		}
		return res
	}
	return Result{Score: float64(correct), MaxScore: float64(total)}
}
