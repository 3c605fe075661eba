package scoring

import "math"

// ScoreNumeric grades a numeric entry. Binary, MaxScore 1. A missing or
// non-finite value scores 0. Validation "exact" accepts values within
// ±Tolerance of the target (inclusive, default tolerance 0); "range"
// accepts [Min, Max] inclusive on both ends.
func ScoreNumeric(cfg NumericConfig, resp *Response) Result {
	res := Result{MaxScore: 1}
	if resp == nil || resp.Value == nil {
		return res
	}
	v := *resp.Value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return res
	}
	switch cfg.Validation.Mode {
	case "range":
		if v >= cfg.Validation.Min && v <= cfg.Validation.Max {
			res.Score = 1
		}
	default: // exact
		tol := cfg.Validation.Tolerance
		if tol < 0 {
			tol = 0
		}
		if math.Abs(v-cfg.Validation.Value) <= tol {
			res.Score = 1
		}
	}
	return res
}
