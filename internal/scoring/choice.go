package scoring

import "sort"

// ScoreChoice grades MCQ and True/False items. Both sides are deduplicated
// and sorted, then compared for exact set equality; order of selection never
// matters. Binary: MaxScore is always 1, an empty selection scores 0.
func ScoreChoice(cfg ChoiceConfig, resp *Response) Result {
	res := Result{MaxScore: 1}
	if resp == nil || len(resp.SelectedIndexes) == 0 {
		return res
	}
	want := dedupSort(cfg.CorrectIndexes)
	got := dedupSort(resp.SelectedIndexes)
	if len(want) != len(got) {
		return res
	}
	for i := range want {
		if want[i] != got[i] {
			return res
		}
	}
	res.Score = 1
	return res
}

func dedupSort(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
