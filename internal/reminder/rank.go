package reminder

import "sort"

// Rank orders classified reminders by bucket priority (overdue, urgent,
// due-soon), then by ascending magnitude of daysDiff within a bucket, so
// the most pressing records of each bucket come first. The sort is stable:
// ties keep their input order. The input slice is left unmodified.
func Rank(classified []Classified) []Classified {
	out := make([]Classified, len(classified))
	copy(out, classified)
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].Bucket.weight(), out[j].Bucket.weight()
		if wi != wj {
			return wi < wj
		}
		return absDays(out[i].DaysDiff) < absDays(out[j].DaysDiff)
	})
	return out
}

// TopN returns the first n ranked reminders, or the whole list when n
// exceeds its length.
func TopN(ranked []Classified, n int) []Classified {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func absDays(d int) int {
	if d < 0 {
		return -d
	}
	return d
}
