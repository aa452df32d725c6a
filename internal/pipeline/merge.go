package pipeline

import "github.com/jobsift/jobsift/internal/model"

// Merge combines the per-source lists into one bounded, duplicate-free
// sequence. A shared index walks all lists in lockstep so records from
// different sources alternate turn by turn and no source crowds out another.
// If the cap is still unmet after the interleave, leftovers are appended from
// the index where interleaving stopped, in source order then list order.
func Merge(lists [][]model.Job, limit int) []model.Job {
	if limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	out := make([]model.Job, 0, limit)

	emit := func(j model.Job) {
		if _, dup := seen[j.ID]; dup {
			return
		}
		seen[j.ID] = struct{}{}
		out = append(out, j)
	}

	i := 0
	for len(out) < limit && anyAt(lists, i) {
		full := false
		for k, list := range lists {
			if k > 0 && len(out) >= limit {
				full = true
				break
			}
			if i < len(list) {
				emit(list[i])
			}
		}
		if full {
			break
		}
		i++
	}

	if len(out) < limit {
		for _, list := range lists {
			for j := i; j < len(list) && len(out) < limit; j++ {
				emit(list[j])
			}
		}
	}

	return out
}

// anyAt reports whether any list still has an element at index i.
func anyAt(lists [][]model.Job, i int) bool {
	for _, list := range lists {
		if i < len(list) {
			return true
		}
	}
	return false
}
