package ledger

import "sort"

// The historical data has no reliable timestamps, so "which of a shop's old
// records wins" is decided exactly like the SQL reports this system
// replaced: MAX() over the non-empty values. The sort below must stay
// stable so ties keep their input order before the last element is taken.

// maxString returns the greatest non-empty value under lexicographic
// ordering, or "" when the group has none.
func maxString(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i] < kept[j] })
	return kept[len(kept)-1]
}

// maxFloat returns the greatest value under numeric ascending ordering.
// The second result is false when the group is empty.
func maxFloat(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	kept := make([]float64, len(values))
	copy(kept, values)
	sort.SliceStable(kept, func(i, j int) bool { return kept[i] < kept[j] })
	return kept[len(kept)-1], true
}
