package series

// Expand returns the Cartesian product of lists in lexicographic order: the
// first list varies slowest. Any empty list, or no lists at all, yields an
// empty result.
func Expand(lists ...[]string) [][]string {
	if len(lists) == 0 {
		return nil
	}
	total := 1
	for _, l := range lists {
		total *= len(l)
	}
	if total == 0 {
		return nil
	}

	out := make([][]string, 0, total)
	idx := make([]int, len(lists))
	for {
		tuple := make([]string, len(lists))
		for i, l := range lists {
			tuple[i] = l[idx[i]]
		}
		out = append(out, tuple)

		// odometer increment, last list fastest
		i := len(lists) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(lists[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}
