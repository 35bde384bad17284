package expand

// Product returns the cartesian product of lists in lexicographic order:
// the first list varies slowest and the last list fastest. An empty input
// yields a single empty tuple; any empty list yields no tuples.
func Product[T any](lists [][]T) [][]T {
	total := 1
	for _, l := range lists {
		total *= len(l)
	}
	out := make([][]T, 0, total)
	if total == 0 {
		return out
	}

	idx := make([]int, len(lists))
	for {
		tuple := make([]T, len(lists))
		for i, l := range lists {
			tuple[i] = l[idx[i]]
		}
		out = append(out, tuple)

		// odometer: bump the rightmost position, carrying leftwards
		pos := len(lists) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(lists[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}
