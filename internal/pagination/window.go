package pagination

// Window returns the page numbers to render as buttons, ascending.
//
// When totalPages fits within maxButtons every page is shown. Otherwise a range
// of maxButtons pages starting maxButtons/2 before the current page is taken and
// two rules are applied on top of it: the first page is always shown and the
// last page is always shown. Pinned pages count against maxButtons, so the range
// is shrunk (dropping pages on the far side of the current page first) until the
// whole window fits.
//
// maxButtons below MinMaxButtons is raised to MinMaxButtons. A current page
// outside [1, totalPages] is clamped for the computation only.
func Window(totalPages, currentPage, maxButtons int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	if maxButtons < MinMaxButtons {
		maxButtons = MinMaxButtons
	}
	if totalPages <= maxButtons {
		return pageRange(1, totalPages)
	}

	current := clamp(currentPage, 1, totalPages)
	lower := max(1, current-maxButtons/2)
	upper := min(totalPages, lower+maxButtons-1)

	for upper-lower+1 > maxButtons-pinnedCount(lower, upper, totalPages) {
		if upper > current {
			upper--
		} else {
			lower++
		}
	}

	window := make([]int, 0, maxButtons)
	if pinFirst(lower) {
		window = append(window, 1)
	}
	window = append(window, pageRange(lower, upper)...)
	if pinLast(upper, totalPages) {
		window = append(window, totalPages)
	}
	return window
}

// pinFirst reports whether page 1 has to be added in front of the range.
func pinFirst(lower int) bool {
	return lower > 1
}

// pinLast reports whether the last page has to be added behind the range.
func pinLast(upper, totalPages int) bool {
	return upper < totalPages
}

func pinnedCount(lower, upper, totalPages int) int {
	n := 0
	if pinFirst(lower) {
		n++
	}
	if pinLast(upper, totalPages) {
		n++
	}
	return n
}

// HasGapBefore reports whether a gap marker belongs between window[i-1] and window[i].
func HasGapBefore(window []int, i int) bool {
	return i > 0 && i < len(window) && window[i]-window[i-1] > 1
}

func pageRange(from, to int) []int {
	if to < from {
		return []int{}
	}
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}

func clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
