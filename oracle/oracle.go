// Package oracle implements a naive, exponential-table dynamic-program
// reference for the Multiple Longest Common Subsequence of dim strings —
// used only by tests, to check the incremental engine's answer.
//
// Ported from original_source/src/naivemlcs.c. The C table is a single
// malloc'd int* indexed by place-value-encoded coordinates; this keeps
// the exact same place-value indexing scheme (so the two are easy to
// compare line by line) rather than switching to a recursive/memoized
// map, since the spec calls out this file's indexing specifically as
// worth preserving.
package oracle

// MLCS returns the length of the longest common subsequence shared by
// every string in ss. Returns 0 if any string is empty.
func MLCS(ss []string) int {
	dim := len(ss)
	n := make([]int, dim)
	sz := 1
	for i, s := range ss {
		n[i] = len(s) + 1
		if n[i] == 1 {
			return 0
		}
		sz *= n[i]
	}

	t := make([]int, sz)
	c := make([]int, dim)
	sc := make([]int, dim)

	for j := 0; j < sz; j++ {
		zeroCoord := idx2coord(dim, n, j, c)
		if zeroCoord {
			t[j] = 0
			continue
		}

		letterMatch := true
		for i := 1; letterMatch && i < dim; i++ {
			letterMatch = ss[i][c[i]-1] == ss[0][c[0]-1]
		}

		if letterMatch {
			for i := 0; i < dim; i++ {
				sc[i] = c[i] - 1
			}
			t[j] = t[coord2idx(dim, n, sc)] + 1
			continue
		}

		best := 0
		for i := 0; i < dim; i++ {
			c[i]--
			jj := coord2idx(dim, n, c)
			c[i]++
			if best < t[jj] {
				best = t[jj]
			}
		}
		t[j] = best
	}

	return t[sz-1]
}

// idx2coord decodes place-value index j into coordinates c, and reports
// whether any coordinate is 0 (the DP table's base case).
func idx2coord(dim int, n []int, j int, c []int) bool {
	zeroCoord := false
	for i := 0; i < dim; i++ {
		c[i] = j % n[i]
		j /= n[i]
		zeroCoord = zeroCoord || c[i] == 0
	}
	return zeroCoord
}

// coord2idx encodes coordinates c into a place-value index.
func coord2idx(dim int, n []int, c []int) int {
	r := c[dim-1]
	for i := dim - 2; i >= 0; i-- {
		r *= n[i]
		r += c[i]
	}
	return r
}
