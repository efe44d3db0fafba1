package solver

// subsets enumerates the non-empty subsets of {0..n-1} one at a time: all
// subsets of size 1, then size 2, and so on, each size in lexicographic
// order. Only the current subset is held in memory.
type subsets struct {
	n    int
	idx  []int
	done bool
}

func newSubsets(n int) *subsets {
	return &subsets{n: n, idx: make([]int, 0, n), done: n == 0}
}

// Next advances to the following subset and reports whether there is one.
func (s *subsets) Next() bool {
	if s.done {
		return false
	}

	k := len(s.idx)
	if k == 0 {
		s.idx = append(s.idx, 0)
		return true
	}

	// rightmost position that has room to move
	i := k - 1
	for i >= 0 && s.idx[i] == s.n-k+i {
		i--
	}
	if i >= 0 {
		s.idx[i]++
		for j := i + 1; j < k; j++ {
			s.idx[j] = s.idx[j-1] + 1
		}
		return true
	}

	if k == s.n {
		s.done = true
		return false
	}
	s.idx = s.idx[:k+1]
	for j := range s.idx {
		s.idx[j] = j
	}
	return true
}

// Indices returns the current subset in ascending order. The slice is reused
// by the next call to Next.
func (s *subsets) Indices() []int {
	return s.idx
}
