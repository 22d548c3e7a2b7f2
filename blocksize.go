package sparse3d

// blockSizeCandidates is the fixed, ordered candidate set OptimizeBs scans.
// Six values, matching the original implementation's declared-ten/used-six
// candidate array; Go slices don't need the unused trailing capacity that
// padded out the C source's array.
var blockSizeCandidates = []int{2, 3, 4, 6, 8, 10}

// OptimizeBs evaluates MemoryBs for every candidate in blockSizeCandidates
// plus the array's current block size, selects the one with the smallest
// footprint (the current block size wins ties, since ChangeBs to it is a
// no-op cost-wise; otherwise earliest candidate wins), and rebuilds
// storage under it via ChangeBs. Seeding with the current size guarantees
// OptimizeBs never reports a larger footprint than it started with, even
// when bs was built or reclustered outside the candidate set.
//
// Complexity: O(len(candidates) · nx·ny·nz) for the scan, plus the cost of
// ChangeBs for the winning candidate.
func (a *Array[T]) OptimizeBs() error {
	best := a.bs
	bestCost := a.Memory()
	for _, bs := range blockSizeCandidates {
		cost := a.MemoryBs(bs)
		if cost < bestCost {
			best, bestCost = bs, cost
		}
	}

	return a.ChangeBs(best)
}
