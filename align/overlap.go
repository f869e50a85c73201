package align

// Overlap — dovetail alignment of a suffix against a prefix
//
// Description:
//
//	Overlap finds the best join between the END of sequence b and the
//	START of sequence a, the way two sequencing reads from the same
//	molecule dovetail. The prefix of b and the suffix of a are free;
//	everything between them is scored like a global alignment. Order
//	matters: Overlap(x, y) asks whether x continues y, not the reverse.
//
// Algorithm Outline:
//  1. Fill the Gotoh matrices with row 0 zeroed (skipping the start of
//     b is free) and column 0 on the affine ramp (skipping the start
//     of a is paid).
//  2. Take the best score in the last column, lowest row on ties: the
//     whole of b up to that point is consumed, the rest of a hangs
//     over the end for free.
//  3. Trace back to row 0, then pad the free overhangs with gap
//     columns on both sides.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Errors:
//   - ErrGapPenalty          — GapOpen or GapExtend is positive.
//   - ErrEmptySequence       — a sequence is empty after normalization.
//   - scoring.ErrUnknownMatrix — MatrixName is not registered.
//
// Example (two reads sharing a 3 bp junction):
//
//	r, _ := align.Overlap("CGTTTT", "AAACGT", nil)
//	// r.AlignedA = "---CGTTTT"
//	// r.AlignedB = "AAACGT---"
func Overlap(a, b string, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	seqA, seqB, sub, err := prepare(a, b, o, ErrEmptySequence)
	if err != nil {
		return Result{}, err
	}

	t := fillGotoh(seqA, seqB, sub, o.GapOpen, o.GapExtend, fillShape{freeTop: true})

	// Best join sits in the last column; ties keep the lowest row.
	si := 0
	best := t.h[t.at(si, t.n)]
	for i := 1; i <= t.m; i++ {
		if v := t.h[t.at(i, t.n)]; v > best {
			best, si = v, i
		}
	}

	// The free top row guarantees the walk ends at row 0.
	coreA, coreB, _, j0 := t.traceback(seqA, seqB, si, t.n, o.GapExtend, false)

	leadB, trailA := seqB[:j0], seqA[si:]
	rowA := concatRows(gapRun(len(leadB)), coreA, trailA)
	rowB := concatRows(leadB, coreB, gapRun(len(trailA)))

	return newResult(rowA, rowB, best, 0, t.m, 0, t.n, o.NormalizeScore), nil
}
