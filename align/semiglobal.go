package align

// SemiGlobal — global alignment with free end gaps
//
// Description:
//
//	SemiGlobal aligns both sequences end to end like Global, but gaps
//	before the first aligned pair and after the last one cost nothing.
//	That makes it the right tool when one sequence is expected to sit
//	inside the other (a read against a gene, a fragment against a
//	contig): the overhanging ends stop distorting the score.
//
// Algorithm Outline:
//  1. Fill the Gotoh matrices with row 0 and column 0 zeroed: leading
//     gaps are free on both sides.
//  2. Scan the last row (j ascending), then the last column
//     (i ascending), for the best score; strict comparison keeps the
//     first cell found. That cell ends the paid part of the alignment.
//  3. Append the unconsumed suffix of the other sequence as free
//     trailing gap columns; trace back until a free boundary cell;
//     prepend the unconsumed prefix as free leading gap columns.
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
// Every residue of both inputs appears in the result; the free ends
// contribute to Length and Gaps but not to Score.
func SemiGlobal(a, b string, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	seqA, seqB, sub, err := prepare(a, b, o, ErrEmptySequence)
	if err != nil {
		return Result{}, err
	}

	t := fillGotoh(seqA, seqB, sub, o.GapOpen, o.GapExtend, fillShape{freeTop: true, freeLeft: true})

	// Best cell over the far edges; ties keep the first one scanned.
	si, sj := t.m, 0
	best := t.h[t.at(si, sj)]
	for j := 1; j <= t.n; j++ {
		if v := t.h[t.at(t.m, j)]; v > best {
			best, si, sj = v, t.m, j
		}
	}
	for i := 0; i <= t.m; i++ {
		if v := t.h[t.at(i, t.n)]; v > best {
			best, si, sj = v, i, t.n
		}
	}

	coreA, coreB, i0, j0 := t.traceback(seqA, seqB, si, sj, o.GapExtend, false)

	// Unconsumed ends become free gap columns around the paid core.
	var trailA, trailB []byte
	if sj == t.n {
		trailA = seqA[si:]
	}
	if si == t.m {
		trailB = seqB[sj:]
	}
	leadA, leadB := seqA[:i0], seqB[:j0]

	rowA := concatRows(gapRun(len(leadB)), leadA, coreA, trailA, gapRun(len(trailB)))
	rowB := concatRows(leadB, gapRun(len(leadA)), coreB, gapRun(len(trailA)), trailB)

	return newResult(rowA, rowB, best, 0, t.m, 0, t.n, o.NormalizeScore), nil
}
