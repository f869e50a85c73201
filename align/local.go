package align

// Local — Smith-Waterman local alignment
//
// Description:
//
//	Local finds the highest-scoring pair of subsequences, one from
//	each input, and aligns only those. Everything outside
//	[StartA,EndA) and [StartB,EndB) is ignored. Use it to find a
//	conserved region (domain, motif) inside otherwise unrelated
//	sequences.
//
// Algorithm Outline:
//  1. Fill the Gotoh matrices with every cell floored at 0; a floored
//     cell records no direction, so tracebacks never cross it.
//  2. Track the maximum cell during the fill; ties keep the first cell
//     in row-major scan order.
//  3. If the maximum is below opts.MinScore, return an empty Result
//     (no error): nothing in the inputs aligns well enough.
//  4. Otherwise trace back from the maximum cell until a zero score or
//     missing direction, recording the consumed coordinate windows.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Errors:
//   - ErrGapPenalty          — GapOpen or GapExtend is positive.
//   - ErrEmptyInput          — a sequence is empty after normalization.
//   - scoring.ErrUnknownMatrix — MatrixName is not registered.
//
// An empty Result has Length 0 and IdentityPercent 0, never NaN.
//
// Example:
//
//	opts := align.DefaultOptions()
//	opts.Matrix = scoring.Simple(5, -4, "ACGT")
//	opts.GapOpen, opts.GapExtend = -3, -1
//	res, _ := align.Local("TGTTACGG", "GGTTGACTA", &opts)
//	// res.Score == 22, res.AlignedA == "GTT-AC", res.AlignedB == "GTTGAC"
func Local(a, b string, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	seqA, seqB, sub, err := prepare(a, b, o, ErrEmptyInput)
	if err != nil {
		return Result{}, err
	}

	t := fillGotoh(seqA, seqB, sub, o.GapOpen, o.GapExtend, fillShape{floor: true})
	if t.maxScore < o.MinScore {
		return newResult(nil, nil, 0, 0, 0, 0, 0, o.NormalizeScore), nil
	}

	rowA, rowB, startA, startB := t.traceback(seqA, seqB, t.maxI, t.maxJ, o.GapExtend, true)

	return newResult(rowA, rowB, t.maxScore, startA, t.maxI, startB, t.maxJ, o.NormalizeScore), nil
}
