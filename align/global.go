package align

// Global — Needleman-Wunsch global alignment
//
// Description:
//
//	Global aligns both sequences end to end: every residue of A and of
//	B appears in the result exactly once, paired with a residue or a
//	gap. Use it when the inputs are homologous over their whole length
//	(gene vs. gene, protein vs. protein).
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b). Fill the affine-gap (Gotoh) matrices
//     with penalized boundaries: h[i][0] and h[0][j] ramp as
//     GapOpen + GapExtend·(k-1).
//  2. The score is h[m][n].
//  3. Trace back from (m, n) to (0, 0), walking gap runs through the
//     e/f matrices so every run is priced exactly once.
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
// A nil opts aligns with DefaultOptions.
//
// Example:
//
//	opts := align.DefaultOptions()
//	opts.MatrixName = "DNA_SIMPLE"
//	opts.GapOpen, opts.GapExtend = -5, -2
//	res, err := align.Global("ACGTA", "ACGT", &opts)
//	// res.AlignedA == "ACGTA", res.AlignedB == "ACGT-"
func Global(a, b string, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	seqA, seqB, sub, err := prepare(a, b, o, ErrEmptyInput)
	if err != nil {
		return Result{}, err
	}

	t := fillGotoh(seqA, seqB, sub, o.GapOpen, o.GapExtend, fillShape{})
	rowA, rowB, _, _ := t.traceback(seqA, seqB, t.m, t.n, o.GapExtend, false)
	score := t.h[t.at(t.m, t.n)]

	return newResult(rowA, rowB, score, 0, t.m, 0, t.n, o.NormalizeScore), nil
}
