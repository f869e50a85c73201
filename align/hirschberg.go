package align

import (
	"bytes"
	"math"

	"github.com/katalvlaran/seqalign/scoring"
)

// Hirschberg — global alignment in linear space
//
// Description:
//
//	Hirschberg produces the same end-to-end alignment as Global while
//	holding only two score rows at a time, so chromosome-scale inputs
//	that would need gigabytes of full matrix fit in O(min(m,n)) extra
//	memory. The price is a simpler gap model: gaps are linear, every
//	gap position costs GapOpen, and GapExtend is ignored.
//
// Algorithm Outline:
//  1. Split a at its midpoint. One forward score pass over the top
//     half and one backward pass over the reversed bottom half meet in
//     the middle; the column maximizing their sum is a point the
//     optimal path provably crosses.
//  2. Recurse on the two sub-problems and concatenate. Sequences of
//     length 0 or 1 are aligned directly and end the recursion, which
//     is O(log m) deep.
//  3. Re-score the assembled alignment column by column; total work
//     stays O(m·n) because each level halves the area.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(min(m, n))
//
// Errors:
//   - ErrGapPenalty          — GapOpen or GapExtend is positive.
//   - ErrEmptySequence       — a sequence is empty after normalization.
//   - scoring.ErrUnknownMatrix — MatrixName is not registered.
//
// When GapOpen == GapExtend the affine and linear models coincide and
// Hirschberg scores exactly like Global.
func Hirschberg(a, b string, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	seqA, seqB, sub, err := prepare(a, b, o, ErrEmptySequence)
	if err != nil {
		return Result{}, err
	}

	// Linear model: every gap position pays the open price.
	gap := o.GapOpen

	// Keep the score rows on the shorter sequence.
	var rowA, rowB []byte
	if len(seqB) > len(seqA) {
		rowB, rowA = hirschbergRec(seqB, seqA, sub, gap)
	} else {
		rowA, rowB = hirschbergRec(seqA, seqB, sub, gap)
	}

	// The recursion never tracks the total, so settle it here.
	score := 0.0
	for i := range rowA {
		if rowA[i] == gapByte || rowB[i] == gapByte {
			score += gap
		} else {
			score += sub.Score(rowA[i], rowB[i])
		}
	}

	return newResult(rowA, rowB, score, 0, len(seqA), 0, len(seqB), o.NormalizeScore), nil
}

// hirschbergRec aligns a against b under a linear gap penalty and
// returns freshly allocated aligned rows.
func hirschbergRec(a, b []byte, sub scoring.Matrix, gap float64) ([]byte, []byte) {
	switch {
	case len(a) == 0:
		return gapRun(len(b)), bytes.Clone(b)
	case len(b) == 0:
		return bytes.Clone(a), gapRun(len(a))
	case len(a) == 1:
		return placeSingle(a, b, sub, gap)
	}

	mid := len(a) / 2
	forward := nwScoreRow(a[:mid], b, sub, gap)
	backward := nwScoreRow(reverseBytes(bytes.Clone(a[mid:])), reverseBytes(bytes.Clone(b)), sub, gap)

	// The optimal path crosses column split between the two halves;
	// ties keep the lowest column.
	split, best := 0, forward[0]+backward[len(b)]
	for j := 1; j <= len(b); j++ {
		if s := forward[j] + backward[len(b)-j]; s > best {
			best, split = s, j
		}
	}

	topA, topB := hirschbergRec(a[:mid], b[:split], sub, gap)
	botA, botB := hirschbergRec(a[mid:], b[split:], sub, gap)

	return concatRows(topA, botA), concatRows(topB, botB)
}

// placeSingle aligns the one-residue sequence a against b: either a[0]
// pairs with its best partner in b, or — when even the best pairing
// loses to pure gaps — both sequences are gapped out entirely.
func placeSingle(a, b []byte, sub scoring.Matrix, gap float64) ([]byte, []byte) {
	off, best := 0, sub.Score(a[0], b[0])+gap*float64(len(b)-1)
	for j := 1; j < len(b); j++ {
		s := gap*float64(j) + sub.Score(a[0], b[j]) + gap*float64(len(b)-j-1)
		if s > best {
			best, off = s, j
		}
	}

	if gap*float64(len(b)+1) > best {
		return concatRows(a, gapRun(len(b))), concatRows([]byte{gapByte}, b)
	}

	return concatRows(gapRun(off), a, gapRun(len(b)-off-1)), bytes.Clone(b)
}

// nwScoreRow returns the last row of the linear-gap Needleman-Wunsch
// score matrix for a×b, using two rolling rows of len(b)+1 cells.
func nwScoreRow(a, b []byte, sub scoring.Matrix, gap float64) []float64 {
	n := len(b)
	prev := make([]float64, n+1)
	cur := make([]float64, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = gap * float64(j)
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = gap * float64(i)
		for j := 1; j <= n; j++ {
			cur[j] = math.Max(prev[j-1]+sub.Score(a[i-1], b[j-1]),
				math.Max(prev[j]+gap, cur[j-1]+gap))
		}
		prev, cur = cur, prev
	}

	return prev
}
