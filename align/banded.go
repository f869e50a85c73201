package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqalign/scoring"
)

// Banded — global alignment restricted to a diagonal band
//
// Description:
//
//	Banded computes the same end-to-end alignment as Global, but only
//	visits cells with |i−j| ≤ k (Options.Bandwidth). For sequences that
//	are already known to be similar — reads against a reference, two
//	versions of the same gene — the optimal path hugs the main diagonal
//	and the band loses nothing while the cost drops from O(m·n) to
//	O(m·k).
//
// Algorithm Outline:
//  1. Store the band in a dense (m+1)×(2k+1) buffer: cell (i, j) lives
//     at band column j−i+k of row i, so every row occupies the same
//     small stripe and neighbour lookups stay O(1).
//  2. Fill the Gotoh recurrences inside the band; neighbours outside
//     it read −∞ and can never win.
//  3. If the corner cell is still −∞ no path fits inside the band and
//     the call fails; otherwise trace back exactly as Global does.
//
// Complexity:
//
//	Time   = O(m·k)
//	Memory = O(m·k)
//
// Errors:
//   - ErrBandConstraint      — Bandwidth is negative, the length
//     difference exceeds it, or no alignment fits inside the band.
//   - ErrGapPenalty          — GapOpen or GapExtend is positive.
//   - ErrEmptySequence       — a sequence is empty after normalization.
//   - scoring.ErrUnknownMatrix — MatrixName is not registered.
//
// With Bandwidth ≥ max(m, n) the band covers the whole matrix and the
// result matches Global exactly.
func Banded(a, b string, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	seqA, seqB, sub, err := prepare(a, b, o, ErrEmptySequence)
	if err != nil {
		return Result{}, err
	}
	if o.Bandwidth < 0 {
		return Result{}, fmt.Errorf("%w: bandwidth %d is negative", ErrBandConstraint, o.Bandwidth)
	}
	if diff := abs(len(seqA) - len(seqB)); diff > o.Bandwidth {
		return Result{}, fmt.Errorf("%w: length difference %d exceeds bandwidth %d",
			ErrBandConstraint, diff, o.Bandwidth)
	}

	t := fillBanded(seqA, seqB, sub, o.GapOpen, o.GapExtend, o.Bandwidth)

	last := t.at(t.m, t.offset(t.m, t.n))
	if math.IsInf(t.h[last], -1) {
		return Result{}, fmt.Errorf("%w: no alignment reaches the end within bandwidth %d, widen the band",
			ErrBandConstraint, o.Bandwidth)
	}

	rowA, rowB, err := t.traceback(seqA, seqB, o.GapExtend)
	if err != nil {
		return Result{}, err
	}

	return newResult(rowA, rowB, t.h[last], 0, t.m, 0, t.n, o.NormalizeScore), nil
}

// bandTable holds the Gotoh matrices compressed to a diagonal band of
// half-width k. Matrix cell (i, j) lives at band column j−i+k of row i;
// slots the band never reaches keep their −∞ fill.
type bandTable struct {
	m, n, k int
	width   int // 2k+1 band columns per row
	h, e, f []float64
	dir     []direction
}

// at maps (row, band column) to the flat buffer index.
func (t *bandTable) at(i, o int) int { return i*t.width + o }

// offset is the band column of matrix cell (i, j).
func (t *bandTable) offset(i, j int) int { return j - i + t.k }

// fillBanded runs the Gotoh recurrences over the band only.
func fillBanded(a, b []byte, sub scoring.Matrix, gapOpen, gapExtend float64, k int) *bandTable {
	m, n := len(a), len(b)
	width := 2*k + 1
	size := (m + 1) * width
	t := &bandTable{
		m: m, n: n, k: k, width: width,
		h:   make([]float64, size),
		e:   make([]float64, size),
		f:   make([]float64, size),
		dir: make([]direction, size),
	}
	negInf := math.Inf(-1)
	for i := range t.h {
		t.h[i], t.e[i], t.f[i] = negInf, negInf, negInf
	}

	t.h[t.at(0, t.offset(0, 0))] = 0

	// Affine boundary ramps, clipped to the band. The ramp is itself a
	// gap run, so it lands in the matching gap matrix too.
	for j := 1; j <= min(n, k); j++ {
		idx := t.at(0, t.offset(0, j))
		t.h[idx] = ramp(gapOpen, gapExtend, j)
		t.f[idx] = t.h[idx]
		t.dir[idx] = dirLeft
	}
	for i := 1; i <= min(m, k); i++ {
		idx := t.at(i, t.offset(i, 0))
		t.h[idx] = ramp(gapOpen, gapExtend, i)
		t.e[idx] = t.h[idx]
		t.dir[idx] = dirUp
	}

	for i := 1; i <= m; i++ {
		lo, hi := max(1, i-k), min(n, i+k)
		for j := lo; j <= hi; j++ {
			o := t.offset(i, j)
			idx := t.at(i, o)

			// Up neighbour (i−1, j) sits one band column to the right,
			// left neighbour (i, j−1) one to the left, the diagonal
			// (i−1, j−1) straight above. Off-band reads are −∞.
			hUp, eUp := negInf, negInf
			if o+1 < t.width {
				hUp, eUp = t.h[idx-t.width+1], t.e[idx-t.width+1]
			}
			hLeft, fLeft := negInf, negInf
			if o > 0 {
				hLeft, fLeft = t.h[idx-1], t.f[idx-1]
			}

			e := math.Max(hUp+gapOpen, eUp+gapExtend)
			f := math.Max(hLeft+gapOpen, fLeft+gapExtend)

			h := t.h[idx-t.width] + sub.Score(a[i-1], b[j-1])
			d := dirDiag
			if e > h {
				h, d = e, dirUp
			}
			if f > h {
				h, d = f, dirLeft
			}

			t.h[idx], t.e[idx], t.f[idx], t.dir[idx] = h, e, f, d
		}
	}

	return t
}

// traceback mirrors dpTable.traceback over the band buffer. Every step
// is checked against the band before it is read: a walk that escapes
// the band indicates a fill bug, and surfacing it beats a silent
// out-of-range read.
func (t *bandTable) traceback(a, b []byte, gapExtend float64) (rowA, rowB []byte, err error) {
	i, j := t.m, t.n
	state := stateH
	for {
		if d := j - i; d > t.k || d < -t.k {
			return nil, nil, fmt.Errorf("%w: traceback left the band at (%d, %d)", ErrBandConstraint, i, j)
		}
		o := t.offset(i, j)
		idx := t.at(i, o)

		switch state {
		case stateH:
			switch t.dir[idx] {
			case dirNone:
				return reverseBytes(rowA), reverseBytes(rowB), nil
			case dirDiag:
				rowA = append(rowA, a[i-1])
				rowB = append(rowB, b[j-1])
				i--
				j--
			case dirUp:
				state = stateE
			case dirLeft:
				state = stateF
			}
		case stateE:
			rowA = append(rowA, a[i-1])
			rowB = append(rowB, gapByte)
			if o+1 >= t.width || t.e[idx] != t.e[idx-t.width+1]+gapExtend {
				state = stateH
			}
			i--
		case stateF:
			rowA = append(rowA, gapByte)
			rowB = append(rowB, b[j-1])
			if o == 0 || t.f[idx] != t.f[idx-1]+gapExtend {
				state = stateH
			}
			j--
		}
	}
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
