package align

import (
	"bytes"
	"math"

	"github.com/katalvlaran/seqalign/scoring"
)

// direction records which candidate won a cell of the best-score matrix.
type direction uint8

const (
	// dirNone marks a traceback stop: the origin, a free boundary cell,
	// or a zero-floored local cell.
	dirNone direction = iota
	// dirDiag pairs a[i-1] with b[j-1].
	dirDiag
	// dirUp consumes a[i-1] against a gap (a gap run in sequence B).
	dirUp
	// dirLeft consumes b[j-1] against a gap (a gap run in sequence A).
	dirLeft
)

// fillShape selects the boundary conditions that turn the one shared
// recurrence into the global, semi-global, overlap or local variant.
type fillShape struct {
	// freeTop zeroes row 0: a prefix of sequence B may be skipped free.
	freeTop bool
	// freeLeft zeroes column 0: a prefix of sequence A may be skipped free.
	freeLeft bool
	// floor clamps every cell at zero (Smith-Waterman).
	floor bool
}

// dpTable holds the three Gotoh matrices and the per-cell direction of
// the best-score matrix, all as flat row-major buffers of (m+1)×(n+1).
// h is the best score ending at (i,j); e the best ending in a gap run
// in B (vertical); f the best ending in a gap run in A (horizontal).
type dpTable struct {
	m, n  int
	width int // n + 1
	h     []float64
	e     []float64
	f     []float64
	dir   []direction

	// Local-maximum tracking, populated only when filling with floor.
	// Ties keep the first cell seen in row-major order.
	maxI, maxJ int
	maxScore   float64
}

// at maps a cell to its flat-buffer offset.
func (t *dpTable) at(i, j int) int { return i*t.width + j }

// fillGotoh runs the affine-gap recurrence over the full matrix:
//
//	e[i][j] = max(h[i-1][j] + gapOpen, e[i-1][j] + gapExtend)
//	f[i][j] = max(h[i][j-1] + gapOpen, f[i][j-1] + gapExtend)
//	h[i][j] = max(h[i-1][j-1] + score(a[i-1], b[j-1]), e[i][j], f[i][j])
//
// so a gap of k positions costs gapOpen + (k-1)·gapExtend. Direction
// ties resolve diagonal first, then up, then left. Penalized boundaries
// carry the affine ramp gapOpen + (i-1)·gapExtend in h and in the
// matching gap matrix (the ramp is itself a gap run, which the
// traceback walks as one); free boundaries stay zero with dirNone.
//
// Complexity: O(m·n) time and memory.
func fillGotoh(a, b []byte, sub scoring.Matrix, gapOpen, gapExtend float64, shape fillShape) *dpTable {
	m, n := len(a), len(b)
	w := n + 1
	size := (m + 1) * w
	t := &dpTable{m: m, n: n, width: w,
		h:   make([]float64, size),
		e:   make([]float64, size),
		f:   make([]float64, size),
		dir: make([]direction, size),
	}
	negInf := math.Inf(-1)
	for i := range t.e {
		t.e[i] = negInf
		t.f[i] = negInf
	}

	// Boundaries. Free edges stay at h=0/dirNone so the traceback stops
	// there; penalized edges ramp up and point back toward the origin.
	if !shape.freeLeft && !shape.floor {
		for i := 1; i <= m; i++ {
			idx := t.at(i, 0)
			t.h[idx] = ramp(gapOpen, gapExtend, i)
			t.e[idx] = t.h[idx]
			t.dir[idx] = dirUp
		}
	}
	if !shape.freeTop && !shape.floor {
		for j := 1; j <= n; j++ {
			t.h[j] = ramp(gapOpen, gapExtend, j)
			t.f[j] = t.h[j]
			t.dir[j] = dirLeft
		}
	}

	for i := 1; i <= m; i++ {
		row := i * w
		for j := 1; j <= n; j++ {
			idx := row + j
			up := idx - w
			e := math.Max(t.h[up]+gapOpen, t.e[up]+gapExtend)
			f := math.Max(t.h[idx-1]+gapOpen, t.f[idx-1]+gapExtend)
			h := t.h[up-1] + sub.Score(a[i-1], b[j-1])
			d := dirDiag
			if e > h {
				h, d = e, dirUp
			}
			if f > h {
				h, d = f, dirLeft
			}
			if shape.floor && h <= 0 {
				h, d = 0, dirNone
			}
			t.h[idx], t.e[idx], t.f[idx], t.dir[idx] = h, e, f, d
			if shape.floor && h > t.maxScore {
				t.maxScore, t.maxI, t.maxJ = h, i, j
			}
		}
	}

	return t
}

// ramp is the affine cost of a boundary gap of k positions: the first
// costs gapOpen, each further one gapExtend.
func ramp(gapOpen, gapExtend float64, k int) float64 {
	return gapOpen + gapExtend*float64(k-1)
}

// tracebackState distinguishes which matrix the walk is currently in.
// Walking h follows the recorded directions; walking e or f emits a gap
// run and only returns to h where the run was opened.
type tracebackState uint8

const (
	stateH tracebackState = iota
	stateE
	stateF
)

// traceback reconstructs the aligned byte rows backwards from (si, sj).
//
// The walk is a small state machine over the three matrices. In stateH
// the recorded direction decides: diagonal emits a residue pair; up or
// left switch to the gap matrix without moving. In stateE the walk
// emits (a[i-1], '-') and stays in the gap run while the stored value
// continues an extension, i.e. e[i][j] == e[i-1][j] + gapExtend;
// otherwise the run was opened here and the walk returns to stateH.
// stateF mirrors this horizontally. Comparing stored values repeats the
// exact additions of the fill, so the equality is bitwise reliable.
//
// stopAtZero makes the walk halt on a zero-score cell (local mode).
// The walk otherwise halts on dirNone: the origin or a free boundary.
// Returns the rows plus the cell the walk stopped at.
func (t *dpTable) traceback(a, b []byte, si, sj int, gapExtend float64, stopAtZero bool) (rowA, rowB []byte, stopI, stopJ int) {
	i, j := si, sj
	state := stateH
	for {
		idx := t.at(i, j)
		switch state {
		case stateH:
			d := t.dir[idx]
			if d == dirNone || (stopAtZero && t.h[idx] == 0) {
				return reverseBytes(rowA), reverseBytes(rowB), i, j
			}
			switch d {
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
			if t.e[idx] != t.e[idx-t.width]+gapExtend {
				state = stateH
			}
			i--
		case stateF:
			rowA = append(rowA, gapByte)
			rowB = append(rowB, b[j-1])
			if t.f[idx] != t.f[idx-1]+gapExtend {
				state = stateH
			}
			j--
		}
	}
}

// gapByte marks an inserted gap in the aligned rows.
const gapByte = '-'

// reverseBytes reverses s in place and returns it.
func reverseBytes(s []byte) []byte {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}

	return s
}

// gapRun returns n gap bytes.
func gapRun(n int) []byte {
	return bytes.Repeat([]byte{gapByte}, n)
}

// concatRows joins aligned-row fragments into a single row.
func concatRows(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	row := make([]byte, 0, total)
	for _, p := range parts {
		row = append(row, p...)
	}

	return row
}
