package align

import (
	"strings"

	"github.com/katalvlaran/seqalign/scoring"
)

// Default option values shared by every aligner.
const (
	// DefaultMatrixName is used when neither Matrix nor MatrixName is set.
	DefaultMatrixName = "BLOSUM62"
	// DefaultGapOpen is the cost of the first position of a gap.
	DefaultGapOpen = -10.0
	// DefaultGapExtend is the cost of each additional gap position.
	DefaultGapExtend = -1.0
)

// Options configures an alignment call. One struct serves all six
// aligners; Bandwidth matters only to Banded and MinScore only to Local.
//
// Fields:
//   - Matrix        — literal substitution matrix; wins over MatrixName
//     when non-nil.
//   - MatrixName    — registry name for scoring.Get (case-insensitive).
//     Empty means DefaultMatrixName.
//   - GapOpen       — cost of the first position of a gap run. Must be ≤ 0.
//   - GapExtend     — cost of every following position. Must be ≤ 0.
//     Hirschberg ignores it (pure linear model, every gap position
//     costs GapOpen).
//   - NormalizeCase — trim surrounding whitespace and upper-case both
//     sequences before aligning.
//   - NormalizeScore — divide the final score by the alignment length.
//   - Bandwidth     — Banded only: half-width k of the diagonal band
//     |j-i| ≤ k.
//   - MinScore      — Local only: a best score below this yields an
//     empty Result instead of an alignment.
//
// The zero value performs no case folding; start from DefaultOptions
// for the recommended defaults:
//
//	opts := align.DefaultOptions()
//	opts.MatrixName = "DNA_FULL"
//	res, err := align.Global(a, b, &opts)
type Options struct {
	Matrix         scoring.Matrix
	MatrixName     string
	GapOpen        float64
	GapExtend      float64
	NormalizeCase  bool
	NormalizeScore bool
	Bandwidth      int
	MinScore       float64
}

// DefaultOptions returns the recommended configuration: BLOSUM62,
// GapOpen -10, GapExtend -1, case folding on.
func DefaultOptions() Options {
	return Options{
		MatrixName:    DefaultMatrixName,
		GapOpen:       DefaultGapOpen,
		GapExtend:     DefaultGapExtend,
		NormalizeCase: true,
	}
}

// resolveOptions dereferences opts, substituting DefaultOptions for nil.
func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// substitution resolves the scoring matrix: an explicit literal wins,
// otherwise the named registry entry (DefaultMatrixName when unset).
func (o Options) substitution() (scoring.Matrix, error) {
	if o.Matrix != nil {
		return o.Matrix, nil
	}
	name := o.MatrixName
	if name == "" {
		name = DefaultMatrixName
	}

	return scoring.Get(name)
}

// prepare validates one alignment call and returns the normalized
// sequences plus the resolved matrix. Validation stages, in order:
//
//  1. gap penalty signs (ErrGapPenalty)
//  2. sequence emptiness after normalization (emptyErr — the caller's
//     per-variant sentinel)
//  3. matrix resolution (wrapped scoring.ErrUnknownMatrix)
//
// No logging, no panics on user input.
func prepare(a, b string, o Options, emptyErr error) (seqA, seqB []byte, sub scoring.Matrix, err error) {
	if o.GapOpen > 0 || o.GapExtend > 0 {
		return nil, nil, nil, ErrGapPenalty
	}
	seqA = normalizeSeq(a, o.NormalizeCase)
	seqB = normalizeSeq(b, o.NormalizeCase)
	if len(seqA) == 0 || len(seqB) == 0 {
		return nil, nil, nil, emptyErr
	}
	sub, err = o.substitution()
	if err != nil {
		return nil, nil, nil, err
	}

	return seqA, seqB, sub, nil
}

// normalizeSeq applies case folding when enabled and converts to bytes.
// Alignments are byte-oriented: residue codes are single ASCII letters.
func normalizeSeq(s string, fold bool) []byte {
	if fold {
		s = strings.ToUpper(strings.TrimSpace(s))
	}

	return []byte(s)
}
