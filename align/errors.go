package align

import "errors"

var (
	// ErrEmptyInput indicates a sequence that is empty after trimming.
	// Returned by Global and Local.
	ErrEmptyInput = errors.New("align: sequence is empty or contains only whitespace")
	// ErrEmptySequence indicates a sequence that is empty after trimming.
	// Returned by SemiGlobal, Overlap, Banded and Hirschberg; the wording
	// differs from ErrEmptyInput on purpose, callers match either sentinel.
	ErrEmptySequence = errors.New("align: sequences cannot be empty")
	// ErrGapPenalty indicates a positive GapOpen or GapExtend.
	ErrGapPenalty = errors.New("align: gap penalties must be <= 0")
	// ErrBandConstraint indicates the diagonal band cannot produce an
	// alignment: negative bandwidth, length difference wider than the band,
	// an unreachable terminal cell, or a traceback step leaving the band.
	// Banded wraps it with the specific cause.
	ErrBandConstraint = errors.New("align: band constraint violated")
)
