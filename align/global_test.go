package align_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGlobal_DNAWithGap verifies the reference nucleotide scenario: one
// trailing deletion, priced as a single gap opening.
func TestGlobal_DNAWithGap(t *testing.T) {
	opts := &align.Options{MatrixName: "DNA_SIMPLE", GapOpen: -5, GapExtend: -2}

	res, err := align.Global("ACGTA", "ACGT", opts)
	require.NoError(t, err)

	assert.Equal(t, "ACGTA", res.AlignedA, "first row")
	assert.Equal(t, "ACGT-", res.AlignedB, "second row")
	assert.Equal(t, 15.0, res.Score, "4 matches at +5, one gap at -5")
	assert.Equal(t, 5, res.Length, "alignment length")
	assert.Equal(t, 4, res.Identity, "matched positions")
	assert.Equal(t, 1, res.Gaps, "gap cells")
	assert.Equal(t, 80.0, res.IdentityPercent, "identity percent")
	assert.Equal(t, 0, res.StartA, "global spans all of a")
	assert.Equal(t, 5, res.EndA)
	assert.Equal(t, 0, res.StartB, "global spans all of b")
	assert.Equal(t, 4, res.EndB)
}

// TestGlobal_ProteinPAM250 verifies the textbook protein pair under
// PAM250 with -8/-2 affine gaps.
func TestGlobal_ProteinPAM250(t *testing.T) {
	opts := &align.Options{MatrixName: "PAM250", GapOpen: -8, GapExtend: -2}

	res, err := align.Global("HEAGAWGHEE", "PAWHEAE", opts)
	require.NoError(t, err)

	assert.Equal(t, 10.0, res.Score, "published PAM250 score")
	assert.Equal(t, "HEAGAWGHEE", res.AlignedA)
	assert.Equal(t, "---PAWHEAE", res.AlignedB)
	assert.Equal(t, 3, res.Identity)
}

// TestGlobal_SelfAlignment verifies that aligning a sequence against
// itself yields full identity and no gaps.
func TestGlobal_SelfAlignment(t *testing.T) {
	opts := &align.Options{MatrixName: "DNA_SIMPLE", GapOpen: -5, GapExtend: -2}

	res, err := align.Global("GATTACA", "GATTACA", opts)
	require.NoError(t, err)

	assert.Equal(t, 35.0, res.Score, "7 matches at +5")
	assert.Equal(t, 7, res.Identity)
	assert.Equal(t, 0, res.Gaps)
	assert.Equal(t, 100.0, res.IdentityPercent)
}

// TestGlobal_SingleMismatch verifies that a lone substitution beats
// opening two gaps.
func TestGlobal_SingleMismatch(t *testing.T) {
	opts := &align.Options{MatrixName: "DNA_SIMPLE", GapOpen: -5, GapExtend: -2}

	res, err := align.Global("A", "T", opts)
	require.NoError(t, err)

	assert.Equal(t, "A", res.AlignedA)
	assert.Equal(t, "T", res.AlignedB)
	assert.Equal(t, -4.0, res.Score, "mismatch -4 beats two gaps at -10")
}

// TestGlobal_CustomMatrix verifies alignment under a literal
// match/mismatch matrix built with scoring.Simple.
func TestGlobal_CustomMatrix(t *testing.T) {
	opts := &align.Options{
		Matrix:    scoring.Simple(1, -1, "ACGTU"),
		GapOpen:   -1,
		GapExtend: -1,
	}

	res, err := align.Global("GATTACA", "GCATGCU", opts)
	require.NoError(t, err)

	assert.Equal(t, "G-ATTACA", res.AlignedA)
	assert.Equal(t, "GCA-TGCU", res.AlignedB)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, 4, res.Identity)
	assert.Equal(t, 2, res.Gaps)
}

// TestGlobal_EmptyInput verifies the empty-sequence error, including
// whitespace-only input under case normalization.
func TestGlobal_EmptyInput(t *testing.T) {
	opts := align.DefaultOptions()

	_, err := align.Global("", "ACGT", &opts)
	assert.ErrorIs(t, err, align.ErrEmptyInput, "empty first sequence")

	_, err = align.Global("ACGT", "", &opts)
	assert.ErrorIs(t, err, align.ErrEmptyInput, "empty second sequence")

	_, err = align.Global("   ", "ACGT", &opts)
	assert.ErrorIs(t, err, align.ErrEmptyInput, "whitespace-only trims to nothing")
}

// TestGlobal_PositiveGapPenalty verifies the uniform gap sign check.
func TestGlobal_PositiveGapPenalty(t *testing.T) {
	opts := align.DefaultOptions()
	opts.GapOpen = 1

	_, err := align.Global("ACGT", "ACGT", &opts)
	assert.ErrorIs(t, err, align.ErrGapPenalty, "positive GapOpen must error")

	opts = align.DefaultOptions()
	opts.GapExtend = 0.5
	_, err = align.Global("ACGT", "ACGT", &opts)
	assert.ErrorIs(t, err, align.ErrGapPenalty, "positive GapExtend must error")
}

// TestGlobal_UnknownMatrixName verifies that a bad registry name
// surfaces the scoring sentinel.
func TestGlobal_UnknownMatrixName(t *testing.T) {
	opts := &align.Options{MatrixName: "BLOSUM63", GapOpen: -10, GapExtend: -1}

	_, err := align.Global("ACGT", "ACGT", opts)
	assert.ErrorIs(t, err, scoring.ErrUnknownMatrix, "unknown name must surface the registry error")
}

// TestGlobal_ScoreSymmetricUnderSwap verifies score symmetry under
// input swap with a symmetric substitution matrix.
func TestGlobal_ScoreSymmetricUnderSwap(t *testing.T) {
	opts := &align.Options{MatrixName: "BLOSUM62", GapOpen: -10, GapExtend: -1}

	pairs := [][2]string{
		{"HEAGAWGHEE", "PAWHEAE"},
		{"MKTAYIAKQR", "KTAYIA"},
		{"GATTACA", "GCATGC"},
	}
	for _, p := range pairs {
		ab, err := align.Global(p[0], p[1], opts)
		require.NoError(t, err)
		ba, err := align.Global(p[1], p[0], opts)
		require.NoError(t, err)
		assert.Equal(t, ab.Score, ba.Score, "swap %q/%q", p[0], p[1])
	}
}

// TestGlobal_RowsReconstructInputs verifies that stripping gaps from
// the aligned rows recovers both inputs exactly.
func TestGlobal_RowsReconstructInputs(t *testing.T) {
	opts := &align.Options{MatrixName: "DNA_SIMPLE", GapOpen: -5, GapExtend: -2}

	a, b := "ACGTACGTTGCA", "ACGTCGTTCA"
	res, err := align.Global(a, b, opts)
	require.NoError(t, err)

	assert.Equal(t, a, strings.ReplaceAll(res.AlignedA, "-", ""), "row A without gaps")
	assert.Equal(t, b, strings.ReplaceAll(res.AlignedB, "-", ""), "row B without gaps")
	assert.Equal(t, len(res.AlignedA), len(res.AlignedB), "rows stay equal length")
	assert.Equal(t, res.Length, len(res.AlignedA), "Length matches the rows")
}
