package scoring_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aminoAcids is the residue order shared by every protein matrix.
const aminoAcids = "ARNDCQEGHILKMFPSTWYV"

// TestGet_CaseInsensitive verifies that registry lookup ignores case.
func TestGet_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"BLOSUM62", "blosum62", "BlOsUm62"} {
		m, err := scoring.Get(name)
		require.NoError(t, err, "lookup %q should succeed", name)
		assert.Equal(t, 4.0, m.Score('A', 'A'), "every casing must reach the same matrix")
	}
}

// TestGet_UnknownMatrix verifies the error for an unregistered name:
// it matches ErrUnknownMatrix and its message lists what is available.
func TestGet_UnknownMatrix(t *testing.T) {
	_, err := scoring.Get("BLOSUM60")
	require.Error(t, err, "BLOSUM60 is not a registered matrix")
	assert.ErrorIs(t, err, scoring.ErrUnknownMatrix, "must match the sentinel")
	assert.Contains(t, err.Error(), `"BLOSUM60"`, "message should name the offender")
	assert.Contains(t, err.Error(), "available:", "message should enumerate the registry")
	assert.Contains(t, err.Error(), "DNA_FULL", "enumeration should include every name")
}

// TestGet_AllRegisteredNames verifies that every name reported by Names
// resolves to a usable matrix.
func TestGet_AllRegisteredNames(t *testing.T) {
	for _, name := range scoring.Names() {
		m, err := scoring.Get(name)
		assert.NoError(t, err, "Get(%q) should succeed", name)
		assert.NotNil(t, m, "Get(%q) should return a matrix", name)
	}
}

// TestNames_SortedAndComplete pins the full registry listing.
func TestNames_SortedAndComplete(t *testing.T) {
	want := []string{
		"BLOSUM45", "BLOSUM50", "BLOSUM62", "BLOSUM80", "BLOSUM90",
		"DNA_FULL", "DNA_SIMPLE",
		"PAM120", "PAM250", "PAM30", "PAM70",
	}
	assert.Equal(t, want, scoring.Names(), "Names must be sorted and complete")
}

// TestMatrix_ScoreBlosum62 pins reference cells of BLOSUM62.
func TestMatrix_ScoreBlosum62(t *testing.T) {
	m, err := scoring.Get("BLOSUM62")
	require.NoError(t, err)

	assert.Equal(t, 4.0, m.Score('A', 'A'), "A/A")
	assert.Equal(t, -1.0, m.Score('A', 'R'), "A/R")
	assert.Equal(t, 11.0, m.Score('W', 'W'), "W/W")
	assert.Equal(t, 5.0, m.Score('E', 'E'), "E/E")
	assert.Equal(t, 0.0, m.Score('X', 'Z'), "X/Z: ambiguity codes are not in the table")
}

// TestMatrix_ScorePam250 pins reference cells of the classic Dayhoff
// PAM250 table.
func TestMatrix_ScorePam250(t *testing.T) {
	m, err := scoring.Get("PAM250")
	require.NoError(t, err)

	assert.Equal(t, 2.0, m.Score('A', 'A'), "A/A")
	assert.Equal(t, 12.0, m.Score('C', 'C'), "C/C")
	assert.Equal(t, 17.0, m.Score('W', 'W'), "W/W")
	assert.Equal(t, 0.0, m.Score('H', 'P'), "H/P")
}

// TestMatrix_ScoreDNA pins reference cells of both nucleotide matrices.
func TestMatrix_ScoreDNA(t *testing.T) {
	simple, err := scoring.Get("DNA_SIMPLE")
	require.NoError(t, err)
	assert.Equal(t, 5.0, simple.Score('A', 'A'), "simple match")
	assert.Equal(t, -4.0, simple.Score('A', 'C'), "simple mismatch")
	assert.Equal(t, 0.0, simple.Score('A', 'N'), "N is outside the simple alphabet")

	full, err := scoring.Get("DNA_FULL")
	require.NoError(t, err)
	assert.Equal(t, 5.0, full.Score('A', 'A'), "exact match")
	assert.Equal(t, -4.0, full.Score('A', 'T'), "transversion")
	assert.Equal(t, -2.0, full.Score('A', 'N'), "any-base wildcard")
	assert.Equal(t, -1.0, full.Score('N', 'N'), "N/N")
	assert.Equal(t, -1.0, full.Score('S', 'S'), "two-base ambiguity vs itself")
	assert.Equal(t, 1.0, full.Score('R', 'A'), "purine wildcard covering A")
	assert.Equal(t, -4.0, full.Score('W', 'S'), "disjoint ambiguity sets")
}

// TestMatrix_ScoreCaseFolding verifies that Score upper-cases both
// residues before lookup.
func TestMatrix_ScoreCaseFolding(t *testing.T) {
	m, err := scoring.Get("BLOSUM62")
	require.NoError(t, err)

	assert.Equal(t, 4.0, m.Score('a', 'a'), "lower/lower")
	assert.Equal(t, 4.0, m.Score('a', 'A'), "mixed case")
	assert.Equal(t, -1.0, m.Score('r', 'A'), "mixed case off-diagonal")
}

// TestMatrix_ScoreUnknownSymbols verifies the zero fallback: symbols
// absent from the table score 0 and never fail.
func TestMatrix_ScoreUnknownSymbols(t *testing.T) {
	m, err := scoring.Get("BLOSUM62")
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.Score('X', 'A'), "unknown row")
	assert.Equal(t, 0.0, m.Score('A', 'X'), "unknown column")
	assert.Equal(t, 0.0, m.Score('*', '*'), "stop codon symbol")
	assert.Equal(t, 0.0, m.Score('-', 'A'), "gap character scores zero too")
}

// TestRegistry_Symmetric scans every built-in matrix for score
// symmetry: Score(x, y) == Score(y, x) over all stored pairs.
func TestRegistry_Symmetric(t *testing.T) {
	for _, name := range scoring.Names() {
		m, err := scoring.Get(name)
		require.NoError(t, err)
		for x, row := range m {
			for y := range row {
				assert.Equal(t, m.Score(x, y), m.Score(y, x),
					"%s must be symmetric at %c/%c", name, x, y)
			}
		}
	}
}

// TestRegistry_ProteinDiagonalPositive verifies that every BLOSUM and
// PAM matrix rewards an exact residue match.
func TestRegistry_ProteinDiagonalPositive(t *testing.T) {
	for _, name := range scoring.Names() {
		if !strings.HasPrefix(name, "BLOSUM") && !strings.HasPrefix(name, "PAM") {
			continue
		}
		m, err := scoring.Get(name)
		require.NoError(t, err)
		for i := 0; i < len(aminoAcids); i++ {
			c := aminoAcids[i]
			assert.Positive(t, m.Score(c, c), "%s diagonal at %c", name, c)
		}
	}
}

// TestSimple_MatchMismatch verifies the constructed match/mismatch
// matrix, including alphabet upper-casing and the zero fallback.
func TestSimple_MatchMismatch(t *testing.T) {
	m := scoring.Simple(1, -1, "acgtu")

	assert.Equal(t, 1.0, m.Score('A', 'A'), "match")
	assert.Equal(t, -1.0, m.Score('a', 'U'), "mismatch, mixed case")
	assert.Equal(t, 1.0, m.Score('u', 'u'), "alphabet was upper-cased")
	assert.Equal(t, 0.0, m.Score('A', 'N'), "outside the alphabet")
}

// TestMatrix_AsymmetricLiteral documents that symmetry is a convention:
// Score reads m[a][b] only, so an asymmetric literal stays asymmetric.
func TestMatrix_AsymmetricLiteral(t *testing.T) {
	m := scoring.Matrix{'A': {'B': 1}}

	assert.Equal(t, 1.0, m.Score('A', 'B'), "stored direction")
	assert.Equal(t, 0.0, m.Score('B', 'A'), "missing reverse direction falls back to 0")
}
