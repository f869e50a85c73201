package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownMatrix indicates a registry lookup by a name that is not
// registered. Get wraps it with the offending name and the list of
// available names; match it with errors.Is.
var ErrUnknownMatrix = errors.New("scoring: unknown matrix")

// Matrix maps a residue pair to its substitution score.
//
// Matrices are symmetric by convention, not by enforcement: Score(a, b)
// reads m[a][b] only, so an asymmetric literal behaves asymmetrically.
// Any pair absent from the table scores 0.
type Matrix map[byte]map[byte]float64

// Score returns the substitution score for the residue pair (a, b).
// Both residues are upper-cased before lookup. Pairs not present in
// the matrix score 0 — unknown symbols are neutral, never an error.
func (m Matrix) Score(a, b byte) float64 {
	row, ok := m[upper(a)]
	if !ok {
		return 0
	}

	return row[upper(b)] // missing column yields the zero value
}

// registry holds every built-in matrix under its canonical name.
// Populated here and never mutated afterwards, so concurrent Get/Names
// calls need no locking.
var registry = map[string]Matrix{
	"BLOSUM45":   blosum45,
	"BLOSUM50":   blosum50,
	"BLOSUM62":   blosum62,
	"BLOSUM80":   blosum80,
	"BLOSUM90":   blosum90,
	"PAM30":      pam30,
	"PAM70":      pam70,
	"PAM120":     pam120,
	"PAM250":     pam250,
	"DNA_SIMPLE": dnaSimple,
	"DNA_FULL":   dnaFull,
}

// Get returns the built-in matrix registered under name.
// Lookup is case-insensitive ("blosum62" and "BLOSUM62" are the same
// matrix). Unknown names return an error wrapping ErrUnknownMatrix
// whose message enumerates the registered names.
func Get(name string) (Matrix, error) {
	m, ok := registry[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownMatrix, name, strings.Join(Names(), ", "))
	}

	return m, nil
}

// Names returns the names of all registered matrices in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Simple builds a match/mismatch matrix over the given alphabet:
// identical residues score match, differing residues score mismatch,
// and anything outside the alphabet keeps the usual zero fallback.
// The alphabet is upper-cased, so Simple(5, -4, "acgt") equals
// Simple(5, -4, "ACGT").
func Simple(match, mismatch float64, alphabet string) Matrix {
	up := strings.ToUpper(alphabet)
	m := make(Matrix, len(up))
	for i := 0; i < len(up); i++ {
		row := make(map[byte]float64, len(up))
		for j := 0; j < len(up); j++ {
			if up[i] == up[j] {
				row[up[j]] = match
			} else {
				row[up[j]] = mismatch
			}
		}
		m[up[i]] = row
	}

	return m
}

// newMatrix expands a residue order plus a flat row-major score table
// into the nested lookup form. The table must hold exactly
// len(order)² scores; a mismatch is a programmer error in this
// package's own data files, so it panics at init rather than surfacing
// to users.
func newMatrix(order string, scores []float64) Matrix {
	n := len(order)
	if len(scores) != n*n {
		panic(fmt.Sprintf("scoring: matrix over %q needs %d scores, got %d",
			order, n*n, len(scores)))
	}

	m := make(Matrix, n)
	for i := 0; i < n; i++ {
		row := make(map[byte]float64, n)
		for j := 0; j < n; j++ {
			row[order[j]] = scores[i*n+j]
		}
		m[order[i]] = row
	}

	return m
}

// upper ASCII-upper-cases a single residue code.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}
