// Package scoring provides the substitution matrices used to score
// residue pairs during pairwise sequence alignment.
//
// 🚀 What is a substitution matrix?
//
//	A table of pairwise residue scores: positive for likely
//	substitutions (or identities), negative for unlikely ones.
//	Protein alignment practically requires one — a plain
//	match/mismatch scheme cannot express that leucine↔isoleucine
//	is conservative while tryptophan↔glycine is not.
//
// ✨ What the package ships:
//   - BLOSUM45, BLOSUM50, BLOSUM62, BLOSUM80, BLOSUM90 (protein)
//   - PAM30, PAM70, PAM120, PAM250 (protein)
//   - DNA_SIMPLE — +5 match / −4 mismatch over A,C,G,T
//   - DNA_FULL — the EMBOSS EDNAFULL table over the 15 IUPAC
//     nucleotide codes, scoring ambiguity codes by base overlap
//   - Simple(match, mismatch, alphabet) — build your own
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/scoring"
//
//	m, err := scoring.Get("blosum62") // names are case-insensitive
//	if err != nil {
//	  // unknown name; scoring.Names() lists what exists
//	}
//	s := m.Score('A', 'R') // -1; unknown pairs score 0, never error
//
// A Matrix is a plain nested map, so callers may also pass a literal
// of their own. Lookups fold case and fall back to 0 for any pair the
// table does not mention, which keeps rare wildcards (X, *, gaps in
// consensus input) neutral instead of fatal.
package scoring
