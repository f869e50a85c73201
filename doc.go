// Package seqalign is a pairwise sequence alignment toolkit for DNA,
// RNA and protein sequences — classic dynamic programming, done right.
//
// 🚀 What is seqalign?
//
//	A focused, pure-Go library covering the whole pairwise DP family:
//		• Global alignment: Needleman–Wunsch with affine gaps
//		• Local alignment: Smith–Waterman with a MinScore cutoff
//		• Semi-global: free end gaps for read-in-reference placement
//		• Overlap: dovetail joins between sequencing reads
//		• Banded: O(m·k) fills for near-identical sequences
//		• Hirschberg: O(min(m,n)) memory for chromosome-scale input
//
// ✨ Why choose seqalign?
//
//   - Literature-backed scoring – BLOSUM45–90, PAM30–250, EDNAFULL built in
//   - One options struct, one result type across all six aligners
//   - Exact affine gaps – Gotoh three-matrix recurrence everywhere
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	align/   — the six aligners, Options, Result
//	scoring/ — substitution matrices: registry, lookup, custom builders
//
// Quick example:
//
//	opts := &align.Options{MatrixName: "DNA_SIMPLE", GapOpen: -5, GapExtend: -2}
//	res, err := align.Global("ACGTA", "ACGT", opts)
//	// res.AlignedA = "ACGTA"
//	// res.AlignedB = "ACGT-"
//
// See examples/ for runnable scans and read-assembly walkthroughs.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
