// Package align implements pairwise sequence alignment by dynamic
// programming: global, local, semi-global, overlap, banded and
// linear-space variants over a shared affine-gap core.
//
// 🚀 What is pairwise alignment?
//
//	An alignment writes two biological sequences one above the other,
//	inserting gaps so that related positions line up, and scores the
//	arrangement with a substitution matrix plus gap penalties.  It is
//	the workhorse behind:
//	  • Homology search & protein function annotation
//	  • Read mapping & genome assembly overlap detection
//	  • Primer placement & variant calling
//	  • Phylogenetics & sequence clustering
//
// ✨ Key features:
//   - Global (Needleman–Wunsch): end-to-end, both sequences consumed
//   - Local (Smith–Waterman): best-scoring island, MinScore cutoff
//   - SemiGlobal: free end gaps on both sequences
//   - Overlap: dovetail joins — suffix of one read, prefix of the next
//   - Banded: O(m·k) when the answer hugs the diagonal
//   - Hirschberg: O(min(m,n)) memory for very long inputs
//   - Affine gaps via Gotoh's three-matrix recurrence (open + extend)
//   - Any scoring.Matrix: BLOSUM/PAM, EDNAFULL, or your own
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	opts := &align.Options{
//	  MatrixName: "BLOSUM62", // protein default
//	  GapOpen:    -10,        // first gap position
//	  GapExtend:  -1,         // each further position
//	}
//
//	// compute
//	res, err := align.Global("HEAGAWGHEE", "PAWHEAE", opts)
//	fmt.Println(res.Format())
//
// Performance:
//
//   - Time:   O(m·n) (full variants) or O(m·k) (Banded)
//   - Memory: O(m·n), O(m·k) (Banded), O(min(m,n)) (Hirschberg)
//
// All functions are pure and safe for concurrent use on independent
// inputs.  See example_test.go for runnable walkthroughs.
package align
