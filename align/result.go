package align

import "strings"

// Result is the common outcome of every aligner.
//
// AlignedA and AlignedB are equal-length rows with '-' marking gaps.
// The Start/End pairs are 0-indexed half-open coordinates into the
// normalized input sequences delimiting the aligned region: 0 and the
// full length for the end-to-end variants, the consumed window for
// Local. Identity counts positions where both rows carry the same
// residue; Gaps counts '-' cells across both rows.
type Result struct {
	AlignedA string
	AlignedB string
	Score    float64
	StartA   int
	EndA     int
	StartB   int
	EndB     int
	Length   int
	Identity int
	// IdentityPercent is Identity/Length*100, or 0 for an empty alignment.
	IdentityPercent float64
	Gaps            int
}

// newResult derives the statistics for an assembled alignment.
// normalizeScore divides the score by the alignment length (0 stays 0).
func newResult(rowA, rowB []byte, score float64, startA, endA, startB, endB int, normalizeScore bool) Result {
	length := len(rowA)
	identity, gaps := 0, 0
	for k := 0; k < length; k++ {
		switch {
		case rowA[k] == gapByte || rowB[k] == gapByte:
			// a column is never gapped in both rows
			gaps++
		case rowA[k] == rowB[k]:
			identity++
		}
	}
	identityPercent := 0.0
	if length > 0 {
		identityPercent = float64(identity) / float64(length) * 100
	}
	if normalizeScore {
		if length > 0 {
			score /= float64(length)
		} else {
			score = 0
		}
	}

	return Result{
		AlignedA:        string(rowA),
		AlignedB:        string(rowB),
		Score:           score,
		StartA:          startA,
		EndA:            endA,
		StartB:          startB,
		EndB:            endB,
		Length:          length,
		Identity:        identity,
		IdentityPercent: identityPercent,
		Gaps:            gaps,
	}
}

// formatWidth is the row width of Format's rendering.
const formatWidth = 60

// Format renders the alignment as blocks of three rows — sequence A,
// a midline, sequence B — wrapped at 60 columns. The midline marks
// identities with '|', substitutions with '.', and gaps with a space:
//
//	GTT-AC
//	||| ||
//	GTTGAC
//
// Intended for logs and examples; an empty alignment renders as "".
func (r Result) Format() string {
	if r.Length == 0 {
		return ""
	}
	mid := make([]byte, r.Length)
	for k := 0; k < r.Length; k++ {
		switch {
		case r.AlignedA[k] == gapByte || r.AlignedB[k] == gapByte:
			mid[k] = ' '
		case r.AlignedA[k] == r.AlignedB[k]:
			mid[k] = '|'
		default:
			mid[k] = '.'
		}
	}

	var sb strings.Builder
	for off := 0; off < r.Length; off += formatWidth {
		end := off + formatWidth
		if end > r.Length {
			end = r.Length
		}
		if off > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.AlignedA[off:end])
		sb.WriteByte('\n')
		sb.Write(mid[off:end])
		sb.WriteByte('\n')
		sb.WriteString(r.AlignedB[off:end])
	}

	return sb.String()
}
