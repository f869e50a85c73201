package scoring

// dnaSimple scores the four unambiguous bases only: +5 match,
// -4 mismatch (the EDNAFULL core). Anything outside A,C,G,T — including
// IUPAC ambiguity codes — falls back to 0 via the absent-pair rule;
// use DNA_FULL when inputs may carry ambiguity codes.
var dnaSimple = Simple(5, -4, "ACGT")

// nucOrder is the 15-code IUPAC nucleotide alphabet in EDNAFULL order.
// S=G/C, W=A/T, R=A/G (purine), Y=C/T (pyrimidine), K=G/T, M=A/C,
// B=not A, V=not T, H=not G, D=not C, N=any.
const nucOrder = "ATGCSWRYKMBVHDN"

// dnaFull is the EMBOSS EDNAFULL (a.k.a. NUC4.4) matrix: +5/-4 on the
// unambiguous bases, with ambiguity codes scored by the overlap of the
// base sets they denote.
var dnaFull = newMatrix(nucOrder, []float64{
	//  A   T   G   C   S   W   R   Y   K   M   B   V   H   D   N
	/* A */ 5, -4, -4, -4, -4, 1, 1, -4, -4, 1, -4, -1, -1, -1, -2,
	/* T */ -4, 5, -4, -4, -4, 1, -4, 1, 1, -4, -1, -4, -1, -1, -2,
	/* G */ -4, -4, 5, -4, 1, -4, 1, -4, 1, -4, -1, -1, -4, -1, -2,
	/* C */ -4, -4, -4, 5, 1, -4, -4, 1, -4, 1, -1, -1, -1, -4, -2,
	/* S */ -4, -4, 1, 1, -1, -4, -2, -2, -2, -2, -1, -1, -3, -3, -1,
	/* W */ 1, 1, -4, -4, -4, -1, -2, -2, -2, -2, -3, -3, -1, -1, -1,
	/* R */ 1, -4, 1, -4, -2, -2, -1, -4, -2, -2, -3, -1, -3, -1, -1,
	/* Y */ -4, 1, -4, 1, -2, -2, -4, -1, -2, -2, -1, -3, -1, -3, -1,
	/* K */ -4, 1, 1, -4, -2, -2, -2, -2, -1, -4, -1, -3, -3, -1, -1,
	/* M */ 1, -4, -4, 1, -2, -2, -2, -2, -4, -1, -3, -1, -1, -3, -1,
	/* B */ -4, -1, -1, -1, -1, -3, -3, -1, -1, -3, -1, -2, -2, -2, -1,
	/* V */ -1, -4, -1, -1, -1, -3, -1, -3, -3, -1, -2, -1, -2, -2, -1,
	/* H */ -1, -1, -4, -1, -3, -1, -3, -1, -3, -1, -2, -2, -1, -2, -1,
	/* D */ -1, -1, -1, -4, -3, -1, -1, -3, -1, -3, -2, -2, -2, -1, -1,
	/* N */ -2, -2, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
})
