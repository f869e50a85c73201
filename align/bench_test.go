package align_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/align"
)

// alignFunc is the shared signature of all six aligners.
type alignFunc func(a, b string, opts *align.Options) (align.Result, error)

// syntheticDNA builds a deterministic sequence of length n. The stride
// shifts the base cycle, so two sequences with different strides share
// long identical stretches broken by sparse substitutions — realistic
// input for near-identical alignment.
func syntheticDNA(n, stride int) string {
	const bases = "ACGT"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = bases[(i+i/stride)%len(bases)]
	}

	return string(buf)
}

// benchmarkAlign runs fn on two length-n synthetic sequences.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkAlign(b *testing.B, fn alignFunc, n int, opts align.Options) {
	seqA := syntheticDNA(n, 97)
	seqB := syntheticDNA(n, 101)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(seqA, seqB, &opts); err != nil {
			b.Fatalf("alignment failed: %v", err)
		}
	}
}

// dnaBenchOptions is the shared benchmark configuration.
func dnaBenchOptions() align.Options {
	return align.Options{MatrixName: "DNA_SIMPLE", GapOpen: -5, GapExtend: -2}
}

// BenchmarkGlobal_Small benchmarks the full-matrix fill on 200×200.
func BenchmarkGlobal_Small(b *testing.B) {
	benchmarkAlign(b, align.Global, 200, dnaBenchOptions())
}

// BenchmarkGlobal_Medium benchmarks the full-matrix fill on 1000×1000.
func BenchmarkGlobal_Medium(b *testing.B) {
	benchmarkAlign(b, align.Global, 1000, dnaBenchOptions())
}

// BenchmarkLocal_Medium benchmarks Smith-Waterman on 1000×1000.
func BenchmarkLocal_Medium(b *testing.B) {
	benchmarkAlign(b, align.Local, 1000, dnaBenchOptions())
}

// BenchmarkSemiGlobal_Medium benchmarks free-end alignment on 1000×1000.
func BenchmarkSemiGlobal_Medium(b *testing.B) {
	benchmarkAlign(b, align.SemiGlobal, 1000, dnaBenchOptions())
}

// BenchmarkBanded_Medium benchmarks a 1000×1000 alignment restricted
// to a ±32 band — the usual regime for near-identical sequences.
func BenchmarkBanded_Medium(b *testing.B) {
	opts := dnaBenchOptions()
	opts.Bandwidth = 32
	benchmarkAlign(b, align.Banded, 1000, opts)
}

// BenchmarkHirschberg_Medium benchmarks the linear-space variant on
// 1000×1000, trading traceback matrices for recomputation.
func BenchmarkHirschberg_Medium(b *testing.B) {
	benchmarkAlign(b, align.Hirschberg, 1000, dnaBenchOptions())
}
