// Package benchmark_test holds whole-module benchmarks comparing the two
// growth strategies at several scales.
package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/growvec"
	"github.com/hupe1980/growvec/payload"
)

var sizes = []int{10_000, 100_000, 1_000_000}

// BenchmarkAppend measures the full append loop, growth included, for both
// variants. Direct duplicates every Record on growth; Indirect relocates
// fixed-size Handles and leaves the backing Records alone.
func BenchmarkAppend(b *testing.B) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("Direct/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for bi := 0; bi < b.N; bi++ {
				vec := growvec.New(payload.Record.Clone)
				for i := 0; i < n; i++ {
					vec.Append(payload.NewRecord(i))
				}
			}
		})

		b.Run(fmt.Sprintf("Indirect/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for bi := 0; bi < b.N; bi++ {
				vec := growvec.New(
					payload.Handle.Clone,
					growvec.WithTrivialRelocation[payload.Handle](),
				)
				for i := 0; i < n; i++ {
					vec.Append(payload.NewHandle(i))
				}
			}
		})
	}
}

// BenchmarkAppendReserved isolates the per-append cost by pre-sizing the
// block so no growth happens inside the timed loop.
func BenchmarkAppendReserved(b *testing.B) {
	const n = 100_000

	b.Run("Direct", func(b *testing.B) {
		b.ReportAllocs()
		for bi := 0; bi < b.N; bi++ {
			vec := growvec.New(payload.Record.Clone, growvec.WithInitialCapacity[payload.Record](n))
			for i := 0; i < n; i++ {
				vec.Append(payload.NewRecord(i))
			}
		}
	})

	b.Run("Indirect", func(b *testing.B) {
		b.ReportAllocs()
		for bi := 0; bi < b.N; bi++ {
			vec := growvec.New(
				payload.Handle.Clone,
				growvec.WithTrivialRelocation[payload.Handle](),
				growvec.WithInitialCapacity[payload.Handle](n),
			)
			for i := 0; i < n; i++ {
				vec.Append(payload.NewHandle(i))
			}
		}
	})
}

// BenchmarkClone measures the per-element duplication cost in isolation,
// which is the unit growth pays once per existing element in the direct
// variant.
func BenchmarkClone(b *testing.B) {
	b.Run("Record", func(b *testing.B) {
		rec := payload.NewRecord(1)
		b.ReportAllocs()
		for bi := 0; bi < b.N; bi++ {
			_ = rec.Clone()
		}
	})

	b.Run("Handle", func(b *testing.B) {
		h := payload.NewHandle(1)
		b.ReportAllocs()
		for bi := 0; bi < b.N; bi++ {
			_ = h.Clone()
		}
	})
}
