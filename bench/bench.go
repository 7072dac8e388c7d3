// Package bench drives the two sequence variants through an identical
// append workload and reports the elapsed wall-clock time of each.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/growvec"
	"github.com/hupe1980/growvec/payload"
)

// DefaultCount is the number of appends each timed loop performs.
const DefaultCount = 3_000_000

// Result holds the elapsed wall-clock time of the two timed loops.
type Result struct {
	// Direct is the duration of the loop over inline Records, which are
	// duplicated field by field whenever the vector grows.
	Direct time.Duration

	// Indirect is the duration of the loop over boxed Handles, which are
	// relocated as plain pointer transfers whenever the vector grows.
	Indirect time.Duration
}

type options struct {
	count  int
	logger *growvec.Logger
}

// Option configures a benchmark run.
type Option func(*options)

// WithCount overrides the number of appends per timed loop. Values <= 0 are
// ignored. Tests use this to run the full procedure at small scale.
func WithCount(count int) Option {
	return func(o *options) {
		if count > 0 {
			o.count = count
		}
	}
}

// WithLogger sets the logger handed to both vectors for growth diagnostics.
// If nil is passed, the no-op logger is used.
func WithLogger(logger *growvec.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = growvec.NoopLogger()
		}
		o.logger = logger
	}
}

// Run executes the benchmark procedure: a small smoke test of append, read
// and assign on both variants, a clear of both, then one timed loop of
// sequential appends per variant. It writes one line per loop to w, each the
// loop's duration in seconds, and returns the measured durations.
//
// The only error Run can return comes from writing to w.
func Run(w io.Writer, optFns ...Option) (Result, error) {
	o := options{
		count:  DefaultCount,
		logger: growvec.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	records := newRecordVector(growvec.WithLogger[payload.Record](o.logger))
	handles := newHandleVector(growvec.WithLogger[payload.Handle](o.logger))

	// Exercise construction, growth and assignment at small scale before
	// anything is timed.
	smoke(records, payload.NewRecord)
	smoke(handles, payload.NewHandle)

	records.Clear()
	handles.Clear()

	var res Result

	res.Direct = timeAppends(records, payload.NewRecord, o.count)
	if _, err := fmt.Fprintf(w, "%.6f\n", res.Direct.Seconds()); err != nil {
		return res, err
	}

	res.Indirect = timeAppends(handles, payload.NewHandle, o.count)
	if _, err := fmt.Fprintf(w, "%.6f\n", res.Indirect.Seconds()); err != nil {
		return res, err
	}

	return res, nil
}

// newRecordVector builds the direct-storage variant: growth duplicates every
// Record through its Clone.
func newRecordVector(optFns ...growvec.Option[payload.Record]) *growvec.Vector[payload.Record] {
	return growvec.New(payload.Record.Clone, optFns...)
}

// newHandleVector builds the indirect-storage variant: growth transfers
// Handle slots wholesale, leaving every backing Record untouched.
func newHandleVector(optFns ...growvec.Option[payload.Handle]) *growvec.Vector[payload.Handle] {
	optFns = append(optFns, growvec.WithTrivialRelocation[payload.Handle]())
	return growvec.New(payload.Handle.Clone, optFns...)
}

// smoke appends three elements and assigns one populated slot to another,
// touching every code path the timed loops rely on.
func smoke[T any](v *growvec.Vector[T], newElem func(int) T) {
	for id := 1; id <= 3; id++ {
		v.Append(newElem(id))
	}
	v.Set(0, v.Get(1))
}

// timeAppends appends count sequentially-identified elements and returns the
// elapsed wall-clock time.
func timeAppends[T any](v *growvec.Vector[T], newElem func(int) T, count int) time.Duration {
	start := time.Now()
	for i := 0; i < count; i++ {
		v.Append(newElem(i))
	}
	return time.Since(start)
}
