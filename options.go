package growvec

type options[T any] struct {
	initialCapacity int
	growthFactor    float64
	trivialReloc    bool
	logger          *Logger
	metrics         MetricsCollector
}

// Option configures a Vector at construction time.
type Option[T any] func(*options[T])

// WithInitialCapacity pre-sizes the first backing block so the first
// allocations of a known workload are not spent on growth. Values <= 0 are
// ignored.
func WithInitialCapacity[T any](capacity int) Option[T] {
	return func(o *options[T]) {
		o.initialCapacity = capacity
	}
}

// WithGrowthFactor sets the capacity multiplier used when the vector grows.
// Factors below 1 are clamped to 1; a factor of exactly 1 degrades growth to
// one slot at a time, which makes appends O(n) and exists only to make the
// cost of a bad factor observable.
func WithGrowthFactor[T any](factor float64) Option[T] {
	return func(o *options[T]) {
		o.growthFactor = factor
	}
}

// WithTrivialRelocation declares that relocating an element of type T is a
// plain word copy that cannot fail and duplicates no owned resources, so the
// vector may transfer slots wholesale during growth instead of duplicating
// every element.
//
// This is the caller's promise, not something the type system can verify.
// It holds for fixed-size handles that own their payload through a single
// pointer (see payload.Handle) and for any element without owned resources.
// Declaring it for an element type whose duplicate semantics the program
// relies on during growth silently turns those duplicates into shared state.
func WithTrivialRelocation[T any]() Option[T] {
	return func(o *options[T]) {
		o.trivialReloc = true
	}
}

// WithLogger sets the logger used for growth diagnostics (Debug level).
// If nil is passed, the no-op logger is used.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(o *options[T]) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector sets the collector notified on growth and clear
// events. Pass nil to disable collection.
func WithMetricsCollector[T any](collector MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}
