package growvec

import (
	"fmt"
	"time"
)

// CloneFunc produces an independent copy of an element, duplicating any
// resources the element owns. The result must not share mutable state with
// the input.
type CloneFunc[T any] func(T) T

// DefaultGrowthFactor is the capacity multiplier applied when a full vector
// has to grow.
const DefaultGrowthFactor = 2.0

// minCapacity is the capacity of the first block allocated by a vector that
// was created without WithInitialCapacity.
const minCapacity = 4

// Vector is a growable, contiguous, ordered container.
//
// Appends are amortized O(1). When an append exceeds capacity, the vector
// allocates a larger block and populates it from the old one: by trivial
// slot relocation if the element type was declared trivially relocatable,
// otherwise by duplicating every element through its CloneFunc. Set always
// stores a duplicate of its argument, so distinct slots never share owned
// resources.
//
// A Vector must not be used from multiple goroutines without external
// synchronization.
type Vector[T any] struct {
	slots []T // backing block; len(slots) is the capacity
	n     int // live elements, stored in slots[:n]

	clone        CloneFunc[T]
	growthFactor float64
	trivialReloc bool

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty vector. clone is used for Set and, unless
// WithTrivialRelocation was given, for populating new blocks during growth.
// New panics if clone is nil.
func New[T any](clone CloneFunc[T], optFns ...Option[T]) *Vector[T] {
	if clone == nil {
		panic("growvec: New called with nil clone function")
	}

	o := options[T]{
		growthFactor: DefaultGrowthFactor,
		logger:       NoopLogger(),
		metrics:      NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.growthFactor < 1 {
		o.growthFactor = 1
	}

	v := &Vector[T]{
		clone:        clone,
		growthFactor: o.growthFactor,
		trivialReloc: o.trivialReloc,
		logger:       o.logger,
		metrics:      o.metrics,
	}
	if o.initialCapacity > 0 {
		v.slots = make([]T, o.initialCapacity)
	}

	return v
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of elements the current block can hold before the
// next growth.
func (v *Vector[T]) Cap() int {
	return len(v.slots)
}

// Get returns the element at index i. It panics if i is out of range.
//
// For handle-like element types the returned value shares the backing
// payload with the slot; use Set to store an independent duplicate.
func (v *Vector[T]) Get(i int) T {
	v.boundsCheck(i)
	return v.slots[i]
}

// Set overwrites the element at index i with a duplicate of value. It panics
// if i is out of range.
//
// Storing a duplicate rather than value itself keeps slots from aliasing
// owned resources: for a handle element this allocates a fresh backing
// payload and the slot's previous payload is released with the slot's old
// handle.
func (v *Vector[T]) Set(i int, value T) {
	v.boundsCheck(i)
	v.slots[i] = v.clone(value)
}

// Append adds value at the end of the vector, growing the backing block
// first if it is full.
func (v *Vector[T]) Append(value T) {
	if v.n == len(v.slots) {
		v.grow(v.n + 1)
	}
	v.slots[v.n] = value
	v.n++
}

// Reserve grows the backing block so that at least capacity elements fit
// without further reallocation. It never shrinks and never changes Len.
func (v *Vector[T]) Reserve(capacity int) {
	if capacity > len(v.slots) {
		v.grow(capacity)
	}
}

// Clear removes all elements. The backing block is retained, but the vacated
// slots are zeroed so no stale element remains reachable through it.
func (v *Vector[T]) Clear() {
	clear(v.slots[:v.n])
	v.metrics.RecordClear(v.n)
	v.n = 0
}

// grow replaces the backing block with one of at least need slots and
// populates it from the old block.
//
// Trivially relocatable elements are transferred as plain word copies; the
// transfer of a slot cannot fail partway, so the old block never ends up
// half-moved. All other elements are duplicated through the clone function,
// which may allocate per element and dominates growth cost for large
// payloads.
func (v *Vector[T]) grow(need int) {
	start := time.Now()

	oldCap := len(v.slots)
	newCap := nextCapacity(oldCap, need, v.growthFactor)
	block := make([]T, newCap)

	var relocated, duplicated int
	if v.trivialReloc {
		relocated = copy(block, v.slots[:v.n])
	} else {
		for i := 0; i < v.n; i++ {
			block[i] = v.clone(v.slots[i])
		}
		duplicated = v.n
	}

	// The old block is dead; drop its element references before releasing it.
	clear(v.slots[:v.n])
	v.slots = block

	v.logger.WithLen(v.n).WithCap(newCap).Debug("vector grown",
		"old_cap", oldCap,
		"relocated", relocated,
		"duplicated", duplicated,
	)
	v.metrics.RecordGrowth(oldCap, newCap, relocated, duplicated, time.Since(start))
}

// nextCapacity returns the capacity of the replacement block: the current
// capacity scaled by factor (floored at one extra slot per step, so a factor
// of 1 still makes progress), repeated until need fits.
func nextCapacity(current, need int, factor float64) int {
	next := current
	if next == 0 {
		next = minCapacity
	}
	for next < need {
		scaled := int(float64(next) * factor)
		if scaled <= next {
			scaled = next + 1
		}
		next = scaled
	}
	return next
}

func (v *Vector[T]) boundsCheck(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("growvec: index out of range [%d] with length %d", i, v.n))
	}
}
