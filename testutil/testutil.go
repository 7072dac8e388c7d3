package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/growvec/payload"
)

const nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Name returns a random label of the same length as payload.DefaultName.
func (r *RNG) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name()
}

// Record returns a Record with the given identifier, random floats and a
// random label.
func (r *RNG) Record(id int) payload.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return payload.MakeRecord(id, r.rand.Float64(), r.rand.Float64(), r.rand.Float64(), r.name())
}

// Records returns n Records identified 0..n-1 with random floats and labels.
// Locks only once per call (preferred over calling Record in a loop).
func (r *RNG) Records(n int) []payload.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := make([]payload.Record, n)
	for i := range recs {
		recs[i] = payload.MakeRecord(i, r.rand.Float64(), r.rand.Float64(), r.rand.Float64(), r.name())
	}

	return recs
}

// Handle returns a Handle whose backing Record has the given identifier,
// random floats and a random label.
func (r *RNG) Handle(id int) payload.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return payload.MakeHandle(id, r.rand.Float64(), r.rand.Float64(), r.rand.Float64(), r.name())
}

// Handles returns n Handles identified 0..n-1 with random floats and labels.
func (r *RNG) Handles(n int) []payload.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	hs := make([]payload.Handle, n)
	for i := range hs {
		hs[i] = payload.MakeHandle(i, r.rand.Float64(), r.rand.Float64(), r.rand.Float64(), r.name())
	}

	return hs
}

// name must be called with r.mu held.
func (r *RNG) name() string {
	buf := make([]byte, len(payload.DefaultName))
	for i := range buf {
		buf[i] = nameAlphabet[r.rand.Intn(len(nameAlphabet))]
	}
	return string(buf)
}
