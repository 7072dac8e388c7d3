// Package payload provides the two element kinds the growth benchmark
// compares.
//
// Record stores all of its fields inline; duplicating one copies every
// field, including the label's backing bytes. Handle is a fixed-size proxy
// that exclusively owns one heap-allocated Record; relocating a Handle
// copies a single pointer, while duplicating one allocates a fresh backing
// Record. The asymmetry between those two duplication costs, multiplied by
// every element a growing container has to transfer, is what the benchmark
// measures.
package payload
