package payload

import "strings"

// DefaultName is the label every benchmark element carries. It is long
// enough that duplicating a Record has to copy real string bytes, not just a
// header.
const DefaultName = "AAAAAAAAAAAAAABBBBBBBBBBB"

// ScratchSize is the number of slots in a Record's inline scratch array.
const ScratchSize = 10

// Record is one logical entity with all fields stored inline: an integer
// identifier, three floating-point values, a variable-length label, and a
// fixed-size scratch array. The scratch array is never read or written by
// any logic; it exists to inflate the per-element copy cost.
//
// No field refers to another Record, so a Record can be duplicated or
// relocated field by field without coordination.
type Record struct {
	ID      int
	B, C, D float64
	Name    string
	Scratch [ScratchSize]float64
}

// NewRecord returns a Record with the given identifier, zero floats, and the
// default label. This is the constructor the benchmark loop uses.
func NewRecord(id int) Record {
	return MakeRecord(id, 0, 0, 0, DefaultName)
}

// MakeRecord returns a Record with every logical field set explicitly.
func MakeRecord(id int, b, c, d float64, name string) Record {
	return Record{ID: id, B: b, C: c, D: d, Name: name}
}

// Clone duplicates every field, including the label's backing bytes. A plain
// struct copy would share the label's backing array between the copies;
// cloning it keeps duplication cost proportional to the full payload, which
// is the behavior under measurement.
func (r Record) Clone() Record {
	r.Name = strings.Clone(r.Name)
	return r
}
