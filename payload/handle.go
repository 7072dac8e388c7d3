package payload

// Handle is a fixed-size proxy that exclusively owns one heap-allocated
// Record.
//
// Relocating a Handle copies one pointer: it cannot fail, allocates
// nothing, and never touches the backing Record, so a container may declare
// Handle trivially relocatable and transfer Handles wholesale during growth.
// Duplicating a Handle (Clone) allocates a brand-new backing Record and
// deep-copies every field, so two Handles never share a backing Record
// unless the program copies a Handle value directly instead of cloning it.
//
// The zero Handle owns nothing; its only valid operation is Clone, which
// yields another zero Handle. Accessors panic on the zero Handle.
type Handle struct {
	rec *Record
}

// NewHandle returns a Handle owning a fresh Record with the given
// identifier, zero floats, and the default label. This is the constructor
// the benchmark loop uses.
func NewHandle(id int) Handle {
	return MakeHandle(id, 0, 0, 0, DefaultName)
}

// MakeHandle returns a Handle owning a fresh Record with every logical field
// set explicitly.
func MakeHandle(id int, b, c, d float64, name string) Handle {
	rec := MakeRecord(id, b, c, d, name)
	return Handle{rec: &rec}
}

// Clone allocates a new backing Record and deep-copies every field from the
// receiver's backing Record. The result shares no state with the receiver.
func (h Handle) Clone() Handle {
	if h.rec == nil {
		return Handle{}
	}
	rec := h.rec.Clone()
	return Handle{rec: &rec}
}

// ID returns the identifier of the backing Record.
func (h Handle) ID() int {
	return h.rec.ID
}

// Name returns the label of the backing Record.
func (h Handle) Name() string {
	return h.rec.Name
}

// Floats returns the three floating-point fields of the backing Record.
func (h Handle) Floats() (b, c, d float64) {
	return h.rec.B, h.rec.C, h.rec.D
}

// SetName overwrites the label of the backing Record in place. Tests use it
// to probe that two Handles do not alias one backing Record.
func (h Handle) SetName(name string) {
	h.rec.Name = name
}

// SetID overwrites the identifier of the backing Record in place.
func (h Handle) SetID(id int) {
	h.rec.ID = id
}
