// Package growvec implements a generic growable contiguous container with an
// explicit reallocation strategy, built to study how growth cost interacts
// with element copy semantics.
//
// A Vector stores its elements in one contiguous block. When an append
// exceeds the current capacity, the vector allocates a larger block and must
// populate it from the old one. How that population happens is the whole
// point of this module:
//
//   - Duplication (the default): every element is copied through its
//     CloneFunc, so growth cost is proportional to the full payload of every
//     element ever appended, including any owned resources the clone has to
//     re-allocate.
//
//   - Relocation (opt-in via WithTrivialRelocation): elements are transferred
//     slot-by-slot as plain word copies. This is only sound for element types
//     whose relocation cannot fail partway and does not duplicate owned
//     resources, such as a fixed-size handle that merely owns a pointer to
//     its payload. Growth cost is then proportional to the handle size, not
//     the payload size.
//
// The payload package provides the two element kinds the accompanying
// benchmark compares, and the bench package drives both through an identical
// append workload.
//
// # Quick Start
//
//	vec := growvec.New[payload.Handle](
//	    payload.Handle.Clone,
//	    growvec.WithTrivialRelocation[payload.Handle](),
//	)
//	for i := range 1000 {
//	    vec.Append(payload.NewHandle(i))
//	}
//	fmt.Println(vec.Len(), vec.Cap())
//
// Vectors are not safe for concurrent use; the workload under study is
// strictly sequential.
package growvec
