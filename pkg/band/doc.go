// Package band declares the concrete records the Band command protocol
// exchanges: tiles, profiles, system time, and firmware version, plus
// the enumerations and flag sets their fields carry.
//
// Records are declarative compositions of pkg/codec descriptors with no
// logic beyond their presence predicates. Each record type implements
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler against its
// declared wire size; the command layer moves the resulting buffers
// over the transport.
package band
