// Package codec translates between domain values and the fixed-layout
// byte buffers the Band command protocol exchanges over its transport.
//
// The package has two halves. Scalar codecs are pure, stateless
// value <-> fixed-width-bytes transforms: tick timestamps, booleans,
// mixed-endian identifiers, colors, strict enumerations, permissive
// bit-flag masks, UTF-16LE text, and the packed 16-bit pixel format.
// The record layout engine sequences scalar codecs over a Descriptor:
// an ordered field list plus a declared total byte size.
//
// # Wire conventions
//
// All multi-byte integers are little-endian. Timestamps count 100ns
// ticks from 1601-01-01T00:00:00Z. Identifiers use the device's
// mixed-endian 16-byte layout: the first three components byte-reversed,
// the trailing 8 bytes in natural order. Text is UTF-16LE with widths
// counted in code units.
//
// # Records
//
// A Descriptor's Encode always produces exactly the declared size,
// zero-padding short records and failing with a FieldTooLargeError
// rather than truncating long ones. Decode accepts only buffers of
// exactly the declared size and fails before touching any field
// otherwise. Conditional fields (see MinVersion) contribute zero bytes
// when absent. Bytes left after the last field are captured opaquely
// into the descriptor's trailing reserved field so unknown future
// fields survive a decode/encode round trip.
//
// # Error handling
//
// Failures are typed: RangeError, SizeMismatchError,
// FieldTooLargeError, UnknownEnumValueError. The layout engine stamps
// the record name, field name, and byte offset onto errors it
// propagates and fails fast on the first field-level failure. Failures
// are never coerced into default values.
//
// # Thread safety
//
// Codecs and Descriptors are immutable after construction and safe for
// concurrent use. No codec performs I/O or blocks.
package codec
