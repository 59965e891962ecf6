package codec

import "fmt"

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// Values holds one record instance: decoded field values keyed by field
// name. Field order lives in the Descriptor, not here.
type Values map[string]any

// Predicate decides whether a conditional field is present, evaluated
// over fields declared earlier in the record. Predicates must not look
// at later fields; decode has not produced them yet.
type Predicate func(Values) bool

// MinVersion is the presence predicate used by version-gated fields:
// present iff the named uint16 field is at least min.
func MinVersion(field string, min uint16) Predicate {
	return func(rec Values) bool {
		v, ok := rec[field].(uint16)
		return ok && v >= min
	}
}

// TextWidth derives a text field's decode width from a preceding
// length-prefix field counting UTF-16 code units, bounded by the
// declared capacity. A prefix beyond capacity is a layout violation.
func TextWidth(lenField string, capacity int) func(Values) (int, error) {
	return func(rec Values) (int, error) {
		n, ok := rec[lenField].(uint16)
		if !ok {
			return 0, fmt.Errorf("length prefix %s missing or not uint16", lenField)
		}
		if int(n) > capacity {
			return 0, &SizeMismatchError{Want: 2 * capacity, Got: 2 * int(n)}
		}
		return 2 * int(n), nil
	}
}

// TextLen derives the encoded value of a length-prefix field from the
// current content of the named text field, never from caller input.
func TextLen(textField string) func(Values) any {
	return func(rec Values) any {
		s, _ := rec[textField].(string)
		return uint16(UTF16Len(s))
	}
}

// Field describes one slot in a record layout.
type Field struct {
	Name  string
	Codec Codec

	// Default is encoded when the instance carries no value.
	Default any

	// If gates the field's presence. An absent field contributes zero
	// bytes on both paths. Nil means unconditional.
	If Predicate

	// Derive recomputes the encoded value from the rest of the
	// instance, overriding anything the caller supplied.
	Derive func(Values) any

	// DecodeWidth derives the byte width on decode from earlier
	// fields. Nil means the codec's fixed width.
	DecodeWidth func(Values) (int, error)
}

// Descriptor is an ordered field sequence with a declared total size.
// Encode always produces exactly Size bytes; decode only accepts
// buffers of exactly Size bytes. Descriptors are immutable after
// construction and safe for concurrent use.
type Descriptor struct {
	Name   string
	Size   int
	Fields []Field

	// Trailing names the reserved field capturing bytes left after the
	// last declared field, preserving unknown future fields across a
	// round trip. Empty means leftover bytes are plain zero padding.
	Trailing string
}

// Encode produces the record's wire form: fields in declared order,
// conditional fields skipped when absent, the trailing reserved value
// if any, then zero padding up to the declared size. Content past the
// declared size fails with a FieldTooLargeError naming the offending
// field; encode never silently truncates.
func (d *Descriptor) Encode(rec Values) ([]byte, error) {
	buf := make([]byte, 0, d.Size)
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.If != nil && !f.If(rec) {
			continue
		}
		v, ok := rec[f.Name]
		if f.Derive != nil {
			v = f.Derive(rec)
		} else if !ok {
			if f.Default == nil {
				return nil, fmt.Errorf("%s.%s: no value and no default", d.Name, f.Name)
			}
			v = f.Default
		}
		b, err := f.Codec.Encode(v)
		if err != nil {
			return nil, fieldContext(d.Name, f.Name, len(buf), err)
		}
		if len(buf)+len(b) > d.Size {
			return nil, &FieldTooLargeError{
				Record: d.Name, Field: f.Name, Offset: len(buf),
				Limit: d.Size, Got: len(buf) + len(b),
			}
		}
		buf = append(buf, b...)
	}
	if d.Trailing != "" {
		if raw, ok := rec[d.Trailing].([]byte); ok && len(raw) > 0 {
			if len(buf)+len(raw) > d.Size {
				return nil, &FieldTooLargeError{
					Record: d.Name, Field: d.Trailing, Offset: len(buf),
					Limit: d.Size, Got: len(buf) + len(raw),
				}
			}
			buf = append(buf, raw...)
		}
	}
	buf = append(buf, make([]byte, d.Size-len(buf))...)
	return buf, nil
}

// Decode parses a buffer of exactly the declared size, consuming each
// present field's width in declared order and capturing any remaining
// bytes into the trailing reserved field. The first field-level failure
// aborts the decode; no partial record is returned.
func (d *Descriptor) Decode(buf []byte) (Values, error) {
	if len(buf) != d.Size {
		return nil, &SizeMismatchError{Record: d.Name, Want: d.Size, Got: len(buf)}
	}
	rec := make(Values, len(d.Fields)+1)
	off := 0
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.If != nil && !f.If(rec) {
			continue
		}
		width := f.Codec.Width()
		if f.DecodeWidth != nil {
			w, err := f.DecodeWidth(rec)
			if err != nil {
				return nil, fieldContext(d.Name, f.Name, off, err)
			}
			width = w
		}
		if width < 0 {
			return nil, fmt.Errorf("%s.%s: variable-width field without a width rule", d.Name, f.Name)
		}
		if off+width > len(buf) {
			return nil, &SizeMismatchError{
				Record: d.Name, Field: f.Name, Offset: off,
				Want: width, Got: len(buf) - off,
			}
		}
		v, err := f.Codec.Decode(buf[off : off+width])
		if err != nil {
			return nil, fieldContext(d.Name, f.Name, off, err)
		}
		rec[f.Name] = v
		off += width
	}
	if d.Trailing != "" && off < len(buf) {
		// All-zero remainders are indistinguishable from padding and
		// decode as absent, so freshly built records round-trip equal.
		if tail := buf[off:]; !allZero(tail) {
			rec[d.Trailing] = append([]byte(nil), tail...)
		}
	}
	return rec, nil
}
