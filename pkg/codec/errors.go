package codec

import "fmt"

// RangeError reports a value outside the domain a codec can represent,
// such as a timestamp earlier than the tick epoch.
type RangeError struct {
	Record string
	Field  string
	Offset int
	Msg    string
}

func (e *RangeError) Error() string {
	return fieldPrefix(e.Record, e.Field, e.Offset) + "value out of range: " + e.Msg
}

// SizeMismatchError reports a buffer whose length does not equal the
// declared or derived width at encode or decode time.
type SizeMismatchError struct {
	Record string
	Field  string
	Offset int
	Want   int
	Got    int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%ssize mismatch: want %d bytes, got %d",
		fieldPrefix(e.Record, e.Field, e.Offset), e.Want, e.Got)
}

// FieldTooLargeError reports content that exceeds a field's declared
// capacity, or a record body that exceeds the record's declared size.
// Encode never silently truncates.
type FieldTooLargeError struct {
	Record string
	Field  string
	Offset int
	Limit  int
	Got    int
}

func (e *FieldTooLargeError) Error() string {
	return fmt.Sprintf("%sfield too large: limit %d, got %d",
		fieldPrefix(e.Record, e.Field, e.Offset), e.Limit, e.Got)
}

// UnknownEnumValueError reports a strict enumeration decode that saw a
// code with no registered name. Bit-flag masks never produce this error;
// unknown bits are carried through verbatim.
type UnknownEnumValueError struct {
	Record string
	Field  string
	Offset int
	Enum   string
	Value  uint16
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("%sunknown %s value %d",
		fieldPrefix(e.Record, e.Field, e.Offset), e.Enum, e.Value)
}

func fieldPrefix(record, field string, offset int) string {
	switch {
	case record == "" && field == "":
		return ""
	case field == "":
		return fmt.Sprintf("%s: ", record)
	case record == "":
		return fmt.Sprintf("%s: ", field)
	default:
		return fmt.Sprintf("%s.%s at offset %d: ", record, field, offset)
	}
}

// fieldContext stamps record, field, and offset onto a typed codec error.
// Errors outside the taxonomy are wrapped instead.
func fieldContext(record, field string, offset int, err error) error {
	switch e := err.(type) {
	case *RangeError:
		e.Record, e.Field, e.Offset = record, field, offset
	case *SizeMismatchError:
		e.Record, e.Field, e.Offset = record, field, offset
	case *FieldTooLargeError:
		e.Record, e.Field, e.Offset = record, field, offset
	case *UnknownEnumValueError:
		e.Record, e.Field, e.Offset = record, field, offset
	default:
		return fmt.Errorf("%s.%s at offset %d: %w", record, field, offset, err)
	}
	return err
}
