package band

import (
	"time"

	"github.com/openband/bandwire/pkg/codec"
)

// SystemTimeSize is the wire size of a SystemTime record.
const SystemTimeSize = 16

// WeekdayConvention fixes which index the DayOfWeek field assigns to
// which weekday. The device's own convention has not been confirmed
// against captures, so conversions take it explicitly instead of
// baking one in.
type WeekdayConvention int

const (
	// WeekdaySundayZero numbers Sunday as 0, the convention of the
	// device family's native system-time structure.
	WeekdaySundayZero WeekdayConvention = iota

	// WeekdayMondayZero numbers Monday as 0.
	WeekdayMondayZero
)

// SystemTime is the device clock record: eight consecutive 16-bit
// little-endian fields.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

var systemTimeLayout = &codec.Descriptor{
	Name: "SystemTime",
	Size: SystemTimeSize,
	Fields: []codec.Field{
		{Name: "Year", Codec: codec.Uint16{}, Default: uint16(0)},
		{Name: "Month", Codec: codec.Uint16{}, Default: uint16(0)},
		{Name: "DayOfWeek", Codec: codec.Uint16{}, Default: uint16(0)},
		{Name: "Day", Codec: codec.Uint16{}, Default: uint16(0)},
		{Name: "Hour", Codec: codec.Uint16{}, Default: uint16(0)},
		{Name: "Minute", Codec: codec.Uint16{}, Default: uint16(0)},
		{Name: "Second", Codec: codec.Uint16{}, Default: uint16(0)},
		{Name: "Milliseconds", Codec: codec.Uint16{}, Default: uint16(0)},
	},
}

// MarshalBinary encodes the record into its 16-byte wire form.
func (st *SystemTime) MarshalBinary() ([]byte, error) {
	return systemTimeLayout.Encode(codec.Values{
		"Year":         st.Year,
		"Month":        st.Month,
		"DayOfWeek":    st.DayOfWeek,
		"Day":          st.Day,
		"Hour":         st.Hour,
		"Minute":       st.Minute,
		"Second":       st.Second,
		"Milliseconds": st.Milliseconds,
	})
}

// UnmarshalBinary decodes a 16-byte wire buffer.
func (st *SystemTime) UnmarshalBinary(data []byte) error {
	rec, err := systemTimeLayout.Decode(data)
	if err != nil {
		return err
	}
	*st = SystemTime{
		Year:         rec["Year"].(uint16),
		Month:        rec["Month"].(uint16),
		DayOfWeek:    rec["DayOfWeek"].(uint16),
		Day:          rec["Day"].(uint16),
		Hour:         rec["Hour"].(uint16),
		Minute:       rec["Minute"].(uint16),
		Second:       rec["Second"].(uint16),
		Milliseconds: rec["Milliseconds"].(uint16),
	}
	return nil
}

// Time converts the record to a time.Time. DayOfWeek carries no extra
// information and is ignored.
func (st *SystemTime) Time() time.Time {
	return time.Date(int(st.Year), time.Month(st.Month), int(st.Day),
		int(st.Hour), int(st.Minute), int(st.Second),
		int(st.Milliseconds)*int(time.Millisecond), time.UTC)
}

// SystemTimeOf builds a record from t, deriving DayOfWeek under the
// given convention.
func SystemTimeOf(t time.Time, wc WeekdayConvention) SystemTime {
	return SystemTime{
		Year:         uint16(t.Year()),
		Month:        uint16(t.Month()),
		DayOfWeek:    weekdayIndex(t.Weekday(), wc),
		Day:          uint16(t.Day()),
		Hour:         uint16(t.Hour()),
		Minute:       uint16(t.Minute()),
		Second:       uint16(t.Second()),
		Milliseconds: uint16(t.Nanosecond() / int(time.Millisecond)),
	}
}

func weekdayIndex(d time.Weekday, wc WeekdayConvention) uint16 {
	if wc == WeekdayMondayZero {
		return uint16((int(d) + 6) % 7)
	}
	return uint16(d)
}
