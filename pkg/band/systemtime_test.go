package band

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openband/bandwire/pkg/codec"
)

func TestSystemTimeWireLayout(t *testing.T) {
	st := SystemTime{
		Year:         2026,
		Month:        8,
		DayOfWeek:    1,
		Day:          31,
		Hour:         13,
		Minute:       37,
		Second:       59,
		Milliseconds: 999,
	}
	data, err := st.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, SystemTimeSize)

	// Eight consecutive little-endian halfwords.
	want := []byte{
		0xEA, 0x07, // 2026
		0x08, 0x00,
		0x01, 0x00,
		0x1F, 0x00,
		0x0D, 0x00,
		0x25, 0x00,
		0x3B, 0x00,
		0xE7, 0x03, // 999
	}
	assert.Equal(t, want, data)

	var got SystemTime
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, st, got)
}

func TestSystemTimeRejectsWrongSize(t *testing.T) {
	var st SystemTime
	err := st.UnmarshalBinary(make([]byte, SystemTimeSize-1))
	var sizeErr *codec.SizeMismatchError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, SystemTimeSize, sizeErr.Want)
	assert.Equal(t, SystemTimeSize-1, sizeErr.Got)
}

func TestSystemTimeOfWeekdayConventions(t *testing.T) {
	// 2000-01-01 was a Saturday.
	sat := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, uint16(6), SystemTimeOf(sat, WeekdaySundayZero).DayOfWeek)
	assert.Equal(t, uint16(5), SystemTimeOf(sat, WeekdayMondayZero).DayOfWeek)

	sun := sat.AddDate(0, 0, 1)
	assert.Equal(t, uint16(0), SystemTimeOf(sun, WeekdaySundayZero).DayOfWeek)
	assert.Equal(t, uint16(6), SystemTimeOf(sun, WeekdayMondayZero).DayOfWeek)
}

func TestSystemTimeTimeConversion(t *testing.T) {
	at := time.Date(2015, time.April, 30, 23, 59, 58, 250*int(time.Millisecond), time.UTC)
	st := SystemTimeOf(at, WeekdaySundayZero)
	assert.True(t, st.Time().Equal(at), "got %v, want %v", st.Time(), at)

	// DayOfWeek is redundant with the date fields and must not affect
	// the conversion.
	st.DayOfWeek = 6
	assert.True(t, st.Time().Equal(at))
}

func TestSystemTimeZeroValue(t *testing.T) {
	var st SystemTime
	data, err := st.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, make([]byte, SystemTimeSize), data)
}

func TestSystemTimeDecodeErrorIsTyped(t *testing.T) {
	var st SystemTime
	err := st.UnmarshalBinary(nil)
	assert.True(t, errors.As(err, new(*codec.SizeMismatchError)))
}
