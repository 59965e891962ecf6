package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// TicksPerSecond is the device's native timestamp resolution: one tick
// is 100 nanoseconds.
const TicksPerSecond = 10_000_000

// Epoch is the zero point of the device's tick clock,
// 1601-01-01T00:00:00Z.
var Epoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// epochUnix is Epoch as Unix seconds. Computed once; time.Time.Sub
// cannot span the four centuries between the two epochs reliably for
// far-future values, so tick arithmetic works in seconds.
var epochUnix = Epoch.Unix()

// TicksFromTime converts t to 100ns ticks since Epoch. Sub-tick
// precision is truncated. Times before Epoch, or too far in the future
// for a 64-bit tick count, fail with a RangeError.
func TicksFromTime(t time.Time) (uint64, error) {
	if t.Before(Epoch) {
		return 0, &RangeError{Msg: fmt.Sprintf("time %s is before the tick epoch %s",
			t.UTC().Format(time.RFC3339), Epoch.Format(time.RFC3339))}
	}
	secs := uint64(t.Unix() - epochUnix)
	if secs > math.MaxUint64/TicksPerSecond {
		return 0, &RangeError{Msg: fmt.Sprintf("time %d seconds past the tick epoch overflows 64-bit ticks", secs)}
	}
	ticks := secs * TicksPerSecond
	rem := uint64(t.Nanosecond()) / 100
	if ticks > math.MaxUint64-rem {
		return 0, &RangeError{Msg: "time overflows 64-bit ticks"}
	}
	return ticks + rem, nil
}

// TimeFromTicks converts a tick count back to a UTC time. It is total
// over the full 64-bit domain.
func TimeFromTicks(ticks uint64) time.Time {
	secs := int64(ticks / TicksPerSecond)
	nanos := int64(ticks%TicksPerSecond) * 100
	return time.Unix(secs+epochUnix, nanos).UTC()
}

// Time encodes a timestamp as a 64-bit little-endian tick count.
type Time struct{}

func (Time) Width() int { return 8 }

func (Time) Encode(v any) ([]byte, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("codec: time.Time value required, got %T", v)
	}
	ticks, err := TicksFromTime(t)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, ticks)
	return buf, nil
}

func (Time) Decode(b []byte) (any, error) {
	if len(b) != 8 {
		return nil, &SizeMismatchError{Want: 8, Got: len(b)}
	}
	return TimeFromTicks(binary.LittleEndian.Uint64(b)), nil
}
