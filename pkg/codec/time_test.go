package codec

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestTime_ZeroTicksIsEpoch(t *testing.T) {
	decoded, err := Time{}.Decode(make([]byte, 8))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !decoded.(time.Time).Equal(Epoch) {
		t.Errorf("zero ticks decoded to %v, want %v", decoded, Epoch)
	}
}

func TestTime_EncodeEpochIsZero(t *testing.T) {
	encoded, err := Time{}.Encode(Epoch)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(encoded, make([]byte, 8)) {
		t.Errorf("epoch encoded to %x, want all zeros", encoded)
	}
}

func TestTime_RoundTripAtTickGranularity(t *testing.T) {
	testCases := []struct {
		name string
		in   time.Time
	}{
		{"epoch", Epoch},
		{"unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"whole ticks", time.Date(2015, 7, 14, 12, 30, 45, 123_456_700, time.UTC)},
		{"one tick past epoch", Epoch.Add(100 * time.Nanosecond)},
		{"far future", time.Date(9999, 12, 31, 23, 59, 59, 999_999_900, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Time{}.Encode(tc.in)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := Time{}.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !decoded.(time.Time).Equal(tc.in) {
				t.Errorf("round trip mismatch: got %v, want %v", decoded, tc.in)
			}
		})
	}
}

func TestTime_SubTickPrecisionTruncates(t *testing.T) {
	in := time.Date(2015, 7, 14, 12, 30, 45, 123_456_789, time.UTC)
	want := time.Date(2015, 7, 14, 12, 30, 45, 123_456_700, time.UTC)

	encoded, err := Time{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Time{}.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !decoded.(time.Time).Equal(want) {
		t.Errorf("got %v, want %v", decoded, want)
	}
}

func TestTime_BeforeEpochFails(t *testing.T) {
	_, err := Time{}.Encode(time.Date(1600, 12, 31, 23, 59, 59, 0, time.UTC))
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got %v", err)
	}
}

func TestTicksFromTime_TruncatesToTicks(t *testing.T) {
	base := time.Date(1601, 1, 1, 0, 0, 1, 0, time.UTC)
	ticks, err := TicksFromTime(base.Add(99 * time.Nanosecond))
	if err != nil {
		t.Fatalf("TicksFromTime failed: %v", err)
	}
	if ticks != TicksPerSecond {
		t.Errorf("sub-tick nanoseconds not truncated: got %d, want %d", ticks, uint64(TicksPerSecond))
	}
}

func TestTimeFromTicks_TotalOverFullDomain(t *testing.T) {
	// No tick count is invalid on decode, including the extremes.
	for _, ticks := range []uint64{0, 1, TicksPerSecond, 1<<63 - 1, 1 << 63, ^uint64(0)} {
		got := TimeFromTicks(ticks)
		back, err := TicksFromTime(got)
		if err != nil {
			t.Fatalf("ticks %d: re-encode failed: %v", ticks, err)
		}
		if back != ticks {
			t.Errorf("ticks %d: round trip gave %d", ticks, back)
		}
	}
}
