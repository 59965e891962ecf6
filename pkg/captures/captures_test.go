package captures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openband/bandwire/pkg/band"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), band.NewRegistry(band.DefaultProfileSize))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func systemTimeBytes(t *testing.T) []byte {
	t.Helper()
	st := band.SystemTime{Year: 2026, Month: 8, Day: 31, Hour: 9}
	data, err := st.MarshalBinary()
	require.NoError(t, err)
	return data
}

func TestStoreAddGetDelete(t *testing.T) {
	s := openTestStore(t)
	payload := systemTimeBytes(t)

	id, err := s.Add("SystemTime", payload)
	require.NoError(t, err)

	got, err := s.Get("systemtime", id)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, s.Delete("SystemTime", id))
	_, err = s.Get("SystemTime", id)
	assert.Error(t, err)
}

func TestStoreRejectsUnknownKind(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Add("NotARecord", []byte{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record kind")
}

func TestStoreListIsScopedToKind(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Add("SystemTime", systemTimeBytes(t))
	require.NoError(t, err)
	_, err = s.Add("SystemTime", systemTimeBytes(t))
	require.NoError(t, err)
	_, err = s.Add("UserProfile", make([]byte, band.UserProfileSize))
	require.NoError(t, err)

	times, err := s.List("SystemTime")
	require.NoError(t, err)
	assert.Len(t, times, 2)

	profiles, err := s.List("UserProfile")
	require.NoError(t, err)
	assert.Len(t, profiles, 1)

	tiles, err := s.List("Tile")
	require.NoError(t, err)
	assert.Empty(t, tiles)
}

func TestStoreVerifyReportsSizeDisagreements(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Add("SystemTime", systemTimeBytes(t))
	require.NoError(t, err)
	// A truncated capture must show up as a failure, not an error.
	short, err := s.Add("SystemTime", systemTimeBytes(t)[:10])
	require.NoError(t, err)

	rep, err := s.Verify("SystemTime")
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, 1, rep.Decoded)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, short, rep.Failures[0].ID)
	assert.Error(t, rep.Failures[0].Err)
}

func TestStoreVerifyEmptyKind(t *testing.T) {
	s := openTestStore(t)
	rep, err := s.Verify("Tile")
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Total)
	assert.Empty(t, rep.Failures)
}
