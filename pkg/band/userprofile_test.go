package band

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openband/bandwire/pkg/codec"
)

func TestUserProfileRoundTrip(t *testing.T) {
	u := UserProfile{
		Version:  1,
		LastSync: time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC),
		UserGUID: uuid.MustParse("d8895bfd-0461-400d-bd52-dbe2a3c33021"),
	}
	for i := range u.Data {
		u.Data[i] = byte(i)
	}

	data, err := u.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, UserProfileSize)

	var got UserProfile
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, u, got)
}

func TestUserProfileRejectsWrongSize(t *testing.T) {
	var u UserProfile
	err := u.UnmarshalBinary(make([]byte, UserProfileSize-10))
	var sizeErr *codec.SizeMismatchError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, "UserProfile", sizeErr.Record)
}

func TestUserProfileZeroValue(t *testing.T) {
	var u UserProfile
	data, err := u.MarshalBinary()
	require.NoError(t, err)

	var got UserProfile
	require.NoError(t, got.UnmarshalBinary(data))
	assert.True(t, got.LastSync.Equal(codec.Epoch))
	assert.Equal(t, uuid.UUID{}, got.UserGUID)
}
