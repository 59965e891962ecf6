package band

import (
	"time"

	"github.com/google/uuid"

	"github.com/openband/bandwire/pkg/codec"
)

// UserProfileSize is the exact wire size of a UserProfile record.
const UserProfileSize = 282

// UserProfile is the compact profile header the device exchanges during
// sync. The data block after the header is opaque at this layer and is
// carried verbatim.
type UserProfile struct {
	Version  uint16
	LastSync time.Time
	UserGUID uuid.UUID
	Data     [256]byte
}

var userProfileLayout = &codec.Descriptor{
	Name: "UserProfile",
	Size: UserProfileSize,
	Fields: []codec.Field{
		{Name: "Version", Codec: codec.Uint16{}},
		{Name: "LastSync", Codec: codec.Time{}, Default: codec.Epoch},
		{Name: "UserGUID", Codec: codec.GUID{}, Default: uuid.UUID{}},
		{Name: "Data", Codec: codec.Bytes{N: 256}, Default: make([]byte, 256)},
	},
}

// MarshalBinary returns the record's wire form, always UserProfileSize
// bytes. An unset LastSync encodes as the tick epoch.
func (u *UserProfile) MarshalBinary() ([]byte, error) {
	rec := codec.Values{
		"Version":  u.Version,
		"UserGUID": u.UserGUID,
		"Data":     u.Data[:],
	}
	if !u.LastSync.IsZero() {
		rec["LastSync"] = u.LastSync
	}
	return userProfileLayout.Encode(rec)
}

// UnmarshalBinary parses a buffer of exactly UserProfileSize bytes.
func (u *UserProfile) UnmarshalBinary(data []byte) error {
	rec, err := userProfileLayout.Decode(data)
	if err != nil {
		return err
	}
	u.Version = rec["Version"].(uint16)
	u.LastSync = rec["LastSync"].(time.Time)
	u.UserGUID = rec["UserGUID"].(uuid.UUID)
	copy(u.Data[:], rec["Data"].([]byte))
	return nil
}
