package band

import (
	"fmt"

	"github.com/openband/bandwire/pkg/codec"
)

// FirmwareVersionSize is the exact wire size of a FirmwareVersion
// record.
const FirmwareVersionSize = 13

// FirmwareVersion describes one firmware application's build number as
// reported by the device.
type FirmwareVersion struct {
	Major    uint16
	Minor    uint16
	Revision uint32
	Build    uint32
	Debug    bool
}

var firmwareVersionLayout = &codec.Descriptor{
	Name: "FirmwareVersion",
	Size: FirmwareVersionSize,
	Fields: []codec.Field{
		{Name: "Major", Codec: codec.Uint16{}},
		{Name: "Minor", Codec: codec.Uint16{}},
		{Name: "Revision", Codec: codec.Uint32{}},
		{Name: "Build", Codec: codec.Uint32{}},
		{Name: "Debug", Codec: codec.Bool{}, Default: false},
	},
}

func (v FirmwareVersion) String() string {
	s := fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Revision, v.Build)
	if v.Debug {
		s += " (debug)"
	}
	return s
}

// MarshalBinary returns the record's wire form, always
// FirmwareVersionSize bytes.
func (v *FirmwareVersion) MarshalBinary() ([]byte, error) {
	return firmwareVersionLayout.Encode(codec.Values{
		"Major":    v.Major,
		"Minor":    v.Minor,
		"Revision": v.Revision,
		"Build":    v.Build,
		"Debug":    v.Debug,
	})
}

// UnmarshalBinary parses a buffer of exactly FirmwareVersionSize bytes.
func (v *FirmwareVersion) UnmarshalBinary(data []byte) error {
	rec, err := firmwareVersionLayout.Decode(data)
	if err != nil {
		return err
	}
	v.Major = rec["Major"].(uint16)
	v.Minor = rec["Minor"].(uint16)
	v.Revision = rec["Revision"].(uint32)
	v.Build = rec["Build"].(uint32)
	v.Debug = rec["Debug"].(bool)
	return nil
}
