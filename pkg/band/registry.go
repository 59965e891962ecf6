package band

import (
	"fmt"
	"sort"
	"strings"
)

// RecordInfo describes one registered record kind: its canonical name,
// its wire size, and a decoder producing a fresh record value.
type RecordInfo struct {
	Name   string
	Size   int
	Decode func(data []byte) (any, error)
}

// Registry maps record names to their codecs. Lookups are
// case-insensitive. The zero value is not usable; construct with
// NewRegistry.
type Registry struct {
	kinds map[string]RecordInfo
}

// NewRegistry builds a registry over every record kind, with Profile
// bound to size. Pass DefaultProfileSize unless a capture set has
// established a different total.
func NewRegistry(profileSize int) *Registry {
	pc := NewProfileCodec(profileSize)
	r := &Registry{kinds: make(map[string]RecordInfo)}
	r.register(RecordInfo{Name: "SystemTime", Size: SystemTimeSize, Decode: func(data []byte) (any, error) {
		var st SystemTime
		if err := st.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return &st, nil
	}})
	r.register(RecordInfo{Name: "Tile", Size: TileSize, Decode: func(data []byte) (any, error) {
		var t Tile
		if err := t.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return &t, nil
	}})
	r.register(RecordInfo{Name: "Profile", Size: pc.Size(), Decode: func(data []byte) (any, error) {
		return pc.Decode(data)
	}})
	r.register(RecordInfo{Name: "UserProfile", Size: UserProfileSize, Decode: func(data []byte) (any, error) {
		var u UserProfile
		if err := u.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return &u, nil
	}})
	r.register(RecordInfo{Name: "FirmwareVersion", Size: FirmwareVersionSize, Decode: func(data []byte) (any, error) {
		var v FirmwareVersion
		if err := v.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return &v, nil
	}})
	return r
}

func (r *Registry) register(info RecordInfo) {
	r.kinds[strings.ToLower(info.Name)] = info
}

// Lookup returns the record kind registered under name.
func (r *Registry) Lookup(name string) (RecordInfo, error) {
	info, ok := r.kinds[strings.ToLower(name)]
	if !ok {
		return RecordInfo{}, fmt.Errorf("unknown record kind %q (known: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return info, nil
}

// Decode parses data as the named record kind.
func (r *Registry) Decode(name string, data []byte) (any, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return info.Decode(data)
}

// Names returns the canonical record names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for _, info := range r.kinds {
		names = append(names, info.Name)
	}
	sort.Strings(names)
	return names
}
