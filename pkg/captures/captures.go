package captures

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/openband/bandwire/pkg/band"
)

// Store keeps raw capture payloads in a pebble database, keyed by
// record kind and a sortable capture identifier. Payloads go in
// verbatim; decoding happens on demand so captures that predate a
// layout fix stay inspectable.
type Store struct {
	db       *pebble.DB
	registry *band.Registry
}

// Capture is one stored payload.
type Capture struct {
	ID      ksuid.KSUID
	Payload []byte
}

// Open opens or creates the capture database at path. Record kinds are
// resolved against reg.
func Open(path string, reg *band.Registry) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db, registry: reg}, nil
}

// Add stores a payload under the given record kind and returns its
// identifier. The payload is not size-checked on the way in; Verify
// reports layout disagreements afterwards.
func (s *Store) Add(kind string, payload []byte) (ksuid.KSUID, error) {
	info, err := s.registry.Lookup(kind)
	if err != nil {
		return ksuid.KSUID{}, err
	}
	id := ksuid.New()
	if err := s.db.Set(captureKey(info.Name, id), payload, pebble.Sync); err != nil {
		return ksuid.KSUID{}, err
	}
	return id, nil
}

// Get returns the payload stored under kind and id.
func (s *Store) Get(kind string, id ksuid.KSUID) ([]byte, error) {
	info, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	data, closer, err := s.db.Get(captureKey(info.Name, id))
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), data...), nil
}

// Delete removes the payload stored under kind and id.
func (s *Store) Delete(kind string, id ksuid.KSUID) error {
	info, err := s.registry.Lookup(kind)
	if err != nil {
		return err
	}
	return s.db.Delete(captureKey(info.Name, id), pebble.Sync)
}

// List returns every capture of the given kind in identifier order.
func (s *Store) List(kind string) ([]Capture, error) {
	info, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	prefix := keyPrefix(info.Name)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: append(append([]byte(nil), prefix[:len(prefix)-1]...), 0x01),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []Capture
	for iter.First(); iter.Valid(); iter.Next() {
		key := iter.Key()
		if !bytes.HasPrefix(key, prefix) {
			continue
		}
		id, err := ksuid.FromBytes(append([]byte(nil), key[len(prefix):]...))
		if err != nil {
			return nil, fmt.Errorf("corrupt capture key %x: %w", key, err)
		}
		out = append(out, Capture{
			ID:      id,
			Payload: append([]byte(nil), iter.Value()...),
		})
	}
	return out, iter.Error()
}

// Failure records one capture the registry's codec refused.
type Failure struct {
	ID  ksuid.KSUID
	Err error
}

// Report summarizes a verification pass over one record kind.
type Report struct {
	Kind     string
	Total    int
	Decoded  int
	Failures []Failure
}

// Verify decodes every capture of the given kind against the
// registry's layout and reports how many parse cleanly. A capture set
// with systematic failures is the signal that a declared record size
// needs revisiting.
func (s *Store) Verify(kind string) (*Report, error) {
	info, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	caps, err := s.List(kind)
	if err != nil {
		return nil, err
	}
	rep := &Report{Kind: info.Name, Total: len(caps)}
	for _, c := range caps {
		if _, err := info.Decode(c.Payload); err != nil {
			rep.Failures = append(rep.Failures, Failure{ID: c.ID, Err: err})
			continue
		}
		rep.Decoded++
	}
	return rep, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func keyPrefix(kind string) []byte {
	return append([]byte(kind), 0x00)
}

func captureKey(kind string, id ksuid.KSUID) []byte {
	return append(keyPrefix(kind), id.Bytes()...)
}
