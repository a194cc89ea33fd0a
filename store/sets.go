package store

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/takakv/incrhash/digest"
	"github.com/takakv/incrhash/incrhash"
	"sync"
)

var log = logger.GetOrCreate("incrhash/store")

// Sets keeps one compressed digest per set name. Keys are prefixed with the
// name of the digest algorithm, so sets hashed with different algorithms
// never share a key.
//
// A Sets is safe for concurrent use; updates to the backend made through
// other means are not serialised with it.
type Sets[D digest.Tag] struct {
	mu      sync.Mutex
	backend Backend
}

// NewSets returns a Sets stored in backend.
func NewSets[D digest.Tag](backend Backend) *Sets[D] {
	return &Sets[D]{backend: backend}
}

func (s *Sets[D]) key(name string) []byte {
	return []byte(digest.TagName[D]() + "/" + name)
}

// load reads the stored bytes without checking they encode a group element;
// that is left to the accumulator when it decodes them.
func (s *Sets[D]) load(name string) (incrhash.Compressed[D], error) {
	raw, err := s.backend.Get(s.key(name))
	if errors.Is(err, ErrNotFound) {
		return incrhash.CompressedIdentity[D](), nil
	} else if err != nil {
		return incrhash.Compressed[D]{}, errors.Wrapf(err, "reading set %q", name)
	}
	if len(raw) != incrhash.Size {
		return incrhash.Compressed[D]{}, errors.Wrapf(incrhash.ErrDecoding,
			"set %q: stored digest is %d bytes", name, len(raw))
	}
	var c incrhash.Compressed[D]
	copy(c[:], raw)
	return c, nil
}

// Get returns the digest of the named set. A set that was never written is
// empty. A stored value that does not decode fails with incrhash.ErrDecoding.
func (s *Sets[D]) Get(name string) (incrhash.Compressed[D], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(name)
	if err != nil {
		return incrhash.Compressed[D]{}, err
	}
	if _, err := c.Decompress(); err != nil {
		return incrhash.Compressed[D]{}, errors.Wrapf(err, "set %q", name)
	}
	return c, nil
}

// Apply inserts and removes elements from the named set and returns the new
// digest. The changes are folded into one expanded delta, which is added to
// the stored digest with a single decode and encode. Nothing is written if
// the stored digest does not decode.
func (s *Sets[D]) Apply(name string, inserted, removed [][]byte) (incrhash.Compressed[D], error) {
	delta := incrhash.Sum[D](inserted...)
	delta.SubtractAssign(incrhash.Sum[D](removed...))

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(name)
	if err != nil {
		return incrhash.Compressed[D]{}, err
	}
	if err := c.AddAssign(delta); err != nil {
		log.Warn("stored digest does not decode", "set", name, "error", err.Error())
		return incrhash.Compressed[D]{}, errors.Wrapf(err, "set %q", name)
	}
	if err := s.backend.Put(s.key(name), c.Bytes()); err != nil {
		return incrhash.Compressed[D]{}, errors.Wrapf(err, "writing set %q", name)
	}

	log.Debug("set updated", "set", name, "inserted", len(inserted), "removed", len(removed), "digest", c.String())
	return c, nil
}

// Insert adds elements to the named set.
func (s *Sets[D]) Insert(name string, elements ...[]byte) (incrhash.Compressed[D], error) {
	return s.Apply(name, elements, nil)
}

// Remove removes elements from the named set.
func (s *Sets[D]) Remove(name string, elements ...[]byte) (incrhash.Compressed[D], error) {
	return s.Apply(name, nil, elements)
}

// Reset empties the named set.
func (s *Sets[D]) Reset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(s.key(name)); err != nil {
		return errors.Wrapf(err, "deleting set %q", name)
	}
	log.Debug("set reset", "set", name)
	return nil
}
