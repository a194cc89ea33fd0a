package incrhash

import (
	"encoding/hex"
	"github.com/pkg/errors"
	"github.com/takakv/incrhash/digest"
	"github.com/takakv/incrhash/group"
)

// HashToGroup maps element to a group element. The algorithm D digests
// element into 64 bytes, which are mapped into the group with the ristretto255
// one-way map. The mapping is deterministic and defined for every input.
func HashToGroup[D digest.Tag](element []byte) *group.Element {
	var d D
	u := d.Sum512(element)
	return group.NewElement().SetUniformBytes(&u)
}

// Hash is an incremental hash in expanded form.
//
// The zero value is the hash of the empty collection. A Hash owns its value:
// copies are independent.
type Hash[D digest.Tag] struct {
	e group.Element
}

// Identity returns the hash of the empty collection.
func Identity[D digest.Tag]() Hash[D] {
	return Hash[D]{}
}

// FromBytes returns the hash of the collection holding only element.
func FromBytes[D digest.Tag](element []byte) Hash[D] {
	var h Hash[D]
	h.e.Set(HashToGroup[D](element))
	return h
}

// Sum returns the hash of the collection holding elements. Duplicates count
// once per occurrence.
func Sum[D digest.Tag](elements ...[]byte) Hash[D] {
	var h Hash[D]
	for _, element := range elements {
		h.Insert(element)
	}
	return h
}

// Add returns h + o, the hash of the union of both collections.
func (h Hash[D]) Add(o Hash[D]) Hash[D] {
	var r Hash[D]
	r.e.Add(&h.e, &o.e)
	return r
}

// Subtract returns h - o. Subtract(h.Add(o), o) equals h.
func (h Hash[D]) Subtract(o Hash[D]) Hash[D] {
	var r Hash[D]
	r.e.Subtract(&h.e, &o.e)
	return r
}

// AddAssign sets h to h + o.
func (h *Hash[D]) AddAssign(o Hash[D]) {
	h.e.Add(&h.e, &o.e)
}

// SubtractAssign sets h to h - o.
func (h *Hash[D]) SubtractAssign(o Hash[D]) {
	h.e.Subtract(&h.e, &o.e)
}

// Insert adds element to the hashed collection.
func (h *Hash[D]) Insert(element []byte) {
	h.e.Add(&h.e, HashToGroup[D](element))
}

// Remove removes element from the hashed collection. Removing an element that
// was never inserted is allowed; inserting it later cancels the removal.
func (h *Hash[D]) Remove(element []byte) {
	h.e.Subtract(&h.e, HashToGroup[D](element))
}

// Equal returns true if h and o hold the same group element.
func (h Hash[D]) Equal(o Hash[D]) bool {
	return h.e.IsEqual(&o.e)
}

// IsIdentity returns true if h is the hash of the empty collection, or of any
// sequence of updates that cancel out.
func (h Hash[D]) IsIdentity() bool {
	return h.e.IsIdentity()
}

// Element returns a copy of the underlying group element.
func (h Hash[D]) Element() *group.Element {
	return group.NewElement().Set(&h.e)
}

// String returns the 64-character lowercase hex encoding of the compressed
// form.
func (h Hash[D]) String() string {
	return h.e.String()
}

// MarshalBinary returns the 32-byte compressed form.
func (h Hash[D]) MarshalBinary() ([]byte, error) {
	return h.e.MarshalBinary()
}

// UnmarshalBinary sets h from a compressed form. On error h is unchanged.
func (h *Hash[D]) UnmarshalBinary(data []byte) error {
	return h.e.UnmarshalBinary(data)
}

// MarshalText returns the hex encoding of the compressed form.
func (h Hash[D]) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText sets h from the hex encoding of a compressed form. On error h
// is unchanged.
func (h *Hash[D]) UnmarshalText(text []byte) error {
	b, err := decodeHex(text)
	if err != nil {
		return err
	}
	return h.UnmarshalBinary(b)
}

func decodeHex(text []byte) ([]byte, error) {
	b := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(b, text); err != nil {
		return nil, errors.Wrapf(ErrDecoding, "hex: %v", err)
	}
	return b, nil
}
