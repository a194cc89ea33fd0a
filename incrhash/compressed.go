package incrhash

import (
	"github.com/pkg/errors"
	"github.com/takakv/incrhash/digest"
	"github.com/takakv/incrhash/group"
)

// Size is the length of a compressed hash in bytes.
const Size = group.CompressedSize

// Compressed is an incremental hash in compact form: the canonical 32-byte
// encoding of the group element. Two Compressed values are equal exactly when
// their hashes are, so they can be compared with ==.
//
// The zero value is the hash of the empty collection. Values obtained from
// this package always hold a valid encoding; a Compressed converted from
// arbitrary bytes may not, in which case the methods that decode it return
// ErrDecoding.
type Compressed[D digest.Tag] group.Compressed

// CompressedIdentity returns the compressed hash of the empty collection.
func CompressedIdentity[D digest.Tag]() Compressed[D] {
	return Compressed[D]{}
}

// CompressedFromBytes returns the compressed hash of the collection holding
// only element.
func CompressedFromBytes[D digest.Tag](element []byte) Compressed[D] {
	return FromBytes[D](element).Compress()
}

// ParseCompressed validates b as a compressed hash. It fails with ErrDecoding
// if b is not exactly Size bytes or is not a canonical encoding.
func ParseCompressed[D digest.Tag](b []byte) (Compressed[D], error) {
	var e group.Element
	if _, err := e.SetBytes(b); err != nil {
		return Compressed[D]{}, err
	}
	return Compressed[D](e.Compress()), nil
}

// AddAssign folds the expanded delta into c: c is decoded, delta is added and
// the result is encoded back into c. If c does not hold a valid encoding it
// returns ErrDecoding and c is unchanged.
func (c *Compressed[D]) AddAssign(delta Hash[D]) error {
	h, err := c.Decompress()
	if err != nil {
		return errors.Wrap(err, "add")
	}
	h.AddAssign(delta)
	*c = h.Compress()
	return nil
}

// SubtractAssign is AddAssign with the delta subtracted.
func (c *Compressed[D]) SubtractAssign(delta Hash[D]) error {
	h, err := c.Decompress()
	if err != nil {
		return errors.Wrap(err, "subtract")
	}
	h.SubtractAssign(delta)
	*c = h.Compress()
	return nil
}

// Combine sets c to c + o. Both operands are decoded, so this is slower than
// AddAssign with an expanded delta; prefer keeping one side expanded.
// On error c is unchanged.
func (c *Compressed[D]) Combine(o Compressed[D]) error {
	delta, err := o.Decompress()
	if err != nil {
		return errors.Wrap(err, "combine")
	}
	return c.AddAssign(delta)
}

// Difference sets c to c - o, decoding both operands like Combine.
// On error c is unchanged.
func (c *Compressed[D]) Difference(o Compressed[D]) error {
	delta, err := o.Decompress()
	if err != nil {
		return errors.Wrap(err, "difference")
	}
	return c.SubtractAssign(delta)
}

// Equal returns true if c and o are the same encoding.
func (c Compressed[D]) Equal(o Compressed[D]) bool {
	return c == o
}

// IsIdentity returns true if c is the compressed hash of the empty
// collection.
func (c Compressed[D]) IsIdentity() bool {
	return group.Compressed(c).IsIdentity()
}

// Bytes returns a copy of the encoding.
func (c Compressed[D]) Bytes() []byte {
	return group.Compressed(c).Bytes()
}

// String returns the 64-character lowercase hex encoding.
func (c Compressed[D]) String() string {
	return group.Compressed(c).String()
}

// MarshalBinary returns the encoding.
func (c Compressed[D]) MarshalBinary() ([]byte, error) {
	return c.Bytes(), nil
}

// UnmarshalBinary validates data like ParseCompressed and stores it in c.
// On error c is unchanged.
func (c *Compressed[D]) UnmarshalBinary(data []byte) error {
	parsed, err := ParseCompressed[D](data)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText returns the hex encoding.
func (c Compressed[D]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText validates a hex encoding and stores it in c. On error c is
// unchanged.
func (c *Compressed[D]) UnmarshalText(text []byte) error {
	b, err := decodeHex(text)
	if err != nil {
		return err
	}
	return c.UnmarshalBinary(b)
}
