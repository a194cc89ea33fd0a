// Package group wraps the ristretto255 prime-order group.
//
// Elements come in two forms. Element is the expanded form that supports the
// group operation. Compressed is the canonical 32-byte encoding: every
// Element has exactly one Compressed form, and a Compressed value either
// decodes to exactly one Element or is rejected.
package group

import (
	"encoding/hex"
	"github.com/pkg/errors"
)

const (
	// Name is the name of the group.
	Name = "ristretto255"
	// CompressedSize is the length of a canonical element encoding.
	CompressedSize = 32
	// UniformSize is the number of uniformly random bytes consumed by
	// Element.SetUniformBytes.
	UniformSize = 64
)

// ErrInvalidEncoding is returned when bytes do not encode a group element.
var ErrInvalidEncoding = errors.New("invalid ristretto255 encoding")

// Compressed is the canonical encoding of an element.
// The zero value encodes the identity element.
type Compressed [CompressedSize]byte

// String returns the lowercase hex encoding of c.
func (c Compressed) String() string {
	return hex.EncodeToString(c[:])
}

// Bytes returns a copy of the encoding as a slice.
func (c Compressed) Bytes() []byte {
	return c[:]
}

// IsIdentity returns true if c encodes the identity element.
func (c Compressed) IsIdentity() bool {
	return c == Compressed{}
}
