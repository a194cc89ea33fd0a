package group

import (
	"bytes"
	"github.com/bwesterb/go-ristretto"
	"github.com/pkg/errors"
)

// Element is an element of ristretto255 in expanded form.
//
// The zero value is the identity element. Elements are not comparable with
// ==. Methods that take operands set the receiver to the result and return
// it, so calls can be chained; operands may alias the receiver.
type Element struct {
	// Equal elements may have different coordinates; use IsEqual.
	_   [0]func()
	val ristretto.Point
	// set is false until val holds a point; the zero Point is not the
	// identity.
	set bool
}

func identityPoint() *ristretto.Point {
	var p ristretto.Point
	return p.SetZero()
}

// NewElement returns a new element set to the identity.
func NewElement() *Element {
	return new(Element)
}

func (e *Element) point() *ristretto.Point {
	if !e.set {
		return identityPoint()
	}
	return &e.val
}

func (e *Element) store(p *ristretto.Point) *Element {
	e.val = *p
	e.set = true
	return e
}

// Add sets the receiver to a + b, and returns it.
func (e *Element) Add(a, b *Element) *Element {
	var r ristretto.Point
	r.Add(a.point(), b.point())
	return e.store(&r)
}

// Subtract sets the receiver to a - b, and returns it.
func (e *Element) Subtract(a, b *Element) *Element {
	var r ristretto.Point
	r.Sub(a.point(), b.point())
	return e.store(&r)
}

// Negate sets the receiver to -a, and returns it.
func (e *Element) Negate(a *Element) *Element {
	var r ristretto.Point
	r.Neg(a.point())
	return e.store(&r)
}

// Set sets the receiver to a, and returns it.
func (e *Element) Set(a *Element) *Element {
	return e.store(a.point())
}

// SetIdentity sets the receiver to the identity element, and returns it.
func (e *Element) SetIdentity() *Element {
	e.val = ristretto.Point{}
	e.set = false
	return e
}

// IsEqual returns true if the receiver is equal to b.
func (e *Element) IsEqual(b *Element) bool {
	return e.point().Equals(b.point())
}

// IsIdentity returns true if the receiver is the identity element.
func (e *Element) IsIdentity() bool {
	return e.point().Equals(identityPoint())
}

// SetUniformBytes maps 64 uniformly random bytes to an element with the
// ristretto255 one-way map: each half goes through the Elligator map and the
// two resulting points are added. The output is indistinguishable from a
// uniformly random element when the input is, and nobody knows its discrete
// logarithm. It sets the receiver to the result and returns it.
func (e *Element) SetUniformBytes(b *[UniformSize]byte) *Element {
	var half [32]byte
	var p1, p2 ristretto.Point

	copy(half[:], b[:32])
	p1.SetElligator(&half)
	copy(half[:], b[32:])
	p2.SetElligator(&half)

	var r ristretto.Point
	r.Add(&p1, &p2)
	return e.store(&r)
}

// Compress returns the canonical encoding of the receiver.
func (e *Element) Compress() Compressed {
	var c Compressed
	copy(c[:], e.point().Bytes())
	return c
}

// SetCompressed decodes c and sets the receiver to the result.
// Non-canonical encodings are rejected. On error the receiver is unchanged.
func (e *Element) SetCompressed(c *Compressed) (*Element, error) {
	var p ristretto.Point
	buf := [CompressedSize]byte(*c)
	if !p.SetBytes(&buf) {
		return nil, errors.Wrapf(ErrInvalidEncoding, "%x is not a point", c[:])
	}
	if !bytes.Equal(p.Bytes(), c[:]) {
		return nil, errors.Wrapf(ErrInvalidEncoding, "%x is not canonical", c[:])
	}
	return e.store(&p), nil
}

// SetBytes decodes b and sets the receiver to the result. b must be exactly
// CompressedSize bytes. On error the receiver is unchanged.
func (e *Element) SetBytes(b []byte) (*Element, error) {
	if len(b) != CompressedSize {
		return nil, errors.Wrapf(ErrInvalidEncoding, "got %d bytes, want %d", len(b), CompressedSize)
	}
	var c Compressed
	copy(c[:], b)
	return e.SetCompressed(&c)
}

// String returns the hex encoding of the receiver's compressed form.
func (e *Element) String() string {
	return e.Compress().String()
}

// MarshalBinary returns the compressed form of the receiver.
func (e *Element) MarshalBinary() ([]byte, error) {
	c := e.Compress()
	return c[:], nil
}

// UnmarshalBinary recovers an element produced by MarshalBinary.
func (e *Element) UnmarshalBinary(data []byte) error {
	_, err := e.SetBytes(data)
	return err
}
