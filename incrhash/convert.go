package incrhash

import (
	"github.com/takakv/incrhash/digest"
	"github.com/takakv/incrhash/group"
)

// Compress returns the compact form of h. It never fails, and equal hashes
// always compress to the same bytes.
func (h Hash[D]) Compress() Compressed[D] {
	return Compressed[D](h.e.Compress())
}

// Decompress returns the expanded form of c. It fails with ErrDecoding if c
// does not hold a canonical encoding. For every Hash h,
// h.Compress().Decompress() equals h.
func (c Compressed[D]) Decompress() (Hash[D], error) {
	var h Hash[D]
	gc := group.Compressed(c)
	if _, err := h.e.SetCompressed(&gc); err != nil {
		return Hash[D]{}, err
	}
	return h, nil
}

// Compress is the function form of Hash.Compress.
func Compress[D digest.Tag](h Hash[D]) Compressed[D] {
	return h.Compress()
}

// Decompress is the function form of Compressed.Decompress.
func Decompress[D digest.Tag](c Compressed[D]) (Hash[D], error) {
	return c.Decompress()
}
