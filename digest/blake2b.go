package digest

import "golang.org/x/crypto/blake2b"

// Blake2b512 is unkeyed BLAKE2b with a 64-byte output (RFC 7693).
type Blake2b512 struct{}

var _ Algorithm = Blake2b512{}

func (Blake2b512) Name() string {
	return "blake2b-512"
}

func (Blake2b512) Sum512(data []byte) [Size]byte {
	return blake2b.Sum512(data)
}
