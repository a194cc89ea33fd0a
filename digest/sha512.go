package digest

import "crypto/sha512"

// SHA512 is SHA-512 from FIPS 180-4.
type SHA512 struct{}

var _ Algorithm = SHA512{}

func (SHA512) Name() string {
	return "sha512"
}

func (SHA512) Sum512(data []byte) [Size]byte {
	return sha512.Sum512(data)
}
