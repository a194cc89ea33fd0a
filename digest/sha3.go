package digest

import "golang.org/x/crypto/sha3"

// SHA3 is SHA3-512 from FIPS 202.
type SHA3 struct{}

var _ Algorithm = SHA3{}

func (SHA3) Name() string {
	return "sha3-512"
}

func (SHA3) Sum512(data []byte) [Size]byte {
	return sha3.Sum512(data)
}
