package digest

import (
	"crypto"
	_ "crypto/sha512"
	"github.com/cloudflare/circl/expander"
)

// XMDDomain is the domain separation tag used by XMDSHA512.
const XMDDomain = "incrhash-v1-ristretto255_XMD:SHA-512_R255MAP_RO_"

// XMDSHA512 is expand_message_xmd from RFC 9380 instantiated with SHA-512,
// the domain separation tag XMDDomain and a 64-byte output. Together with the
// ristretto255 one-way map this is the RFC 9380 hash_to_ristretto255 suite.
type XMDSHA512 struct{}

var _ Algorithm = XMDSHA512{}

func (XMDSHA512) Name() string { return "xmd-sha512" }

func (XMDSHA512) Sum512(data []byte) [Size]byte {
	var out [Size]byte
	xmd := expander.NewExpanderMD(crypto.SHA512, []byte(XMDDomain))
	copy(out[:], xmd.Expand(data, Size))
	return out
}
