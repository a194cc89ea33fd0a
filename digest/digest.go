// Package digest provides the 512-bit hash functions used to map elements
// into the group.
//
// Each algorithm is an empty struct type. Accumulators carry the algorithm as
// a type parameter, so the type alone selects the hash function and values
// built with different algorithms cannot be combined.
package digest

import (
	"github.com/pkg/errors"
	"sort"
)

// Size is the output length of every algorithm, in bytes.
const Size = 64

// ErrUnknownAlgorithm is returned by Lookup for names that are not registered.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Algorithm is a hash function with a 64-byte output.
//
// Implementations must be usable as their zero value and must be safe for
// concurrent use.
type Algorithm interface {
	// Name returns a short identifier, stable across releases.
	Name() string
	// Sum512 returns the digest of data.
	Sum512(data []byte) [Size]byte
}

// Tag constrains type parameters to the concrete algorithm types of this
// package. The Algorithm interface type itself does not satisfy it, so a type
// argument always names one hash function.
type Tag interface {
	~struct{}
	Algorithm
}

// TagName returns the name of the algorithm D.
func TagName[D Tag]() string {
	var d D
	return d.Name()
}

var algorithms = map[string]Algorithm{}

func register(a Algorithm) {
	algorithms[a.Name()] = a
}

func init() {
	register(SHA512{})
	register(Blake2b512{})
	register(SHA3{})
	register(XMDSHA512{})
}

// Lookup returns the algorithm with the given name.
func Lookup(name string) (Algorithm, error) {
	a, ok := algorithms[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return a, nil
}

// Names returns the names of all algorithms, sorted.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
