package incrhash

import "github.com/takakv/incrhash/group"

// ErrDecoding is returned when bytes do not hold the canonical encoding of a
// group element. Errors are wrapped with context, so compare with
// errors.Is(err, ErrDecoding) rather than ==. Apart from context errors from
// SumParallel, every error returned by this package satisfies that check.
var ErrDecoding = group.ErrInvalidEncoding
