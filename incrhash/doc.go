/*
Package incrhash implements an incremental set hash over ristretto255.

The digest of a collection of byte strings is the group sum of one element
per byte string. Inserting an element adds its point, removing it subtracts
the point. The group is abelian, so the digest does not depend on the order
of updates, and every update costs one hash and one group operation no matter
how large the collection is.

A digest exists in two forms:

	Hash[D]        expanded; supports Add, Subtract and their in-place forms
	Compressed[D]  the canonical 32-byte encoding; cheap to store and compare

The type parameter D selects the digest algorithm used to map byte strings
into the group (see package digest). Hash[digest.SHA512] and
Hash[digest.Blake2b512] are different types, so digests built with different
algorithms cannot be combined or compared by accident.

A Compressed digest cannot be added to another Compressed digest directly:
each update would have to decode both operands. Instead, fold expanded deltas
into it with AddAssign and SubtractAssign, or keep a Hash while updates are
pending and compress once at the end. Combine exists for the rare case where
two compressed digests must be merged.

The only runtime error is ErrDecoding, returned when bytes that should hold a
compressed digest do not encode a group element. Check for it with errors.Is.

Hash values cannot be compared with ==: equal group elements may have
different internal representations. Use Equal, or compare Compressed forms.
*/
package incrhash
