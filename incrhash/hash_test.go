package incrhash_test

import (
	"crypto/rand"
	"encoding/json"
	"reflect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takakv/incrhash/digest"
	"github.com/takakv/incrhash/incrhash"
	"strings"
	"testing"
)

const testTimes = 1 << 4

func randomHash[D digest.Tag](t *testing.T) incrhash.Hash[D] {
	b := make([]byte, 48)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return incrhash.FromBytes[D](b)
}

func TestHash(t *testing.T) {
	t.Run("sha512", testHash[digest.SHA512])
	t.Run("blake2b-512", testHash[digest.Blake2b512])
	t.Run("sha3-512", testHash[digest.SHA3])
	t.Run("xmd-sha512", testHash[digest.XMDSHA512])
}

func testHash[D digest.Tag](t *testing.T) {
	t.Run("Identity", testIdentityLaw[D])
	t.Run("Inverse", testInverseLaw[D])
	t.Run("Commutative", testCommutative[D])
	t.Run("Associative", testAssociative[D])
	t.Run("OrderIndependent", testOrderIndependent[D])
	t.Run("Deterministic", testDeterministic[D])
	t.Run("Distinct", testDistinct[D])
	t.Run("InPlace", testInPlace[D])
	t.Run("EndToEnd", testEndToEnd[D])
	t.Run("Representation", testRepresentation[D])
}

func testIdentityLaw[D digest.Tag](t *testing.T) {
	id := incrhash.Identity[D]()
	var zero incrhash.Hash[D]
	assert.True(t, id.IsIdentity())
	assert.True(t, id.Equal(zero))
	assert.Equal(t, strings.Repeat("0", 64), id.String())

	for i := 0; i < testTimes; i++ {
		a := randomHash[D](t)
		assert.True(t, a.Add(id).Equal(a))
		assert.True(t, id.Add(a).Equal(a))
		assert.True(t, a.Subtract(id).Equal(a))
		assert.False(t, a.IsIdentity())
	}
}

func testInverseLaw[D digest.Tag](t *testing.T) {
	for i := 0; i < testTimes; i++ {
		a := randomHash[D](t)
		b := randomHash[D](t)
		assert.True(t, a.Add(b).Subtract(b).Equal(a))
		assert.True(t, a.Subtract(a).IsIdentity())
	}
}

func testCommutative[D digest.Tag](t *testing.T) {
	for i := 0; i < testTimes; i++ {
		a := randomHash[D](t)
		b := randomHash[D](t)
		assert.True(t, a.Add(b).Equal(b.Add(a)))
	}
}

func testAssociative[D digest.Tag](t *testing.T) {
	for i := 0; i < testTimes; i++ {
		a := randomHash[D](t)
		b := randomHash[D](t)
		c := randomHash[D](t)
		assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
	}
}

func testOrderIndependent[D digest.Tag](t *testing.T) {
	elements := [][]byte{[]byte("E1"), []byte("E2"), []byte("E3")}
	permutations := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	want := incrhash.Sum[D](elements...)
	for _, p := range permutations {
		var h incrhash.Hash[D]
		for _, i := range p {
			h.AddAssign(incrhash.FromBytes[D](elements[i]))
		}
		assert.True(t, h.Equal(want), "permutation %v", p)
		assert.Equal(t, want.Compress(), h.Compress(), "permutation %v", p)
	}
}

func testDeterministic[D digest.Tag](t *testing.T) {
	for _, s := range []string{"", "hello world", strings.Repeat("x", 1<<20)} {
		a := incrhash.FromBytes[D]([]byte(s))
		b := incrhash.FromBytes[D]([]byte(s))
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.String(), b.String())
	}
}

func testDistinct[D digest.Tag](t *testing.T) {
	inputs := []string{"hello world", "sup universe", "", "key1 = val1", "key2 = val1", "hello world "}
	seen := make(map[incrhash.Compressed[D]]string)
	for _, in := range inputs {
		c := incrhash.CompressedFromBytes[D]([]byte(in))
		prev, dup := seen[c]
		assert.False(t, dup, "%q collides with %q", in, prev)
		seen[c] = in
	}
	assert.False(t, incrhash.FromBytes[D]([]byte("hello world")).Equal(incrhash.FromBytes[D]([]byte("sup universe"))))
}

func testInPlace[D digest.Tag](t *testing.T) {
	a := incrhash.FromBytes[D]([]byte("hello world"))
	b := incrhash.FromBytes[D]([]byte("sup universe"))

	c := a.Add(b)
	var h incrhash.Hash[D]
	h.AddAssign(a)
	h.AddAssign(b)
	assert.True(t, c.Equal(h))

	var ins incrhash.Hash[D]
	ins.Insert([]byte("hello world"))
	ins.Insert([]byte("sup universe"))
	assert.True(t, c.Equal(ins))

	// Operands are not modified by the value forms.
	aBefore := a.String()
	_ = a.Add(b)
	_ = a.Subtract(b)
	assert.Equal(t, aBefore, a.String())

	c.SubtractAssign(a)
	c.SubtractAssign(b)
	assert.True(t, c.IsIdentity())

	ins.Remove([]byte("sup universe"))
	ins.Remove([]byte("hello world"))
	assert.True(t, ins.IsIdentity())

	// A copy is independent of the original.
	cp := a
	cp.AddAssign(b)
	assert.Equal(t, aBefore, a.String())
	assert.False(t, cp.Equal(a))
}

func testEndToEnd[D digest.Tag](t *testing.T) {
	h := incrhash.Identity[D]()
	h.AddAssign(incrhash.FromBytes[D]([]byte("key1 = val1")))
	h.AddAssign(incrhash.FromBytes[D]([]byte("key2 = val1")))
	h.SubtractAssign(incrhash.FromBytes[D]([]byte("key2 = val1")))
	assert.True(t, h.Equal(incrhash.FromBytes[D]([]byte("key1 = val1"))))

	h.SubtractAssign(incrhash.FromBytes[D]([]byte("key1 = val1")))
	assert.True(t, h.Equal(incrhash.Identity[D]()))
}

func testRepresentation[D digest.Tag](t *testing.T) {
	assert.False(t, reflect.TypeOf(incrhash.Hash[D]{}).Comparable(), "Hash must not support ==")

	a := incrhash.FromBytes[D]([]byte("a"))
	for i := 0; i < testTimes; i++ {
		x := randomHash[D](t)
		b := a.Add(x).Subtract(x)
		assert.True(t, b.Equal(a))
		assert.Equal(t, a.Compress(), b.Compress())
	}

	// Same element, different internal state.
	var id incrhash.Hash[D]
	cancelled := a.Subtract(a)
	assert.True(t, id.Equal(cancelled))
	assert.False(t, reflect.DeepEqual(id, cancelled))
	assert.Equal(t, id.Compress(), cancelled.Compress())
}

func TestHash_AlgorithmsDiffer(t *testing.T) {
	in := []byte("hello world")
	seen := map[string]bool{
		incrhash.FromBytes[digest.SHA512](in).String():     true,
		incrhash.FromBytes[digest.Blake2b512](in).String(): true,
		incrhash.FromBytes[digest.SHA3](in).String():       true,
		incrhash.FromBytes[digest.XMDSHA512](in).String():  true,
	}
	assert.Len(t, seen, 4)
}

func TestHash_HashToGroup(t *testing.T) {
	in := []byte("hello world")
	e := incrhash.HashToGroup[digest.Blake2b512](in)
	h := incrhash.FromBytes[digest.Blake2b512](in)
	assert.True(t, e.IsEqual(h.Element()))

	// Element returns a copy.
	cp := h.Element()
	cp.Add(cp, cp)
	assert.True(t, e.IsEqual(h.Element()))
}

func TestHash_String(t *testing.T) {
	h := incrhash.FromBytes[digest.SHA512]([]byte("hello world"))
	s := h.String()
	assert.Len(t, s, 64)
	assert.Equal(t, strings.ToLower(s), s)
	assert.Equal(t, h.Compress().String(), s)
}

func TestHash_Marshal(t *testing.T) {
	type H = incrhash.Hash[digest.SHA512]
	h := incrhash.Sum[digest.SHA512]([]byte("a"), []byte("b"))

	bin, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, bin, incrhash.Size)
	var fromBin H
	require.NoError(t, fromBin.UnmarshalBinary(bin))
	assert.True(t, h.Equal(fromBin))

	text, err := h.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, h.String(), string(text))
	var fromText H
	require.NoError(t, fromText.UnmarshalText(text))
	assert.True(t, h.Equal(fromText))

	type record struct {
		Digest H `json:"digest"`
	}
	raw, err := json.Marshal(record{Digest: h})
	require.NoError(t, err)
	assert.JSONEq(t, `{"digest":"`+h.String()+`"}`, string(raw))
	var got record
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, h.Equal(got.Digest))
}

func TestHash_UnmarshalRejects(t *testing.T) {
	want := incrhash.FromBytes[digest.SHA512]([]byte("keep"))
	for name, text := range map[string]string{
		"notHex": strings.Repeat("zz", 32),
		"short":  strings.Repeat("00", 31),
		"allFF":  strings.Repeat("ff", 32),
		"oddLen": "abc",
	} {
		t.Run(name, func(t *testing.T) {
			h := want
			err := h.UnmarshalText([]byte(text))
			assert.ErrorIs(t, err, incrhash.ErrDecoding)
			assert.True(t, h.Equal(want))
		})
	}
}
