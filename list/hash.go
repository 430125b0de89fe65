package list

import (
	"encoding/binary"

	"github.com/benbjohnson/immutable"
	"github.com/spaolacci/murmur3"
)

// Hasher hashes and compares lists so they can key an immutable.Map. Encode
// turns a value into the bytes that are hashed; values that are Eq must encode
// to the same bytes.
type Hasher[T any] struct {
	Encode func(T) []byte
	Eq     func(a, b T) bool
}

// Hash computes a murmur3 hash of a List[T] key
func (h Hasher[T]) Hash(key interface{}) uint32 {
	return Hash(key.(List[T]), h.Encode)
}

// Equal compares two List[T] keys
func (h Hasher[T]) Equal(a, b interface{}) bool {
	return EqualFunc(a.(List[T]), b.(List[T]), h.Eq)
}

// Hash computes a murmur3 hash of l. Each value is written length-prefixed so
// that (ab c) and (a bc) hash differently.
func Hash[T any](l List[T], encode func(T) []byte) uint32 {
	hash := murmur3.New32()
	var size [binary.MaxVarintLen64]byte
	for c, ok := l.(*Cons[T]); ok; c, ok = c.rest.(*Cons[T]) {
		b := encode(c.head)
		n := binary.PutUvarint(size[:], uint64(len(b)))
		hash.Write(size[:n])
		hash.Write(b)
	}
	return hash.Sum32()
}

// NewMap builds an empty persistent map keyed by lists
func NewMap[T any](h Hasher[T]) *immutable.Map {
	return immutable.NewMap(h)
}

// StringHasher hashes lists of strings
func StringHasher() Hasher[string] {
	return Hasher[string]{
		Encode: EncodeString,
		Eq:     func(a, b string) bool { return a == b },
	}
}

// Int64Hasher hashes lists of int64
func Int64Hasher() Hasher[int64] {
	return Hasher[int64]{
		Encode: EncodeInt64,
		Eq:     func(a, b int64) bool { return a == b },
	}
}

// EncodeString encodes a string as its bytes
func EncodeString(s string) []byte {
	return []byte(s)
}

// EncodeInt64 encodes an int64 as 8 little-endian bytes
func EncodeInt64(i int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(i))
	return b
}
