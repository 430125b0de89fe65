package types

import (
	"fmt"
	"hash"

	"github.com/dball/cons/list"
	"github.com/spaolacci/murmur3"
)

// Value - the root type of all values the shell reads, evaluates and prints
type Value = interface{}

// HasSimpleValueEquality - is a type which can compare itself to other values
type HasSimpleValueEquality interface {
	ValueEquals(Value) bool
	hashBytes() []byte
}

var (
	openBytes  = []byte("(")
	closeBytes = []byte(")")
)

func hashAnyValue(h32 hash.Hash32, value Value) {
	switch cast := value.(type) {
	case HasSimpleValueEquality:
		h32.Write(cast.hashBytes())
	case list.List[Value]:
		h32.Write(openBytes)
		list.FoldLeft(h32, func(h hash.Hash32, item Value) hash.Hash32 {
			hashAnyValue(h, item)
			return h
		}, cast)
		h32.Write(closeBytes)
	}
}

// Hash computes a murmur3 hash of the given value
func Hash(value Value) uint32 {
	h32 := murmur3.New32()
	hashAnyValue(h32, value)
	return h32.Sum32()
}

// Hasher lets values key an immutable.Map
type Hasher struct{}

// Hash hashes a key
func (Hasher) Hash(key interface{}) uint32 {
	return Hash(key)
}

// Equal compares keys
func (Hasher) Equal(a, b interface{}) bool {
	return Equals(a, b)
}

// Equals compares values; lists are equal when their items are
func Equals(this Value, that Value) bool {
	switch cast := this.(type) {
	case HasSimpleValueEquality:
		return cast.ValueEquals(that)
	case list.List[Value]:
		thatList, valid := that.(list.List[Value])
		if !valid {
			return false
		}
		return list.EqualFunc(cast, thatList, Equals)
	default:
		return false
	}
}

// Undefined errors
type Undefined struct {
	Name string
}

func (err Undefined) Error() string {
	return fmt.Sprintf("'%v' not found", err.Name)
}
