package runtime

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/dball/cons/ex"
	"github.com/dball/cons/list"
	"github.com/dball/cons/types"
)

var (
	invalidType  = ex.InvalidType
	invalidValue = ex.InvalidValue
)

// Seq returns the list for list-like values
func Seq(value types.Value) (list.List[types.Value], error) {
	switch tvalue := value.(type) {
	case list.List[types.Value]:
		return tvalue, nil
	case *immutable.List:
		return list.FromImmutable[types.Value](tvalue)
	case types.String:
		return tvalue.Chars(), nil
	default:
		return nil, invalidType.With("type", fmt.Sprintf("%T", value))
	}
}

// Empty returns true or false if its argument is list-like and empty or not
func Empty(value types.Value) (types.Boolean, error) {
	seq, err := Seq(value)
	if err != nil {
		return false, err
	}
	return types.Boolean(list.IsEmpty(seq)), nil
}

// Count counts the items of a list-like value
func Count(value types.Value) (types.Integer, error) {
	seq, err := Seq(value)
	if err != nil {
		return 0, err
	}
	return types.Integer(list.Len(seq)), nil
}

// TakeDrop splits a list-like value after its first n items
func TakeDrop(n types.Value, value types.Value) (list.List[types.Value], list.List[types.Value], error) {
	intN, valid := n.(types.Integer)
	if !valid {
		return nil, nil, invalidType.With("type", fmt.Sprintf("%T", n))
	}
	if intN < 0 {
		return nil, nil, invalidValue.With("n", int64(intN))
	}
	seq, err := Seq(value)
	if err != nil {
		return nil, nil, err
	}
	return list.Take(int(intN), seq), list.Drop(int(intN), seq), nil
}

// Concat returns a list of the items of every list-like value, in order
func Concat(values ...types.Value) (list.List[types.Value], error) {
	seqs := make([]list.List[types.Value], len(values))
	for i, value := range values {
		seq, err := Seq(value)
		if err != nil {
			return nil, err
		}
		seqs[i] = seq
	}
	return list.Concat(seqs...), nil
}

// IntList returns the items of a list-like value of integers
func IntList(value types.Value) (list.List[types.Integer], error) {
	seq, err := Seq(value)
	if err != nil {
		return nil, err
	}
	index := 0
	return list.TryMap(func(item types.Value) (types.Integer, error) {
		i, valid := item.(types.Integer)
		if !valid {
			return 0, invalidType.With("index", index).With("type", fmt.Sprintf("%T", item))
		}
		index++
		return i, nil
	}, seq)
}
