package core

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/dball/cons/list"
	"github.com/dball/cons/pipeline"
	"github.com/dball/cons/runtime"
	"github.com/dball/cons/types"
)

func arity(name string, n int, args []types.Value) error {
	if len(args) != n {
		return fmt.Errorf("%s requires %d args, got %d", name, n, len(args))
	}
	return nil
}

func function(name string, value types.Value) (types.Function, error) {
	fn, valid := value.(types.Function)
	if !valid {
		return fn, fmt.Errorf("%s requires a function, got %T", name, value)
	}
	return fn, nil
}

func integer(name string, value types.Value) (types.Integer, error) {
	i, valid := value.(types.Integer)
	if !valid {
		return 0, fmt.Errorf("%s requires an integer, got %T", name, value)
	}
	return i, nil
}

// distinct keeps the first occurrence of every value in seq
func distinct(seq list.List[types.Value]) list.List[types.Value] {
	seen := immutable.NewMap(types.Hasher{})
	return list.Filter(func(item types.Value) bool {
		if _, found := seen.Get(item); found {
			return false
		}
		seen = seen.Set(item, true)
		return true
	}, seq)
}

// BuildEnv builds and returns a new environment with core vars
func BuildEnv() *types.Env {
	env := types.BuildEnv()
	def := func(name string, fn func(args ...types.Value) (types.Value, error)) {
		env.Set(name, types.Function{Name: name, Fn: fn})
	}

	def("list", func(args ...types.Value) (types.Value, error) {
		return list.Of(args...), nil
	})
	def("cons", func(args ...types.Value) (types.Value, error) {
		if err := arity("cons", 2, args); err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[1])
		if err != nil {
			return nil, err
		}
		return list.Pair(args[0], seq), nil
	})
	def("first", func(args ...types.Value) (types.Value, error) {
		if err := arity("first", 1, args); err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[0])
		if err != nil {
			return nil, err
		}
		empty, head, _ := seq.Next()
		if empty {
			return list.Empty[types.Value](), nil
		}
		return head, nil
	})
	def("rest", func(args ...types.Value) (types.Value, error) {
		if err := arity("rest", 1, args); err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[0])
		if err != nil {
			return nil, err
		}
		_, _, tail := seq.Next()
		return tail, nil
	})
	def("empty?", func(args ...types.Value) (types.Value, error) {
		if err := arity("empty?", 1, args); err != nil {
			return nil, err
		}
		return runtime.Empty(args[0])
	})
	def("pair?", func(args ...types.Value) (types.Value, error) {
		if err := arity("pair?", 1, args); err != nil {
			return nil, err
		}
		seq, valid := args[0].(list.List[types.Value])
		return types.Boolean(valid && list.IsPair(seq)), nil
	})
	def("count", func(args ...types.Value) (types.Value, error) {
		if err := arity("count", 1, args); err != nil {
			return nil, err
		}
		return runtime.Count(args[0])
	})
	def("sum", func(args ...types.Value) (types.Value, error) {
		if err := arity("sum", 1, args); err != nil {
			return nil, err
		}
		ints, err := runtime.IntList(args[0])
		if err != nil {
			return nil, err
		}
		return list.Sum(ints), nil
	})
	def("sum!", func(args ...types.Value) (types.Value, error) {
		if err := arity("sum!", 1, args); err != nil {
			return nil, err
		}
		ints, err := runtime.IntList(args[0])
		if err != nil {
			return nil, err
		}
		return list.SumChecked(ints)
	})
	def("reverse", func(args ...types.Value) (types.Value, error) {
		if err := arity("reverse", 1, args); err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[0])
		if err != nil {
			return nil, err
		}
		return list.Reverse(seq), nil
	})
	def("append", func(args ...types.Value) (types.Value, error) {
		if err := arity("append", 2, args); err != nil {
			return nil, err
		}
		a, err := runtime.Seq(args[0])
		if err != nil {
			return nil, err
		}
		b, err := runtime.Seq(args[1])
		if err != nil {
			return nil, err
		}
		return list.Append(a, b), nil
	})
	def("concat", func(args ...types.Value) (types.Value, error) {
		return runtime.Concat(args...)
	})
	def("take", func(args ...types.Value) (types.Value, error) {
		if err := arity("take", 2, args); err != nil {
			return nil, err
		}
		taken, _, err := runtime.TakeDrop(args[0], args[1])
		return taken, err
	})
	def("drop", func(args ...types.Value) (types.Value, error) {
		if err := arity("drop", 2, args); err != nil {
			return nil, err
		}
		_, dropped, err := runtime.TakeDrop(args[0], args[1])
		return dropped, err
	})
	def("map", func(args ...types.Value) (types.Value, error) {
		if err := arity("map", 2, args); err != nil {
			return nil, err
		}
		fn, err := function("map", args[0])
		if err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[1])
		if err != nil {
			return nil, err
		}
		return list.TryMap(func(item types.Value) (types.Value, error) {
			return fn.Fn(item)
		}, seq)
	})
	def("filter", func(args ...types.Value) (types.Value, error) {
		if err := arity("filter", 2, args); err != nil {
			return nil, err
		}
		fn, err := function("filter", args[0])
		if err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[1])
		if err != nil {
			return nil, err
		}
		return list.TryFilter(func(item types.Value) (bool, error) {
			keep, err := fn.Fn(item)
			if err != nil {
				return false, err
			}
			return types.Truthy(keep), nil
		}, seq)
	})
	def("flatmap", func(args ...types.Value) (types.Value, error) {
		if err := arity("flatmap", 2, args); err != nil {
			return nil, err
		}
		fn, err := function("flatmap", args[0])
		if err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[1])
		if err != nil {
			return nil, err
		}
		return list.TryFlatMap(func(item types.Value) (list.List[types.Value], error) {
			result, err := fn.Fn(item)
			if err != nil {
				return nil, err
			}
			return runtime.Seq(result)
		}, seq)
	})
	def("foldl", func(args ...types.Value) (types.Value, error) {
		if err := arity("foldl", 3, args); err != nil {
			return nil, err
		}
		fn, err := function("foldl", args[0])
		if err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[2])
		if err != nil {
			return nil, err
		}
		return list.TryFoldLeft(args[1], func(acc, item types.Value) (types.Value, error) {
			return fn.Fn(acc, item)
		}, seq)
	})
	def("foldr", func(args ...types.Value) (types.Value, error) {
		if err := arity("foldr", 3, args); err != nil {
			return nil, err
		}
		fn, err := function("foldr", args[0])
		if err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[2])
		if err != nil {
			return nil, err
		}
		return list.TryFoldRight(args[1], func(item, acc types.Value) (types.Value, error) {
			return fn.Fn(item, acc)
		}, seq)
	})
	def("pipe", func(args ...types.Value) (types.Value, error) {
		if len(args) == 0 {
			return nil, errors.New("pipe requires a value")
		}
		type outcome struct {
			value types.Value
			err   error
		}
		p := pipeline.Do(outcome{value: args[0]})
		for _, arg := range args[1:] {
			fn, err := function("pipe", arg)
			if err != nil {
				return nil, err
			}
			p = p.Pipe(func(o outcome) outcome {
				if o.err != nil {
					return o
				}
				value, err := fn.Fn(o.value)
				return outcome{value: value, err: err}
			})
		}
		o := p.Return()
		return o.value, o.err
	})
	def("distinct", func(args ...types.Value) (types.Value, error) {
		if err := arity("distinct", 1, args); err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[0])
		if err != nil {
			return nil, err
		}
		return distinct(seq), nil
	})
	def("frequencies", func(args ...types.Value) (types.Value, error) {
		if err := arity("frequencies", 1, args); err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[0])
		if err != nil {
			return nil, err
		}
		counts := list.FoldLeft(immutable.NewMap(types.Hasher{}), func(m *immutable.Map, item types.Value) *immutable.Map {
			n, _ := m.Get(item)
			count, _ := n.(types.Integer)
			return m.Set(item, count+1)
		}, seq)
		return list.Map(func(key types.Value) types.Value {
			n, _ := counts.Get(key)
			return list.Of[types.Value](key, n)
		}, distinct(seq)), nil
	})
	def("vec", func(args ...types.Value) (types.Value, error) {
		if err := arity("vec", 1, args); err != nil {
			return nil, err
		}
		seq, err := runtime.Seq(args[0])
		if err != nil {
			return nil, err
		}
		return list.ToImmutable(seq), nil
	})
	def("=", func(args ...types.Value) (types.Value, error) {
		if len(args) == 0 {
			return types.Boolean(true), nil
		}
		this := args[0]
		for _, that := range args[1:] {
			if !types.Equals(this, that) {
				return types.Boolean(false), nil
			}
		}
		return types.Boolean(true), nil
	})
	def("+", func(args ...types.Value) (types.Value, error) {
		ints, err := runtime.IntList(list.Of(args...))
		if err != nil {
			return nil, err
		}
		return list.Sum(ints), nil
	})
	def("-", func(args ...types.Value) (types.Value, error) {
		ints, err := runtime.IntList(list.Of(args...))
		if err != nil {
			return nil, err
		}
		empty, first, rest := ints.Next()
		if empty {
			return nil, errors.New("- requires at least one arg")
		}
		if list.IsEmpty(rest) {
			return -first, nil
		}
		return list.FoldLeft(first, func(acc, i types.Integer) types.Integer { return acc - i }, rest), nil
	})
	def("inc", func(args ...types.Value) (types.Value, error) {
		if err := arity("inc", 1, args); err != nil {
			return nil, err
		}
		i, err := integer("inc", args[0])
		return i + 1, err
	})
	def("dec", func(args ...types.Value) (types.Value, error) {
		if err := arity("dec", 1, args); err != nil {
			return nil, err
		}
		i, err := integer("dec", args[0])
		return i - 1, err
	})
	def("even?", func(args ...types.Value) (types.Value, error) {
		if err := arity("even?", 1, args); err != nil {
			return nil, err
		}
		i, err := integer("even?", args[0])
		return types.Boolean(i%2 == 0), err
	})
	def("odd?", func(args ...types.Value) (types.Value, error) {
		if err := arity("odd?", 1, args); err != nil {
			return nil, err
		}
		i, err := integer("odd?", args[0])
		return types.Boolean(i%2 != 0), err
	})
	def("dup", func(args ...types.Value) (types.Value, error) {
		if err := arity("dup", 1, args); err != nil {
			return nil, err
		}
		return list.Of(args[0], args[0]), nil
	})
	def("hash", func(args ...types.Value) (types.Value, error) {
		if err := arity("hash", 1, args); err != nil {
			return nil, err
		}
		return types.Integer(types.Hash(args[0])), nil
	})
	return env
}
