package core

import (
	"errors"
	"strings"

	"github.com/dball/cons/list"
	"github.com/dball/cons/printer"
	"github.com/dball/cons/reader"
	"github.com/dball/cons/types"
)

// Eval evaluates a form. Symbols resolve in env; a list whose head evaluates
// to a function is a call; any other list evaluates to its evaluated items.
func Eval(env *types.Env, form types.Value) (types.Value, error) {
	switch value := form.(type) {
	case types.Symbol:
		return env.Get(value.Name)
	case list.List[types.Value]:
		empty, head, tail := value.Next()
		if empty {
			return value, nil
		}
		if symbol, valid := head.(types.Symbol); valid {
			switch symbol.Name {
			case "def":
				return evalDef(env, tail)
			case "quote":
				_, quoted, _ := tail.Next()
				return quoted, nil
			}
		}
		items, err := list.TryMap(func(item types.Value) (types.Value, error) {
			return Eval(env, item)
		}, value)
		if err != nil {
			return nil, err
		}
		_, first, args := items.Next()
		if fn, valid := first.(types.Function); valid {
			return fn.Fn(list.ToSlice(args)...)
		}
		return items, nil
	default:
		return value, nil
	}
}

func evalDef(env *types.Env, args list.List[types.Value]) (types.Value, error) {
	if list.Len(args) != 2 {
		return nil, errors.New("def requires a name and a value")
	}
	_, name, rest := args.Next()
	symbol, valid := name.(types.Symbol)
	if !valid {
		return nil, errors.New("def requires a symbol name")
	}
	_, form, _ := rest.Next()
	value, err := Eval(env, form)
	if err != nil {
		return nil, err
	}
	env.Set(symbol.Name, value)
	return value, nil
}

// EvalAll reads every form of s and evaluates them in order. It stops at the
// first error, returning the values computed before it.
func EvalAll(env *types.Env, s string) ([]types.Value, error) {
	forms, err := reader.ReadAll(s)
	if err != nil {
		return nil, err
	}
	values := make([]types.Value, 0, len(forms))
	for _, form := range forms {
		value, err := Eval(env, form)
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Rep reads, evaluates and prints every form of s, one result per line.
func Rep(env *types.Env, config printer.Config, s string) string {
	values, err := EvalAll(env, s)
	lines := make([]string, 0, len(values)+1)
	for _, value := range values {
		lines = append(lines, printer.PrintStr(config, value))
	}
	if err != nil {
		var readErr reader.Error
		if errors.As(err, &readErr) {
			lines = append(lines, err.Error())
		} else {
			lines = append(lines, "#ERROR: "+printer.PrintStr(printer.Config{}, err))
		}
	}
	return strings.Join(lines, "\n")
}
