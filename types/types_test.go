package types

import (
	"errors"
	"sort"
	"testing"

	"github.com/benbjohnson/immutable"
	"github.com/dball/cons/list"
	"github.com/google/go-cmp/cmp"
)

func TestEquals(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{Integer(1), Integer(1), true},
		{Integer(1), String("1"), false},
		{String("a"), String("a"), true},
		{Boolean(true), Boolean(false), false},
		{NewSymbol("x"), NewSymbol("x"), true},
		{list.Of[Value](Integer(1), String("a")), list.Of[Value](Integer(1), String("a")), true},
		{list.Of[Value](Integer(1)), list.Of[Value](Integer(2)), false},
		{list.Empty[Value](), list.Empty[Value](), true},
		{list.Of[Value](list.Of[Value](Integer(1))), list.Of[Value](list.Of[Value](Integer(1))), true},
		{list.Empty[Value](), Integer(0), false},
	}
	for _, test := range tests {
		if got := Equals(test.a, test.b); got != test.want {
			t.Errorf("Equals(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestHashAgreesWithEquals(t *testing.T) {
	a := list.Of[Value](Integer(1), list.Of[Value](String("b")))
	b := list.Pair[Value](Integer(1), list.Of[Value](list.Of[Value](String("b"))))
	if Hash(a) != Hash(b) {
		t.Errorf("equal lists hash differently")
	}
	if Hash(Integer(1)) == Hash(String("1")) {
		t.Errorf("Integer(1) and String(\"1\") hash the same")
	}
}

func TestHasherKeysMap(t *testing.T) {
	m := immutable.NewMap(Hasher{})
	m = m.Set(list.Of[Value](Integer(1)), String("one"))
	if v, ok := m.Get(list.Of[Value](Integer(1))); !ok || v != String("one") {
		t.Errorf("Get((1)) = (%v, %v)", v, ok)
	}
}

func TestTruthy(t *testing.T) {
	if Truthy(Boolean(false)) || !Truthy(Boolean(true)) || !Truthy(list.Empty[Value]()) {
		t.Errorf("only false should be falsy")
	}
}

func TestChars(t *testing.T) {
	got := list.ToSlice(String("héy").Chars())
	want := []Value{String("h"), String("é"), String("y")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Chars (-want +got):\n%s", diff)
	}
}

func TestEnv(t *testing.T) {
	env := BuildEnv()
	env.Set("x", Integer(1))
	env.Set("y", Integer(2))
	env.Set("x", Integer(3))
	if v, err := env.Get("x"); err != nil || v != Integer(3) {
		t.Errorf("Get(x) = (%v, %v), want (3, nil)", v, err)
	}
	_, err := env.Get("z")
	var undefined Undefined
	if !errors.As(err, &undefined) || undefined.Name != "z" {
		t.Errorf("Get(z) error = %v, want Undefined{z}", err)
	}
	names := env.Names()
	sort.Strings(names)
	if diff := cmp.Diff([]string{"x", "y"}, names); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}
