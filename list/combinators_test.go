package list

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func isEven(x int) bool { return x%2 == 0 }

func TestMap(t *testing.T) {
	got := ToSlice(Map(strings.ToUpper, Of("a", "b", "c")))
	if diff := cmp.Diff([]string{"A", "B", "C"}, got); diff != "" {
		t.Errorf("Map(ToUpper) (-want +got):\n%s", diff)
	}
	if l := Map(strings.ToUpper, Empty[string]()); !IsEmpty(l) {
		t.Errorf("Map over () = %v, want ()", l)
	}
}

func TestMapCallsOncePerValueInOrder(t *testing.T) {
	var seen []int
	Map(func(x int) int { seen = append(seen, x); return x }, Of(1, 2, 3))
	if diff := cmp.Diff([]int{1, 2, 3}, seen); diff != "" {
		t.Errorf("Map calls (-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	got := Filter(isEven, Of(1, 2, 3, 4))
	if !Equal(got, Of(2, 4)) {
		t.Errorf("Filter(isEven, (1 2 3 4)) = %v, want (2 4)", got)
	}
	calls := 0
	Filter(func(x int) bool { calls++; return true }, Of(5, 6, 7))
	if calls != 3 {
		t.Errorf("predicate called %d times for 3 values", calls)
	}
	if l := Filter(isEven, Empty[int]()); !IsEmpty(l) {
		t.Errorf("Filter over () = %v, want ()", l)
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		a, b, want List[int]
	}{
		{Of(1, 2), Of(3, 4), Of(1, 2, 3, 4)},
		{Empty[int](), Of(3), Of(3)},
		{Of(1), Empty[int](), Of(1)},
		{Empty[int](), Empty[int](), Empty[int]()},
	}
	for _, test := range tests {
		if got := Append(test.a, test.b); !Equal(got, test.want) {
			t.Errorf("Append(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestAppendSharesSecond(t *testing.T) {
	a, b := Of(1, 2), Of(3, 4)
	got := Append(a, b)
	if Drop(2, got) != b {
		t.Errorf("Append(a, b) does not end in b itself")
	}
	if Append(Empty[int](), b) != b {
		t.Errorf("Append((), b) is not b itself")
	}
	if first, ok := got.(*Cons[int]); ok && first == a.(*Cons[int]) {
		t.Errorf("Append(a, b) starts with the first node of a")
	}
}

func TestAppendIsAssociative(t *testing.T) {
	lists := []List[int]{Empty[int](), Of(1), Of(2, 3), Of(4, 5, 6)}
	for _, a := range lists {
		for _, b := range lists {
			for _, c := range lists {
				left := Append(Append(a, b), c)
				right := Append(a, Append(b, c))
				if !Equal(left, right) {
					t.Errorf("Append(Append(%v, %v), %v) = %v, Append(%v, Append(%v, %v)) = %v",
						a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestFlatMap(t *testing.T) {
	dup := func(x int) List[int] { return Of(x, x) }
	got := FlatMap(dup, Of(1, 2, 3))
	if diff := cmp.Diff([]int{1, 1, 2, 2, 3, 3}, ToSlice(got)); diff != "" {
		t.Errorf("FlatMap(dup) (-want +got):\n%s", diff)
	}
	if l := FlatMap(dup, Empty[int]()); !IsEmpty(l) {
		t.Errorf("FlatMap over () = %v, want ()", l)
	}
}

func TestFlatMapSingletonIsIdentity(t *testing.T) {
	single := func(x int) List[int] { return Of(x) }
	for _, l := range []List[int]{Empty[int](), Of(1), Of(3, 1, 2)} {
		if got := FlatMap(single, l); !Equal(got, l) {
			t.Errorf("FlatMap(Of, %v) = %v", l, got)
		}
	}
}

func TestFlatMapKeepsOrderWithinResults(t *testing.T) {
	spell := func(s string) List[rune] { return Of([]rune(s)...) }
	got := FlatMap(spell, Of("ab", "", "cde"))
	if diff := cmp.Diff([]rune("abcde"), ToSlice(got), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("FlatMap(spell) (-want +got):\n%s", diff)
	}
}

func TestCombinatorsOnLongList(t *testing.T) {
	const n = 20000
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	l := Of(xs...)
	if got := Len(Map(func(x int) int { return x + 1 }, l)); got != n {
		t.Errorf("Len(Map) = %d, want %d", got, n)
	}
	if got := Len(Filter(isEven, l)); got != n/2 {
		t.Errorf("Len(Filter) = %d, want %d", got, n/2)
	}
	if got := Len(Append(l, l)); got != 2*n {
		t.Errorf("Len(Append) = %d, want %d", got, 2*n)
	}
	if got := Len(FlatMap(func(x int) List[int] { return Of(x, x) }, l)); got != 2*n {
		t.Errorf("Len(FlatMap) = %d, want %d", got, 2*n)
	}
}
