package pipeline

import (
	"strconv"
	"strings"
	"testing"
)

func TestPipe(t *testing.T) {
	got := Do(" Cons ").Pipe(strings.TrimSpace).Pipe(strings.ToLower).Return()
	if got != "cons" {
		t.Errorf("Return() = %q, want %q", got, "cons")
	}
}

func TestThenChangesType(t *testing.T) {
	n := Then(Do("41"), func(s string) int {
		i, _ := strconv.Atoi(s)
		return i
	}).Pipe(func(i int) int { return i + 1 }).Return()
	if n != 42 {
		t.Errorf("Return() = %d, want 42", n)
	}
}

func TestChainingDoesNotModify(t *testing.T) {
	start := Do(1)
	start.Pipe(func(i int) int { return i * 10 })
	if got := start.Return(); got != 1 {
		t.Errorf("start.Return() = %d after Pipe, want 1", got)
	}
}
