package gather_test

import (
	"iter"
	"slices"
	"testing"

	. "github.com/fxsml/gather"
	"github.com/fxsml/gather/internal/test"
)

func repeatSeq(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range n {
			if !yield(n) {
				return
			}
		}
	}
}

func TestExpand_Basic(t *testing.T) {
	got := GatherSlice([]int{1, 2, 3}, Expand(repeatSeq))
	if !slices.Equal(got, []int{1, 2, 2, 3, 3, 3}) {
		t.Errorf("expected [1 2 2 3 3 3], got %v", got)
	}
}

func TestExpand_EmptyExpansion(t *testing.T) {
	// An element may expand to nothing, which models one-to-zero.
	got := GatherSlice([]int{0, 2, 0}, Expand(repeatSeq))
	if !slices.Equal(got, []int{2, 2}) {
		t.Errorf("expected [2 2], got %v", got)
	}
}

func TestExpand_StopMidExpansion(t *testing.T) {
	produced := 0
	expander := func(val int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for range 5 {
				produced++
				if !yield(val) {
					return
				}
			}
		}
	}

	got := test.Take(Expand(expander).Gather(test.Naturals()), 2)

	if !slices.Equal(got, []int{0, 0}) {
		t.Errorf("expected [0 0], got %v", got)
	}
	// The downstream stops after the second value; the remaining three for
	// that element are never produced.
	if produced != 2 {
		t.Errorf("expected 2 produced values, got %d", produced)
	}
}

func TestMap_Basic(t *testing.T) {
	got := GatherSlice([]int{1, 2, 3}, Map(func(n int) string {
		return string(rune('a' + n - 1))
	}))
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", got)
	}
}

func TestFilter_Basic(t *testing.T) {
	got := GatherSlice([]int{1, 2, 3, 4, 5}, Filter(func(n int) bool { return n%2 == 0 }))
	if !slices.Equal(got, []int{2, 4}) {
		t.Errorf("expected [2 4], got %v", got)
	}
}

func TestPeek_Basic(t *testing.T) {
	var seen []int
	got := GatherSlice([]int{1, 2, 3}, Peek(func(n int) { seen = append(seen, n) }))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected pass-through, got %v", got)
	}
	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Errorf("expected peek to observe every element, got %v", seen)
	}
}

func TestExpand_Validation(t *testing.T) {
	expectPanic(t, "nil expander", func() { Expand[int, int](nil) })
	expectPanic(t, "nil map", func() { Map[int, int](nil) })
	expectPanic(t, "nil filter", func() { Filter[int](nil) })
	expectPanic(t, "nil peek", func() { Peek[int](nil) })
}
