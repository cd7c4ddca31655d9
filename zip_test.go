package gather_test

import (
	"slices"
	"testing"

	. "github.com/fxsml/gather"
	"github.com/fxsml/gather/internal/test"
)

func TestZip_Basic(t *testing.T) {
	got := GatherSlice([]int{1, 2, 3}, Zip[int](slices.Values([]string{"a", "b", "c"})))
	want := []Zipped[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
		{First: 3, Second: "c"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestZip_StopsAtShorterSide(t *testing.T) {
	got := GatherSlice([]int{1, 2, 3}, Zip[int](slices.Values([]string{"a", "b"})))
	if len(got) != 2 {
		t.Errorf("expected 2 pairs, got %v", got)
	}

	got = GatherSlice([]int{1}, Zip[int](slices.Values([]string{"a", "b"})))
	if len(got) != 1 {
		t.Errorf("expected 1 pair, got %v", got)
	}
}

func TestZip_InfiniteOther(t *testing.T) {
	// The cursor over the other sequence is pull-driven, so an infinite
	// second sequence is fine.
	got := GatherSlice([]string{"x", "y"}, Zip[string](test.Naturals()))
	want := []Zipped[string, int]{
		{First: "x", Second: 0},
		{First: "y", Second: 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestInterleave_Basic(t *testing.T) {
	got := GatherSlice([]int{1, 3, 5}, Interleave(slices.Values([]int{2, 4})))
	if !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected [1 2 3 4 5], got %v", got)
	}
}

func TestInterleave_StopsWhenOtherExhausted(t *testing.T) {
	got := GatherSlice([]int{1, 3, 5, 7}, Interleave(slices.Values([]int{2})))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
}

func TestInterleave_SourceShorter(t *testing.T) {
	got := GatherSlice([]int{1}, Interleave(slices.Values([]int{2, 4})))
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", got)
	}
}

func TestZip_Validation(t *testing.T) {
	expectPanic(t, "zip nil", func() { Zip[int, int](nil) })
	expectPanic(t, "interleave nil", func() { Interleave[int](nil) })
}
