package viewstate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rec struct {
	ID  int
	Key string
}

func byKey(r rec) string { return r.Key }

func TestGroupByFirstOccurrence(t *testing.T) {
	in := []rec{{1, "A"}, {2, "B"}, {3, "A"}}
	want := []Group[string, rec]{
		{Key: "A", Items: []rec{{1, "A"}, {3, "A"}}},
		{Key: "B", Items: []rec{{2, "B"}}},
	}
	if diff := cmp.Diff(want, GroupBy(in, byKey)); diff != "" {
		t.Fatalf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByEmpty(t *testing.T) {
	if got := GroupBy(nil, byKey); len(got) != 0 {
		t.Fatalf("GroupBy(nil) = %v, want empty", got)
	}
	if got := Flatten[string, rec](nil); len(got) != 0 {
		t.Fatalf("Flatten(nil) = %v, want empty", got)
	}
}

func TestGroupByIsNotASort(t *testing.T) {
	in := []rec{{1, "WED"}, {2, "MON"}, {3, "WED"}, {4, "TUE"}, {5, "MON"}}
	got := Keys(GroupBy(in, byKey))
	if diff := cmp.Diff([]string{"WED", "MON", "TUE"}, got); diff != "" {
		t.Fatalf("key order (-want +got):\n%s", diff)
	}
}

func TestGroupByPreservesSubsequences(t *testing.T) {
	inputs := [][]rec{
		{{1, "A"}, {2, "B"}, {3, "A"}},
		{{1, "x"}, {2, "y"}, {3, "z"}, {4, "y"}, {5, "x"}, {6, "x"}},
		{{1, "same"}, {2, "same"}},
	}
	for _, in := range inputs {
		groups := GroupBy(in, byKey)

		seen := map[string]bool{}
		total := 0
		for _, g := range groups {
			if seen[g.Key] {
				t.Fatalf("key %q appears in two groups", g.Key)
			}
			seen[g.Key] = true
			want := Filter(in, func(r rec) bool { return r.Key == g.Key })
			if diff := cmp.Diff(want, g.Items); diff != "" {
				t.Fatalf("group %q is not the input subsequence (-want +got):\n%s", g.Key, diff)
			}
			total += len(g.Items)
		}
		if total != len(in) {
			t.Fatalf("groups hold %d records, input has %d", total, len(in))
		}
	}
}

func TestGroupByIdempotent(t *testing.T) {
	in := []rec{{1, "x"}, {2, "y"}, {3, "z"}, {4, "y"}, {5, "x"}}
	first := GroupBy(in, byKey)
	again := GroupBy(Flatten(first), byKey)
	if diff := cmp.Diff(first, again); diff != "" {
		t.Fatalf("regrouping changed boundaries (-want +got):\n%s", diff)
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	in := []int{5, 2, 8, 1, 9}
	got := Filter(in, func(v int) bool { return v > 2 })
	if diff := cmp.Diff([]int{5, 8, 9}, got); diff != "" {
		t.Fatalf("Filter (-want +got):\n%s", diff)
	}
}
