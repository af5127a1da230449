package proptable_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/proptable"
)

func TestSortOrder(t *testing.T) {
	grid := intGrid([]int{3, 1, 2}, 3)

	tests := []struct {
		name      string
		column    int
		ascending bool
		want      []int
	}{
		{"ascending", 0, true, []int{1, 2, 0}},
		{"descending", 0, false, []int{0, 2, 1}},
		{"unsorted", -1, true, []int{0, 1, 2}},
		{"all equal keys", 1, true, []int{0, 1, 2}},
		{"column past row length", 7, true, []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proptable.SortOrder(grid, tt.column, tt.ascending)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SortOrder() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortOrderStable(t *testing.T) {
	// Rows 0, 2 and 4 share key 1; rows 1 and 3 share key 0.
	grid := intGrid([]int{1, 0, 1, 0, 1}, 1)

	asc := proptable.SortOrder(grid, 0, true)
	if diff := cmp.Diff([]int{1, 3, 0, 2, 4}, asc); diff != "" {
		t.Errorf("ascending (-want +got):\n%s", diff)
	}
	desc := proptable.SortOrder(grid, 0, false)
	if diff := cmp.Diff([]int{0, 2, 4, 1, 3}, desc); diff != "" {
		t.Errorf("descending (-want +got):\n%s", diff)
	}
}

func TestSortOrderIdempotent(t *testing.T) {
	grid := intGrid([]int{5, 2, 9, 2, 7}, 1)

	for _, ascending := range []bool{true, false} {
		first := proptable.SortOrder(grid, 0, ascending)

		sorted := make(proptable.Grid, len(first))
		for i, r := range first {
			sorted[i] = grid[r]
		}
		again := proptable.SortOrder(sorted, 0, ascending)
		if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, again); diff != "" {
			t.Errorf("ascending=%v: re-sorting a sorted grid reordered it (-want +got):\n%s", ascending, diff)
		}
	}
}

func TestSortOrderMixedKinds(t *testing.T) {
	// Text and numbers compare as equal; the empty cell goes last.
	grid := proptable.Grid{
		{proptable.Value(2)},
		{proptable.Value(1)},
		{proptable.Text("b")},
		{nil},
		{proptable.Text("a")},
	}
	got := proptable.SortOrder(grid, 0, true)
	if len(got) != len(grid) {
		t.Fatalf("order has %d rows, want %d", len(got), len(grid))
	}
	if got[0] != 1 || got[1] != 0 {
		t.Errorf("numbers not ordered: %v", got)
	}
	if got[len(got)-1] != 3 {
		t.Errorf("empty cell not last: %v", got)
	}
}

func TestSortOrderEmptyCellsLast(t *testing.T) {
	grid := proptable.Grid{
		{proptable.Value(3)},
		{nil},
		{proptable.Value(1)},
		{proptable.Value(2)},
		{(*proptable.PropertyEntry)(nil)},
		{},
	}

	if diff := cmp.Diff([]int{2, 3, 0, 1, 4, 5}, proptable.SortOrder(grid, 0, true)); diff != "" {
		t.Errorf("ascending (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 3, 2, 1, 4, 5}, proptable.SortOrder(grid, 0, false)); diff != "" {
		t.Errorf("descending (-want +got):\n%s", diff)
	}
}

func TestSortOrderNilPointerRows(t *testing.T) {
	items := []*item{{Count: 3}, nil, {Count: 1}, {Count: 2}}
	src, err := proptable.NewSliceSource("items", &items)
	if err != nil {
		t.Fatal(err)
	}
	_, grid := proptable.ByPaths(src, "Count")

	if diff := cmp.Diff([]int{2, 3, 0, 1}, proptable.SortOrder(grid, 0, true)); diff != "" {
		t.Errorf("ascending (-want +got):\n%s", diff)
	}
}

func TestCycleSortThreeTimesRestoresOrder(t *testing.T) {
	grid := intGrid([]int{3, 1, 2}, 1)
	state := proptable.NewTableState()

	for range 3 {
		state.CycleSort(0)
	}
	if state.IsSorted() {
		t.Fatalf("SortColumn = %d after three cycles, want -1", state.SortColumn)
	}
	got := proptable.SortOrder(grid, state.SortColumn, state.SortAscending)
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}
