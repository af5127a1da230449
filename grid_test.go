package proptable_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/proptable"
)

type stats struct {
	Strength int
}

type base struct {
	ID int
}

type item struct {
	base
	Name     string
	Count    int
	Weight   float32
	Equipped bool
	Stats    stats  // nested: one column, not expanded
	Notes    string `table:"-"`
	secret   int
}

func titles(cols []proptable.TableColumn) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Title
	}
	return out
}

func TestNiceName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Name", "Name"},
		{"maxHealth", "Max Health"},
		{"m_maxHealth", "Max Health"},
		{"_count", "Count"},
		{"kDefaultURL", "Default URL"},
		{"item_count", "Item Count"},
		{"HTTPServer", "HTTP Server"},
		{"Slot2Item", "Slot2 Item"},
		{"kind", "Kind"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := proptable.NiceName(tt.in); got != tt.want {
			t.Errorf("NiceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewSliceSourceRejects(t *testing.T) {
	ints := []int{1, 2}
	var nilPtr *[]item
	for _, in := range []any{nil, ints, &ints, nilPtr, item{}} {
		if _, err := proptable.NewSliceSource("x", in); !errors.Is(err, proptable.ErrNotSliceOfStructs) {
			t.Errorf("NewSliceSource(%T) error = %v, want ErrNotSliceOfStructs", in, err)
		}
	}
}

func TestReflectAll(t *testing.T) {
	items := []item{
		{Name: "Sword", Count: 1, Weight: 3.5},
		{Name: "Potion", Count: 5, Weight: 0.2, Equipped: true},
	}
	src, err := proptable.NewSliceSource("items", &items)
	if err != nil {
		t.Fatal(err)
	}

	cols, grid := proptable.ReflectAll(src)
	want := []string{"Name", "Count", "Weight", "Equipped", "Stats"}
	if diff := cmp.Diff(want, titles(cols)); diff != "" {
		t.Errorf("titles (-want +got):\n%s", diff)
	}
	for _, c := range cols {
		if c.Width != proptable.DefaultColumnWidth || !c.Sortable || !c.Visible {
			t.Errorf("column %q not a default column: %+v", c.Title, c)
		}
	}
	if grid.Rows() != 2 || len(grid[0]) != len(cols) {
		t.Fatalf("grid is %dx%d", grid.Rows(), len(grid[0]))
	}

	p, ok := grid[1][1].(*proptable.PropertyEntry)
	if !ok {
		t.Fatalf("cell is %T, want *PropertyEntry", grid[1][1])
	}
	if got := p.Accessor().Path(); got != "items[1].Count" {
		t.Errorf("path = %q", got)
	}
	if got := p.Accessor().Get(); got != 5 {
		t.Errorf("Get() = %v, want 5", got)
	}
}

func TestSliceSourcePointerRows(t *testing.T) {
	items := []*item{{Name: "a"}, nil, {Name: "c"}}
	src, err := proptable.NewSliceSource("items", &items)
	if err != nil {
		t.Fatal(err)
	}
	_, grid := proptable.ByPaths(src, "Name")
	if grid[1][0] != nil {
		t.Errorf("nil row produced %v", grid[1][0])
	}

	acc, ok := src.Property(2, "Name")
	if !ok {
		t.Fatal("Property(2, Name) missing")
	}
	if err := acc.Set("changed"); err != nil {
		t.Fatal(err)
	}
	if items[2].Name != "changed" {
		t.Errorf("write did not reach the row: %q", items[2].Name)
	}
}

func TestSliceSourceIsLive(t *testing.T) {
	items := []item{{Name: "a"}}
	src, _ := proptable.NewSliceSource("items", &items)
	items = append(items, item{Name: "b"})
	if src.Len() != 2 {
		t.Errorf("Len() = %d after append, want 2", src.Len())
	}
}

func TestByPathsOrder(t *testing.T) {
	items := []item{{Name: "a", Count: 2}}
	src, _ := proptable.NewSliceSource("items", &items)

	cols, grid := proptable.ByPaths(src, "Count", "Missing", "Name")
	if diff := cmp.Diff([]string{"Count", "Missing", "Name"}, titles(cols)); diff != "" {
		t.Errorf("titles (-want +got):\n%s", diff)
	}
	if grid[0][1] != nil {
		t.Error("unknown member should give a nil cell")
	}
}

func TestByColumnsUsesDescriptors(t *testing.T) {
	items := []item{{Name: "a", Count: 2}}
	src, _ := proptable.NewSliceSource("items", &items)
	cols := []proptable.TableColumn{proptable.NewColumn("Qty").WithWidth(40)}

	grid := proptable.ByColumns(src, cols, []string{"Count", "Name"})
	if len(grid[0]) != 2 {
		t.Fatalf("row has %d cells, want 2 (surplus kept)", len(grid[0]))
	}
	acc := grid[0][0].(*proptable.PropertyEntry).Accessor()
	if acc.Path() != "items[0].Count" {
		t.Errorf("path = %q", acc.Path())
	}
}

func TestBySelector(t *testing.T) {
	items := []item{{Name: "Sword", Count: 1}, {Name: "Arrow", Count: 40}}
	src, _ := proptable.NewSliceSource("items", &items)

	cols, grid := proptable.BySelector(src, []proptable.ColumnBinding{
		{Column: proptable.NewColumn("Item"), Member: "Name"},
		{
			Column: proptable.NewColumn("Stack").ReadOnly(),
			Member: "Count",
			Select: func(a proptable.Accessor) proptable.Entry {
				return proptable.Valuef("x%d", a.Get())
			},
		},
	})

	if diff := cmp.Diff([]string{"Item", "Stack"}, titles(cols)); diff != "" {
		t.Errorf("titles (-want +got):\n%s", diff)
	}
	if cols[1].EnabledEntries {
		t.Error("column descriptor not carried through")
	}
	v, ok := grid[1][1].(proptable.ValueEntry)
	if !ok {
		t.Fatalf("cell is %T, want ValueEntry", grid[1][1])
	}
	if v.String() != "x40" {
		t.Errorf("cell text = %q", v.String())
	}
	if _, ok := grid[0][0].(*proptable.PropertyEntry); !ok {
		t.Errorf("binding without Select should bind the property, got %T", grid[0][0])
	}
}

func TestRecordSource(t *testing.T) {
	records := []map[string]any{
		{"name": "north", "load": 0.5, "up": true},
		{"name": "south", "load": 0.9},
	}
	src := proptable.NewRecordSource("hosts", records)

	if diff := cmp.Diff([]string{"load", "name", "up"}, src.Members()); diff != "" {
		t.Errorf("members (-want +got):\n%s", diff)
	}

	cols, grid := proptable.ReflectAll(src)
	if diff := cmp.Diff([]string{"Load", "Name", "Up"}, titles(cols)); diff != "" {
		t.Errorf("titles (-want +got):\n%s", diff)
	}
	if grid[1][2] != nil {
		t.Error("missing key should give a nil cell")
	}

	acc, _ := src.Property(0, "load")
	if err := acc.Set(1); err != nil {
		t.Fatal(err)
	}
	if records[0]["load"] != 1.0 {
		t.Errorf("load = %#v, want float64 1", records[0]["load"])
	}
	if err := acc.Set("high"); !errors.Is(err, proptable.ErrTypeMismatch) {
		t.Errorf("Set(string) error = %v, want ErrTypeMismatch", err)
	}
}

func TestDataTableDrawsReflectedGrid(t *testing.T) {
	items := []item{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	src, _ := proptable.NewSliceSource("items", &items)

	h := newHarness(t)
	var tf proptable.TableFrame
	h.frame(func(ctx *proptable.Context) {
		tf = ctx.DataTablePaths("inv", proptable.Rect{W: 600, H: 300}, src, []string{"Name", "Count"})
	})
	if len(tf.Headers) != 2 || len(tf.Cells) != 6 {
		t.Errorf("got %d headers and %d cells, want 2 and 6", len(tf.Headers), len(tf.Cells))
	}
}
