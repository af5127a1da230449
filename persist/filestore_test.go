package persist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/proptable"
	"github.com/go-theft-auto/proptable/persist"
)

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")

	store, err := persist.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := store.Load("inventory"); ok {
		t.Error("expected empty store")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Open should not create the file, stat err = %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layout.yaml")

	store, err := persist.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	want := &proptable.TableState{
		ColumnWidths:  []float32{120, 80.5, 100},
		ColumnVisible: []bool{true, false, true},
		SortColumn:    2,
		SortAscending: true,
		Scroll:        proptable.Vec2{X: 30, Y: 12},
	}
	if err := store.Save("inventory", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reopened, err := persist.Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	got, ok := reopened.Load("inventory")
	if !ok {
		t.Fatal("state missing after reopen")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveSkipsUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	store, err := persist.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	state := proptable.NewTableState()
	state.ColumnWidths = []float32{100}
	state.ColumnVisible = []bool{true}
	if err := store.Save("t", state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Backdate the file so a rewrite would be visible in its mtime.
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if err := store.Save("t", state); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("unchanged Save rewrote the file (mtime %v, want %v)", info.ModTime(), old)
	}

	state.ColumnWidths[0] = 140
	if err := store.Save("t", state); err != nil {
		t.Fatalf("third Save() error = %v", err)
	}
	info, err = os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.ModTime().Equal(old) {
		t.Error("changed state was not written")
	}

	if err := store.Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}
}

func TestOpenRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("version: 99\ntables: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := persist.Open(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported version") {
		t.Errorf("Open() error = %v, want unsupported version", err)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("tables: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := persist.Open(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestStoreDrivesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	store, err := persist.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	ui := proptable.New(nil, proptable.WithStateStore(store))
	input := proptable.NewInputState()
	cols := []proptable.TableColumn{proptable.NewColumn("A"), proptable.NewColumn("B")}

	ctx := ui.Begin(input, proptable.Vec2{X: 800, Y: 600})
	ctx.Table("grid", proptable.Rect{W: 400, H: 200}, cols, nil)
	if err := ui.End(); err != nil {
		t.Fatal(err)
	}

	if store.Len() != 1 {
		t.Fatalf("store holds %d tables, want 1", store.Len())
	}
	reopened, err := persist.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := reopened.Load("grid")
	if !ok {
		t.Fatal("table state not persisted")
	}
	if diff := cmp.Diff([]float32{100, 100}, got.ColumnWidths); diff != "" {
		t.Errorf("widths (-want +got):\n%s", diff)
	}
}
