package proptable

// TableState is the persistent part of a table: what the user changed
// and expects to find again next frame (and next session).
type TableState struct {
	ColumnWidths  []float32 `yaml:"widths"`
	ColumnVisible []bool    `yaml:"visible"`
	SortColumn    int       `yaml:"sortColumn"` // -1 = unsorted
	SortAscending bool      `yaml:"sortAscending"`
	Scroll        Vec2      `yaml:"scroll"`
}

// NewTableState returns an unsorted state with no column data yet.
func NewTableState() *TableState {
	return &TableState{SortColumn: -1}
}

// EnsureCapacity makes widths and visibility cover every column.
// Missing entries are initialized from the column defaults; existing
// entries are kept, so a user's customizations survive as long as the
// column count does not shrink below them.
func (s *TableState) EnsureCapacity(columns []TableColumn) {
	n := len(columns)
	if len(s.ColumnWidths) < n {
		widths := make([]float32, n)
		copy(widths, s.ColumnWidths)
		for i := len(s.ColumnWidths); i < n; i++ {
			widths[i] = columns[i].Width
		}
		s.ColumnWidths = widths
	}
	if len(s.ColumnVisible) < n {
		visible := make([]bool, n)
		copy(visible, s.ColumnVisible)
		for i := len(s.ColumnVisible); i < n; i++ {
			visible[i] = columns[i].Visible
		}
		s.ColumnVisible = visible
	}
}

// Width returns the stored width of column i, or 0 if unknown.
func (s *TableState) Width(i int) float32 {
	if i < 0 || i >= len(s.ColumnWidths) {
		return 0
	}
	return s.ColumnWidths[i]
}

// IsVisible reports whether column i is shown.
func (s *TableState) IsVisible(i int) bool {
	return i >= 0 && i < len(s.ColumnVisible) && s.ColumnVisible[i]
}

// SetVisible shows or hides column i.
func (s *TableState) SetVisible(i int, visible bool) {
	if i >= 0 && i < len(s.ColumnVisible) {
		s.ColumnVisible[i] = visible
	}
}

// IsSorted reports whether any sort column is active.
func (s *TableState) IsSorted() bool {
	return s.SortColumn >= 0
}

// CycleSort advances the sort order for a header click on column:
// unsorted -> ascending -> descending -> unsorted. Clicking a different
// column starts it at ascending.
func (s *TableState) CycleSort(column int) {
	switch {
	case s.SortColumn != column:
		s.SortColumn = column
		s.SortAscending = true
	case s.SortAscending:
		s.SortAscending = false
	default:
		s.SortColumn = -1
		s.SortAscending = false
	}
}

// Clone returns a deep copy.
func (s *TableState) Clone() *TableState {
	c := *s
	c.ColumnWidths = append([]float32(nil), s.ColumnWidths...)
	c.ColumnVisible = append([]bool(nil), s.ColumnVisible...)
	return &c
}
