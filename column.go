package proptable

// DefaultColumnWidth is the width given to generated columns.
const DefaultColumnWidth float32 = 100

// TableColumn describes one column. Descriptors are supplied fresh by the
// caller every frame; only the width and visibility the user changes are
// kept in TableState.
type TableColumn struct {
	Title string
	Width float32 // Default width, used until the user resizes

	Sortable bool // Header click cycles the sort order
	Optional bool // Listed in the header context menu, can be hidden
	Visible  bool // Visible by default

	EnabledTitle   bool // Header button reacts to clicks
	EnabledEntries bool // Cells in this column accept edits
}

// NewColumn returns a sortable, visible, fully enabled column of
// DefaultColumnWidth.
func NewColumn(title string) TableColumn {
	return TableColumn{
		Title:          title,
		Width:          DefaultColumnWidth,
		Sortable:       true,
		Visible:        true,
		EnabledTitle:   true,
		EnabledEntries: true,
	}
}

// WithWidth returns a copy of the column with a different default width.
func (c TableColumn) WithWidth(w float32) TableColumn {
	c.Width = w
	return c
}

// AsOptional returns a copy of the column that can be hidden from the
// header menu. visible sets its default visibility.
func (c TableColumn) AsOptional(visible bool) TableColumn {
	c.Optional = true
	c.Visible = visible
	return c
}

// ReadOnly returns a copy of the column whose cells are not editable.
func (c TableColumn) ReadOnly() TableColumn {
	c.EnabledEntries = false
	return c
}

// Unsortable returns a copy of the column that ignores sort clicks.
func (c TableColumn) Unsortable() TableColumn {
	c.Sortable = false
	return c
}
