package proptable

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Grid is the table content for one frame: rows of entries aligned
// positionally with the column list. A nil entry draws nothing.
type Grid [][]Entry

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// ColumnBinding maps one member of each row to a column. Select turns
// the bound property into any Entry, so a column can show computed or
// composite content; nil Select binds the property directly.
type ColumnBinding struct {
	Column TableColumn
	Member string
	Select func(Accessor) Entry
}

// ReflectAll builds one column per member of src, titled with NiceName,
// and a property cell for every row.
func ReflectAll(src DataSource) ([]TableColumn, Grid) {
	return ByPaths(src, src.Members()...)
}

// ByPaths is ReflectAll restricted to the named members, in order.
func ByPaths(src DataSource, members ...string) ([]TableColumn, Grid) {
	columns := make([]TableColumn, len(members))
	for i, m := range members {
		columns[i] = NewColumn(NiceName(m))
	}
	return columns, ByColumns(src, columns, members)
}

// ByColumns binds members to caller-supplied columns positionally.
// Missing members produce nil cells; members beyond the column list
// still produce cells, which the table reports as surplus.
func ByColumns(src DataSource, columns []TableColumn, members []string) Grid {
	bindings := make([]ColumnBinding, len(members))
	for i, m := range members {
		bindings[i] = ColumnBinding{Member: m}
		if i < len(columns) {
			bindings[i].Column = columns[i]
		}
	}
	_, grid := BySelector(src, bindings)
	return grid
}

// BySelector builds columns and cells from bindings.
func BySelector(src DataSource, bindings []ColumnBinding) ([]TableColumn, Grid) {
	columns := make([]TableColumn, len(bindings))
	for i, b := range bindings {
		columns[i] = b.Column
	}

	n := src.Len()
	grid := make(Grid, n)
	for row := range n {
		cells := make([]Entry, len(bindings))
		for col, b := range bindings {
			acc, ok := src.Property(row, b.Member)
			if !ok {
				continue
			}
			if b.Select != nil {
				cells[col] = b.Select(acc)
			} else {
				cells[col] = Property(acc)
			}
		}
		grid[row] = cells
	}
	return columns, grid
}

// NiceName turns a member identifier into a column title:
// "m_maxHealth" becomes "Max Health", "kDefaultURL" becomes
// "Default URL" and "item_count" becomes "Item Count".
func NiceName(name string) string {
	switch {
	case strings.HasPrefix(name, "m_"):
		name = name[2:]
	case len(name) > 1 && name[0] == 'k' && unicode.IsUpper(rune(name[1])):
		name = name[1:]
	}
	name = strings.TrimLeft(name, "_")

	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if r == '_' {
			b.WriteRune(' ')
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English, cases.NoLower).String(strings.Join(strings.Fields(b.String()), " "))
}

// DataTable draws src with one column per member.
func (ctx *Context) DataTable(id string, rect Rect, src DataSource, opts ...Option) TableFrame {
	columns, grid := ReflectAll(src)
	return ctx.Table(id, rect, columns, grid, opts...)
}

// DataTablePaths draws src with columns for the named members only.
func (ctx *Context) DataTablePaths(id string, rect Rect, src DataSource, members []string, opts ...Option) TableFrame {
	columns, grid := ByPaths(src, members...)
	return ctx.Table(id, rect, columns, grid, opts...)
}

// DataTableSelect draws src with explicit column bindings.
func (ctx *Context) DataTableSelect(id string, rect Rect, src DataSource, bindings []ColumnBinding, opts ...Option) TableFrame {
	columns, grid := BySelector(src, bindings)
	return ctx.Table(id, rect, columns, grid, opts...)
}
