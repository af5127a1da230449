package proptable

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Entry is one table cell: it knows how to draw itself into a rectangle
// and how to order itself against another cell of the same column.
type Entry interface {
	// Draw renders the cell. enabled is false when the table or the
	// column does not accept edits; the cell is drawn but ignores input.
	Draw(ctx *Context, id ID, rect Rect, enabled bool)

	// CompareTo returns -1, 0 or +1. Entries of a different kind, or
	// values that have no natural order, compare as equal.
	CompareTo(other Entry) int
}

// ValueEntry is a self-contained cell: a label or a computed value.
type ValueEntry struct {
	V      any
	Format string // fmt verb string, empty = default formatting
}

// Text returns a label cell.
func Text(s string) ValueEntry { return ValueEntry{V: s} }

// Value returns a cell showing v with default formatting.
func Value(v any) ValueEntry { return ValueEntry{V: v} }

// Valuef returns a cell showing v formatted with format. Sorting still
// uses v, not the formatted string.
func Valuef(format string, v any) ValueEntry { return ValueEntry{V: v, Format: format} }

// String returns the text drawn for the cell.
func (e ValueEntry) String() string {
	if e.Format != "" {
		return fmt.Sprintf(e.Format, e.V)
	}
	return formatValue(e.V)
}

// Draw implements Entry.
func (e ValueEntry) Draw(ctx *Context, _ ID, rect Rect, _ bool) {
	ctx.drawCellText(rect, e.String(), ctx.style.TextColor)
}

// CompareTo implements Entry.
func (e ValueEntry) CompareTo(other Entry) int {
	o, ok := other.(ValueEntry)
	if !ok {
		return 0
	}
	return compareValues(e.V, o.V)
}

// formatValue renders a cell value as text.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float32:
		return fmt.Sprintf("%.2f", x)
	case float64:
		return fmt.Sprintf("%.2f", x)
	case time.Time:
		return x.Format("2006-01-02 15:04")
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// compareValues orders two raw values. Numbers compare numerically across
// widths, strings lexically, bools false before true, times
// chronologically and Stringers by their text. Anything else is equal.
func compareValues(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0
	}
	switch {
	case isInt(va.Kind()) && isInt(vb.Kind()):
		return cmp.Compare(va.Int(), vb.Int())
	case isUint(va.Kind()) && isUint(vb.Kind()):
		return cmp.Compare(va.Uint(), vb.Uint())
	case isNumber(va.Kind()) && isNumber(vb.Kind()):
		return cmp.Compare(toFloat(va), toFloat(vb))
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return strings.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		x, y := va.Bool(), vb.Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}

	if sa, ok := a.(fmt.Stringer); ok {
		if sb, ok := b.(fmt.Stringer); ok {
			return strings.Compare(sa.String(), sb.String())
		}
	}
	return 0
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v.Kind()):
		return float64(v.Int())
	case isUint(v.Kind()):
		return float64(v.Uint())
	case isFloat(v.Kind()):
		return v.Float()
	}
	return 0
}

// drawCellText draws text left-aligned and vertically centred in rect,
// truncated to fit.
func (ctx *Context) drawCellText(rect Rect, text string, color uint32) {
	pad := ctx.style.CellPadding
	text = ctx.truncateText(text, rect.W-pad*2)
	if text == "" {
		return
	}
	y := rect.Y + (rect.H-ctx.LineHeight())/2
	ctx.addText(ctx.DrawList, rect.X+pad, y, text, color)
}
