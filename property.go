package proptable

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var (
	// ErrReadOnly is returned by accessors whose member cannot be written.
	ErrReadOnly = errors.New("proptable: property is read-only")
	// ErrTypeMismatch is returned when a value cannot be converted to the
	// member's type.
	ErrTypeMismatch = errors.New("proptable: value type mismatch")
	// ErrNotSliceOfStructs is returned by NewSliceSource for unsupported
	// inputs.
	ErrNotSliceOfStructs = errors.New("proptable: expected pointer to slice of structs")
)

// Accessor reads and writes one member of the host's data model,
// addressed by a path such as "items[3].Count".
type Accessor interface {
	Path() string
	Get() any
	Set(v any) error
}

// EditState tracks an in-progress drag edit of a numeric property cell.
type EditState struct {
	Active     bool
	StartX     float32
	StartValue float64
}

// PropertyEntry is a cell bound to a live property. Edits are written
// through the accessor immediately and show up when the grid is rebuilt
// next frame.
type PropertyEntry struct {
	acc Accessor
}

// Property returns a cell bound to acc.
func Property(acc Accessor) *PropertyEntry {
	return &PropertyEntry{acc: acc}
}

// Accessor returns the bound accessor.
func (e *PropertyEntry) Accessor() Accessor {
	if e == nil {
		return nil
	}
	return e.acc
}

// CompareTo implements Entry. Only other property cells are ordered.
func (e *PropertyEntry) CompareTo(other Entry) int {
	o, ok := other.(*PropertyEntry)
	if !ok || isEmptyCell(e) || isEmptyCell(o) {
		return 0
	}
	return compareValues(e.acc.Get(), o.acc.Get())
}

// Draw implements Entry. Bools draw as a checkbox that toggles on click;
// numbers drag-edit horizontally; everything else is shown as text.
func (e *PropertyEntry) Draw(ctx *Context, id ID, rect Rect, enabled bool) {
	if isEmptyCell(e) {
		return
	}
	v := e.acc.Get()
	rv := reflect.ValueOf(v)

	switch {
	case rv.IsValid() && rv.Kind() == reflect.Bool:
		e.drawBool(ctx, rect, rv.Bool(), enabled)
	case rv.IsValid() && isNumber(rv.Kind()):
		e.drawNumber(ctx, id, rect, rv, enabled)
	default:
		color := ctx.style.TextColor
		if !enabled {
			color = ctx.style.TextDisabledColor
		}
		ctx.drawCellText(rect, formatValue(v), color)
	}
}

func (e *PropertyEntry) drawBool(ctx *Context, rect Rect, value, enabled bool) {
	pad := ctx.style.CellPadding
	box := min(ctx.LineHeight(), rect.H) - 4
	if box <= 0 || rect.W < box+pad {
		return
	}
	bx, by := rect.X+pad, rect.Y+(rect.H-box)/2

	border := ctx.style.BorderColor
	if enabled && ctx.isHovered(rect) {
		border = ctx.style.ResizeHandleActive
	}
	ctx.DrawList.AddRectOutline(bx, by, box, box, border, 1)

	if value {
		color := ctx.style.CheckColor
		if !enabled {
			color = ctx.style.TextDisabledColor
		}
		ctx.DrawList.AddCheckMark(bx, by, box, color)
	}

	if enabled && ctx.isClicked(rect, MouseButtonLeft) {
		ctx.consume()
		e.write(ctx, !value)
	}
}

func (e *PropertyEntry) drawNumber(ctx *Context, id ID, rect Rect, rv reflect.Value, enabled bool) {
	color := ctx.style.TextColor
	if !enabled {
		color = ctx.style.TextDisabledColor
		ctx.drawCellText(rect, formatValue(rv.Interface()), color)
		return
	}

	state := ctx.edits.GetIfExists(id)
	if state == nil && ctx.isClicked(rect, MouseButtonLeft) {
		state = ctx.edits.Get(id, EditState{})
		state.Active = true
		state.StartX = ctx.Input.MouseX
		state.StartValue = toFloat(rv)
		ctx.consume()
		ctx.logger.Debug("property edit begin", "path", e.acc.Path(), "value", state.StartValue)
	}

	if state != nil && state.Active {
		// Keep the edit alive while the button is held, even outside rect.
		ctx.edits.Get(id, EditState{})
		ctx.DrawList.FillRect(rect, ctx.style.EditActiveColor)
		ctx.WantCaptureMouse = true

		switch {
		case ctx.Input != nil && ctx.Input.MouseDown(MouseButtonLeft):
			next := state.StartValue + float64((ctx.Input.MouseX-state.StartX)*ctx.style.DragSpeed)
			if !isFloat(rv.Kind()) {
				next = math.Round(next)
			}
			if next != toFloat(rv) {
				e.write(ctx, next)
			}
		default:
			ctx.logger.Debug("property edit end", "path", e.acc.Path())
			ctx.edits.Delete(id)
		}
		ctx.forceCursor(CursorResizeEW)
	} else {
		ctx.AddCursorRect(rect, CursorResizeEW)
	}

	ctx.drawCellText(rect, formatValue(e.acc.Get()), color)
}

// write sets the property and logs failures; a failed write never
// interrupts the frame.
func (e *PropertyEntry) write(ctx *Context, v any) {
	if err := e.acc.Set(v); err != nil {
		ctx.logger.Warn("property write failed", "path", e.acc.Path(), "value", v, "err", err)
	}
}

// assign stores v into dst, converting between compatible kinds. Numeric
// values are range-checked so a drag never wraps an integer around.
func assign(dst reflect.Value, v any) error {
	if !dst.CanSet() {
		return ErrReadOnly
	}
	src := reflect.ValueOf(v)
	if !src.IsValid() {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}

	k := dst.Kind()
	switch {
	case isNumber(k) && isNumber(src.Kind()):
		f := toFloat(src)
		switch {
		case isInt(k):
			n := int64(math.Round(f))
			if dst.OverflowInt(n) {
				return fmt.Errorf("%w: %v overflows %s", ErrTypeMismatch, v, dst.Type())
			}
			dst.SetInt(n)
		case isUint(k):
			if f < 0 {
				f = 0
			}
			n := uint64(math.Round(f))
			if dst.OverflowUint(n) {
				return fmt.Errorf("%w: %v overflows %s", ErrTypeMismatch, v, dst.Type())
			}
			dst.SetUint(n)
		default:
			dst.SetFloat(f)
		}
		return nil
	case src.Type().ConvertibleTo(dst.Type()) && src.Kind() == k:
		dst.Set(src.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("%w: cannot assign %s to %s", ErrTypeMismatch, src.Type(), dst.Type())
}

// isEmptyCell reports whether e has nothing to draw or compare: a nil
// interface, or a property cell that is a typed nil or has no accessor.
func isEmptyCell(e Entry) bool {
	if e == nil {
		return true
	}
	p, ok := e.(*PropertyEntry)
	return ok && (p == nil || p.acc == nil)
}
