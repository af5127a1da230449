package proptable

// ResizeSession is the interaction token of one table: while Active,
// the handle of Column owns the left mouse button and no other handle of
// the same table reacts. Sessions live in the context, keyed by table ID,
// so tables drawn in the same frame never contend for one token.
type ResizeSession struct {
	Active bool
	Column int
}

// HeaderPlacement is where a visible column's header and resize handle
// were laid out this frame.
type HeaderPlacement struct {
	Column int
	Rect   Rect
	Handle Rect
}

// CellPlacement is where one cell was drawn. Row is the index into the
// grid, not the display position.
type CellPlacement struct {
	Row    int
	Column int
	Rect   Rect
}

// TableFrame summarizes what Table laid out and drew in one frame.
type TableFrame struct {
	ID          ID
	Origin      Vec2 // Top-left of the content, after horizontal scrolling
	ContentSize Vec2
	Scrolling   bool // A horizontal scroll region was opened
	Headers     []HeaderPlacement
	Cells       []CellPlacement
	Order       []int // Grid row indices in display order
	SurplusRows []int // Rows that had more cells than columns
	MenuOpen    bool
	Resizing    int // Column being resized, -1 if none
}

// Table draws a sortable, resizable table of grid inside rect.
//
// State (widths, visibility, sort, scroll) is loaded from the context's
// StateStore under id, or taken from WithState, reconciled against
// columns, updated by this frame's input and saved back through the store
// before returning. The grid is expected to be rebuilt every frame.
//
// Usage:
//
//	cols := []proptable.TableColumn{
//	    proptable.NewColumn("Name"),
//	    proptable.NewColumn("Count").WithWidth(60),
//	}
//	ctx.Table("inventory", rect, cols, grid)
func (ctx *Context) Table(id string, rect Rect, columns []TableColumn, grid Grid, opts ...Option) TableFrame {
	o := applyOptions(opts)
	s := ctx.style
	tableID := ctx.GetID(id)

	state := GetOpt(o, OptState)
	if state == nil {
		state = ctx.loadTableState(id)
	}
	state.EnsureCapacity(columns)

	disabled := GetOpt(o, OptDisabled)
	lh := ctx.LineHeight()
	rowH := GetOpt(o, OptRowHeight)
	if rowH <= 0 {
		rowH = lh
	}

	frame := TableFrame{
		ID:       tableID,
		Origin:   Vec2{X: rect.X, Y: rect.Y},
		Resizing: -1,
	}

	ctx.DrawList.FillRect(rect, s.RowBgColor)

	// Scroll mode
	contentW := ctx.contentWidth(columns, state)
	area := rect
	if contentW > rect.W && !GetOpt(o, OptNoScroll) {
		region := ctx.beginHScroll(tableID, rect, contentW, &state.Scroll)
		frame.Scrolling = true
		frame.Origin = region.Origin
		area = region.Viewport
	} else {
		state.Scroll.X = 0
	}

	// Header context menu, hit-tested against the un-scrolled strip
	if !disabled {
		header := Rect{X: rect.X, Y: rect.Y, W: rect.W, H: lh}
		frame.MenuOpen = ctx.columnMenu(tableID, header, columns, state).Open
	}

	ctx.tableHeaders(tableID, &frame, columns, state, disabled)

	sortColumn := state.SortColumn
	if sortColumn >= len(columns) || (sortColumn >= 0 && !columns[sortColumn].Sortable) {
		sortColumn = -1
	}
	frame.Order = SortOrder(grid, sortColumn, state.SortAscending)

	ctx.tableRows(tableID, &frame, area, rowH, columns, grid, state, o)

	frame.ContentSize = Vec2{X: contentW, Y: lh + rowH*float32(len(grid))}

	if frame.Scrolling {
		ctx.endHScroll()
	}
	ctx.saveTableState(id, state)
	return frame
}

// contentWidth is the sum of visible column widths plus the fixed gap
// after each.
func (ctx *Context) contentWidth(columns []TableColumn, state *TableState) float32 {
	var w float32
	for i := range columns {
		if state.IsVisible(i) {
			w += state.Width(i) + ctx.style.ColumnSpacing
		}
	}
	return w
}

// tableHeaders lays out header buttons and resize handles left to right,
// skipping hidden columns. Each handle runs before its header and the
// next header, so a claimed handle consumes the click and no header
// under it sorts.
func (ctx *Context) tableHeaders(tableID ID, frame *TableFrame, columns []TableColumn, state *TableState, disabled bool) {
	s := ctx.style
	lh := ctx.LineHeight()
	session := ctx.resizeSessions.Get(tableID, ResizeSession{Column: -1})
	if disabled && session.Active {
		ctx.logger.Debug("column resize cancelled", "column", session.Column)
		session.Active = false
		session.Column = -1
	}

	x := frame.Origin.X
	y := frame.Origin.Y
	for i, col := range columns {
		if !state.IsVisible(i) {
			continue
		}
		left := x
		boundary := left + state.Width(i) + s.ColumnSpacing
		handle := Rect{X: boundary - s.ResizeHandleWidth/2, Y: y, W: s.ResizeHandleWidth, H: lh}
		if !disabled {
			ctx.resizeHandle(session, i, left, handle, state)
		}

		w := state.Width(i)
		hr := Rect{X: left, Y: y, W: max(0, w), H: lh}
		sorted := state.SortColumn == i
		if ctx.headerButton(hr, col, sorted, state.SortAscending, !disabled && col.EnabledTitle) && col.Sortable {
			state.CycleSort(i)
			ctx.logger.Debug("sort changed",
				"column", col.Title,
				"sortColumn", state.SortColumn,
				"ascending", state.SortAscending)
		}
		ctx.drawHandle(handle, session.Active && session.Column == i)

		frame.Headers = append(frame.Headers, HeaderPlacement{Column: i, Rect: hr, Handle: handle})
		x = left + w + s.ColumnSpacing
	}

	// A session whose column vanished can never see its release.
	if session.Active && !state.IsVisible(session.Column) {
		session.Active = false
		session.Column = -1
	}
	if session.Active {
		frame.Resizing = session.Column
	}
}

// resizeHandle runs the resize state machine for one column:
// Idle -> Dragging on mouse-down inside handle, width follows the mouse
// while dragging, Dragging -> Idle on release. Widths are not clamped.
func (ctx *Context) resizeHandle(session *ResizeSession, column int, left float32, handle Rect, state *TableState) {
	if ctx.Input == nil {
		return
	}
	mouse := ctx.mouse()
	offset := ctx.style.ColumnSpacing

	switch {
	case session.Active && session.Column == column:
		state.ColumnWidths[column] = mouse.X - left - offset
		ctx.forceCursor(CursorResizeEW)
		ctx.WantCaptureMouse = true
		if !ctx.Input.MouseDown(MouseButtonLeft) {
			session.Active = false
			session.Column = -1
			ctx.logger.Debug("column resize end", "column", column, "width", state.ColumnWidths[column])
		}
	case !session.Active && ctx.isClicked(handle, MouseButtonLeft):
		session.Active = true
		session.Column = column
		ctx.consume()
		ctx.logger.Debug("column resize begin", "column", column, "width", state.ColumnWidths[column])
	default:
		ctx.AddCursorRect(handle, CursorResizeEW)
	}
}

// drawHandle draws the divider line at the centre of a resize handle.
func (ctx *Context) drawHandle(handle Rect, active bool) {
	color := ctx.style.ResizeHandleColor
	thickness := float32(1)
	if active || ctx.isHovered(handle) {
		color = ctx.style.ResizeHandleActive
		thickness = 2
	}
	cx := handle.X + handle.W/2
	ctx.DrawList.AddRect(cx-thickness/2, handle.Y, thickness, handle.H, color)
}

// headerButton draws one header cell and reports a left click. The sort
// column's title gets an up or down indicator.
func (ctx *Context) headerButton(rect Rect, col TableColumn, sorted, ascending, enabled bool) bool {
	s := ctx.style
	hovered := enabled && ctx.isHovered(rect)

	bg := s.HeaderBgColor
	switch {
	case hovered && ctx.Input.MouseDown(MouseButtonLeft):
		bg = s.HeaderActiveColor
	case hovered:
		bg = s.HeaderHoveredColor
	}
	ctx.DrawList.FillRect(rect, bg)

	color := s.HeaderTextColor
	if color == 0 {
		color = s.TextColor
	}
	if !enabled {
		color = s.TextDisabledColor
	}

	label := col.Title
	if sorted {
		indicator := " ▼"
		if ascending {
			indicator = " ▲"
		}
		room := rect.W - s.CellPadding*2 - ctx.MeasureText(indicator).X
		label = ctx.truncateText(label, room) + indicator
	}
	ctx.drawCellText(rect, label, color)

	if !enabled {
		return false
	}
	if col.Sortable {
		ctx.AddCursorRect(rect, CursorHand)
	}
	if ctx.isClicked(rect, MouseButtonLeft) {
		ctx.consume()
		return true
	}
	return false
}

// tableRows draws the ordered rows below the header. Cells beyond the
// column count are dropped with one warning per row; hidden columns and
// nil cells are skipped.
func (ctx *Context) tableRows(tableID ID, frame *TableFrame, area Rect, rowH float32, columns []TableColumn, grid Grid, state *TableState, o options) {
	s := ctx.style
	lh := ctx.LineHeight()
	disabled := GetOpt(o, OptDisabled)
	stripe := GetOpt(o, OptStripeRows)

	rowsArea := Rect{X: area.X, Y: area.Y + lh, W: area.W, H: max(0, area.H-lh)}
	ctx.wheelScrollY(rowsArea, rowH*float32(len(grid)), &state.Scroll)

	clip := rowsArea
	if !frame.Scrolling {
		// Overflowing columns stay visible; only the header is protected.
		clip.X, clip.W = -1e9, 2e9
	}
	ctx.DrawList.PushClipRect(clip)
	defer ctx.DrawList.PopClipRect()

	contentW := ctx.contentWidth(columns, state)
	top := frame.Origin.Y + lh - state.Scroll.Y

	ctx.PushIDValue(tableID)
	defer ctx.PopID()

	for _, r := range frame.Order {
		if n := len(grid[r]); n > len(columns) {
			ctx.logger.Warn("table row has more cells than columns",
				"table", tableID,
				"row", r,
				"cells", n,
				"columns", len(columns))
			frame.SurplusRows = append(frame.SurplusRows, r)
		}
	}

	rows := newRowClipper(len(frame.Order), rowH, rowsArea.H, state.Scroll.Y)
	for n := rows.Start; n < rows.End; n++ {
		r := frame.Order[n]
		row := grid[r]
		y := rows.rowY(n, top)
		if stripe && n%2 == 1 {
			ctx.DrawList.AddRect(frame.Origin.X, y, contentW, rowH, s.RowBgAltColor)
		}

		ctx.PushIDValue(ctx.GetIDFromInt(r))
		x := frame.Origin.X
		for c := 0; c < len(columns) && c < len(row); c++ {
			if !state.IsVisible(c) {
				continue
			}
			w := state.Width(c)
			cell := Rect{X: x, Y: y, W: w, H: rowH}
			x += w + s.ColumnSpacing

			e := row[c]
			if isEmptyCell(e) {
				continue
			}
			e.Draw(ctx, ctx.GetIDFromInt(c), cell, !disabled && columns[c].EnabledEntries)
			frame.Cells = append(frame.Cells, CellPlacement{Row: r, Column: c, Rect: cell})
		}
		ctx.PopID()
	}
}
