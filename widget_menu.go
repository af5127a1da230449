package proptable

// MenuState is the header context menu of one table.
type MenuState struct {
	Open bool
	Pos  Vec2
}

// menuItem is one optional column listed in the menu.
type menuItem struct {
	column int
	rect   Rect
}

// columnMenu runs the header context menu. A right-click inside header
// opens it at the mouse, listing every optional column with a checkbox
// for its visibility. While open, a left-click on an item toggles that
// column and a click anywhere else closes the menu. Clicks the menu
// handles are consumed so the headers underneath never see them.
//
// The menu is drawn into the overlay list and hit-tested without the
// table's clip rectangle, since it may extend past the table.
func (ctx *Context) columnMenu(id ID, header Rect, columns []TableColumn, state *TableState) *MenuState {
	menu := ctx.menus.Get(id, MenuState{})

	var optional []int
	for i, c := range columns {
		if c.Optional {
			optional = append(optional, i)
		}
	}
	if len(optional) == 0 {
		menu.Open = false
		return menu
	}

	mouse := ctx.mouse()
	reopen := ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonRight) && header.Contains(mouse)
	if menu.Open {
		items, bounds := ctx.layoutMenu(menu.Pos, columns, optional)
		if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
			switch {
			case bounds.Contains(mouse):
				for _, it := range items {
					if it.rect.Contains(mouse) {
						state.SetVisible(it.column, !state.IsVisible(it.column))
						ctx.logger.Debug("column visibility toggled",
							"column", columns[it.column].Title,
							"visible", state.IsVisible(it.column))
					}
				}
				ctx.consume()
			default:
				menu.Open = false
				ctx.logger.Debug("column menu closed")
			}
		}
		if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonRight) && !reopen {
			menu.Open = false
		}
		if menu.Open && !reopen {
			ctx.drawMenu(items, bounds, columns, state)
		}
	}

	if reopen && !ctx.Input.Consumed() {
		menu.Open = true
		menu.Pos = mouse
		ctx.consume()
		ctx.logger.Debug("column menu opened", "pos", mouse)
		items, bounds := ctx.layoutMenu(menu.Pos, columns, optional)
		ctx.drawMenu(items, bounds, columns, state)
	}
	return menu
}

// layoutMenu computes item rectangles for a menu at pos, shifted to stay
// on screen when the display size is known.
func (ctx *Context) layoutMenu(pos Vec2, columns []TableColumn, optional []int) ([]menuItem, Rect) {
	pad := ctx.style.MenuPadding
	lh := ctx.LineHeight()
	itemH := lh + pad

	var textW float32
	for _, i := range optional {
		textW = max(textW, ctx.MeasureText(columns[i].Title).X)
	}
	bounds := Rect{
		X: pos.X,
		Y: pos.Y,
		W: lh + textW + pad*3,
		H: itemH*float32(len(optional)) + pad*2,
	}
	if ds := ctx.DisplaySize; ds.X > 0 && ds.Y > 0 {
		bounds.X = clampf(bounds.X, 0, max(0, ds.X-bounds.W))
		bounds.Y = clampf(bounds.Y, 0, max(0, ds.Y-bounds.H))
	}

	items := make([]menuItem, len(optional))
	for n, i := range optional {
		items[n] = menuItem{
			column: i,
			rect: Rect{
				X: bounds.X + pad,
				Y: bounds.Y + pad + itemH*float32(n),
				W: bounds.W - pad*2,
				H: itemH,
			},
		}
	}
	return items, bounds
}

func (ctx *Context) drawMenu(items []menuItem, bounds Rect, columns []TableColumn, state *TableState) {
	dl := ctx.Overlay
	if dl == nil {
		dl = ctx.DrawList
	}
	s := ctx.style
	mouse := ctx.mouse()

	dl.FillRect(bounds, s.MenuBgColor)
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, s.MenuBorderColor, 1)

	box := ctx.LineHeight() - 4
	for _, it := range items {
		if it.rect.Contains(mouse) {
			dl.FillRect(it.rect, s.MenuHoveredColor)
		}
		bx := it.rect.X + 2
		by := it.rect.Y + (it.rect.H-box)/2
		dl.AddRectOutline(bx, by, box, box, s.BorderColor, 1)
		if state.IsVisible(it.column) {
			dl.AddCheckMark(bx, by, box, s.CheckColor)
		}
		ty := it.rect.Y + (it.rect.H-ctx.LineHeight())/2
		ctx.addText(dl, bx+box+s.MenuPadding, ty, columns[it.column].Title, s.TextColor)
	}
}
