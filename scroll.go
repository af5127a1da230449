package proptable

// wheelStep is the scroll distance in pixels for one wheel notch.
const wheelStep = 30

// scrollDrag tracks a scrollbar thumb drag.
type scrollDrag struct {
	Active      bool
	StartMouse  float32
	StartScroll float32
}

// scrollRegion is an open horizontal scroll region. Content is laid out
// from Origin and clipped to Viewport.
type scrollRegion struct {
	Viewport     Rect
	Scrollbar    Rect
	ContentWidth float32
	Origin       Vec2
}

// beginHScroll opens a horizontal scroll region over rect for content
// of the given width. The bottom ScrollbarSize pixels of rect become the
// scrollbar strip. scroll.X is clamped and updated from the wheel (wheel X,
// or wheel Y with shift held) and from thumb drags.
func (ctx *Context) beginHScroll(id ID, rect Rect, contentWidth float32, scroll *Vec2) scrollRegion {
	bar := ctx.style.ScrollbarSize
	r := scrollRegion{
		Viewport:     Rect{X: rect.X, Y: rect.Y, W: rect.W, H: max(0, rect.H-bar)},
		Scrollbar:    Rect{X: rect.X, Y: rect.Bottom() - bar, W: rect.W, H: bar},
		ContentWidth: contentWidth,
	}
	maxScroll := max(0, contentWidth-rect.W)

	if ctx.Input != nil && ctx.isHovered(rect) {
		wheel := ctx.Input.MouseWheelX
		if wheel == 0 && ctx.Input.ModShift {
			wheel = ctx.Input.MouseWheelY
		}
		if wheel != 0 {
			scroll.X -= wheel * wheelStep
			ctx.WantCaptureMouse = true
		}
	}
	scroll.X = clampf(scroll.X, 0, maxScroll)

	// Thumb
	track := r.Scrollbar.W
	thumbW := track
	if contentWidth > 0 {
		thumbW = max(20, track*rect.W/contentWidth)
	}
	thumbX := r.Scrollbar.X
	if maxScroll > 0 {
		thumbX += scroll.X / maxScroll * (track - thumbW)
	}
	thumb := Rect{X: thumbX, Y: r.Scrollbar.Y, W: thumbW, H: bar}

	drag := ctx.scrollDrags.Get(id, scrollDrag{})
	hovered := ctx.isHovered(thumb)
	if ctx.Input != nil {
		switch {
		case hovered && ctx.Input.MouseClicked(MouseButtonLeft):
			drag.Active = true
			drag.StartMouse = ctx.Input.MouseX
			drag.StartScroll = scroll.X
			ctx.consume()
		case !hovered && ctx.isClicked(r.Scrollbar, MouseButtonLeft):
			// Page towards the click
			if ctx.Input.MouseX < thumb.X {
				scroll.X = clampf(scroll.X-rect.W, 0, maxScroll)
			} else {
				scroll.X = clampf(scroll.X+rect.W, 0, maxScroll)
			}
			ctx.consume()
		}
		if drag.Active {
			if ctx.Input.MouseDown(MouseButtonLeft) && track > thumbW {
				delta := (ctx.Input.MouseX - drag.StartMouse) * maxScroll / (track - thumbW)
				scroll.X = clampf(drag.StartScroll+delta, 0, maxScroll)
				ctx.WantCaptureMouse = true
			} else if !ctx.Input.MouseDown(MouseButtonLeft) {
				drag.Active = false
			}
		}
	}

	ctx.DrawList.FillRect(r.Scrollbar, ctx.style.ScrollbarBgColor)
	if maxScroll > 0 {
		thumb.X = r.Scrollbar.X + scroll.X/maxScroll*(track-thumbW)
	}
	thumbColor := ctx.style.ScrollbarGrabColor
	if drag.Active || hovered {
		thumbColor = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.FillRect(thumb, thumbColor)

	r.Origin = Vec2{X: rect.X - scroll.X, Y: rect.Y}
	ctx.DrawList.PushClipRect(r.Viewport)
	return r
}

// endHScroll closes a region opened by beginHScroll.
func (ctx *Context) endHScroll() {
	ctx.DrawList.PopClipRect()
}

// wheelScrollY applies vertical wheel input over area to scroll.Y,
// clamped so the last row stays reachable. Shift-wheel belongs to the
// horizontal region and is ignored here.
func (ctx *Context) wheelScrollY(area Rect, contentHeight float32, scroll *Vec2) {
	maxScroll := max(0, contentHeight-area.H)
	if ctx.Input != nil && !ctx.Input.ModShift && ctx.Input.MouseWheelY != 0 && ctx.isHovered(area) {
		scroll.Y -= ctx.Input.MouseWheelY * wheelStep
		ctx.WantCaptureMouse = true
	}
	scroll.Y = clampf(scroll.Y, 0, maxScroll)
}
