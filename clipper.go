package proptable

// rowClipper is the range of row slots that intersect a vertically
// scrolled viewport, so only those rows are laid out and drawn.
type rowClipper struct {
	Start     int // first visible slot (inclusive)
	End       int // last visible slot (exclusive)
	RowHeight float32
	Total     int
}

// newRowClipper computes the visible slots for total rows of rowHeight in
// a viewport of visibleHeight scrolled by scrollY. Two extra slots cover
// rows cut off at the top and bottom edges.
func newRowClipper(total int, rowHeight, visibleHeight, scrollY float32) rowClipper {
	c := rowClipper{RowHeight: rowHeight, Total: total}
	if total == 0 || rowHeight <= 0 {
		return c
	}

	c.Start = max(0, int(scrollY/rowHeight))
	c.End = c.Start + int(visibleHeight/rowHeight) + 2
	c.Start = min(c.Start, total)
	c.End = min(c.End, total)
	return c
}

// rowY returns the top of slot given the unscrolled top of the first row
// minus the scroll offset.
func (c rowClipper) rowY(slot int, top float32) float32 {
	return top + float32(slot)*c.RowHeight
}
