package proptable

import "testing"

func TestFrameStoreCleanup(t *testing.T) {
	ctx := NewContext()
	store := NewFrameStore[int](ctx)

	ctx.Reset(Vec2{}) // frame 1
	*store.Get(1, 0) = 10
	store.Get(2, 0)

	ctx.Reset(Vec2{}) // frame 2: both survive one idle frame
	if store.Len() != 2 {
		t.Fatalf("Len() = %d after one frame, want 2", store.Len())
	}
	store.Get(1, 0)

	ctx.Reset(Vec2{}) // frame 3: id 2 untouched since frame 1
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
	if v := store.GetIfExists(1); v == nil || *v != 10 {
		t.Errorf("GetIfExists(1) = %v, want 10", v)
	}
	if store.GetIfExists(2) != nil {
		t.Error("stale entry not removed")
	}

	store.Delete(1)
	if store.Len() != 0 {
		t.Errorf("Len() = %d after Delete, want 0", store.Len())
	}
}

func TestStoresArePerContext(t *testing.T) {
	a, b := NewContext(), NewContext()
	a.resizeSessions.Get(7, ResizeSession{Active: true, Column: 1})
	if b.resizeSessions.GetIfExists(7) != nil {
		t.Error("resize session leaked between contexts")
	}
}

func TestDrawListClipIntersects(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushClipRect(Rect{X: 0, Y: 0, W: 100, H: 100})
	dl.PushClipRect(Rect{X: 50, Y: -20, W: 100, H: 40})
	if got, want := dl.ClipRect(), (Rect{X: 50, Y: 0, W: 50, H: 20}); got != want {
		t.Errorf("ClipRect() = %+v, want %+v", got, want)
	}
	dl.PopClipRect()
	if got, want := dl.ClipRect(), (Rect{X: 0, Y: 0, W: 100, H: 100}); got != want {
		t.Errorf("ClipRect() after pop = %+v, want %+v", got, want)
	}
}

func TestHoverRespectsClip(t *testing.T) {
	ctx := NewContext()
	ctx.DrawList = AcquireDrawList()
	defer ReleaseDrawList(ctx.DrawList)
	ctx.Input = NewInputState()
	ctx.Input.SetMousePos(150, 10)

	r := Rect{X: 0, Y: 0, W: 200, H: 20}
	if !ctx.isHovered(r) {
		t.Fatal("expected hover without clip")
	}
	ctx.DrawList.PushClipRect(Rect{W: 100, H: 100})
	if ctx.isHovered(r) {
		t.Error("hover reported outside the clip rectangle")
	}
}

func TestInputEvents(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	if got := in.Event(MouseButtonLeft); got != EventMouseDown {
		t.Errorf("Event() = %v, want down", got)
	}
	in.Consume()
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("consumed click still reported")
	}

	in.Reset()
	if got := in.Event(MouseButtonLeft); got != EventMouseDrag {
		t.Errorf("Event() = %v, want drag", got)
	}

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	if got := in.Event(MouseButtonLeft); got != EventMouseUp {
		t.Errorf("Event() = %v, want up", got)
	}

	in.Reset()
	if got := in.Event(MouseButtonLeft); got != EventNone {
		t.Errorf("Event() = %v, want none", got)
	}
}

func TestTruncateText(t *testing.T) {
	ctx := NewContext() // 8px cells

	tests := []struct {
		text  string
		width float32
		want  string
	}{
		{"short", 100, "short"},
		{"inventory", 48, "inve.."},
		{"abc", 16, ""},
		{"日本語テキスト", 48, "日本.."},
	}
	for _, tt := range tests {
		if got := ctx.truncateText(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestRowClipper(t *testing.T) {
	tests := []struct {
		name               string
		total              int
		scroll, visible    float32
		wantStart, wantEnd int
	}{
		{"top", 100, 0, 100, 0, 7},
		{"partial scroll", 100, 30, 100, 1, 8},
		{"near end", 10, 150, 100, 7, 10},
		{"empty", 0, 0, 100, 0, 0},
		{"fewer rows than viewport", 3, 0, 100, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRowClipper(tt.total, 20, tt.visible, tt.scroll)
			if c.Start != tt.wantStart || c.End != tt.wantEnd {
				t.Errorf("range = [%d, %d), want [%d, %d)", c.Start, c.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
	if got := newRowClipper(10, 20, 100, 30).rowY(2, -30); got != 10 {
		t.Errorf("rowY = %v, want 10", got)
	}
}
