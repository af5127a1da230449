package proptable

import (
	"log/slog"
	"os"

	"github.com/mattn/go-runewidth"
)

// guiLogLevel controls the level of the default logger.
// Default is LevelInfo, which suppresses Debug messages.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the default logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// defaultLogger is used by contexts that weren't given a logger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// CursorKind is a mouse cursor shape requested by a widget. Kinds are
// ordered by precedence: when affordances overlap, the higher one wins.
type CursorKind int

const (
	CursorArrow    CursorKind = iota
	CursorHand                // Clickable header
	CursorResizeEW            // Horizontal resize (column handles, number drags)
)

// CursorRect is a cursor affordance: while the mouse is inside Rect the
// host should show Kind.
type CursorRect struct {
	Rect Rect
	Kind CursorKind
}

// Context holds all state for drawing one frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList *DrawList
	Overlay  *DrawList // Popups and menus, drawn after DrawList

	// Input (read-only during frame, apart from Consume)
	Input *InputState

	// Screen
	DisplaySize   Vec2
	FontTextureID uint32

	// WantCaptureMouse is set when a widget used the mouse this frame.
	WantCaptureMouse bool

	style   Style
	logger  *slog.Logger
	idStack []ID

	// Persistent table state (owned by the caller, see StateStore)
	stateStore StateStore

	// Transient per-widget state, cleaned every frame
	frame          uint64
	stores         []Cleanable
	resizeSessions *FrameStore[ResizeSession]
	menus          *FrameStore[MenuState]
	edits          *FrameStore[EditState]
	scrollDrags    *FrameStore[scrollDrag]

	cursorRects  []CursorRect
	activeCursor CursorKind
}

// NewContext creates a context with the default style, an in-memory
// state store and the default logger.
func NewContext() *Context {
	ctx := &Context{
		style:       DefaultStyle(),
		logger:      defaultLogger,
		idStack:     make([]ID, 0, 16),
		stateStore:  NewMemoryStateStore(),
		cursorRects: make([]CursorRect, 0, 16),
	}
	ctx.resizeSessions = NewFrameStore[ResizeSession](ctx)
	ctx.menus = NewFrameStore[MenuState](ctx)
	ctx.edits = NewFrameStore[EditState](ctx)
	ctx.scrollDrags = NewFrameStore[scrollDrag](ctx)
	return ctx
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Logger returns the context's logger.
func (ctx *Context) Logger() *slog.Logger {
	return ctx.logger
}

// SetLogger replaces the context's logger. A nil logger restores the default.
func (ctx *Context) SetLogger(l *slog.Logger) {
	if l == nil {
		l = defaultLogger
	}
	ctx.logger = l
}

// StateStore returns the store holding persistent table state.
func (ctx *Context) StateStore() StateStore {
	return ctx.stateStore
}

// SetStateStore replaces the persistent state store.
func (ctx *Context) SetStateStore(store StateStore) {
	if store == nil {
		store = NewMemoryStateStore()
	}
	ctx.stateStore = store
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2) {
	ctx.frame++
	for _, s := range ctx.stores {
		s.Cleanup(ctx.frame)
	}

	ctx.DisplaySize = displaySize
	ctx.idStack = ctx.idStack[:0]
	ctx.cursorRects = ctx.cursorRects[:0]
	ctx.activeCursor = CursorArrow
	ctx.WantCaptureMouse = false
}

// FrameCount returns the number of frames started on this context.
func (ctx *Context) FrameCount() uint64 {
	return ctx.frame
}

// mouse returns the mouse position, or a far-away point without input.
func (ctx *Context) mouse() Vec2 {
	if ctx.Input == nil {
		return Vec2{X: -1e9, Y: -1e9}
	}
	return ctx.Input.Mouse()
}

// isHovered returns true if rect is under the mouse cursor and inside
// the active clip rectangle.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	m := ctx.mouse()
	if ctx.DrawList != nil && !ctx.DrawList.ClipRect().Contains(m) {
		return false
	}
	return rect.Contains(m)
}

// IsHovered returns true if rect is under the mouse cursor (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if rect was clicked with button this frame.
func (ctx *Context) isClicked(rect Rect, button MouseButton) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(button)

	if clicked && guiVerbose() {
		ctx.logger.Debug("click",
			"rect", rect,
			"mouse", ctx.mouse(),
			"hit", hovered)
	}
	return hovered && clicked
}

// isPressed returns true if the left button is held over rect.
func (ctx *Context) isPressed(rect Rect) bool {
	return ctx.Input != nil && ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// consume marks the mouse event as handled.
func (ctx *Context) consume() {
	if ctx.Input != nil {
		ctx.Input.Consume()
	}
	ctx.WantCaptureMouse = true
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of rendered text using monospace cells.
// East Asian wide runes count as two cells.
func (ctx *Context) MeasureText(text string) Vec2 {
	cw := ctx.style.CharWidth * ctx.style.FontScale
	return Vec2{
		X: float32(runewidth.StringWidth(text)) * cw,
		Y: ctx.LineHeight(),
	}
}

// truncateText shortens text with an ellipsis so it fits maxWidth.
func (ctx *Context) truncateText(text string, maxWidth float32) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	cw := ctx.style.CharWidth * ctx.style.FontScale
	if cw <= 0 {
		return text
	}
	cells := int(maxWidth / cw)
	if cells <= 2 {
		return ""
	}
	return runewidth.Truncate(text, cells, "..")
}

// addText draws text to dl with the current style.
func (ctx *Context) addText(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// AddCursorRect registers a cursor affordance for this frame. If the
// mouse is inside rect and kind outranks the current cursor, the frame's
// cursor becomes kind.
func (ctx *Context) AddCursorRect(rect Rect, kind CursorKind) {
	ctx.cursorRects = append(ctx.cursorRects, CursorRect{Rect: rect, Kind: kind})
	if kind > ctx.activeCursor && ctx.isHovered(rect) {
		ctx.activeCursor = kind
	}
}

// forceCursor sets the frame's cursor regardless of hover, used while a
// drag is in progress and the mouse may leave the handle.
func (ctx *Context) forceCursor(kind CursorKind) {
	ctx.activeCursor = kind
}

// CursorRects returns the cursor affordances registered this frame.
func (ctx *Context) CursorRects() []CursorRect {
	return ctx.cursorRects
}

// Cursor returns the cursor the host should display this frame.
func (ctx *Context) Cursor() CursorKind {
	return ctx.activeCursor
}
