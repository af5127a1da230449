package proptable

import "log/slog"

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI drives frames: it owns the Context and hands finished draw lists
// to the Renderer.
type GUI struct {
	renderer Renderer
	ctx      *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.ctx.SetStyle(style) }
}

// WithStateStore sets where persistent table state lives.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.ctx.SetStateStore(store) }
}

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(l *slog.Logger) GUIOption {
	return func(g *GUI) { g.ctx.SetLogger(l) }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a new frame and returns the context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.Overlay = AcquireDrawList()
	ctx.Input = input
	if g.renderer != nil {
		ctx.FontTextureID = g.renderer.FontTextureID()
	}
	ctx.Reset(displaySize)

	return ctx
}

// End finishes the frame and renders the main and overlay draw lists.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}

	var err error
	if g.renderer != nil {
		err = g.renderer.Render(ctx.DrawList)
		if err == nil && len(ctx.Overlay.VtxBuffer) > 0 {
			err = g.renderer.Render(ctx.Overlay)
		}
	}

	ReleaseDrawList(ctx.DrawList)
	ReleaseDrawList(ctx.Overlay)
	ctx.DrawList = nil
	ctx.Overlay = nil

	return err
}

// Context returns the GUI context. Draw lists are only valid between
// Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
