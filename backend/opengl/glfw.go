package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/proptable"
)

// GLFWInputAdapter feeds GLFW window events into a proptable.InputState
// and applies the cursor the table asks for.
type GLFWInputAdapter struct {
	window  *glfw.Window
	input   *proptable.InputState
	cursors map[proptable.CursorKind]*glfw.Cursor
	current proptable.CursorKind
}

// NewGLFWInputAdapter installs mouse callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window:  window,
		input:   proptable.NewInputState(),
		cursors: make(map[proptable.CursorKind]*glfw.Cursor, 3),
	}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Update starts a new input frame. Call it before glfw.PollEvents so the
// clicks and wheel deltas delivered by the callbacks belong to this frame.
func (a *GLFWInputAdapter) Update() {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Input returns the input state for the current frame.
func (a *GLFWInputAdapter) Input() *proptable.InputState {
	return a.input
}

// ApplyCursor shows the cursor shape requested by the last frame.
// Standard cursors are created lazily and reused.
func (a *GLFWInputAdapter) ApplyCursor(kind proptable.CursorKind) {
	if kind == a.current {
		return
	}
	a.current = kind

	if kind == proptable.CursorArrow {
		a.window.SetCursor(nil)
		return
	}
	c, ok := a.cursors[kind]
	if !ok {
		c = glfw.CreateStandardCursor(standardCursor(kind))
		a.cursors[kind] = c
	}
	a.window.SetCursor(c)
}

// Destroy releases the cursors created by ApplyCursor.
func (a *GLFWInputAdapter) Destroy() {
	a.window.SetCursor(nil)
	for kind, c := range a.cursors {
		c.Destroy()
		delete(a.cursors, kind)
	}
	a.current = proptable.CursorArrow
}

func standardCursor(kind proptable.CursorKind) glfw.StandardCursor {
	switch kind {
	case proptable.CursorHand:
		return glfw.HandCursor
	case proptable.CursorResizeEW:
		return glfw.HResizeCursor
	default:
		return glfw.ArrowCursor
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

// scrollCallback accumulates, since several wheel events can arrive
// between frames.
func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

func glfwMouseButton(b glfw.MouseButton) (proptable.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return proptable.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return proptable.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return proptable.MouseButtonMiddle, true
	}
	return 0, false
}
