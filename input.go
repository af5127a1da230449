package proptable

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// EventType is the kind of mouse event observed in a frame.
type EventType int

const (
	EventNone      EventType = iota
	EventMouseDown           // A button went down this frame
	EventMouseDrag           // A button is held from a previous frame
	EventMouseUp             // A button was released this frame
)

// String returns a short name for logging.
func (e EventType) String() string {
	switch e {
	case EventMouseDown:
		return "down"
	case EventMouseDrag:
		return "drag"
	case EventMouseUp:
		return "up"
	default:
		return "none"
	}
}

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool

	// consumed is set once a widget has handled this frame's mouse event.
	consumed bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
// Held buttons stay held.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
	s.consumed = false
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// Mouse returns the mouse position as a vector.
func (s *InputState) Mouse() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame
// and no widget has consumed the event yet.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount || s.consumed {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// Event reports the kind of event for a button this frame.
func (s *InputState) Event(button MouseButton) EventType {
	switch {
	case s.MouseClicked(button):
		return EventMouseDown
	case s.MouseReleased(button):
		return EventMouseUp
	case s.MouseDown(button):
		return EventMouseDrag
	default:
		return EventNone
	}
}

// Consume marks this frame's mouse event as handled so later widgets
// don't react to the same click.
func (s *InputState) Consume() {
	s.consumed = true
}

// Consumed reports whether a widget already handled this frame's event.
func (s *InputState) Consumed() bool {
	return s.consumed
}
