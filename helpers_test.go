package proptable_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/proptable"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *proptable.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {}

var displaySize = proptable.Vec2{X: 1280, Y: 720}

// harness drives frames with simulated mouse input and captures log output.
type harness struct {
	t        *testing.T
	ui       *proptable.GUI
	input    *proptable.InputState
	renderer *mockRenderer
	logs     *bytes.Buffer
}

func newHarness(t *testing.T, opts ...proptable.GUIOption) *harness {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	renderer := &mockRenderer{}
	opts = append([]proptable.GUIOption{proptable.WithLogger(logger)}, opts...)
	return &harness{
		t:        t,
		ui:       proptable.New(renderer, opts...),
		input:    proptable.NewInputState(),
		renderer: renderer,
		logs:     logs,
	}
}

// frame runs one frame with the input set up since the last frame, then
// clears per-frame input (held buttons stay held).
func (h *harness) frame(draw func(ctx *proptable.Context)) {
	h.t.Helper()
	ctx := h.ui.Begin(h.input, displaySize)
	draw(ctx)
	if err := h.ui.End(); err != nil {
		h.t.Fatalf("End() returned error: %v", err)
	}
	h.input.Reset()
}

func (h *harness) move(x, y float32) { h.input.SetMousePos(x, y) }

func (h *harness) press(b proptable.MouseButton) { h.input.SetMouseButton(b, true) }

func (h *harness) release(b proptable.MouseButton) { h.input.SetMouseButton(b, false) }

// click runs a press frame and a release frame at (x, y) and returns the
// result of the press frame.
func (h *harness) click(x, y float32, b proptable.MouseButton, draw func(ctx *proptable.Context) proptable.TableFrame) proptable.TableFrame {
	h.t.Helper()
	var tf proptable.TableFrame
	h.move(x, y)
	h.press(b)
	h.frame(func(ctx *proptable.Context) { tf = draw(ctx) })
	h.release(b)
	h.frame(func(ctx *proptable.Context) { draw(ctx) })
	return tf
}

// warnings counts log lines containing msg.
func (h *harness) warnings(msg string) int {
	return strings.Count(h.logs.String(), msg)
}

// intGrid builds a grid with one integer value per row in column 0 and
// row labels in the remaining columns.
func intGrid(values []int, columns int) proptable.Grid {
	grid := make(proptable.Grid, len(values))
	for i, v := range values {
		row := []proptable.Entry{proptable.Value(v)}
		for c := 1; c < columns; c++ {
			row = append(row, proptable.Text("r"))
		}
		grid[i] = row
	}
	return grid
}

func columns(n int) []proptable.TableColumn {
	cols := make([]proptable.TableColumn, n)
	for i := range cols {
		cols[i] = proptable.NewColumn(string(rune('A' + i)))
	}
	return cols
}
