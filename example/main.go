// Example is an inventory editor: a property table over a slice of items
// whose column layout is kept in a YAML file between runs.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ -v      # run with debug logging
//
// Drag a number sideways to edit it, click a checkbox to toggle it, click a
// header to sort, drag a header edge to resize, and right-click the header
// row to show or hide the optional columns.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"

	"github.com/go-theft-auto/proptable"
	"github.com/go-theft-auto/proptable/backend/opengl"
	"github.com/go-theft-auto/proptable/persist"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "proptable inventory"
)

type item struct {
	Name     string
	Count    int
	Weight   float32
	Value    int
	Equipped bool
	Acquired time.Time
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	layout := pflag.StringP("layout", "l", "inventory-layout.yaml", "file holding column widths, visibility and sort order")
	verbose := pflag.BoolP("verbose", "v", false, "log table interactions")
	light := pflag.Bool("light", false, "use the light editor style")
	pflag.Parse()

	proptable.SetVerbose(*verbose)

	if err := run(*layout, *light); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inventory() []item {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	return []item{
		{Name: "Crowbar", Count: 1, Weight: 2.5, Value: 15, Equipped: true, Acquired: day},
		{Name: "Bandage", Count: 6, Weight: 0.1, Value: 4, Acquired: day.Add(26 * time.Hour)},
		{Name: "Lockpick", Count: 12, Weight: 0.05, Value: 9, Acquired: day.Add(3 * time.Hour)},
		{Name: "Road map", Count: 1, Weight: 0.2, Value: 2, Acquired: day.Add(72 * time.Hour)},
		{Name: "Flashlight", Count: 1, Weight: 0.8, Value: 25, Equipped: true, Acquired: day.Add(50 * time.Hour)},
		{Name: "Battery", Count: 4, Weight: 0.1, Value: 3, Acquired: day.Add(50 * time.Hour)},
	}
}

func bindings() []proptable.ColumnBinding {
	return []proptable.ColumnBinding{
		{Column: proptable.NewColumn("Item").WithWidth(140).ReadOnly(), Member: "Name"},
		{Column: proptable.NewColumn("Count").WithWidth(70), Member: "Count"},
		{Column: proptable.NewColumn("Weight").WithWidth(80), Member: "Weight"},
		{
			Column: proptable.NewColumn("Weight (kg)").WithWidth(110).AsOptional(true),
			Member: "Weight",
			Select: func(a proptable.Accessor) proptable.Entry {
				return proptable.Valuef("%.2f kg", a.Get())
			},
		},
		{Column: proptable.NewColumn("Value").WithWidth(70).AsOptional(true), Member: "Value"},
		{Column: proptable.NewColumn("Equipped").WithWidth(90), Member: "Equipped"},
		{Column: proptable.NewColumn("Acquired").WithWidth(150).AsOptional(false), Member: "Acquired"},
	}
}

func run(layoutPath string, light bool) error {
	store, err := persist.Open(layoutPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	defer inputAdapter.Destroy()

	style := proptable.DefaultStyle()
	if light {
		style = proptable.EditorStyle()
	}
	ui := proptable.New(renderer, proptable.WithStyle(style), proptable.WithStateStore(store))

	items := inventory()
	src, err := proptable.NewSliceSource("inventory", &items)
	if err != nil {
		return err
	}

	for !window.ShouldClose() {
		inputAdapter.Update()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := proptable.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(inputAdapter.Input(), displaySize)

		ctx.DataTableSelect("inventory", proptable.Rect{X: 20, Y: 20, W: displaySize.X - 40, H: displaySize.Y - 40}, src, bindings())
		inputAdapter.ApplyCursor(ctx.Cursor())

		if err := ui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return store.Flush()
}
