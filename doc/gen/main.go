// Command gen renders the table in a few representative states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/ [-o dir]
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"

	"github.com/go-theft-auto/proptable"
	"github.com/go-theft-auto/proptable/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	outDir := pflag.StringP("out", "o", filepath.Join("doc", "imgs"), "directory for the JPEG screenshots")
	pflag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	style  proptable.Style
	// input is applied before each frame; nil leaves the mouse idle.
	input  func(frame int, in *proptable.InputState)
	draw   func(ctx *proptable.Context)
	frames int // frames to render (0 = default 2)
}

func run(outDir string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection changes; resizing the hidden window is
	// asynchronous and would leave the scissor out of step. It stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so table state never leaks between captures.
	ui := proptable.New(renderer, proptable.WithStyle(s.style))
	input := proptable.NewInputState()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := range frames {
		input.Reset()
		if s.input != nil {
			s.input(i, input)
		}

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, proptable.Vec2{X: float32(s.width), Y: float32(s.height)})
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL origin is bottom-left.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

type part struct {
	Name     string
	Supplier string
	Stock    int
	Price    float64
	Active   bool
}

func parts() []part {
	return []part{
		{"Bolt M6", "Acme", 420, 0.12, true},
		{"Washer", "Acme", 1500, 0.03, true},
		{"Hinge", "Northwind", 36, 2.40, false},
		{"Bracket", "Contoso", 88, 1.75, true},
		{"Spring", "Northwind", 0, 0.55, false},
		{"Gasket", "Contoso", 140, 0.90, true},
	}
}

// buildScreenshots returns every capture to generate.
func buildScreenshots() []screenshot {
	rows := parts()
	src, err := proptable.NewSliceSource("parts", &rows)
	if err != nil {
		panic(err)
	}

	sorted := proptable.NewTableState()
	sorted.SortColumn = 2
	sorted.SortAscending = false

	resized := proptable.NewTableState()
	resized.ColumnWidths = []float32{160, 70, 60, 60, 60}
	resized.ColumnVisible = []bool{true, true, true, true, true}

	scrolled := proptable.NewTableState()
	scrolled.Scroll.X = 120

	optional := []proptable.ColumnBinding{
		{Column: proptable.NewColumn("Name").ReadOnly(), Member: "Name"},
		{Column: proptable.NewColumn("Supplier").AsOptional(true), Member: "Supplier"},
		{Column: proptable.NewColumn("Stock"), Member: "Stock"},
		{Column: proptable.NewColumn("Price").AsOptional(false), Member: "Price"},
		{Column: proptable.NewColumn("Active").AsOptional(true), Member: "Active"},
	}

	full := proptable.Rect{X: 12, Y: 12, W: 536, H: 176}

	return []screenshot{
		{
			name: "table", width: 560, height: 200, style: proptable.DefaultStyle(),
			draw: func(ctx *proptable.Context) {
				ctx.DataTable("parts", full, src)
			},
		},
		{
			name: "table_sorted", width: 560, height: 200, style: proptable.DefaultStyle(),
			draw: func(ctx *proptable.Context) {
				ctx.DataTable("parts", full, src, proptable.WithState(sorted))
			},
		},
		{
			name: "table_resized", width: 560, height: 200, style: proptable.DefaultStyle(),
			draw: func(ctx *proptable.Context) {
				ctx.DataTable("parts", full, src, proptable.WithState(resized))
			},
		},
		{
			name: "table_scrolled", width: 360, height: 200, style: proptable.DefaultStyle(),
			draw: func(ctx *proptable.Context) {
				ctx.DataTable("parts", proptable.Rect{X: 12, Y: 12, W: 336, H: 176}, src, proptable.WithState(scrolled))
			},
		},
		{
			name: "table_column_menu", width: 560, height: 200, style: proptable.DefaultStyle(), frames: 3,
			input: func(frame int, in *proptable.InputState) {
				in.SetMousePos(60, 20)
				in.SetMouseButton(proptable.MouseButtonRight, frame == 0)
			},
			draw: func(ctx *proptable.Context) {
				ctx.DataTableSelect("parts", full, src, optional)
			},
		},
		{
			name: "table_editor_style", width: 560, height: 200, style: proptable.EditorStyle(),
			draw: func(ctx *proptable.Context) {
				ctx.DataTable("parts", full, src, proptable.WithDisabled(true))
			},
		},
	}
}
