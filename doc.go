/*
Package proptable provides an immediate-mode table widget whose cells are
bound to live properties of the host's data model.

# Overview

The table is redrawn from scratch every frame. Each call to Context.Table
takes the column descriptors and a freshly built Grid, lays out headers and
rows inside a rectangle, reacts to this frame's mouse input (column resize,
sort clicks, the header context menu, scrolling, cell edits) and writes the
persistent part of the table (TableState) back through a StateStore.

Cells are Entry values. ValueEntry holds a plain value; PropertyEntry wraps
an Accessor, so an edit in the table writes straight into the bound object
and shows up when the grid is rebuilt next frame.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	adapter := opengl.NewGLFWInputAdapter(window)
	ui := proptable.New(renderer)

	items := []Item{{Name: "Sword", Count: 1}, {Name: "Potion", Count: 5}}
	src, _ := proptable.NewSliceSource("items", &items)

	// Frame loop
	for !window.ShouldClose() {
	    adapter.Update() // before PollEvents
	    glfw.PollEvents()

	    ctx := ui.Begin(adapter.Input(), proptable.Vec2{X: 1280, Y: 720})
	    ctx.DataTable("inventory", proptable.Rect{X: 10, Y: 10, W: 600, H: 400}, src)
	    ui.End()

	    adapter.ApplyCursor(ctx.Cursor())
	    window.SwapBuffers()
	}

# Building grids

ReflectAll creates one column per exported field of the rows, titled with
NiceName. ByPaths restricts that to named members, ByColumns pairs members
with caller-made columns and BySelector lets each column map the bound
property to any Entry:

	cols, grid := proptable.BySelector(src, []proptable.ColumnBinding{
	    {Column: proptable.NewColumn("Item"), Member: "Name"},
	    {Column: proptable.NewColumn("Stack").ReadOnly(), Member: "Count",
	        Select: func(a proptable.Accessor) proptable.Entry {
	            return proptable.Valuef("x%d", a.Get())
	        }},
	})

Any type implementing DataSource can feed the builders; RecordSource serves
loosely typed records without reflection.

# Interaction

	Left drag on a column edge   Resize the column (no minimum width)
	Left click on a header       Cycle sort: ascending, descending, unsorted
	Right click on the header    Toggle optional columns
	Mouse wheel                  Scroll rows
	Shift+wheel, scrollbar       Scroll columns when they overflow
	Left click on a bool cell    Toggle the property
	Left drag on a number cell   Change the property by Style.DragSpeed per pixel

# Persistence

The widget never owns persistence. By default state lives in a
MemoryStateStore; persist.FileStore keeps every table's state in a YAML
file between sessions:

	store, err := persist.Open("layout.yaml")
	ui := proptable.New(renderer, proptable.WithStateStore(store))
	defer store.Flush()

# Logging

Warnings (rows with more cells than columns, failed property writes or
saves) go to the GUI's slog.Logger. Debug output for interaction changes
is enabled with SetVerbose(true).
*/
package proptable
