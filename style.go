package proptable

// Style defines the visual appearance and metrics of the table.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Header buttons
	HeaderBgColor      uint32
	HeaderHoveredColor uint32
	HeaderActiveColor  uint32
	HeaderTextColor    uint32 // 0 = use TextColor

	// Rows
	RowBgColor    uint32
	RowBgAltColor uint32
	BorderColor   uint32

	// Resize handles
	ResizeHandleColor  uint32
	ResizeHandleActive uint32

	// Property editing
	CheckColor      uint32
	EditActiveColor uint32

	// Context menu
	MenuBgColor      uint32
	MenuHoveredColor uint32
	MenuBorderColor  uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Sizing
	FontScale         float32
	CharWidth         float32
	CharHeight        float32
	CellPadding       float32 // Text inset inside header and cells
	ColumnSpacing     float32 // Fixed gap after every column
	ResizeHandleWidth float32 // Hit width of the column resize handle
	ScrollbarSize     float32
	MenuPadding       float32
	DragSpeed         float32 // Value units per pixel when drag-editing numbers
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		HeaderBgColor:      RGBA(40, 40, 40, 255),
		HeaderHoveredColor: RGBA(60, 60, 60, 255),
		HeaderActiveColor:  RGBA(80, 80, 80, 255),
		HeaderTextColor:    0,

		RowBgColor:    RGBA(25, 25, 25, 255),
		RowBgAltColor: RGBA(35, 35, 35, 255),
		BorderColor:   RGBA(80, 80, 80, 255),

		ResizeHandleColor:  RGBA(70, 70, 70, 255),
		ResizeHandleActive: ColorCyan,

		CheckColor:      ColorWhite,
		EditActiveColor: RGBA(50, 100, 150, 255),

		MenuBgColor:      RGBA(20, 20, 25, 255),
		MenuHoveredColor: RGBA(50, 100, 150, 255),
		MenuBorderColor:  RGBA(100, 100, 100, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		FontScale:         1.0,
		CharWidth:         8,
		CharHeight:        16,
		CellPadding:       4,
		ColumnSpacing:     4,
		ResizeHandleWidth: 6,
		ScrollbarSize:     10,
		MenuPadding:       4,
		DragSpeed:         0.1,
	}
}

// EditorStyle returns a lighter style resembling a desktop property inspector.
func EditorStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(120, 120, 120, 255)
	s.HeaderBgColor = RGBA(210, 210, 210, 255)
	s.HeaderHoveredColor = RGBA(225, 225, 225, 255)
	s.HeaderActiveColor = RGBA(190, 190, 190, 255)
	s.RowBgColor = RGBA(240, 240, 240, 255)
	s.RowBgAltColor = RGBA(228, 228, 228, 255)
	s.BorderColor = RGBA(160, 160, 160, 255)
	s.CheckColor = RGBA(20, 20, 20, 255)
	s.MenuBgColor = RGBA(245, 245, 245, 255)
	s.MenuHoveredColor = RGBA(150, 190, 230, 255)
	return s
}
