package proptable

// Vec2 is a point or size in pixels.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle; X, Y is the top-left corner.
type Rect struct {
	X, Y float32
	W, H float32
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive so adjacent cells never both claim a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Vertex is one vertex of a draw list. The layout is uploaded to the GPU
// as is: two floats of position, two of texture coordinate, four bytes
// of color.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is a run of indices sharing one texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 draws untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Colors are packed 0xAABBGGRR, the byte order OpenGL reads.
const (
	ColorWhite uint32 = 0xFFFFFFFF
	ColorCyan  uint32 = 0xFFFFFF00
	ColorGray  uint32 = 0xFF808080
)

// RGBA packs 8-bit components into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func clampf(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
