package shape

import "fmt"

// Color is a non-premultiplied ARGB color. It is persisted as its four
// components and satisfies image/color.Color so backends can use it directly.
type Color struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	Black     = Color{A: 255}
	White     = Color{A: 255, R: 255, G: 255, B: 255}
	Gray      = Color{A: 255, R: 128, G: 128, B: 128}
	LightGray = Color{A: 255, R: 211, G: 211, B: 211}
)

// Defaults applied to new shapes.
var (
	DefaultFill   = LightGray
	DefaultStroke = Black
)

// ARGB builds a color from components.
func ARGB(a, r, g, b uint8) Color { return Color{A: a, R: r, G: g, B: b} }

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// ToARGB packs the color as 0xAARRGGBB.
func (c Color) ToARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements image/color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

// CSS renders the color as a CSS rgba() string.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", c.ToARGB())
}
