package colors

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Magenta     = Color{255, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	DarkGray    = Color{20, 26, 31, 255}
	Transparent = Color{}
)

func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements image/color.Color (alpha-premultiplied, 16 bit).
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
	return
}

// Float returns the color as [0..1] floats, the layout shaders expect.
func (c Color) Float() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Scale multiplies the RGB channels by f, saturating at 255.
func (c Color) Scale(f float32) Color {
	ch := func(v uint8) uint8 {
		x := float32(v) * f
		if x > 255 {
			return 255
		}
		if x < 0 {
			return 0
		}
		return uint8(x)
	}
	return Color{ch(c.R), ch(c.G), ch(c.B), c.A}
}
