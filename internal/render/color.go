package render

// Color is one 24-bit pixel value. There is no alpha channel.
type Color struct {
	R, G, B uint8
}

// ToColor unpacks a 0xRRGGBB literal.
func ToColor(c uint32) Color {
	return Color{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// RGBA implements image/color.Color so a Color can be handed to the image packages.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Desktop palette.
var (
	DesktopBGColor      = Color{R: 45, G: 30, B: 110}
	DesktopFGColor      = Color{R: 255, G: 255, B: 255}
	TaskbarColor        = Color{R: 1, G: 8, B: 17}
	TaskbarSegmentColor = Color{R: 80, G: 80, B: 80}
	StartWidgetColor    = Color{R: 160, G: 160, B: 160}
)
