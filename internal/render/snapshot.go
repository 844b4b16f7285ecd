package render

import (
	"image"

	"github.com/rook-computer/deskfb/internal/geom"
)

// Snapshot copies the visible part of the frame buffer into an RGBA image.
func Snapshot(config FrameBufferConfig) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, config.HorizontalResolution, config.VerticalResolution))
	for y := 0; y < config.VerticalResolution; y++ {
		for x := 0; x < config.HorizontalResolution; x++ {
			c := ReadPixel(config, geom.Vec(x, y))
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

// ReadPixel decodes the pixel at pos according to the configured channel order.
// Unknown formats read as RGB.
func ReadPixel(config FrameBufferConfig, pos geom.Vector2D[int]) Color {
	off := config.PixelOffset(pos)
	p := config.FrameBuffer[off : off+3]
	if config.PixelFormat == PixelBGRResv8BitPerColor {
		return Color{R: p[2], G: p[1], B: p[0]}
	}
	return Color{R: p[0], G: p[1], B: p[2]}
}

// NewMemoryConfig allocates a frame buffer in ordinary memory.
// A stride of zero means rows are not padded.
func NewMemoryConfig(width, height, stride int, format PixelFormat) FrameBufferConfig {
	if stride < width {
		stride = width
	}
	config := FrameBufferConfig{
		HorizontalResolution: width,
		VerticalResolution:   height,
		PixelsPerScanLine:    stride,
		PixelFormat:          format,
	}
	config.FrameBuffer = make([]byte, config.BufferSize())
	return config
}
