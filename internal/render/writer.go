package render

import (
	"errors"
	"fmt"

	"github.com/rook-computer/deskfb/internal/geom"
)

// PixelFormat is the channel order of a 32-bit frame buffer pixel.
type PixelFormat int

const (
	PixelRGBResv8BitPerColor PixelFormat = iota
	PixelBGRResv8BitPerColor
)

func (f PixelFormat) String() string {
	switch f {
	case PixelRGBResv8BitPerColor:
		return "rgb"
	case PixelBGRResv8BitPerColor:
		return "bgr"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// ParsePixelFormat accepts the names returned by String.
func ParsePixelFormat(name string) (PixelFormat, error) {
	switch name {
	case "rgb", "RGB":
		return PixelRGBResv8BitPerColor, nil
	case "bgr", "BGR":
		return PixelBGRResv8BitPerColor, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPixelFormat, name)
}

var ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")

// bytesPerPixel is fixed: three color channels plus one reserved byte.
const bytesPerPixel = 4

// FrameBufferConfig describes the memory the desktop is drawn into.
// PixelsPerScanLine may exceed HorizontalResolution when rows are padded.
type FrameBufferConfig struct {
	HorizontalResolution int
	VerticalResolution   int
	PixelsPerScanLine    int
	FrameBuffer          []byte
	PixelFormat          PixelFormat
}

// Bounds is the visible area.
func (c FrameBufferConfig) Bounds() geom.Rectangle[int] {
	return geom.Rect(0, 0, c.HorizontalResolution, c.VerticalResolution)
}

// PixelOffset is the byte offset of the pixel at pos.
func (c FrameBufferConfig) PixelOffset(pos geom.Vector2D[int]) int {
	return bytesPerPixel * (c.PixelsPerScanLine*pos.Y + pos.X)
}

// BufferSize is the number of bytes the visible area spans.
func (c FrameBufferConfig) BufferSize() int {
	return bytesPerPixel * c.PixelsPerScanLine * c.VerticalResolution
}

// PixelWriter puts single pixels on the screen.
// Callers must keep coordinates inside Width x Height.
type PixelWriter interface {
	Write(pos geom.Vector2D[int], c Color)
	Width() int
	Height() int
}

// FrameBufferWriter writes straight into frame-buffer memory.
type FrameBufferWriter struct {
	config FrameBufferConfig
	store  func(p []byte, c Color)
}

// NewPixelWriter picks the channel order once for the lifetime of the writer.
func NewPixelWriter(config FrameBufferConfig) (*FrameBufferWriter, error) {
	var store func(p []byte, c Color)
	switch config.PixelFormat {
	case PixelRGBResv8BitPerColor:
		store = storeRGB
	case PixelBGRResv8BitPerColor:
		store = storeBGR
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPixelFormat, config.PixelFormat)
	}
	return &FrameBufferWriter{config: config, store: store}, nil
}

func (w *FrameBufferWriter) Width() int  { return w.config.HorizontalResolution }
func (w *FrameBufferWriter) Height() int { return w.config.VerticalResolution }

func (w *FrameBufferWriter) Format() PixelFormat { return w.config.PixelFormat }

func (w *FrameBufferWriter) Write(pos geom.Vector2D[int], c Color) {
	off := w.config.PixelOffset(pos)
	w.store(w.config.FrameBuffer[off:off+3], c)
}

func storeRGB(p []byte, c Color) {
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
}

func storeBGR(p []byte, c Color) {
	p[0] = c.B
	p[1] = c.G
	p[2] = c.R
}
