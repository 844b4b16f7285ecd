package render

import (
	"fmt"
	"math"
)

// Largest background image that can be installed.
const (
	MaxBackgroundWidth  = 640
	MaxBackgroundHeight = 480
)

// SampleMode selects how a destination pixel is mapped back onto the stored image.
type SampleMode int

const (
	// SampleCompat rounds the scaled coordinate and then adds one whenever its
	// fractional part is below one half. This matches existing desktops pixel
	// for pixel, including the one pixel shift at native resolution.
	SampleCompat SampleMode = iota
	// SampleNearest picks the source pixel whose span covers the destination,
	// so sampling at the native resolution reproduces the image exactly.
	SampleNearest
)

func (m SampleMode) String() string {
	switch m {
	case SampleCompat:
		return "compat"
	case SampleNearest:
		return "nearest"
	}
	return fmt.Sprintf("SampleMode(%d)", int(m))
}

// ParseSampleMode accepts the names returned by String.
func ParseSampleMode(name string) (SampleMode, error) {
	switch name {
	case "", "compat":
		return SampleCompat, nil
	case "nearest":
		return SampleNearest, nil
	}
	return 0, fmt.Errorf("unknown sampling mode %q", name)
}

// BackgroundImage is a desktop background of at most
// MaxBackgroundWidth x MaxBackgroundHeight pixels. Storage is sized for the
// maximum; only the Width x Height corner is ever populated or read.
type BackgroundImage struct {
	width, height int
	mode          SampleMode
	pixels        [MaxBackgroundHeight][MaxBackgroundWidth]Color
}

// NewBackgroundImage decodes width*height row-major RGB triplets.
// The caller validates the size and that data holds enough bytes.
func NewBackgroundImage(width, height int, data []byte, mode SampleMode) *BackgroundImage {
	img := &BackgroundImage{width: width, height: height, mode: mode}
	for y := 0; y < height; y++ {
		row := data[3*y*width:]
		for x := 0; x < width; x++ {
			p := row[3*x : 3*x+3]
			img.pixels[y][x] = Color{R: p[0], G: p[1], B: p[2]}
		}
	}
	return img
}

func (img *BackgroundImage) Width() int       { return img.width }
func (img *BackgroundImage) Height() int      { return img.height }
func (img *BackgroundImage) Mode() SampleMode { return img.mode }

// At returns the stored pixel without any scaling.
func (img *BackgroundImage) At(x, y int) Color { return img.pixels[y][x] }

// Sample returns the stored color for destination pixel (x, y) when the image
// is stretched over a targetWidth x targetHeight area.
func (img *BackgroundImage) Sample(x, y, targetWidth, targetHeight int) Color {
	nx := sampleAxis(img.mode, x, targetWidth, img.width)
	ny := sampleAxis(img.mode, y, targetHeight, img.height)
	return img.pixels[ny][nx]
}

// sampleAxis maps dest in [0, target) onto [0, stored). The result is clamped
// to stored-1: the historical clamp to stored would read one column and one
// row past the populated region.
func sampleAxis(mode SampleMode, dest, target, stored int) int {
	var n int
	switch mode {
	case SampleNearest:
		n = dest * stored / target
	default:
		c := float32(dest) / float32(target) * float32(stored)
		frac := c - float32(math.Floor(float64(c)))
		n = int(math.Round(float64(c)))
		if frac < 0.5 {
			n++
		}
	}
	return max(0, min(stored-1, n))
}
