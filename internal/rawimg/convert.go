package rawimg

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Limits of an installable background.
const (
	MaxWidth  = 640
	MaxHeight = 480
)

var ErrTooLarge = fmt.Errorf("image larger than %dx%d", MaxWidth, MaxHeight)

// FromImage flattens src into RGB triplets. Alpha is dropped.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)

	out := &Image{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
	out.Pix = make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := 0; y < b.Dy(); y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*b.Dx()]
		for x := 0; x < len(row); x += 4 {
			out.Pix = append(out.Pix, row[x], row[x+1], row[x+2])
		}
	}
	return out
}

// Fit scales src down, keeping its aspect ratio, until it fits within
// maxW x maxH. Images that already fit are returned unchanged.
func Fit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	// Compare w/maxW with h/maxH without floats.
	if w*maxH >= h*maxW {
		h = max(1, h*maxW/w)
		w = maxW
	} else {
		w = max(1, w*maxH/h)
		h = maxH
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// ConvertOptions control Load.
type ConvertOptions struct {
	// Fit downsizes oversize images instead of rejecting them.
	Fit bool
}

// Load decodes any supported image file (png, jpeg, gif, bmp, tiff, webp)
// into a raw image.
func Load(path string, opts ConvertOptions) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: unsupported image format", path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := src.Bounds()
	if b.Dx() > MaxWidth || b.Dy() > MaxHeight {
		if !opts.Fit {
			return nil, fmt.Errorf("%s (%s %dx%d): %w", path, format, b.Dx(), b.Dy(), ErrTooLarge)
		}
		src = Fit(src, MaxWidth, MaxHeight)
	}
	return FromImage(src), nil
}
