// Package fbdev supplies the frame-buffer description at startup by probing
// a Linux fbdev device such as /dev/fb0.
package fbdev

import (
	"errors"
	"image"

	"github.com/rook-computer/deskfb/internal/render"
)

var (
	ErrUnsupported      = errors.New("fbdev is not supported on this platform")
	ErrUnsupportedDepth = errors.New("frame buffer is not 32 bits per pixel")
)

// UnknownFormat marks a channel layout that has no pixel writer.
// graphics.State.Initialize rejects it.
const UnknownFormat render.PixelFormat = -1

// BitField is the position of one color channel inside a pixel value.
type BitField struct {
	Offset uint32
	Length uint32
}

// FormatFor derives the byte order of a little-endian 32-bit pixel from its
// channel bit fields.
func FormatFor(red, green, blue BitField) render.PixelFormat {
	if red.Length != 8 || green.Length != 8 || blue.Length != 8 || green.Offset != 8 {
		return UnknownFormat
	}
	switch {
	case red.Offset == 0 && blue.Offset == 16:
		return render.PixelRGBResv8BitPerColor
	case red.Offset == 16 && blue.Offset == 0:
		return render.PixelBGRResv8BitPerColor
	}
	return UnknownFormat
}

// Device is an opened frame buffer.
type Device struct {
	Path   string
	Config render.FrameBufferConfig

	capture image.Image
	closers []func() error
}

// Capture copies what is currently on screen.
func (d *Device) Capture() (image.Image, error) {
	if d.capture == nil {
		return render.Snapshot(d.Config), nil
	}
	return copyImage(d.capture), nil
}

// Close unmaps the frame buffer and releases the device.
func (d *Device) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

// FrameBuffer returns the description handed to graphics.State.Initialize.
func (d *Device) FrameBuffer() render.FrameBufferConfig { return d.Config }
