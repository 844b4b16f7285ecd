//go:build linux

package fbdev

import (
	"fmt"
	"unsafe"

	fb "github.com/gonutz/framebuffer"
	"golang.org/x/sys/unix"

	"github.com/rook-computer/deskfb/internal/render"
)

// <linux/fb.h>
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type fbBitField struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// struct fb_var_screeninfo
type fbVarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp fbBitField
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode, Rotate      uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// struct fb_fix_screeninfo
type fbFixScreenInfo struct {
	ID                            [16]byte
	SMemStart                     uintptr
	SMemLen                       uint32
	Type, TypeAux, Visual         uint32
	XPanStep, YPanStep, YWrapStep uint16
	LineLength                    uint32
	MmioStart                     uintptr
	MmioLen                       uint32
	Accel                         uint32
	Capabilities                  uint16
	Reserved                      [2]uint16
}

func ioctlGet[T any](fd int, req uintptr) (T, error) {
	var v T
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(&v)))
	if errno != 0 {
		return v, errno
	}
	return v, nil
}

// Open maps the visible area of the frame buffer at path and describes it.
func Open(path string) (_ *Device, err error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	dev := &Device{Path: path, closers: []func() error{func() error { return unix.Close(fd) }}}
	defer func() {
		if err != nil {
			_ = dev.Close()
		}
	}()

	vi, err := ioctlGet[fbVarScreenInfo](fd, fbioGetVScreenInfo)
	if err != nil {
		return nil, fmt.Errorf("FBIOGET_VSCREENINFO on %s: %w", path, err)
	}
	fi, err := ioctlGet[fbFixScreenInfo](fd, fbioGetFScreenInfo)
	if err != nil {
		return nil, fmt.Errorf("FBIOGET_FSCREENINFO on %s: %w", path, err)
	}
	if vi.BitsPerPixel != 32 {
		return nil, fmt.Errorf("%s: %w (%d bpp)", path, ErrUnsupportedDepth, vi.BitsPerPixel)
	}

	stride := int(fi.LineLength) / 4
	size := int(fi.LineLength) * int(vi.YRes)
	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	dev.closers = append(dev.closers, func() error { return unix.Munmap(mem) })

	dev.Config = render.FrameBufferConfig{
		HorizontalResolution: int(vi.XRes),
		VerticalResolution:   int(vi.YRes),
		PixelsPerScanLine:    stride,
		FrameBuffer:          mem,
		PixelFormat: FormatFor(
			BitField{Offset: vi.Red.Offset, Length: vi.Red.Length},
			BitField{Offset: vi.Green.Offset, Length: vi.Green.Length},
			BitField{Offset: vi.Blue.Offset, Length: vi.Blue.Length},
		),
	}

	// Screenshots read back through the generic device image so they show
	// whatever the hardware scans out, not only what this process drew.
	if readback, rerr := fb.Open(path); rerr == nil {
		dev.capture = readback
		dev.closers = append(dev.closers, func() error { readback.Close(); return nil })
	}
	return dev, nil
}
