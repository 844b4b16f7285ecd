// Package sysapi is the call boundary between clients and the graphics state.
// It turns graphics errors into errno values; zero means success.
package sysapi

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/deskfb/internal/graphics"
)

// Result mirrors a system-call return: a value and an errno.
type Result struct {
	Value uint64
	Error unix.Errno
}

// OK reports whether the call succeeded.
func (r Result) OK() bool { return r.Error == 0 }

// Desktop is the subset of graphics.State the calls need.
type Desktop interface {
	InstallBackground(width, height int, data []byte) error
	ClearBackground() error
}

type Handler struct {
	Desktop Desktop
}

func New(desktop Desktop) *Handler { return &Handler{Desktop: desktop} }

// SetDesktopBgImage installs a background of width x height RGB triplets.
func (h *Handler) SetDesktopBgImage(width, height uint32, data []byte) Result {
	// Compare before converting so huge values cannot wrap into range.
	if uint64(width) > uint64(^uint(0)>>1) || uint64(height) > uint64(^uint(0)>>1) {
		return Result{Error: unix.EINVAL}
	}
	return result(h.Desktop.InstallBackground(int(width), int(height), data))
}

// ClearDesktopBgImage removes the installed background.
func (h *Handler) ClearDesktopBgImage() Result {
	return result(h.Desktop.ClearBackground())
}

func result(err error) Result {
	return Result{Error: Errno(err)}
}

// Errno maps a graphics error onto the errno reported to callers.
func Errno(err error) unix.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, graphics.ErrImageTooLarge),
		errors.Is(err, graphics.ErrInvalidImageSize),
		errors.Is(err, graphics.ErrShortImageData):
		return unix.EINVAL
	case errors.Is(err, graphics.ErrNoBackground):
		return unix.ENOENT
	case errors.Is(err, graphics.ErrNotInitialized):
		return unix.ENODEV
	}
	return unix.EIO
}
