package sysapi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/rook-computer/deskfb/internal/graphics"
	"github.com/rook-computer/deskfb/internal/render"
	"github.com/rook-computer/deskfb/internal/sysapi"
)

func TestSetAndClear(t *testing.T) {
	state := graphics.New(nil)
	h := sysapi.New(state)

	assert.Equal(t, unix.ENODEV, h.ClearDesktopBgImage().Error)

	config := render.NewMemoryConfig(80, 60, 0, render.PixelRGBResv8BitPerColor)
	assert.NoError(t, state.Initialize(config))

	assert.Equal(t, unix.ENOENT, h.ClearDesktopBgImage().Error)

	res := h.SetDesktopBgImage(1, 1, []byte{1, 2, 3})
	assert.True(t, res.OK())
	assert.True(t, h.ClearDesktopBgImage().OK())

	assert.Equal(t, unix.EINVAL, h.SetDesktopBgImage(641, 1, make([]byte, 641*3)).Error)
	assert.Equal(t, unix.EINVAL, h.SetDesktopBgImage(2, 2, []byte{1}).Error)
	assert.Equal(t, unix.EINVAL, h.SetDesktopBgImage(0xFFFFFFFF, 1, nil).Error)
	assert.Equal(t, unix.EINVAL, h.SetDesktopBgImage(0, 0, nil).Error)
}

func TestErrno(t *testing.T) {
	assert.Equal(t, unix.Errno(0), sysapi.Errno(nil))
	assert.Equal(t, unix.EIO, sysapi.Errno(errors.New("boom")))
	assert.Equal(t, unix.EINVAL, sysapi.Errno(graphics.ErrImageTooLarge))
}
