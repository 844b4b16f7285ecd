package render_test

import (
	"testing"

	"github.com/rook-computer/deskfb/internal/geom"
	"github.com/rook-computer/deskfb/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterChannelOrder(t *testing.T) {
	c := render.Color{R: 0x11, G: 0x22, B: 0x33}
	tests := []struct {
		format render.PixelFormat
		want   []byte
	}{
		{render.PixelRGBResv8BitPerColor, []byte{0x11, 0x22, 0x33, 0xAA}},
		{render.PixelBGRResv8BitPerColor, []byte{0x33, 0x22, 0x11, 0xAA}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			config := render.NewMemoryConfig(4, 3, 0, tt.format)
			for i := range config.FrameBuffer {
				config.FrameBuffer[i] = 0xAA
			}
			w, err := render.NewPixelWriter(config)
			require.NoError(t, err)

			w.Write(geom.Vec(2, 1), c)

			off := 4 * (4*1 + 2)
			assert.Equal(t, tt.want, config.FrameBuffer[off:off+4])
			assert.Equal(t, c, render.ReadPixel(config, geom.Vec(2, 1)))
		})
	}
}

func TestWriterHonorsStride(t *testing.T) {
	config := render.NewMemoryConfig(3, 2, 8, render.PixelRGBResv8BitPerColor)
	w, err := render.NewPixelWriter(config)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Width())
	assert.Equal(t, 2, w.Height())

	w.Write(geom.Vec(0, 1), render.Color{R: 9, G: 8, B: 7})
	assert.Equal(t, []byte{9, 8, 7}, config.FrameBuffer[32:35])
	assert.Len(t, config.FrameBuffer, 4*8*2)
}

func TestNewPixelWriterRejectsUnknownFormat(t *testing.T) {
	config := render.NewMemoryConfig(2, 2, 0, render.PixelFormat(7))
	_, err := render.NewPixelWriter(config)
	assert.ErrorIs(t, err, render.ErrUnsupportedPixelFormat)
}

func TestParsePixelFormat(t *testing.T) {
	f, err := render.ParsePixelFormat("bgr")
	require.NoError(t, err)
	assert.Equal(t, render.PixelBGRResv8BitPerColor, f)

	_, err = render.ParsePixelFormat("yuv")
	assert.ErrorIs(t, err, render.ErrUnsupportedPixelFormat)
}

func TestToColor(t *testing.T) {
	assert.Equal(t, render.Color{R: 0x2d, G: 0x1e, B: 0x6e}, render.ToColor(0x2d1e6e))
	assert.Equal(t, render.DesktopBGColor, render.ToColor(0x2d1e6e))
}
