package render_test

import (
	"testing"

	"github.com/rook-computer/deskfb/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// synthetic returns triplets where every pixel's color encodes its position.
func synthetic(width, height int) []byte {
	data := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data = append(data, byte(x), byte(y), byte(x^y))
		}
	}
	return data
}

func pixelAt(x, y int) render.Color {
	return render.Color{R: byte(x), G: byte(y), B: byte(x ^ y)}
}

func TestNewBackgroundImageDecodesTriplets(t *testing.T) {
	img := render.NewBackgroundImage(5, 3, synthetic(5, 3), render.SampleCompat)
	assert.Equal(t, 5, img.Width())
	assert.Equal(t, 3, img.Height())
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, pixelAt(x, y), img.At(x, y))
		}
	}
}

func TestSampleNativeResolutionRoundTrip(t *testing.T) {
	const w, h = 7, 5
	img := render.NewBackgroundImage(w, h, synthetic(w, h), render.SampleNearest)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, pixelAt(x, y), img.Sample(x, y, w, h), "(%d,%d)", x, y)
		}
	}
}

func TestSampleCompatShiftsTowardHigherIndex(t *testing.T) {
	const w, h = 4, 4
	img := render.NewBackgroundImage(w, h, synthetic(w, h), render.SampleCompat)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := pixelAt(min(x+1, w-1), min(y+1, h-1))
			assert.Equal(t, want, img.Sample(x, y, w, h), "(%d,%d)", x, y)
		}
	}
}

func TestSampleUpscaleStaysInStoredRegion(t *testing.T) {
	for _, mode := range []render.SampleMode{render.SampleCompat, render.SampleNearest} {
		t.Run(mode.String(), func(t *testing.T) {
			img := render.NewBackgroundImage(2, 2, synthetic(2, 2), mode)
			stored := []render.Color{pixelAt(0, 0), pixelAt(1, 0), pixelAt(0, 1), pixelAt(1, 1)}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					assert.Contains(t, stored, img.Sample(x, y, 4, 4))
				}
			}
		})
	}
}

func TestSampleCompatMatchesBiasedRounding(t *testing.T) {
	img := render.NewBackgroundImage(2, 1, synthetic(2, 1), render.SampleCompat)
	// x=0 scales to 0.0 and x=1 to 0.5, both land on column 1;
	// x=2 and x=3 scale past the last column and clamp to it.
	for x := 0; x < 4; x++ {
		assert.Equal(t, pixelAt(1, 0), img.Sample(x, 0, 4, 1), "x=%d", x)
	}

	img = render.NewBackgroundImage(8, 1, synthetic(8, 1), render.SampleCompat)
	// 1/4*8 = 2.0 -> 3; 3/16*8 = 1.5 -> 2.
	assert.Equal(t, pixelAt(3, 0), img.Sample(1, 0, 4, 1))
	assert.Equal(t, pixelAt(2, 0), img.Sample(3, 0, 16, 1))
}

func TestSampleFullSizeImageDownscaleAndUpscale(t *testing.T) {
	w, h := render.MaxBackgroundWidth, render.MaxBackgroundHeight
	for _, mode := range []render.SampleMode{render.SampleCompat, render.SampleNearest} {
		img := render.NewBackgroundImage(w, h, synthetic(w, h), mode)
		for _, target := range [][2]int{{1280, 750}, {320, 190}, {w, h}} {
			assert.NotPanics(t, func() {
				img.Sample(0, 0, target[0], target[1])
				img.Sample(target[0]-1, target[1]-1, target[0], target[1])
			})
		}
	}
}

func TestParseSampleMode(t *testing.T) {
	m, err := render.ParseSampleMode("nearest")
	require.NoError(t, err)
	assert.Equal(t, render.SampleNearest, m)

	m, err = render.ParseSampleMode("")
	require.NoError(t, err)
	assert.Equal(t, render.SampleCompat, m)

	_, err = render.ParseSampleMode("bilinear")
	assert.Error(t, err)
}
