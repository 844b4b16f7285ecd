package render_test

import (
	"testing"

	"github.com/rook-computer/deskfb/internal/geom"
	"github.com/rook-computer/deskfb/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onOutline(x, y int) bool {
	if x < 10 || x > 39 || y < 760 || y > 789 {
		return false
	}
	return x == 10 || x == 39 || y == 760 || y == 789
}

func expectedDesktop(x, y int) render.Color {
	switch {
	case onOutline(x, y):
		return render.StartWidgetColor
	case y >= 750 && x < 256:
		return render.TaskbarSegmentColor
	case y >= 750:
		return render.TaskbarColor
	}
	return render.DesktopBGColor
}

func TestDrawDesktopLayout(t *testing.T) {
	for _, format := range []render.PixelFormat{render.PixelRGBResv8BitPerColor, render.PixelBGRResv8BitPerColor} {
		t.Run(format.String(), func(t *testing.T) {
			config := render.NewMemoryConfig(1280, 800, 1312, format)
			w, err := render.NewPixelWriter(config)
			require.NoError(t, err)

			render.DrawDesktop(w, nil)

			snap := render.Snapshot(config)
			mismatches := 0
			for y := 0; y < 800; y++ {
				for x := 0; x < 1280; x++ {
					got := snap.RGBAAt(x, y)
					want := expectedDesktop(x, y)
					if got.R != want.R || got.G != want.G || got.B != want.B {
						mismatches++
					}
				}
			}
			assert.Zero(t, mismatches)
			assert.Equal(t, render.Color{R: 45, G: 30, B: 110}, render.ReadPixel(config, geom.Vec(640, 400)))
			assert.Equal(t, render.Color{R: 1, G: 8, B: 17}, render.ReadPixel(config, geom.Vec(1000, 799)))
			assert.Equal(t, render.Color{R: 80, G: 80, B: 80}, render.ReadPixel(config, geom.Vec(255, 750)))
			assert.Equal(t, render.Color{R: 160, G: 160, B: 160}, render.ReadPixel(config, geom.Vec(10, 760)))
			assert.Equal(t, render.Color{R: 80, G: 80, B: 80}, render.ReadPixel(config, geom.Vec(20, 770)))
		})
	}
}

func TestDrawDesktopStretchesBackground(t *testing.T) {
	config := render.NewMemoryConfig(8, 54, 0, render.PixelRGBResv8BitPerColor)
	w, err := render.NewPixelWriter(config)
	require.NoError(t, err)

	red := render.Color{R: 255}
	blue := render.Color{B: 255}
	// 2x1 image: left red, right blue.
	bg := render.NewBackgroundImage(2, 1, []byte{255, 0, 0, 0, 0, 255}, render.SampleNearest)
	render.DrawDesktop(w, bg)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := red
			if x >= 4 {
				want = blue
			}
			assert.Equal(t, want, render.ReadPixel(config, geom.Vec(x, y)), "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, render.TaskbarColor, render.ReadPixel(config, geom.Vec(7, 4)))
}

func TestDrawDesktopBackgroundAreaOnlyCoversTopRegion(t *testing.T) {
	config := render.NewMemoryConfig(100, 120, 0, render.PixelRGBResv8BitPerColor)
	w := newRecorder(100, 120)
	bg := render.NewBackgroundImage(3, 3, synthetic(3, 3), render.SampleCompat)
	render.DrawDesktop(w, bg)
	for p := range w.writes {
		assert.True(t, geom.Contains(config.Bounds(), geom.Rectangle[int]{Pos: p, Size: geom.Vec(1, 1)}), "%v", p)
	}
	assert.Len(t, w.writes, 100*120)
}

func TestDrawDesktopSmallScreens(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {30, 30}, {60, 49}, {5, 80}, {0, 0}} {
		config := render.NewMemoryConfig(size[0], size[1], 0, render.PixelRGBResv8BitPerColor)
		w, err := render.NewPixelWriter(config)
		require.NoError(t, err)
		assert.NotPanics(t, func() { render.DrawDesktop(w, nil) }, "%v", size)
	}
}
