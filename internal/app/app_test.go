package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/deskfb/internal/app"
	"github.com/rook-computer/deskfb/internal/geom"
	"github.com/rook-computer/deskfb/internal/render"
)

func memoryApp(display *app.MemoryDisplay) *app.App {
	a := app.New(nil, nil)
	a.OpenDisplay = func(string) (app.Display, error) { return display, nil }
	return a
}

func TestStartDrawsAndExits(t *testing.T) {
	display := app.NewMemoryDisplay(200, 150, 0, render.PixelBGRResv8BitPerColor)
	a := memoryApp(display)

	done := make(chan error, 1)
	go func() { done <- a.Start(context.Background()) }()

	require.Eventually(t, func() bool { return a.Graphics.Status().Initialized }, time.Second, 5*time.Millisecond)
	assert.Equal(t, render.DesktopBGColor, render.ReadPixel(display.Config, geom.Vec(5, 5)))

	a.Exit(nil)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("app did not exit")
	}
}

func TestStartStopsOnContext(t *testing.T) {
	a := memoryApp(app.NewMemoryDisplay(64, 64, 0, render.PixelRGBResv8BitPerColor))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Start(ctx), context.Canceled)
}

func TestStartFailsOnUnsupportedFormat(t *testing.T) {
	a := memoryApp(app.NewMemoryDisplay(64, 64, 0, render.PixelFormat(9)))
	err := a.Start(context.Background())
	assert.ErrorIs(t, err, render.ErrUnsupportedPixelFormat)
}

func TestStartFailsWhenDisplayMissing(t *testing.T) {
	a := app.New(nil, nil)
	boom := errors.New("no such device")
	a.OpenDisplay = func(string) (app.Display, error) { return nil, boom }
	assert.ErrorIs(t, a.Start(context.Background()), boom)
}

func TestFileLogger(t *testing.T) {
	var buf bytes.Buffer
	l := app.NewFileLogger(&buf)
	l.Infof("graphics", "initialized %dx%d", 640, 480)
	l.Errorf("api", "bad %s", "image")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO] graphics: initialized 640x480")
	assert.Contains(t, lines[1], "[ERROR] api: bad image")
}
