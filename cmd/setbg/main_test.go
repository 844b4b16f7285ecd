package main

import (
	"bytes"
	"image"
	"image/png"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/deskfb/internal/graphics"
	"github.com/rook-computer/deskfb/internal/render"
	"github.com/rook-computer/deskfb/internal/sysapi"
	"github.com/rook-computer/deskfb/internal/web"
)

func startDaemon(t *testing.T) (addr string, state *graphics.State) {
	t.Helper()
	state = graphics.New(nil)
	require.NoError(t, state.Initialize(render.NewMemoryConfig(64, 64, 0, render.PixelRGBResv8BitPerColor)))
	srv := httptest.NewServer(web.NewDefaultMux(web.APIV1Config{Deps: web.APIV1Deps{
		Calls:   sysapi.New(state),
		Desktop: state,
	}}))
	t.Cleanup(srv.Close)
	return srv.Listener.Addr().String(), state
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertSetAndClear(t *testing.T) {
	addr, state := startDaemon(t)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "wall.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	require.NoError(t, f.Close())

	rawPath := filepath.Join(dir, "wall.img")
	out, err := run(t, "convert", pngPath, rawPath)
	require.NoError(t, err)
	assert.Contains(t, out, "(4x3) was generated")

	_, err = run(t, "--addr", addr, rawPath)
	require.NoError(t, err)
	st := state.Status()
	assert.True(t, st.Background)
	assert.Equal(t, 4, st.BackgroundWidth)

	_, err = run(t, "--addr", addr, "-c")
	require.NoError(t, err)
	assert.False(t, state.Status().Background)

	_, err = run(t, "--addr", addr, "-c")
	var ce *callError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Errno) // ENOENT
}

func TestSetMissingFile(t *testing.T) {
	addr, _ := startDaemon(t)
	_, err := run(t, "--addr", addr, filepath.Join(t.TempDir(), "nope.img"))
	assert.ErrorContains(t, err, "failed to load image")
}
