package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rook-computer/deskfb/internal/fbdev"
	"github.com/rook-computer/deskfb/internal/graphics"
	"github.com/rook-computer/deskfb/internal/render"
	"github.com/rook-computer/deskfb/internal/sysapi"
	"github.com/rook-computer/deskfb/internal/system"
	"github.com/rook-computer/deskfb/internal/web"
)

// Display is an opened frame buffer. Displays that can read the screen back
// themselves also implement web.ScreenCapturer; the rest are captured from
// the graphics state.
type Display interface {
	FrameBuffer() render.FrameBufferConfig
	Close() error
}

// MemoryDisplay is a frame buffer in ordinary memory.
type MemoryDisplay struct {
	Config render.FrameBufferConfig
}

func NewMemoryDisplay(width, height, stride int, format render.PixelFormat) *MemoryDisplay {
	return &MemoryDisplay{Config: render.NewMemoryConfig(width, height, stride, format)}
}

func (d *MemoryDisplay) FrameBuffer() render.FrameBufferConfig { return d.Config }
func (d *MemoryDisplay) Close() error                          { return nil }

type App struct {
	Graphics *graphics.State
	Server   *web.HTTPServer
	Logger   Logger

	// FBPath is the fbdev node to draw on.
	FBPath   string
	Sampling render.SampleMode
	// ExitKey is the evdev key code that stops the daemon; zero disables it.
	ExitKey uint16
	// Console toggles KD_GRAPHICS and cursor hiding on the active VT.
	Console bool

	// OpenDisplay defaults to fbdev.Open.
	OpenDisplay func(path string) (Display, error)

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(server *web.HTTPServer, logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &App{
		Graphics: graphics.New(logger),
		Server:   server,
		Logger:   logger,
		FBPath:   "/dev/fb0",
		exitCh:   make(chan error, 1),
	}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start opens the display, draws the desktop and serves the API until ctx is
// done or Exit is called. A frame buffer with an unsupported pixel format is
// a fatal error.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Graphics == nil {
		app.Graphics = graphics.New(app.Logger)
	}

	open := app.OpenDisplay
	if open == nil {
		open = func(path string) (Display, error) { return fbdev.Open(path) }
	}
	display, err := open(app.FBPath)
	if err != nil {
		app.Logger.Errorf("fb", "open %s: %v", app.FBPath, err)
		return err
	}
	defer display.Close()
	config := display.FrameBuffer()
	app.Logger.Infof("fb", "framebuffer open, bounds=%dx%d stride=%d format=%v",
		config.HorizontalResolution, config.VerticalResolution, config.PixelsPerScanLine, config.PixelFormat)

	if app.Console {
		_ = system.SetGraphicsModeWithLog(app.Logger)
		_ = system.HideCursorWithLog(app.Logger)
		defer func() { _ = system.ShowCursorWithLog(app.Logger); _ = system.RestoreTextModeWithLog(app.Logger) }()
	}

	app.Graphics.SetSampling(app.Sampling)
	if err := app.Graphics.Initialize(config); err != nil {
		return fmt.Errorf("initialize graphics: %w", err)
	}

	var screen web.ScreenCapturer = web.CaptureFunc(app.Graphics.Snapshot)
	if c, ok := display.(web.ScreenCapturer); ok {
		screen = c
	}

	if app.Server != nil {
		app.Server.Logger = app.Logger
		app.Server.Handler = web.NewDefaultMux(web.APIV1Config{Deps: web.APIV1Deps{
			Calls:   sysapi.New(app.Graphics),
			Desktop: app.Graphics,
			Screen:  screen,
			Logger:  app.Logger,
		}})
		if err := app.Server.Start(ctx); err != nil {
			app.Logger.Errorf("app", "web server start error: %v", err)
			return err
		}
		defer app.Server.Stop()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if app.ExitKey != 0 {
		system.StartExitOnKey(runCtx, app.Logger, app.ExitKey, func() { app.Exit(nil) })
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-app.exitCh:
		return err
	}
}
