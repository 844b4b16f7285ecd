package web

import (
	"image"

	"github.com/rook-computer/deskfb/internal/graphics"
	"github.com/rook-computer/deskfb/internal/sysapi"
)

// BackgroundCalls is the call boundary the API forwards to.
//
// The concrete implementation is *sysapi.Handler.
type BackgroundCalls interface {
	SetDesktopBgImage(width, height uint32, data []byte) sysapi.Result
	ClearDesktopBgImage() sysapi.Result
}

// DesktopStatus reports the current desktop state.
type DesktopStatus interface {
	Status() graphics.Status
}

// ScreenCapturer reads back the visible screen.
//
// The device daemon captures through fbdev; the simulator snapshots memory.
type ScreenCapturer interface {
	Capture() (image.Image, error)
}

// sysLogger matches the logging shape used across the daemon.
type sysLogger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopSysLogger struct{}

func (noopSysLogger) Infof(string, string, ...interface{})  {}
func (noopSysLogger) Errorf(string, string, ...interface{}) {}

type APIV1Deps struct {
	Calls   BackgroundCalls
	Desktop DesktopStatus
	Screen  ScreenCapturer
	Logger  sysLogger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Logger == nil {
		out.Logger = noopSysLogger{}
	}
	return out
}

// CaptureFunc adapts a function to ScreenCapturer.
type CaptureFunc func() (image.Image, error)

func (f CaptureFunc) Capture() (image.Image, error) { return f() }
