// Package graphics owns the screen: the frame-buffer description, the pixel
// writer chosen for it and the optional desktop background. All access goes
// through State, which serialises redraws against background changes.
package graphics

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/rook-computer/deskfb/internal/geom"
	"github.com/rook-computer/deskfb/internal/render"
)

var (
	ErrNotInitialized   = errors.New("graphics not initialized")
	ErrImageTooLarge    = fmt.Errorf("background image exceeds %dx%d", render.MaxBackgroundWidth, render.MaxBackgroundHeight)
	ErrInvalidImageSize = errors.New("background image size must be positive")
	ErrShortImageData   = errors.New("background image data is shorter than width*height*3")
	ErrNoBackground     = errors.New("no background image installed")
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// Status is a point-in-time view of the desktop.
type Status struct {
	Initialized      bool
	Screen           geom.Vector2D[int]
	PixelFormat      render.PixelFormat
	Background       bool
	BackgroundWidth  int
	BackgroundHeight int
	Redraws          uint64
}

// State is the graphics context. The zero value is unusable until Initialize.
type State struct {
	Logger logger

	mu         sync.RWMutex
	sampling   render.SampleMode
	config     render.FrameBufferConfig
	writer     render.PixelWriter
	background *render.BackgroundImage
	redraws    uint64
}

func New(log logger) *State {
	if log == nil {
		log = noopLogger{}
	}
	return &State{Logger: log}
}

func (s *State) log() logger {
	if s.Logger == nil {
		return noopLogger{}
	}
	return s.Logger
}

// SetSampling selects the resampling rule for backgrounds installed afterwards.
func (s *State) SetSampling(mode render.SampleMode) {
	s.mu.Lock()
	s.sampling = mode
	s.mu.Unlock()
}

// Initialize adopts config, drops any background and draws the desktop once.
// An unsupported pixel format leaves the state untouched and must be treated
// as fatal by the caller.
func (s *State) Initialize(config render.FrameBufferConfig) error {
	writer, err := render.NewPixelWriter(config)
	if err != nil {
		s.log().Errorf("graphics", "initialize: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = config
	s.background = nil
	s.writer = writer
	s.drawLocked()
	s.log().Infof("graphics", "initialized %dx%d stride=%d format=%v",
		config.HorizontalResolution, config.VerticalResolution, config.PixelsPerScanLine, config.PixelFormat)
	return nil
}

// InstallBackground replaces the background with a width x height image
// decoded from RGB triplets and redraws. Rejected requests change nothing.
func (s *State) InstallBackground(width, height int, data []byte) error {
	if width > render.MaxBackgroundWidth || height > render.MaxBackgroundHeight {
		return fmt.Errorf("%w: got %dx%d", ErrImageTooLarge, width, height)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidImageSize, width, height)
	}
	if need := width * height * 3; len(data) < need {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrShortImageData, len(data), need)
	}

	s.mu.RLock()
	ready := s.writer != nil
	mode := s.sampling
	s.mu.RUnlock()
	if !ready {
		return ErrNotInitialized
	}

	img := render.NewBackgroundImage(width, height, data, mode)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = img
	s.drawLocked()
	s.log().Infof("graphics", "background installed %dx%d sampling=%v", width, height, mode)
	return nil
}

// ClearBackground removes the background and redraws.
func (s *State) ClearBackground() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writer == nil {
		return ErrNotInitialized
	}
	if s.background == nil {
		return ErrNoBackground
	}
	s.background = nil
	s.drawLocked()
	s.log().Infof("graphics", "background cleared")
	return nil
}

// Redraw repaints the full desktop.
func (s *State) Redraw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writer == nil {
		return ErrNotInitialized
	}
	s.drawLocked()
	return nil
}

func (s *State) drawLocked() {
	render.DrawDesktop(s.writer, s.background)
	s.redraws++
}

// ScreenSize is the visible resolution; zero before Initialize.
func (s *State) ScreenSize() geom.Vector2D[int] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return geom.Vec(s.config.HorizontalResolution, s.config.VerticalResolution)
}

// Config returns the adopted frame-buffer description.
func (s *State) Config() render.FrameBufferConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *State) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{
		Initialized: s.writer != nil,
		Screen:      geom.Vec(s.config.HorizontalResolution, s.config.VerticalResolution),
		PixelFormat: s.config.PixelFormat,
		Redraws:     s.redraws,
	}
	if s.background != nil {
		st.Background = true
		st.BackgroundWidth = s.background.Width()
		st.BackgroundHeight = s.background.Height()
	}
	return st
}

// Snapshot reads the visible screen back out of frame-buffer memory.
func (s *State) Snapshot() (image.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.writer == nil {
		return nil, ErrNotInitialized
	}
	return render.Snapshot(s.config), nil
}
