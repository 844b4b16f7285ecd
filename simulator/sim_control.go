package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/rook-computer/deskfb/internal/graphics"
	"github.com/rook-computer/deskfb/internal/render"
)

// ScreenSpec is the geometry of the simulated frame buffer.
type ScreenSpec struct {
	Width  int                `json:"width"`
	Height int                `json:"height"`
	Stride int                `json:"stride"`
	Format render.PixelFormat `json:"-"`
}

type SimControl struct {
	state *graphics.State

	mu      sync.Mutex
	startup ScreenSpec
	current ScreenSpec
}

func NewSimControl(state *graphics.State, startup ScreenSpec) *SimControl {
	return &SimControl{state: state, startup: startup, current: startup}
}

func (c *SimControl) Current() ScreenSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// ApplyScreen reallocates the simulated frame buffer and reinitialises
// graphics on it. The background is dropped, as on a real mode switch.
func (c *SimControl) ApplyScreen(spec ScreenSpec) error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", spec.Width, spec.Height)
	}
	if spec.Stride != 0 && spec.Stride < spec.Width {
		return fmt.Errorf("stride %d is narrower than width %d", spec.Stride, spec.Width)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.state.Initialize(render.NewMemoryConfig(spec.Width, spec.Height, spec.Stride, spec.Format)); err != nil {
		return err
	}
	c.current = spec
	return nil
}

func (c *SimControl) Reset() error {
	return c.ApplyScreen(c.startup)
}

type screenPatch struct {
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
	Stride *int    `json:"stride"`
	Format *string `json:"format"`
}

func registerSimEndpoints(mux *http.ServeMux, control *SimControl) {
	mux.HandleFunc("/sim/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		if err := control.Reset(); err != nil {
			writeSimError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeSimJSON(w, http.StatusOK, screenBody(control.Current()))
	})

	mux.HandleFunc("/sim/screen", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeSimJSON(w, http.StatusOK, screenBody(control.Current()))
		case http.MethodPost:
			var patch screenPatch
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				writeSimError(w, http.StatusBadRequest, "invalid json")
				return
			}
			spec := control.Current()
			if patch.Width != nil {
				spec.Width = *patch.Width
			}
			if patch.Height != nil {
				spec.Height = *patch.Height
			}
			if patch.Stride != nil {
				spec.Stride = *patch.Stride
			}
			if patch.Format != nil {
				f, err := render.ParsePixelFormat(*patch.Format)
				if err != nil {
					writeSimError(w, http.StatusBadRequest, err.Error())
					return
				}
				spec.Format = f
			}
			if err := control.ApplyScreen(spec); err != nil {
				writeSimError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeSimJSON(w, http.StatusOK, screenBody(spec))
		default:
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})
}

func screenBody(spec ScreenSpec) map[string]any {
	return map[string]any{"width": spec.Width, "height": spec.Height, "stride": spec.Stride, "format": spec.Format.String()}
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"error": message})
}
