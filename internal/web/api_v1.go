package web

import (
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/deskfb/internal/rawimg"
	"github.com/rook-computer/deskfb/internal/sysapi"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Errno   int    `json:"errno,omitempty"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type backgroundResponse struct {
	Installed bool `json:"installed"`
	Width     int  `json:"width,omitempty"`
	Height    int  `json:"height,omitempty"`
}

type screenResponse struct {
	Initialized bool   `json:"initialized"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	PixelFormat string `json:"pixelFormat"`
	Redraws     uint64 `json:"redraws"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/background", func(w http.ResponseWriter, r *http.Request) { handleBackground(w, r, deps) })
	mux.HandleFunc("/screen", func(w http.ResponseWriter, r *http.Request) { handleScreen(w, r, deps) })
	mux.HandleFunc("/screen.png", func(w http.ResponseWriter, r *http.Request) { handleScreenPNG(w, r, deps) })
	return mux
}

func handleBackground(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	switch r.Method {
	case http.MethodGet:
		if deps.Desktop == nil {
			writeAPIError(w, http.StatusNotImplemented, "not_implemented", "desktop status not configured")
			return
		}
		st := deps.Desktop.Status()
		writeJSON(w, http.StatusOK, backgroundResponse{Installed: st.Background, Width: st.BackgroundWidth, Height: st.BackgroundHeight})
	case http.MethodPost:
		handleSetBackground(w, r, deps)
	case http.MethodDelete:
		if deps.Calls == nil {
			writeAPIError(w, http.StatusNotImplemented, "not_implemented", "background calls not configured")
			return
		}
		res := deps.Calls.ClearDesktopBgImage()
		if !res.OK() {
			deps.Logger.Errorf("api", "clear background: %v", res.Error)
			writeErrno(w, res.Error)
			return
		}
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	default:
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}

func handleSetBackground(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.Calls == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "background calls not configured")
		return
	}
	if err := requireContentLength(r); err != nil {
		writeAPIError(w, http.StatusLengthRequired, "length_required", err.Error())
		return
	}
	if r.ContentLength > rawimg.HeaderSize+rawimg.MaxPayload {
		writeAPIError(w, http.StatusRequestEntityTooLarge, "too_large", rawimg.ErrPayloadTooLarge.Error())
		return
	}

	img, err := rawimg.Decode(io.LimitReader(r.Body, r.ContentLength))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, rawimg.ErrPayloadTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeAPIError(w, status, "bad_image", err.Error())
		return
	}

	res := deps.Calls.SetDesktopBgImage(img.Width, img.Height, img.Pix)
	if !res.OK() {
		deps.Logger.Errorf("api", "set background %dx%d: %v", img.Width, img.Height, res.Error)
		writeErrno(w, res.Error)
		return
	}
	deps.Logger.Infof("api", "background set %dx%d", img.Width, img.Height)
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func handleScreen(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Desktop == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "desktop status not configured")
		return
	}
	st := deps.Desktop.Status()
	writeJSON(w, http.StatusOK, screenResponse{
		Initialized: st.Initialized,
		Width:       st.Screen.X,
		Height:      st.Screen.Y,
		PixelFormat: st.PixelFormat.String(),
		Redraws:     st.Redraws,
	})
}

func handleScreenPNG(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Screen == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "screen capture not configured")
		return
	}
	img, err := deps.Screen.Capture()
	if err != nil {
		writeAPIError(w, http.StatusServiceUnavailable, "capture_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, img); err != nil {
		deps.Logger.Errorf("api", "encode screen png: %v", err)
	}
}

func requireContentLength(r *http.Request) error {
	// Reject chunked/unknown length so the body size is known before decoding.
	if r.ContentLength <= 0 {
		return errLengthRequired
	}
	return nil
}

var errLengthRequired = &apiSimpleError{Message: "Content-Length header is required"}

type apiSimpleError struct{ Message string }

func (e *apiSimpleError) Error() string { return e.Message }

// errnoStatus maps a call result onto an HTTP status and error code.
func errnoStatus(errno unix.Errno) (int, string) {
	switch errno {
	case unix.EINVAL:
		return http.StatusUnprocessableEntity, "invalid_image"
	case unix.ENOENT:
		return http.StatusConflict, "no_background"
	case unix.ENODEV:
		return http.StatusServiceUnavailable, "not_initialized"
	}
	return http.StatusInternalServerError, "internal"
}

func writeErrno(w http.ResponseWriter, errno unix.Errno) {
	status, code := errnoStatus(errno)
	writeJSON(w, status, apiError{Error: code, Message: errno.Error(), Errno: int(errno)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}

var _ BackgroundCalls = (*sysapi.Handler)(nil)
