package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rook-computer/deskfb/internal/rawimg"
)

// callError is a failed API call. Errno is the daemon's errno, when it sent one.
type callError struct {
	Status  int
	Code    string
	Message string
	Errno   int
}

func (e *callError) Error() string {
	if e.Errno != 0 {
		return fmt.Sprintf("error caused while processing image: %d (%s)", e.Errno, e.Message)
	}
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Code, e.Message, e.Status)
}

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(addr string) *client {
	return &client{baseURL: "http://" + addr + "/api/v1", http: &http.Client{Timeout: 30 * time.Second}}
}

func (c *client) setBackground(ctx context.Context, img *rawimg.Image) error {
	var body bytes.Buffer
	if err := rawimg.Encode(&body, img); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/background", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	return c.do(req)
}

func (c *client) clearBackground(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/background", nil)
	if err != nil {
		return err
	}
	return c.do(req)
}

func (c *client) do(req *http.Request) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Errno   int    `json:"errno"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &callError{Status: resp.StatusCode, Code: body.Error, Message: body.Message, Errno: body.Errno}
}
