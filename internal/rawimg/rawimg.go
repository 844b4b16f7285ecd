// Package rawimg reads and writes the raw background image format: an 8 byte
// header holding little-endian uint32 width and height, followed by
// width*height RGB triplets in row-major order with no padding.
package rawimg

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	HeaderSize = 8

	// MaxPayload bounds what Decode will allocate: a full 640x480 image.
	MaxPayload = 640 * 480 * 3
)

var (
	ErrHeaderTruncated  = errors.New("raw image header truncated")
	ErrPayloadTruncated = errors.New("raw image payload truncated")
	ErrPayloadTooLarge  = errors.New("raw image payload too large")
)

// Image is a decoded raw image.
type Image struct {
	Width  uint32
	Height uint32
	Pix    []byte
}

// PayloadSize is the number of pixel bytes for a width x height image.
func PayloadSize(width, height uint32) uint64 {
	return uint64(width) * uint64(height) * 3
}

// Decode reads one image from r.
func Decode(r io.Reader) (*Image, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrHeaderTruncated
		}
		return nil, err
	}
	img := &Image{
		Width:  binary.LittleEndian.Uint32(hdr[0:4]),
		Height: binary.LittleEndian.Uint32(hdr[4:8]),
	}
	size := PayloadSize(img.Width, img.Height)
	if size > MaxPayload {
		return nil, fmt.Errorf("%w: %dx%d", ErrPayloadTooLarge, img.Width, img.Height)
	}
	img.Pix = make([]byte, size)
	if _, err := io.ReadFull(r, img.Pix); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: want %d bytes", ErrPayloadTruncated, size)
		}
		return nil, err
	}
	return img, nil
}

// Encode writes img to w.
func Encode(w io.Writer, img *Image) error {
	if uint64(len(img.Pix)) != PayloadSize(img.Width, img.Height) {
		return fmt.Errorf("raw image: %d bytes of pixels for %dx%d", len(img.Pix), img.Width, img.Height)
	}
	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], img.Width)
	binary.LittleEndian.PutUint32(hdr[4:8], img.Height)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(img.Pix)
	return err
}

// ReadFile decodes the raw image stored at path.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// WriteFile stores img at path.
func WriteFile(path string, img *Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := Encode(bw, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
