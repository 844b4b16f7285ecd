package render

import "github.com/rook-computer/deskfb/internal/geom"

// DrawRectangle draws a one pixel wide outline. A height of one draws a
// single row; an empty size draws nothing.
func DrawRectangle(w PixelWriter, pos, size geom.Vector2D[int], c Color) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	for dx := 0; dx < size.X; dx++ {
		w.Write(pos.Add(geom.Vec(dx, 0)), c)
		w.Write(pos.Add(geom.Vec(dx, size.Y-1)), c)
	}
	for dy := 1; dy < size.Y-1; dy++ {
		w.Write(pos.Add(geom.Vec(0, dy)), c)
		w.Write(pos.Add(geom.Vec(size.X-1, dy)), c)
	}
}

// FillRectangle paints every pixel of the rectangle.
func FillRectangle(w PixelWriter, pos, size geom.Vector2D[int], c Color) {
	for dy := 0; dy < size.Y; dy++ {
		for dx := 0; dx < size.X; dx++ {
			w.Write(pos.Add(geom.Vec(dx, dy)), c)
		}
	}
}
