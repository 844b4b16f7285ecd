package render

import "github.com/rook-computer/deskfb/internal/geom"

// Desktop layout in pixels.
const (
	TaskbarHeight      = 50
	StartWidgetSize    = 30
	StartWidgetOffsetX = 10
	StartWidgetOffsetY = 40 // from the bottom edge to the widget's top row
)

// DrawDesktop repaints the whole screen. bg may be nil, in which case the
// background area is filled with DesktopBGColor. Later steps paint over
// earlier ones.
func DrawDesktop(w PixelWriter, bg *BackgroundImage) {
	width, height := w.Width(), w.Height()
	screen := geom.Rect(0, 0, width, height)

	background, _ := geom.SplitHorizontal(screen, height-TaskbarHeight)
	drawBackground(w, background, bg)

	taskbar := geom.Rect(0, height-TaskbarHeight, width, TaskbarHeight)
	fillClipped(w, screen, taskbar, TaskbarColor)
	segment, _ := geom.SplitVertical(taskbar, width/5)
	fillClipped(w, screen, segment, TaskbarSegmentColor)

	widget := geom.Rect(StartWidgetOffsetX, height-StartWidgetOffsetY, StartWidgetSize, StartWidgetSize)
	if geom.Contains(screen, widget) {
		DrawRectangle(w, widget.Pos, widget.Size, StartWidgetColor)
	}
}

func drawBackground(w PixelWriter, area geom.Rectangle[int], bg *BackgroundImage) {
	if bg == nil {
		FillRectangle(w, area.Pos, area.Size, DesktopBGColor)
		return
	}
	for y := 0; y < area.Size.Y; y++ {
		for x := 0; x < area.Size.X; x++ {
			w.Write(geom.Vec(x, y), bg.Sample(x, y, area.Size.X, area.Size.Y))
		}
	}
}

func fillClipped(w PixelWriter, screen, r geom.Rectangle[int], c Color) {
	r = geom.Intersect(r, screen)
	FillRectangle(w, r.Pos, r.Size, c)
}
