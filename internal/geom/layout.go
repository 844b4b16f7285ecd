package geom

// SplitHorizontal splits rect into top and bottom parts.
// topHeight is clamped to [0, rect.Size.Y].
func SplitHorizontal(rect Rectangle[int], topHeight int) (top, bottom Rectangle[int]) {
	topHeight = clamp(topHeight, 0, max(rect.Size.Y, 0))
	top = Rect(rect.Pos.X, rect.Pos.Y, rect.Size.X, topHeight)
	bottom = Rect(rect.Pos.X, rect.Pos.Y+topHeight, rect.Size.X, rect.Size.Y-topHeight)
	return top, bottom
}

// SplitVertical splits rect into left and right parts.
// leftWidth is clamped to [0, rect.Size.X].
func SplitVertical(rect Rectangle[int], leftWidth int) (left, right Rectangle[int]) {
	leftWidth = clamp(leftWidth, 0, max(rect.Size.X, 0))
	left = Rect(rect.Pos.X, rect.Pos.Y, leftWidth, rect.Size.Y)
	right = Rect(rect.Pos.X+leftWidth, rect.Pos.Y, rect.Size.X-leftWidth, rect.Size.Y)
	return left, right
}

// Contains reports whether inner lies completely within outer.
func Contains(outer, inner Rectangle[int]) bool {
	return inner.Pos.X >= outer.Pos.X && inner.Pos.Y >= outer.Pos.Y &&
		inner.End().X <= outer.End().X && inner.End().Y <= outer.End().Y
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
