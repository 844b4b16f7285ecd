// Package geom holds the small value types the compositor draws with.
package geom

// Number is the set of scalar types a vector can be built from.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// Vector2D is a point or a size.
type Vector2D[T Number] struct {
	X, Y T
}

// Vec is shorthand for Vector2D[T]{x, y}.
func Vec[T Number](x, y T) Vector2D[T] { return Vector2D[T]{X: x, Y: y} }

func (v Vector2D[T]) Add(o Vector2D[T]) Vector2D[T] { return Vector2D[T]{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector2D[T]) Sub(o Vector2D[T]) Vector2D[T] { return Vector2D[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// ElementMax returns the component-wise maximum.
func ElementMax[T Number](a, b Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}

// ElementMin returns the component-wise minimum.
func ElementMin[T Number](a, b Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

// Convert changes the scalar type of v.
func Convert[T, U Number](v Vector2D[U]) Vector2D[T] {
	return Vector2D[T]{X: T(v.X), Y: T(v.Y)}
}

// Rectangle is an axis-aligned box anchored at Pos.
type Rectangle[T Number] struct {
	Pos, Size Vector2D[T]
}

// Rect builds a rectangle from its position and size components.
func Rect[T Number](x, y, width, height T) Rectangle[T] {
	return Rectangle[T]{Pos: Vec(x, y), Size: Vec(width, height)}
}

// End is the exclusive bottom-right corner.
func (r Rectangle[T]) End() Vector2D[T] { return r.Pos.Add(r.Size) }

// Empty reports whether the rectangle covers no pixels.
func (r Rectangle[T]) Empty() bool { return r.Size.X <= 0 || r.Size.Y <= 0 }

// Intersect returns the overlap of a and b expressed in a's scalar type.
// Rectangles that are apart on either axis give the zero rectangle.
// Rectangles that only touch give a zero-sized rectangle at the contact point.
func Intersect[T, U Number](a Rectangle[T], b Rectangle[U]) Rectangle[T] {
	bt := Rectangle[T]{Pos: Convert[T](b.Pos), Size: Convert[T](b.Size)}
	aEnd := a.End()
	bEnd := bt.End()
	if aEnd.X < bt.Pos.X || aEnd.Y < bt.Pos.Y || bEnd.X < a.Pos.X || bEnd.Y < a.Pos.Y {
		return Rectangle[T]{}
	}
	pos := ElementMax(a.Pos, bt.Pos)
	return Rectangle[T]{Pos: pos, Size: ElementMin(aEnd, bEnd).Sub(pos)}
}
