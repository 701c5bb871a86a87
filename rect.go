package geom

// Rect represents an axis-aligned rectangle in origin+size form.
// Origin is the lower-left corner (Y increases upward).
type Rect struct {
	Origin Point
	Size   Size
}

// Rt is a convenience function to create a Rect from origin and size
// components.
func Rt(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Size.Width
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Size.Height
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 {
	return r.Origin.X
}

// MidX returns the x-coordinate of the vertical center line.
func (r Rect) MidX() float64 {
	return r.Origin.X + r.Size.Width/2
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.Origin.X + r.Size.Width
}

// MinY returns the y-coordinate of the bottom edge.
func (r Rect) MinY() float64 {
	return r.Origin.Y
}

// MidY returns the y-coordinate of the horizontal center line.
func (r Rect) MidY() float64 {
	return r.Origin.Y + r.Size.Height/2
}

// MaxY returns the y-coordinate of the top edge.
func (r Rect) MaxY() float64 {
	return r.Origin.Y + r.Size.Height
}

// MidLeft returns the middle of the left side of the rectangle.
func (r Rect) MidLeft() Point {
	return Point{X: r.MinX(), Y: r.MidY()}
}

// MidRight returns the middle of the right side of the rectangle.
func (r Rect) MidRight() Point {
	return Point{X: r.MaxX(), Y: r.MidY()}
}

// MidTop returns the middle of the top side of the rectangle.
func (r Rect) MidTop() Point {
	return Point{X: r.MidX(), Y: r.MaxY()}
}

// MidBottom returns the middle of the bottom side of the rectangle.
func (r Rect) MidBottom() Point {
	return Point{X: r.MidX(), Y: r.MinY()}
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Scale returns the rectangle with its width and height multiplied by
// the given factors. The origin is unchanged.
func (r Rect) Scale(xScale, yScale float64) Rect {
	return Rect{Origin: r.Origin, Size: r.Size.Scale(xScale, yScale)}
}

// Translate returns the rectangle moved by the given displacement.
func (r Rect) Translate(d Point) Rect {
	return Rect{Origin: r.Origin.Add(d), Size: r.Size}
}

// Approx returns true if two rectangles are approximately equal within
// epsilon, comparing origins and sizes component-wise.
func (r Rect) Approx(q Rect, epsilon float64) bool {
	return r.Origin.Approx(q.Origin, epsilon) && r.Size.Approx(q.Size, epsilon)
}
