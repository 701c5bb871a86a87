package geom

import "math"

// Size represents a 2D extent.
// Width and Height may be negative; no operation in this package clamps
// them, so callers that need non-negative extents must normalize first
// (see BoundsOf).
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Scale returns the size with each dimension multiplied by its factor.
func (s Size) Scale(xScale, yScale float64) Size {
	return Size{Width: s.Width * xScale, Height: s.Height * yScale}
}

// AspectRatio returns width divided by height.
func (s Size) AspectRatio() float64 {
	return s.Width / s.Height
}

// IsEmpty returns true if either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Rect returns the rectangle of this size anchored at the origin.
func (s Size) Rect() Rect {
	return Rect{Size: s}
}

// Approx returns true if two sizes are approximately equal within epsilon.
func (s Size) Approx(t Size, epsilon float64) bool {
	return math.Abs(s.Width-t.Width) < epsilon && math.Abs(s.Height-t.Height) < epsilon
}
