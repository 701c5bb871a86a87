package geom

import (
	"image"
	"math"
)

// Bounds represents an axis-aligned rectangle in min/max-corner form,
// the convention used by renderers and by the standard library's image
// package. Min is the lower-left corner, Max the upper-right.
//
// Bounds and Rect describe the same rectangles in the same coordinate
// system; Rect.Bounds and Bounds.Rect convert between them with no axis
// flip or normalization.
type Bounds struct {
	Min, Max Point
}

// BoundsOf creates bounds from two corner points.
// The points are normalized so Min <= Max on both axes.
func BoundsOf(p, q Point) Bounds {
	return Bounds{
		Min: Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)},
		Max: Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)},
	}
}

// Bounds returns the min/max-corner form of the rectangle.
// No normalization is applied: a negative size yields Max < Min, which
// Rect converts back to the identical rectangle.
func (r Rect) Bounds() Bounds {
	return Bounds{
		Min: r.Origin,
		Max: Point{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y + r.Size.Height},
	}
}

// Rect returns the origin+size form of the bounds.
func (b Bounds) Rect() Rect {
	return Rect{
		Origin: b.Min,
		Size:   Size{Width: b.Max.X - b.Min.X, Height: b.Max.Y - b.Min.Y},
	}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Min: Point{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ImageRect returns the bounds as an integer pixel rectangle, rounding
// each coordinate to the nearest integer. The crossing to integer
// coordinates is lossy; use Rect/Bounds conversions when exactness
// matters.
func (b Bounds) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Round(b.Min.X)), int(math.Round(b.Min.Y)),
		int(math.Round(b.Max.X)), int(math.Round(b.Max.Y)),
	)
}

// RectFromImage converts an integer pixel rectangle to a Rect.
func RectFromImage(ir image.Rectangle) Rect {
	return Bounds{
		Min: Point{X: float64(ir.Min.X), Y: float64(ir.Min.Y)},
		Max: Point{X: float64(ir.Max.X), Y: float64(ir.Max.Y)},
	}.Rect()
}
