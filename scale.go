package geom

import "math"

// Scaling selects how ScaleToSize maps a source rectangle's dimensions
// onto a target size.
type Scaling int

const (
	// ScaleProportionally scales the source to the largest size of the
	// same aspect ratio that fits inside the target (default).
	ScaleProportionally Scaling = iota

	// ScaleToFit forces the source to the target size exactly,
	// distorting the aspect ratio if necessary.
	ScaleToFit

	// ScaleNone keeps the source size unchanged; the rectangle is only
	// re-centered, so a source larger than the target overhangs it.
	ScaleNone
)

// String returns the scaling mode name.
func (s Scaling) String() string {
	switch s {
	case ScaleProportionally:
		return "Proportionally"
	case ScaleToFit:
		return "ToFit"
	case ScaleNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ScaleToSize scales r according to mode and centers the result over a
// rectangle of the target size anchored at the origin. The original
// origin of r is discarded: the result is always re-based into the
// zero-origin target box, matching "fit content into a box" semantics
// rather than resizing in place. This holds for ScaleNone too — the
// unscaled rectangle is still re-centered.
//
// ScaleProportionally divides by the source dimensions, so r must have
// strictly positive width and height in that mode; a zero dimension
// produces an infinite or NaN scale factor that propagates into the
// result rather than being reported as an error.
func ScaleToSize(r Rect, target Size, mode Scaling) Rect {
	size := r.Size
	switch mode {
	case ScaleToFit:
		size = target
	case ScaleProportionally:
		s := math.Min(target.Width/size.Width, target.Height/size.Height)
		size = size.Scale(s, s)
	}
	return Align(size.Rect(), target.Rect(), AlignCenter)
}
