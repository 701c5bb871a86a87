package geom

// Alignment names a reference position on a rectangle: its center, an
// edge midpoint, or a corner. Align pins that position of one rectangle
// to the same position of another.
//
// The nine values are the cross product of three horizontal choices
// (left, centered, right) and three vertical choices (bottom, centered,
// top); AlignCenter, AlignTop, AlignBottom, AlignLeft and AlignRight are
// the cases centered on the unnamed axis.
type Alignment int

const (
	// AlignCenter pins the centers of both rectangles together (default).
	AlignCenter Alignment = iota

	// AlignTop pins the middle of the top edges together.
	AlignTop

	// AlignTopLeft pins the top-left corners together.
	AlignTopLeft

	// AlignTopRight pins the top-right corners together.
	AlignTopRight

	// AlignLeft pins the middle of the left edges together.
	AlignLeft

	// AlignBottom pins the middle of the bottom edges together.
	AlignBottom

	// AlignBottomLeft pins the bottom-left corners together.
	AlignBottomLeft

	// AlignBottomRight pins the bottom-right corners together.
	AlignBottomRight

	// AlignRight pins the middle of the right edges together.
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignTop:
		return "Top"
	case AlignTopLeft:
		return "TopLeft"
	case AlignTopRight:
		return "TopRight"
	case AlignLeft:
		return "Left"
	case AlignBottom:
		return "Bottom"
	case AlignBottomLeft:
		return "BottomLeft"
	case AlignBottomRight:
		return "BottomRight"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Align repositions alignee so that its reference position named by a
// coincides with the same reference position of aligner. The result has
// alignee's size and a newly computed origin; neither input is modified.
//
// The two axes are independent: AlignLeft, for example, pins the left
// edges and centers vertically. Any finite rectangles are valid input,
// including zero or negative sizes, which the arithmetic treats
// literally. Out-of-range alignment values behave as AlignCenter.
func Align(alignee, aligner Rect, a Alignment) Rect {
	return Rect{
		Origin: Point{
			X: alignX(alignee, aligner, a),
			Y: alignY(alignee, aligner, a),
		},
		Size: alignee.Size,
	}
}

// alignX computes the aligned origin x-coordinate.
func alignX(alignee, aligner Rect, a Alignment) float64 {
	switch a {
	case AlignLeft, AlignTopLeft, AlignBottomLeft:
		return aligner.MinX()
	case AlignRight, AlignTopRight, AlignBottomRight:
		return aligner.MaxX() - alignee.Width()
	default:
		return aligner.MidX() - alignee.Width()/2
	}
}

// alignY computes the aligned origin y-coordinate.
func alignY(alignee, aligner Rect, a Alignment) float64 {
	switch a {
	case AlignBottom, AlignBottomLeft, AlignBottomRight:
		return aligner.MinY()
	case AlignTop, AlignTopLeft, AlignTopRight:
		return aligner.MaxY() - alignee.Height()
	default:
		return aligner.MidY() - alignee.Height()/2
	}
}
