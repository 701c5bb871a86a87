// Package geom provides 2D rectangle geometry helpers for Go.
//
// # Overview
//
// geom is a small pure-Go library of value-type 2D geometry: points,
// sizes and rectangles, rectangle reference points, rectangle-to-rectangle
// alignment, and scaling a rectangle to fit a target size. It grew out of
// layout code that kept re-deriving the same nine "pin this box to that
// box" formulas; Align and ScaleToSize are those formulas, written once.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	// Pin a 10x10 badge to the bottom-right of a 100x100 panel.
//	badge := geom.Rt(0, 0, 10, 10)
//	panel := geom.Rt(0, 0, 100, 100)
//	placed := geom.Align(badge, panel, geom.AlignBottomRight)
//
//	// Fit a 200x100 photo into a 50x50 thumbnail, preserving aspect.
//	thumb := geom.ScaleToSize(geom.Rt(0, 0, 200, 100),
//	    geom.Sz(50, 50), geom.ScaleProportionally)
//
// # Coordinate System
//
// Rectangles are axis-aligned with the origin at the lower-left corner:
//   - X increases right
//   - Y increases up
//   - Rect is origin+size; Bounds is the equivalent min/max-corner form
//
// Both forms share the same axis orientation, so converting between them
// (Rect.Bounds, Bounds.Rect) involves no axis flip: each direction is a
// plain corner/extent computation and the two are inverses of each other.
//
// # Values, Not Objects
//
// Every type is an immutable value; every operation returns a new value.
// Nothing in this package allocates, locks, or retains state, so all
// functions are safe to call from any number of goroutines.
package geom
