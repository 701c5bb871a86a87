package geom

import (
	"image"
	"testing"
)

func TestBounds_RoundTrip(t *testing.T) {
	// Rect -> Bounds -> Rect is the identity for coordinates that add
	// exactly, which layout values do.
	tests := []struct {
		name string
		r    Rect
	}{
		{"zero", Rt(0, 0, 0, 0)},
		{"unit", Rt(0, 0, 1, 1)},
		{"offset", Rt(20, 30, 100, 50)},
		{"negative origin", Rt(-15, -25, 40, 10)},
		{"negative size", Rt(10, 10, -5, -8)},
		{"fractional", Rt(0.5, 1.25, 3.75, 2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Bounds().Rect()
			if got != tt.r {
				t.Errorf("%v.Bounds().Rect() = %v, want identity", tt.r, got)
			}
		})
	}
}

func TestBounds_RoundTripFromBounds(t *testing.T) {
	b := Bounds{Min: Pt(3, 4), Max: Pt(10, 20)}
	if got := b.Rect().Bounds(); got != b {
		t.Errorf("%v.Rect().Bounds() = %v, want identity", b, got)
	}
}

func TestBoundsOf_Normalizes(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point
		expect Bounds
	}{
		{"already ordered", Pt(0, 0), Pt(5, 5), Bounds{Min: Pt(0, 0), Max: Pt(5, 5)}},
		{"swapped", Pt(5, 5), Pt(0, 0), Bounds{Min: Pt(0, 0), Max: Pt(5, 5)}},
		{"mixed axes", Pt(5, 0), Pt(0, 5), Bounds{Min: Pt(0, 0), Max: Pt(5, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundsOf(tt.p, tt.q); got != tt.expect {
				t.Errorf("BoundsOf(%v, %v) = %v, want %v", tt.p, tt.q, got, tt.expect)
			}
		})
	}
}

func TestBounds_Union(t *testing.T) {
	a := Rt(0, 0, 10, 10).Bounds()
	b := Rt(5, 5, 10, 10).Bounds()
	got := a.Union(b)
	expect := Rt(0, 0, 15, 15).Bounds()
	if got != expect {
		t.Errorf("Union = %v, want %v", got, expect)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Rt(0, 0, 10, 10).Bounds()
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"inside", Pt(5, 5), true},
		{"on edge", Pt(0, 5), true},
		{"on corner", Pt(10, 10), true},
		{"outside x", Pt(11, 5), false},
		{"outside y", Pt(5, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestBounds_ImageRect(t *testing.T) {
	got := Rt(0.4, 0.6, 10, 10).Bounds().ImageRect()
	expect := image.Rect(0, 1, 10, 11)
	if got != expect {
		t.Errorf("ImageRect = %v, want %v", got, expect)
	}
}

func TestRectFromImage(t *testing.T) {
	got := RectFromImage(image.Rect(2, 3, 12, 23))
	if !got.Approx(Rt(2, 3, 10, 20), 1e-10) {
		t.Errorf("RectFromImage = %v, want (2, 3, 10, 20)", got)
	}
}
