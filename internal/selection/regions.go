package selection

import "image"

// DimRegions returns the parts of screen that stay dim while the selection
// spans anchor and p. The strips are arranged as a pinwheel around the
// selection: they never overlap and, together with the selection itself,
// cover screen exactly. Empty strips are dropped.
//
// screen must start at the origin and both points must lie inside it
// (Max inclusive).
func DimRegions(screen image.Rectangle, anchor, p image.Point) []image.Rectangle {
	w, h := screen.Max.X, screen.Max.Y
	a := anchor

	var strips [4]image.Rectangle
	switch {
	case p.X >= a.X && p.Y >= a.Y:
		strips = [4]image.Rectangle{
			image.Rect(0, 0, a.X, p.Y),
			image.Rect(0, p.Y, p.X, h),
			image.Rect(a.X, 0, w, a.Y),
			image.Rect(p.X, a.Y, w, h),
		}
	case p.X < a.X && p.Y >= a.Y:
		strips = [4]image.Rectangle{
			image.Rect(0, 0, p.X, p.Y),
			image.Rect(0, p.Y, a.X, h),
			image.Rect(p.X, 0, w, a.Y),
			image.Rect(a.X, a.Y, w, h),
		}
	case p.X >= a.X && p.Y < a.Y:
		strips = [4]image.Rectangle{
			image.Rect(0, 0, a.X, a.Y),
			image.Rect(0, a.Y, p.X, h),
			image.Rect(a.X, 0, w, p.Y),
			image.Rect(p.X, p.Y, w, h),
		}
	default:
		strips = [4]image.Rectangle{
			image.Rect(0, 0, p.X, a.Y),
			image.Rect(0, a.Y, a.X, h),
			image.Rect(p.X, 0, w, p.Y),
			image.Rect(a.X, p.Y, w, h),
		}
	}

	out := make([]image.Rectangle, 0, len(strips))
	for _, r := range strips {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}

// clamp pins p inside screen, allowing the far edges themselves.
func clamp(screen image.Rectangle, p image.Point) image.Point {
	if p.X < screen.Min.X {
		p.X = screen.Min.X
	}
	if p.X > screen.Max.X {
		p.X = screen.Max.X
	}
	if p.Y < screen.Min.Y {
		p.Y = screen.Min.Y
	}
	if p.Y > screen.Max.Y {
		p.Y = screen.Max.Y
	}
	return p
}
