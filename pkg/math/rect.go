package math

// Rect is an axis-aligned 2D box.
type Rect struct {
	Min, Max Vec2
}

// RectAround returns the box centered on center extending half in each direction.
func RectAround(center, half Vec2) Rect {
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// BoundingRect returns the smallest box containing all points.
// ok is false when points is empty.
func BoundingRect(points []Vec2) (r Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r = Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r, true
}

// Size returns the width and height of the box.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the box center.
func (r Rect) Center() Vec2 {
	return r.Min.Midpoint(r.Max)
}

// Contains reports whether p lies inside the box, borders included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
