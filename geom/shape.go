package geom

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	Min  Vec2
	Size Vec2
}

func (b Box) Max() Vec2 {
	return b.Min.Add(b.Size)
}

func (b Box) Center() Vec2 {
	return b.Min.Add(b.Size.Scale(0.5))
}

// ClosestPoint clamps p into the box.
func (b Box) ClosestPoint(p Vec2) Vec2 {
	max := b.Max()
	return Vec2{
		X: Clamp(p.X, b.Min.X, max.X),
		Y: Clamp(p.Y, b.Min.Y, max.Y),
	}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Vec2) bool {
	max := b.Max()
	return p.X >= b.Min.X && p.X <= max.X && p.Y >= b.Min.Y && p.Y <= max.Y
}

// CircleOverlapsBox reports whether the circle strictly overlaps the box.
// A circle that only touches an edge does not overlap.
func CircleOverlapsBox(center Vec2, radius float64, b Box) bool {
	return center.DistSq(b.ClosestPoint(center)) < radius*radius
}

// ClosestOnSegment returns the point of segment ab nearest to p.
// A degenerate segment (a == b) yields a.
func ClosestOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return a
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Scale(t))
}

// SegmentDistance returns the distance from p to segment ab.
func SegmentDistance(p, a, b Vec2) float64 {
	return p.Dist(ClosestOnSegment(p, a, b))
}
