package inkball

import "github.com/plus3/inkball/geom"

// Stroke is a player-drawn polyline. Consecutive points form its segments.
type Stroke struct {
	Points   []geom.Vec2
	Dragging bool
}

// within reports whether segment i lies closer than dist to p.
// Zero-length segments have no direction and never count.
func (s *Stroke) within(i int, p geom.Vec2, dist float64) bool {
	a, b := s.Points[i], s.Points[i+1]
	if a == b {
		return false
	}
	return geom.SegmentDistance(p, a, b) < dist
}

// Touches reports whether any segment lies closer to the ball center than its radius.
func (s *Stroke) Touches(b *Ball) bool {
	for i := 0; i+1 < len(s.Points); i++ {
		if s.within(i, b.Position, b.Radius) {
			return true
		}
	}
	return false
}

// NearPoint reports whether p lies within threshold of any segment.
func (s *Stroke) NearPoint(p geom.Vec2, threshold float64) bool {
	for i := 0; i+1 < len(s.Points); i++ {
		if s.within(i, p, threshold) {
			return true
		}
	}
	return false
}

// contactSegment picks the segment used for the bounce: the first segment
// with a length unless a later segment is within the ball radius, in which
// case the last such segment wins.
func (s *Stroke) contactSegment(b *Ball) (geom.Vec2, geom.Vec2) {
	first := 0
	for first+2 < len(s.Points) && s.Points[first] == s.Points[first+1] {
		first++
	}

	start, end := s.Points[first], s.Points[first+1]
	for i := first + 1; i+1 < len(s.Points); i++ {
		if s.within(i, b.Position, b.Radius) {
			start, end = s.Points[i], s.Points[i+1]
		}
	}
	return start, end
}

// ContactNormal returns the unit normal of the contact segment facing the ball.
// The stroke must have at least two points.
func (s *Stroke) ContactNormal(b *Ball) geom.Vec2 {
	start, end := s.contactSegment(b)

	n1 := end.Sub(start).Perp().Normalize()
	n2 := n1.Scale(-1)

	mid := start.Add(end).Scale(0.5)
	if mid.Add(n1).Dist(b.Position) < mid.Add(n2).Dist(b.Position) {
		return n1
	}
	return n2
}

// Deflect returns the ball velocity reflected off the stroke.
func (s *Stroke) Deflect(b *Ball) geom.Vec2 {
	return b.Velocity.Reflect(s.ContactNormal(b))
}

func (s *Stroke) clone() Stroke {
	points := make([]geom.Vec2, len(s.Points))
	copy(points, s.Points)
	return Stroke{Points: points, Dragging: s.Dragging}
}
